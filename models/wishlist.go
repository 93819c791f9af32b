package models

type WishlistResponse struct {
	Items []Property `json:"items"`
	Count int        `json:"count"`
}

type SavedStatus struct {
	PropertyID int  `json:"propertyId"`
	Saved      bool `json:"saved"`
}
