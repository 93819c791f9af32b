package models

// Property is a catalogue listing. Price stays in its display form
// ("₹1.25 Cr", "₹85 L", "₹55,000/mo"); see pricing.Normalize.
type Property struct {
	ID      int     `bson:"id" json:"id"`
	Title   string  `bson:"title" json:"title"`
	Price   string  `bson:"price" json:"price"`
	Address string  `bson:"address" json:"address"`
	Beds    int     `bson:"beds" json:"beds"`
	Baths   float64 `bson:"baths" json:"baths"`
	Sqft    int     `bson:"sqft" json:"sqft"`
	Type    string  `bson:"type" json:"type"`
	IsNew   bool    `bson:"isNew" json:"isNew"`
	Image   string  `bson:"image" json:"image"`
}

const (
	ListingForSale = "For Sale"
	ListingForRent = "For Rent"
)

// PropertyDetail is the single-listing view.
type PropertyDetail struct {
	Property
	Categories      []string `json:"categories"`
	NormalizedPrice *float64 `json:"normalizedPrice,omitempty"`
}
