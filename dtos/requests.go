package dtos

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type RegisterRequest struct {
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type WishlistAddRequest struct {
	PropertyID int `json:"propertyId" validate:"required,gt=0"`
}

type AssistantRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}
