package models

type EnquiryRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone"`
	Message    string `json:"message"`
	IsPurchase bool   `json:"isPurchase"`
}
