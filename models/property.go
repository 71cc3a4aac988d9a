package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultCoordinates = "20.5937, 78.9629"

type Property struct {
	ID          primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Title       string              `json:"title" bson:"title" validate:"required"`
	Image       string              `json:"image" bson:"image"`
	Location    string              `json:"location" bson:"location" validate:"required"`
	Description string              `json:"description" bson:"description"`
	Coordinates string              `json:"coordinates" bson:"coordinates"`
	Size        float64             `json:"size" bson:"size"`
	Price       float64             `json:"price" bson:"price"`
	Type        string              `json:"type" bson:"type" validate:"required,oneof=Plot Flat Commercial"`
	Status      string              `json:"status" bson:"status" validate:"required,oneof=Available 'Under Negotiation' Sold"`
	Owner       *primitive.ObjectID `json:"owner,omitempty" bson:"owner,omitempty"`
	CreatedAt   time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type CreatePropertyRequest struct {
	Title       string     `json:"title" validate:"required"`
	Image       string     `json:"image"`
	Location    string     `json:"location" validate:"required"`
	Description string     `json:"description"`
	Coordinates string     `json:"coordinates"`
	Size        FlexNumber `json:"size"`
	Price       FlexNumber `json:"price"`
	Type        string     `json:"type" validate:"omitempty,oneof=Plot Flat Commercial"`
	Status      string     `json:"status" validate:"omitempty,oneof=Available 'Under Negotiation' Sold"`
}

// UpdatePropertyRequest carries a partial overwrite: only fields present in the
// request body are applied.
type UpdatePropertyRequest struct {
	Title       *string     `json:"title"`
	Image       *string     `json:"image"`
	Location    *string     `json:"location"`
	Description *string     `json:"description"`
	Coordinates *string     `json:"coordinates"`
	Size        *FlexNumber `json:"size"`
	Price       *FlexNumber `json:"price"`
	Type        *string     `json:"type" validate:"omitempty,oneof=Plot Flat Commercial"`
	Status      *string     `json:"status" validate:"omitempty,oneof=Available 'Under Negotiation' Sold"`
}
