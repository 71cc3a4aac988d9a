package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Client struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name" validate:"required"`
	Contact           string             `json:"contact" bson:"contact" validate:"required"`
	Email             string             `json:"email,omitempty" bson:"email"`
	Budget            float64            `json:"budget" bson:"budget"`
	PreferredLocation string             `json:"preferredLocation" bson:"preferredLocation" validate:"required"`
	Notes             string             `json:"notes,omitempty" bson:"notes"`
	CreatedAt         time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CreateClientRequest struct {
	Name              string     `json:"name" validate:"required"`
	Contact           string     `json:"contact" validate:"required"`
	Email             string     `json:"email" validate:"omitempty,email"`
	Budget            FlexNumber `json:"budget" validate:"required"`
	PreferredLocation string     `json:"preferredLocation" validate:"required"`
	Notes             string     `json:"notes"`
}

type UpdateClientRequest struct {
	Name              *string     `json:"name"`
	Contact           *string     `json:"contact"`
	Email             *string     `json:"email"`
	Budget            *FlexNumber `json:"budget"`
	PreferredLocation *string     `json:"preferredLocation"`
	Notes             *string     `json:"notes"`
}
