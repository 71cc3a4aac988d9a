package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Meeting struct {
	ID         primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ClientID   primitive.ObjectID  `json:"clientId" bson:"clientId"`
	PropertyID *primitive.ObjectID `json:"propertyId,omitempty" bson:"propertyId,omitempty"`
	Date       time.Time           `json:"date" bson:"date"`
	Time       string              `json:"time" bson:"time"`
	Notes      string              `json:"notes,omitempty" bson:"notes"`
	Status     string              `json:"status" bson:"status" validate:"required,oneof=Scheduled Completed Cancelled"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updatedAt"`
}

type CreateMeetingRequest struct {
	ClientID   string `json:"clientId" validate:"required"`
	PropertyID string `json:"propertyId"`
	Date       string `json:"date" validate:"required"`
	Time       string `json:"time" validate:"required"`
	Notes      string `json:"notes"`
	Status     string `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

type UpdateMeetingRequest struct {
	ClientID   *string `json:"clientId"`
	PropertyID *string `json:"propertyId"`
	Date       *string `json:"date"`
	Time       *string `json:"time"`
	Notes      *string `json:"notes"`
	Status     *string `json:"status" validate:"omitempty,oneof=Scheduled Completed Cancelled"`
}

// MeetingResponse embeds the referenced client and property documents the way
// list consumers expect them. Dangling references come back as null.
type MeetingResponse struct {
	Meeting
	Client   *Client   `json:"client"`
	Property *Property `json:"property"`
}
