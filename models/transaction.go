package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

type Transaction struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Property        primitive.ObjectID `json:"property" bson:"property"`
	Buyer           primitive.ObjectID `json:"buyer" bson:"buyer"`
	Seller          primitive.ObjectID `json:"seller" bson:"seller"`
	Amount          float64            `json:"amount" bson:"amount"`
	Status          string             `json:"status" bson:"status"`
	PaymentDetails  bson.M             `json:"paymentDetails" bson:"paymentDetails"`
	TransactionDate time.Time          `json:"transactionDate" bson:"transactionDate"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt"`
}
