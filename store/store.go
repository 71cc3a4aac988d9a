package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/models"
)

// ErrNotFound is returned by every store when no document matches the id.
var ErrNotFound = errors.New("document not found")

type UserStore interface {
	Insert(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type PropertyStore interface {
	Insert(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	FindAll(ctx context.Context) ([]models.Property, error)
	FindByOwner(ctx context.Context, owner primitive.ObjectID) ([]models.Property, error)
	// Update replaces the stored document. Last write wins.
	Update(ctx context.Context, property *models.Property) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AssignOwnerless sets owner on every ownerless document and reports how
	// many were adopted.
	AssignOwnerless(ctx context.Context, owner primitive.ObjectID) (int64, error)
}

type ClientStore interface {
	Insert(ctx context.Context, client *models.Client) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Client, error)
	FindAll(ctx context.Context) ([]models.Client, error)
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type MeetingStore interface {
	Insert(ctx context.Context, meeting *models.Meeting) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error)
	FindAll(ctx context.Context) ([]models.Meeting, error)
	Update(ctx context.Context, meeting *models.Meeting) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type TransactionStore interface {
	Insert(ctx context.Context, txn *models.Transaction) error
	FindByUser(ctx context.Context, user primitive.ObjectID) ([]models.Transaction, error)
	Update(ctx context.Context, txn *models.Transaction) error
}
