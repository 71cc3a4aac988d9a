package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/models"
)

func TestMemoryPropertyCRUD(t *testing.T) {
	s := NewMemoryPropertyStore()
	ctx := context.Background()

	property := &models.Property{Title: "T", Location: "L", Type: "Plot", Status: "Available"}
	require.NoError(t, s.Insert(ctx, property))
	require.False(t, property.ID.IsZero(), "insert assigns an id")

	fetched, err := s.FindByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", fetched.Title)

	fetched.Price = 42
	require.NoError(t, s.Update(ctx, fetched))
	again, err := s.FindByID(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, 42.0, again.Price)

	require.NoError(t, s.Delete(ctx, property.ID))
	assert.ErrorIs(t, s.Delete(ctx, property.ID), ErrNotFound)
	_, err = s.FindByID(ctx, property.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryPropertyOwnerQueries(t *testing.T) {
	s := NewMemoryPropertyStore()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	require.NoError(t, s.Insert(ctx, &models.Property{Title: "Mine", Location: "L", Owner: &owner}))
	require.NoError(t, s.Insert(ctx, &models.Property{Title: "Orphan 1", Location: "L"}))
	require.NoError(t, s.Insert(ctx, &models.Property{Title: "Orphan 2", Location: "L"}))

	mine, err := s.FindByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	adopted, err := s.AssignOwnerless(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), adopted)

	mine, err = s.FindByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	// nothing left to adopt
	adopted, err = s.AssignOwnerless(ctx, owner)
	require.NoError(t, err)
	assert.Zero(t, adopted)
}

func TestMemoryUserFindByEmail(t *testing.T) {
	s := NewMemoryUserStore()
	ctx := context.Background()

	require.NoError(t, s.Insert(ctx, &models.User{Name: "A", Email: "a@example.com"}))

	user, err := s.FindByEmail(ctx, "A@Example.com")
	require.NoError(t, err, "email lookup is case-insensitive")
	assert.Equal(t, "A", user.Name)

	_, err = s.FindByEmail(ctx, "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryTransactionFindByUser(t *testing.T) {
	s := NewMemoryTransactionStore()
	ctx := context.Background()
	buyer := primitive.NewObjectID()
	seller := primitive.NewObjectID()

	require.NoError(t, s.Insert(ctx, &models.Transaction{Buyer: buyer, Seller: seller, Amount: 10}))
	require.NoError(t, s.Insert(ctx, &models.Transaction{Buyer: seller, Seller: primitive.NewObjectID(), Amount: 20}))

	byBuyer, err := s.FindByUser(ctx, buyer)
	require.NoError(t, err)
	assert.Len(t, byBuyer, 1)

	bySeller, err := s.FindByUser(ctx, seller)
	require.NoError(t, err)
	assert.Len(t, bySeller, 2)

	none, err := s.FindByUser(ctx, primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, none)
}
