package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/store"
)

type TransactionController struct {
	transactions store.TransactionStore
}

func NewTransactionController(transactions store.TransactionStore) *TransactionController {
	return &TransactionController{transactions: transactions}
}

// ListTransactions returns the caller's transactions, as buyer or seller.
func (tc *TransactionController) ListTransactions(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	transactions, err := tc.transactions.FindByUser(context.Background(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch transactions"})
	}

	return c.JSON(http.StatusOK, transactions)
}
