package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/mailer"
	"github.com/Sauhard04/propertyDekho/models"
	"github.com/Sauhard04/propertyDekho/store"
	"github.com/Sauhard04/propertyDekho/utils"
)

type EnquiryController struct {
	properties   store.PropertyStore
	users        store.UserStore
	transactions store.TransactionStore
	mailer       mailer.Mailer
}

func NewEnquiryController(properties store.PropertyStore, users store.UserStore, transactions store.TransactionStore, m mailer.Mailer) *EnquiryController {
	return &EnquiryController{
		properties:   properties,
		users:        users,
		transactions: transactions,
		mailer:       m,
	}
}

// HandleEnquiry processes a contact request for a property. With
// isPurchase set it also records a pending transaction and moves the
// property to Under Negotiation before any email goes out; those writes
// stay committed even when dispatch fails.
func (ec *EnquiryController) HandleEnquiry(c echo.Context) error {
	propertyID, err := primitive.ObjectIDFromHex(c.Param("propertyId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	var req models.EnquiryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Name and email are required",
			"error":   err.Error(),
		})
	}

	property, err := ec.properties.FindByID(context.Background(), propertyID)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Property not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}

	if property.Owner == nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Property owner email not found"})
	}
	owner, err := ec.users.FindByID(context.Background(), *property.Owner)
	if err != nil || owner.Email == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Property owner email not found"})
	}

	if req.IsPurchase {
		return ec.handlePurchase(c, property, owner, &req)
	}

	if err := ec.mailer.SendEnquiry(property, owner, &req); err != nil {
		log.Printf("enquiry email dispatch failed for property %s: %v", property.ID.Hex(), err)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"message": "Failed to process request",
			"error":   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Enquiry sent successfully"})
}

func (ec *EnquiryController) handlePurchase(c echo.Context, property *models.Property, owner *models.User, req *models.EnquiryRequest) error {
	buyerID, ok := c.Get("user_id").(primitive.ObjectID)
	if !ok {
		return c.JSON(http.StatusUnauthorized, map[string]string{"message": "No token, authorization denied"})
	}

	buyer, err := ec.users.FindByID(context.Background(), buyerID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Buyer information not found"})
	}

	txn := models.Transaction{
		ID:              primitive.NewObjectID(),
		Property:        property.ID,
		Buyer:           buyer.ID,
		Seller:          owner.ID,
		Amount:          property.Price,
		Status:          models.TransactionPending,
		PaymentDetails:  bson.M{},
		TransactionDate: time.Now(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := ec.transactions.Insert(context.Background(), &txn); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create transaction"})
	}

	property.Status = "Under Negotiation"
	property.UpdatedAt = time.Now()
	if err := ec.properties.Update(context.Background(), property); err != nil {
		// Compensate so no pending transaction refers to a property that
		// never left its previous status.
		txn.Status = models.TransactionFailed
		txn.UpdatedAt = time.Now()
		if cerr := ec.transactions.Update(context.Background(), &txn); cerr != nil {
			log.Printf("compensation failed for transaction %s: %v", txn.ID.Hex(), cerr)
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update property status"})
	}

	if err := utils.InvalidatePrefix(context.Background(), propertyCachePrefix); err != nil {
		log.Printf("property cache invalidation failed: %v", err)
	}

	// Both writes are committed; email delivery is best-effort from here.
	if err := ec.mailer.SendPurchaseRequest(property, owner, buyer, &txn, req); err != nil {
		log.Printf("purchase email dispatch failed for transaction %s: %v", txn.ID.Hex(), err)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message":       "Purchase request sent successfully",
		"transactionId": txn.ID.Hex(),
	})
}
