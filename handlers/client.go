package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/models"
	"github.com/Sauhard04/propertyDekho/store"
	"github.com/Sauhard04/propertyDekho/utils"
)

type ClientController struct {
	clients store.ClientStore
}

func NewClientController(clients store.ClientStore) *ClientController {
	return &ClientController{clients: clients}
}

func (cc *ClientController) ListClients(c echo.Context) error {
	clients, err := cc.clients.FindAll(context.Background())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch clients"})
	}
	return c.JSON(http.StatusOK, clients)
}

func (cc *ClientController) GetClient(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid client ID"})
	}

	client, err := cc.clients.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find client"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch client"})
	}

	return c.JSON(http.StatusOK, client)
}

func (cc *ClientController) CreateClient(c echo.Context) error {
	var req models.CreateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Name, contact, budget and preferredLocation are required",
			"error":   err.Error(),
		})
	}

	client := models.Client{
		ID:                primitive.NewObjectID(),
		Name:              req.Name,
		Contact:           req.Contact,
		Email:             req.Email,
		Budget:            req.Budget.Float64(),
		PreferredLocation: req.PreferredLocation,
		Notes:             req.Notes,
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := cc.clients.Insert(context.Background(), &client); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create client"})
	}

	return c.JSON(http.StatusCreated, client)
}

func (cc *ClientController) UpdateClient(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid client ID"})
	}

	client, err := cc.clients.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find client"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch client"})
	}

	var req models.UpdateClientRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}

	if req.Name != nil {
		client.Name = *req.Name
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.Email != nil {
		client.Email = *req.Email
	}
	if req.Budget != nil {
		client.Budget = req.Budget.Float64()
	}
	if req.PreferredLocation != nil {
		client.PreferredLocation = *req.PreferredLocation
	}
	if req.Notes != nil {
		client.Notes = *req.Notes
	}
	client.UpdatedAt = time.Now()

	if err := cc.clients.Update(context.Background(), client); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update client"})
	}

	return c.JSON(http.StatusOK, client)
}

func (cc *ClientController) DeleteClient(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid client ID"})
	}

	if err := cc.clients.Delete(context.Background(), id); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Client not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Error deleting client"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Client deleted successfully"})
}
