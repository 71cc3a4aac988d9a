package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/models"
	"github.com/Sauhard04/propertyDekho/store"
	"github.com/Sauhard04/propertyDekho/utils"
)

const propertyCachePrefix = "properties"

type PropertyController struct {
	properties store.PropertyStore
}

func NewPropertyController(properties store.PropertyStore) *PropertyController {
	return &PropertyController{properties: properties}
}

func (pc *PropertyController) ListProperties(c echo.Context) error {
	cacheKey := utils.GenerateQueryCacheKey(propertyCachePrefix, nil)

	var cached []models.Property
	if found, err := utils.GetCached(context.Background(), cacheKey, &cached); err == nil && found {
		return c.JSON(http.StatusOK, cached)
	}

	properties, err := pc.properties.FindAll(context.Background())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch properties"})
	}

	if err := utils.SetCached(context.Background(), cacheKey, properties, 30*time.Second); err != nil {
		log.Printf("property list cache write failed: %v", err)
	}

	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) GetProperty(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	property, err := pc.properties.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find property"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}

	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) CreateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	var req models.CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Title and location are required",
			"error":   err.Error(),
		})
	}

	coordinates := req.Coordinates
	if coordinates == "" {
		coordinates = models.DefaultCoordinates
	} else if _, _, err := utils.ParseCoordinates(coordinates); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Invalid coordinates format. Use: latitude,longitude (e.g., 20.5937,78.9629)",
		})
	}

	propertyType := req.Type
	if propertyType == "" {
		propertyType = "Plot"
	}
	status := req.Status
	if status == "" {
		status = "Available"
	}

	property := models.Property{
		ID:          primitive.NewObjectID(),
		Title:       req.Title,
		Image:       req.Image,
		Location:    req.Location,
		Description: req.Description,
		Coordinates: coordinates,
		Size:        req.Size.Float64(),
		Price:       req.Price.Float64(),
		Type:        propertyType,
		Status:      status,
		Owner:       &userID,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := pc.properties.Insert(context.Background(), &property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create property"})
	}

	pc.invalidateCache()

	return c.JSON(http.StatusCreated, property)
}

func (pc *PropertyController) UpdateProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole, _ := c.Get("user_role").(string)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	property, err := pc.properties.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find property"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}

	if property.Owner != nil && *property.Owner != userID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "You are not authorized to update this property"})
	}

	var req models.UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if req.Coordinates != nil {
		if _, _, err := utils.ParseCoordinates(*req.Coordinates); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"message": "Invalid coordinates format. Use: latitude,longitude (e.g., 20.5937,78.9629)",
			})
		}
		property.Coordinates = *req.Coordinates
	}
	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Image != nil {
		property.Image = *req.Image
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Size != nil {
		property.Size = req.Size.Float64()
	}
	if req.Price != nil {
		property.Price = req.Price.Float64()
	}
	if req.Type != nil {
		property.Type = *req.Type
	}
	if req.Status != nil {
		property.Status = *req.Status
	}

	// Ownerless rows predate ownership. The first authenticated editor
	// adopts them.
	if property.Owner == nil {
		property.Owner = &userID
	}
	property.UpdatedAt = time.Now()

	if err := pc.properties.Update(context.Background(), property); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update property"})
	}

	pc.invalidateCache()

	return c.JSON(http.StatusOK, property)
}

func (pc *PropertyController) DeleteProperty(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)
	userRole, _ := c.Get("user_role").(string)

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
	}

	property, err := pc.properties.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find property"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch property"})
	}

	if property.Owner != nil && *property.Owner != userID && userRole != "admin" {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "You are not authorized to delete this property"})
	}

	if err := pc.properties.Delete(context.Background(), id); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find property"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete property"})
	}

	pc.invalidateCache()

	return c.JSON(http.StatusOK, map[string]string{"message": "Property deleted"})
}

func (pc *PropertyController) MyListings(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	properties, err := pc.properties.FindByOwner(context.Background(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch properties"})
	}

	return c.JSON(http.StatusOK, properties)
}

func (pc *PropertyController) AssignOwnership(c echo.Context) error {
	userID := c.Get("user_id").(primitive.ObjectID)

	updated, err := pc.properties.AssignOwnerless(context.Background(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to assign ownership"})
	}

	pc.invalidateCache()

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Ownership assigned",
		"updated": updated,
	})
}

func (pc *PropertyController) invalidateCache() {
	if err := utils.InvalidatePrefix(context.Background(), propertyCachePrefix); err != nil {
		log.Printf("property cache invalidation failed: %v", err)
	}
}
