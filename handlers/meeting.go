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

type MeetingController struct {
	meetings   store.MeetingStore
	clients    store.ClientStore
	properties store.PropertyStore
}

func NewMeetingController(meetings store.MeetingStore, clients store.ClientStore, properties store.PropertyStore) *MeetingController {
	return &MeetingController{meetings: meetings, clients: clients, properties: properties}
}

// populate resolves the client and property references for a meeting. A
// deleted referent embeds as null; nothing cascades.
func (mc *MeetingController) populate(ctx context.Context, meeting models.Meeting) models.MeetingResponse {
	resp := models.MeetingResponse{Meeting: meeting}
	if client, err := mc.clients.FindByID(ctx, meeting.ClientID); err == nil {
		resp.Client = client
	}
	if meeting.PropertyID != nil {
		if property, err := mc.properties.FindByID(ctx, *meeting.PropertyID); err == nil {
			resp.Property = property
		}
	}
	return resp
}

func (mc *MeetingController) ListMeetings(c echo.Context) error {
	meetings, err := mc.meetings.FindAll(context.Background())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch meetings"})
	}

	responses := []models.MeetingResponse{}
	for _, meeting := range meetings {
		responses = append(responses, mc.populate(context.Background(), meeting))
	}
	return c.JSON(http.StatusOK, responses)
}

func (mc *MeetingController) GetMeeting(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid meeting ID"})
	}

	meeting, err := mc.meetings.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find meeting"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch meeting"})
	}

	return c.JSON(http.StatusOK, mc.populate(context.Background(), *meeting))
}

func parseMeetingDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (mc *MeetingController) CreateMeeting(c echo.Context) error {
	var req models.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "clientId, date and time are required",
			"error":   err.Error(),
		})
	}

	clientID, err := primitive.ObjectIDFromHex(req.ClientID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid client ID"})
	}

	var propertyID *primitive.ObjectID
	if req.PropertyID != "" {
		pid, err := primitive.ObjectIDFromHex(req.PropertyID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
		}
		propertyID = &pid
	}

	date, err := parseMeetingDate(req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid date"})
	}

	status := req.Status
	if status == "" {
		status = "Scheduled"
	}

	meeting := models.Meeting{
		ID:         primitive.NewObjectID(),
		ClientID:   clientID,
		PropertyID: propertyID,
		Date:       date,
		Time:       req.Time,
		Notes:      req.Notes,
		Status:     status,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	if err := mc.meetings.Insert(context.Background(), &meeting); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create meeting"})
	}

	return c.JSON(http.StatusCreated, meeting)
}

func (mc *MeetingController) UpdateMeeting(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid meeting ID"})
	}

	meeting, err := mc.meetings.FindByID(context.Background(), id)
	if err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find meeting"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to fetch meeting"})
	}

	var req models.UpdateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request body"})
	}
	if err := utils.Validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if req.ClientID != nil {
		clientID, err := primitive.ObjectIDFromHex(*req.ClientID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid client ID"})
		}
		meeting.ClientID = clientID
	}
	if req.PropertyID != nil {
		if *req.PropertyID == "" {
			meeting.PropertyID = nil
		} else {
			pid, err := primitive.ObjectIDFromHex(*req.PropertyID)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid property ID"})
			}
			meeting.PropertyID = &pid
		}
	}
	if req.Date != nil {
		date, err := parseMeetingDate(*req.Date)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid date"})
		}
		meeting.Date = date
	}
	if req.Time != nil {
		meeting.Time = *req.Time
	}
	if req.Notes != nil {
		meeting.Notes = *req.Notes
	}
	if req.Status != nil {
		meeting.Status = *req.Status
	}
	meeting.UpdatedAt = time.Now()

	if err := mc.meetings.Update(context.Background(), meeting); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update meeting"})
	}

	return c.JSON(http.StatusOK, mc.populate(context.Background(), *meeting))
}

func (mc *MeetingController) DeleteMeeting(c echo.Context) error {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid meeting ID"})
	}

	if err := mc.meetings.Delete(context.Background(), id); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "Cannot find meeting"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to delete meeting"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Meeting deleted"})
}
