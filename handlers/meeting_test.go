package handlers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Sauhard04/propertyDekho/models"
)

func (env *testEnv) seedClient(t *testing.T) models.Client {
	t.Helper()
	client := models.Client{
		ID:                primitive.NewObjectID(),
		Name:              "Ravi",
		Contact:           "9876543210",
		Budget:            500000,
		PreferredLocation: "Pune",
	}
	require.NoError(t, env.clients.Insert(context.Background(), &client))
	return client
}

func TestMeetingCreateAndPopulate(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "Agent", "agent@example.com")
	client := env.seedClient(t)
	property := env.createProperty(t, token, map[string]interface{}{
		"title":    "Viewing Target",
		"location": "Pune",
	})

	rec := env.do(t, "POST", "/api/meetings", "", map[string]interface{}{
		"clientId":   client.ID.Hex(),
		"propertyId": property.ID.Hex(),
		"date":       "2026-09-15",
		"time":       "14:30",
		"notes":      "first viewing",
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var created models.Meeting
	decode(t, rec, &created)
	assert.Equal(t, "Scheduled", created.Status)

	rec = env.do(t, "GET", "/api/meetings/"+created.ID.Hex(), "", nil)
	require.Equal(t, 200, rec.Code)

	var resp models.MeetingResponse
	decode(t, rec, &resp)
	require.NotNil(t, resp.Client)
	assert.Equal(t, client.ID, resp.Client.ID)
	require.NotNil(t, resp.Property)
	assert.Equal(t, property.ID, resp.Property.ID)
}

func TestMeetingCreateValidation(t *testing.T) {
	env := newTestEnv(t)
	client := env.seedClient(t)

	// missing date/time
	rec := env.do(t, "POST", "/api/meetings", "", map[string]interface{}{
		"clientId": client.ID.Hex(),
	})
	assert.Equal(t, 400, rec.Code)

	// missing clientId
	rec = env.do(t, "POST", "/api/meetings", "", map[string]interface{}{
		"date": "2026-09-15",
		"time": "14:30",
	})
	assert.Equal(t, 400, rec.Code)

	// bad status enum
	rec = env.do(t, "POST", "/api/meetings", "", map[string]interface{}{
		"clientId": client.ID.Hex(),
		"date":     "2026-09-15",
		"time":     "14:30",
		"status":   "Postponed",
	})
	assert.Equal(t, 400, rec.Code)
}

func TestMeetingDanglingReferenceEmbedsNull(t *testing.T) {
	env := newTestEnv(t)
	client := env.seedClient(t)

	rec := env.do(t, "POST", "/api/meetings", "", map[string]interface{}{
		"clientId": client.ID.Hex(),
		"date":     "2026-09-15",
		"time":     "10:00",
	})
	require.Equal(t, 201, rec.Code)
	var created models.Meeting
	decode(t, rec, &created)

	// deleting the client does not cascade; the meeting survives with a
	// null embedded client
	rec = env.do(t, "DELETE", "/api/clients/"+client.ID.Hex(), "", nil)
	require.Equal(t, 200, rec.Code)

	rec = env.do(t, "GET", "/api/meetings/"+created.ID.Hex(), "", nil)
	require.Equal(t, 200, rec.Code)
	var resp models.MeetingResponse
	decode(t, rec, &resp)
	assert.Nil(t, resp.Client)
}

func TestMeetingUpdateAndDelete(t *testing.T) {
	env := newTestEnv(t)
	client := env.seedClient(t)

	rec := env.do(t, "POST", "/api/meetings", "", map[string]interface{}{
		"clientId": client.ID.Hex(),
		"date":     "2026-09-15",
		"time":     "10:00",
	})
	require.Equal(t, 201, rec.Code)
	var created models.Meeting
	decode(t, rec, &created)

	rec = env.do(t, "PATCH", "/api/meetings/"+created.ID.Hex(), "", map[string]interface{}{
		"status": "Completed",
		"notes":  "went well",
	})
	require.Equal(t, 200, rec.Code)
	var updated models.MeetingResponse
	decode(t, rec, &updated)
	assert.Equal(t, "Completed", updated.Status)
	assert.Equal(t, "went well", updated.Notes)
	assert.Equal(t, "10:00", updated.Time)

	rec = env.do(t, "DELETE", "/api/meetings/"+created.ID.Hex(), "", nil)
	assert.Equal(t, 200, rec.Code)

	rec = env.do(t, "GET", "/api/meetings/"+created.ID.Hex(), "", nil)
	assert.Equal(t, 404, rec.Code)
}
