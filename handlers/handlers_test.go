package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Sauhard04/propertyDekho/handlers"
	"github.com/Sauhard04/propertyDekho/models"
	"github.com/Sauhard04/propertyDekho/routes"
	"github.com/Sauhard04/propertyDekho/store"
)

// fakeMailer records dispatches and optionally fails them.
type fakeMailer struct {
	enquiries []string
	purchases []string
	fail      bool
}

func (m *fakeMailer) SendEnquiry(property *models.Property, owner *models.User, enquiry *models.EnquiryRequest) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.enquiries = append(m.enquiries, property.ID.Hex())
	return nil
}

func (m *fakeMailer) SendPurchaseRequest(property *models.Property, owner, buyer *models.User, txn *models.Transaction, enquiry *models.EnquiryRequest) error {
	if m.fail {
		return errors.New("smtp unavailable")
	}
	m.purchases = append(m.purchases, txn.ID.Hex())
	return nil
}

type testEnv struct {
	e            *echo.Echo
	users        *store.MemoryUserStore
	properties   *store.MemoryPropertyStore
	clients      *store.MemoryClientStore
	meetings     *store.MemoryMeetingStore
	transactions *store.MemoryTransactionStore
	mailer       *fakeMailer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	env := &testEnv{
		e:            echo.New(),
		users:        store.NewMemoryUserStore(),
		properties:   store.NewMemoryPropertyStore(),
		clients:      store.NewMemoryClientStore(),
		meetings:     store.NewMemoryMeetingStore(),
		transactions: store.NewMemoryTransactionStore(),
		mailer:       &fakeMailer{},
	}

	routes.RegisterRoutes(env.e, routes.Controllers{
		Users:        handlers.NewUserController(env.users),
		Properties:   handlers.NewPropertyController(env.properties),
		Clients:      handlers.NewClientController(env.clients),
		Meetings:     handlers.NewMeetingController(env.meetings, env.clients, env.properties),
		Transactions: handlers.NewTransactionController(env.transactions),
		Enquiries:    handlers.NewEnquiryController(env.properties, env.users, env.transactions, env.mailer),
	})
	return env
}

func (env *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("x-auth-token", token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

// register creates an account through the API and returns its token and user.
func (env *testEnv) register(t *testing.T, name, email string) (string, models.User) {
	t.Helper()
	rec := env.do(t, "POST", "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, 201, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	decode(t, rec, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token, resp.User
}
