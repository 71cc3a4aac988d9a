package handlers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sauhard04/propertyDekho/models"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)

	token, user := env.register(t, "Asha", "asha@example.com")
	assert.NotEmpty(t, token)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.Equal(t, "user", user.Role)
	assert.Empty(t, user.Password, "password must never be returned")

	rec := env.do(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "asha@example.com",
		"password": "secret123",
	})
	require.Equal(t, 200, rec.Code, rec.Body.String())

	var resp models.AuthResponse
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.User.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Asha", "asha@example.com")

	rec := env.do(t, "POST", "/api/auth/register", "", map[string]string{
		"name":     "Impostor",
		"email":    "asha@example.com",
		"password": "secret456",
	})
	assert.Equal(t, 400, rec.Code)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.register(t, "Asha", "asha@example.com")

	rec := env.do(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "asha@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, 401, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, "POST", "/api/auth/login", "", map[string]string{
		"email":    "nobody@example.com",
		"password": "secret123",
	})
	assert.Equal(t, 401, rec.Code)
}

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)
	token, user := env.register(t, "Asha", "asha@example.com")

	rec := env.do(t, "GET", "/api/auth/me", token, nil)
	require.Equal(t, 200, rec.Code)

	var resp struct {
		Success bool        `json:"success"`
		Data    models.User `json:"data"`
	}
	decode(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, user.ID, resp.Data.ID)
	assert.Empty(t, resp.Data.Password)
}

func TestProtectedRouteAuth(t *testing.T) {
	env := newTestEnv(t)
	token, _ := env.register(t, "Asha", "asha@example.com")

	// valid token accepted
	rec := env.do(t, "GET", "/api/properties/my-listings", token, nil)
	assert.Equal(t, 200, rec.Code)

	// no token rejected
	rec = env.do(t, "GET", "/api/properties/my-listings", "", nil)
	assert.Equal(t, 401, rec.Code)

	// tampered token rejected
	rec = env.do(t, "GET", "/api/properties/my-listings", token+"x", nil)
	assert.Equal(t, 401, rec.Code)
}
