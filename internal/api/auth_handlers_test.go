package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pagehub/internal/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterHandler_Success(t *testing.T) {
	payload := RegisterRequest{
		Username: "fresh_user",
		Email:    "fresh_user@example.com",
		Password: "password123",
	}
	req := httptest.NewRequest("POST", "/api/v1/auth/register", jsonBody(t, payload))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.RegisterHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	var view models.UserView
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &view))
	require.Equal(t, "fresh_user", view.Username)
	require.Equal(t, models.RoleUser, view.Role)
	require.Equal(t, models.StatusActive, view.Status)
	require.Equal(t, models.SubscriptionFree, view.SubscriptionStatus)

	// The credential digest must never leak through the view.
	require.NotContains(t, rr.Body.String(), "password_hash")
}

func TestRegisterHandler_DuplicateEmail(t *testing.T) {
	user, _ := createAPITestUser(t, models.RoleUser)

	payload := RegisterRequest{
		Username: "impostor",
		Email:    user.Email,
		Password: "password123",
	}
	req := httptest.NewRequest("POST", "/api/v1/auth/register", jsonBody(t, payload))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.RegisterHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestRegisterHandler_Validation(t *testing.T) {
	cases := []struct {
		name    string
		payload RegisterRequest
	}{
		{"missing username", RegisterRequest{Email: "a@b.c", Password: "password123"}},
		{"bad email", RegisterRequest{Username: "u", Email: "not-an-email", Password: "password123"}},
		{"short password", RegisterRequest{Username: "u", Email: "a@b.c", Password: "short"}},
		{"invalid role", RegisterRequest{Username: "u", Email: "a@b.c", Password: "password123", Role: "superadmin"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/v1/auth/register", jsonBody(t, tc.payload))
			rr := httptest.NewRecorder()
			http.HandlerFunc(testServer.RegisterHandler).ServeHTTP(rr, req)
			require.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}

func TestLoginHandler_Success(t *testing.T) {
	user, _ := createAPITestUser(t, models.RoleUser)

	payload := LoginRequest{Email: user.Email, Password: "password123"}
	req := httptest.NewRequest("POST", "/api/v1/auth/login", jsonBody(t, payload))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	require.Equal(t, user.ID, resp.User.ID)
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	user, _ := createAPITestUser(t, models.RoleUser)

	payload := LoginRequest{Email: user.Email, Password: "wrong_password"}
	req := httptest.NewRequest("POST", "/api/v1/auth/login", jsonBody(t, payload))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginHandler_UnknownEmail(t *testing.T) {
	payload := LoginRequest{Email: "ghost@example.com", Password: "password123"}
	req := httptest.NewRequest("POST", "/api/v1/auth/login", jsonBody(t, payload))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestLoginHandler_BannedUserRejected(t *testing.T) {
	user, _ := createAPITestUser(t, models.RoleUser)

	_, err := testServer.store.UpdateUserStatus(context.Background(), user.ID, models.StatusBanned)
	require.NoError(t, err)

	// Correct credentials must not matter for a banned account.
	payload := LoginRequest{Email: user.Email, Password: "password123"}
	req := httptest.NewRequest("POST", "/api/v1/auth/login", jsonBody(t, payload))
	rr := httptest.NewRecorder()

	http.HandlerFunc(testServer.LoginHandler).ServeHTTP(rr, req)

	require.Equal(t, http.StatusForbidden, rr.Code)
}
