package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"pagehub/internal/auth"
	"pagehub/internal/database"
	"pagehub/internal/models"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Username string `json:"username" example:"jdoe"`
	Email    string `json:"email" example:"jdoe@example.com"`
	Password string `json:"password" example:"password123"`
	Role     string `json:"role,omitempty" example:"user"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"jdoe@example.com"`
	Password string `json:"password" example:"password123"`
}

type LoginResponse struct {
	User  models.UserView `json:"user"`
	Token string          `json:"token"`
}

// @Summary      Register a new user
// @Description  Creates an account with the default user role unless another valid role is supplied. Accounts are active immediately; the activation key is advisory.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registerRequest  body      RegisterRequest  true  "Registration data"
// @Success      201              {object}  models.UserView
// @Failure      400              {string}  string "Validation failure"
// @Failure      409              {string}  string "Email already taken"
// @Failure      500              {string}  string "Internal Server Error"
// @Router       /auth/register [post]
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.Username == "" || len(req.Username) > 50 {
		http.Error(w, "Username is required and must be at most 50 characters", http.StatusBadRequest)
		return
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		http.Error(w, "A valid email is required", http.StatusBadRequest)
		return
	}
	if len(req.Password) < 6 || len(req.Password) > 128 {
		http.Error(w, "Password must be between 6 and 128 characters", http.StatusBadRequest)
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if !models.IsValidRole(role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	activationKey := uuid.NewString()

	user, err := s.store.CreateUser(r.Context(), database.CreateUserParams{
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hash,
		Role:          role,
		ActivationKey: &activationKey,
	})
	if err != nil {
		if errors.Is(err, database.ErrDuplicateEmail) {
			http.Error(w, "Email already taken", http.StatusConflict)
			return
		}
		log.Printf("ERROR: Failed to create user: %v", err)
		http.Error(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, buildUserView(user, 0, user.CreatedAt))
}

// @Summary      Log a user in
// @Description  Verifies credentials and returns the user view together with a bearer token valid for 8 hours. Banned accounts are rejected regardless of credential correctness.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        loginRequest  body      LoginRequest  true  "Login credentials"
// @Success      200           {object}  LoginResponse
// @Failure      400           {string}  string "Invalid request body"
// @Failure      401           {string}  string "Password mismatch"
// @Failure      403           {string}  string "Account banned"
// @Failure      404           {string}  string "No user with this email"
// @Router       /auth/login [post]
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "Email must be provided", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "No user associated with this email", http.StatusNotFound)
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	// Ban check runs against the live row, not a stale claim.
	if user.Status == models.StatusBanned {
		http.Error(w, "Your account has been banned. Please contact support.", http.StatusForbidden)
		return
	}

	token, err := auth.GenerateJWT(user, s.config.JWT.Secret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	view, err := s.userView(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{User: view, Token: token})
}
