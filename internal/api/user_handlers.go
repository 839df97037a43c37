package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"pagehub/internal/auth"
	"pagehub/internal/database"
	"pagehub/internal/models"
	"pagehub/internal/subscription"

	"github.com/go-chi/chi/v5"
)

func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
}

type UpdateSubscriptionRequest struct {
	UserID             int64      `json:"userId" example:"42"`
	SubscriptionStatus string     `json:"subscriptionStatus" example:"paid"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry,omitempty"`
}

type SubscriptionView struct {
	SubscriptionStatus string     `json:"subscription_status"`
	SubscriptionExpiry *time.Time `json:"subscription_expiry"`
}

// @Summary      Update a user's subscription
// @Description  Sets the subscription status. Setting paid without an explicit expiry assigns one calendar month from now; any non-paid status clears the expiry unconditionally.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        updateSubscriptionRequest  body      UpdateSubscriptionRequest  true  "Subscription change"
// @Success      200  {object}  SubscriptionView
// @Failure      400  {string}  string "Invalid subscription status"
// @Failure      404  {string}  string "User not found"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /users/update-subscription [put]
func (s *Server) UpdateSubscriptionHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.SubscriptionStatus != models.SubscriptionFree && req.SubscriptionStatus != models.SubscriptionPaid {
		http.Error(w, "Invalid subscription status", http.StatusBadRequest)
		return
	}

	expiry := subscription.NormalizeExpiry(req.SubscriptionStatus, req.SubscriptionExpiry, time.Now())

	user, err := s.store.UpdateUserSubscription(r.Context(), req.UserID, req.SubscriptionStatus, expiry)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: Failed to update subscription for user %d: %v", req.UserID, err)
		http.Error(w, "Failed to update subscription", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, SubscriptionView{
		SubscriptionStatus: subscription.EffectiveStatus(user.SubscriptionStatus, user.SubscriptionExpiry, time.Now()),
		SubscriptionExpiry: user.SubscriptionExpiry,
	})
}

type SubscriptionStatusRequest struct {
	UserID int64 `json:"userId" example:"42"`
}

// @Summary      Get a user's subscription status
// @Description  Reports the effective subscription status: a paid subscription whose expiry has lapsed is reported as expired while the stored value stays paid.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subscriptionStatusRequest  body      SubscriptionStatusRequest  true  "User ID"
// @Success      200  {object}  models.UserView
// @Failure      400  {string}  string "User ID is required"
// @Failure      404  {string}  string "User not found"
// @Router       /users/subscription/status [post]
func (s *Server) SubscriptionStatusHandler(w http.ResponseWriter, r *http.Request) {
	var req SubscriptionStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		http.Error(w, "User ID is required in request body", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByID(r.Context(), req.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	view, err := s.userView(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

// @Summary      List all users
// @Description  Admin-only listing of all accounts. Credential digests are never serialized.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.UserView
// @Failure      401  {string}  string "Unauthorized"
// @Failure      403  {string}  string "Forbidden"
// @Failure      500  {string}  string "Internal Server Error"
// @Router       /users [get]
func (s *Server) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := s.store.ListUsers(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
		return
	}

	views := make([]models.UserView, 0, len(users))
	now := time.Now()
	for i := range users {
		count, err := s.store.CountActivePages(r.Context(), users[i].ID)
		if err != nil {
			http.Error(w, "Failed to retrieve users", http.StatusInternalServerError)
			return
		}
		views = append(views, buildUserView(&users[i], count, now))
	}

	writeJSON(w, http.StatusOK, views)
}

// UpdateUserDetailsRequest is the admin patch surface. Identity-bearing
// fields (id, email) and the credential are deliberately absent: a patch
// carrying them has them stripped by construction.
type UpdateUserDetailsRequest struct {
	Username           *string `json:"username,omitempty"`
	Role               *string `json:"role,omitempty"`
	Status             *string `json:"status,omitempty"`
	SubscriptionStatus *string `json:"subscriptionStatus,omitempty"`
}

// @Summary      Update user details
// @Description  Admin-only partial update. Email, ID and password cannot be changed through this endpoint.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId                    path      int                       true  "User ID"
// @Param        updateUserDetailsRequest  body      UpdateUserDetailsRequest  true  "Fields to patch"
// @Success      200  {object}  models.UserView
// @Failure      400  {string}  string "Invalid field value"
// @Failure      404  {string}  string "User not found"
// @Router       /users/{userId} [put]
func (s *Server) UpdateUserDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req UpdateUserDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Role != nil && !models.IsValidRole(*req.Role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}
	if req.Status != nil && !models.IsValidStatus(*req.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}
	if req.SubscriptionStatus != nil &&
		*req.SubscriptionStatus != models.SubscriptionFree && *req.SubscriptionStatus != models.SubscriptionPaid {
		http.Error(w, "Invalid subscription status", http.StatusBadRequest)
		return
	}

	// A subscription change through this path follows the same expiry rules
	// as the dedicated endpoint: paid gets the one-month default, anything
	// else clears the expiry.
	var subscriptionExpiry *time.Time
	if req.SubscriptionStatus != nil {
		subscriptionExpiry = subscription.NormalizeExpiry(*req.SubscriptionStatus, nil, time.Now())
	}

	user, err := s.store.UpdateUserDetails(r.Context(), userID, database.UpdateUserDetailsParams{
		Username:           req.Username,
		Role:               req.Role,
		Status:             req.Status,
		SubscriptionStatus: req.SubscriptionStatus,
		SubscriptionExpiry: subscriptionExpiry,
	})
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: Failed to update user %d: %v", userID, err)
		http.Error(w, "Failed to update user details", http.StatusInternalServerError)
		return
	}

	view, err := s.userView(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" example:"newStrongPassword"`
}

// @Summary      Reset a user's password
// @Description  Admin-only password reset. The new password must be at least 8 characters.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId                path  int                   true  "User ID"
// @Param        resetPasswordRequest  body  ResetPasswordRequest  true  "New password"
// @Success      200  {object}  MessageResponse
// @Failure      400  {string}  string "Password too short"
// @Failure      404  {string}  string "User not found"
// @Router       /users/reset-password/{userId} [post]
func (s *Server) ResetPasswordHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.NewPassword) < 8 {
		http.Error(w, "Password must be at least 8 characters long", http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	updated, err := s.store.UpdateUserPassword(r.Context(), userID, hash)
	if err != nil {
		log.Printf("ERROR: Failed to reset password for user %d: %v", userID, err)
		http.Error(w, "Failed to reset password", http.StatusInternalServerError)
		return
	}
	if !updated {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "User password reset successfully"})
}

type UpdateRoleRequest struct {
	Role string `json:"role" example:"admin"`
}

// @Summary      Update a user's role
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId             path  int                true  "User ID"
// @Param        updateRoleRequest  body  UpdateRoleRequest  true  "New role"
// @Success      200  {object}  models.UserView
// @Failure      400  {string}  string "Invalid role"
// @Failure      404  {string}  string "User not found"
// @Router       /users/role/{userId} [put]
func (s *Server) UpdateRoleHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !models.IsValidRole(req.Role) {
		http.Error(w, "Invalid role", http.StatusBadRequest)
		return
	}

	user, err := s.store.UpdateUserRole(r.Context(), userID, req.Role)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update user role", http.StatusInternalServerError)
		return
	}

	view, err := s.userView(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

type UpdateStatusRequest struct {
	Status string `json:"status" example:"banned"`
}

// @Summary      Update a user's status
// @Description  Bans or reactivates an account. An already-issued token stays valid for its window; the ban takes effect at the next login.
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        userId               path  int                  true  "User ID"
// @Param        updateStatusRequest  body  UpdateStatusRequest  true  "New status"
// @Success      200  {object}  models.UserView
// @Failure      400  {string}  string "Invalid status"
// @Failure      404  {string}  string "User not found"
// @Router       /users/status/{userId} [put]
func (s *Server) UpdateStatusHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !models.IsValidStatus(req.Status) {
		http.Error(w, "Invalid status", http.StatusBadRequest)
		return
	}

	user, err := s.store.UpdateUserStatus(r.Context(), userID, req.Status)
	if err != nil {
		if errors.Is(err, database.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update user status", http.StatusInternalServerError)
		return
	}

	view, err := s.userView(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// @Summary      Get user details by ID
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path  int  true  "User ID"
// @Success      200  {object}  models.UserView
// @Failure      400  {string}  string "Invalid user ID"
// @Failure      404  {string}  string "User not found"
// @Router       /users/{userId}/details [get]
func (s *Server) GetUserDetailsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	user, err := s.store.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	view, err := s.userView(r.Context(), user)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, view)
}
