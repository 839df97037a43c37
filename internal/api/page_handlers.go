package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"pagehub/internal/database"
	"pagehub/internal/models"
	"pagehub/internal/subscription"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jaevor/go-nanoid"
)

const maxUploadBytes = 10 << 20 // 10 MiB

type PageRequest struct {
	Title  string         `json:"title" example:"My first page"`
	Blocks []models.Block `json:"blocks"`
	// UserID is accepted for wire compatibility and ignored: page ownership
	// always comes from the authenticated claim.
	UserID int64 `json:"userId,omitempty"`
}

func (s *Server) generateUniquePageID(ctx context.Context) (string, error) {
	maxRetries := 10

	generateID, err := nanoid.Standard(21)
	if err != nil {
		return "", fmt.Errorf("failed to initialize nanoid generator: %w", err)
	}

	for i := 0; i < maxRetries; i++ {
		id := generateID()
		exists, err := s.store.PageExists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("failed to check for page existence: %w", err)
		}
		if !exists {
			return id, nil
		}
	}

	return "", fmt.Errorf("failed to generate a unique ID after %d attempts", maxRetries)
}

func validateBlocks(blocks []models.Block) error {
	for _, block := range blocks {
		if !models.IsValidBlockType(block.Type) {
			return fmt.Errorf("invalid block type %q", block.Type)
		}
	}
	return nil
}

// @Summary      Create a page
// @Description  Creates a page owned by the authenticated user. Free accounts are limited to 10 non-deleted pages; a paid subscription lifts the limit.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        pageRequest  body      PageRequest  true  "Page content"
// @Success      201          {object}  models.Page
// @Failure      400          {string}  string "Validation failure"
// @Failure      403          {string}  string "Page creation limit reached"
// @Failure      500          {string}  string "Internal Server Error"
// @Router       /pages [post]
func (s *Server) CreatePageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if err := validateBlocks(req.Blocks); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Quota decision re-reads the store of record; the token claim carries
	// no subscription state. Check-then-act: concurrent creations can
	// transiently overshoot the limit, which is an accepted design limit.
	user, err := s.store.GetUserByID(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	count, err := s.store.CountActivePages(r.Context(), claims.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if !subscription.CanCreate(user.SubscriptionStatus, count) {
		http.Error(w, "Page creation limit reached. Upgrade to create more pages.", http.StatusForbidden)
		return
	}

	pageID, err := s.generateUniquePageID(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	page, err := s.store.CreatePage(r.Context(), database.CreatePageParams{
		ID:      pageID,
		OwnerID: claims.UserID,
		Title:   req.Title,
		Blocks:  req.Blocks,
	})
	if err != nil {
		log.Printf("ERROR: Failed to create page for user %d: %v", claims.UserID, err)
		http.Error(w, "Failed to create page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, page)
}

// @Summary      List pages
// @Description  Lists non-deleted pages for the given userId filter, defaulting to the authenticated user.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     int  false  "Owner filter"
// @Success      200     {array}   models.Page
// @Failure      400     {string}  string "Invalid userId"
// @Failure      500     {string}  string "Internal Server Error"
// @Router       /pages [get]
func (s *Server) ListPagesHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())

	ownerID := claims.UserID
	if userIDStr := r.URL.Query().Get("userId"); userIDStr != "" {
		parsed, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid userId", http.StatusBadRequest)
			return
		}
		ownerID = parsed
	}

	pages, err := s.store.ListPages(r.Context(), ownerID)
	if err != nil {
		http.Error(w, "Failed to list pages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, pages)
}

// @Summary      Get a page by ID
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Page ID"
// @Success      200  {object}  models.Page
// @Failure      404  {string}  string "Page not found"
// @Router       /pages/{id} [get]
func (s *Server) GetPageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	pageID := chi.URLParam(r, "id")

	page, err := s.store.GetPageByID(r.Context(), pageID, claims.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if page == nil {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// @Summary      Update a page
// @Description  Replaces title and blocks. The match is scoped to the authenticated owner; a userId in the body is ignored.
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id           path      string       true  "Page ID"
// @Param        pageRequest  body      PageRequest  true  "New content"
// @Success      200          {object}  models.Page
// @Failure      400          {string}  string "Validation failure"
// @Failure      404          {string}  string "Page not found"
// @Router       /pages/{id} [put]
func (s *Server) UpdatePageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	pageID := chi.URLParam(r, "id")

	var req PageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		http.Error(w, "Title is required", http.StatusBadRequest)
		return
	}
	if err := validateBlocks(req.Blocks); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	page, err := s.store.UpdatePage(r.Context(), pageID, claims.UserID, req.Title, req.Blocks)
	if err != nil {
		if errors.Is(err, database.ErrPageNotFound) {
			http.Error(w, "Page not found", http.StatusNotFound)
			return
		}
		log.Printf("ERROR: Failed to update page %s: %v", pageID, err)
		http.Error(w, "Failed to update page", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// @Summary      Delete a page
// @Description  Soft-deletes the page: it disappears from listings and counts but the record is retained.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Page ID"
// @Success      200  {object}  MessageResponse
// @Failure      404  {string}  string "Page not found"
// @Router       /pages/{id} [delete]
func (s *Server) DeletePageHandler(w http.ResponseWriter, r *http.Request) {
	claims := GetUserFromContext(r.Context())
	pageID := chi.URLParam(r, "id")

	deleted, err := s.store.SoftDeletePage(r.Context(), pageID, claims.UserID)
	if err != nil {
		http.Error(w, "Failed to delete page", http.StatusInternalServerError)
		return
	}
	if !deleted {
		http.Error(w, "Page not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Page deleted successfully"})
}

type UploadImageResponse struct {
	Message string `json:"message"`
	FileURL string `json:"fileUrl"`
	Key     string `json:"key"`
}

// @Summary      Upload an image
// @Description  Uploads a multipart image to object storage under a generated key and returns its public URL.
// @Tags         pages
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image  formData  file  true  "Image file"
// @Success      200    {object}  UploadImageResponse
// @Failure      400    {string}  string "No file provided"
// @Failure      500    {string}  string "Error uploading file"
// @Router       /pages/upload [post]
func (s *Server) UploadImageHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "Error uploading file", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "No file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	key := uuid.NewString() + filepath.Ext(header.Filename)
	contentType := header.Header.Get("Content-Type")

	fileURL, err := s.storage.PutObject(r.Context(), key, file, contentType)
	if err != nil {
		log.Printf("ERROR: Failed to upload image %s: %v", key, err)
		http.Error(w, "Error uploading to object storage", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, UploadImageResponse{
		Message: "File uploaded successfully",
		FileURL: fileURL,
		Key:     key,
	})
}

type DeleteImageRequest struct {
	Key string `json:"key" example:"a9f1c3d2-7b4e-4f55-9c1a-0d2e8b6f3a41.png"`
}

// @Summary      Delete an uploaded image
// @Tags         pages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        deleteImageRequest  body      DeleteImageRequest  true  "Object key"
// @Success      200  {object}  MessageResponse
// @Failure      400  {string}  string "Image key is required"
// @Failure      500  {string}  string "Failed to delete image"
// @Router       /pages/delete/image [delete]
func (s *Server) DeleteImageHandler(w http.ResponseWriter, r *http.Request) {
	var req DeleteImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Key == "" {
		http.Error(w, "Image key is required", http.StatusBadRequest)
		return
	}

	if err := s.storage.DeleteObject(r.Context(), req.Key); err != nil {
		log.Printf("ERROR: Failed to delete image %s: %v", req.Key, err)
		http.Error(w, "Failed to delete image", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Image deleted successfully"})
}

type PageLimitResponse struct {
	PageCount          int        `json:"pageCount"`
	MaxPages           int        `json:"maxPages"`
	CanCreate          bool       `json:"canCreate"`
	RemainingPages     int        `json:"remainingPages"`
	UserPaidStatus     bool       `json:"userPaidStatus"`
	SubscriptionExpiry *time.Time `json:"subscriptionExpiry"`
}

// @Summary      Check the page creation limit
// @Description  Reports the quota state for the given user: non-deleted page count against the free limit and whether creation is currently allowed.
// @Tags         pages
// @Produce      json
// @Security     BearerAuth
// @Param        userId  query     int  true  "User ID"
// @Success      200     {object}  PageLimitResponse
// @Failure      400     {string}  string "User ID is required"
// @Failure      404     {string}  string "User not found"
// @Router       /pages/page/limit [get]
func (s *Server) PageLimitHandler(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("userId")
	if userIDStr == "" {
		http.Error(w, "User ID is required in query parameters", http.StatusBadRequest)
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID provided", http.StatusBadRequest)
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

	count, err := s.store.CountActivePages(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to count pages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, PageLimitResponse{
		PageCount:          count,
		MaxPages:           subscription.FreePageLimit,
		CanCreate:          subscription.CanCreate(user.SubscriptionStatus, count),
		RemainingPages:     subscription.Remaining(user.SubscriptionStatus, count),
		UserPaidStatus:     user.SubscriptionStatus == models.SubscriptionPaid,
		SubscriptionExpiry: user.SubscriptionExpiry,
	})
}
