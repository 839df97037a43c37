package api

import (
	"encoding/json"
	"net/http"

	"pagehub/internal/config"
	"pagehub/internal/database"
	"pagehub/internal/storage"
)

type Server struct {
	config  *config.Config
	store   *database.Store
	storage storage.ObjectStorage
}

func NewServer(cfg *config.Config, store *database.Store, storage storage.ObjectStorage) *Server {
	return &Server{
		config:  cfg,
		store:   store,
		storage: storage,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type MessageResponse struct {
	Message string `json:"message"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  MessageResponse
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.store.GetPool().Ping(r.Context()); err != nil {
		http.Error(w, "Database unreachable", http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "OK"})
}
