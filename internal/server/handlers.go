package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Lestat2Lioncourt/discord-bot/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// QueueStatusResponse reports the current extraction backlog
type QueueStatusResponse struct {
	Pending int `json:"pending"`
}

func (s *Server) handleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

func (s *Server) handleReadyz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadyCheckTimeout)
		defer cancel()

		if err := s.dbPool.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error(LogMsgReadyCheckFailed, "error", err)
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  StatusUnavailable,
				Message: "database unreachable",
			})
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

func (s *Server) handleQueueStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pending, err := s.queue.PendingCount(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error(LogMsgQueueStatusFailed, "error", err)
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, QueueStatusResponse{Pending: pending})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
