package handlers

import (
	"context"
	"net/http"

	"github.com/aymaralearn/backend/internal/auth"
	"github.com/aymaralearn/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// FrogService is the interface that wraps the daily frog visit
type FrogService interface {
	// Visit evaluates the user's daily streak and persists the result
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the visit result and an error if any.
	Visit(ctx context.Context, userID int) (*models.FrogVisitResult, error)
}

// FrogHandler handles HTTP requests for the frog companion
type FrogHandler struct {
	BaseHandler
	service FrogService
}

// NewFrogHandler creates a new frog handler
func NewFrogHandler(svc FrogService, logger *zap.Logger) *FrogHandler {
	return &FrogHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all frog handler routes
func (h *FrogHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/frog", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/visit", h.Visit)
	})
}

// Visit handles POST /frog/visit
// @Summary Record a daily frog visit
// @Description Evaluate the visit streak and grow or reset the frog accordingly
// @Tags frog
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.FrogVisitResult "Visit result"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /frog/visit [post]
func (h *FrogHandler) Visit(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	result, err := h.service.Visit(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to record frog visit", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to record frog visit")
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}
