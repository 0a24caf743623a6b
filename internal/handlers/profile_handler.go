package handlers

import (
	"context"
	"net/http"

	"github.com/aymaralearn/backend/internal/auth"
	"github.com/aymaralearn/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProfileReader is the interface that wraps profile retrieval
type ProfileReader interface {
	// GetByUserID retrieves a user's profile
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the profile and an error if any.
	GetByUserID(ctx context.Context, userID int) (*models.Profile, error)
}

// ProfileHandler handles HTTP requests for the user profile
type ProfileHandler struct {
	BaseHandler
	profiles ProfileReader
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profiles ProfileReader, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler: BaseHandler{Logger: logger},
		profiles:    profiles,
	}
}

// RegisterRoutes registers all profile handler routes
func (h *ProfileHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/profile", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetProfile)
	})
}

// GetProfile handles GET /profile
// @Summary Get the current user's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} models.Profile "Profile"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	profile, err := h.profiles.GetByUserID(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get profile", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	h.RespondJSON(w, http.StatusOK, profile)
}
