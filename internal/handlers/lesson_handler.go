package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aymaralearn/backend/internal/auth"
	"github.com/aymaralearn/backend/internal/models"
	"github.com/aymaralearn/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// LessonService is the interface that wraps methods for the learning path
type LessonService interface {
	// GetLearningPath retrieves the ordered lesson list for a user with
	// unlock, completion, and star state resolved
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	//
	// Returns the lesson list and an error if any.
	GetLearningPath(ctx context.Context, userID int) ([]models.LessonListItem, error)
}

// ProgressService is the interface that wraps lesson attempt submission
type ProgressService interface {
	// SubmitAttempt applies the reward rules for one binary attempt outcome
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "lessonSlug" is the slug of the attempted lesson.
	// "passed" is the binary attempt outcome.
	//
	// Returns the applied rewards and an error if any.
	SubmitAttempt(ctx context.Context, userID int, lessonSlug string, passed bool) (*models.AttemptResult, error)
}

// LessonHandler handles HTTP requests for the learning path
type LessonHandler struct {
	BaseHandler
	lessons  LessonService
	progress ProgressService
}

// NewLessonHandler creates a new lesson handler
func NewLessonHandler(lessons LessonService, progress ProgressService, logger *zap.Logger) *LessonHandler {
	return &LessonHandler{
		BaseHandler: BaseHandler{Logger: logger},
		lessons:     lessons,
		progress:    progress,
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Route("/lessons", func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/", h.GetLearningPath)
		r.Post("/{slug}/attempt", h.SubmitAttempt)
	})
}

// GetLearningPath handles GET /lessons
// @Summary Get the learning path
// @Description Get the ordered lesson list with unlock, completion, and star state for the current user
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} models.LessonListItem "Lesson list"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons [get]
func (h *LessonHandler) GetLearningPath(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	items, err := h.lessons.GetLearningPath(r.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to get learning path", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to get learning path")
		return
	}

	h.RespondJSON(w, http.StatusOK, items)
}

// SubmitAttempt handles POST /lessons/{slug}/attempt
// @Summary Submit a lesson attempt outcome
// @Description Apply rewards for a binary pass/fail lesson attempt
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Lesson slug"
// @Param request body models.AttemptRequest true "Attempt outcome"
// @Success 200 {object} models.AttemptResult "Applied rewards"
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Precondition violation"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{slug}/attempt [post]
func (h *LessonHandler) SubmitAttempt(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	slug := chi.URLParam(r, "slug")

	var req models.AttemptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.progress.SubmitAttempt(r.Context(), userID, slug, req.Passed)
	if err != nil {
		h.respondAttemptError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, result)
}

// respondAttemptError maps service errors to HTTP responses
func (h *LessonHandler) respondAttemptError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoLives),
		errors.Is(err, services.ErrLessonLocked),
		errors.Is(err, services.ErrAlreadyCompleted):
		h.RespondError(w, http.StatusConflict, err.Error())
	default:
		h.Logger.Error("failed to submit attempt", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "failed to submit attempt")
	}
}
