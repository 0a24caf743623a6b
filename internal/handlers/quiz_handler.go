package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aymaralearn/backend/internal/auth"
	"github.com/aymaralearn/backend/internal/models"
	"github.com/aymaralearn/backend/internal/quiz"
	"github.com/aymaralearn/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// QuizService is the interface that wraps quiz session operations
type QuizService interface {
	// Start opens a quiz session for a lesson
	//
	// "ctx" is the context for the request.
	// "userID" is the ID of the user.
	// "lessonSlug" is the slug of the lesson.
	//
	// Returns the session view and an error if any.
	Start(ctx context.Context, userID int, lessonSlug string) (*models.QuizState, error)
	// Get returns the current view of a session
	//
	// Please reference Start for parameter and error semantics.
	Get(ctx context.Context, userID int, sessionID string) (*models.QuizState, error)
	// Answer captures an option or boolean candidate for the current question
	//
	// "req" carries exactly one of the option or truth fields.
	Answer(ctx context.Context, userID int, sessionID string, req models.AnswerRequest) (*models.QuizState, error)
	// Match captures one matching pair choice for the current question
	Match(ctx context.Context, userID int, sessionID string, req models.MatchRequest) (*models.QuizState, error)
	// Check validates the captured answer for the current question
	Check(ctx context.Context, userID int, sessionID string) (*models.QuizState, error)
	// Advance moves past a checked question, finishing on the last one
	Advance(ctx context.Context, userID int, sessionID string) (*models.QuizState, error)
	// Abandon discards a session without persisting anything
	Abandon(ctx context.Context, userID int, sessionID string)
}

// QuizHandler handles HTTP requests for quiz sessions
type QuizHandler struct {
	BaseHandler
	service QuizService
}

// NewQuizHandler creates a new quiz handler
func NewQuizHandler(svc QuizService, logger *zap.Logger) *QuizHandler {
	return &QuizHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
	}
}

// RegisterRoutes registers all quiz handler routes
func (h *QuizHandler) RegisterRoutes(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Post("/lessons/{slug}/quiz", h.Start)
		r.Route("/quiz/{sessionID}", func(r chi.Router) {
			r.Get("/", h.Get)
			r.Delete("/", h.Abandon)
			r.Post("/answer", h.Answer)
			r.Post("/match", h.Match)
			r.Post("/check", h.Check)
			r.Post("/advance", h.Advance)
		})
	})
}

// Start handles POST /lessons/{slug}/quiz
// @Summary Start a quiz session
// @Description Open an ephemeral quiz session for an unlocked, uncompleted lesson
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param slug path string true "Lesson slug"
// @Success 201 {object} models.QuizState "Session view"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Precondition violation"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /lessons/{slug}/quiz [post]
func (h *QuizHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	state, err := h.service.Start(r.Context(), userID, chi.URLParam(r, "slug"))
	if err != nil {
		h.respondQuizError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusCreated, state)
}

// Get handles GET /quiz/{sessionID}
// @Summary Get the quiz session view
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.QuizState "Session view"
// @Failure 404 {object} map[string]string "Session not found"
// @Router /quiz/{sessionID} [get]
func (h *QuizHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
		return h.service.Get(ctx, userID, sessionID)
	})
}

// Answer handles POST /quiz/{sessionID}/answer
// @Summary Submit an answer candidate
// @Description Capture an option or boolean answer for the current question; a later submission overwrites an earlier one
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session ID"
// @Param request body models.AnswerRequest true "Answer candidate"
// @Success 200 {object} models.QuizState "Session view"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Precondition violation"
// @Router /quiz/{sessionID}/answer [post]
func (h *QuizHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req models.AnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.run(w, r, func(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
		return h.service.Answer(ctx, userID, sessionID, req)
	})
}

// Match handles POST /quiz/{sessionID}/match
// @Summary Submit one matching pair choice
// @Tags quiz
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session ID"
// @Param request body models.MatchRequest true "Matching choice"
// @Success 200 {object} models.QuizState "Session view"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Precondition violation"
// @Router /quiz/{sessionID}/match [post]
func (h *QuizHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req models.MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.run(w, r, func(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
		return h.service.Match(ctx, userID, sessionID, req)
	})
}

// Check handles POST /quiz/{sessionID}/check
// @Summary Check the current question
// @Description Validate the captured answer; checking an already-checked question is a score-neutral no-op
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.QuizState "Session view"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Precondition violation"
// @Router /quiz/{sessionID}/check [post]
func (h *QuizHandler) Check(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
		return h.service.Check(ctx, userID, sessionID)
	})
}

// Advance handles POST /quiz/{sessionID}/advance
// @Summary Advance past a checked question
// @Tags quiz
// @Produce json
// @Security ApiKeyAuth
// @Param sessionID path string true "Session ID"
// @Success 200 {object} models.QuizState "Session view"
// @Failure 404 {object} map[string]string "Session not found"
// @Failure 409 {object} map[string]string "Precondition violation"
// @Router /quiz/{sessionID}/advance [post]
func (h *QuizHandler) Advance(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(ctx context.Context, userID int, sessionID string) (*models.QuizState, error) {
		return h.service.Advance(ctx, userID, sessionID)
	})
}

// Abandon handles DELETE /quiz/{sessionID}
// @Summary Abandon a quiz session
// @Description Discard the session; nothing is persisted
// @Tags quiz
// @Security ApiKeyAuth
// @Param sessionID path string true "Session ID"
// @Success 204 "Session discarded"
// @Router /quiz/{sessionID} [delete]
func (h *QuizHandler) Abandon(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	h.service.Abandon(r.Context(), userID, chi.URLParam(r, "sessionID"))
	w.WriteHeader(http.StatusNoContent)
}

// run executes one session operation with shared auth and error mapping
func (h *QuizHandler) run(w http.ResponseWriter, r *http.Request, op func(context.Context, int, string) (*models.QuizState, error)) {
	userID, ok := auth.GetUserID(r.Context())
	if !ok {
		h.Logger.Error("user ID not found in context")
		h.RespondError(w, http.StatusUnauthorized, "user ID not found in context")
		return
	}

	state, err := op(r.Context(), userID, chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondQuizError(w, err)
		return
	}

	h.RespondJSON(w, http.StatusOK, state)
}

// respondQuizError maps quiz and service errors to HTTP responses.
// Precondition violations come back as 409 so clients can keep their
// controls in sync with the state machine.
func (h *QuizHandler) respondQuizError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quiz.ErrSessionNotFound):
		h.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, quiz.ErrNoAnswerSelected),
		errors.Is(err, quiz.ErrIncompleteMatching),
		errors.Is(err, quiz.ErrNotChecked),
		errors.Is(err, quiz.ErrAlreadyChecked),
		errors.Is(err, quiz.ErrWrongAnswerKind),
		errors.Is(err, quiz.ErrSessionFinished),
		errors.Is(err, services.ErrNoLives),
		errors.Is(err, services.ErrLessonLocked),
		errors.Is(err, services.ErrAlreadyCompleted),
		errors.Is(err, services.ErrNoQuizContent):
		h.RespondError(w, http.StatusConflict, err.Error())
	default:
		h.Logger.Error("quiz operation failed", zap.Error(err))
		h.RespondError(w, http.StatusInternalServerError, "quiz operation failed")
	}
}
