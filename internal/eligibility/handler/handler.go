package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tfalohun/olera-sub001/internal/eligibility/models"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/platform/httputil"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

// Service defines the interface for eligibility operations.
type Service interface {
	Match(ctx context.Context, answers models.AnswerSet) (*models.MatchResult, error)
}

// Handler wires eligibility endpoints to the eligibility service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs an eligibility handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts eligibility endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/eligibility/match", h.HandleMatch)
}

// HandleMatch handles POST /eligibility/match requests. The intake is
// anonymous; no authentication is required.
func (h *Handler) HandleMatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	start := time.Now()

	req, ok := httputil.DecodeAndPrepare[MatchRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}
	answers := req.AnswerSet()

	result, err := h.service.Match(ctx, answers)
	if err != nil {
		level := slog.LevelError
		if dErrors.HasCode(err, dErrors.CodeValidation) {
			level = slog.LevelWarn
		}
		h.logger.Log(ctx, level, "eligibility match failed",
			"request_id", requestID,
			"region", answers.Region,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "eligibility matched",
		"request_id", requestID,
		"region", result.Region,
		"matches", len(result.Matches),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
