package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tfalohun/olera-sub001/internal/providermatch"
	"github.com/tfalohun/olera-sub001/internal/providermatch/models"
	id "github.com/tfalohun/olera-sub001/pkg/domain"
	dErrors "github.com/tfalohun/olera-sub001/pkg/domain-errors"
	"github.com/tfalohun/olera-sub001/pkg/platform/httputil"
	"github.com/tfalohun/olera-sub001/pkg/requestcontext"
)

//go:generate mockgen -source=handler.go -destination=mocks/service.go -package=mocks Service

// Service defines the interface for provider matching.
type Service interface {
	Match(ctx context.Context, userID id.UserID, page providermatch.PageRequest) (*models.Result, error)
}

// Handler serves provider matches to authenticated requesters.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts the provider routes. The caller wraps r with the auth
// middleware.
func (h *Handler) Register(r chi.Router) {
	r.Get("/providers/matches", h.HandleMatches)
}

// HandleMatches handles GET /providers/matches.
func (h *Handler) HandleMatches(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	userID := requestcontext.UserID(ctx)
	if userID.IsNil() {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "authentication required"))
		return
	}

	query := matchQueryFrom(r.URL.Query())
	if err := query.Validate(); err != nil {
		h.logger.WarnContext(ctx, "invalid provider match query",
			"request_id", requestID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	result, err := h.service.Match(ctx, userID, query.PageRequest())
	if err != nil {
		var de *dErrors.Error
		if dErrors.HasCode(err, dErrors.CodeValidation) && errors.As(err, &de) && result != nil {
			h.logger.InfoContext(ctx, "provider match skipped: incomplete profile",
				"request_id", requestID,
				"user_id", userID,
			)
			httputil.WriteJSON(w, http.StatusUnprocessableEntity, insufficientProfileResponse{
				Error:            string(dErrors.CodeValidation),
				ErrorDescription: de.Message,
				MatchResponse:    *FromResult(result),
			})
			return
		}
		h.logger.ErrorContext(ctx, "provider match failed",
			"request_id", requestID,
			"user_id", userID,
			"error", err,
		)
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "providers matched",
		"request_id", requestID,
		"user_id", userID,
		"returned", len(result.Candidates),
		"total", result.Total,
		"broadened", result.Broadened,
	)
	httputil.WriteJSON(w, http.StatusOK, FromResult(result))
}
