package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	cmdbus "accessengine-backend/application/commands/bus"
	"accessengine-backend/application/queries"
	querybus "accessengine-backend/application/queries/bus"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/utils"
)

// OutreachHandler serves draft generation and the outreach lifecycle
type OutreachHandler struct {
	commandBus      *cmdbus.CommandBus
	queryBus        *querybus.QueryBus
	errorHandler    *pkgerrors.ErrorHandler
	generateTimeout time.Duration
	logger          *zap.Logger
}

// NewOutreachHandler creates a new outreach handler. generateTimeout
// bounds the model call on the generate route; other routes run under
// the request context alone.
func NewOutreachHandler(
	commandBus *cmdbus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	generateTimeout time.Duration,
	logger *zap.Logger,
) *OutreachHandler {
	return &OutreachHandler{
		commandBus:      commandBus,
		queryBus:        queryBus,
		errorHandler:    errorHandler,
		generateTimeout: generateTimeout,
		logger:          logger,
	}
}

// Generate handles POST /api/v1/outreach/generate
func (h *OutreachHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var cmd commands.GenerateOutreachCommand
	if err := decodeJSON(w, r, &cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	ctx := r.Context()
	if h.generateTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.generateTimeout)
		defer cancel()
	}

	result, err := h.commandBus.Send(ctx, cmd)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// History handles GET /api/v1/outreach/celebrity/{celebrityID}
func (h *OutreachHandler) History(w http.ResponseWriter, r *http.Request) {
	celebrityID := chi.URLParam(r, "celebrityID")

	result, err := h.queryBus.Ask(r.Context(), queries.ListOutreachQuery{CelebrityID: celebrityID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// UpdateStatus handles PATCH /api/v1/outreach/{outreachID}/status
func (h *OutreachHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}

	result, err := h.commandBus.Send(r.Context(), commands.UpdateOutreachStatusCommand{
		OutreachID: chi.URLParam(r, "outreachID"),
		Status:     body.Status,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Stats handles GET /api/v1/outreach/stats
func (h *OutreachHandler) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.OutreachStatsQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}
