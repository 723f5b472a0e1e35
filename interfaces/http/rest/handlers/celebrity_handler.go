package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	cmdbus "accessengine-backend/application/commands/bus"
	"accessengine-backend/application/queries"
	querybus "accessengine-backend/application/queries/bus"
	"accessengine-backend/pkg/common"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/utils"
)

// CelebrityHandler serves the roster, graph, scoring and path routes.
// All reads go through the query bus; anything that mutates state or
// triggers a rebuild goes through the command bus.
type CelebrityHandler struct {
	commandBus   *cmdbus.CommandBus
	queryBus     *querybus.QueryBus
	errorHandler *pkgerrors.ErrorHandler
	logger       *zap.Logger
}

// NewCelebrityHandler creates a new celebrity handler
func NewCelebrityHandler(
	commandBus *cmdbus.CommandBus,
	queryBus *querybus.QueryBus,
	errorHandler *pkgerrors.ErrorHandler,
	logger *zap.Logger,
) *CelebrityHandler {
	return &CelebrityHandler{
		commandBus:   commandBus,
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// askWarm dispatches a snapshot-backed query, building the snapshot on
// first access when none exists yet. Reads after the initial rebuild hit
// the stored snapshot directly.
func (h *CelebrityHandler) askWarm(ctx context.Context, celebrityID string, query querybus.Query) (interface{}, error) {
	result, err := h.queryBus.Ask(ctx, query)
	if err == nil || !errors.Is(err, pkgerrors.ErrSnapshotMissing) {
		return result, err
	}

	if _, rebuildErr := h.commandBus.Send(ctx, commands.RebuildCircleCommand{
		CelebrityID: celebrityID,
		Reason:      "first_access",
	}); rebuildErr != nil {
		return nil, rebuildErr
	}

	return h.queryBus.Ask(ctx, query)
}

// List handles GET /api/v1/celebrities
func (h *CelebrityHandler) List(w http.ResponseWriter, r *http.Request) {
	params := common.ExtractPaginationParams(r)

	result, err := h.queryBus.Ask(r.Context(), queries.ListCelebritiesQuery{
		Category: r.URL.Query().Get("category"),
		Page:     params.Page,
		PageSize: params.PageSize,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Search handles POST /api/v1/celebrities/search
func (h *CelebrityHandler) Search(w http.ResponseWriter, r *http.Request) {
	var cmd commands.SearchCelebrityCommand
	if err := decodeJSON(w, r, &cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if err := utils.ValidateStruct(cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	report, err := h.commandBus.Send(r.Context(), cmd)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, report)
}

// GetGraph handles GET /api/v1/celebrities/{celebrityID}/graph
func (h *CelebrityHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	celebrityID := chi.URLParam(r, "celebrityID")

	result, err := h.askWarm(r.Context(), celebrityID, queries.GetGraphDataQuery{CelebrityID: celebrityID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetScore handles GET /api/v1/celebrities/{celebrityID}/score
func (h *CelebrityHandler) GetScore(w http.ResponseWriter, r *http.Request) {
	celebrityID := chi.URLParam(r, "celebrityID")

	result, err := h.queryBus.Ask(r.Context(), queries.AccessScoreQuery{CelebrityID: celebrityID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// ListNodes handles GET /api/v1/celebrities/{celebrityID}/nodes
func (h *CelebrityHandler) ListNodes(w http.ResponseWriter, r *http.Request) {
	celebrityID := chi.URLParam(r, "celebrityID")

	result, err := h.askWarm(r.Context(), celebrityID, queries.ListNodesQuery{CelebrityID: celebrityID})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// GetBestPath handles GET /api/v1/celebrities/{celebrityID}/best-path
func (h *CelebrityHandler) GetBestPath(w http.ResponseWriter, r *http.Request) {
	celebrityID := chi.URLParam(r, "celebrityID")

	query := queries.BestPathQuery{
		CelebrityID: celebrityID,
		Industry:    r.URL.Query().Get("industry"),
	}
	if raw := r.URL.Query().Get("top_k"); raw != "" {
		topK, err := strconv.Atoi(raw)
		if err != nil || topK < 0 {
			h.errorHandler.HandleStatus(w, r, http.StatusBadRequest, "top_k must be a non-negative integer")
			return
		}
		query.TopK = topK
	}
	if raw := r.URL.Query().Get("connections"); raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				query.Connections = append(query.Connections, c)
			}
		}
	}

	result, err := h.askWarm(r.Context(), celebrityID, query)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// Rebuild handles POST /api/v1/celebrities/{celebrityID}/rebuild. The
// body is optional; an empty one requests a manual rebuild.
func (h *CelebrityHandler) Rebuild(w http.ResponseWriter, r *http.Request) {
	celebrityID := chi.URLParam(r, "celebrityID")

	var body struct {
		Reason string `json:"reason"`
	}
	if err := decodeJSON(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	if body.Reason == "" {
		body.Reason = "manual"
	}

	result, err := h.commandBus.Send(r.Context(), commands.RebuildCircleCommand{
		CelebrityID: celebrityID,
		Reason:      body.Reason,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, result)
}

// AddNode handles POST /api/v1/celebrities/{celebrityID}/nodes. The
// celebrity comes from the path, not the body; any body value is
// overridden.
func (h *CelebrityHandler) AddNode(w http.ResponseWriter, r *http.Request) {
	var cmd commands.AddPersonCommand
	if err := decodeJSON(w, r, &cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError("invalid request body").WithCause(err))
		return
	}
	cmd.CelebrityID = chi.URLParam(r, "celebrityID")

	if err := utils.ValidateStruct(cmd); err != nil {
		h.errorHandler.Handle(w, r, pkgerrors.NewValidationError(err.Error()))
		return
	}

	result, err := h.commandBus.Send(r.Context(), cmd)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	respondJSON(w, h.logger, http.StatusCreated, result)
}
