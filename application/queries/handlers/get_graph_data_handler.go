package handlers

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// rootVisID anchors the frontend layout; every snapshot renders the
// celebrity under this fixed id.
const rootVisID = "celebrity"

// topNodesLimit caps the dashboard side list
const topNodesLimit = 8

// tagColors is the dashboard palette; unlisted tags render gray
var tagColors = map[string]string{
	"manager":      "#FF6B6B",
	"investor":     "#4ECDC4",
	"collaborator": "#45B7D1",
	"media":        "#96CEB4",
	"colleague":    "#FFEAA7",
	"partner":      "#DDA0DD",
}

const (
	defaultTagColor = "#A0A0A0"
	rootBackground  = "#FFD700"
	rootBorder      = "#FFA500"
)

// GetGraphDataHandler builds the vis.js payload for the dashboard
type GetGraphDataHandler struct {
	celebrityRepo ports.CelebrityRepository
	snapshots     ports.SnapshotRepository
	logger        *zap.Logger
}

// NewGetGraphDataHandler creates a new graph data handler
func NewGetGraphDataHandler(
	celebrityRepo ports.CelebrityRepository,
	snapshots ports.SnapshotRepository,
	logger *zap.Logger,
) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		celebrityRepo: celebrityRepo,
		snapshots:     snapshots,
		logger:        logger,
	}
}

// Handle executes the graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(query.CelebrityID)
	if err != nil {
		return nil, pkgerrors.NewValidationError(err.Error())
	}

	celebrity, err := h.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	snapshot, ok := h.snapshots.Get(ctx, celebrityID)
	if !ok {
		return nil, pkgerrors.ErrSnapshotMissing.Clone().WithDetail("celebrity_id", query.CelebrityID)
	}

	people := snapshot.Graph.People()

	result := &queries.GetGraphDataResult{
		CelebrityID: query.CelebrityID,
		Nodes:       make([]queries.VisNode, 0, len(people)+1),
		Edges:       make([]queries.VisEdge, 0, len(people)),
		Stats: queries.GraphStats{
			NodeCount:   snapshot.Graph.NodeCount(),
			EdgeCount:   snapshot.Graph.EdgeCount(),
			PrunedCount: snapshot.Graph.PrunedCount(),
		},
	}
	if snapshot.Version != nil {
		result.Stats.Version = snapshot.Version.Version
	}

	result.Nodes = append(result.Nodes, queries.VisNode{
		ID:    rootVisID,
		Label: celebrity.Name(),
		Group: rootVisID,
		Size:  40,
		Color: queries.VisColor{Background: rootBackground, Border: rootBorder},
		Font:  &queries.VisFont{Size: 16, Bold: true},
	})

	views := make([]queries.NodeView, 0, len(people))
	for _, person := range people {
		view := buildNodeView(snapshot, person)
		views = append(views, view)

		color, found := tagColors[view.Tag]
		if !found {
			color = defaultTagColor
		}

		result.Nodes = append(result.Nodes, queries.VisNode{
			ID:          view.ID,
			Label:       view.Name,
			Group:       view.Tag,
			Title:       fmt.Sprintf("%s\nWarm score: %d/100", view.Role, view.WarmScore),
			Size:        20 + view.WarmScore/10,
			Color:       queries.VisColor{Background: color, Border: color},
			HopDistance: view.HopDistance,
			WarmScore:   view.WarmScore,
			WhyWarm:     view.WhyWarm,
			ContactInfo: view.ContactInfo,
		})

		// Each member draws one edge toward the root: direct members to
		// the celebrity, deeper members to their strongest closer neighbor.
		target := rootVisID
		if step, found := snapshot.Graph.StepTowardRoot(person.ID()); found && !step.Equals(snapshot.Graph.RootID()) {
			target = step.String()
		}

		edge := queries.VisEdge{
			From:   view.ID,
			To:     target,
			Label:  view.Tag,
			Width:  1,
			Dashes: view.HopDistance > 1,
		}
		if view.HopDistance == 1 {
			edge.Width = 3
		}
		result.Edges = append(result.Edges, edge)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].WarmScore > views[j].WarmScore
	})
	if len(views) > topNodesLimit {
		views = views[:topNodesLimit]
	}
	result.TopNodes = views

	h.logger.Debug("Graph data retrieved",
		zap.String("celebrityID", query.CelebrityID),
		zap.Int("nodeCount", result.Stats.NodeCount),
		zap.Int("edgeCount", result.Stats.EdgeCount),
	)

	return result, nil
}
