package supabase

import (
	"context"
	"encoding/json"
	"fmt"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/valueobjects"
)

// EdgeRepository implements ports.EdgeRecordRepository on the edges
// table. The primary key covers celebrity, source, and target, so
// re-submitting the same pair overwrites rather than duplicates.
type EdgeRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewEdgeRepository creates a Supabase-backed edge record repository
func NewEdgeRepository(client *supa.Client, logger *zap.Logger) *EdgeRepository {
	return &EdgeRepository{
		client: client,
		logger: logger,
	}
}

// edgeRow is one edges table row
type edgeRow struct {
	CelebrityID string `json:"celebrity_id"`
	SourceKey   string `json:"source_key"`
	TargetKey   string `json:"target_key"`
	Strength    int    `json:"strength"`
}

// SaveBatch replaces or appends edge records for a celebrity
func (r *EdgeRepository) SaveBatch(ctx context.Context, celebrityID valueobjects.CelebrityID, edges []aggregates.RawEdge) error {
	if len(edges) == 0 {
		return nil
	}

	rows := make([]edgeRow, 0, len(edges))
	for _, edge := range edges {
		rows = append(rows, edgeRow{
			CelebrityID: celebrityID.String(),
			SourceKey:   edge.SourceKey,
			TargetKey:   edge.TargetKey,
			Strength:    edge.Strength,
		})
	}
	_, _, err := r.client.From(tableEdges).
		Insert(rows, true, "celebrity_id,source_key,target_key", "minimal", "").
		Execute()
	if err != nil {
		r.logger.Error("Failed to save edges",
			zap.String("celebrityId", celebrityID.String()),
			zap.Int("edgeCount", len(edges)),
			zap.Error(err))
		return fmt.Errorf("failed to save edges: %w", err)
	}
	return nil
}

// GetByCelebrityID retrieves all edge records for a celebrity
func (r *EdgeRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]aggregates.RawEdge, error) {
	data, _, err := r.client.From(tableEdges).
		Select("*", "", false).
		Eq("celebrity_id", celebrityID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}

	var rows []edgeRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode edges: %w", err)
	}

	edges := make([]aggregates.RawEdge, 0, len(rows))
	for _, row := range rows {
		edges = append(edges, aggregates.RawEdge{
			SourceKey: row.SourceKey,
			TargetKey: row.TargetKey,
			Strength:  row.Strength,
		})
	}
	return edges, nil
}

// DeleteByCelebrityID removes all edge records for a celebrity
func (r *EdgeRepository) DeleteByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) error {
	_, _, err := r.client.From(tableEdges).
		Delete("minimal", "").
		Eq("celebrity_id", celebrityID.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete edges: %w", err)
	}
	return nil
}
