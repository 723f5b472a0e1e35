package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// CelebrityRepository implements ports.CelebrityRepository on the
// celebrities table
type CelebrityRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewCelebrityRepository creates a Supabase-backed celebrity repository
func NewCelebrityRepository(client *supa.Client, logger *zap.Logger) *CelebrityRepository {
	return &CelebrityRepository{
		client: client,
		logger: logger,
	}
}

// celebrityRow is one celebrities table row as PostgREST serves it
type celebrityRow struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"`
	Bio           string    `json:"bio"`
	PrimaryHandle string    `json:"primary_handle"`
	KnownManager  string    `json:"known_manager"`
	NodeIDs       []string  `json:"node_ids"`
	AccessScore   int       `json:"access_score"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Save persists a celebrity (create or update)
func (r *CelebrityRepository) Save(ctx context.Context, celebrity *entities.Celebrity) error {
	_, _, err := r.client.From(tableCelebrities).
		Insert(celebrityToRow(celebrity), true, "id", "minimal", "").
		Execute()
	if err != nil {
		r.logger.Error("Failed to save celebrity",
			zap.String("celebrityId", celebrity.ID().String()),
			zap.Error(err))
		return fmt.Errorf("failed to save celebrity: %w", err)
	}
	return nil
}

// GetByID retrieves a celebrity by its ID
func (r *CelebrityRepository) GetByID(ctx context.Context, id valueobjects.CelebrityID) (*entities.Celebrity, error) {
	data, _, err := r.client.From(tableCelebrities).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get celebrity: %w", err)
	}

	var rows []celebrityRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode celebrity: %w", err)
	}
	if len(rows) == 0 {
		return nil, pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("celebrity_id", id.String())
	}
	return rowToCelebrity(rows[0])
}

// GetAll retrieves the full roster ordered by name
func (r *CelebrityRepository) GetAll(ctx context.Context) ([]*entities.Celebrity, error) {
	data, _, err := r.client.From(tableCelebrities).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query roster: %w", err)
	}

	var rows []celebrityRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}

	roster := make([]*entities.Celebrity, 0, len(rows))
	for _, row := range rows {
		celebrity, err := rowToCelebrity(row)
		if err != nil {
			r.logger.Warn("Skipping unreconstructable celebrity",
				zap.String("celebrityId", row.ID),
				zap.Error(err))
			continue
		}
		roster = append(roster, celebrity)
	}
	sortRoster(roster, "", false)
	return roster, nil
}

// Search finds celebrities matching the given criteria. The roster is
// small enough that matching and ordering happen in process after the
// table read.
func (r *CelebrityRepository) Search(ctx context.Context, criteria ports.CelebritySearchCriteria) ([]*entities.Celebrity, error) {
	roster, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Celebrity, 0, len(roster))
	for _, celebrity := range roster {
		if criteria.Query != "" && !celebrity.MatchesQuery(criteria.Query) {
			continue
		}
		if criteria.Category != "" && !strings.EqualFold(celebrity.Category().String(), criteria.Category) {
			continue
		}
		matched = append(matched, celebrity)
	}

	sortRoster(matched, criteria.OrderBy, criteria.OrderDesc)

	if criteria.Offset > 0 {
		if criteria.Offset >= len(matched) {
			return []*entities.Celebrity{}, nil
		}
		matched = matched[criteria.Offset:]
	}
	if criteria.Limit > 0 && criteria.Limit < len(matched) {
		matched = matched[:criteria.Limit]
	}
	return matched, nil
}

// Delete removes a celebrity and everything stored under it. Circle
// members cascade through the nodes foreign key; edges, outreach, and
// version history are cleaned up explicitly because they reference the
// celebrity by plain ID.
func (r *CelebrityRepository) Delete(ctx context.Context, id valueobjects.CelebrityID) error {
	data, _, err := r.client.From(tableCelebrities).
		Delete("representation", "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete celebrity: %w", err)
	}

	var removed []celebrityRow
	if err := json.Unmarshal(data, &removed); err != nil {
		return fmt.Errorf("failed to decode delete result: %w", err)
	}
	if len(removed) == 0 {
		return pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("celebrity_id", id.String())
	}

	for _, table := range []string{tableEdges, tableOutreach, tableSnapshotVersions} {
		_, _, err := r.client.From(table).
			Delete("minimal", "").
			Eq("celebrity_id", id.String()).
			Execute()
		if err != nil {
			return fmt.Errorf("failed to clean up %s for celebrity: %w", table, err)
		}
	}

	r.logger.Info("Deleted celebrity",
		zap.String("celebrityId", id.String()))
	return nil
}

// BulkSave saves multiple celebrities in one batch, used by seeding
func (r *CelebrityRepository) BulkSave(ctx context.Context, celebrities []*entities.Celebrity) error {
	if len(celebrities) == 0 {
		return nil
	}

	rows := make([]celebrityRow, 0, len(celebrities))
	for _, celebrity := range celebrities {
		rows = append(rows, celebrityToRow(celebrity))
	}
	_, _, err := r.client.From(tableCelebrities).
		Insert(rows, true, "id", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to bulk save celebrities: %w", err)
	}
	return nil
}

func celebrityToRow(celebrity *entities.Celebrity) celebrityRow {
	nodeIDs := make([]string, 0, celebrity.NodeCount())
	for _, nodeID := range celebrity.NodeIDs() {
		nodeIDs = append(nodeIDs, nodeID.String())
	}
	return celebrityRow{
		ID:            celebrity.ID().String(),
		Name:          celebrity.Name(),
		Category:      celebrity.Category().String(),
		Bio:           celebrity.Bio(),
		PrimaryHandle: celebrity.PrimaryHandle(),
		KnownManager:  celebrity.KnownManager(),
		NodeIDs:       nodeIDs,
		AccessScore:   celebrity.AccessScore(),
		CreatedAt:     celebrity.CreatedAt(),
		UpdatedAt:     celebrity.UpdatedAt(),
	}
}

func rowToCelebrity(row celebrityRow) (*entities.Celebrity, error) {
	id, err := valueobjects.NewCelebrityIDFromString(row.ID)
	if err != nil {
		return nil, fmt.Errorf("stored celebrity has invalid ID: %w", err)
	}
	category, err := valueobjects.ParseCategory(row.Category)
	if err != nil {
		return nil, fmt.Errorf("stored celebrity has invalid category: %w", err)
	}

	nodeIDs := make([]valueobjects.NodeID, 0, len(row.NodeIDs))
	for _, raw := range row.NodeIDs {
		nodeID, err := valueobjects.NewNodeIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("stored celebrity has invalid node ID: %w", err)
		}
		nodeIDs = append(nodeIDs, nodeID)
	}

	return entities.ReconstructCelebrity(
		id,
		row.Name,
		category,
		row.Bio,
		row.PrimaryHandle,
		row.KnownManager,
		nodeIDs,
		row.AccessScore,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

// sortRoster orders search results by the requested column, name by default
func sortRoster(roster []*entities.Celebrity, orderBy string, desc bool) {
	less := func(i, j int) bool {
		return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
	}
	if orderBy == "access_score" {
		less = func(i, j int) bool {
			if roster[i].AccessScore() != roster[j].AccessScore() {
				return roster[i].AccessScore() < roster[j].AccessScore()
			}
			return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
		}
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.Slice(roster, less)
}
