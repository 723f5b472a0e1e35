package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// OutreachRepository implements ports.OutreachRepository on the
// outreach table
type OutreachRepository struct {
	client *supa.Client
	logger *zap.Logger
}

// NewOutreachRepository creates a Supabase-backed outreach repository
func NewOutreachRepository(client *supa.Client, logger *zap.Logger) *OutreachRepository {
	return &OutreachRepository{
		client: client,
		logger: logger,
	}
}

// outreachRow is one outreach table row
type outreachRow struct {
	ID               string    `json:"id"`
	CelebrityID      string    `json:"celebrity_id"`
	NodeID           string    `json:"node_id"`
	RecipientName    string    `json:"recipient_name"`
	ChannelType      string    `json:"channel_type"`
	ChannelHandle    string    `json:"channel_handle"`
	ChannelPublic    bool      `json:"channel_public"`
	SubjectLine      string    `json:"subject_line"`
	MessageText      string    `json:"message_text"`
	ValueProposition string    `json:"value_proposition"`
	HopLabel         string    `json:"hop_label"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// Save persists an outreach record (create or update)
func (r *OutreachRepository) Save(ctx context.Context, outreach *entities.Outreach) error {
	_, _, err := r.client.From(tableOutreach).
		Insert(outreachToRow(outreach), true, "id", "minimal", "").
		Execute()
	if err != nil {
		r.logger.Error("Failed to save outreach",
			zap.String("outreachId", outreach.ID().String()),
			zap.Error(err))
		return fmt.Errorf("failed to save outreach: %w", err)
	}
	return nil
}

// GetByID retrieves an outreach record by its ID
func (r *OutreachRepository) GetByID(ctx context.Context, id valueobjects.OutreachID) (*entities.Outreach, error) {
	data, _, err := r.client.From(tableOutreach).
		Select("*", "", false).
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to get outreach: %w", err)
	}

	var rows []outreachRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode outreach: %w", err)
	}
	if len(rows) == 0 {
		return nil, pkgerrors.ErrOutreachNotFound.Clone().WithDetail("outreach_id", id.String())
	}
	return rowToOutreach(rows[0])
}

// GetByCelebrityID retrieves all outreach records for a celebrity,
// newest first
func (r *OutreachRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Outreach, error) {
	data, _, err := r.client.From(tableOutreach).
		Select("*", "", false).
		Eq("celebrity_id", celebrityID.String()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query outreach: %w", err)
	}
	return r.decodeDrafts(data)
}

// GetAll retrieves every outreach record, newest first
func (r *OutreachRepository) GetAll(ctx context.Context) ([]*entities.Outreach, error) {
	data, _, err := r.client.From(tableOutreach).
		Select("*", "", false).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("failed to query outreach: %w", err)
	}
	return r.decodeDrafts(data)
}

// Delete removes an outreach record
func (r *OutreachRepository) Delete(ctx context.Context, id valueobjects.OutreachID) error {
	data, _, err := r.client.From(tableOutreach).
		Delete("representation", "").
		Eq("id", id.String()).
		Execute()
	if err != nil {
		return fmt.Errorf("failed to delete outreach: %w", err)
	}

	var removed []outreachRow
	if err := json.Unmarshal(data, &removed); err != nil {
		return fmt.Errorf("failed to decode delete result: %w", err)
	}
	if len(removed) == 0 {
		return pkgerrors.ErrOutreachNotFound.Clone().WithDetail("outreach_id", id.String())
	}
	return nil
}

// decodeDrafts unmarshals a result set and orders it newest first
func (r *OutreachRepository) decodeDrafts(data []byte) ([]*entities.Outreach, error) {
	var rows []outreachRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode outreach: %w", err)
	}

	drafts := make([]*entities.Outreach, 0, len(rows))
	for _, row := range rows {
		draft, err := rowToOutreach(row)
		if err != nil {
			r.logger.Warn("Skipping unreconstructable outreach",
				zap.String("outreachId", row.ID),
				zap.Error(err))
			continue
		}
		drafts = append(drafts, draft)
	}
	sortNewestFirst(drafts)
	return drafts, nil
}

func outreachToRow(outreach *entities.Outreach) outreachRow {
	return outreachRow{
		ID:               outreach.ID().String(),
		CelebrityID:      outreach.CelebrityID().String(),
		NodeID:           outreach.NodeID().String(),
		RecipientName:    outreach.RecipientName(),
		ChannelType:      string(outreach.Channel().Type()),
		ChannelHandle:    outreach.Channel().Handle(),
		ChannelPublic:    outreach.Channel().IsPublic(),
		SubjectLine:      outreach.Subject(),
		MessageText:      outreach.Body(),
		ValueProposition: outreach.ValueProp(),
		HopLabel:         outreach.HopLabel().String(),
		Status:           outreach.Status().String(),
		CreatedAt:        outreach.CreatedAt(),
		UpdatedAt:        outreach.UpdatedAt(),
	}
}

func rowToOutreach(row outreachRow) (*entities.Outreach, error) {
	id, err := valueobjects.NewOutreachIDFromString(row.ID)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid ID: %w", err)
	}
	celebrityID, err := valueobjects.NewCelebrityIDFromString(row.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid celebrity ID: %w", err)
	}
	nodeID, err := valueobjects.NewNodeIDFromString(row.NodeID)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid node ID: %w", err)
	}
	channel, err := valueobjects.NewContactChannel(
		valueobjects.ParseChannelType(row.ChannelType),
		row.ChannelHandle,
		row.ChannelPublic,
	)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid channel: %w", err)
	}
	status, err := valueobjects.ParseOutreachStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid status: %w", err)
	}

	return entities.ReconstructOutreach(
		id,
		celebrityID,
		nodeID,
		row.RecipientName,
		channel,
		row.SubjectLine,
		row.MessageText,
		row.ValueProposition,
		valueobjects.HopLabel(row.HopLabel),
		status,
		row.CreatedAt,
		row.UpdatedAt,
	)
}

// sortNewestFirst orders drafts by creation time descending, breaking
// ties on ID so listings are stable across calls
func sortNewestFirst(drafts []*entities.Outreach) {
	sort.Slice(drafts, func(i, j int) bool {
		if !drafts[i].CreatedAt().Equal(drafts[j].CreatedAt()) {
			return drafts[i].CreatedAt().After(drafts[j].CreatedAt())
		}
		return drafts[i].ID().String() < drafts[j].ID().String()
	})
}
