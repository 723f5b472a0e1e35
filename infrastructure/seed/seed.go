package seed

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
)

// Loader hydrates the repositories from the bundled dataset. Celebrities are
// written before their members and edges so drivers with referential
// constraints accept the batch.
type Loader struct {
	celebrities ports.CelebrityRepository
	people      ports.PersonRepository
	edges       ports.EdgeRecordRepository
	cfg         *config.DomainConfig
	logger      *zap.Logger
}

// Result reports how many records a load wrote
type Result struct {
	Celebrities int
	Members     int
	Edges       int
}

// NewLoader creates a dataset loader over the given repositories
func NewLoader(
	celebrities ports.CelebrityRepository,
	people ports.PersonRepository,
	edges ports.EdgeRecordRepository,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *Loader {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		celebrities: celebrities,
		people:      people,
		edges:       edges,
		cfg:         cfg,
		logger:      logger,
	}
}

// seededCircle is one fully materialized circle ready to persist
type seededCircle struct {
	celebrity *entities.Celebrity
	members   []*entities.Person
	edges     []aggregates.RawEdge
}

// Load builds every circle in the dataset and persists it. The whole dataset
// is materialized before the first write, so a malformed entry fails the load
// without leaving a partial roster behind.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	now := time.Now().UTC()

	circles := Dataset()
	seeded := make([]seededCircle, 0, len(circles))
	roster := make([]*entities.Celebrity, 0, len(circles))

	for _, circle := range circles {
		built, err := l.buildCircle(circle, now)
		if err != nil {
			return nil, fmt.Errorf("seed circle %q: %w", circle.Slug, err)
		}
		seeded = append(seeded, built)
		roster = append(roster, built.celebrity)
	}

	if err := l.celebrities.BulkSave(ctx, roster); err != nil {
		return nil, fmt.Errorf("seed celebrities: %w", err)
	}

	result := &Result{Celebrities: len(roster)}
	for i, built := range seeded {
		if err := l.people.BulkSave(ctx, built.members); err != nil {
			return nil, fmt.Errorf("seed members for %q: %w", circles[i].Slug, err)
		}
		// Edge batches append, so clear the partition first to keep
		// reseeding idempotent.
		if err := l.edges.DeleteByCelebrityID(ctx, built.celebrity.ID()); err != nil {
			return nil, fmt.Errorf("clear edges for %q: %w", circles[i].Slug, err)
		}
		if err := l.edges.SaveBatch(ctx, built.celebrity.ID(), built.edges); err != nil {
			return nil, fmt.Errorf("seed edges for %q: %w", circles[i].Slug, err)
		}
		result.Members += len(built.members)
		result.Edges += len(built.edges)
	}

	l.logger.Info("seed dataset loaded",
		zap.Int("celebrities", result.Celebrities),
		zap.Int("members", result.Members),
		zap.Int("edges", result.Edges))

	return result, nil
}

func (l *Loader) buildCircle(circle CircleSeed, now time.Time) (seededCircle, error) {
	celebrityID := CelebrityID(circle.Slug)

	memberIDs := make(map[string]valueobjects.NodeID, len(circle.Members))
	nodeIDs := make([]valueobjects.NodeID, 0, len(circle.Members))
	for _, m := range circle.Members {
		if _, dup := memberIDs[m.Slug]; dup {
			return seededCircle{}, fmt.Errorf("duplicate member slug %q", m.Slug)
		}
		id := MemberID(circle.Slug, m.Slug)
		memberIDs[m.Slug] = id
		nodeIDs = append(nodeIDs, id)
	}

	celebrity, err := entities.ReconstructCelebrity(
		celebrityID,
		circle.Name,
		circle.Category,
		circle.Bio,
		circle.Handle,
		circle.Manager,
		nodeIDs,
		l.cfg.AccessDefault,
		now, now,
	)
	if err != nil {
		return seededCircle{}, err
	}

	members := make([]*entities.Person, 0, len(circle.Members))
	edges := make([]aggregates.RawEdge, 0, len(circle.Members)+len(circle.Edges))
	for _, m := range circle.Members {
		person, err := l.buildMember(celebrityID, circle.Slug, m, now)
		if err != nil {
			return seededCircle{}, fmt.Errorf("member %q: %w", m.Slug, err)
		}
		members = append(members, person)

		// Anchor every member to the celebrity, or to another member for
		// contacts only reachable through someone in the circle.
		anchor := celebrityID.String()
		if m.ViaSlug != "" {
			via, ok := memberIDs[m.ViaSlug]
			if !ok {
				return seededCircle{}, fmt.Errorf("member %q anchored via unknown member %q", m.Slug, m.ViaSlug)
			}
			anchor = via.String()
		}
		edges = append(edges, aggregates.RawEdge{
			SourceKey: anchor,
			TargetKey: memberIDs[m.Slug].String(),
			Strength:  m.Strength,
		})
	}

	for _, e := range circle.Edges {
		from, ok := memberIDs[e.From]
		if !ok {
			return seededCircle{}, fmt.Errorf("edge references unknown member %q", e.From)
		}
		to, ok := memberIDs[e.To]
		if !ok {
			return seededCircle{}, fmt.Errorf("edge references unknown member %q", e.To)
		}
		edges = append(edges, aggregates.RawEdge{
			SourceKey: from.String(),
			TargetKey: to.String(),
			Strength:  e.Strength,
		})
	}

	return seededCircle{celebrity: celebrity, members: members, edges: edges}, nil
}

func (l *Loader) buildMember(
	celebrityID valueobjects.CelebrityID,
	circleSlug string,
	m MemberSeed,
	now time.Time,
) (*entities.Person, error) {
	profile, err := valueobjects.NewPersonProfileWithConfig(m.Role, m.Rationale, l.cfg)
	if err != nil {
		return nil, err
	}

	channels := make([]valueobjects.ContactChannel, 0, len(m.Channels))
	for _, c := range m.Channels {
		channel, err := valueobjects.NewContactChannel(c.Type, c.Handle, c.Public)
		if err != nil {
			return nil, fmt.Errorf("channel %s: %w", c.Type, err)
		}
		channels = append(channels, channel)
	}

	signals := valueobjects.NewRawSignals(
		m.Strength,
		m.Mutuals,
		m.Frequency,
		now.AddDate(0, 0, -m.DaysSinceActive),
	)

	return entities.ReconstructPerson(
		MemberID(circleSlug, m.Slug),
		celebrityID,
		m.Name,
		m.Tag,
		profile,
		channels,
		signals,
		now, now,
	)
}
