package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
	domainservices "accessengine-backend/domain/services"
	"accessengine-backend/domain/versioning"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/extensions"
)

// rebuildLockTTL bounds how long a crashed owner can starve rebuilds
const rebuildLockTTL = 2 * time.Minute

// Rebuild triggers carried on version stamps and events
const (
	TriggerManual      = "manual"
	TriggerOnDemand    = "on_demand"
	TriggerSeed        = "seed"
	TriggerMemberAdded = "member_added"
	TriggerScheduled   = "scheduled"
)

// SnapshotService coordinates circle rebuilds: it loads the raw records,
// builds the graph, scores every member, stamps a version, and atomically
// swaps the live snapshot. Readers keep the previous snapshot until the
// swap, and a failed rebuild never touches it.
type SnapshotService struct {
	celebrityRepo ports.CelebrityRepository
	personRepo    ports.PersonRepository
	edgeRepo      ports.EdgeRecordRepository
	snapshots     ports.SnapshotRepository
	versions      ports.SnapshotVersionRepository
	publisher     ports.EventPublisher
	weights       ports.WeightsProvider
	locks         ports.RebuildLock
	versioner     *versioning.VersioningService
	retention     versioning.RetentionPolicy
	hooks         *extensions.HookManager
	cfg           *config.DomainConfig
	logger        *zap.Logger

	// group collapses concurrent in-process rebuilds per celebrity
	group singleflight.Group
}

// NewSnapshotService creates a snapshot service. The rebuild lock may be
// nil for single-process deployments; the hook manager may be nil when no
// extensions are installed.
func NewSnapshotService(
	celebrityRepo ports.CelebrityRepository,
	personRepo ports.PersonRepository,
	edgeRepo ports.EdgeRecordRepository,
	snapshots ports.SnapshotRepository,
	versions ports.SnapshotVersionRepository,
	publisher ports.EventPublisher,
	weights ports.WeightsProvider,
	locks ports.RebuildLock,
	hooks *extensions.HookManager,
	cfg *config.DomainConfig,
	logger *zap.Logger,
) *SnapshotService {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	if hooks == nil {
		hooks = extensions.NewHookManager()
	}
	return &SnapshotService{
		celebrityRepo: celebrityRepo,
		personRepo:    personRepo,
		edgeRepo:      edgeRepo,
		snapshots:     snapshots,
		versions:      versions,
		publisher:     publisher,
		weights:       weights,
		locks:         locks,
		versioner:     versioning.NewVersioningService(),
		retention:     versioning.DefaultRetentionPolicy(),
		hooks:         hooks,
		cfg:           cfg,
		logger:        logger,
	}
}

// RebuildResult summarizes one completed rebuild
type RebuildResult struct {
	CelebrityID string                    `json:"celebrity_id"`
	Version     int                       `json:"version"`
	NodeCount   int                       `json:"node_count"`
	EdgeCount   int                       `json:"edge_count"`
	PrunedCount int                       `json:"pruned_count"`
	AccessScore int                       `json:"access_score"`
	Checksum    string                    `json:"checksum"`
	BuiltAt     time.Time                 `json:"built_at"`
	Unchanged   bool                      `json:"unchanged"`
	Warnings    []aggregates.BuildWarning `json:"warnings,omitempty"`
}

// Rebuild builds a fresh snapshot for one celebrity and swaps it live.
// Concurrent callers for the same celebrity share a single rebuild.
func (s *SnapshotService) Rebuild(ctx context.Context, celebrityID valueobjects.CelebrityID, trigger string) (*RebuildResult, error) {
	value, err, _ := s.group.Do(celebrityID.String(), func() (interface{}, error) {
		return s.rebuild(ctx, celebrityID, trigger)
	})
	if err != nil {
		return nil, err
	}
	return value.(*RebuildResult), nil
}

// Snapshot returns the live snapshot without triggering a build
func (s *SnapshotService) Snapshot(ctx context.Context, celebrityID valueobjects.CelebrityID) (*ports.Snapshot, bool) {
	return s.snapshots.Get(ctx, celebrityID)
}

// EnsureSnapshot returns the live snapshot, building it on first use
func (s *SnapshotService) EnsureSnapshot(ctx context.Context, celebrityID valueobjects.CelebrityID) (*ports.Snapshot, error) {
	if snapshot, ok := s.snapshots.Get(ctx, celebrityID); ok {
		return snapshot, nil
	}
	if _, err := s.Rebuild(ctx, celebrityID, TriggerOnDemand); err != nil {
		return nil, err
	}
	snapshot, ok := s.snapshots.Get(ctx, celebrityID)
	if !ok {
		return nil, pkgerrors.ErrSnapshotMissing.Clone().WithDetail("celebrity_id", celebrityID.String())
	}
	return snapshot, nil
}

// RebuildAll rebuilds every celebrity in the roster, continuing past
// per-celebrity failures. Used by seeding and the scheduled worker.
func (s *SnapshotService) RebuildAll(ctx context.Context, trigger string) ([]*RebuildResult, error) {
	roster, err := s.celebrityRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*RebuildResult, 0, len(roster))
	failed := 0
	for _, celebrity := range roster {
		result, err := s.Rebuild(ctx, celebrity.ID(), trigger)
		if err != nil {
			failed++
			s.logger.Warn("Rebuild failed, continuing",
				zap.String("celebrityID", celebrity.ID().String()),
				zap.String("name", celebrity.Name()),
				zap.Error(err),
			)
			continue
		}
		results = append(results, result)
	}

	s.logger.Info("Roster rebuild finished",
		zap.String("trigger", trigger),
		zap.Int("rebuilt", len(results)),
		zap.Int("failed", failed),
	)
	return results, nil
}

func (s *SnapshotService) rebuild(ctx context.Context, celebrityID valueobjects.CelebrityID, trigger string) (*RebuildResult, error) {
	started := time.Now()

	if s.locks != nil {
		lease, err := s.locks.Acquire(ctx, celebrityID, rebuildLockTTL)
		if err != nil {
			return nil, err
		}
		defer func() {
			if releaseErr := lease.Release(ctx); releaseErr != nil {
				s.logger.Warn("Failed to release rebuild lock",
					zap.String("celebrityID", celebrityID.String()),
					zap.Error(releaseErr),
				)
			}
		}()
	}

	// A before_rebuild hook returning an error vetoes the rebuild
	if err := s.hooks.Execute(ctx, extensions.HookBeforeRebuild, &extensions.HookData{
		CelebrityID: celebrityID.String(),
		Operation:   trigger,
	}); err != nil {
		return nil, err
	}

	celebrity, err := s.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}

	people, err := s.personRepo.GetByCelebrityID(ctx, celebrityID)
	if err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}
	rawEdges, err := s.edgeRepo.GetByCelebrityID(ctx, celebrityID)
	if err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}

	members := make([]aggregates.RawMember, 0, len(people))
	for _, person := range people {
		members = append(members, aggregates.RawMember{
			Key:    person.ID().String(),
			Person: person,
		})
	}

	cfg := s.buildConfig()

	graph, err := aggregates.BuildCircleGraphWithConfig(aggregates.BuildInput{
		CelebrityID:  celebrityID,
		CelebrityKey: celebrityID.String(),
		Members:      members,
		Edges:        rawEdges,
	}, cfg)
	if err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}

	scores := domainservices.NewWarmthScorerWithConfig(cfg).ScoreAll(graph)
	s.hooks.ExecuteAsync(ctx, extensions.HookAfterScore, &extensions.HookData{
		CelebrityID: celebrityID.String(),
		Operation:   trigger,
		NodeCount:   graph.NodeCount(),
	})

	accessScore := domainservices.NewAccessScorerWithConfig(cfg).ComputeAccessScore(graph, scores)

	previous, err := s.versions.GetLatest(ctx, celebrityID)
	if err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}

	stamp, err := s.versioner.StampSnapshot(graph, previous, accessScore, trigger)
	if err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}

	if err := s.snapshots.Swap(ctx, &ports.Snapshot{
		Graph:   graph,
		Scores:  scores,
		Version: stamp,
	}); err != nil {
		return nil, s.fail(ctx, celebrityID, trigger, err)
	}
	s.hooks.ExecuteAsync(ctx, extensions.HookAfterSwap, &extensions.HookData{
		CelebrityID: celebrityID.String(),
		Operation:   trigger,
		NodeCount:   graph.NodeCount(),
	})

	// The swap is done; history, roster score, and events are best-effort
	if err := s.versions.SaveVersion(ctx, stamp); err != nil {
		s.logger.Warn("Failed to persist snapshot version",
			zap.String("celebrityID", celebrityID.String()),
			zap.Int("version", stamp.Version),
			zap.Error(err),
		)
	} else if _, err := s.versions.Prune(ctx, celebrityID, s.retention); err != nil {
		s.logger.Debug("Version prune failed",
			zap.String("celebrityID", celebrityID.String()),
			zap.Error(err),
		)
	}

	if err := celebrity.SetAccessScore(accessScore); err == nil {
		if saveErr := s.celebrityRepo.Save(ctx, celebrity); saveErr != nil {
			s.logger.Warn("Failed to persist access score",
				zap.String("celebrityID", celebrityID.String()),
				zap.Int("accessScore", accessScore),
				zap.Error(saveErr),
			)
		}
	}

	publishable := celebrity.GetUncommittedEvents()
	publishable = append(publishable, events.NewCircleRebuilt(
		celebrityID,
		stamp.Version,
		graph.NodeCount(),
		graph.EdgeCount(),
		graph.PrunedCount(),
		len(graph.Warnings()),
		accessScore,
		stamp.BuiltAt,
	))
	if err := s.publisher.PublishBatch(ctx, publishable); err != nil {
		s.logger.Warn("Failed to publish rebuild events",
			zap.String("celebrityID", celebrityID.String()),
			zap.Error(err),
		)
	}
	celebrity.MarkEventsAsCommitted()

	result := &RebuildResult{
		CelebrityID: celebrityID.String(),
		Version:     stamp.Version,
		NodeCount:   graph.NodeCount(),
		EdgeCount:   graph.EdgeCount(),
		PrunedCount: graph.PrunedCount(),
		AccessScore: accessScore,
		Checksum:    stamp.Checksum,
		BuiltAt:     stamp.BuiltAt,
		Unchanged:   previous != nil && s.versioner.Unchanged(previous, stamp),
		Warnings:    graph.Warnings(),
	}

	s.hooks.ExecuteAsync(ctx, extensions.HookAfterRebuild, &extensions.HookData{
		CelebrityID: celebrityID.String(),
		Operation:   trigger,
		NodeCount:   graph.NodeCount(),
		Duration:    time.Since(started).Seconds(),
	})

	s.logger.Info("Circle rebuilt",
		zap.String("celebrityID", celebrityID.String()),
		zap.String("trigger", trigger),
		zap.Int("version", stamp.Version),
		zap.Int("nodeCount", graph.NodeCount()),
		zap.Int("edgeCount", graph.EdgeCount()),
		zap.Int("prunedCount", graph.PrunedCount()),
		zap.Int("warnings", len(graph.Warnings())),
		zap.Int("accessScore", accessScore),
		zap.Bool("unchanged", result.Unchanged),
		zap.Duration("elapsed", time.Since(started)),
	)

	return result, nil
}

// buildConfig overlays the hot-reloadable weight profile onto the static
// domain configuration
func (s *SnapshotService) buildConfig() *config.DomainConfig {
	cfg := *s.cfg
	if s.weights != nil {
		cfg.Weights = s.weights.Current()
	}
	return &cfg
}

// fail records a rebuild failure without touching the live snapshot
func (s *SnapshotService) fail(ctx context.Context, celebrityID valueobjects.CelebrityID, trigger string, cause error) error {
	s.logger.Error("Rebuild failed",
		zap.String("celebrityID", celebrityID.String()),
		zap.String("trigger", trigger),
		zap.Error(cause),
	)

	if err := s.publisher.Publish(ctx, events.NewCircleRebuildFailed(celebrityID, cause.Error(), time.Now())); err != nil {
		s.logger.Warn("Failed to publish rebuild failure event",
			zap.String("celebrityID", celebrityID.String()),
			zap.Error(err),
		)
	}

	s.hooks.ExecuteAsync(ctx, extensions.HookRebuildFailed, &extensions.HookData{
		CelebrityID: celebrityID.String(),
		Operation:   trigger,
		Err:         cause,
	})

	return cause
}
