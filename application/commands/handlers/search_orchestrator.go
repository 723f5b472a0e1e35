package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	qhandlers "accessengine-backend/application/queries/handlers"
	"accessengine-backend/application/sagas"
	"accessengine-backend/application/services"
	"accessengine-backend/domain/core/valueobjects"
)

// SearchOrchestrator runs the whole search flow behind one command:
// resolve the celebrity, warm up their snapshot, collect the read-side
// payloads, and hand the ranked paths to the intelligence saga. Each
// stage reuses the same handler the standalone endpoints use, so search
// results never drift from the individual views.
type SearchOrchestrator struct {
	find          *qhandlers.FindCelebrityHandler
	graphData     *qhandlers.GetGraphDataHandler
	bestPath      *qhandlers.BestPathHandler
	celebrityRepo ports.CelebrityRepository
	snapshots     *services.SnapshotService
	intel         *sagas.IntelligenceSaga
	logger        *zap.Logger
}

// NewSearchOrchestrator creates a new search orchestrator
func NewSearchOrchestrator(
	find *qhandlers.FindCelebrityHandler,
	graphData *qhandlers.GetGraphDataHandler,
	bestPath *qhandlers.BestPathHandler,
	celebrityRepo ports.CelebrityRepository,
	snapshots *services.SnapshotService,
	intel *sagas.IntelligenceSaga,
	logger *zap.Logger,
) *SearchOrchestrator {
	return &SearchOrchestrator{
		find:          find,
		graphData:     graphData,
		bestPath:      bestPath,
		celebrityRepo: celebrityRepo,
		snapshots:     snapshots,
		intel:         intel,
		logger:        logger,
	}
}

// Handle executes the search command
func (o *SearchOrchestrator) Handle(ctx context.Context, cmd commands.SearchCelebrityCommand) (*commands.SearchReport, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("invalid command: %w", err)
	}

	found, err := o.find.Handle(ctx, queries.FindCelebrityQuery{Query: cmd.Query})
	if err != nil {
		return nil, err
	}

	celebrityID, err := valueobjects.NewCelebrityIDFromString(found.Celebrity.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid celebrity ID: %w", err)
	}
	celebrity, err := o.celebrityRepo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	snapshot, err := o.snapshots.EnsureSnapshot(ctx, celebrity.ID())
	if err != nil {
		return nil, err
	}

	graph, err := o.graphData.Handle(ctx, queries.GetGraphDataQuery{CelebrityID: found.Celebrity.ID})
	if err != nil {
		return nil, err
	}

	paths, err := o.bestPath.Handle(ctx, queries.BestPathQuery{CelebrityID: found.Celebrity.ID})
	if err != nil {
		return nil, err
	}

	pkg, err := o.intel.Assemble(ctx, celebrity, snapshot, paths, sagas.IntelligenceRequest{
		SenderName:       cmd.SenderName,
		SenderBackground: cmd.SenderBackground,
		Ask:              cmd.Ask,
	})
	if err != nil {
		return nil, err
	}

	o.logger.Info("Search completed",
		zap.String("query", cmd.Query),
		zap.String("celebrityID", found.Celebrity.ID),
		zap.String("match", found.Match),
		zap.Bool("viable", paths.Viable),
		zap.Int("messages", len(pkg.OutreachMessages)),
	)

	// The summary is refreshed from the entity so the access score
	// reflects the snapshot the rest of the report was built from
	summary := found.Celebrity
	summary.AccessScore = celebrity.AccessScore()

	return &commands.SearchReport{
		Celebrity:    summary,
		Match:        found.Match,
		Graph:        graph,
		BestPath:     paths,
		Intelligence: pkg,
	}, nil
}
