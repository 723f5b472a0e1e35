//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"accessengine-backend/infrastructure/config"

	"github.com/google/wire"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideDomainConfig,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideEventBridgeClient,
	ProvideCloudWatchClient,
	ProvideSupabaseClient,
	ProvideCelebrityRepository,
	ProvidePersonRepository,
	ProvideEdgeRecordRepository,
	ProvideSnapshotVersionRepository,
	ProvideOutreachRepository,
	ProvideSnapshotRepository,
	ProvideEventBus,
	ProvideRemoteBus,
	ProvideDynamoEventStore,
	ProvideEventStore,
	ProvideOutboxProcessor,
	ProvideEventPublisher,
	ProvideRebuildLock,
	ProvideConnectionRegistry,
	ProvideWeightsWatcher,
	ProvideWeightsProvider,
	ProvideHookManager,
	ProvideCollector,
	ProvideTracer,
	ProvideMetricsListener,
	ProvideLiveListener,
	ProvideGenerator,
	ProvidePathSelector,
	ProvideSnapshotService,
	ProvideIntelligenceSaga,
	ProvideSeedLoader,
	ProvideFindCelebrityHandler,
	ProvideGetGraphDataHandler,
	ProvideBestPathHandler,
	ProvideInMemoryCache,
	ProvideCommandBus,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
