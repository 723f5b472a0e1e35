package di

import (
	"context"
	"fmt"
	"os"
	"time"

	"accessengine-backend/application/commands"
	"accessengine-backend/application/commands/bus"
	commands_handlers "accessengine-backend/application/commands/handlers"
	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	querybus "accessengine-backend/application/queries/bus"
	queries_handlers "accessengine-backend/application/queries/handlers"
	"accessengine-backend/application/sagas"
	appservices "accessengine-backend/application/services"
	domaincfg "accessengine-backend/domain/config"
	domainservices "accessengine-backend/domain/services"
	"accessengine-backend/domain/events"
	"accessengine-backend/infrastructure/ai"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/messaging/eventbridge"
	"accessengine-backend/infrastructure/messaging/websocket"
	"accessengine-backend/infrastructure/observability"
	"accessengine-backend/infrastructure/persistence/dynamodb"
	"accessengine-backend/infrastructure/persistence/memory"
	supabasedb "accessengine-backend/infrastructure/persistence/supabase"
	"accessengine-backend/infrastructure/seed"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/extensions"
	pkgobservability "accessengine-backend/pkg/observability"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	awseventbridge "github.com/aws/aws-sdk-go-v2/service/eventbridge"
	supa "github.com/supabase-community/supabase-go"
	"go.uber.org/zap"
)

// queryCacheTTL bounds how stale a cached read can be. Snapshots only
// change on rebuild, so a short TTL is enough to absorb read bursts.
const queryCacheTTL = 30 * time.Second

// slowQueryThreshold is where a snapshot read stops being routine
const slowQueryThreshold = 500 * time.Millisecond

// ProvideLogger creates the process logger
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideDomainConfig returns the scoring and pruning profile shared by
// every domain service
func ProvideDomainConfig() *domaincfg.DomainConfig {
	return domaincfg.DefaultDomainConfig()
}

// ProvideAWSConfig loads AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideEventBridgeClient creates an EventBridge client
func ProvideEventBridgeClient(awsCfg aws.Config) *awseventbridge.Client {
	return awseventbridge.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideSupabaseClient opens the PostgREST client when the supabase
// driver is selected. Other drivers run without one.
func ProvideSupabaseClient(cfg *config.Config) (*supa.Client, error) {
	if cfg.PersistenceDriver != "supabase" {
		return nil, nil
	}
	return supabasedb.NewClient(cfg.SupabaseURL, cfg.SupabaseKey)
}

// ProvideCelebrityRepository selects the celebrity store for the
// configured driver
func ProvideCelebrityRepository(
	cfg *config.Config,
	ddb *awsdynamodb.Client,
	supaClient *supa.Client,
	logger *zap.Logger,
) ports.CelebrityRepository {
	switch cfg.PersistenceDriver {
	case "dynamodb":
		return dynamodb.NewCelebrityRepository(ddb, cfg.DynamoDBTable, cfg.IndexName, logger)
	case "supabase":
		return supabasedb.NewCelebrityRepository(supaClient, logger)
	default:
		return memory.NewCelebrityRepository()
	}
}

// ProvidePersonRepository selects the member store for the configured
// driver
func ProvidePersonRepository(
	cfg *config.Config,
	ddb *awsdynamodb.Client,
	supaClient *supa.Client,
	logger *zap.Logger,
) ports.PersonRepository {
	switch cfg.PersistenceDriver {
	case "dynamodb":
		return dynamodb.NewPersonRepository(ddb, cfg.DynamoDBTable, logger)
	case "supabase":
		return supabasedb.NewPersonRepository(supaClient, logger)
	default:
		return memory.NewPersonRepository()
	}
}

// ProvideEdgeRecordRepository selects the edge store for the configured
// driver
func ProvideEdgeRecordRepository(
	cfg *config.Config,
	ddb *awsdynamodb.Client,
	supaClient *supa.Client,
	logger *zap.Logger,
) ports.EdgeRecordRepository {
	switch cfg.PersistenceDriver {
	case "dynamodb":
		return dynamodb.NewEdgeRecordRepository(ddb, cfg.DynamoDBTable, logger)
	case "supabase":
		return supabasedb.NewEdgeRepository(supaClient, logger)
	default:
		return memory.NewEdgeRecordRepository()
	}
}

// ProvideSnapshotVersionRepository selects the version history store
// for the configured driver
func ProvideSnapshotVersionRepository(
	cfg *config.Config,
	ddb *awsdynamodb.Client,
	supaClient *supa.Client,
	logger *zap.Logger,
) ports.SnapshotVersionRepository {
	switch cfg.PersistenceDriver {
	case "dynamodb":
		return dynamodb.NewSnapshotVersionRepository(ddb, cfg.DynamoDBTable, logger)
	case "supabase":
		return supabasedb.NewSnapshotVersionRepository(supaClient, logger)
	default:
		return memory.NewSnapshotVersionRepository()
	}
}

// ProvideOutreachRepository selects the outreach store for the
// configured driver
func ProvideOutreachRepository(
	cfg *config.Config,
	ddb *awsdynamodb.Client,
	supaClient *supa.Client,
	logger *zap.Logger,
) ports.OutreachRepository {
	switch cfg.PersistenceDriver {
	case "dynamodb":
		return dynamodb.NewOutreachRepository(ddb, cfg.DynamoDBTable, cfg.IndexName, logger)
	case "supabase":
		return supabasedb.NewOutreachRepository(supaClient, logger)
	default:
		return memory.NewOutreachRepository()
	}
}

// ProvideSnapshotRepository keeps warm snapshots in process for every
// driver. Snapshots are derived state; the persistent stores hold the
// records they are rebuilt from, and the version history records what
// was built.
func ProvideSnapshotRepository() ports.SnapshotRepository {
	return memory.NewSnapshotRepository()
}

// ProvideEventBus creates the in-process event bus that feeds local
// subscribers such as the metrics and live-push listeners
func ProvideEventBus(logger *zap.Logger) ports.EventBus {
	return memory.NewEventBus(logger)
}

// RemoteBus carries the optional cross-process EventBridge publisher.
// A nil Publisher means remote fan-out is disabled.
type RemoteBus struct {
	Publisher ports.EventPublisher
}

// ProvideRemoteBus creates the EventBridge publisher when enabled
func ProvideRemoteBus(cfg *config.Config, client *awseventbridge.Client, logger *zap.Logger) RemoteBus {
	if !cfg.EnableEventBridge {
		return RemoteBus{}
	}
	return RemoteBus{Publisher: eventbridge.NewPublisher(client, cfg.EventBusName, logger)}
}

// ProvideDynamoEventStore creates the DynamoDB event store. It is only
// consulted when the dynamodb driver is active.
func ProvideDynamoEventStore(client *awsdynamodb.Client, cfg *config.Config) *dynamodb.EventStore {
	return dynamodb.NewEventStore(client, cfg.DynamoDBTable, cfg.IndexName)
}

// ProvideEventStore selects the event store for the configured driver.
// Supabase deployments keep events in process; the outbox pattern only
// applies to DynamoDB.
func ProvideEventStore(cfg *config.Config, dynamoStore *dynamodb.EventStore) ports.EventStore {
	if cfg.PersistenceDriver == "dynamodb" {
		return dynamoStore
	}
	return memory.NewEventStore()
}

// ProvideOutboxProcessor creates the outbox relay when both the
// DynamoDB store and EventBridge forwarding are active. Nil otherwise;
// the container skips starting it.
func ProvideOutboxProcessor(
	cfg *config.Config,
	store *dynamodb.EventStore,
	remote RemoteBus,
	logger *zap.Logger,
) *dynamodb.OutboxProcessor {
	if cfg.PersistenceDriver != "dynamodb" || remote.Publisher == nil {
		return nil
	}
	return dynamodb.NewOutboxProcessor(store, remote.Publisher, logger)
}

// storeAndForwardPublisher is the single publish path for domain
// events: persist to the event store, dispatch to in-process
// subscribers, then forward to EventBridge when no outbox owns that
// forwarding. Store failures abort the publish so the log never misses
// an event that subscribers saw.
type storeAndForwardPublisher struct {
	store  ports.EventStore
	local  ports.EventBus
	remote ports.EventPublisher
}

func (p *storeAndForwardPublisher) Publish(ctx context.Context, event events.DomainEvent) error {
	if err := p.store.SaveEvents(ctx, []events.DomainEvent{event}); err != nil {
		return fmt.Errorf("store event: %w", err)
	}
	if err := p.local.Publish(ctx, event); err != nil {
		return err
	}
	if p.remote != nil {
		return p.remote.Publish(ctx, event)
	}
	return nil
}

func (p *storeAndForwardPublisher) PublishBatch(ctx context.Context, batch []events.DomainEvent) error {
	if len(batch) == 0 {
		return nil
	}
	if err := p.store.SaveEvents(ctx, batch); err != nil {
		return fmt.Errorf("store events: %w", err)
	}
	if err := p.local.PublishBatch(ctx, batch); err != nil {
		return err
	}
	if p.remote != nil {
		return p.remote.PublishBatch(ctx, batch)
	}
	return nil
}

// ProvideEventPublisher assembles the publish path. When the outbox is
// running it owns EventBridge forwarding, so the direct remote publish
// is dropped to avoid delivering every event twice.
func ProvideEventPublisher(
	store ports.EventStore,
	local ports.EventBus,
	remote RemoteBus,
	outbox *dynamodb.OutboxProcessor,
) ports.EventPublisher {
	forward := remote.Publisher
	if outbox != nil {
		forward = nil
	}
	return &storeAndForwardPublisher{store: store, local: local, remote: forward}
}

// ProvideRebuildLock selects the rebuild lock for the configured
// driver. Only DynamoDB gives a cross-process lock; the in-memory lock
// still serializes rebuilds within one process.
func ProvideRebuildLock(cfg *config.Config, ddb *awsdynamodb.Client, logger *zap.Logger) ports.RebuildLock {
	if cfg.PersistenceDriver == "dynamodb" {
		owner, err := os.Hostname()
		if err != nil || owner == "" {
			owner = "accessengine"
		}
		return dynamodb.NewRebuildLock(ddb, cfg.DynamoDBTable, owner, logger)
	}
	return memory.NewRebuildLock(logger)
}

// ProvideConnectionRegistry selects the WebSocket connection registry
// for the configured driver
func ProvideConnectionRegistry(cfg *config.Config, ddb *awsdynamodb.Client, logger *zap.Logger) ports.ConnectionRegistry {
	if cfg.PersistenceDriver == "dynamodb" {
		return dynamodb.NewConnectionRegistry(ddb, cfg.ConnectionsTable, logger)
	}
	return memory.NewConnectionRegistry()
}

// ProvideWeightsWatcher opens the hot-reload watcher when a weights
// file is configured. Nil when unconfigured; the container only starts
// and closes a real watcher.
func ProvideWeightsWatcher(cfg *config.Config, logger *zap.Logger) (*config.WeightsWatcher, error) {
	if cfg.WeightsFile == "" {
		return nil, nil
	}
	return config.NewWeightsWatcher(cfg.WeightsFile, logger)
}

// ProvideWeightsProvider exposes scoring weights to the snapshot
// service, live-reloading when a watcher exists
func ProvideWeightsProvider(watcher *config.WeightsWatcher) ports.WeightsProvider {
	if watcher != nil {
		return watcher
	}
	return config.NewStaticWeights(domaincfg.DefaultScoringWeights())
}

// ProvideHookManager creates the extension hook registry
func ProvideHookManager() *extensions.HookManager {
	return extensions.NewHookManager()
}

// ProvideCollector registers the Prometheus metrics collector
func ProvideCollector() *observability.Collector {
	return observability.NewCollector("accessengine")
}

// ProvideTracer creates the X-Ray tracer. It only emits subsegments
// when a Lambda invocation opened a segment; elsewhere it is inert.
func ProvideTracer() *pkgobservability.Tracer {
	return pkgobservability.NewTracer("accessengine")
}

// ProvideMetricsListener wires domain events into the collector
func ProvideMetricsListener(collector *observability.Collector) *observability.EventListener {
	return observability.NewEventListener(collector)
}

// ProvideLiveListener pushes snapshot events to connected WebSocket
// clients. Nil without a management endpoint; there is nothing to push
// to.
func ProvideLiveListener(
	cfg *config.Config,
	awsCfg aws.Config,
	registry ports.ConnectionRegistry,
	logger *zap.Logger,
) *websocket.EventListener {
	if cfg.WebSocketEndpoint == "" {
		return nil
	}
	client := websocket.NewManagementClient(awsCfg, cfg.WebSocketEndpoint)
	notifier := websocket.NewNotifier(client, registry, logger)
	return websocket.NewEventListener(notifier, registry, logger)
}

// disabledGenerator stands in when generation is switched off or no
// API key is configured. Outreach endpoints stay up and report that
// generation is unavailable instead of failing at wiring time.
type disabledGenerator struct{}

func (disabledGenerator) GenerateLeverage(ctx context.Context, req ports.LeverageRequest) (*ports.LeverageSummary, error) {
	return nil, pkgerrors.ErrGenerationUnavailable
}

func (disabledGenerator) DraftOutreachMessage(ctx context.Context, req ports.MessageRequest) (*ports.DraftMessage, error) {
	return nil, pkgerrors.ErrGenerationUnavailable
}

func (disabledGenerator) GenerateStrategy(ctx context.Context, req ports.StrategyRequest) (string, error) {
	return "", pkgerrors.ErrGenerationUnavailable
}

// ProvideGenerator creates the Anthropic-backed message generator, or
// a disabled stand-in when AI is off
func ProvideGenerator(cfg *config.Config, tracer *pkgobservability.Tracer, logger *zap.Logger) ports.MessageGenerator {
	if !cfg.EnableAI || cfg.AnthropicAPIKey == "" {
		logger.Info("AI generation disabled",
			zap.Bool("enabled", cfg.EnableAI),
			zap.Bool("api_key_present", cfg.AnthropicAPIKey != ""),
		)
		return disabledGenerator{}
	}
	client := ai.NewMessagesClient(cfg.AnthropicAPIKey)
	return ai.NewGenerator(client, cfg.AnthropicModel, tracer, logger)
}

// ProvidePathSelector creates the path ranking service
func ProvidePathSelector(domainCfg *domaincfg.DomainConfig) *domainservices.PathSelector {
	return domainservices.NewPathSelectorWithConfig(domainCfg)
}

// ProvideSnapshotService assembles the rebuild pipeline
func ProvideSnapshotService(
	celebrityRepo ports.CelebrityRepository,
	personRepo ports.PersonRepository,
	edgeRepo ports.EdgeRecordRepository,
	snapshots ports.SnapshotRepository,
	versions ports.SnapshotVersionRepository,
	publisher ports.EventPublisher,
	weights ports.WeightsProvider,
	locks ports.RebuildLock,
	hooks *extensions.HookManager,
	domainCfg *domaincfg.DomainConfig,
	logger *zap.Logger,
) *appservices.SnapshotService {
	return appservices.NewSnapshotService(
		celebrityRepo,
		personRepo,
		edgeRepo,
		snapshots,
		versions,
		publisher,
		weights,
		locks,
		hooks,
		domainCfg,
		logger,
	)
}

// ProvideIntelligenceSaga assembles the leverage-and-draft flow
func ProvideIntelligenceSaga(
	generator ports.MessageGenerator,
	outreachRepo ports.OutreachRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *sagas.IntelligenceSaga {
	return sagas.NewIntelligenceSaga(generator, outreachRepo, publisher, logger)
}

// ProvideSeedLoader creates the roster loader used by SEED_ON_START
// and the seed command
func ProvideSeedLoader(
	celebrityRepo ports.CelebrityRepository,
	personRepo ports.PersonRepository,
	edgeRepo ports.EdgeRecordRepository,
	domainCfg *domaincfg.DomainConfig,
	logger *zap.Logger,
) *seed.Loader {
	return seed.NewLoader(celebrityRepo, personRepo, edgeRepo, domainCfg, logger)
}

// ProvideFindCelebrityHandler creates the fuzzy lookup handler. Shared
// between the query bus and the search orchestrator so both resolve
// names identically.
func ProvideFindCelebrityHandler(celebrityRepo ports.CelebrityRepository, logger *zap.Logger) *queries_handlers.FindCelebrityHandler {
	return queries_handlers.NewFindCelebrityHandler(celebrityRepo, logger)
}

// ProvideGetGraphDataHandler creates the graph payload handler
func ProvideGetGraphDataHandler(
	celebrityRepo ports.CelebrityRepository,
	snapshots ports.SnapshotRepository,
	logger *zap.Logger,
) *queries_handlers.GetGraphDataHandler {
	return queries_handlers.NewGetGraphDataHandler(celebrityRepo, snapshots, logger)
}

// ProvideBestPathHandler creates the path ranking handler
func ProvideBestPathHandler(
	snapshots ports.SnapshotRepository,
	selector *domainservices.PathSelector,
	logger *zap.Logger,
) *queries_handlers.BestPathHandler {
	return queries_handlers.NewBestPathHandler(snapshots, selector, logger)
}

// ProvideInMemoryCache creates the query result cache. The concrete
// type is returned so the container can stop its janitor on shutdown.
func ProvideInMemoryCache() *InMemoryCache {
	return NewInMemoryCache()
}

// queryCache adapts the seconds-based cache port to the query bus,
// which expresses TTLs as durations
type queryCache struct {
	cache ports.Cache
}

func (c queryCache) Get(ctx context.Context, key string) (interface{}, bool) {
	return c.cache.Get(ctx, key)
}

func (c queryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	seconds := int(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	return c.cache.Set(ctx, key, value, seconds)
}

// ProvideCommandBus registers every command handler behind the
// recovery and logging pipeline
func ProvideCommandBus(
	celebrityRepo ports.CelebrityRepository,
	personRepo ports.PersonRepository,
	edgeRepo ports.EdgeRecordRepository,
	outreachRepo ports.OutreachRepository,
	snapshots *appservices.SnapshotService,
	publisher ports.EventPublisher,
	generator ports.MessageGenerator,
	hooks *extensions.HookManager,
	domainCfg *domaincfg.DomainConfig,
	find *queries_handlers.FindCelebrityHandler,
	graphData *queries_handlers.GetGraphDataHandler,
	bestPath *queries_handlers.BestPathHandler,
	intel *sagas.IntelligenceSaga,
	logger *zap.Logger,
) (*bus.CommandBus, error) {
	commandBus := bus.NewCommandBus()
	pipeline := bus.NewPipeline(
		bus.RecoveryMiddleware(logger),
		bus.LoggingMiddleware(logger),
	)

	addPerson := commands_handlers.NewAddPersonHandler(celebrityRepo, personRepo, edgeRepo, snapshots, publisher, domainCfg, logger)
	if err := commandBus.Register(commands.AddPersonCommand{}, pipeline.Execute(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			typed, ok := cmd.(commands.AddPersonCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type %T", cmd)
			}
			return addPerson.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	rebuildCircle := commands_handlers.NewRebuildCircleHandler(snapshots, publisher, logger)
	if err := commandBus.Register(commands.RebuildCircleCommand{}, pipeline.Execute(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			typed, ok := cmd.(commands.RebuildCircleCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type %T", cmd)
			}
			return rebuildCircle.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	rebuildAll := commands_handlers.NewRebuildAllHandler(snapshots, logger)
	if err := commandBus.Register(commands.RebuildAllCommand{}, pipeline.Execute(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			typed, ok := cmd.(commands.RebuildAllCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type %T", cmd)
			}
			return rebuildAll.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	generateOutreach := commands_handlers.NewGenerateOutreachHandler(celebrityRepo, outreachRepo, snapshots, generator, publisher, hooks, logger)
	if err := commandBus.Register(commands.GenerateOutreachCommand{}, pipeline.Execute(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			typed, ok := cmd.(commands.GenerateOutreachCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type %T", cmd)
			}
			return generateOutreach.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	updateStatus := commands_handlers.NewUpdateOutreachStatusHandler(outreachRepo, publisher, hooks, logger)
	if err := commandBus.Register(commands.UpdateOutreachStatusCommand{}, pipeline.Execute(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			typed, ok := cmd.(commands.UpdateOutreachStatusCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type %T", cmd)
			}
			return updateStatus.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	search := commands_handlers.NewSearchOrchestrator(find, graphData, bestPath, celebrityRepo, snapshots, intel, logger)
	if err := commandBus.Register(commands.SearchCelebrityCommand{}, pipeline.Execute(bus.CommandHandlerFunc(
		func(ctx context.Context, cmd bus.Command) (interface{}, error) {
			typed, ok := cmd.(commands.SearchCelebrityCommand)
			if !ok {
				return nil, fmt.Errorf("invalid command type %T", cmd)
			}
			return search.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	return commandBus, nil
}

// ProvideQueryBus registers every query handler. All handlers are
// instrumented; reads that serve the graph view get a short-TTL cache
// on top.
func ProvideQueryBus(
	celebrityRepo ports.CelebrityRepository,
	snapshots ports.SnapshotRepository,
	outreachRepo ports.OutreachRepository,
	cache *InMemoryCache,
	collector *observability.Collector,
	find *queries_handlers.FindCelebrityHandler,
	graphData *queries_handlers.GetGraphDataHandler,
	bestPath *queries_handlers.BestPathHandler,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()

	logging := querybus.LoggingMiddleware(logger, slowQueryThreshold)
	metrics := querybus.NewMetricsMiddleware(collector)
	caching := querybus.NewCachingMiddleware(queryCache{cache: cache}, queryCacheTTL)

	instrument := func(h querybus.QueryHandler) querybus.QueryHandler {
		return logging(metrics.Wrap(h))
	}
	cached := func(h querybus.QueryHandler) querybus.QueryHandler {
		return instrument(caching.Wrap(h))
	}

	if err := queryBus.Register(queries.FindCelebrityQuery{}, instrument(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.FindCelebrityQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return find.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	if err := queryBus.Register(queries.GetGraphDataQuery{}, cached(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.GetGraphDataQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return graphData.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	if err := queryBus.Register(queries.BestPathQuery{}, cached(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.BestPathQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return bestPath.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	accessScore := queries_handlers.NewAccessScoreHandler(celebrityRepo, logger)
	if err := queryBus.Register(queries.AccessScoreQuery{}, cached(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.AccessScoreQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return accessScore.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	listCelebrities := queries_handlers.NewListCelebritiesHandler(celebrityRepo, logger)
	if err := queryBus.Register(queries.ListCelebritiesQuery{}, cached(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.ListCelebritiesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return listCelebrities.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	listNodes := queries_handlers.NewListNodesHandler(snapshots, logger)
	if err := queryBus.Register(queries.ListNodesQuery{}, instrument(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.ListNodesQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return listNodes.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	outreachHistory := queries_handlers.NewOutreachHistoryHandler(outreachRepo, logger)
	if err := queryBus.Register(queries.ListOutreachQuery{}, instrument(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.ListOutreachQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return outreachHistory.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	outreachStats := queries_handlers.NewOutreachStatsHandler(outreachRepo, logger)
	if err := queryBus.Register(queries.OutreachStatsQuery{}, instrument(querybus.QueryHandlerFunc(
		func(ctx context.Context, query querybus.Query) (interface{}, error) {
			typed, ok := query.(queries.OutreachStatsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type %T", query)
			}
			return outreachStats.Handle(ctx, typed)
		}))); err != nil {
		return nil, err
	}

	return queryBus, nil
}
