package di

import (
	"context"
	"errors"
	"fmt"

	"accessengine-backend/application/commands/bus"
	"accessengine-backend/application/ports"
	querybus "accessengine-backend/application/queries/bus"
	appservices "accessengine-backend/application/services"
	domaincfg "accessengine-backend/domain/config"
	"accessengine-backend/domain/events"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/messaging/websocket"
	"accessengine-backend/infrastructure/observability"
	"accessengine-backend/infrastructure/persistence/dynamodb"
	"accessengine-backend/infrastructure/seed"
	"accessengine-backend/pkg/extensions"
	pkgobservability "accessengine-backend/pkg/observability"

	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"
)

// Container holds the wired application graph. Entry points pull what
// they need from it and drive the lifecycle through Start and
// Shutdown.
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	DomainConfig *domaincfg.DomainConfig

	CommandBus *bus.CommandBus
	QueryBus   *querybus.QueryBus

	CelebrityRepo ports.CelebrityRepository
	PersonRepo    ports.PersonRepository
	EdgeRepo      ports.EdgeRecordRepository
	OutreachRepo  ports.OutreachRepository
	SnapshotRepo  ports.SnapshotRepository
	VersionRepo   ports.SnapshotVersionRepository

	SnapshotService *appservices.SnapshotService
	Seeder          *seed.Loader
	Hooks           *extensions.HookManager

	EventBus       ports.EventBus
	EventPublisher ports.EventPublisher
	Outbox         *dynamodb.OutboxProcessor

	WeightsWatcher *config.WeightsWatcher
	Cache          *InMemoryCache
	Collector      *observability.Collector
	Tracer         *pkgobservability.Tracer

	MetricsListener *observability.EventListener
	LiveListener    *websocket.EventListener

	ConnectionRegistry ports.ConnectionRegistry
	CloudWatch         *awscloudwatch.Client
	DynamoDB           *awsdynamodb.Client
}

// Start brings up the background machinery: weights hot reload, event
// listeners, the outbox relay, and the optional startup seed. Called
// once after InitializeContainer.
func (c *Container) Start(ctx context.Context) error {
	if c.WeightsWatcher != nil {
		if err := c.WeightsWatcher.Start(ctx); err != nil {
			return fmt.Errorf("start weights watcher: %w", err)
		}
	}

	for _, eventType := range []string{
		events.EventTypeCircleRebuilt,
		events.EventTypeCircleRebuildFailed,
		events.EventTypeOutreachDrafted,
		events.EventTypeOutreachStatusChanged,
	} {
		if err := c.EventBus.Subscribe(eventType, c.MetricsListener); err != nil {
			return fmt.Errorf("subscribe metrics listener to %s: %w", eventType, err)
		}
	}

	if c.LiveListener != nil {
		for _, eventType := range []string{
			events.EventTypeCircleRebuilt,
			events.EventTypeAccessScoreUpdated,
		} {
			if err := c.EventBus.Subscribe(eventType, c.LiveListener); err != nil {
				return fmt.Errorf("subscribe live listener to %s: %w", eventType, err)
			}
		}
	}

	if c.Outbox != nil {
		c.Outbox.Start(ctx)
	}

	if c.Config.SeedOnStart {
		result, err := c.Seeder.Load(ctx)
		if err != nil {
			return fmt.Errorf("seed on start: %w", err)
		}
		c.Logger.Info("startup seed complete",
			zap.Int("celebrities", result.Celebrities),
			zap.Int("members", result.Members),
			zap.Int("edges", result.Edges),
		)
	}

	return nil
}

// Shutdown stops background work in reverse start order. Safe to call
// after a failed Start.
func (c *Container) Shutdown() error {
	var errs []error

	if c.Outbox != nil {
		c.Outbox.Stop()
	}

	if c.WeightsWatcher != nil {
		if err := c.WeightsWatcher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close weights watcher: %w", err))
		}
	}

	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close cache: %w", err))
		}
	}

	// Sync flushes buffered log entries; stderr sync failures are
	// expected on some platforms and not worth reporting.
	_ = c.Logger.Sync()

	return errors.Join(errs...)
}
