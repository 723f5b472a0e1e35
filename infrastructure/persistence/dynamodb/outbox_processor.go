package dynamodb

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
)

// OutboxProcessor drains pending events from the event store to the
// event publisher. It is the half of the outbox pattern that makes
// saved events eventually reach EventBridge even when publishing was
// down at save time.
type OutboxProcessor struct {
	eventStore     *EventStore
	eventPublisher ports.EventPublisher
	logger         *zap.Logger

	batchSize          int32
	processingInterval time.Duration
	maxRetries         int

	stopChan    chan struct{}
	stoppedChan chan struct{}
}

// NewOutboxProcessor creates a new outbox processor
func NewOutboxProcessor(
	eventStore *EventStore,
	eventPublisher ports.EventPublisher,
	logger *zap.Logger,
) *OutboxProcessor {
	return &OutboxProcessor{
		eventStore:         eventStore,
		eventPublisher:     eventPublisher,
		logger:             logger,
		batchSize:          50,
		processingInterval: 5 * time.Second,
		maxRetries:         3,
		stopChan:           make(chan struct{}),
		stoppedChan:        make(chan struct{}),
	}
}

// Start begins the background processing of outbox events
func (op *OutboxProcessor) Start(ctx context.Context) {
	op.logger.Info("Starting outbox processor",
		zap.Int32("batchSize", op.batchSize),
		zap.Duration("interval", op.processingInterval))

	go op.processLoop(ctx)
}

// Stop gracefully stops the outbox processor
func (op *OutboxProcessor) Stop() {
	op.logger.Info("Stopping outbox processor")
	close(op.stopChan)
	<-op.stoppedChan
	op.logger.Info("Outbox processor stopped")
}

func (op *OutboxProcessor) processLoop(ctx context.Context) {
	defer close(op.stoppedChan)

	ticker := time.NewTicker(op.processingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			op.logger.Info("Context cancelled, stopping outbox processor")
			return
		case <-op.stopChan:
			return
		case <-ticker.C:
			if err := op.processBatch(ctx); err != nil {
				op.logger.Error("Error processing outbox batch", zap.Error(err))
			}
		}
	}
}

// processBatch publishes one batch of pending events
func (op *OutboxProcessor) processBatch(ctx context.Context) error {
	pending, err := op.eventStore.GetPendingEvents(ctx, op.batchSize)
	if err != nil {
		return fmt.Errorf("failed to get pending events: %w", err)
	}
	if len(pending) == 0 {
		return nil
	}

	successCount := 0
	failureCount := 0
	for _, record := range pending {
		if err := op.processEvent(ctx, record); err != nil {
			op.logger.Warn("Failed to process outbox event",
				zap.String("eventId", record.EventID),
				zap.String("eventType", record.EventType),
				zap.Error(err))
			failureCount++
		} else {
			successCount++
		}
	}

	op.logger.Debug("Completed outbox batch",
		zap.Int("successCount", successCount),
		zap.Int("failureCount", failureCount))
	return nil
}

func (op *OutboxProcessor) processEvent(ctx context.Context, record *EventRecord) error {
	domainEvent, err := op.eventStore.recordToEvent(*record)
	if err != nil {
		// Malformed events can never publish; burn their retries
		return op.markEventFailed(ctx, record, fmt.Sprintf("failed to convert to domain event: %v", err))
	}

	if err := op.eventPublisher.Publish(ctx, domainEvent); err != nil {
		return op.markEventFailed(ctx, record, fmt.Sprintf("publish failed: %v", err))
	}
	return op.markEventPublished(ctx, record)
}

func (op *OutboxProcessor) markEventPublished(ctx context.Context, record *EventRecord) error {
	if err := op.eventStore.MarkEventAsPublished(ctx, record.PK, record.SK); err != nil {
		op.logger.Error("Failed to mark event as published",
			zap.String("eventId", record.EventID),
			zap.Error(err))
		return err
	}
	return nil
}

func (op *OutboxProcessor) markEventFailed(ctx context.Context, record *EventRecord, errorMsg string) error {
	newAttempts := record.PublishAttempts + 1

	if err := op.eventStore.MarkEventAsFailed(ctx, record.PK, record.SK, errorMsg, newAttempts); err != nil {
		op.logger.Error("Failed to mark event as failed",
			zap.String("eventId", record.EventID),
			zap.Error(err))
		return err
	}

	if newAttempts >= op.maxRetries {
		op.logger.Warn("Event permanently failed after max retries",
			zap.String("eventId", record.EventID),
			zap.String("eventType", record.EventType),
			zap.Int("attempts", newAttempts),
			zap.String("error", errorMsg))
	}
	return fmt.Errorf("event processing failed: %s", errorMsg)
}
