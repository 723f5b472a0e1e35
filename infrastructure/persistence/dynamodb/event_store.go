package dynamodb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"

	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/events"
)

// EventStore implements the EventStore port on DynamoDB with an outbox:
// events land as pending, the outbox processor publishes them to the
// bus and flips their status. Publishing can lag but never loses an
// event that was saved.
type EventStore struct {
	client    *dynamodb.Client
	tableName string
	indexName string
}

// PublishStatus represents the publishing status of an event
type PublishStatus string

const (
	PublishStatusPending   PublishStatus = "pending"
	PublishStatusPublished PublishStatus = "published"
	PublishStatusFailed    PublishStatus = "failed"
)

// EventRecord represents how events are stored in DynamoDB
type EventRecord struct {
	PK            string                 `dynamodbav:"PK"` // EVENTS#<aggregate_id>
	SK            string                 `dynamodbav:"SK"` // EVENT#<timestamp>#<event_id>
	EventID       string                 `dynamodbav:"EventID"`
	EventType     string                 `dynamodbav:"EventType"`
	AggregateID   string                 `dynamodbav:"AggregateID"`
	AggregateType string                 `dynamodbav:"AggregateType"`
	EventData     map[string]interface{} `dynamodbav:"EventData"`
	Timestamp     string                 `dynamodbav:"Timestamp"`
	Version       int                    `dynamodbav:"Version"`

	PublishStatus   string `dynamodbav:"PublishStatus"`
	PublishAttempts int    `dynamodbav:"PublishAttempts"`
	LastPublishTry  string `dynamodbav:"LastPublishTry,omitempty"`
	PublishedAt     string `dynamodbav:"PublishedAt,omitempty"`
	ErrorMessage    string `dynamodbav:"ErrorMessage,omitempty"`

	// GSI attributes for type queries
	GSI1PK string `dynamodbav:"GSI1PK"` // EVENTTYPE#<type>
	GSI1SK string `dynamodbav:"GSI1SK"` // EVENT#<timestamp>

	// Events older than a year are garbage-collected
	TTL int64 `dynamodbav:"TTL,omitempty"`
}

// NewEventStore creates a DynamoDB-backed event store
func NewEventStore(client *dynamodb.Client, tableName, indexName string) *EventStore {
	return &EventStore{
		client:    client,
		tableName: tableName,
		indexName: indexName,
	}
}

// SaveEvents persists domain events to the event store
func (es *EventStore) SaveEvents(ctx context.Context, domainEvents []events.DomainEvent) error {
	if len(domainEvents) == 0 {
		return nil
	}

	requests := make([]types.WriteRequest, 0, len(domainEvents))
	for _, event := range domainEvents {
		record, err := es.eventToRecord(event)
		if err != nil {
			return fmt.Errorf("failed to convert event to record: %w", err)
		}
		item, err := attributevalue.MarshalMap(record)
		if err != nil {
			return fmt.Errorf("failed to marshal event record: %w", err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: item},
		})
	}
	return writeBatches(ctx, es.client, es.tableName, requests)
}

// GetEvents retrieves all events for an aggregate in timestamp order
func (es *EventStore) GetEvents(ctx context.Context, aggregateID string) ([]events.DomainEvent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(es.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("EVENTS#%s", aggregateID)},
		},
		ScanIndexForward: aws.Bool(true),
	}

	var allEvents []events.DomainEvent
	for {
		result, err := es.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query events: %w", err)
		}
		for _, item := range result.Items {
			var record EventRecord
			if err := attributevalue.UnmarshalMap(item, &record); err != nil {
				return nil, fmt.Errorf("failed to unmarshal event record: %w", err)
			}
			event, err := es.recordToEvent(record)
			if err != nil {
				return nil, fmt.Errorf("failed to convert record to event: %w", err)
			}
			allEvents = append(allEvents, event)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return allEvents, nil
}

// GetEventsByType retrieves the most recent events of a type
func (es *EventStore) GetEventsByType(ctx context.Context, eventType string, limit int) ([]events.DomainEvent, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(es.tableName),
		IndexName:              aws.String(es.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("EVENTTYPE#%s", eventType)},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	result, err := es.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by type: %w", err)
	}

	domainEvents := make([]events.DomainEvent, 0, len(result.Items))
	for _, item := range result.Items {
		var record EventRecord
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event record: %w", err)
		}
		event, err := es.recordToEvent(record)
		if err != nil {
			return nil, fmt.Errorf("failed to convert record to event: %w", err)
		}
		domainEvents = append(domainEvents, event)
	}
	return domainEvents, nil
}

// DeleteEvents removes all events for an aggregate
func (es *EventStore) DeleteEvents(ctx context.Context, aggregateID string) error {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(es.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: fmt.Sprintf("EVENTS#%s", aggregateID)},
		},
		ProjectionExpression: aws.String("PK, SK"),
	}

	requests := make([]types.WriteRequest, 0)
	for {
		result, err := es.client.Query(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to list events for delete: %w", err)
		}
		for _, item := range result.Items {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{
					Key: map[string]types.AttributeValue{
						"PK": item["PK"],
						"SK": item["SK"],
					},
				},
			})
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return writeBatches(ctx, es.client, es.tableName, requests)
}

// GetPendingEvents retrieves events that haven't been published yet
func (es *EventStore) GetPendingEvents(ctx context.Context, limit int32) ([]*EventRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}

	filter := expression.And(
		expression.Name("PublishStatus").Equal(expression.Value(string(PublishStatusPending))),
		expression.Name("PK").BeginsWith("EVENTS#"),
	)
	expr, err := expression.NewBuilder().WithFilter(filter).Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build pending events filter: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(es.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		Limit:                     aws.Int32(limit),
	}

	result, err := es.client.Scan(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to scan pending events: %w", err)
	}

	records := make([]*EventRecord, 0, len(result.Items))
	for _, item := range result.Items {
		var record EventRecord
		if err := attributevalue.UnmarshalMap(item, &record); err != nil {
			continue
		}
		records = append(records, &record)
	}
	return records, nil
}

// MarkEventAsPublished marks an event as successfully published
func (es *EventStore) MarkEventAsPublished(ctx context.Context, eventPK, eventSK string) error {
	now := time.Now().Format(time.RFC3339)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(es.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: eventPK},
			"SK": &types.AttributeValueMemberS{Value: eventSK},
		},
		UpdateExpression: aws.String("SET PublishStatus = :published, PublishedAt = :publishedAt"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":published":   &types.AttributeValueMemberS{Value: string(PublishStatusPublished)},
			":publishedAt": &types.AttributeValueMemberS{Value: now},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	}

	if _, err := es.client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to mark event as published: %w", err)
	}
	return nil
}

// MarkEventAsFailed records a publish failure. Events stay pending for
// retry until the attempt ceiling, then move to failed.
func (es *EventStore) MarkEventAsFailed(ctx context.Context, eventPK, eventSK string, errorMsg string, attempts int) error {
	now := time.Now().Format(time.RFC3339)

	status := string(PublishStatusFailed)
	if attempts < 3 {
		status = string(PublishStatusPending)
	}

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(es.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: eventPK},
			"SK": &types.AttributeValueMemberS{Value: eventSK},
		},
		UpdateExpression: aws.String("SET PublishStatus = :status, PublishAttempts = :attempts, LastPublishTry = :lastTry, ErrorMessage = :error"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status":   &types.AttributeValueMemberS{Value: status},
			":attempts": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", attempts)},
			":lastTry":  &types.AttributeValueMemberS{Value: now},
			":error":    &types.AttributeValueMemberS{Value: errorMsg},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	}

	if _, err := es.client.UpdateItem(ctx, input); err != nil {
		return fmt.Errorf("failed to mark event as failed: %w", err)
	}
	return nil
}

// eventToRecord converts a domain event to a DynamoDB record
func (es *EventStore) eventToRecord(event events.DomainEvent) (*EventRecord, error) {
	eventBytes, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}
	eventData := make(map[string]interface{})
	if err := json.Unmarshal(eventBytes, &eventData); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event to map: %w", err)
	}

	timestamp := event.GetTimestamp()
	eventID := uuid.New().String()
	ttl := timestamp.Add(365 * 24 * time.Hour).Unix()

	aggregateType := "unknown"
	switch {
	case strings.HasPrefix(event.GetEventType(), "circle."):
		aggregateType = "circle"
	case strings.HasPrefix(event.GetEventType(), "celebrity."):
		aggregateType = "celebrity"
	case strings.HasPrefix(event.GetEventType(), "outreach."):
		aggregateType = "outreach"
	}

	return &EventRecord{
		PK:            fmt.Sprintf("EVENTS#%s", event.GetAggregateID()),
		SK:            fmt.Sprintf("EVENT#%s#%s", timestamp.Format(time.RFC3339Nano), eventID),
		EventID:       eventID,
		EventType:     event.GetEventType(),
		AggregateID:   event.GetAggregateID(),
		AggregateType: aggregateType,
		EventData:     eventData,
		Timestamp:     timestamp.Format(time.RFC3339Nano),
		Version:       event.GetVersion(),

		PublishStatus:   string(PublishStatusPending),
		PublishAttempts: 0,

		GSI1PK: fmt.Sprintf("EVENTTYPE#%s", event.GetEventType()),
		GSI1SK: fmt.Sprintf("EVENT#%s", timestamp.Format(time.RFC3339Nano)),
		TTL:    ttl,
	}, nil
}

// recordToEvent converts a DynamoDB record back to a domain event
func (es *EventStore) recordToEvent(record EventRecord) (events.DomainEvent, error) {
	timestamp, err := time.Parse(time.RFC3339Nano, record.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse timestamp: %w", err)
	}

	data := record.EventData
	switch record.EventType {
	case events.EventTypePersonAdded:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		nodeID, err := storedNodeID(data)
		if err != nil {
			return nil, err
		}
		return events.NewPersonAdded(nodeID, celebrityID,
			stringField(data, "name"), stringField(data, "relationship_tag"), timestamp), nil

	case events.EventTypeRebuildRequested:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		return events.NewRebuildRequested(celebrityID, stringField(data, "reason"), timestamp), nil

	case events.EventTypeCircleRebuilt:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		return events.NewCircleRebuilt(celebrityID,
			intField(data, "snapshot_version"),
			intField(data, "node_count"),
			intField(data, "edge_count"),
			intField(data, "pruned_count"),
			intField(data, "warning_count"),
			intField(data, "access_score"),
			timestamp), nil

	case events.EventTypeCircleRebuildFailed:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		return events.NewCircleRebuildFailed(celebrityID, stringField(data, "reason"), timestamp), nil

	case events.EventTypeAccessScoreUpdated:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		return events.NewAccessScoreUpdated(celebrityID,
			intField(data, "old_score"), intField(data, "new_score"), timestamp), nil

	case events.EventTypeOutreachDrafted:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		nodeID, err := storedNodeID(data)
		if err != nil {
			return nil, err
		}
		return events.NewOutreachDrafted(stringField(data, "outreach_id"), celebrityID, nodeID,
			stringField(data, "subject"), intField(data, "word_count"), timestamp), nil

	case events.EventTypeOutreachStatusChanged:
		celebrityID, err := storedCelebrityID(data)
		if err != nil {
			return nil, err
		}
		return events.NewOutreachStatusChanged(stringField(data, "outreach_id"), celebrityID,
			stringField(data, "old_status"), stringField(data, "new_status"), timestamp), nil

	default:
		// Unknown types surface as bare base events rather than failing
		// the whole query
		return &events.BaseEvent{
			AggregateID: record.AggregateID,
			EventType:   record.EventType,
			Timestamp:   timestamp,
			Version:     record.Version,
		}, nil
	}
}

func storedCelebrityID(data map[string]interface{}) (valueobjects.CelebrityID, error) {
	id, err := valueobjects.NewCelebrityIDFromString(stringField(data, "celebrity_id"))
	if err != nil {
		return valueobjects.CelebrityID{}, fmt.Errorf("stored event has invalid celebrity ID: %w", err)
	}
	return id, nil
}

func storedNodeID(data map[string]interface{}) (valueobjects.NodeID, error) {
	id, err := valueobjects.NewNodeIDFromString(stringField(data, "node_id"))
	if err != nil {
		return valueobjects.NodeID{}, fmt.Errorf("stored event has invalid node ID: %w", err)
	}
	return id, nil
}

func stringField(data map[string]interface{}, key string) string {
	value, _ := data[key].(string)
	return value
}

// intField reads a numeric field; JSON numbers decode as float64
func intField(data map[string]interface{}, key string) int {
	if value, ok := data[key].(float64); ok {
		return int(value)
	}
	return 0
}
