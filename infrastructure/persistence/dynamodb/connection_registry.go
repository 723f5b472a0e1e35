package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
)

// ConnectionRegistry stores live dashboard WebSocket connections in a
// dedicated table. Rows expire via TTL a day after connect in case a
// disconnect event never arrives.
type ConnectionRegistry struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewConnectionRegistry creates a DynamoDB-backed connection registry
func NewConnectionRegistry(client *dynamodb.Client, tableName string, logger *zap.Logger) *ConnectionRegistry {
	return &ConnectionRegistry{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// connectionItem is the DynamoDB item structure for one connection
type connectionItem struct {
	ConnectionID string `dynamodbav:"ConnectionID"`
	Topic        string `dynamodbav:"Topic"`
	ConnectedAt  string `dynamodbav:"ConnectedAt"`
	TTL          int64  `dynamodbav:"TTL"`
}

// Register stores a new connection
func (r *ConnectionRegistry) Register(ctx context.Context, conn ports.Connection) error {
	item := connectionItem{
		ConnectionID: conn.ConnectionID,
		Topic:        conn.Topic,
		ConnectedAt:  conn.ConnectedAt.UTC().Format(time.RFC3339Nano),
		TTL:          conn.ConnectedAt.Add(24 * time.Hour).Unix(),
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal connection: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if _, err := r.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to register connection: %w", err)
	}

	r.logger.Debug("Connection registered",
		zap.String("connectionId", conn.ConnectionID),
		zap.String("topic", conn.Topic))
	return nil
}

// Deregister removes a connection
func (r *ConnectionRegistry) Deregister(ctx context.Context, connectionID string) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"ConnectionID": &types.AttributeValueMemberS{Value: connectionID},
		},
	}
	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to deregister connection: %w", err)
	}
	return nil
}

// ListByTopic retrieves all connections subscribed to a topic. The
// connections table stays small, so this is a filtered scan.
func (r *ConnectionRegistry) ListByTopic(ctx context.Context, topic string) ([]ports.Connection, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("Topic").Equal(expression.Value(topic))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build topic filter: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	connections := make([]ports.Connection, 0)
	for {
		result, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan connections: %w", err)
		}
		for _, raw := range result.Items {
			var item connectionItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping malformed connection item", zap.Error(err))
				continue
			}
			connections = append(connections, ports.Connection{
				ConnectionID: item.ConnectionID,
				Topic:        item.Topic,
				ConnectedAt:  parseStoredTime(item.ConnectedAt),
			})
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return connections, nil
}
