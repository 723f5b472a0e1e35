package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

// RebuildLock serializes snapshot rebuilds across processes using
// DynamoDB conditional writes. An expired lock is taken over by the
// next Acquire; the stored expiry is the source of truth, the item TTL
// only garbage-collects leftovers.
type RebuildLock struct {
	client    *dynamodb.Client
	tableName string
	owner     string
	logger    *zap.Logger
}

// NewRebuildLock creates a DynamoDB-backed rebuild lock. Owner names
// the process for diagnostics, typically the Lambda function name or
// hostname.
func NewRebuildLock(client *dynamodb.Client, tableName, owner string, logger *zap.Logger) *RebuildLock {
	return &RebuildLock{
		client:    client,
		tableName: tableName,
		owner:     owner,
		logger:    logger,
	}
}

// Acquire takes the rebuild lock for a celebrity, failing fast with
// ErrRebuildInFlight when another owner holds an unexpired lock
func (l *RebuildLock) Acquire(ctx context.Context, celebrityID valueobjects.CelebrityID, ttl time.Duration) (ports.LockLease, error) {
	lockID := fmt.Sprintf("%s_%s", l.owner, uuid.New().String())
	now := time.Now()
	expiresAt := now.Add(ttl)

	input := &dynamodb.PutItemInput{
		TableName: aws.String(l.tableName),
		Item: map[string]types.AttributeValue{
			"PK":         &types.AttributeValueMemberS{Value: lockPK(celebrityID.String())},
			"SK":         &types.AttributeValueMemberS{Value: "LOCK"},
			"LockID":     &types.AttributeValueMemberS{Value: lockID},
			"Owner":      &types.AttributeValueMemberS{Value: l.owner},
			"AcquiredAt": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
			"ExpiresAt":  &types.AttributeValueMemberS{Value: expiresAt.Format(time.RFC3339)},
			"TTL":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expiresAt.Add(time.Hour).Unix())},
		},
		ConditionExpression: aws.String("attribute_not_exists(PK) OR ExpiresAt < :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
	}

	if _, err := l.client.PutItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			l.logger.Debug("Rebuild lock already held",
				zap.String("celebrityId", celebrityID.String()))
			return nil, pkgerrors.ErrRebuildInFlight.Clone().WithDetail("celebrity_id", celebrityID.String())
		}
		return nil, fmt.Errorf("failed to acquire rebuild lock: %w", err)
	}

	l.logger.Debug("Rebuild lock acquired",
		zap.String("celebrityId", celebrityID.String()),
		zap.String("lockId", lockID),
		zap.Duration("ttl", ttl))

	return &dynamoLease{
		lock:        l,
		celebrityID: celebrityID.String(),
		lockID:      lockID,
		expiresAt:   expiresAt,
	}, nil
}

// dynamoLease is a held rebuild lock backed by a DynamoDB item
type dynamoLease struct {
	lock        *RebuildLock
	celebrityID string
	lockID      string
	expiresAt   time.Time
}

// Release frees the lock. An already-released or taken-over lock is
// not an error; it is the state Release wants.
func (le *dynamoLease) Release(ctx context.Context) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(le.lock.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: lockPK(le.celebrityID)},
			"SK": &types.AttributeValueMemberS{Value: "LOCK"},
		},
		ConditionExpression: aws.String("LockID = :lockId"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lockId": &types.AttributeValueMemberS{Value: le.lockID},
		},
	}

	if _, err := le.lock.client.DeleteItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			le.lock.logger.Warn("Rebuild lock already released or taken over",
				zap.String("celebrityId", le.celebrityID),
				zap.String("lockId", le.lockID))
			return nil
		}
		return fmt.Errorf("failed to release rebuild lock: %w", err)
	}
	return nil
}

// Extend pushes the expiry out for long rebuilds
func (le *dynamoLease) Extend(ctx context.Context, additional time.Duration) error {
	newExpiry := le.expiresAt.Add(additional)

	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(le.lock.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: lockPK(le.celebrityID)},
			"SK": &types.AttributeValueMemberS{Value: "LOCK"},
		},
		UpdateExpression:    aws.String("SET ExpiresAt = :expiresAt, #ttl = :ttl"),
		ConditionExpression: aws.String("LockID = :lockId"),
		ExpressionAttributeNames: map[string]string{
			"#ttl": "TTL",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expiresAt": &types.AttributeValueMemberS{Value: newExpiry.Format(time.RFC3339)},
			":ttl":       &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", newExpiry.Add(time.Hour).Unix())},
			":lockId":    &types.AttributeValueMemberS{Value: le.lockID},
		},
	}

	if _, err := le.lock.client.UpdateItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return pkgerrors.ErrRebuildInFlight.Clone().WithDetail("celebrity_id", le.celebrityID)
		}
		return fmt.Errorf("failed to extend rebuild lock: %w", err)
	}

	le.expiresAt = newExpiry
	return nil
}

func lockPK(celebrityID string) string {
	return fmt.Sprintf("LOCK#%s", celebrityID)
}
