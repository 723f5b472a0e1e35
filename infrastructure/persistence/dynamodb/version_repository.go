package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/domain/versioning"
)

const (
	entityTypeVersion = "SNAPSHOT_VERSION"
	versionSKPrefix   = "VERSION#"
)

// SnapshotVersionRepository implements ports.SnapshotVersionRepository
// on DynamoDB. Stamps sort by zero-padded version number, so latest is
// a reverse query with limit 1.
type SnapshotVersionRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewSnapshotVersionRepository creates a DynamoDB-backed version history store
func NewSnapshotVersionRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *SnapshotVersionRepository {
	return &SnapshotVersionRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// versionItem is the DynamoDB item structure for a version stamp
type versionItem struct {
	PK          string `dynamodbav:"PK"` // CELEBRITY#<celebrity_id>
	SK          string `dynamodbav:"SK"` // VERSION#<zero-padded version>
	EntityType  string `dynamodbav:"EntityType"`
	CelebrityID string `dynamodbav:"CelebrityID"`
	Version     int    `dynamodbav:"Version"`
	Checksum    string `dynamodbav:"Checksum"`
	NodeCount   int    `dynamodbav:"NodeCount"`
	EdgeCount   int    `dynamodbav:"EdgeCount"`
	PrunedCount int    `dynamodbav:"PrunedCount"`
	AccessScore int    `dynamodbav:"AccessScore"`
	BuiltAt     string `dynamodbav:"BuiltAt"`
	Trigger     string `dynamodbav:"Trigger"`
}

// SaveVersion appends a version stamp to the history
func (r *SnapshotVersionRepository) SaveVersion(ctx context.Context, version *versioning.SnapshotVersion) error {
	item := versionItem{
		PK:          celebrityPK(version.CelebrityID),
		SK:          versionSK(version.Version),
		EntityType:  entityTypeVersion,
		CelebrityID: version.CelebrityID,
		Version:     version.Version,
		Checksum:    version.Checksum,
		NodeCount:   version.NodeCount,
		EdgeCount:   version.EdgeCount,
		PrunedCount: version.PrunedCount,
		AccessScore: version.AccessScore,
		BuiltAt:     version.BuiltAt.UTC().Format(time.RFC3339Nano),
		Trigger:     version.Trigger,
	}

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal version stamp: %w", err)
	}
	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if _, err := r.client.PutItem(ctx, input); err != nil {
		return fmt.Errorf("failed to save version stamp: %w", err)
	}
	return nil
}

// GetLatest retrieves the most recent version stamp for a celebrity,
// nil without error when no history exists
func (r *SnapshotVersionRepository) GetLatest(ctx context.Context, celebrityID valueobjects.CelebrityID) (*versioning.SnapshotVersion, error) {
	history, err := r.GetHistory(ctx, celebrityID, 1)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, nil
	}
	return history[0], nil
}

// GetHistory retrieves version stamps newest first, up to limit
func (r *SnapshotVersionRepository) GetHistory(ctx context.Context, celebrityID valueobjects.CelebrityID, limit int) ([]*versioning.SnapshotVersion, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
			":sk": &types.AttributeValueMemberS{Value: versionSKPrefix},
		},
		ScanIndexForward: aws.Bool(false),
	}
	if limit > 0 {
		input.Limit = aws.Int32(int32(limit))
	}

	history := make([]*versioning.SnapshotVersion, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query version history: %w", err)
		}
		for _, raw := range result.Items {
			var item versionItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping malformed version item", zap.Error(err))
				continue
			}
			history = append(history, itemToVersion(item))
			if limit > 0 && len(history) >= limit {
				return history, nil
			}
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return history, nil
}

// Prune drops history beyond the retention policy, returning the count
// removed. The newest stamp survives regardless of age.
func (r *SnapshotVersionRepository) Prune(ctx context.Context, celebrityID valueobjects.CelebrityID, policy versioning.RetentionPolicy) (int, error) {
	history, err := r.GetHistory(ctx, celebrityID, 0)
	if err != nil {
		return 0, err
	}
	if len(history) <= 1 {
		return 0, nil
	}

	cutoff := time.Now().Add(-policy.RetentionPeriod)
	requests := make([]types.WriteRequest, 0)
	for i, version := range history {
		if i == 0 {
			continue
		}
		withinCount := policy.MaxVersions <= 0 || i < policy.MaxVersions
		withinAge := policy.RetentionPeriod <= 0 || version.BuiltAt.After(cutoff)
		if withinCount && withinAge {
			continue
		}
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
					"SK": &types.AttributeValueMemberS{Value: versionSK(version.Version)},
				},
			},
		})
	}

	if len(requests) == 0 {
		return 0, nil
	}
	if err := writeBatches(ctx, r.client, r.tableName, requests); err != nil {
		return 0, err
	}
	return len(requests), nil
}

// versionSK zero-pads so lexicographic SK order matches numeric order
func versionSK(version int) string {
	return fmt.Sprintf("%s%010d", versionSKPrefix, version)
}

func itemToVersion(item versionItem) *versioning.SnapshotVersion {
	return &versioning.SnapshotVersion{
		CelebrityID: item.CelebrityID,
		Version:     item.Version,
		Checksum:    item.Checksum,
		NodeCount:   item.NodeCount,
		EdgeCount:   item.EdgeCount,
		PrunedCount: item.PrunedCount,
		AccessScore: item.AccessScore,
		BuiltAt:     parseStoredTime(item.BuiltAt),
		Trigger:     item.Trigger,
	}
}
