package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/aggregates"
	"accessengine-backend/domain/core/valueobjects"
)

const (
	entityTypeEdge = "EDGE"
	edgeSKPrefix   = "EDGE#"
)

// EdgeRecordRepository implements ports.EdgeRecordRepository on
// DynamoDB. Each raw edge is one item keyed by its endpoint pair, so
// re-submitting the same pair overwrites rather than duplicates.
type EdgeRecordRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewEdgeRecordRepository creates a DynamoDB-backed edge record repository
func NewEdgeRecordRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *EdgeRecordRepository {
	return &EdgeRecordRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// edgeItem is the DynamoDB item structure for one raw edge record
type edgeItem struct {
	PK         string `dynamodbav:"PK"` // CELEBRITY#<celebrity_id>
	SK         string `dynamodbav:"SK"` // EDGE#<source_key>#<target_key>
	EntityType string `dynamodbav:"EntityType"`
	SourceKey  string `dynamodbav:"SourceKey"`
	TargetKey  string `dynamodbav:"TargetKey"`
	Strength   int    `dynamodbav:"Strength"`
}

// SaveBatch appends edge records for a celebrity
func (r *EdgeRecordRepository) SaveBatch(ctx context.Context, celebrityID valueobjects.CelebrityID, edges []aggregates.RawEdge) error {
	requests := make([]types.WriteRequest, 0, len(edges))
	for _, edge := range edges {
		item := edgeItem{
			PK:         celebrityPK(celebrityID.String()),
			SK:         fmt.Sprintf("%s%s#%s", edgeSKPrefix, edge.SourceKey, edge.TargetKey),
			EntityType: entityTypeEdge,
			SourceKey:  edge.SourceKey,
			TargetKey:  edge.TargetKey,
			Strength:   edge.Strength,
		}
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return fmt.Errorf("failed to marshal edge: %w", err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	return writeBatches(ctx, r.client, r.tableName, requests)
}

// GetByCelebrityID retrieves all edge records for a celebrity
func (r *EdgeRecordRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]aggregates.RawEdge, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
			":sk": &types.AttributeValueMemberS{Value: edgeSKPrefix},
		},
		ScanIndexForward: aws.Bool(true),
	}

	edges := make([]aggregates.RawEdge, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query edges: %w", err)
		}
		for _, raw := range result.Items {
			var item edgeItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping malformed edge item", zap.Error(err))
				continue
			}
			edges = append(edges, aggregates.RawEdge{
				SourceKey: item.SourceKey,
				TargetKey: item.TargetKey,
				Strength:  item.Strength,
			})
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return edges, nil
}

// DeleteByCelebrityID removes all edge records for a celebrity
func (r *EdgeRecordRepository) DeleteByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) error {
	existing, err := r.GetByCelebrityID(ctx, celebrityID)
	if err != nil {
		return err
	}

	requests := make([]types.WriteRequest, 0, len(existing))
	for _, edge := range existing {
		requests = append(requests, types.WriteRequest{
			DeleteRequest: &types.DeleteRequest{
				Key: map[string]types.AttributeValue{
					"PK": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
					"SK": &types.AttributeValueMemberS{Value: fmt.Sprintf("%s%s#%s", edgeSKPrefix, edge.SourceKey, edge.TargetKey)},
				},
			},
		})
	}
	return writeBatches(ctx, r.client, r.tableName, requests)
}
