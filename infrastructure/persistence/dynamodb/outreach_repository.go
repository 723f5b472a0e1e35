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

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

const (
	entityTypeOutreach = "OUTREACH"
	outreachSKPrefix   = "OUTREACH#"
)

// OutreachRepository implements ports.OutreachRepository on DynamoDB.
// Drafts sort within the celebrity partition by creation time, so the
// newest-first listing is a reverse range query. A GSI entry keyed by
// outreach ID serves direct lookups.
type OutreachRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewOutreachRepository creates a DynamoDB-backed outreach repository
func NewOutreachRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) *OutreachRepository {
	return &OutreachRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// outreachItem is the DynamoDB item structure for an outreach draft
type outreachItem struct {
	PK            string `dynamodbav:"PK"`     // CELEBRITY#<celebrity_id>
	SK            string `dynamodbav:"SK"`     // OUTREACH#<created_at>#<outreach_id>
	GSI1PK        string `dynamodbav:"GSI1PK"` // OUTREACH#<outreach_id>
	GSI1SK        string `dynamodbav:"GSI1SK"` // METADATA
	EntityType    string `dynamodbav:"EntityType"`
	OutreachID    string `dynamodbav:"OutreachID"`
	CelebrityID   string `dynamodbav:"CelebrityID"`
	NodeID        string `dynamodbav:"NodeID"`
	RecipientName string `dynamodbav:"RecipientName"`
	ChannelType   string `dynamodbav:"ChannelType"`
	ChannelHandle string `dynamodbav:"ChannelHandle"`
	ChannelPublic bool   `dynamodbav:"ChannelPublic"`
	Subject       string `dynamodbav:"Subject"`
	Body          string `dynamodbav:"Body"`
	ValueProp     string `dynamodbav:"ValueProp"`
	HopLabel      string `dynamodbav:"HopLabel"`
	Status        string `dynamodbav:"Status"`
	CreatedAt     string `dynamodbav:"CreatedAt"`
	UpdatedAt     string `dynamodbav:"UpdatedAt"`
}

// Save persists an outreach record (create or update)
func (r *OutreachRepository) Save(ctx context.Context, outreach *entities.Outreach) error {
	av, err := attributevalue.MarshalMap(outreachToItem(outreach))
	if err != nil {
		return fmt.Errorf("failed to marshal outreach: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save outreach",
			zap.String("outreachId", outreach.ID().String()),
			zap.Error(err))
		return fmt.Errorf("failed to save outreach: %w", err)
	}
	return nil
}

// GetByID retrieves an outreach record by its ID
func (r *OutreachRepository) GetByID(ctx context.Context, id valueobjects.OutreachID) (*entities.Outreach, error) {
	item, err := r.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return itemToOutreach(*item)
}

// GetByCelebrityID retrieves all outreach records for a celebrity, newest first
func (r *OutreachRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Outreach, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
			":sk": &types.AttributeValueMemberS{Value: outreachSKPrefix},
		},
		ScanIndexForward: aws.Bool(false),
	}

	drafts := make([]*entities.Outreach, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query outreach: %w", err)
		}
		for _, raw := range result.Items {
			var item outreachItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping malformed outreach item", zap.Error(err))
				continue
			}
			outreach, err := itemToOutreach(item)
			if err != nil {
				r.logger.Warn("Skipping unreconstructable outreach",
					zap.String("outreachId", item.OutreachID),
					zap.Error(err))
				continue
			}
			drafts = append(drafts, outreach)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return drafts, nil
}

// GetAll retrieves every outreach record, used by the stats rollup.
// This is a filtered scan; the draft volume stays small enough that a
// dedicated index is not worth its write cost.
func (r *OutreachRepository) GetAll(ctx context.Context) ([]*entities.Outreach, error) {
	expr, err := expression.NewBuilder().
		WithFilter(expression.Name("EntityType").Equal(expression.Value(entityTypeOutreach))).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build outreach filter: %w", err)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	}

	drafts := make([]*entities.Outreach, 0)
	for {
		result, err := r.client.Scan(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to scan outreach: %w", err)
		}
		for _, raw := range result.Items {
			var item outreachItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				continue
			}
			outreach, err := itemToOutreach(item)
			if err != nil {
				continue
			}
			drafts = append(drafts, outreach)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return drafts, nil
}

// Delete removes an outreach record, used by saga compensation
func (r *OutreachRepository) Delete(ctx context.Context, id valueobjects.OutreachID) error {
	item, err := r.findByID(ctx, id)
	if err != nil {
		return err
	}

	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: item.PK},
			"SK": &types.AttributeValueMemberS{Value: item.SK},
		},
	}
	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		return fmt.Errorf("failed to delete outreach: %w", err)
	}
	return nil
}

// findByID resolves an outreach ID to its stored item via the GSI
func (r *OutreachRepository) findByID(ctx context.Context, id valueobjects.OutreachID) (*outreachItem, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk AND GSI1SK = :sk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: outreachSKPrefix + id.String()},
			":sk": &types.AttributeValueMemberS{Value: metadataSK},
		},
		Limit: aws.Int32(1),
	}

	result, err := r.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query outreach by ID: %w", err)
	}
	if len(result.Items) == 0 {
		return nil, pkgerrors.ErrOutreachNotFound.Clone().WithDetail("outreach_id", id.String())
	}

	var item outreachItem
	if err := attributevalue.UnmarshalMap(result.Items[0], &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outreach: %w", err)
	}
	return &item, nil
}

func outreachToItem(outreach *entities.Outreach) outreachItem {
	createdAt := outreach.CreatedAt().UTC().Format(time.RFC3339Nano)
	return outreachItem{
		PK:            celebrityPK(outreach.CelebrityID().String()),
		SK:            fmt.Sprintf("%s%s#%s", outreachSKPrefix, createdAt, outreach.ID().String()),
		GSI1PK:        outreachSKPrefix + outreach.ID().String(),
		GSI1SK:        metadataSK,
		EntityType:    entityTypeOutreach,
		OutreachID:    outreach.ID().String(),
		CelebrityID:   outreach.CelebrityID().String(),
		NodeID:        outreach.NodeID().String(),
		RecipientName: outreach.RecipientName(),
		ChannelType:   string(outreach.Channel().Type()),
		ChannelHandle: outreach.Channel().Handle(),
		ChannelPublic: outreach.Channel().IsPublic(),
		Subject:       outreach.Subject(),
		Body:          outreach.Body(),
		ValueProp:     outreach.ValueProp(),
		HopLabel:      outreach.HopLabel().String(),
		Status:        outreach.Status().String(),
		CreatedAt:     createdAt,
		UpdatedAt:     outreach.UpdatedAt().UTC().Format(time.RFC3339Nano),
	}
}

func itemToOutreach(item outreachItem) (*entities.Outreach, error) {
	id, err := valueobjects.NewOutreachIDFromString(item.OutreachID)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid ID: %w", err)
	}
	celebrityID, err := valueobjects.NewCelebrityIDFromString(item.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid celebrity ID: %w", err)
	}
	nodeID, err := valueobjects.NewNodeIDFromString(item.NodeID)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid node ID: %w", err)
	}
	channel, err := valueobjects.NewContactChannel(
		valueobjects.ParseChannelType(item.ChannelType),
		item.ChannelHandle,
		item.ChannelPublic,
	)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid channel: %w", err)
	}
	status, err := valueobjects.ParseOutreachStatus(item.Status)
	if err != nil {
		return nil, fmt.Errorf("stored outreach has invalid status: %w", err)
	}

	return entities.ReconstructOutreach(
		id,
		celebrityID,
		nodeID,
		item.RecipientName,
		channel,
		item.Subject,
		item.Body,
		item.ValueProp,
		valueobjects.HopLabel(item.HopLabel),
		status,
		parseStoredTime(item.CreatedAt),
		parseStoredTime(item.UpdatedAt),
	)
}
