// Package dynamodb implements the persistence ports on a single
// DynamoDB table. Every celebrity owns one partition: the metadata
// item, one item per circle member, one item per raw edge, the version
// history, and the outreach drafts all share its PK, so a circle loads
// with one query.
package dynamodb

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

const (
	entityTypeCelebrity = "CELEBRITY"
	rosterPartition     = "TYPE#CELEBRITY"
	metadataSK          = "METADATA"

	// DynamoDB caps BatchWriteItem at 25 items per request
	batchWriteLimit = 25
)

// CelebrityRepository implements ports.CelebrityRepository on DynamoDB
type CelebrityRepository struct {
	client    *dynamodb.Client
	tableName string
	indexName string
	logger    *zap.Logger
}

// NewCelebrityRepository creates a DynamoDB-backed celebrity repository
func NewCelebrityRepository(client *dynamodb.Client, tableName, indexName string, logger *zap.Logger) *CelebrityRepository {
	return &CelebrityRepository{
		client:    client,
		tableName: tableName,
		indexName: indexName,
		logger:    logger,
	}
}

// celebrityItem is the DynamoDB item structure for a celebrity
type celebrityItem struct {
	PK            string   `dynamodbav:"PK"`     // CELEBRITY#<id>
	SK            string   `dynamodbav:"SK"`     // METADATA
	GSI1PK        string   `dynamodbav:"GSI1PK"` // TYPE#CELEBRITY for roster queries
	GSI1SK        string   `dynamodbav:"GSI1SK"` // NAME#<lowercase name>
	EntityType    string   `dynamodbav:"EntityType"`
	CelebrityID   string   `dynamodbav:"CelebrityID"`
	Name          string   `dynamodbav:"Name"`
	Category      string   `dynamodbav:"Category"`
	Bio           string   `dynamodbav:"Bio"`
	PrimaryHandle string   `dynamodbav:"PrimaryHandle"`
	KnownManager  string   `dynamodbav:"KnownManager"`
	NodeIDs       []string `dynamodbav:"NodeIDs"`
	AccessScore   int      `dynamodbav:"AccessScore"`
	CreatedAt     string   `dynamodbav:"CreatedAt"`
	UpdatedAt     string   `dynamodbav:"UpdatedAt"`
}

// Save persists a celebrity (create or update)
func (r *CelebrityRepository) Save(ctx context.Context, celebrity *entities.Celebrity) error {
	av, err := attributevalue.MarshalMap(celebrityToItem(celebrity))
	if err != nil {
		return fmt.Errorf("failed to marshal celebrity: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save celebrity",
			zap.String("celebrityId", celebrity.ID().String()),
			zap.Error(err))
		return fmt.Errorf("failed to save celebrity: %w", err)
	}
	return nil
}

// GetByID retrieves a celebrity by its ID
func (r *CelebrityRepository) GetByID(ctx context.Context, id valueobjects.CelebrityID) (*entities.Celebrity, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: celebrityPK(id.String())},
			"SK": &types.AttributeValueMemberS{Value: metadataSK},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get celebrity: %w", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("celebrity_id", id.String())
	}

	var item celebrityItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal celebrity: %w", err)
	}
	return itemToCelebrity(item)
}

// GetAll retrieves the full roster ordered by name
func (r *CelebrityRepository) GetAll(ctx context.Context) ([]*entities.Celebrity, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(r.indexName),
		KeyConditionExpression: aws.String("GSI1PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: rosterPartition},
		},
		ScanIndexForward: aws.Bool(true),
	}

	roster := make([]*entities.Celebrity, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query roster: %w", err)
		}
		for _, raw := range result.Items {
			var item celebrityItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping malformed celebrity item", zap.Error(err))
				continue
			}
			celebrity, err := itemToCelebrity(item)
			if err != nil {
				r.logger.Warn("Skipping unreconstructable celebrity",
					zap.String("celebrityId", item.CelebrityID),
					zap.Error(err))
				continue
			}
			roster = append(roster, celebrity)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return roster, nil
}

// Search finds celebrities matching the given criteria. The roster is
// small enough that matching and ordering happen in process after the
// index query.
func (r *CelebrityRepository) Search(ctx context.Context, criteria ports.CelebritySearchCriteria) ([]*entities.Celebrity, error) {
	roster, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*entities.Celebrity, 0, len(roster))
	for _, celebrity := range roster {
		if criteria.Query != "" && !celebrity.MatchesQuery(criteria.Query) {
			continue
		}
		if criteria.Category != "" && !strings.EqualFold(celebrity.Category().String(), criteria.Category) {
			continue
		}
		matched = append(matched, celebrity)
	}

	sortRoster(matched, criteria.OrderBy, criteria.OrderDesc)

	if criteria.Offset > 0 {
		if criteria.Offset >= len(matched) {
			return []*entities.Celebrity{}, nil
		}
		matched = matched[criteria.Offset:]
	}
	if criteria.Limit > 0 && criteria.Limit < len(matched) {
		matched = matched[:criteria.Limit]
	}
	return matched, nil
}

// Delete removes a celebrity and everything in its partition
func (r *CelebrityRepository) Delete(ctx context.Context, id valueobjects.CelebrityID) error {
	keys, err := r.partitionKeys(ctx, id.String())
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return pkgerrors.ErrCelebrityNotFound.Clone().WithDetail("celebrity_id", id.String())
	}

	for start := 0; start < len(keys); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(keys) {
			end = len(keys)
		}
		requests := make([]types.WriteRequest, 0, end-start)
		for _, key := range keys[start:end] {
			requests = append(requests, types.WriteRequest{
				DeleteRequest: &types.DeleteRequest{Key: key},
			})
		}
		input := &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{r.tableName: requests},
		}
		result, err := r.client.BatchWriteItem(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to delete celebrity partition: %w", err)
		}
		if len(result.UnprocessedItems) > 0 {
			return fmt.Errorf("failed to delete %d items for celebrity %s",
				len(result.UnprocessedItems[r.tableName]), id.String())
		}
	}

	r.logger.Info("Deleted celebrity partition",
		zap.String("celebrityId", id.String()),
		zap.Int("itemCount", len(keys)))
	return nil
}

// BulkSave saves multiple celebrities in one batch, used by seeding
func (r *CelebrityRepository) BulkSave(ctx context.Context, celebrities []*entities.Celebrity) error {
	requests := make([]types.WriteRequest, 0, len(celebrities))
	for _, celebrity := range celebrities {
		av, err := attributevalue.MarshalMap(celebrityToItem(celebrity))
		if err != nil {
			return fmt.Errorf("failed to marshal celebrity %s: %w", celebrity.ID().String(), err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	return writeBatches(ctx, r.client, r.tableName, requests)
}

// partitionKeys lists every PK/SK pair stored under a celebrity
func (r *CelebrityRepository) partitionKeys(ctx context.Context, celebrityID string) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID)},
		},
		ProjectionExpression: aws.String("PK, SK"),
	}

	keys := make([]map[string]types.AttributeValue, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to list celebrity partition: %w", err)
		}
		for _, item := range result.Items {
			keys = append(keys, map[string]types.AttributeValue{
				"PK": item["PK"],
				"SK": item["SK"],
			})
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return keys, nil
}

// writeBatches flushes put/delete requests in DynamoDB-sized chunks
func writeBatches(ctx context.Context, client *dynamodb.Client, tableName string, requests []types.WriteRequest) error {
	for start := 0; start < len(requests); start += batchWriteLimit {
		end := start + batchWriteLimit
		if end > len(requests) {
			end = len(requests)
		}
		input := &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{tableName: requests[start:end]},
		}
		result, err := client.BatchWriteItem(ctx, input)
		if err != nil {
			return fmt.Errorf("failed to write batch: %w", err)
		}
		if len(result.UnprocessedItems) > 0 {
			return fmt.Errorf("failed to write %d items", len(result.UnprocessedItems[tableName]))
		}
	}
	return nil
}

func celebrityPK(celebrityID string) string {
	return fmt.Sprintf("CELEBRITY#%s", celebrityID)
}

func celebrityToItem(celebrity *entities.Celebrity) celebrityItem {
	nodeIDs := make([]string, 0, celebrity.NodeCount())
	for _, nodeID := range celebrity.NodeIDs() {
		nodeIDs = append(nodeIDs, nodeID.String())
	}
	return celebrityItem{
		PK:            celebrityPK(celebrity.ID().String()),
		SK:            metadataSK,
		GSI1PK:        rosterPartition,
		GSI1SK:        fmt.Sprintf("NAME#%s", strings.ToLower(celebrity.Name())),
		EntityType:    entityTypeCelebrity,
		CelebrityID:   celebrity.ID().String(),
		Name:          celebrity.Name(),
		Category:      celebrity.Category().String(),
		Bio:           celebrity.Bio(),
		PrimaryHandle: celebrity.PrimaryHandle(),
		KnownManager:  celebrity.KnownManager(),
		NodeIDs:       nodeIDs,
		AccessScore:   celebrity.AccessScore(),
		CreatedAt:     celebrity.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:     celebrity.UpdatedAt().Format(time.RFC3339Nano),
	}
}

func itemToCelebrity(item celebrityItem) (*entities.Celebrity, error) {
	id, err := valueobjects.NewCelebrityIDFromString(item.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("stored celebrity has invalid ID: %w", err)
	}
	category, err := valueobjects.ParseCategory(item.Category)
	if err != nil {
		return nil, fmt.Errorf("stored celebrity has invalid category: %w", err)
	}

	nodeIDs := make([]valueobjects.NodeID, 0, len(item.NodeIDs))
	for _, raw := range item.NodeIDs {
		nodeID, err := valueobjects.NewNodeIDFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("stored celebrity has invalid node ID: %w", err)
		}
		nodeIDs = append(nodeIDs, nodeID)
	}

	createdAt := parseStoredTime(item.CreatedAt)
	updatedAt := parseStoredTime(item.UpdatedAt)

	return entities.ReconstructCelebrity(
		id,
		item.Name,
		category,
		item.Bio,
		item.PrimaryHandle,
		item.KnownManager,
		nodeIDs,
		item.AccessScore,
		createdAt,
		updatedAt,
	)
}

// sortRoster orders search results by the requested column, name by default
func sortRoster(roster []*entities.Celebrity, orderBy string, desc bool) {
	less := func(i, j int) bool {
		return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
	}
	if orderBy == "access_score" {
		less = func(i, j int) bool {
			if roster[i].AccessScore() != roster[j].AccessScore() {
				return roster[i].AccessScore() < roster[j].AccessScore()
			}
			return strings.ToLower(roster[i].Name()) < strings.ToLower(roster[j].Name())
		}
	}
	if desc {
		inner := less
		less = func(i, j int) bool { return inner(j, i) }
	}
	sort.Slice(roster, less)
}

// parseStoredTime reads a stored RFC3339 timestamp, zero time when blank
func parseStoredTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}
