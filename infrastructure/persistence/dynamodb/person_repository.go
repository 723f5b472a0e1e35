package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
	pkgerrors "accessengine-backend/pkg/errors"
)

const (
	entityTypeMember = "MEMBER"
	memberSKPrefix   = "MEMBER#"
)

// PersonRepository implements ports.PersonRepository on DynamoDB.
// Members live in their celebrity's partition under MEMBER# sort keys.
type PersonRepository struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewPersonRepository creates a DynamoDB-backed person repository
func NewPersonRepository(client *dynamodb.Client, tableName string, logger *zap.Logger) *PersonRepository {
	return &PersonRepository{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// personItem is the DynamoDB item structure for a circle member
type personItem struct {
	PK                   string        `dynamodbav:"PK"` // CELEBRITY#<celebrity_id>
	SK                   string        `dynamodbav:"SK"` // MEMBER#<node_id>
	EntityType           string        `dynamodbav:"EntityType"`
	NodeID               string        `dynamodbav:"NodeID"`
	CelebrityID          string        `dynamodbav:"CelebrityID"`
	Name                 string        `dynamodbav:"Name"`
	Tag                  string        `dynamodbav:"Tag"`
	Role                 string        `dynamodbav:"Role"`
	Rationale            string        `dynamodbav:"Rationale"`
	Channels             []channelItem `dynamodbav:"Channels"`
	RelationshipStrength int           `dynamodbav:"RelationshipStrength"`
	MutualConnections    int           `dynamodbav:"MutualConnections"`
	InteractionFrequency int           `dynamodbav:"InteractionFrequency"`
	LastActivity         string        `dynamodbav:"LastActivity,omitempty"`
	CreatedAt            string        `dynamodbav:"CreatedAt"`
	UpdatedAt            string        `dynamodbav:"UpdatedAt"`
}

// channelItem is the stored form of one contact channel
type channelItem struct {
	Type   string `dynamodbav:"Type"`
	Handle string `dynamodbav:"Handle"`
	Public bool   `dynamodbav:"Public"`
}

// Save persists a person (create or update)
func (r *PersonRepository) Save(ctx context.Context, person *entities.Person) error {
	item, err := personToItem(person)
	if err != nil {
		return err
	}
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal person: %w", err)
	}

	input := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if _, err := r.client.PutItem(ctx, input); err != nil {
		r.logger.Error("Failed to save person",
			zap.String("nodeId", person.ID().String()),
			zap.String("celebrityId", person.CelebrityID().String()),
			zap.Error(err))
		return fmt.Errorf("failed to save person: %w", err)
	}
	return nil
}

// GetByID retrieves one member of a celebrity's circle
func (r *PersonRepository) GetByID(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) (*entities.Person, error) {
	input := &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
			"SK": &types.AttributeValueMemberS{Value: memberSKPrefix + id.String()},
		},
	}

	result, err := r.client.GetItem(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	if result.Item == nil {
		return nil, pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
	}

	var item personItem
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person: %w", err)
	}
	return itemToPerson(item)
}

// GetByCelebrityID retrieves every member of a celebrity's circle,
// ordered by node ID so rebuild input is deterministic
func (r *PersonRepository) GetByCelebrityID(ctx context.Context, celebrityID valueobjects.CelebrityID) ([]*entities.Person, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :sk)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
			":sk": &types.AttributeValueMemberS{Value: memberSKPrefix},
		},
		ScanIndexForward: aws.Bool(true),
	}

	members := make([]*entities.Person, 0)
	for {
		result, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("failed to query members: %w", err)
		}
		for _, raw := range result.Items {
			var item personItem
			if err := attributevalue.UnmarshalMap(raw, &item); err != nil {
				r.logger.Warn("Skipping malformed member item", zap.Error(err))
				continue
			}
			person, err := itemToPerson(item)
			if err != nil {
				r.logger.Warn("Skipping unreconstructable member",
					zap.String("nodeId", item.NodeID),
					zap.Error(err))
				continue
			}
			members = append(members, person)
		}
		if result.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}
	return members, nil
}

// Delete removes a member from a celebrity's circle
func (r *PersonRepository) Delete(ctx context.Context, celebrityID valueobjects.CelebrityID, id valueobjects.NodeID) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: celebrityPK(celebrityID.String())},
			"SK": &types.AttributeValueMemberS{Value: memberSKPrefix + id.String()},
		},
		ConditionExpression: aws.String("attribute_exists(PK)"),
	}

	if _, err := r.client.DeleteItem(ctx, input); err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return pkgerrors.ErrPersonNotFound.Clone().WithDetail("node_id", id.String())
		}
		return fmt.Errorf("failed to delete person: %w", err)
	}
	return nil
}

// BulkSave saves multiple people in one batch, used by seeding
func (r *PersonRepository) BulkSave(ctx context.Context, people []*entities.Person) error {
	requests := make([]types.WriteRequest, 0, len(people))
	for _, person := range people {
		item, err := personToItem(person)
		if err != nil {
			return err
		}
		av, err := attributevalue.MarshalMap(item)
		if err != nil {
			return fmt.Errorf("failed to marshal person %s: %w", person.ID().String(), err)
		}
		requests = append(requests, types.WriteRequest{
			PutRequest: &types.PutRequest{Item: av},
		})
	}
	return writeBatches(ctx, r.client, r.tableName, requests)
}

func personToItem(person *entities.Person) (personItem, error) {
	channels := make([]channelItem, 0, len(person.Channels()))
	for _, channel := range person.Channels() {
		channels = append(channels, channelItem{
			Type:   string(channel.Type()),
			Handle: channel.Handle(),
			Public: channel.IsPublic(),
		})
	}

	signals := person.Signals()
	lastActivity := ""
	if signals.HasActivity() {
		lastActivity = signals.LastActivity().Format(time.RFC3339Nano)
	}

	return personItem{
		PK:                   celebrityPK(person.CelebrityID().String()),
		SK:                   memberSKPrefix + person.ID().String(),
		EntityType:           entityTypeMember,
		NodeID:               person.ID().String(),
		CelebrityID:          person.CelebrityID().String(),
		Name:                 person.Name(),
		Tag:                  person.Tag().String(),
		Role:                 person.Profile().Role(),
		Rationale:            person.Profile().Rationale(),
		Channels:             channels,
		RelationshipStrength: signals.RelationshipStrength(),
		MutualConnections:    signals.MutualConnections(),
		InteractionFrequency: signals.InteractionFrequency(),
		LastActivity:         lastActivity,
		CreatedAt:            person.CreatedAt().Format(time.RFC3339Nano),
		UpdatedAt:            person.UpdatedAt().Format(time.RFC3339Nano),
	}, nil
}

func itemToPerson(item personItem) (*entities.Person, error) {
	nodeID, err := valueobjects.NewNodeIDFromString(item.NodeID)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid node ID: %w", err)
	}
	celebrityID, err := valueobjects.NewCelebrityIDFromString(item.CelebrityID)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid celebrity ID: %w", err)
	}
	tag, err := valueobjects.ParseRelationshipTag(item.Tag)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid tag: %w", err)
	}
	profile, err := valueobjects.NewPersonProfile(item.Role, item.Rationale)
	if err != nil {
		return nil, fmt.Errorf("stored member has invalid profile: %w", err)
	}

	channels := make([]valueobjects.ContactChannel, 0, len(item.Channels))
	for _, stored := range item.Channels {
		channel, err := valueobjects.NewContactChannel(
			valueobjects.ParseChannelType(stored.Type),
			stored.Handle,
			stored.Public,
		)
		if err != nil {
			return nil, fmt.Errorf("stored member has invalid channel: %w", err)
		}
		channels = append(channels, channel)
	}

	signals := valueobjects.NewRawSignals(
		item.RelationshipStrength,
		item.MutualConnections,
		item.InteractionFrequency,
		parseStoredTime(item.LastActivity),
	)

	return entities.ReconstructPerson(
		nodeID,
		celebrityID,
		item.Name,
		tag,
		profile,
		channels,
		signals,
		parseStoredTime(item.CreatedAt),
		parseStoredTime(item.UpdatedAt),
	)
}
