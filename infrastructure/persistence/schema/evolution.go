// Package schema provisions and evolves the DynamoDB tables. The main
// table is single-table: celebrities, members, edges, outreach drafts,
// version stamps, locks, and the event outbox all live in it, with one
// GSI for roster and event-type queries. Connections get their own
// small table because API Gateway deletes rows on disconnect at a very
// different rate.
package schema

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// StepFunc applies one idempotent schema step
type StepFunc func(ctx context.Context) error

// Step is one unit of schema evolution. Steps are idempotent: running
// against an already-provisioned account is a no-op.
type Step struct {
	Version     int
	Description string
	Apply       StepFunc
}

// AppliedStep records one executed step
type AppliedStep struct {
	Version     int       `json:"version"`
	Description string    `json:"description"`
	AppliedAt   time.Time `json:"applied_at"`
}

// Evolution runs schema steps in version order
type Evolution struct {
	steps   []Step
	history []AppliedStep
	logger  *zap.Logger
}

// NewEvolution creates an empty schema evolution runner
func NewEvolution(logger *zap.Logger) *Evolution {
	return &Evolution{
		steps:   []Step{},
		history: []AppliedStep{},
		logger:  logger,
	}
}

// Register adds a step. Versions must be unique.
func (e *Evolution) Register(step Step) error {
	for _, existing := range e.steps {
		if existing.Version == step.Version {
			return fmt.Errorf("schema step %d already registered", step.Version)
		}
	}
	e.steps = append(e.steps, step)
	return nil
}

// Run applies all registered steps in version order
func (e *Evolution) Run(ctx context.Context) error {
	ordered := make([]Step, len(e.steps))
	copy(ordered, e.steps)
	for i := 0; i < len(ordered); i++ {
		for j := i + 1; j < len(ordered); j++ {
			if ordered[j].Version < ordered[i].Version {
				ordered[i], ordered[j] = ordered[j], ordered[i]
			}
		}
	}

	for _, step := range ordered {
		e.logger.Info("Applying schema step",
			zap.Int("version", step.Version),
			zap.String("description", step.Description))
		if err := step.Apply(ctx); err != nil {
			return fmt.Errorf("schema step %d (%s) failed: %w", step.Version, step.Description, err)
		}
		e.history = append(e.history, AppliedStep{
			Version:     step.Version,
			Description: step.Description,
			AppliedAt:   time.Now(),
		})
	}
	return nil
}

// History returns the steps applied by this run
func (e *Evolution) History() []AppliedStep {
	return e.history
}

// Provisioner ensures the engine's tables exist
type Provisioner struct {
	client           *dynamodb.Client
	tableName        string
	indexName        string
	connectionsTable string
	logger           *zap.Logger
}

// NewProvisioner creates a table provisioner
func NewProvisioner(client *dynamodb.Client, tableName, indexName, connectionsTable string, logger *zap.Logger) *Provisioner {
	return &Provisioner{
		client:           client,
		tableName:        tableName,
		indexName:        indexName,
		connectionsTable: connectionsTable,
		logger:           logger,
	}
}

// EnsureTables creates any missing tables and waits until they are active
func (p *Provisioner) EnsureTables(ctx context.Context) error {
	evolution := NewEvolution(p.logger)

	steps := []Step{
		{Version: 1, Description: "create main table", Apply: p.ensureMainTable},
		{Version: 2, Description: "enable TTL on main table", Apply: p.ensureMainTableTTL},
		{Version: 3, Description: "create connections table", Apply: p.ensureConnectionsTable},
	}
	for _, step := range steps {
		if err := evolution.Register(step); err != nil {
			return err
		}
	}
	return evolution.Run(ctx)
}

// ensureMainTable creates the single table with its roster/event GSI
func (p *Provisioner) ensureMainTable(ctx context.Context) error {
	exists, err := p.tableExists(ctx, p.tableName)
	if err != nil {
		return err
	}
	if exists {
		p.logger.Debug("Main table already exists", zap.String("table", p.tableName))
		return nil
	}

	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(p.tableName),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("SK"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("GSI1PK"), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String("GSI1SK"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: types.KeyTypeHash},
			{AttributeName: aws.String("SK"), KeyType: types.KeyTypeRange},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(p.indexName),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String("GSI1PK"), KeyType: types.KeyTypeHash},
					{AttributeName: aws.String("GSI1SK"), KeyType: types.KeyTypeRange},
				},
				Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
			},
		},
	}

	if _, err := p.client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("failed to create table %s: %w", p.tableName, err)
	}
	return p.waitActive(ctx, p.tableName)
}

// ensureMainTableTTL turns on expiry for locks and old outbox events
func (p *Provisioner) ensureMainTableTTL(ctx context.Context) error {
	describe, err := p.client.DescribeTimeToLive(ctx, &dynamodb.DescribeTimeToLiveInput{
		TableName: aws.String(p.tableName),
	})
	if err != nil {
		return fmt.Errorf("failed to describe TTL for %s: %w", p.tableName, err)
	}
	if describe.TimeToLiveDescription != nil &&
		describe.TimeToLiveDescription.TimeToLiveStatus == types.TimeToLiveStatusEnabled {
		return nil
	}

	_, err = p.client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(p.tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("TTL"),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable TTL on %s: %w", p.tableName, err)
	}
	return nil
}

// ensureConnectionsTable creates the WebSocket connections table
func (p *Provisioner) ensureConnectionsTable(ctx context.Context) error {
	if p.connectionsTable == "" {
		return nil
	}
	exists, err := p.tableExists(ctx, p.connectionsTable)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	input := &dynamodb.CreateTableInput{
		TableName:   aws.String(p.connectionsTable),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String("ConnectionID"), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String("ConnectionID"), KeyType: types.KeyTypeHash},
		},
	}

	if _, err := p.client.CreateTable(ctx, input); err != nil {
		return fmt.Errorf("failed to create table %s: %w", p.connectionsTable, err)
	}
	if err := p.waitActive(ctx, p.connectionsTable); err != nil {
		return err
	}

	_, err = p.client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(p.connectionsTable),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			AttributeName: aws.String("TTL"),
			Enabled:       aws.Bool(true),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to enable TTL on %s: %w", p.connectionsTable, err)
	}
	return nil
}

func (p *Provisioner) tableExists(ctx context.Context, tableName string) (bool, error) {
	_, err := p.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to describe table %s: %w", tableName, err)
	}
	return true, nil
}

func (p *Provisioner) waitActive(ctx context.Context, tableName string) error {
	waiter := dynamodb.NewTableExistsWaiter(p.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	}, 2*time.Minute); err != nil {
		return fmt.Errorf("table %s did not become active: %w", tableName, err)
	}
	return nil
}
