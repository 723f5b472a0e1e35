// Package main implements the WebSocket notify Lambda. EventBridge
// rules route circle.rebuilt and celebrity.access_score_updated events
// here; each one is fanned out to the dashboard connections subscribed
// to that celebrity.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/messaging/websocket"
	"accessengine-backend/infrastructure/persistence/dynamodb"
)

var (
	registry *dynamodb.ConnectionRegistry
	notifier *websocket.Notifier
	logger   *zap.Logger
)

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.WebSocketEndpoint == "" {
		log.Fatal("WEBSOCKET_ENDPOINT is required")
	}

	logger, err = zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	registry = dynamodb.NewConnectionRegistry(awsdynamodb.NewFromConfig(awsCfg), cfg.ConnectionsTable, logger)
	notifier = websocket.NewNotifier(websocket.NewManagementClient(awsCfg, cfg.WebSocketEndpoint), registry, logger)
}

// eventDetail carries the one field every routed event shares
type eventDetail struct {
	CelebrityID string `json:"celebrity_id"`
}

func handler(ctx context.Context, event events.CloudWatchEvent) error {
	var detail eventDetail
	if err := json.Unmarshal(event.Detail, &detail); err != nil || detail.CelebrityID == "" {
		logger.Warn("Dropping event without celebrity_id",
			zap.String("detail_type", event.DetailType),
			zap.Error(err),
		)
		return nil
	}

	payload, err := json.Marshal(map[string]interface{}{
		"type":      event.DetailType,
		"data":      json.RawMessage(event.Detail),
		"timestamp": event.Time.Unix(),
	})
	if err != nil {
		return err
	}

	connections, err := registry.ListByTopic(ctx, detail.CelebrityID)
	if err != nil {
		return err
	}

	delivered := 0
	for _, conn := range connections {
		if err := notifier.Notify(ctx, conn.ConnectionID, payload); err != nil {
			logger.Warn("Failed to notify connection",
				zap.String("connection_id", conn.ConnectionID),
				zap.Error(err),
			)
			continue
		}
		delivered++
	}

	logger.Info("Event fanned out",
		zap.String("detail_type", event.DetailType),
		zap.String("celebrity_id", detail.CelebrityID),
		zap.Int("connections", len(connections)),
		zap.Int("delivered", delivered),
	)
	return nil
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		log.Fatal("This binary only runs inside AWS Lambda")
	}
	lambda.Start(handler)
}
