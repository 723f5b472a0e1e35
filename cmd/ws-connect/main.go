// Package main implements the WebSocket connect/disconnect Lambda.
// Dashboard clients subscribe to one celebrity's circle by passing
// celebrity_id on the connect request; rebuild and score events are
// then pushed to them until they disconnect.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/persistence/dynamodb"
)

var (
	registry *dynamodb.ConnectionRegistry
	logger   *zap.Logger
)

func init() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
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
}

func handler(ctx context.Context, request events.APIGatewayWebsocketProxyRequest) (events.APIGatewayProxyResponse, error) {
	connectionID := request.RequestContext.ConnectionID

	switch request.RequestContext.RouteKey {
	case "$connect":
		celebrityID := request.QueryStringParameters["celebrity_id"]
		if celebrityID == "" {
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusBadRequest,
				Body:       `{"error":"celebrity_id query parameter is required"}`,
			}, nil
		}

		err := registry.Register(ctx, ports.Connection{
			ConnectionID: connectionID,
			Topic:        celebrityID,
			ConnectedAt:  time.Now().UTC(),
		})
		if err != nil {
			logger.Error("Failed to register connection",
				zap.String("connection_id", connectionID),
				zap.String("celebrity_id", celebrityID),
				zap.Error(err),
			)
			return events.APIGatewayProxyResponse{
				StatusCode: http.StatusInternalServerError,
				Body:       `{"error":"internal server error"}`,
			}, nil
		}

		logger.Info("Connection registered",
			zap.String("connection_id", connectionID),
			zap.String("celebrity_id", celebrityID),
		)

	case "$disconnect":
		if err := registry.Deregister(ctx, connectionID); err != nil {
			// The connection is already gone from the client's view;
			// the registry TTL will reap strays
			logger.Warn("Failed to deregister connection",
				zap.String("connection_id", connectionID),
				zap.Error(err),
			)
		}
	}

	return events.APIGatewayProxyResponse{StatusCode: http.StatusOK}, nil
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") == "" {
		log.Fatal("This binary only runs inside AWS Lambda")
	}
	lambda.Start(handler)
}
