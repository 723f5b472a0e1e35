// Package websocket pushes live updates to dashboard clients connected
// through the API Gateway WebSocket API.
package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigatewaymanagementapi/types"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
)

// Notifier implements ports.LiveNotifier on the API Gateway management
// API. A gone connection is deregistered and swallowed; a closed
// dashboard tab is the normal case, not a delivery failure.
type Notifier struct {
	client   *apigatewaymanagementapi.Client
	registry ports.ConnectionRegistry
	logger   *zap.Logger
}

// NewNotifier creates a notifier posting through the given management
// API endpoint
func NewNotifier(client *apigatewaymanagementapi.Client, registry ports.ConnectionRegistry, logger *zap.Logger) *Notifier {
	return &Notifier{
		client:   client,
		registry: registry,
		logger:   logger,
	}
}

// NewManagementClient builds the API Gateway management client for a
// WebSocket API endpoint
func NewManagementClient(awsCfg aws.Config, endpoint string) *apigatewaymanagementapi.Client {
	return apigatewaymanagementapi.NewFromConfig(awsCfg, func(o *apigatewaymanagementapi.Options) {
		o.BaseEndpoint = aws.String(endpoint)
	})
}

// Notify sends a payload to one connection
func (n *Notifier) Notify(ctx context.Context, connectionID string, payload []byte) error {
	_, err := n.client.PostToConnection(ctx, &apigatewaymanagementapi.PostToConnectionInput{
		ConnectionId: aws.String(connectionID),
		Data:         payload,
	})
	if err == nil {
		return nil
	}

	var gone *apigwtypes.GoneException
	if errors.As(err, &gone) {
		n.logger.Info("Removing stale connection",
			zap.String("connectionId", connectionID))
		if err := n.registry.Deregister(ctx, connectionID); err != nil {
			n.logger.Warn("Failed to deregister stale connection",
				zap.String("connectionId", connectionID),
				zap.Error(err))
		}
		return nil
	}
	return fmt.Errorf("failed to post to connection %s: %w", connectionID, err)
}
