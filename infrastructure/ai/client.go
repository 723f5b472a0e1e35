// Package ai implements the MessageGenerator port on the Anthropic
// Messages API. Prompts ask for KEY: value lines rather than JSON so a
// sloppily formatted response still parses, and every call runs
// through a circuit breaker so a provider outage surfaces as a typed
// unavailable error instead of a pile of hung commands.
package ai

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// MessagesClient is the slice of the Anthropic SDK the generator
// calls, small enough to fake in tests
type MessagesClient interface {
	New(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error)
}

// apiMessagesClient wraps the real SDK client
type apiMessagesClient struct {
	messages *anthropic.MessageService
}

// NewMessagesClient builds the real Anthropic-backed messages client
func NewMessagesClient(apiKey string) MessagesClient {
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &apiMessagesClient{messages: &client.Messages}
}

func (c *apiMessagesClient) New(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, error) {
	return c.messages.New(ctx, params)
}
