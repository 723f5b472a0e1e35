package ai

import (
	"context"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	pkgerrors "accessengine-backend/pkg/errors"
	"accessengine-backend/pkg/observability"
)

const (
	leverageMaxTokens = 500
	messageMaxTokens  = 400
	strategyMaxTokens = 400
)

// Generator implements ports.MessageGenerator on the Anthropic API
type Generator struct {
	client  MessagesClient
	model   string
	breaker *gobreaker.CircuitBreaker
	tracer  *observability.Tracer
	logger  *zap.Logger
}

// NewGenerator creates an Anthropic-backed generator. The model comes
// from configuration so deployments can pin or upgrade it without a
// code change.
func NewGenerator(client MessagesClient, model string, tracer *observability.Tracer, logger *zap.Logger) *Generator {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "anthropic",
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Generation circuit breaker changed state",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
	return &Generator{
		client:  client,
		model:   model,
		breaker: breaker,
		tracer:  tracer,
		logger:  logger,
	}
}

// GenerateLeverage produces the leverage package for a celebrity
func (g *Generator) GenerateLeverage(ctx context.Context, req ports.LeverageRequest) (*ports.LeverageSummary, error) {
	text, err := g.complete(ctx, "leverage", leveragePrompt(req), leverageMaxTokens)
	if err != nil {
		return nil, err
	}

	fields := parseKeyValues(text)
	return &ports.LeverageSummary{
		ValueProp:     fields["value_prop"],
		EgoHook:       fields["ego_hook"],
		CuriosityHook: fields["curiosity_hook"],
		SubjectLine:   fields["subject_line"],
	}, nil
}

// DraftOutreachMessage produces a personalized message for one hop
func (g *Generator) DraftOutreachMessage(ctx context.Context, req ports.MessageRequest) (*ports.DraftMessage, error) {
	text, err := g.complete(ctx, "message", messagePrompt(req), messageMaxTokens)
	if err != nil {
		return nil, err
	}

	fields := parseKeyValues(text)
	message := fields["message"]

	platform := fields["platform_note"]
	if platform == "" {
		platform = "Twitter DM or Email"
	}
	tone := fields["tone_note"]
	if tone == "" {
		tone = "warm"
	}

	return &ports.DraftMessage{
		Message:      message,
		SubjectLine:  fields["subject_line"],
		PlatformNote: platform,
		ToneNote:     tone,
		WordCount:    len(strings.Fields(message)),
		Hop:          req.Hop,
		TargetName:   req.TargetName,
	}, nil
}

// GenerateStrategy produces the three-paragraph access brief
func (g *Generator) GenerateStrategy(ctx context.Context, req ports.StrategyRequest) (string, error) {
	text, err := g.complete(ctx, "strategy", strategyPrompt(req), strategyMaxTokens)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// complete sends one prompt through the breaker and returns the
// response text. Any provider failure, including an open breaker,
// comes back as a generation-unavailable error.
func (g *Generator) complete(ctx context.Context, kind, prompt string, maxTokens int64) (string, error) {
	var text string
	err := g.tracer.TraceGeneration(ctx, kind, func(ctx context.Context) error {
		result, err := g.breaker.Execute(func() (interface{}, error) {
			message, err := g.client.New(ctx, anthropic.MessageNewParams{
				Model:     anthropic.Model(g.model),
				MaxTokens: maxTokens,
				Messages: []anthropic.MessageParam{
					anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
				},
			})
			if err != nil {
				return nil, err
			}

			var out string
			for _, block := range message.Content {
				if block.Type == "text" {
					out += block.Text
				}
			}
			return out, nil
		})
		if err != nil {
			return err
		}
		text = result.(string)
		return nil
	})
	if err != nil {
		g.logger.Error("Generation request failed",
			zap.String("model", g.model),
			zap.String("kind", kind),
			zap.Error(err))
		return "", pkgerrors.ErrGenerationUnavailable.Clone().WithCause(err)
	}
	return text, nil
}
