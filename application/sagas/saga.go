package sagas

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SagaStep is one unit of work in a saga. Execute receives the previous
// step's output; Compensate, when set, undoes the step after a later one
// fails.
type SagaStep struct {
	Name       string
	Execute    func(ctx context.Context, data interface{}) (interface{}, error)
	Compensate func(ctx context.Context, data interface{}) error
	MaxRetries int
	RetryDelay time.Duration
}

// SagaState tracks where a saga execution stands
type SagaState string

const (
	SagaStatePending      SagaState = "PENDING"
	SagaStateRunning      SagaState = "RUNNING"
	SagaStateCompleted    SagaState = "COMPLETED"
	SagaStateFailed       SagaState = "FAILED"
	SagaStateCompensating SagaState = "COMPENSATING"
	SagaStateCompensated  SagaState = "COMPENSATED"
)

// Saga runs an ordered list of steps, compensating completed ones in
// reverse when a later step fails. A Saga instance is single-use.
type Saga struct {
	id            string
	name          string
	steps         []SagaStep
	compensations []func(ctx context.Context) error
	state         SagaState
	currentStep   int
	logger        *zap.Logger
}

// NewSaga creates a new saga instance
func NewSaga(name string, logger *zap.Logger) *Saga {
	return &Saga{
		id:     uuid.New().String(),
		name:   name,
		steps:  make([]SagaStep, 0),
		state:  SagaStatePending,
		logger: logger,
	}
}

// AddStep appends a step to the saga
func (s *Saga) AddStep(step SagaStep) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Execute runs the saga from the first step. On failure the completed
// steps are compensated in reverse order and the step's error is
// returned.
func (s *Saga) Execute(ctx context.Context, initialData interface{}) (interface{}, error) {
	s.state = SagaStateRunning
	s.logger.Info("Starting saga",
		zap.String("sagaID", s.id),
		zap.String("saga", s.name),
		zap.Int("steps", len(s.steps)),
	)

	var data interface{} = initialData

	for i, step := range s.steps {
		s.currentStep = i

		result, err := s.executeStepWithRetry(ctx, step, data)
		if err != nil {
			s.state = SagaStateFailed
			s.logger.Error("Saga step failed",
				zap.String("sagaID", s.id),
				zap.String("step", step.Name),
				zap.Error(err),
			)

			s.compensate(ctx)
			s.state = SagaStateCompensated
			return nil, fmt.Errorf("saga %s failed at step %s: %w", s.name, step.Name, err)
		}

		data = result
		if step.Compensate != nil {
			stepData := data
			compensate := step.Compensate
			s.compensations = append(s.compensations, func(ctx context.Context) error {
				return compensate(ctx, stepData)
			})
		}
	}

	s.state = SagaStateCompleted
	s.logger.Info("Saga completed",
		zap.String("sagaID", s.id),
		zap.String("saga", s.name),
		zap.Int("steps", len(s.steps)),
	)

	return data, nil
}

func (s *Saga) executeStepWithRetry(ctx context.Context, step SagaStep, data interface{}) (interface{}, error) {
	attempts := step.MaxRetries
	if attempts == 0 {
		attempts = 1
	}
	retryDelay := step.RetryDelay
	if retryDelay == 0 {
		retryDelay = time.Second
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(retryDelay):
			}
			s.logger.Debug("Retrying saga step",
				zap.String("sagaID", s.id),
				zap.String("step", step.Name),
				zap.Int("attempt", attempt+1),
			)
		}

		result, err := step.Execute(ctx, data)
		if err == nil {
			return result, nil
		}

		lastErr = err
		s.logger.Warn("Saga step attempt failed",
			zap.String("sagaID", s.id),
			zap.String("step", step.Name),
			zap.Int("attempt", attempt+1),
			zap.Error(err),
		)
	}

	return nil, fmt.Errorf("step %s failed after %d attempts: %w", step.Name, attempts, lastErr)
}

// compensate unwinds completed steps newest-first, continuing past
// individual compensation failures
func (s *Saga) compensate(ctx context.Context) {
	if len(s.compensations) == 0 {
		return
	}

	s.state = SagaStateCompensating
	s.logger.Info("Compensating saga",
		zap.String("sagaID", s.id),
		zap.String("saga", s.name),
		zap.Int("compensations", len(s.compensations)),
	)

	for i := len(s.compensations) - 1; i >= 0; i-- {
		if err := s.compensations[i](ctx); err != nil {
			s.logger.Error("Saga compensation failed",
				zap.String("sagaID", s.id),
				zap.Int("step", i+1),
				zap.Error(err),
			)
		}
	}
}

// State returns the saga's current state
func (s *Saga) State() SagaState {
	return s.state
}

// ID returns the saga's unique identifier
func (s *Saga) ID() string {
	return s.id
}

// CurrentStep returns the index of the step being executed
func (s *Saga) CurrentStep() int {
	return s.currentStep
}
