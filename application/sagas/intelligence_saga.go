package sagas

import (
	"context"
	"time"

	"go.uber.org/zap"

	"accessengine-backend/application/ports"
	"accessengine-backend/application/queries"
	"accessengine-backend/domain/core/entities"
	"accessengine-backend/domain/core/valueobjects"
)

// maxHopMessages bounds how many chain messages one package drafts
const maxHopMessages = 2

// IntelligenceRequest describes the querent asking for a package
type IntelligenceRequest struct {
	SenderName       string
	SenderBackground string
	Ask              string
}

// IntelligencePackage is the AI briefing for reaching one celebrity:
// the leverage angle, a message per chain hop, and the overall strategy
type IntelligencePackage struct {
	Leverage         *ports.LeverageSummary `json:"leverage"`
	OutreachMessages []*ports.DraftMessage  `json:"outreach_messages"`
	Strategy         string                 `json:"strategy"`
	OutreachIDs      []string               `json:"outreach_ids,omitempty"`
}

// packageState threads accumulated results through the saga steps
type packageState struct {
	leverage *ports.LeverageSummary
	messages []*ports.DraftMessage
	stored   []*entities.Outreach
	strategy string
}

// IntelligenceSaga assembles the full intelligence package as a
// compensated saga: generation steps that fail roll back any outreach
// drafts already stored, so a half-built package never leaves records
// behind.
type IntelligenceSaga struct {
	generator    ports.MessageGenerator
	outreachRepo ports.OutreachRepository
	publisher    ports.EventPublisher
	logger       *zap.Logger
}

// NewIntelligenceSaga creates a new intelligence saga service
func NewIntelligenceSaga(
	generator ports.MessageGenerator,
	outreachRepo ports.OutreachRepository,
	publisher ports.EventPublisher,
	logger *zap.Logger,
) *IntelligenceSaga {
	return &IntelligenceSaga{
		generator:    generator,
		outreachRepo: outreachRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// Assemble generates the intelligence package for a celebrity given the
// querent's ranked paths. Chain messages for contactable members are
// persisted as outreach drafts; compensation removes them if a later
// step fails.
func (s *IntelligenceSaga) Assemble(
	ctx context.Context,
	celebrity *entities.Celebrity,
	snapshot *ports.Snapshot,
	paths *queries.BestPathResult,
	req IntelligenceRequest,
) (*IntelligencePackage, error) {
	saga := NewSaga("intelligence_package", s.logger)

	saga.AddStep(SagaStep{
		Name: "generate_leverage",
		Execute: func(ctx context.Context, data interface{}) (interface{}, error) {
			state := data.(*packageState)
			leverage, err := s.generator.GenerateLeverage(ctx, ports.LeverageRequest{
				CelebrityName: celebrity.Name(),
				CelebrityBio:  celebrity.Bio(),
				Background:    req.SenderBackground,
				Ask:           req.Ask,
			})
			if err != nil {
				return nil, err
			}
			state.leverage = leverage
			return state, nil
		},
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
	})

	saga.AddStep(SagaStep{
		Name: "draft_hop_messages",
		Execute: func(ctx context.Context, data interface{}) (interface{}, error) {
			state := data.(*packageState)
			if err := s.draftHopMessages(ctx, state, celebrity, snapshot, paths, req); err != nil {
				return nil, err
			}
			return state, nil
		},
		Compensate: func(ctx context.Context, data interface{}) error {
			state := data.(*packageState)
			return s.deleteStoredDrafts(ctx, state)
		},
	})

	saga.AddStep(SagaStep{
		Name: "generate_strategy",
		Execute: func(ctx context.Context, data interface{}) (interface{}, error) {
			state := data.(*packageState)
			strategy, err := s.generator.GenerateStrategy(ctx, ports.StrategyRequest{
				CelebrityName: celebrity.Name(),
				CelebrityBio:  celebrity.Bio(),
				AccessScore:   s.accessScore(celebrity, snapshot),
				EntryPoints:   entryPoints(snapshot, paths),
				Background:    req.SenderBackground,
			})
			if err != nil {
				return nil, err
			}
			state.strategy = strategy
			return state, nil
		},
		MaxRetries: 2,
		RetryDelay: 500 * time.Millisecond,
	})

	result, err := saga.Execute(ctx, &packageState{})
	if err != nil {
		return nil, err
	}
	state := result.(*packageState)

	s.publishDraftEvents(ctx, state)

	pkg := &IntelligencePackage{
		Leverage:         state.leverage,
		OutreachMessages: state.messages,
		Strategy:         state.strategy,
	}
	for _, outreach := range state.stored {
		pkg.OutreachIDs = append(pkg.OutreachIDs, outreach.ID().String())
	}
	return pkg, nil
}

// draftHopMessages generates a message per chain position on the best
// path, storing a draft for every member who can actually be written to
func (s *IntelligenceSaga) draftHopMessages(
	ctx context.Context,
	state *packageState,
	celebrity *entities.Celebrity,
	snapshot *ports.Snapshot,
	paths *queries.BestPathResult,
	req IntelligenceRequest,
) error {
	if !paths.Viable || len(paths.Paths) == 0 {
		return nil
	}

	steps := paths.Paths[0].Steps
	if len(steps) > maxHopMessages {
		steps = steps[:maxHopMessages]
	}

	for i, step := range steps {
		hopLabel := valueobjects.HopLabelForDistance(i + 1)

		draft, err := s.generator.DraftOutreachMessage(ctx, ports.MessageRequest{
			SenderName:       req.SenderName,
			SenderBackground: req.SenderBackground,
			TargetName:       step.Name,
			TargetRole:       step.Role,
			Relationship:     step.Tag,
			CelebrityName:    celebrity.Name(),
			ValueProp:        state.leverage.ValueProp,
			ForwardReason:    step.WhyWarm,
			Hop:              hopLabel,
		})
		if err != nil {
			return err
		}
		state.messages = append(state.messages, draft)

		outreach, ok := s.storeDraft(ctx, snapshot, celebrity, step, draft, state.leverage.ValueProp, hopLabel)
		if ok {
			state.stored = append(state.stored, outreach)
		}
	}

	return nil
}

// storeDraft persists one chain message as an outreach draft. Members
// without a contact channel get a message in the package but no stored
// record.
func (s *IntelligenceSaga) storeDraft(
	ctx context.Context,
	snapshot *ports.Snapshot,
	celebrity *entities.Celebrity,
	step queries.PathStep,
	draft *ports.DraftMessage,
	valueProp string,
	hopLabel valueobjects.HopLabel,
) (*entities.Outreach, bool) {
	nodeID, err := valueobjects.NewNodeIDFromString(step.NodeID)
	if err != nil {
		return nil, false
	}
	person, found := snapshot.Graph.Person(nodeID)
	if !found {
		return nil, false
	}
	channel, ok := person.PreferredChannel()
	if !ok {
		return nil, false
	}

	outreach, err := entities.NewOutreach(
		celebrity.ID(),
		nodeID,
		person.Name(),
		channel,
		draft.SubjectLine,
		draft.Message,
		valueProp,
		hopLabel,
	)
	if err != nil {
		s.logger.Warn("Failed to build outreach draft",
			zap.String("nodeID", step.NodeID),
			zap.Error(err),
		)
		return nil, false
	}

	if err := s.outreachRepo.Save(ctx, outreach); err != nil {
		s.logger.Warn("Failed to store outreach draft",
			zap.String("nodeID", step.NodeID),
			zap.Error(err),
		)
		return nil, false
	}

	return outreach, true
}

func (s *IntelligenceSaga) deleteStoredDrafts(ctx context.Context, state *packageState) error {
	for _, outreach := range state.stored {
		if err := s.outreachRepo.Delete(ctx, outreach.ID()); err != nil {
			s.logger.Error("Failed to delete outreach draft during compensation",
				zap.String("outreachID", outreach.ID().String()),
				zap.Error(err),
			)
		}
	}
	state.stored = nil
	return nil
}

// publishDraftEvents publishes the drafted events only after the whole
// saga succeeds, so compensated drafts never announce themselves
func (s *IntelligenceSaga) publishDraftEvents(ctx context.Context, state *packageState) {
	for _, outreach := range state.stored {
		if err := s.publisher.PublishBatch(ctx, outreach.GetUncommittedEvents()); err != nil {
			s.logger.Warn("Failed to publish outreach events",
				zap.String("outreachID", outreach.ID().String()),
				zap.Error(err),
			)
		}
		outreach.MarkEventsAsCommitted()
	}
}

func (s *IntelligenceSaga) accessScore(celebrity *entities.Celebrity, snapshot *ports.Snapshot) int {
	if snapshot.Version != nil {
		return snapshot.Version.AccessScore
	}
	return celebrity.AccessScore()
}

// entryPoints lists the ranked entry candidates for the strategy prompt
func entryPoints(snapshot *ports.Snapshot, paths *queries.BestPathResult) []ports.EntryPoint {
	points := make([]ports.EntryPoint, 0, len(paths.Paths))
	for _, ranked := range paths.Paths {
		if len(ranked.Steps) == 0 {
			continue
		}
		entry := ranked.Steps[0]
		points = append(points, ports.EntryPoint{
			Name:      entry.Name,
			Role:      entry.Role,
			WarmScore: entry.WarmScore,
		})
	}
	return points
}
