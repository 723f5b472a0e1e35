package ports

import (
	"context"

	"accessengine-backend/domain/core/valueobjects"
)

// LeverageRequest carries the inputs for a leverage pass: why a meeting
// benefits the celebrity, built from their profile and the querent's
// background.
type LeverageRequest struct {
	CelebrityName string
	CelebrityBio  string
	RecentNews    []string
	Background    string
	Ask           string
}

// LeverageSummary is the parsed leverage package
type LeverageSummary struct {
	ValueProp     string `json:"value_prop"`
	EgoHook       string `json:"ego_hook"`
	CuriosityHook string `json:"curiosity_hook"`
	SubjectLine   string `json:"subject_line"`
}

// MessageRequest carries the inputs for one hop's outreach message
type MessageRequest struct {
	SenderName       string
	SenderBackground string
	TargetName       string
	TargetRole       string
	Relationship     string
	CelebrityName    string
	ValueProp        string
	ForwardReason    string
	Hop              valueobjects.HopLabel
}

// DraftMessage is the parsed outreach draft for one hop
type DraftMessage struct {
	Message      string                `json:"message"`
	SubjectLine  string                `json:"subject_line"`
	PlatformNote string                `json:"platform_note"`
	ToneNote     string                `json:"tone_note"`
	WordCount    int                   `json:"word_count"`
	Hop          valueobjects.HopLabel `json:"hop"`
	TargetName   string                `json:"target_person"`
}

// EntryPoint is one ranked circle member fed into the strategy brief
type EntryPoint struct {
	Name      string
	Role      string
	WarmScore int
}

// StrategyRequest carries the inputs for the access strategy brief
type StrategyRequest struct {
	CelebrityName string
	CelebrityBio  string
	AccessScore   int
	EntryPoints   []EntryPoint
	Background    string
}

// MessageGenerator defines the interface for AI-backed draft generation.
// Implementations surface provider outages as unavailable-typed errors so
// callers can degrade without corrupting stored state.
type MessageGenerator interface {
	// GenerateLeverage produces the leverage package for a celebrity
	GenerateLeverage(ctx context.Context, req LeverageRequest) (*LeverageSummary, error)

	// DraftOutreachMessage produces a personalized message for one hop
	DraftOutreachMessage(ctx context.Context, req MessageRequest) (*DraftMessage, error)

	// GenerateStrategy produces the three-paragraph access brief
	GenerateStrategy(ctx context.Context, req StrategyRequest) (string, error)
}
