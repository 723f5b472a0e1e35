package valueobjects

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"accessengine-backend/domain/config"
	pkgerrors "accessengine-backend/pkg/errors"
)

// PersonProfile is a value object for the descriptive text attached to a
// person: what they do and why they are a warm route to the celebrity.
type PersonProfile struct {
	role      string
	rationale string
}

// NewPersonProfile creates a profile with validation using default configuration
func NewPersonProfile(role, rationale string) (PersonProfile, error) {
	return NewPersonProfileWithConfig(role, rationale, config.DefaultDomainConfig())
}

// NewPersonProfileWithConfig creates a profile with validation and configuration
func NewPersonProfileWithConfig(role, rationale string, cfg *config.DomainConfig) (PersonProfile, error) {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}

	role = strings.TrimSpace(role)
	rationale = strings.TrimSpace(rationale)

	if role == "" {
		return PersonProfile{}, pkgerrors.NewValidationError("role cannot be empty")
	}

	if utf8.RuneCountInString(role) > cfg.MaxRoleLength {
		return PersonProfile{}, fmt.Errorf("role exceeds maximum length of %d characters", cfg.MaxRoleLength)
	}

	if utf8.RuneCountInString(rationale) > cfg.MaxRationaleLength {
		return PersonProfile{}, fmt.Errorf("rationale exceeds maximum length of %d characters", cfg.MaxRationaleLength)
	}

	return PersonProfile{
		role:      role,
		rationale: rationale,
	}, nil
}

// Role returns what the person does
func (p PersonProfile) Role() string {
	return p.role
}

// Rationale returns why the person is considered a warm route
func (p PersonProfile) Rationale() string {
	return p.rationale
}

// IsEmpty checks if the profile is empty
func (p PersonProfile) IsEmpty() bool {
	return p.role == "" && p.rationale == ""
}

// Equals checks if two profiles are equal
func (p PersonProfile) Equals(other PersonProfile) bool {
	return p.role == other.role && p.rationale == other.rationale
}

// WordCount returns the approximate word count
func (p PersonProfile) WordCount() int {
	combined := p.role + " " + p.rationale
	return len(strings.Fields(combined))
}

// Summary returns a truncated one-line summary, used in prompts and tooltips
func (p PersonProfile) Summary(maxLength int) string {
	if maxLength <= 0 {
		return ""
	}

	combined := p.role
	if p.rationale != "" {
		combined += ": " + p.rationale
	}

	if utf8.RuneCountInString(combined) <= maxLength {
		return combined
	}

	runes := []rune(combined)
	return string(runes[:maxLength-3]) + "..."
}
