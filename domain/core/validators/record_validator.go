package validators

import (
	"fmt"
	"regexp"
	"strings"

	"accessengine-backend/domain/config"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/pkg/errors"
)

// RecordValidator validates raw circle-member records before they are
// turned into entities. Structural graph problems (bad endpoints, loops)
// are handled during the build itself; this layer rejects records that
// cannot be represented at all.
type RecordValidator struct {
	nameMinLength      int
	nameMaxLength      int
	roleMaxLength      int
	rationaleMaxLength int
	maxChannels        int
	handlePattern      *regexp.Regexp
}

// NewRecordValidator creates a record validator with default rules
func NewRecordValidator() *RecordValidator {
	return NewRecordValidatorWithConfig(config.DefaultDomainConfig())
}

// NewRecordValidatorWithConfig creates a record validator from domain configuration
func NewRecordValidatorWithConfig(cfg *config.DomainConfig) *RecordValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &RecordValidator{
		nameMinLength:      1,
		nameMaxLength:      cfg.MaxNameLength,
		roleMaxLength:      cfg.MaxRoleLength,
		rationaleMaxLength: cfg.MaxRationaleLength,
		maxChannels:        cfg.MaxChannelsPerPerson,
		handlePattern:      regexp.MustCompile(`^\S+$`),
	}
}

// ValidateMemberRecord validates the raw fields of a circle-member record
func (v *RecordValidator) ValidateMemberRecord(name, tag, role, rationale string, channelCount int) error {
	validationErrors := errors.NewValidationErrors()

	if err := v.validateName(name); err != nil {
		if domainErr, ok := err.(*errors.DomainError); ok {
			validationErrors.AddError(domainErr)
		} else {
			validationErrors.Add("name", err.Error())
		}
	}

	if _, err := valueobjects.ParseRelationshipTag(tag); err != nil {
		if domainErr, ok := err.(*errors.DomainError); ok {
			validationErrors.AddError(domainErr)
		} else {
			validationErrors.Add("tag", err.Error())
		}
	}

	if len(role) > v.roleMaxLength {
		validationErrors.Add("role", fmt.Sprintf("role exceeds maximum length of %d characters", v.roleMaxLength))
	}

	if len(rationale) > v.rationaleMaxLength {
		validationErrors.Add("rationale", fmt.Sprintf("rationale exceeds maximum length of %d characters", v.rationaleMaxLength))
	}

	if channelCount > v.maxChannels {
		validationErrors.Add("channels", fmt.Sprintf("cannot have more than %d contact channels", v.maxChannels))
	}

	if validationErrors.HasErrors() {
		return validationErrors
	}

	return nil
}

// validateName validates the member's display name
func (v *RecordValidator) validateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < v.nameMinLength {
		return errors.ErrPersonNameRequired
	}

	if len(name) > v.nameMaxLength {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"NAME_TOO_LONG",
			"Name exceeds maximum length",
		).WithDetail("actual_length", len(name)).WithDetail("max_length", v.nameMaxLength)
	}

	return nil
}

// ValidateHandle validates a contact-channel handle
func (v *RecordValidator) ValidateHandle(handle string) error {
	handle = strings.TrimSpace(handle)

	if handle == "" {
		return errors.ErrChannelHandleRequired
	}

	if !v.handlePattern.MatchString(handle) {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"INVALID_HANDLE_FORMAT",
			"Handle cannot contain whitespace",
		).WithDetail("handle", handle)
	}

	return nil
}

// EdgeValidator validates edge-related domain rules
type EdgeValidator struct{}

// NewEdgeValidator creates a new edge validator
func NewEdgeValidator() *EdgeValidator {
	return &EdgeValidator{}
}

// ValidateEdge validates a raw edge record
func (v *EdgeValidator) ValidateEdge(sourceKey, targetKey string) error {
	if strings.TrimSpace(sourceKey) == "" || strings.TrimSpace(targetKey) == "" {
		return errors.NewDomainError(
			errors.DomainValidationError,
			"EDGE_ENDPOINT_REQUIRED",
			"Edge must name both endpoints",
		).WithDetail("source", sourceKey).WithDetail("target", targetKey)
	}

	if sourceKey == targetKey {
		return errors.ErrSelfReferentialEdge.Clone().
			WithDetail("node_key", sourceKey)
	}

	return nil
}

// ValidateStrength validates the raw relationship strength
func (v *EdgeValidator) ValidateStrength(strength int) error {
	if strength < 0 || strength > 100 {
		return errors.ErrEdgeStrengthOutOfRange.Clone().
			WithDetail("strength", strength)
	}

	return nil
}

// CircleValidator validates circle-level limits
type CircleValidator struct {
	maxNodesPerCircle int
	maxEdgesPerCircle int
}

// NewCircleValidator creates a new circle validator
func NewCircleValidator() *CircleValidator {
	return NewCircleValidatorWithConfig(config.DefaultDomainConfig())
}

// NewCircleValidatorWithConfig creates a circle validator from domain configuration
func NewCircleValidatorWithConfig(cfg *config.DomainConfig) *CircleValidator {
	if cfg == nil {
		cfg = config.DefaultDomainConfig()
	}
	return &CircleValidator{
		maxNodesPerCircle: cfg.MaxNodesPerCircle,
		maxEdgesPerCircle: cfg.MaxEdgesPerCircle,
	}
}

// ValidateNodeCount validates the number of members in a circle
func (v *CircleValidator) ValidateNodeCount(count int) error {
	if count > v.maxNodesPerCircle {
		return errors.NewDomainError(
			errors.DomainBusinessRuleError,
			"CIRCLE_NODE_LIMIT_EXCEEDED",
			"Maximum number of circle members exceeded",
		).WithDetail("current", count).WithDetail("limit", v.maxNodesPerCircle)
	}

	return nil
}

// ValidateEdgeCount validates the number of edges in a circle
func (v *CircleValidator) ValidateEdgeCount(count int) error {
	if count > v.maxEdgesPerCircle {
		return errors.NewDomainError(
			errors.DomainBusinessRuleError,
			"CIRCLE_EDGE_LIMIT_EXCEEDED",
			"Maximum number of circle edges exceeded",
		).WithDetail("current", count).WithDetail("limit", v.maxEdgesPerCircle)
	}

	return nil
}
