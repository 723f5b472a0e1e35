package valueobjects

import (
	"strings"

	pkgerrors "accessengine-backend/pkg/errors"
)

// RelationshipTag classifies how a person relates to the celebrity. The set
// is closed; unrecognized tags are rejected at the boundary rather than
// defaulting silently.
type RelationshipTag string

const (
	TagManager         RelationshipTag = "manager"
	TagAgent           RelationshipTag = "agent"
	TagPublicist       RelationshipTag = "publicist"
	TagFamily          RelationshipTag = "family"
	TagCloseFriend     RelationshipTag = "close_friend"
	TagFriend          RelationshipTag = "friend"
	TagBusinessPartner RelationshipTag = "business_partner"
	TagCollaborator    RelationshipTag = "collaborator"
	TagColleague       RelationshipTag = "colleague"
	TagInvestor        RelationshipTag = "investor"
	TagMedia           RelationshipTag = "media"
	TagAcquaintance    RelationshipTag = "acquaintance"
	TagOther           RelationshipTag = "other"
)

// tagWeights maps each tag to its base warmth multiplier. Professional
// gatekeepers rank highest: a manager who answers email beats a famous
// friend who doesn't.
var tagWeights = map[RelationshipTag]float64{
	TagManager:         0.95,
	TagAgent:           0.90,
	TagPublicist:       0.85,
	TagFamily:          0.90,
	TagCloseFriend:     0.85,
	TagFriend:          0.70,
	TagBusinessPartner: 0.80,
	TagCollaborator:    0.75,
	TagColleague:       0.60,
	TagInvestor:        0.70,
	TagMedia:           0.50,
	TagAcquaintance:    0.30,
	TagOther:           0.40,
}

// AllRelationshipTags lists every supported tag
func AllRelationshipTags() []RelationshipTag {
	return []RelationshipTag{
		TagManager, TagAgent, TagPublicist, TagFamily, TagCloseFriend,
		TagFriend, TagBusinessPartner, TagCollaborator, TagColleague,
		TagInvestor, TagMedia, TagAcquaintance, TagOther,
	}
}

// ParseRelationshipTag normalizes and validates a tag string
func ParseRelationshipTag(s string) (RelationshipTag, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	tag := RelationshipTag(normalized)
	if !tag.IsValid() {
		return "", pkgerrors.ErrUnknownRelationshipTag.Clone().WithDetail("tag", s)
	}
	return tag, nil
}

// IsValid reports whether the tag is one of the supported values
func (t RelationshipTag) IsValid() bool {
	_, ok := tagWeights[t]
	return ok
}

// Weight returns the tag's base warmth multiplier in [0, 1]
func (t RelationshipTag) Weight() float64 {
	if w, ok := tagWeights[t]; ok {
		return w
	}
	return tagWeights[TagOther]
}

// String returns the tag as a string
func (t RelationshipTag) String() string {
	return string(t)
}
