// Package seed carries the curated celebrity dataset and loads it into a
// store. A handful of featured circles are hand-modeled from public-record
// relationships; the rest of the roster gets a circle generated from
// per-category role templates. All identifiers are name-derived UUIDs, so
// re-seeding upserts the same rows instead of duplicating them. Synthetic
// contact handles use reserved .example domains.
package seed

import (
	"hash/fnv"

	"accessengine-backend/domain/core/valueobjects"
)

// CircleSeed is one celebrity and their modeled circle
type CircleSeed struct {
	Slug     string
	Name     string
	Category valueobjects.Category
	Bio      string
	Handle   string
	Manager  string
	Members  []MemberSeed
	// Edges carries member-to-member ties beyond the implied anchor edge
	// each member already has
	Edges []EdgeSeed
}

// MemberSeed is one circle member. Strength doubles as the anchor edge
// weight and the raw relationship-strength signal, the same way a manual
// member add submits it once.
type MemberSeed struct {
	Slug            string
	Name            string
	Tag             valueobjects.RelationshipTag
	Role            string
	Rationale       string
	Channels        []ChannelSeed
	Strength        int
	Mutuals         int
	Frequency       int
	DaysSinceActive int
	// ViaSlug anchors the member to another member instead of the
	// celebrity root, placing them beyond the first hop
	ViaSlug string
}

// ChannelSeed is one contact channel of a member
type ChannelSeed struct {
	Type   valueobjects.ChannelType
	Handle string
	Public bool
}

// EdgeSeed ties two members of the same circle together by slug
type EdgeSeed struct {
	From     string
	To       string
	Strength int
}

// Dataset returns every seeded circle: the featured hand-modeled ones
// followed by one generated circle per roster entry
func Dataset() []CircleSeed {
	circles := FeaturedCircles()
	for _, entry := range roster() {
		circles = append(circles, generatedCircle(entry))
	}
	return circles
}

// CelebrityID derives the stable celebrity ID for a seed slug
func CelebrityID(slug string) valueobjects.CelebrityID {
	return valueobjects.NewSeededCelebrityID(slug)
}

// MemberID derives the stable node ID for a member of a seeded circle
func MemberID(circleSlug, memberSlug string) valueobjects.NodeID {
	return valueobjects.NewSeededNodeID(circleSlug + ":" + memberSlug)
}

// slugSeed hashes a slug into the deterministic source that drives
// per-circle template variation
func slugSeed(slug string) int64 {
	h := fnv.New64a()
	h.Write([]byte(slug))
	return int64(h.Sum64())
}
