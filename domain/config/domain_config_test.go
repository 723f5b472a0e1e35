package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultDomainConfig_IsValid(t *testing.T) {
	assert.NoError(t, DefaultDomainConfig().Validate())
	assert.NoError(t, ProductionDomainConfig().Validate())
	assert.NoError(t, DevelopmentDomainConfig().Validate())
}

func TestScoringWeights_MustSumToOne(t *testing.T) {
	w := ScoringWeights{Proximity: 0.5, Relationship: 0.5, Contactability: 0.5, Recency: 0.5}
	assert.Error(t, w.Validate())

	w = DefaultScoringWeights()
	assert.NoError(t, w.Validate())
}

func TestScoringWeights_RejectsNegative(t *testing.T) {
	w := ScoringWeights{Proximity: 1.2, Relationship: -0.2, Contactability: 0, Recency: 0}
	assert.Error(t, w.Validate())
}

func TestDomainConfig_ValidationBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DomainConfig)
	}{
		{"hop decay above one", func(c *DomainConfig) { c.HopDecay = 1.5 }},
		{"zero hop decay", func(c *DomainConfig) { c.HopDecay = 0 }},
		{"negative proximity floor", func(c *DomainConfig) { c.ProximityFloor = -0.1 }},
		{"threshold above 100", func(c *DomainConfig) { c.FallbackScoreThreshold = 150 }},
		{"hop limit above cap", func(c *DomainConfig) { c.MaxPathHops = 4 }},
		{"top-k above max", func(c *DomainConfig) { c.DefaultTopK = 99 }},
		{"inverted access bounds", func(c *DomainConfig) { c.AccessFloor = 99; c.AccessCeiling = 10 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultDomainConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadDomainConfig_ByEnvironment(t *testing.T) {
	prod := LoadDomainConfig("production")
	dev := LoadDomainConfig("development")
	def := LoadDomainConfig("anything-else")

	assert.Less(t, prod.MaxNodesPerCircle, def.MaxNodesPerCircle)
	assert.Greater(t, dev.MaxNodesPerCircle, def.MaxNodesPerCircle)
	assert.Equal(t, DefaultScoringWeights(), def.Weights)
}
