package config

import (
	"fmt"
	"math"
	"time"
)

// ScoringWeights holds the relative weight of each warmth signal. Weights
// must be non-negative and sum to 1 so the combined score stays in [0,100].
type ScoringWeights struct {
	Proximity      float64 `yaml:"proximity" json:"proximity"`
	Relationship   float64 `yaml:"relationship" json:"relationship"`
	Contactability float64 `yaml:"contactability" json:"contactability"`
	Recency        float64 `yaml:"recency" json:"recency"`
}

// DefaultScoringWeights returns the standard signal weighting
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		Proximity:      0.35,
		Relationship:   0.30,
		Contactability: 0.20,
		Recency:        0.15,
	}
}

// Validate checks the weights are usable for scoring
func (w ScoringWeights) Validate() error {
	if w.Proximity < 0 || w.Relationship < 0 || w.Contactability < 0 || w.Recency < 0 {
		return fmt.Errorf("scoring weights must be non-negative")
	}
	sum := w.Proximity + w.Relationship + w.Contactability + w.Recency
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1, got %.4f", sum)
	}
	return nil
}

// DomainConfig holds all configurable business rules and constraints
type DomainConfig struct {
	// Signal weighting
	Weights ScoringWeights

	// Warmth scoring
	HopDecay            float64 // proximity multiplier per hop beyond the first
	ProximityFloor      float64 // minimum proximity for reachable nodes
	RecencyWindowDays   float64 // activity older than this scores 0 recency
	PrivateChannelScale float64 // contactability when only non-public channels exist

	// Path selection
	FallbackScoreThreshold int // best direct score below this triggers multi-hop
	MaxPathHops            int // hop limit for fallback paths, capped at 3
	DefaultTopK            int
	MaxTopK                int
	IndustryBoost          int // ranking boost for querent industry match
	ConnectionBoost        int // ranking boost per shared connection

	// Access scoring
	AccessWarmWeight    float64
	AccessDirectPerNode int
	AccessDirectCap     int
	AccessVarietyPerTag int
	AccessFloor         int
	AccessCeiling       int
	AccessDefault       int

	// Circle constraints
	MaxNodesPerCircle    int
	MaxEdgesPerCircle    int
	MaxChannelsPerPerson int
	MaxNameLength        int
	MaxRoleLength        int
	MaxRationaleLength   int

	// Time constraints
	RebuildTimeout    time.Duration
	ConnectionTimeout time.Duration
	SnapshotCacheTTL  time.Duration

	// Feature flags
	EnableFallbackPaths     bool
	EnableQuerentBoost      bool
	EnableLiveNotifications bool
}

// DefaultDomainConfig returns the default domain configuration
func DefaultDomainConfig() *DomainConfig {
	return &DomainConfig{
		Weights: DefaultScoringWeights(),

		// Warmth scoring
		HopDecay:            0.5,
		ProximityFloor:      0.05,
		RecencyWindowDays:   365,
		PrivateChannelScale: 0.4,

		// Path selection
		FallbackScoreThreshold: 40,
		MaxPathHops:            2,
		DefaultTopK:            3,
		MaxTopK:                10,
		IndustryBoost:          15,
		ConnectionBoost:        10,

		// Access scoring
		AccessWarmWeight:    0.6,
		AccessDirectPerNode: 5,
		AccessDirectCap:     20,
		AccessVarietyPerTag: 3,
		AccessFloor:         10,
		AccessCeiling:       99,
		AccessDefault:       30,

		// Circle constraints
		MaxNodesPerCircle:    500,
		MaxEdgesPerCircle:    5000,
		MaxChannelsPerPerson: 10,
		MaxNameLength:        200,
		MaxRoleLength:        300,
		MaxRationaleLength:   2000,

		// Time constraints
		RebuildTimeout:    30 * time.Second,
		ConnectionTimeout: 30 * time.Second,
		SnapshotCacheTTL:  5 * time.Minute,

		// Feature flags
		EnableFallbackPaths:     true,
		EnableQuerentBoost:      true,
		EnableLiveNotifications: true,
	}
}

// ProductionDomainConfig returns production-specific configuration
func ProductionDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More restrictive limits for production
	config.MaxNodesPerCircle = 250
	config.MaxEdgesPerCircle = 2500
	config.RebuildTimeout = 15 * time.Second

	return config
}

// DevelopmentDomainConfig returns development-specific configuration
func DevelopmentDomainConfig() *DomainConfig {
	config := DefaultDomainConfig()

	// More permissive for development
	config.MaxNodesPerCircle = 5000
	config.MaxEdgesPerCircle = 50000
	config.RebuildTimeout = 5 * time.Minute
	config.SnapshotCacheTTL = 30 * time.Second

	return config
}

// LoadDomainConfig loads domain configuration based on environment
func LoadDomainConfig(environment string) *DomainConfig {
	switch environment {
	case "production":
		return ProductionDomainConfig()
	case "development":
		return DevelopmentDomainConfig()
	default:
		return DefaultDomainConfig()
	}
}

// Validate checks if the configuration is valid
func (c *DomainConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if c.HopDecay <= 0 || c.HopDecay > 1 {
		return fmt.Errorf("hop decay must be in (0, 1], got %.2f", c.HopDecay)
	}
	if c.ProximityFloor < 0 || c.ProximityFloor > 1 {
		return fmt.Errorf("proximity floor must be in [0, 1], got %.2f", c.ProximityFloor)
	}
	if c.RecencyWindowDays <= 0 {
		return fmt.Errorf("recency window must be positive, got %.1f", c.RecencyWindowDays)
	}
	if c.PrivateChannelScale < 0 || c.PrivateChannelScale > 1 {
		return fmt.Errorf("private channel scale must be in [0, 1], got %.2f", c.PrivateChannelScale)
	}
	if c.FallbackScoreThreshold < 0 || c.FallbackScoreThreshold > 100 {
		return fmt.Errorf("fallback threshold must be in [0, 100], got %d", c.FallbackScoreThreshold)
	}
	if c.MaxPathHops < 1 || c.MaxPathHops > 3 {
		return fmt.Errorf("max path hops must be in [1, 3], got %d", c.MaxPathHops)
	}
	if c.DefaultTopK < 1 || c.DefaultTopK > c.MaxTopK {
		return fmt.Errorf("default top-k must be in [1, %d], got %d", c.MaxTopK, c.DefaultTopK)
	}
	if c.AccessFloor < 0 || c.AccessCeiling > 100 || c.AccessFloor >= c.AccessCeiling {
		return fmt.Errorf("access score bounds [%d, %d] are invalid", c.AccessFloor, c.AccessCeiling)
	}
	return nil
}
