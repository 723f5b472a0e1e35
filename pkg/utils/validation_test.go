package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memberPayload struct {
	Name     string `json:"person_name" validate:"required,min=1,max=200"`
	Tag      string `json:"relationship_type" validate:"required"`
	Strength int    `json:"strength" validate:"min=0,max=100"`
	Status   string `json:"status" validate:"omitempty,oneof=draft sent replied"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("a complete payload passes", func(t *testing.T) {
		err := ValidateStruct(memberPayload{
			Name:     "Margaret Rooney",
			Tag:      "colleague",
			Strength: 74,
			Status:   "draft",
		})
		assert.NoError(t, err)
	})

	t.Run("missing fields report their wire names", func(t *testing.T) {
		err := ValidateStruct(memberPayload{Strength: 50})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "person_name is required")
		assert.Contains(t, err.Error(), "relationship_type is required")
		assert.Contains(t, err.Error(), "; ")
	})

	t.Run("range violations name the bound", func(t *testing.T) {
		err := ValidateStruct(memberPayload{Name: "A", Tag: "colleague", Strength: 140})
		require.Error(t, err)
		assert.Equal(t, "strength must be at most 100", err.Error())
	})

	t.Run("oneof lists the accepted values", func(t *testing.T) {
		err := ValidateStruct(memberPayload{Name: "A", Tag: "colleague", Status: "archived"})
		require.Error(t, err)
		assert.Equal(t, "status must be one of: draft sent replied", err.Error())
	})

	t.Run("an oversized name is rejected", func(t *testing.T) {
		err := ValidateStruct(memberPayload{Name: strings.Repeat("x", 201), Tag: "colleague"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "person_name must be at most 200")
	})
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("whole days between two instants", func(t *testing.T) {
		assert.InDelta(t, 3.0, DaysBetween(base, base.AddDate(0, 0, 3)), 1e-9)
	})

	t.Run("fractions carry through", func(t *testing.T) {
		assert.InDelta(t, 1.5, DaysBetween(base, base.Add(36*time.Hour)), 1e-9)
	})

	t.Run("inverted ranges clamp to zero", func(t *testing.T) {
		assert.Zero(t, DaysBetween(base, base.Add(-time.Hour)))
	})
}

func TestRFC3339Helpers(t *testing.T) {
	parsed, err := ParseRFC3339(NowRFC3339())
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), parsed, time.Minute)
}
