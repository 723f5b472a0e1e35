package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "accessengine-backend/pkg/errors"
)

func TestRecordValidator_ValidateMemberRecord(t *testing.T) {
	v := NewRecordValidator()

	t.Run("accepts a valid record", func(t *testing.T) {
		err := v.ValidateMemberRecord("Reed Duchscher", "manager", "Talent Manager", "Handles all bookings", 2)
		assert.NoError(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := v.ValidateMemberRecord("  ", "manager", "", "", 0)
		require.Error(t, err)

		var validationErrors *pkgerrors.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.True(t, validationErrors.HasErrors())
	})

	t.Run("rejects unknown tag", func(t *testing.T) {
		err := v.ValidateMemberRecord("Reed Duchscher", "nemesis", "", "", 0)
		assert.Error(t, err)
	})

	t.Run("collects multiple failures", func(t *testing.T) {
		err := v.ValidateMemberRecord("", "nemesis", strings.Repeat("r", 500), "", 99)
		require.Error(t, err)

		var validationErrors *pkgerrors.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.GreaterOrEqual(t, len(validationErrors.Errors), 3)
	})
}

func TestRecordValidator_ValidateHandle(t *testing.T) {
	v := NewRecordValidator()

	assert.NoError(t, v.ValidateHandle("@MrBeast"))
	assert.NoError(t, v.ValidateHandle("reed@example.com"))
	assert.ErrorIs(t, v.ValidateHandle(""), pkgerrors.ErrChannelHandleRequired)
	assert.Error(t, v.ValidateHandle("two words"))
}

func TestEdgeValidator(t *testing.T) {
	v := NewEdgeValidator()

	t.Run("accepts a valid edge", func(t *testing.T) {
		assert.NoError(t, v.ValidateEdge("reed", "tyler"))
	})

	t.Run("rejects self loop", func(t *testing.T) {
		err := v.ValidateEdge("reed", "reed")
		assert.ErrorIs(t, err, pkgerrors.ErrSelfReferentialEdge)
	})

	t.Run("rejects missing endpoint", func(t *testing.T) {
		assert.Error(t, v.ValidateEdge("", "tyler"))
		assert.Error(t, v.ValidateEdge("reed", "  "))
	})

	t.Run("strength bounds", func(t *testing.T) {
		assert.NoError(t, v.ValidateStrength(0))
		assert.NoError(t, v.ValidateStrength(100))
		assert.ErrorIs(t, v.ValidateStrength(-1), pkgerrors.ErrEdgeStrengthOutOfRange)
		assert.ErrorIs(t, v.ValidateStrength(101), pkgerrors.ErrEdgeStrengthOutOfRange)
	})
}

func TestCircleValidator(t *testing.T) {
	v := NewCircleValidator()

	assert.NoError(t, v.ValidateNodeCount(10))
	assert.Error(t, v.ValidateNodeCount(100000))
	assert.NoError(t, v.ValidateEdgeCount(10))
	assert.Error(t, v.ValidateEdgeCount(1000000))
}
