package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKeyValues(t *testing.T) {
	t.Run("reads caps labels into snake keys", func(t *testing.T) {
		fields := parseKeyValues("VALUE_PROP: worth their time\nSUBJECT LINE: six words that get opened")

		assert.Equal(t, "worth their time", fields["value_prop"])
		assert.Equal(t, "six words that get opened", fields["subject_line"])
	})

	t.Run("folds continuation lines into the previous field", func(t *testing.T) {
		fields := parseKeyValues("MESSAGE: Hi, first line.\nSecond line here.\n\nTONE_NOTE: warm")

		assert.Equal(t, "Hi, first line.\nSecond line here.", fields["message"])
		assert.Equal(t, "warm", fields["tone_note"])
	})

	t.Run("keeps sentence colons inside the message", func(t *testing.T) {
		fields := parseKeyValues("MESSAGE: Hi there.\nHere is the thing: it works.\nTONE_NOTE: direct")

		assert.Equal(t, "Hi there.\nHere is the thing: it works.", fields["message"])
		assert.Equal(t, "direct", fields["tone_note"])
	})

	t.Run("ignores preamble before the first label", func(t *testing.T) {
		fields := parseKeyValues("Sure, here is the package.\nVALUE_PROP: the reason")

		assert.Equal(t, "the reason", fields["value_prop"])
		assert.NotContains(t, fields, "sure")
	})

	t.Run("last occurrence of a repeated label wins", func(t *testing.T) {
		fields := parseKeyValues("TONE_NOTE: cold\nTONE_NOTE: warm")

		assert.Equal(t, "warm", fields["tone_note"])
	})
}

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "subject_line", normalizeKey("SUBJECT_LINE"))
	assert.Equal(t, "subject_line", normalizeKey(" SUBJECT LINE "))
	assert.Equal(t, "", normalizeKey("Here is the thing"))
	assert.Equal(t, "", normalizeKey("https"))
	assert.Equal(t, "", normalizeKey(""))
}
