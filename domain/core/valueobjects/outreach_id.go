package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// OutreachID is a value object identifying a single outreach draft
type OutreachID struct {
	value string
}

// NewOutreachID creates a new random OutreachID
func NewOutreachID() OutreachID {
	return OutreachID{value: uuid.New().String()}
}

// NewOutreachIDFromString creates an OutreachID from an existing string
func NewOutreachIDFromString(id string) (OutreachID, error) {
	if id == "" {
		return OutreachID{}, errors.New("outreach ID cannot be empty")
	}
	if !isValidUUID(id) {
		return OutreachID{}, errors.New("outreach ID must be a valid UUID")
	}
	return OutreachID{value: id}, nil
}

// String returns the string representation of the OutreachID
func (id OutreachID) String() string {
	return id.value
}

// Equals checks if two OutreachIDs are equal
func (id OutreachID) Equals(other OutreachID) bool {
	return id.value == other.value
}

// IsZero checks if the OutreachID is the zero value
func (id OutreachID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id OutreachID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *OutreachID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("OutreachID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
