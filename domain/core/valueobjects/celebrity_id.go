package valueobjects

import (
	"errors"

	"github.com/google/uuid"
)

// CelebrityID is a value object representing a unique celebrity identifier
type CelebrityID struct {
	value string
}

// NewCelebrityID creates a new random CelebrityID
func NewCelebrityID() CelebrityID {
	return CelebrityID{value: uuid.New().String()}
}

// NewCelebrityIDFromString creates a CelebrityID from an existing string
func NewCelebrityIDFromString(id string) (CelebrityID, error) {
	if id == "" {
		return CelebrityID{}, errors.New("celebrity ID cannot be empty")
	}
	if !isValidUUID(id) {
		return CelebrityID{}, errors.New("celebrity ID must be a valid UUID")
	}
	return CelebrityID{value: id}, nil
}

// NewSeededCelebrityID derives a stable CelebrityID from a seed key
func NewSeededCelebrityID(key string) CelebrityID {
	return CelebrityID{value: uuid.NewSHA1(seedNamespace, []byte("celebrity:"+key)).String()}
}

// String returns the string representation of the CelebrityID
func (id CelebrityID) String() string {
	return id.value
}

// Equals checks if two CelebrityIDs are equal
func (id CelebrityID) Equals(other CelebrityID) bool {
	return id.value == other.value
}

// IsZero checks if the CelebrityID is the zero value
func (id CelebrityID) IsZero() bool {
	return id.value == ""
}

// MarshalJSON implements json.Marshaler
func (id CelebrityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.value + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *CelebrityID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return errors.New("CelebrityID must be a string")
	}
	id.value = string(data[1 : len(data)-1])
	return nil
}
