package valueobjects

import (
	"strings"

	pkgerrors "accessengine-backend/pkg/errors"
)

// Category classifies the public sphere a celebrity belongs to
type Category string

const (
	CategoryTech     Category = "tech"
	CategorySports   Category = "sports"
	CategoryMusic    Category = "music"
	CategoryFilm     Category = "film"
	CategoryPolitics Category = "politics"
	CategoryOther    Category = "other"
)

// AllCategories lists every supported category in display order
func AllCategories() []Category {
	return []Category{
		CategoryTech,
		CategorySports,
		CategoryMusic,
		CategoryFilm,
		CategoryPolitics,
		CategoryOther,
	}
}

// ParseCategory normalizes and validates a category string
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", pkgerrors.ErrUnknownCategory.Clone().WithDetail("category", s)
	}
	return c, nil
}

// IsValid reports whether the category is one of the supported values
func (c Category) IsValid() bool {
	switch c {
	case CategoryTech, CategorySports, CategoryMusic, CategoryFilm, CategoryPolitics, CategoryOther:
		return true
	default:
		return false
	}
}

// String returns the category as a string
func (c Category) String() string {
	return string(c)
}
