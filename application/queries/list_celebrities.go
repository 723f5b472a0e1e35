package queries

import (
	"errors"

	"accessengine-backend/pkg/common"
)

// ListCelebritiesQuery represents a roster listing, sorted by access
// score descending
type ListCelebritiesQuery struct {
	Category string
	Page     int
	PageSize int
}

// Validate validates the ListCelebritiesQuery
func (q ListCelebritiesQuery) Validate() error {
	if q.Page < 0 {
		return errors.New("page cannot be negative")
	}
	if q.PageSize < 0 {
		return errors.New("page size cannot be negative")
	}
	return nil
}

// ListCelebritiesResult represents one page of the roster
type ListCelebritiesResult struct {
	Celebrities []CelebritySummary     `json:"celebrities"`
	Count       int                    `json:"count"`
	Pagination  *common.PaginationInfo `json:"pagination"`
}
