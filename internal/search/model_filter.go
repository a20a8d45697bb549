package search

import (
	"time"
)

// FilterParams holds the active filters for one search. Zero values
// (and a nil RegisteredAfter) leave the matching filter inactive.
type FilterParams struct {
	State  string
	Status string
	Name   string

	RegisteredAfter *time.Time

	// Limit bounds how many records are fetched from the register,
	// not how many survive filtering.
	Limit int
}
