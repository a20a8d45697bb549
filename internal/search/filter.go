package search

import (
	"strings"

	"github.com/ozdata/bizname-search/internal/datastore"
)

// applyFilters narrows records to those matching every active filter.
// With no active filters the input comes back unchanged.
func applyFilters(records []datastore.BusinessRecord, params FilterParams) []datastore.BusinessRecord {
	if params.State == "" && params.Status == "" && params.RegisteredAfter == nil {
		return records
	}

	out := make([]datastore.BusinessRecord, 0, len(records))
	for _, record := range records {
		if matchesFilters(record, params) {
			out = append(out, record)
		}
	}
	return out
}

func matchesFilters(record datastore.BusinessRecord, params FilterParams) bool {
	if params.State != "" && !strings.EqualFold(record.State, params.State) {
		return false
	}
	if params.Status != "" && !strings.EqualFold(record.Status, params.Status) {
		return false
	}
	if params.RegisteredAfter != nil {
		// Records the register holds no date for can't satisfy a date filter.
		if !record.HasRegistrationDate() {
			return false
		}
		if record.Registered.Before(*params.RegisteredAfter) {
			return false
		}
	}
	return true
}
