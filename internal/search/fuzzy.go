package search

import (
	"sort"
	"strings"

	"github.com/ozdata/bizname-search/internal/datastore"

	"github.com/agext/levenshtein"
)

// DefaultNameMatchThreshold keeps one-or-two character typos of short
// names in while rejecting unrelated names.
const DefaultNameMatchThreshold = 0.6

// nameSimilarity scores two names with normalized Levenshtein
// similarity, 1.0 for identical strings (ignoring case).
func nameSimilarity(query, name string) float64 {
	return levenshtein.Similarity(strings.ToLower(query), strings.ToLower(name), levenshtein.NewParams())
}

// rankByName keeps records whose name scores at or above threshold
// against query, ordered by descending similarity. Exact matches rank
// ahead of any inexact score and ties keep fetch order.
func rankByName(records []datastore.BusinessRecord, query string, threshold float64) []datastore.BusinessRecord {
	if query == "" {
		return records
	}

	type match struct {
		record datastore.BusinessRecord
		score  float64
		exact  bool
	}

	matches := make([]match, 0, len(records))
	for _, record := range records {
		score := nameSimilarity(query, record.Name)
		if score < threshold {
			continue
		}
		matches = append(matches, match{
			record: record,
			score:  score,
			exact:  strings.EqualFold(query, record.Name),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].exact != matches[j].exact {
			return matches[i].exact
		}
		return matches[i].score > matches[j].score
	})

	out := make([]datastore.BusinessRecord, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.record)
	}
	return out
}
