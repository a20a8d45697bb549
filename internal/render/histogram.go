package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ozdata/bizname-search/internal/datastore"
)

const maxBarWidth = 40

// renderHistogram prints business counts grouped by state, largest first.
func (r *renderer) renderHistogram(records []datastore.BusinessRecord) error {
	counts := make(map[string]int)
	for _, record := range records {
		if record.State == "" {
			continue
		}
		counts[record.State]++
	}

	type bucket struct {
		state string
		count int
	}
	buckets := make([]bucket, 0, len(counts))
	for state, count := range counts {
		buckets = append(buckets, bucket{state: state, count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].count != buckets[j].count {
			return buckets[i].count > buckets[j].count
		}
		return buckets[i].state < buckets[j].state
	})

	if len(buckets) == 0 {
		fmt.Fprintln(r.w, emptyResultMessage)
		return nil
	}

	stateWidth := 0
	for _, b := range buckets {
		if len(b.state) > stateWidth {
			stateWidth = len(b.state)
		}
	}
	maxCount := buckets[0].count

	fmt.Fprintln(r.w, "Businesses per state")
	for _, b := range buckets {
		width := b.count * maxBarWidth / maxCount
		if width < 1 {
			width = 1
		}
		fmt.Fprintf(r.w, "%-*s  %s %d\n", stateWidth, b.state, strings.Repeat("█", width), b.count)
	}
	return nil
}
