package render

import (
	"fmt"

	"github.com/ozdata/bizname-search/internal/datastore"

	"github.com/guptarohit/asciigraph"
)

// renderChart plots registrations per year as a line chart. Records
// without a registration date are skipped.
func (r *renderer) renderChart(records []datastore.BusinessRecord) error {
	counts := make(map[int]int)
	minYear, maxYear := 0, 0
	for _, record := range records {
		if !record.HasRegistrationDate() {
			continue
		}
		year := record.Registered.Year()
		counts[year]++

		if minYear == 0 || year < minYear {
			minYear = year
		}
		if year > maxYear {
			maxYear = year
		}
	}

	if len(counts) == 0 {
		fmt.Fprintln(r.w, emptyResultMessage)
		return nil
	}

	// A contiguous series so missing years plot as zero instead of
	// collapsing the axis.
	series := make([]float64, 0, maxYear-minYear+1)
	for year := minYear; year <= maxYear; year++ {
		series = append(series, float64(counts[year]))
	}

	caption := fmt.Sprintf("Business registrations per year (%d-%d)", minYear, maxYear)
	if minYear == maxYear {
		caption = fmt.Sprintf("Business registrations in %d", minYear)
	}

	plot := asciigraph.Plot(series,
		asciigraph.Height(10),
		asciigraph.Caption(caption),
	)
	fmt.Fprintln(r.w, plot)
	return nil
}
