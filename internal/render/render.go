package render

import (
	"fmt"
	"io"

	"github.com/ozdata/bizname-search/internal/datastore"
)

const emptyResultMessage = "no matching business names"

type Renderer interface {
	Render(mode Mode, records []datastore.BusinessRecord) error
}

func NewRenderer(w io.Writer) Renderer {
	return &renderer{w: w}
}

type renderer struct {
	w io.Writer
}

func (r *renderer) Render(mode Mode, records []datastore.BusinessRecord) error {
	if len(records) == 0 {
		fmt.Fprintln(r.w, emptyResultMessage)
		return nil
	}

	switch mode {
	case ModeList:
		return r.renderList(records)
	case ModeHistogram:
		return r.renderHistogram(records)
	case ModeChart:
		return r.renderChart(records)
	}
	return fmt.Errorf("unknown view mode %q", mode)
}
