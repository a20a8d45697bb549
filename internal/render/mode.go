package render

import (
	"fmt"
	"strings"
)

// Mode selects how a result set is rendered.
type Mode string

const (
	ModeList      Mode = "list"
	ModeHistogram Mode = "histogram"
	ModeChart     Mode = "chart"
)

func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(value)) {
	case ModeList:
		return ModeList, nil
	case ModeHistogram:
		return ModeHistogram, nil
	case ModeChart:
		return ModeChart, nil
	}
	return "", fmt.Errorf("unknown view mode %q (expected list, histogram, or chart)", value)
}
