package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/delaneyj/dashcells/view"
)

type SortMode uint8

const (
	Unsorted SortMode = iota
	ByName
	ByMeasurement
	ByMean
	ByMinimum
	ByMaximum
)

var (
	ErrUnsortedMode    = errors.New("dataset: unsorted mode has no selector")
	ErrUnknownSortMode = errors.New("dataset: unknown sort mode")
)

var sortModeNames = [...]string{
	Unsorted:      "unsorted",
	ByName:        "name",
	ByMeasurement: "measurement",
	ByMean:        "mean",
	ByMinimum:     "minimum",
	ByMaximum:     "maximum",
}

func (m SortMode) String() string {
	if int(m) < len(sortModeNames) {
		return sortModeNames[m]
	}
	return fmt.Sprintf("SortMode(%d)", m)
}

func ParseSortMode(s string) (SortMode, error) {
	for m, name := range sortModeNames {
		if strings.EqualFold(s, name) {
			return SortMode(m), nil
		}
	}
	return Unsorted, fmt.Errorf("%w: %q", ErrUnknownSortMode, s)
}

// Selector returns the sort key extractor for mode.
func Selector(mode SortMode) (view.Selector[Dataset], error) {
	switch mode {
	case Unsorted:
		return nil, ErrUnsortedMode
	case ByName:
		return view.ByString(func(d Dataset) string {
			if d.Annotated.Name == nil {
				return ""
			}
			return *d.Annotated.Name
		}), nil
	case ByMeasurement:
		return view.ByString(func(d Dataset) string { return d.Sensor.Measurement }), nil
	case ByMean:
		return view.ByFloat(func(d Dataset) float64 { return d.Calculated.Mean }), nil
	case ByMinimum:
		return view.ByFloat(func(d Dataset) float64 { return d.Calculated.Minimum }), nil
	case ByMaximum:
		return view.ByFloat(func(d Dataset) float64 { return d.Calculated.Maximum }), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownSortMode, mode)
	}
}
