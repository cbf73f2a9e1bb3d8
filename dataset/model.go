// Package dataset holds the dashboard's data records and the sort keys the
// views order them by.
package dataset

import (
	"math"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// AnnotatedData is the user-editable part of a dataset.
type AnnotatedData struct {
	Name           *string
	LowerThreshold *float64
	UpperThreshold *float64
}

// SensorData is the recorded part of a dataset. Samples is indexed
// [sensor][sample].
type SensorData struct {
	Measurement string
	SensorNames []string
	SampleTimes []time.Time
	Samples     [][]float64
}

// CalculatedData is derived from SensorData and never stored.
type CalculatedData struct {
	Mean    float64
	Minimum float64
	Maximum float64
}

type Dataset struct {
	FilePath   string
	Annotated  AnnotatedData
	Sensor     SensorData
	Calculated CalculatedData
}

// FileName is the base name of FilePath without its extension.
func (d Dataset) FileName() string {
	base := filepath.Base(d.FilePath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// DisplayName is the annotated name when set, otherwise the file name.
func (d Dataset) DisplayName() string {
	if d.Annotated.Name != nil {
		return *d.Annotated.Name
	}
	return d.FileName()
}

// Equal compares structurally; pointers compare by the value they point to.
func (d Dataset) Equal(o Dataset) bool {
	return d.FilePath == o.FilePath &&
		d.Annotated.Equal(o.Annotated) &&
		d.Sensor.Equal(o.Sensor) &&
		d.Calculated.Equal(o.Calculated)
}

// Equal treats NaN as equal to NaN, so an empty dataset equals itself.
func (c CalculatedData) Equal(o CalculatedData) bool {
	return floatEqual(c.Mean, o.Mean) &&
		floatEqual(c.Minimum, o.Minimum) &&
		floatEqual(c.Maximum, o.Maximum)
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func (a AnnotatedData) Equal(o AnnotatedData) bool {
	return ptrEqual(a.Name, o.Name) &&
		ptrEqual(a.LowerThreshold, o.LowerThreshold) &&
		ptrEqual(a.UpperThreshold, o.UpperThreshold)
}

func (s SensorData) Equal(o SensorData) bool {
	return s.Measurement == o.Measurement &&
		slices.Equal(s.SensorNames, o.SensorNames) &&
		slices.EqualFunc(s.SampleTimes, o.SampleTimes, func(a, b time.Time) bool { return a.Equal(b) }) &&
		slices.EqualFunc(s.Samples, o.Samples, func(a, b []float64) bool { return slices.Equal(a, b) })
}

func ptrEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// CalculateAuxiliary derives mean, minimum and maximum over every sample. With
// no samples the mean is NaN and the bounds are the infinities.
func CalculateAuxiliary(s SensorData) CalculatedData {
	minimum, maximum, sum := math.Inf(1), math.Inf(-1), 0.0
	count := 0
	for _, sensor := range s.Samples {
		for _, sample := range sensor {
			minimum = min(minimum, sample)
			maximum = max(maximum, sample)
			sum += sample
			count++
		}
	}
	return CalculatedData{
		Mean:    sum / float64(count),
		Minimum: minimum,
		Maximum: maximum,
	}
}
