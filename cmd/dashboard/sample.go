package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/delaneyj/dashcells/dataset"
)

var measurements = []string{"temperature", "pressure", "humidity", "voltage", "flow"}

// sampleDataset builds a random recording. Roughly every third dataset is left
// without an annotated name so the header falls back to the file name.
func sampleDataset(random *rand.Rand, i int) (dataset.AnnotatedData, dataset.SensorData) {
	var annotated dataset.AnnotatedData
	if i%3 != 0 {
		name := fmt.Sprintf("run %c%d", 'A'+rune(random.Intn(26)), random.Intn(100))
		annotated.Name = &name
	}

	sensors := 1 + random.Intn(4)
	samples := 8 + random.Intn(24)
	base := random.Float64() * 100
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Hour)

	sensor := dataset.SensorData{
		Measurement: measurements[random.Intn(len(measurements))],
		SensorNames: make([]string, sensors),
		SampleTimes: make([]time.Time, samples),
		Samples:     make([][]float64, sensors),
	}
	for s := range sensor.SampleTimes {
		sensor.SampleTimes[s] = start.Add(time.Duration(s) * time.Second)
	}
	for n := range sensor.Samples {
		sensor.SensorNames[n] = fmt.Sprintf("sensor-%d", n)
		sensor.Samples[n] = make([]float64, samples)
		for s := range sensor.Samples[n] {
			sensor.Samples[n][s] = base + random.NormFloat64()*10
		}
	}
	return annotated, sensor
}
