package main

import (
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/dashcells/cells"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
)

type graphTestConfig struct {
	name           string
	width          int
	totalLayers    int
	staticFraction float64 // fraction of nodes that always read all their sources
	nSources       int
	readFraction   float64 // fraction of the last layer read after each write
	iterations     int64
}

var graphTestConfigs = []graphTestConfig{
	{name: "simple component", width: 10, totalLayers: 5, staticFraction: 1, nSources: 2, readFraction: 0.2, iterations: 600000},
	{name: "dynamic component", width: 10, totalLayers: 10, staticFraction: 0.75, nSources: 6, readFraction: 0.2, iterations: 15000},
	{name: "large web app", width: 1000, totalLayers: 12, staticFraction: 0.95, nSources: 4, readFraction: 1, iterations: 7000},
	{name: "wide dense", width: 1000, totalLayers: 5, staticFraction: 1, nSources: 25, readFraction: 1, iterations: 3000},
	{name: "deep", width: 5, totalLayers: 500, staticFraction: 1, nSources: 3, readFraction: 1, iterations: 500},
	{name: "very dynamic", width: 100, totalLayers: 15, staticFraction: 0.5, nSources: 6, readFraction: 1, iterations: 2000},
}

type graph struct {
	sources []*cells.Cell[int]
	layers  [][]*cells.Computed[int]
}

// benchmarkGraphs runs layered dependency graphs where each node sums a window
// of the previous layer. Dynamic nodes skip one source depending on the first
// source's parity.
func benchmarkGraphs(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Dependency graphs")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"test", "size", "nSources", "read%", "static%", "nTimes", "time", "updateRate", "recomputes", "title"})

	const testRepeats = 5
	for _, cfg := range graphTestConfigs {
		log.Printf("Running '%s' config", cfg.name)

		var (
			best      = time.Hour
			bestCount int64
		)
		for i := 0; i < testRepeats; i++ {
			counter := new(int64)
			rt := cells.NewRuntime()
			g := makeGraph(rt, cfg, counter)
			*counter = 0

			start := time.Now()
			sum := runGraph(g, cfg)
			d := time.Since(start)
			log.Printf("Running '%s' config, iteration %d/%d sum: %d", cfg.name, i+1, testRepeats, sum)
			if d < best {
				best = d
				bestCount = *counter
			}
		}

		updateRate := float64(bestCount) / (float64(best) / float64(time.Millisecond))
		tbl.AppendRow(table.Row{
			cfg.name,
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			cfg.nSources,
			cfg.readFraction,
			cfg.staticFraction,
			humanize.Comma(cfg.iterations),
			best,
			humanize.Comma(int64(updateRate)),
			humanize.Comma(bestCount),
			graphTitle(cfg),
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func makeGraph(rt *cells.Runtime, cfg graphTestConfig, counter *int64) *graph {
	random := rand.New(rand.NewSource(0))
	g := &graph{sources: make([]*cells.Cell[int], cfg.width)}
	prev := make([]cells.Reader[int], cfg.width)
	for i := range g.sources {
		g.sources[i] = cells.NewCell(rt, i)
		prev[i] = g.sources[i]
	}

	for l := 0; l < cfg.totalLayers-1; l++ {
		row := make([]*cells.Computed[int], cfg.width)
		for myDex := range row {
			mySources := make([]cells.Reader[int], cfg.nSources)
			for s := range mySources {
				mySources[s] = prev[(myDex+s)%len(prev)]
			}
			if random.Float64() < cfg.staticFraction {
				row[myDex] = cells.NewComputed(rt, func() int {
					*counter++
					sum := 0
					for _, src := range mySources {
						sum += src.Get()
					}
					return sum
				})
			} else {
				first, tail := mySources[0], mySources[1:]
				row[myDex] = cells.NewComputed(rt, func() int {
					*counter++
					sum := first.Get()
					shouldDrop := sum&0x1 > 0
					dropDex := sum % max(len(tail), 1)
					for i, src := range tail {
						if shouldDrop && i == dropDex {
							continue
						}
						sum += src.Get()
					}
					return sum
				})
			}
		}
		g.layers = append(g.layers, row)
		for i, c := range row {
			prev[i] = c
		}
	}
	return g
}

// runGraph writes one source per iteration and reads a fixed subset of the
// leaves. It returns the sum of the leaves read.
func runGraph(g *graph, cfg graphTestConfig) int {
	random := rand.New(rand.NewSource(0))
	leaves := g.layers[len(g.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	for i := 0; i < int(cfg.iterations); i++ {
		sourceDex := i % len(g.sources)
		g.sources[sourceDex].Set(i + sourceDex)
		for _, leaf := range readLeaves {
			leaf.Peek()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf.Peek()
	}
	return sum
}

func removeElems[T any](src []T, rmCount int, random *rand.Rand) []T {
	out := make([]T, len(src))
	copy(out, src)
	for i := 0; i < rmCount; i++ {
		rmDex := random.Intn(len(out))
		out[rmDex] = out[len(out)-1]
		out = out[:len(out)-1]
	}
	return out
}

func graphTitle(cfg graphTestConfig) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d %d sources", cfg.width, cfg.totalLayers, cfg.nSources)
	if cfg.staticFraction < 1 {
		sb.WriteString(" dynamic")
	}
	if cfg.readFraction < 1 {
		fmt.Fprintf(&sb, " read %0.2f%%", 100*cfg.readFraction)
	}
	return sb.String()
}
