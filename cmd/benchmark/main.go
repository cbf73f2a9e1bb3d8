package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/view"
	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

const (
	profileKey = "profile"
	itersKey   = "iters"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure propagation and sorted view latency",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  profileKey,
				Usage: "Write a CPU profile to this file, empty to disable",
				Value: "default.pgo",
			},
			&cli.UintFlag{
				Name:  itersKey,
				Usage: "Timed writes per benchmark",
				Value: 100,
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	iters := int(cmd.Uint(itersKey))
	log.Printf("warming up")
	benchmarkPropagate(iters, true)
	benchmarkSorted(iters, true)
	benchmarkGraphs(true)
	return nil
}

var (
	ww = []int{1, 10, 100, 1_000}
	hh = []int{1, 10, 100, 1_000}
	nn = []int{10, 100, 1_000, 10_000}
)

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, tach *tachymeter.Tachymeter) {
	calc := tach.Calc()
	tbl.AppendRow(table.Row{
		name,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	})
}

// benchmarkPropagate times one write at the root of w chains of h computed
// cells, each chain ending in an effect.
func benchmarkPropagate(iters int, shouldRender bool) {
	tbl := newTable("Cells propagation")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rt := cells.NewRuntime(cells.WithCapacity(w*h + w + 1))
			src := cells.NewCell(rt, 1)
			for i := 0; i < w; i++ {
				var last cells.Reader[int] = src
				for j := 0; j < h; j++ {
					prev := last
					last = cells.NewComputed(rt, func() int {
						return prev.Get() + 1
					})
				}
				rt.WatchEffect(func() {
					last.Get()
				})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach)
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkSorted times one element write followed by a read of the first
// shown element, which forces the permutation to be rebuilt.
func benchmarkSorted(iters int, shouldRender bool) {
	tbl := newTable("Sorted view")

	for _, n := range nn {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		random := rand.New(rand.NewSource(0))

		rt := cells.NewRuntime()
		items := make([]int64, n)
		for i := range items {
			items[i] = random.Int63n(int64(n))
		}
		list := cells.NewList(rt, items...)
		v := view.NewSorted(rt, list)
		v.SetSelector(view.ByInt(func(x int64) int64 { return x }))

		for i := 0; i < iters; i++ {
			start := time.Now()
			list.Set(random.Intn(n), random.Int63n(int64(n)))
			v.At(0)
			tach.AddTime(time.Since(start))
		}

		appendCalc(tbl, fmt.Sprintf("resort: %s", humanize.Comma(int64(n))), tach)
	}

	if shouldRender {
		tbl.Render()
	}
}
