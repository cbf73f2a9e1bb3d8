package cells_test

import (
	"fmt"
	"testing"

	"github.com/delaneyj/dashcells/cells"
	"github.com/stretchr/testify/assert"
)

func TestComputedFollowsSource(t *testing.T) {
	rt := cells.NewRuntime()
	a := cells.NewCell(rt, 2)
	double := cells.NewComputed(rt, func() int {
		return a.Get() * 2
	})
	assert.Equal(t, 4, double.Get())

	a.Set(5)
	assert.Equal(t, 10, double.Peek())
}

func TestComputedSuppressesEqualResults(t *testing.T) {
	rt := cells.NewRuntime()

	// A -> parity -> effect
	a := cells.NewCell(rt, 1)
	computes := 0
	parity := cells.NewComputed(rt, func() int {
		computes++
		return a.Get() % 2
	})
	runs := 0
	rt.WatchEffect(func() {
		runs++
		parity.Get()
	})
	assert.Equal(t, 1, computes)
	assert.Equal(t, 1, runs)

	a.Set(3)
	assert.Equal(t, 2, computes)
	assert.Equal(t, 1, runs, "unchanged parity must not rerun dependents")

	a.Set(4)
	assert.Equal(t, 3, computes)
	assert.Equal(t, 2, runs)
}

func TestComputedDiamondRecomputesPerPath(t *testing.T) {
	rt := cells.NewRuntime()

	//     A
	//   /   \
	//  B     C
	//   \   /
	//     D
	// Recomputation is eager, so D runs once per changed input and briefly
	// sees one side updated before the other.
	a := cells.NewCell(rt, "a")
	b := cells.NewComputed(rt, func() string {
		return a.Get()
	})
	c := cells.NewComputed(rt, func() string {
		return a.Get()
	})
	var seen []string
	d := cells.NewComputed(rt, func() string {
		v := b.Get() + " " + c.Get()
		seen = append(seen, v)
		return v
	})
	assert.Equal(t, "a a", d.Get())
	assert.Equal(t, []string{"a a"}, seen)

	a.Set("aa")
	assert.Equal(t, "aa aa", d.Get())
	assert.Len(t, seen, 3)
	assert.Contains(t, []string{"aa a", "a aa"}, seen[1])
	assert.Equal(t, "aa aa", seen[2])
}

func TestComputedChain(t *testing.T) {
	rt := cells.NewRuntime()
	src := cells.NewCell(rt, 0)

	var last cells.Reader[int] = src
	for i := 0; i < 10; i++ {
		prev := last
		last = cells.NewComputed(rt, func() int {
			return prev.Get() + 1
		})
	}
	assert.Equal(t, 10, last.Peek())

	src.Set(5)
	assert.Equal(t, 15, last.Peek())
}

func TestComputedOnChangeAndRelease(t *testing.T) {
	rt := cells.NewRuntime()
	a := cells.NewCell(rt, 1)
	label := cells.NewComputedFunc(rt, func() string {
		return fmt.Sprintf("n=%d", a.Get())
	}, func(x, y string) bool { return x == y })

	var got []string
	label.OnChange(func(s string) {
		got = append(got, s)
	})
	a.Set(2)
	assert.Equal(t, []string{"n=2"}, got)

	label.Release()
	assert.False(t, rt.Alive(label.Owner()))
	a.Set(3)
	assert.Equal(t, "n=2", label.Peek())
	assert.Empty(t, rt.Subscribers(a.Owner()))
}
