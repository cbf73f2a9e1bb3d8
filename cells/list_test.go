package cells_test

import (
	"errors"
	"testing"

	"github.com/delaneyj/dashcells/cells"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMutations(t *testing.T) {
	rt := cells.NewRuntime()
	l := cells.NewList(rt, "a", "b")

	var changes []cells.ListChange[string]
	l.OnChange(func(c cells.ListChange[string]) {
		changes = append(changes, c)
	})

	l.Append("c")
	l.Insert(0, "z")
	l.Set(1, "A")
	l.Set(1, "A")
	assert.True(t, l.Remove("b"))
	assert.False(t, l.Remove("missing"))
	l.RemoveAt(0)

	assert.Equal(t, []string{"A", "c"}, l.Values())
	assert.Equal(t, []cells.ListChange[string]{
		{Action: cells.ListAdd, Index: 2, New: "c"},
		{Action: cells.ListAdd, Index: 0, New: "z"},
		{Action: cells.ListReplace, Index: 1, Old: "a", New: "A"},
		{Action: cells.ListRemove, Index: 2, Old: "b"},
		{Action: cells.ListRemove, Index: 0, Old: "z"},
	}, changes)

	l.Clear()
	assert.Equal(t, 0, l.Len())
	assert.Equal(t, cells.ListChange[string]{Action: cells.ListReset, Index: -1}, changes[len(changes)-1])
}

func TestListTracksCountAndItems(t *testing.T) {
	rt := cells.NewRuntime()
	l := cells.NewList(rt, 1, 2, 3)

	lenRuns, itemRuns := 0, 0
	rt.WatchEffect(func() {
		lenRuns++
		l.Len()
	})
	rt.WatchEffect(func() {
		itemRuns++
		l.At(0)
	})

	// replacing an element leaves the count alone
	l.Set(2, 30)
	assert.Equal(t, 1, lenRuns)
	assert.Equal(t, 2, itemRuns)

	l.Append(4)
	assert.Equal(t, 2, lenRuns)
	assert.Equal(t, 3, itemRuns)

	l.Replace([]int{9})
	assert.Equal(t, 3, lenRuns)
	assert.Equal(t, 4, itemRuns)
	assert.Equal(t, map[string]int{"Count": 1, "Item[]": 1}, rt.Subscribers(l.Owner()))
}

func TestListIndexOutOfRangePanics(t *testing.T) {
	rt := cells.NewRuntime()
	l := cells.NewList(rt, 1)

	for name, fn := range map[string]func(){
		"At":       func() { l.At(1) },
		"PeekAt":   func() { l.PeekAt(-1) },
		"Set":      func() { l.Set(5, 0) },
		"RemoveAt": func() { l.RemoveAt(1) },
		"Insert":   func() { l.Insert(2, 0) },
	} {
		t.Run(name, func(t *testing.T) {
			err := recoverError(t, fn)
			assert.True(t, errors.Is(err, cells.ErrIndexOutOfRange), err)
		})
	}

	l.Insert(1, 2)
	assert.Equal(t, []int{1, 2}, l.Values())
}

func TestListIsolatesInput(t *testing.T) {
	rt := cells.NewRuntime()
	items := []int{1, 2}
	l := cells.NewList(rt, items...)
	items[0] = 100

	vals := l.Values()
	vals[1] = 200
	assert.Equal(t, []int{1, 2}, l.Values())
	assert.True(t, l.Contains(2))
	assert.Equal(t, -1, l.IndexOf(100))
}

func TestListFuncEquality(t *testing.T) {
	type row struct {
		id   int
		name string
	}
	rt := cells.NewRuntime()
	l := cells.NewListFunc(rt, func(a, b row) bool { return a.id == b.id }, row{1, "a"}, row{2, "b"})

	assert.Equal(t, 1, l.IndexOf(row{id: 2}))
	assert.True(t, l.Equal(row{1, "x"}, row{1, "y"}))

	notified := 0
	l.OnChange(func(cells.ListChange[row]) { notified++ })
	l.Set(0, row{1, "renamed"})
	assert.Equal(t, 0, notified)
	require.Equal(t, "a", l.PeekAt(0).name)
}

func TestListActionString(t *testing.T) {
	assert.Equal(t, "add", cells.ListAdd.String())
	assert.Equal(t, "reset", cells.ListReset.String())
	assert.Equal(t, "unknown", cells.ListAction(42).String())
}
