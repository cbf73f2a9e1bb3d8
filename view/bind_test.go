package view_test

import (
	"testing"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/view"
	"github.com/stretchr/testify/assert"
)

func TestBindSelector(t *testing.T) {
	rt := cells.NewRuntime()
	list := cells.NewList(rt, 3, 1, 2)
	v := view.NewSorted(rt, list)
	descending := cells.NewCell(rt, false)

	stop := view.BindSelector(rt, v, descending.Get, func(desc bool) view.Selector[int] {
		if desc {
			return view.ByInt(func(i int) int64 { return -int64(i) })
		}
		return view.ByInt(func(i int) int64 { return int64(i) })
	})
	assert.Equal(t, []int{1, 2, 3}, v.Values())

	descending.Set(true)
	assert.Equal(t, []int{3, 2, 1}, v.Values())

	stop()
	descending.Set(false)
	assert.Equal(t, []int{3, 2, 1}, v.Values())
}

func TestBindSelectorNilMeansUnsorted(t *testing.T) {
	rt := cells.NewRuntime()
	list := cells.NewList(rt, "b", "a")
	v := view.NewSorted(rt, list)
	sorted := cells.NewCell(rt, true)

	view.BindSelector(rt, v, sorted.Get, func(on bool) view.Selector[string] {
		if !on {
			return nil
		}
		return view.ByString(identity)
	})
	assert.True(t, v.IsSorted())

	sorted.Set(false)
	assert.False(t, v.IsSorted())
	assert.Equal(t, []string{"b", "a"}, v.Values())
}
