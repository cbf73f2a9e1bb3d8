package view_test

import (
	"slices"
	"testing"

	"github.com/delaneyj/dashcells/cells"
	"github.com/delaneyj/dashcells/view"
	"pgregory.net/rapid"
)

// The order is a permutation of the list, ascending by key, and ties keep
// their list order.
func TestOrderIsStablePermutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.IntRange(0, 5)).Draw(t, "items")
		rt := cells.NewRuntime()
		v := view.NewSorted(rt, cells.NewList(rt, items...))
		v.SetSelector(view.ByInt(func(i int) int64 { return int64(i) }))

		order := v.Order()
		if len(order) != len(items) {
			t.Fatalf("order has %d entries for %d items", len(order), len(items))
		}
		seen := make([]bool, len(items))
		for _, raw := range order {
			if raw < 0 || raw >= len(items) || seen[raw] {
				t.Fatalf("order %v is not a permutation", order)
			}
			seen[raw] = true
		}
		for p := 1; p < len(order); p++ {
			a, b := items[order[p-1]], items[order[p]]
			if a > b || (a == b && order[p-1] > order[p]) {
				t.Fatalf("order %v is not a stable ascending sort of %v", order, items)
			}
		}
	})
}

func TestImposeMatchesView(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		items := rapid.SliceOf(rapid.StringMatching(`[a-c]{0,2}`)).Draw(t, "items")
		rt := cells.NewRuntime()
		list := cells.NewList(rt, items...)
		v := view.NewSorted(rt, list)
		v.SetSelector(view.ByString(identity))

		want := v.Values()
		v.Impose()
		if got := list.Values(); !slices.Equal(got, want) {
			t.Fatalf("imposed list %v, view showed %v", got, want)
		}
		if v.IsSorted() {
			t.Fatalf("selector survived Impose")
		}
	})
}
