// Package view provides a sortable projection over a cells.List.
//
// A Sorted view derives a permutation of the list from a Selector and caches
// it until the list changes or a new selector is set. Impose writes the
// derived order back into the list.
package view

import (
	"slices"

	"github.com/delaneyj/dashcells/cells"
)

const (
	propItems    = "Item[]"
	propSelector = "Selector"
)

// Sorted is a view over a list. Without a selector it is the list itself;
// with one, position i shows the element at Order()[i].
//
// The cached permutation is dropped whenever the list changes or the selector
// is replaced, and rebuilt on the next read.
type Sorted[T any] struct {
	rt        *cells.Runtime
	owner     cells.OwnerKey
	list      *cells.List[T]
	selector  Selector[T]
	order     []int
	observers cells.Observers[cells.ListChange[T]]
	cancel    func()
}

// NewSorted creates an unsorted view over list. The view does not own list:
// changes made to list directly invalidate the view too.
func NewSorted[T any](rt *cells.Runtime, list *cells.List[T]) *Sorted[T] {
	v := &Sorted[T]{
		rt:    rt,
		owner: rt.NewOwner(),
		list:  list,
	}
	v.cancel = list.OnChange(v.listChanged)
	return v
}

func (v *Sorted[T]) IsSorted() bool {
	return v.selector != nil
}

func (v *Sorted[T]) Selector() Selector[T] {
	v.rt.Track(v.owner, propSelector)
	return v.selector
}

// SetSelector replaces the ordering key, nil for none, and broadcasts a reset.
func (v *Sorted[T]) SetSelector(sel Selector[T]) {
	v.selector = sel
	v.order = nil
	v.rt.Trigger(v.owner, propSelector)
	v.reset()
}

// Order returns a copy of the permutation, or nil when no selector is set.
func (v *Sorted[T]) Order() []int {
	v.rt.Track(v.owner, propItems)
	if v.selector == nil {
		return nil
	}
	v.ensure()
	return slices.Clone(v.order)
}

func (v *Sorted[T]) Len() int {
	return v.list.Len()
}

func (v *Sorted[T]) At(i int) T {
	v.rt.Track(v.owner, propItems)
	return v.list.PeekAt(v.resolve(i))
}

// IndexOf returns the first view position holding x, or -1.
func (v *Sorted[T]) IndexOf(x T) int {
	v.rt.Track(v.owner, propItems)
	for p, n := 0, v.list.PeekLen(); p < n; p++ {
		if v.list.Equal(v.list.PeekAt(v.resolve(p)), x) {
			return p
		}
	}
	return -1
}

// Values returns the elements in view order.
func (v *Sorted[T]) Values() []T {
	v.rt.Track(v.owner, propItems)
	n := v.list.PeekLen()
	out := make([]T, n)
	for p := range out {
		out[p] = v.list.PeekAt(v.resolve(p))
	}
	return out
}

// Insert puts x into the list just before the element shown at position i, or
// at the end when i == Len(). A sorted view then shows x wherever its key
// belongs.
func (v *Sorted[T]) Insert(i int, x T) {
	n := v.list.PeekLen()
	if i < 0 || i > n {
		panic(cells.IndexError(i, n))
	}
	raw := i
	if i < n {
		raw = v.resolve(i)
	}
	v.list.Insert(raw, x)
}

// Add appends x and returns the position it is shown at.
func (v *Sorted[T]) Add(x T) int {
	raw := v.list.PeekLen()
	v.list.Append(x)
	if v.selector == nil {
		return raw
	}
	v.ensure()
	return slices.Index(v.order, raw)
}

// Set writes x through the permutation. The write may move x, so the cached
// order is dropped even when the list saw an equal value.
func (v *Sorted[T]) Set(i int, x T) {
	v.list.Set(v.resolve(i), x)
	if v.selector != nil && v.order != nil {
		v.order = nil
		v.reset()
	}
}

func (v *Sorted[T]) RemoveAt(i int) {
	v.list.RemoveAt(v.resolve(i))
}

func (v *Sorted[T]) Remove(x T) bool {
	p := v.IndexOf(x)
	if p < 0 {
		return false
	}
	v.RemoveAt(p)
	return true
}

func (v *Sorted[T]) Clear() {
	v.list.Clear()
}

// Impose reorders the list to match the view, then clears the selector. Reads
// afterwards use raw positions, which now show the same order.
func (v *Sorted[T]) Impose() {
	if v.selector == nil {
		return
	}
	v.ensure()
	ordered := make([]T, len(v.order))
	for p, raw := range v.order {
		ordered[p] = v.list.PeekAt(raw)
	}
	v.selector = nil
	v.order = nil
	v.list.Replace(ordered)
	v.rt.Trigger(v.owner, propSelector)
}

// Invalidate drops the cached order, for keys that changed without a list
// write.
func (v *Sorted[T]) Invalidate() {
	if v.selector == nil {
		return
	}
	v.order = nil
	v.reset()
}

// OnChange registers an external observer. A sorted view reports every change
// as a reset; an unsorted one forwards the list's own changes.
func (v *Sorted[T]) OnChange(fn func(cells.ListChange[T])) (cancel func()) {
	return v.observers.Add(fn)
}

func (v *Sorted[T]) Owner() cells.OwnerKey {
	return v.owner
}

// Release detaches the view from its list. The list itself is left alone.
func (v *Sorted[T]) Release() {
	v.cancel()
	v.rt.Release(v.owner)
}

func (v *Sorted[T]) listChanged(change cells.ListChange[T]) {
	if v.selector != nil {
		v.order = nil
		v.reset()
		return
	}
	v.rt.Trigger(v.owner, propItems)
	v.observers.Notify(v.rt, change)
}

func (v *Sorted[T]) reset() {
	v.rt.Trigger(v.owner, propItems)
	v.observers.Notify(v.rt, cells.ListChange[T]{Action: cells.ListReset, Index: -1})
}

func (v *Sorted[T]) resolve(i int) int {
	n := v.list.PeekLen()
	if i < 0 || i >= n {
		panic(cells.IndexError(i, n))
	}
	if v.selector == nil {
		return i
	}
	v.ensure()
	return v.order[i]
}

// ensure rebuilds the permutation with a stable sort on the selector's keys.
func (v *Sorted[T]) ensure() {
	if v.order != nil || v.selector == nil {
		return
	}
	n := v.list.PeekLen()
	keys := make([]SortKey, n)
	v.rt.Gap(func() {
		for i := range keys {
			keys[i] = v.selector(v.list.PeekAt(i))
		}
	})
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return keys[a].Compare(keys[b])
	})
	v.order = order
}
