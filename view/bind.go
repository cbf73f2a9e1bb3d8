package view

import "github.com/delaneyj/dashcells/cells"

// BindSelector keeps v's selector in step with a reactive key: pick maps the
// current key to a selector, nil meaning unsorted. The selector is applied
// once immediately and again on every change of key.
func BindSelector[T, K any](rt *cells.Runtime, v *Sorted[T], key func() K, pick func(K) Selector[T]) (stop func()) {
	stop = cells.Watch(rt, key, func(k K) {
		v.SetSelector(pick(k))
	})
	v.SetSelector(pick(cells.Untracked(rt, key)))
	return stop
}
