package cells

import "slices"

type ListAction uint8

const (
	ListAdd ListAction = iota
	ListRemove
	ListReplace
	ListReset
)

func (a ListAction) String() string {
	switch a {
	case ListAdd:
		return "add"
	case ListRemove:
		return "remove"
	case ListReplace:
		return "replace"
	case ListReset:
		return "reset"
	default:
		return "unknown"
	}
}

// ListChange describes one structural change. Index is -1 for resets.
type ListChange[T any] struct {
	Action ListAction
	Index  int
	Old    T
	New    T
}

// List is a trackable sequence. Len tracks "Count"; element reads track
// "Item[]".
type List[T any] struct {
	rt        *Runtime
	owner     OwnerKey
	items     []T
	equal     func(a, b T) bool
	observers Observers[ListChange[T]]
}

func NewList[T comparable](rt *Runtime, items ...T) *List[T] {
	return NewListFunc(rt, func(a, b T) bool { return a == b }, items...)
}

func NewListFunc[T any](rt *Runtime, equal func(a, b T) bool, items ...T) *List[T] {
	return &List[T]{
		rt:    rt,
		owner: rt.NewOwner(),
		items: slices.Clone(items),
		equal: equal,
	}
}

func (l *List[T]) Len() int {
	l.rt.track(l.owner, propCount)
	return len(l.items)
}

func (l *List[T]) At(i int) T {
	l.rt.track(l.owner, propItems)
	l.check(i, len(l.items))
	return l.items[i]
}

func (l *List[T]) IndexOf(v T) int {
	l.rt.track(l.owner, propItems)
	return l.indexOf(v)
}

func (l *List[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	l.rt.track(l.owner, propItems)
	return slices.Clone(l.items)
}

// PeekLen and PeekAt read without tracking.
func (l *List[T]) PeekLen() int {
	return len(l.items)
}

func (l *List[T]) PeekAt(i int) T {
	l.check(i, len(l.items))
	return l.items[i]
}

// Equal reports whether a and b are equal under the list's equality.
func (l *List[T]) Equal(a, b T) bool {
	return l.equal(a, b)
}

func (l *List[T]) Append(v T) {
	l.items = append(l.items, v)
	l.changed(ListChange[T]{Action: ListAdd, Index: len(l.items) - 1, New: v})
}

func (l *List[T]) Insert(i int, v T) {
	l.check(i, len(l.items)+1)
	l.items = slices.Insert(l.items, i, v)
	l.changed(ListChange[T]{Action: ListAdd, Index: i, New: v})
}

// Set replaces the element at i. Writing an equal value does nothing.
func (l *List[T]) Set(i int, v T) {
	l.check(i, len(l.items))
	old := l.items[i]
	if l.equal(old, v) {
		return
	}
	l.items[i] = v
	l.changed(ListChange[T]{Action: ListReplace, Index: i, Old: old, New: v})
}

func (l *List[T]) RemoveAt(i int) {
	l.check(i, len(l.items))
	old := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	l.changed(ListChange[T]{Action: ListRemove, Index: i, Old: old})
}

// Remove deletes the first element equal to v.
func (l *List[T]) Remove(v T) bool {
	i := l.indexOf(v)
	if i < 0 {
		return false
	}
	l.RemoveAt(i)
	return true
}

func (l *List[T]) Clear() {
	l.Replace(nil)
}

// Replace swaps in a copy of items as a single reset.
func (l *List[T]) Replace(items []T) {
	l.items = slices.Clone(items)
	l.changed(ListChange[T]{Action: ListReset, Index: -1})
}

// OnChange registers an external observer of structural changes.
func (l *List[T]) OnChange(fn func(ListChange[T])) (cancel func()) {
	return l.observers.Add(fn)
}

func (l *List[T]) Owner() OwnerKey {
	return l.owner
}

func (l *List[T]) Release() {
	l.rt.Release(l.owner)
}

func (l *List[T]) indexOf(v T) int {
	return slices.IndexFunc(l.items, func(x T) bool { return l.equal(x, v) })
}

func (l *List[T]) changed(change ListChange[T]) {
	if change.Action != ListReplace {
		l.rt.trigger(l.owner, propCount)
	}
	l.rt.trigger(l.owner, propItems)
	l.observers.Notify(l.rt, change)
}

func (l *List[T]) check(i, n int) {
	if i < 0 || i >= n {
		panic(IndexError(i, n))
	}
}
