package cells

// Reader is the read side shared by Cell and Computed.
type Reader[T any] interface {
	// Get returns the value and tracks it for the active effect.
	Get() T
	// Peek returns the value without tracking.
	Peek() T
}

// Cell is a mutable, trackable value.
type Cell[T any] struct {
	rt        *Runtime
	owner     OwnerKey
	value     T
	equal     func(a, b T) bool
	observers Observers[T]
}

// NewCell creates a cell whose writes are suppressed when equal by ==.
func NewCell[T comparable](rt *Runtime, initial T) *Cell[T] {
	return NewCellFunc(rt, initial, func(a, b T) bool { return a == b })
}

// NewCellFunc creates a cell that uses equal to suppress no-op writes.
func NewCellFunc[T any](rt *Runtime, initial T, equal func(a, b T) bool) *Cell[T] {
	return &Cell[T]{
		rt:    rt,
		owner: rt.NewOwner(),
		value: initial,
		equal: equal,
	}
}

// Get returns the value and tracks it for the active effect.
func (c *Cell[T]) Get() T {
	c.rt.track(c.owner, propValue)
	return c.value
}

// Peek returns the value without tracking.
func (c *Cell[T]) Peek() T {
	return c.value
}

// Set stores v and re-runs dependents, then notifies observers. Writing a value
// equal to the current one does nothing.
func (c *Cell[T]) Set(v T) {
	if c.equal(c.value, v) {
		return
	}
	c.value = v
	c.rt.trigger(c.owner, propValue)
	c.observers.Notify(c.rt, v)
}

func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}

// OnChange registers an external observer called after every effective write.
func (c *Cell[T]) OnChange(fn func(T)) (cancel func()) {
	return c.observers.Add(fn)
}

// Owner is the cell's key in the runtime.
func (c *Cell[T]) Owner() OwnerKey {
	return c.owner
}

// Release frees the cell's owner; later writes trigger nothing.
func (c *Cell[T]) Release() {
	c.rt.Release(c.owner)
}
