package cells

// Computed is a read-only cell derived from other cells. It recomputes eagerly
// when a dependency triggers; reads never recompute.
type Computed[T any] struct {
	rt        *Runtime
	owner     OwnerKey
	value     T
	equal     func(a, b T) bool
	observers Observers[T]
	stop      func()
}

func NewComputed[T comparable](rt *Runtime, compute func() T) *Computed[T] {
	return NewComputedFunc(rt, compute, func(a, b T) bool { return a == b })
}

// NewComputedFunc evaluates compute immediately inside an effect and again on
// every trigger of what it read. A result equal to the cached value is dropped
// without triggering dependents.
func NewComputedFunc[T any](rt *Runtime, compute func() T, equal func(a, b T) bool) *Computed[T] {
	c := &Computed[T]{
		rt:    rt,
		owner: rt.NewOwner(),
		equal: equal,
	}
	c.stop = rt.WatchEffect(func() {
		v := compute()
		if c.equal(c.value, v) {
			return
		}
		c.value = v
		c.rt.trigger(c.owner, propValue)
		c.observers.Notify(c.rt, v)
	})
	return c
}

func (c *Computed[T]) Get() T {
	c.rt.track(c.owner, propValue)
	return c.value
}

func (c *Computed[T]) Peek() T {
	return c.value
}

func (c *Computed[T]) OnChange(fn func(T)) (cancel func()) {
	return c.observers.Add(fn)
}

func (c *Computed[T]) Owner() OwnerKey {
	return c.owner
}

// Release stops the recomputing effect and frees the owner.
func (c *Computed[T]) Release() {
	c.stop()
	c.rt.Release(c.owner)
}
