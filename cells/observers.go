package cells

// Observers is a list of external change callbacks. Notify runs them inside a
// gap so their reads never become dependencies of the running effect.
type Observers[A any] struct {
	next    uint64
	entries []observer[A]
}

type observer[A any] struct {
	id uint64
	fn func(A)
}

// Add registers fn and returns a function that removes it again.
func (o *Observers[A]) Add(fn func(A)) (cancel func()) {
	o.next++
	id := o.next
	o.entries = append(o.entries, observer[A]{id: id, fn: fn})
	return func() {
		for i, e := range o.entries {
			if e.id == id {
				o.entries = append(o.entries[:i:i], o.entries[i+1:]...)
				return
			}
		}
	}
}

func (o *Observers[A]) Len() int {
	return len(o.entries)
}

// Notify calls every callback, in registration order, with no active effect.
func (o *Observers[A]) Notify(rt *Runtime, a A) {
	if len(o.entries) == 0 {
		return
	}
	entries := o.entries
	rt.Gap(func() {
		for _, e := range entries {
			e.fn(a)
		}
	})
}
