package cells

// Watch tracks the reads made by source and, whenever one of them triggers,
// re-evaluates source and passes the result to callback.
//
// callback is not invoked on registration, only on subsequent triggers. It runs
// inside a gap, so only source's reads are dependencies.
func Watch[T any](rt *Runtime, source func() T, callback func(T)) (stop func()) {
	return rt.watch(
		func() {
			source()
		},
		func() {
			v := source()
			rt.Gap(func() {
				callback(v)
			})
		},
	)
}

// Untracked evaluates fn with no active effect.
func Untracked[T any](rt *Runtime, fn func() T) T {
	var v T
	rt.Gap(func() {
		v = fn()
	})
	return v
}

// Source is one typed read closure of a multi-source watch. The concrete
// variants are built with Func and From.
type Source interface {
	read() any
}

type funcSource[T any] struct {
	fn func() T
}

func (s funcSource[T]) read() any {
	return s.fn()
}

type readerSource[T any] struct {
	r Reader[T]
}

func (s readerSource[T]) read() any {
	return s.r.Get()
}

// Func wraps a read closure as a Source.
func Func[T any](fn func() T) Source {
	return funcSource[T]{fn: fn}
}

// From wraps a Cell or Computed as a Source.
func From[T any](r Reader[T]) Source {
	return readerSource[T]{r: r}
}

// Values holds one result per source, in source order.
type Values []any

// ValueOf returns the i-th value as a T. ok is false when i is out of range or
// the source at i does not produce a T.
func ValueOf[T any](vals Values, i int) (v T, ok bool) {
	if i < 0 || i >= len(vals) {
		return v, false
	}
	v, ok = vals[i].(T)
	return v, ok
}

// WatchSources is Watch over a heterogeneous list of sources. Every trigger of
// any source re-reads all of them and calls callback once.
func WatchSources(rt *Runtime, sources []Source, callback func(Values)) (stop func()) {
	readAll := func() Values {
		vals := make(Values, len(sources))
		for i, s := range sources {
			vals[i] = s.read()
		}
		return vals
	}
	return Watch(rt, readAll, callback)
}
