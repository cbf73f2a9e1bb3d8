package view

import (
	"cmp"
	"strconv"
	"strings"
)

type KeyKind uint8

const (
	KindNone KeyKind = iota
	KindInt
	KindFloat
	KindString
)

// SortKey is an orderable key of one of a few kinds. Keys of different kinds
// order by kind; the zero key sorts first.
type SortKey struct {
	kind KeyKind
	s    string
	f    float64
	i    int64
}

func StringKey(s string) SortKey {
	return SortKey{kind: KindString, s: s}
}

func FloatKey(f float64) SortKey {
	return SortKey{kind: KindFloat, f: f}
}

func IntKey(i int64) SortKey {
	return SortKey{kind: KindInt, i: i}
}

func (k SortKey) Kind() KeyKind {
	return k.kind
}

func (k SortKey) Compare(o SortKey) int {
	if k.kind != o.kind {
		return cmp.Compare(k.kind, o.kind)
	}
	switch k.kind {
	case KindString:
		return strings.Compare(k.s, o.s)
	case KindFloat:
		return cmp.Compare(k.f, o.f)
	case KindInt:
		return cmp.Compare(k.i, o.i)
	default:
		return 0
	}
}

func (k SortKey) String() string {
	switch k.kind {
	case KindString:
		return k.s
	case KindFloat:
		return strconv.FormatFloat(k.f, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(k.i, 10)
	default:
		return ""
	}
}

// Selector extracts the sort key of an element.
type Selector[T any] func(T) SortKey

func ByString[T any](fn func(T) string) Selector[T] {
	return func(v T) SortKey { return StringKey(fn(v)) }
}

func ByFloat[T any](fn func(T) float64) Selector[T] {
	return func(v T) SortKey { return FloatKey(fn(v)) }
}

func ByInt[T any](fn func(T) int64) Selector[T] {
	return func(v T) SortKey { return IntKey(fn(v)) }
}
