// Package iterutil provides small generic streaming helpers shared across
// the compiler: a pull-based Iterator, a bounded-depth Lookahead wrapper
// over one, and a Filter adaptor. None of these know about tokens or source
// files; they are the same generic vocabulary the driver uses to expose a
// lexed file as a stream of *token.Token without the lexer package needing
// to know who is consuming it.
package iterutil

import (
	"context"

	"github.com/vesper-lang/vesperc/internal/optional"
)

type Closer interface {
	Close(ctx context.Context) error
}

// Iterator yields a sequence of values, one per call to Next, until it
// returns a None value.
type Iterator[T any] interface {
	Next(ctx context.Context) optional.Optional[T]
	Closer
}

// Lookahead adds bounded-depth peeking to an Iterator: Lookahead(ctx, 0) is
// the value the next Next call will return, Lookahead(ctx, 1) the one after
// that, and so on up to the depth the wrapper was built with.
type Lookahead[T any] interface {
	Iterator[T]
	Lookahead(ctx context.Context, n uint8) optional.Optional[T]
}

// Filter decides whether a streamed value should be kept.
type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

// FilterFunc adapts a plain function to the Filter interface. Never
// reference this type directly in a signature; use Filter instead.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}

// NewSlice converts a slice of already-known values into an Iterator. The
// driver uses this to hand a fully-lexed token slice back to a caller
// through the same Iterator surface a streaming source would use.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) optional.Optional[T] {
	it.offset++
	if it.offset >= len(it.slice) {
		return optional.None[T]()
	}
	return optional.Some(it.slice[it.offset])
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewIteratorFilter wraps an iterator so that only values passing f are
// returned.
func NewIteratorFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{iter: it, filter: f}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) optional.Optional[T] {
	for {
		v := it.iter.Next(ctx)
		if !v.IsPresent() {
			return v
		}
		if it.filter.Keep(ctx, v.Value()) {
			return v
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewLookahead wraps an iterator in a Lookahead implementation able to peek
// up to n values ahead.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{iter: it, n: n}
}

type lookahead[T any] struct {
	iter  Iterator[T]
	n     uint8
	peeks []optional.Optional[T]
}

func (look *lookahead[T]) init(ctx context.Context) {
	if look.peeks == nil {
		look.peeks = make([]optional.Optional[T], look.n+1)
		for x := 0; x <= int(look.n); x++ {
			look.peeks[x] = look.iter.Next(ctx)
		}
	}
}

func (look *lookahead[T]) Next(ctx context.Context) optional.Optional[T] {
	look.init(ctx)
	v := look.peeks[0]
	copy(look.peeks, look.peeks[1:])
	look.peeks[len(look.peeks)-1] = look.iter.Next(ctx)
	return v
}

func (look *lookahead[T]) Close(ctx context.Context) error {
	return look.iter.Close(ctx)
}

func (look *lookahead[T]) Lookahead(ctx context.Context, n uint8) optional.Optional[T] {
	if look.peeks == nil {
		look.init(ctx)
	}
	if n > look.n {
		return optional.None[T]()
	}
	return look.peeks[n]
}
