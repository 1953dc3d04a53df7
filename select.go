package flu

import "github.com/go-softwarelab/common/pkg/seq"

// Predicate reports whether a value should be kept.
type Predicate[T any] func(item T) bool

// Filter returns a Pipe that yields only the values for which predicate
// returns true.
func (p Pipe[T]) Filter(predicate Predicate[T]) Pipe[T] {
	return From(seq.Filter(p.take("Filter"), predicate))
}

// Take returns a Pipe yielding at most the first n values. The upstream is
// not pulled past the n-th value, and not at all when n <= 0.
func (p Pipe[T]) Take(n int) Pipe[T] {
	in := p.take("Take")
	return From(func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		remaining := n
		for v := range in {
			if !yield(v) {
				return
			}
			remaining--
			if remaining == 0 {
				return
			}
		}
	})
}

// Skip returns a Pipe that discards the first n values and yields the rest.
// A non-positive n yields every value.
func (p Pipe[T]) Skip(n int) Pipe[T] {
	return From(seq.Skip(p.take("Skip"), n))
}

// TakeWhile returns a Pipe yielding values until predicate first returns
// false. The value that fails the predicate is dropped.
func (p Pipe[T]) TakeWhile(predicate Predicate[T]) Pipe[T] {
	return From(seq.TakeWhile(p.take("TakeWhile"), predicate))
}

// DropWhile returns a Pipe that discards values while predicate returns true,
// then yields the first failing value and everything after it.
//
// The predicate is not called again once it has returned false.
func (p Pipe[T]) DropWhile(predicate Predicate[T]) Pipe[T] {
	return From(seq.SkipWhile(p.take("DropWhile"), predicate))
}

// Unique returns a Pipe yielding the first occurrence of each distinct value.
//
// Every distinct value is remembered for as long as the Pipe is iterated, so
// memory grows with the number of distinct values.
func Unique[T comparable](p Pipe[T]) Pipe[T] {
	return From(seq.Uniq(p.take("Unique")))
}

// UniqueBy is like Unique but compares values by the key returned by keyFunc.
// The first value seen for each key is kept.
func UniqueBy[T any, K comparable](p Pipe[T], keyFunc func(T) K) Pipe[T] {
	return From(seq.UniqBy(p.take("UniqueBy"), keyFunc))
}
