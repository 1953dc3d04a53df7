package flu

import (
	"cmp"
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"
	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

// Collect consumes the Pipe and returns all of its values in order.
// The result is never nil.
func (p Pipe[T]) Collect() []T {
	return seq.ToSlice(p.take("Collect"), make([]T, 0))
}

// Count consumes the Pipe and returns the number of values it produced.
func (p Pipe[T]) Count() int {
	return seq.Count(p.take("Count"))
}

// ForEach consumes the Pipe, calling fn for every value.
func (p Pipe[T]) ForEach(fn func(T)) {
	seq.ForEach(p.take("ForEach"), fn)
}

// First pulls exactly one value from the Pipe and returns it, or an empty
// optional if the Pipe produced nothing.
func (p Pipe[T]) First() optional.Value[T] {
	for v := range p.take("First") {
		return optional.Some(v)
	}
	return optional.Empty[T]()
}

// Last consumes the Pipe and returns its final value.
func (p Pipe[T]) Last() optional.Value[T] {
	last := optional.Empty[T]()
	for v := range p.take("Last") {
		last = optional.Some(v)
	}
	return last
}

// Reduce combines all values left to right with fn, using the first value as
// the initial accumulator. It returns an empty optional for an empty Pipe.
func (p Pipe[T]) Reduce(fn func(acc, item T) T) optional.Value[T] {
	var acc T
	seen := false
	for v := range p.take("Reduce") {
		if !seen {
			acc, seen = v, true
			continue
		}
		acc = fn(acc, v)
	}
	if !seen {
		return optional.Empty[T]()
	}
	return optional.Some(acc)
}

// Any reports whether predicate holds for at least one value. It stops
// pulling at the first value that satisfies predicate.
func (p Pipe[T]) Any(predicate Predicate[T]) bool {
	return seq.Exists(p.take("Any"), predicate)
}

// All reports whether predicate holds for every value; it is true for an
// empty Pipe. It stops pulling at the first value that fails predicate.
func (p Pipe[T]) All(predicate Predicate[T]) bool {
	return seq.Every(p.take("All"), predicate)
}

// Fold combines all values left to right into an accumulator starting at
// init. It returns init for an empty Pipe.
func Fold[T, A any](p Pipe[T], init A, fn func(acc A, item T) A) A {
	return seq.Reduce(p.take("Fold"), fn, init)
}

// Sum returns the sum of all values, or zero for an empty Pipe.
func Sum[T types.Number](p Pipe[T]) T {
	var zero T
	return seq.Reduce(p.take("Sum"), func(total, v T) T { return total + v }, zero)
}

// Min returns the smallest value according to cmp.Compare, so NaN is
// treated as smaller than any other float. Among equal values the first one
// wins.
func Min[T cmp.Ordered](p Pipe[T]) optional.Value[T] {
	return extreme(p.take("Min"), cmp.Compare[T], -1)
}

// Max returns the largest value according to cmp.Compare. Among equal values
// the first one wins.
func Max[T cmp.Ordered](p Pipe[T]) optional.Value[T] {
	return extreme(p.take("Max"), cmp.Compare[T], 1)
}

// MinBy returns the smallest value according to compare, which follows the
// cmp.Compare convention. Among equal values the first one wins.
func MinBy[T any](p Pipe[T], compare func(a, b T) int) optional.Value[T] {
	return extreme(p.take("MinBy"), compare, -1)
}

// MaxBy returns the largest value according to compare. Among equal values
// the first one wins.
func MaxBy[T any](p Pipe[T], compare func(a, b T) int) optional.Value[T] {
	return extreme(p.take("MaxBy"), compare, 1)
}

// extreme keeps the first value for which no later value compares strictly
// further in direction dir.
func extreme[T any](in iter.Seq[T], compare func(a, b T) int, dir int) optional.Value[T] {
	var best T
	found := false
	for v := range in {
		if !found || compare(v, best)*dir > 0 {
			best, found = v, true
		}
	}
	if !found {
		return optional.Empty[T]()
	}
	return optional.Some(best)
}
