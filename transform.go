package flu

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/seq"
	"github.com/go-softwarelab/common/pkg/types"
)

type (
	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// Pair holds two related values, such as an index and its value, or the
	// matching left and right rows of a join.
	Pair[A, B any] = types.Tuple2[A, B]
)

// Map transforms each input value using fn and returns a new Pipe producing
// the mapped values.
func Map[In, Out any](p Pipe[In], fn MapFunc[In, Out]) Pipe[Out] {
	return From(seq.Map(p.take("Map"), fn))
}

// FlatMap transforms each input value using fn and returns a Pipe producing
// the flattened output values.
//
// FlatMap is equivalent to calling Flatten(Map(p, fn)).
func FlatMap[In, Out any](p Pipe[In], fn MapFunc[In, []Out]) Pipe[Out] {
	return Flatten(Map(p, fn))
}

// Flatten converts a Pipe of slices into a Pipe of their elements,
// emitting the items of each slice in order.
func Flatten[T any](p Pipe[[]T]) Pipe[T] {
	return From(seq.FlattenSlices(p.take("Flatten")))
}

// FlattenSeq converts a Pipe of sequences into a Pipe of their elements.
// Each nested sequence is drained completely before the next one is pulled.
// Nil sequences are skipped.
func FlattenSeq[T any](p Pipe[iter.Seq[T]]) Pipe[T] {
	nested := seq.Filter(p.take("FlattenSeq"), func(inner iter.Seq[T]) bool {
		return inner != nil
	})
	return From(seq.Flatten(nested))
}

// Enumerate pairs each value with its zero-based position.
// The position is stored in A and the value in B.
func Enumerate[T any](p Pipe[T]) Pipe[Pair[int, T]] {
	in := p.take("Enumerate")
	return From(func(yield func(Pair[int, T]) bool) {
		i := 0
		for v := range in {
			if !yield(Pair[int, T]{A: i, B: v}) {
				return
			}
			i++
		}
	})
}

// Zip pairs the values of p with the values of other by position, stopping
// as soon as either side runs out.
//
// p is pulled first; when it is exhausted, other is not pulled again.
func Zip[T, U any](p Pipe[T], other iter.Seq[U]) Pipe[Pair[T, U]] {
	in := p.take("Zip")
	if other == nil {
		other = func(func(U) bool) {}
	}
	return From(func(yield func(Pair[T, U]) bool) {
		next, stop := iter.Pull(other)
		defer stop()

		for a := range in {
			b, ok := next()
			if !ok || !yield(Pair[T, U]{A: a, B: b}) {
				return
			}
		}
	})
}
