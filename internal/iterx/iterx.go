package iterx

import (
	"iter"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func FromChan[T any](in <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}

func Empty[T any]() iter.Seq[T] {
	return func(func(T) bool) {}
}

// Stage is an operator state machine that produces one output element per
// call to Next. Next reports false once the stage is exhausted, and keeps
// reporting false afterwards.
type Stage[T any] interface {
	Next() (T, bool)
}

// Drive turns a pull-driven stage back into an iter.Seq.
//
// build receives the upstream's next function and is called once per
// iteration of the returned sequence, so every iteration gets a fresh stage.
// The upstream is released when the consumer stops or the stage is exhausted.
func Drive[In, Out any](upstream iter.Seq[In], build func(next func() (In, bool)) Stage[Out]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		next, stop := iter.Pull(upstream)
		defer stop()

		stage := build(next)
		for {
			v, ok := stage.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
