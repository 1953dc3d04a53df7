package flu

import (
	"iter"

	"github.com/KasperOmsK/flu/internal/iterx"
)

// Pipe is a single-use, lazily evaluated sequence of values of type T.
//
// Every operator and terminal consumes the Pipe it is called on. Using the
// same Pipe twice panics with ErrConsumed; keep the returned Pipe instead.
// The zero Pipe is an empty sequence.
type Pipe[T any] struct {
	s *state[T]
}

type state[T any] struct {
	seq      iter.Seq[T]
	consumed bool
}

// From wraps seq into a Pipe. A nil seq is treated as empty.
//
// Nothing is read from seq until the Pipe is iterated or a terminal is called.
func From[T any](seq iter.Seq[T]) Pipe[T] {
	if seq == nil {
		seq = iterx.Empty[T]()
	}
	return Pipe[T]{s: &state[T]{seq: seq}}
}

// FromSlice returns a Pipe producing the elements of items in order.
func FromSlice[T any](items []T) Pipe[T] {
	return From(iterx.FromSlice(items))
}

// Of returns a Pipe producing the given values in order.
func Of[T any](values ...T) Pipe[T] {
	return FromSlice(values)
}

// take marks the Pipe as consumed and hands its sequence to the caller.
func (p Pipe[T]) take(op string) iter.Seq[T] {
	if p.s == nil {
		return iterx.Empty[T]()
	}
	if p.s.consumed {
		precondition(op, ErrConsumed, "")
	}
	p.s.consumed = true
	return p.s.seq
}

// Values consumes the Pipe and returns its underlying sequence, for use with
// range loops or any function accepting an iter.Seq.
func (p Pipe[T]) Values() iter.Seq[T] {
	return p.take("Values")
}

// Pull consumes the Pipe and converts it into a pull-style iterator.
// Callers must call stop when they are done, as with iter.Pull.
func (p Pipe[T]) Pull() (next func() (T, bool), stop func()) {
	return iter.Pull(p.take("Pull"))
}

// Tap returns a Pipe that calls fn on each value as it flows through,
// without altering the values. Tap panics if fn is nil.
func (p Pipe[T]) Tap(fn func(T)) Pipe[T] {
	if fn == nil {
		precondition("Tap", errNilFunc, "")
	}
	seq := p.take("Tap")
	return From(func(yield func(T) bool) {
		for v := range seq {
			fn(v)
			if !yield(v) {
				return
			}
		}
	})
}
