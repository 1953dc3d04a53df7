package flu

import (
	"fmt"

	"github.com/KasperOmsK/flu/internal/bucket"
	"github.com/KasperOmsK/flu/internal/iterx"
	"github.com/KasperOmsK/flu/internal/ring"
)

// Group is a key together with the values that produced it, in the order
// they were seen. Items is never empty.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Chunk groups incoming values into slices of the given size and returns a
// Pipe producing those slices.
//
// A chunk is emitted as soon as it is full, so Chunk never reads ahead of
// demand. The final chunk may be smaller than chunkSize. Every chunk has its
// own backing array and may be retained by the caller.
//
// Chunk panics with ErrInvalidSize if chunkSize is not positive.
func Chunk[T any](p Pipe[T], chunkSize int) Pipe[[]T] {
	if chunkSize <= 0 {
		precondition("Chunk", ErrInvalidSize, fmt.Sprintf("got %d", chunkSize))
	}
	seq := p.take("Chunk")

	return From(func(yield func([]T) bool) {
		accum := make([]T, 0, chunkSize)
		for v := range seq {
			accum = append(accum, v)
			if len(accum) == chunkSize {
				if !yield(accum) {
					return
				}
				accum = make([]T, 0, chunkSize)
			}
		}

		if len(accum) > 0 {
			yield(accum)
		}
	})
}

// Window returns a Pipe of overlapping windows of exactly windowSize
// consecutive values, advancing by one value at a time.
//
// A source with fewer than windowSize values produces no windows. Every
// window is a fresh slice and may be retained by the caller.
//
// Window panics with ErrInvalidSize if windowSize is not positive.
func Window[T any](p Pipe[T], windowSize int) Pipe[[]T] {
	if windowSize <= 0 {
		precondition("Window", ErrInvalidSize, fmt.Sprintf("got %d", windowSize))
	}
	seq := p.take("Window")

	return From(iterx.Drive(seq, func(next func() (T, bool)) iterx.Stage[[]T] {
		return &windowStage[T]{next: next, buf: ring.New[T](windowSize)}
	}))
}

type windowPhase int

const (
	windowFilling windowPhase = iota
	windowSliding
	windowExhausted
)

type windowStage[T any] struct {
	next  func() (T, bool)
	buf   *ring.Buffer[T]
	phase windowPhase
}

func (w *windowStage[T]) Next() ([]T, bool) {
	switch w.phase {
	case windowFilling:
		for !w.buf.Full() {
			v, ok := w.next()
			if !ok {
				w.exhaust()
				return nil, false
			}
			w.buf.Push(v)
		}
		w.phase = windowSliding
		return w.buf.Snapshot(), true

	case windowSliding:
		w.buf.PopFront()
		v, ok := w.next()
		if !ok {
			w.exhaust()
			return nil, false
		}
		w.buf.Push(v)
		return w.buf.Snapshot(), true
	}

	return nil, false
}

func (w *windowStage[T]) exhaust() {
	w.phase = windowExhausted
	w.buf = nil
}

// GroupBy partitions values by the key returned by keyFunc and returns a Pipe
// producing one Group per distinct key.
//
// GroupBy is not streaming: the first pull drains the entire input, calling
// keyFunc once per value, before the first Group is produced. It must not be
// used on infinite inputs. When the input is already sorted by key,
// GroupAdjacent produces the same groups without buffering.
//
// Values keep their input order within a group. Groups are produced in the
// order their key was first seen; callers should not rely on any particular
// order across groups.
func GroupBy[T any, K comparable](p Pipe[T], keyFunc func(T) K) Pipe[Group[K, T]] {
	seq := p.take("GroupBy")
	return From(func(yield func(Group[K, T]) bool) {
		groups := bucket.Build(seq, keyFunc)
		for k, items := range groups.All() {
			if !yield(Group[K, T]{Key: k, Items: items}) {
				return
			}
		}
	})
}

// GroupAdjacent groups consecutive input values according to a key function
// and returns a Pipe producing those groups.
//
// GroupAdjacent does not reorder values; values are grouped only when they
// appear consecutively with the same key. When the key returned by keyFunc
// changes, the current group is emitted and a new group is started.
//
// For example, given input values:
//
//	A, A, B, B, A
//
// GroupAdjacent will emit:
//
//	[A, A], [B, B], [A]
func GroupAdjacent[T any, K comparable](p Pipe[T], keyFunc func(T) K) Pipe[Group[K, T]] {
	seq := p.take("GroupAdjacent")
	return From(func(yield func(Group[K, T]) bool) {
		var current Group[K, T]
		for v := range seq {
			k := keyFunc(v)
			if k != current.Key && len(current.Items) > 0 {
				if !yield(current) {
					return
				}
				current = Group[K, T]{}
			}
			current.Key = k
			current.Items = append(current.Items, v)
		}

		// yield the last group
		if len(current.Items) > 0 {
			yield(current)
		}
	})
}

// AggregateAdjacent groups consecutive values by key and folds each group
// with user-supplied callbacks, producing one aggregated value per group.
//
// It is equivalent to GroupAdjacent followed by Map, but does not allocate a
// slice per group, which makes it preferable when groups may be large.
//
// initFunc is called when a new group starts. It receives the first value of
// the group and returns the initial accumulator. updateFunc is then called
// for every value of the group, including the first, and updates the
// accumulator in place.
//
// For example, to sum values in each group:
//
//	initFunc := func(v int) int {
//	    return 0
//	}
//
//	updateFunc := func(acc *int, v int) {
//	    *acc += v
//	}
func AggregateAdjacent[In any, K comparable, Out any](
	p Pipe[In],
	keyFunc func(In) K,
	initFunc func(first In) Out,
	updateFunc func(acc *Out, item In)) Pipe[Out] {

	seq := p.take("AggregateAdjacent")
	return From(func(yield func(Out) bool) {
		var acc *Out
		var currentGroupKey K
		for v := range seq {
			k := keyFunc(v)
			if k != currentGroupKey && acc != nil {
				if !yield(*acc) {
					return
				}
				acc = nil
			}

			if acc == nil {
				// new group
				newAcc := initFunc(v)
				acc = &newAcc
			}

			currentGroupKey = k
			updateFunc(acc, v)
		}

		if acc != nil {
			yield(*acc)
		}
	})
}
