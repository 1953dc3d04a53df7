// Package ring implements a fixed-capacity double-ended buffer used by the
// sliding window stage.
package ring

// Buffer holds up to a fixed number of elements in insertion order.
type Buffer[T any] struct {
	items []T
	head  int
	size  int
}

// New returns an empty buffer with the given capacity.
// New panics if capacity is not positive.
func New[T any](capacity int) *Buffer[T] {
	if capacity <= 0 {
		panic("ring.New: capacity must be positive")
	}
	return &Buffer[T]{items: make([]T, capacity)}
}

func (b *Buffer[T]) Full() bool { return b.size == len(b.items) }

// Push appends v at the back. It panics if the buffer is full; callers make
// room with PopFront first.
func (b *Buffer[T]) Push(v T) {
	if b.Full() {
		panic("ring.Push: buffer is full")
	}
	b.items[(b.head+b.size)%len(b.items)] = v
	b.size++
}

// PopFront removes and returns the oldest element.
func (b *Buffer[T]) PopFront() (T, bool) {
	var zero T
	if b.size == 0 {
		return zero, false
	}

	v := b.items[b.head]
	b.items[b.head] = zero // release the reference
	b.head = (b.head + 1) % len(b.items)
	b.size--
	return v, true
}

// Snapshot copies the buffered elements, oldest first, into a new slice.
func (b *Buffer[T]) Snapshot() []T {
	out := make([]T, b.size)
	n := copy(out, b.items[b.head:min(b.head+b.size, len(b.items))])
	copy(out[n:], b.items[:b.size-n])
	return out
}
