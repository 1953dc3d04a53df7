package flu_test

import (
	"iter"
)

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

// counted wraps seq and records how many values were pulled from it.
func counted[T any](seq iter.Seq[T]) (iter.Seq[T], *int) {
	pulls := new(int)
	return func(yield func(T) bool) {
		for v := range seq {
			*pulls++
			if !yield(v) {
				return
			}
		}
	}, pulls
}

// naturals is an infinite sequence 0, 1, 2, ...
func naturals(yield func(int) bool) {
	for i := 0; ; i++ {
		if !yield(i) {
			return
		}
	}
}
