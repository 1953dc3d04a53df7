package flu

import (
	"iter"

	"github.com/go-softwarelab/common/pkg/optional"

	"github.com/KasperOmsK/flu/internal/bucket"
	"github.com/KasperOmsK/flu/internal/iterx"
)

// InnerJoin pairs every value of left with every value of right that has
// an equal key, and returns a Pipe of those pairs (left in A, right in B).
//
// On the first pull, right is drained completely into a hash table keyed by
// rightKey. left is then consumed lazily: leftKey is called once per left
// value, and each left value produces one pair per matching right value, in
// the order the right values were read. Left values without a match produce
// nothing.
func InnerJoin[L, R any, K comparable](
	left Pipe[L],
	right iter.Seq[R],
	leftKey func(L) K,
	rightKey func(R) K) Pipe[Pair[L, R]] {

	seq := left.take("InnerJoin")
	return From(iterx.Drive(seq, func(next func() (L, bool)) iterx.Stage[Pair[L, R]] {
		return &innerJoin[L, R, K]{m: newMatcher(next, right, leftKey, rightKey, false)}
	}))
}

// LeftJoin is like InnerJoin, but every left value appears in the output at
// least once: a left value without a matching right value produces exactly
// one pair whose B is empty.
func LeftJoin[L, R any, K comparable](
	left Pipe[L],
	right iter.Seq[R],
	leftKey func(L) K,
	rightKey func(R) K) Pipe[Pair[L, optional.Value[R]]] {

	seq := left.take("LeftJoin")
	return From(iterx.Drive(seq, func(next func() (L, bool)) iterx.Stage[Pair[L, optional.Value[R]]] {
		return &leftJoin[L, R, K]{m: newMatcher(next, right, leftKey, rightKey, true)}
	}))
}

type innerJoin[L, R any, K comparable] struct {
	m *matcher[L, R, K]
}

func (j *innerJoin[L, R, K]) Next() (Pair[L, R], bool) {
	l, r, _, ok := j.m.next()
	return Pair[L, R]{A: l, B: r}, ok
}

type leftJoin[L, R any, K comparable] struct {
	m *matcher[L, R, K]
}

func (j *leftJoin[L, R, K]) Next() (Pair[L, optional.Value[R]], bool) {
	l, r, matched, ok := j.m.next()
	if !ok {
		return Pair[L, optional.Value[R]]{}, false
	}
	if !matched {
		return Pair[L, optional.Value[R]]{A: l, B: optional.Empty[R]()}, true
	}
	return Pair[L, optional.Value[R]]{A: l, B: optional.Some(r)}, true
}

type matchState int

const (
	needLeft matchState = iota
	matching
	matchDone
)

// matcher is the hash join state machine shared by both join kinds.
type matcher[L, R any, K comparable] struct {
	nextLeft func() (L, bool)
	leftKey  func(L) K

	right    iter.Seq[R]
	rightKey func(R) K
	buckets  *bucket.Map[K, R]

	// outer makes a left value without matches produce one unmatched row.
	outer bool

	state   matchState
	left    L
	matches []R
	index   int
	emitted bool
}

func newMatcher[L, R any, K comparable](
	nextLeft func() (L, bool),
	right iter.Seq[R],
	leftKey func(L) K,
	rightKey func(R) K,
	outer bool) *matcher[L, R, K] {

	return &matcher[L, R, K]{
		nextLeft: nextLeft,
		leftKey:  leftKey,
		right:    right,
		rightKey: rightKey,
		outer:    outer,
	}
}

// next returns the next joined row. matched is false only for the synthetic
// row of an outer join; ok is false once the left side is exhausted.
func (m *matcher[L, R, K]) next() (l L, r R, matched bool, ok bool) {
	if m.buckets == nil && m.state != matchDone {
		m.build()
	}

	for {
		switch m.state {
		case needLeft:
			v, more := m.nextLeft()
			if !more {
				m.finish()
				continue
			}
			m.left = v
			m.matches = m.buckets.Get(m.leftKey(v))
			m.index = 0
			m.emitted = false
			m.state = matching

		case matching:
			if m.index < len(m.matches) {
				r = m.matches[m.index]
				m.index++
				m.emitted = true
				l = m.left
				if m.index == len(m.matches) {
					m.release()
				}
				return l, r, true, true
			}

			if m.outer && !m.emitted {
				l = m.left
				m.release()
				return l, r, false, true
			}
			m.release()

		case matchDone:
			return l, r, false, false
		}
	}
}

// build drains the right side into the bucket table.
func (m *matcher[L, R, K]) build() {
	right := m.right
	if right == nil {
		right = iterx.Empty[R]()
	}
	m.buckets = bucket.Build(right, m.rightKey)
	m.right = nil
}

// release drops the current left value once no more rows can come from it.
func (m *matcher[L, R, K]) release() {
	var zero L
	m.left = zero
	m.matches = nil
	m.index = 0
	m.state = needLeft
}

func (m *matcher[L, R, K]) finish() {
	m.release()
	m.buckets = nil
	m.state = matchDone
}
