// Package bucket provides the key-to-values map shared by GroupBy and the
// hash joins.
package bucket

import "iter"

// Map groups values under comparable keys. Values keep their insertion
// order within a key and keys keep the order in which they were first seen.
type Map[K comparable, V any] struct {
	index  map[K]int
	keys   []K
	values [][]V
}

// Build drains seq into a new Map, calling key exactly once per value.
func Build[K comparable, V any](seq iter.Seq[V], key func(V) K) *Map[K, V] {
	m := &Map[K, V]{index: make(map[K]int)}
	for v := range seq {
		m.add(key(v), v)
	}
	return m
}

func (m *Map[K, V]) add(k K, v V) {
	i, ok := m.index[k]
	if !ok {
		i = len(m.keys)
		m.index[k] = i
		m.keys = append(m.keys, k)
		m.values = append(m.values, nil)
	}
	m.values[i] = append(m.values[i], v)
}

// Get returns the values stored under k, or nil.
// The returned slice must not be modified.
func (m *Map[K, V]) Get(k K) []V {
	i, ok := m.index[k]
	if !ok {
		return nil
	}
	return m.values[i]
}

// All yields every key with its values in first-seen key order.
func (m *Map[K, V]) All() iter.Seq2[K, []V] {
	return func(yield func(K, []V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.values[i]) {
				return
			}
		}
	}
}
