package core

import orderedmap "github.com/wk8/go-ordered-map/v2"

// OrderedMap is a map that remembers insertion order. Setting an existing key
// keeps its position. Read methods treat a nil map as empty.
type OrderedMap[K comparable, V any] struct {
	m *orderedmap.OrderedMap[K, V]
}

func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{m: orderedmap.New[K, V]()}
}

func (m *OrderedMap[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.m.Len()
}

func (m *OrderedMap[K, V]) Set(key K, value V) {
	m.m.Set(key, value)
}

func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	return m.m.Get(key)
}

func (m *OrderedMap[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *OrderedMap[K, V]) Delete(key K) {
	m.m.Delete(key)
}

// Keys returns the keys in order.
func (m *OrderedMap[K, V]) Keys() []K {
	if m == nil {
		return nil
	}
	out := make([]K, 0, m.m.Len())
	for p := m.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Key)
	}
	return out
}

// Values returns the values in key order.
func (m *OrderedMap[K, V]) Values() []V {
	if m == nil {
		return nil
	}
	out := make([]V, 0, m.m.Len())
	for p := m.m.Oldest(); p != nil; p = p.Next() {
		out = append(out, p.Value)
	}
	return out
}

// IndexOfKey returns the position of key, or -1.
func (m *OrderedMap[K, V]) IndexOfKey(key K) int {
	if m == nil {
		return -1
	}
	i := 0
	for p := m.m.Oldest(); p != nil; p = p.Next() {
		if p.Key == key {
			return i
		}
		i++
	}
	return -1
}

// KeysEqual reports whether the map's keys are exactly keys, in order.
func (m *OrderedMap[K, V]) KeysEqual(keys []K) bool {
	if m.Len() != len(keys) {
		return false
	}
	if m == nil {
		return true
	}
	p := m.m.Oldest()
	for _, k := range keys {
		if p.Key != k {
			return false
		}
		p = p.Next()
	}
	return true
}

// RemoveLast drops the last n entries. n is clamped to [0, Len()].
func (m *OrderedMap[K, V]) RemoveLast(n int) {
	n = min(max(n, 0), m.Len())
	for range n {
		m.m.Delete(m.m.Newest().Key)
	}
}
