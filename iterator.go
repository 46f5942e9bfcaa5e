package umap

// Iterator is a forward-only cursor over the map's traversal ring.
// Dereference it with Key and Val, advance it with Next, and compare it
// with == (iterator equality is node identity). Reaching End() signals
// exhaustion; restart with Begin().
//
// An iterator is invalidated only by erasure of the entry it references
// or by Clear. It survives a rehash, because entries keep their identity
// across growth.
type Iterator[K comparable, V any] struct {
	cur *node[K, V]
}

// Key returns the key of the referenced entry.
func (it Iterator[K, V]) Key() K {
	return it.cur.key
}

// Val returns a pointer to the value of the referenced entry; mutations
// through it are observed by later lookups.
func (it Iterator[K, V]) Val() *V {
	return &it.cur.value
}

// Next returns an iterator advanced to the successor entry.
func (it Iterator[K, V]) Next() Iterator[K, V] {
	return Iterator[K, V]{it.cur.next}
}

// Begin returns an iterator to the first entry, or End() on an empty map.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	m.lazyInit()
	return Iterator[K, V]{m.sentinel.next}
}

// End returns the past-the-end iterator. Dereferencing it yields zero
// values.
func (m *Map[K, V]) End() Iterator[K, V] {
	m.lazyInit()
	return Iterator[K, V]{m.sentinel}
}

// Range calls yield for every entry in traversal order until yield
// returns false. Entries must not be inserted or erased from inside
// yield.
func (m *Map[K, V]) Range(yield func(key K, value V) bool) {
	if m.sentinel == nil {
		return
	}
	for n := m.sentinel.next; n != m.sentinel; n = n.next {
		if !yield(n.key, n.value) {
			return
		}
	}
}

// RangeKeys calls yield for every key in traversal order.
func (m *Map[K, V]) RangeKeys(yield func(key K) bool) {
	m.Range(func(key K, _ V) bool {
		return yield(key)
	})
}

// RangeValues calls yield for every value in traversal order.
func (m *Map[K, V]) RangeValues(yield func(value V) bool) {
	m.Range(func(_ K, value V) bool {
		return yield(value)
	})
}

// All is the range-over-func form of Range.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return m.Range
}

// Keys is the range-over-func form of RangeKeys.
func (m *Map[K, V]) Keys() func(yield func(K) bool) {
	return m.RangeKeys
}

// Values is the range-over-func form of RangeValues.
func (m *Map[K, V]) Values() func(yield func(V) bool) {
	return m.RangeValues
}
