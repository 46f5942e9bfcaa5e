// Package umap implements a generic unordered associative container with
// average O(1) insert, lookup and erase, built on separate chaining with
// all live entries threaded onto a single intrusive circular list.
package umap

import (
	"fmt"
)

const (
	// defaultBucketCount is the bucket array length installed when a map
	// is constructed (or lazily initialized) without WithBucketCount.
	defaultBucketCount = 10

	// defaultMaxLoadFactor is the growth trigger ratio: once
	// Size()/BucketCount() reaches it after an insert, the bucket count
	// doubles.
	defaultMaxLoadFactor = 1.0
)

// Map is a hash table mapping keys K to values V, built on separate
// chaining: colliding entries are linked together rather than probed for.
// All live entries, across all buckets, are threaded onto one circular
// singly-linked list anchored by a sentinel node, with entries of the same
// bucket kept contiguous. Each bucket slot records the node immediately
// preceding the bucket's first entry on that list, which makes insertion,
// removal and rehash splicing O(1) once the bucket is located.
//
// Key features:
//   - Average O(1) Insert, Find, Erase and Ref
//   - Zero-value usability: a zero Map is a valid empty map
//   - Automatic growth, doubling the bucket count whenever the load
//     factor reaches MaxLoadFactor (default 1.0)
//   - Entries keep their identity across growth, so iterators and value
//     pointers obtained from At, Ref or Iterator.Val survive a rehash
//   - Deep copies via Clone, ownership transfer via Take
//   - Range callbacks and range-over-func iteration via All, Keys, Values
//
// Iteration order is bucket-grouping order: entries of one bucket emerge
// together, most recently inserted first. It is not a stable global order
// and changes across a rehash, since bucket assignment depends on the
// bucket count.
//
// Map is not safe for concurrent use. There is no internal
// synchronization of any kind; callers that share a Map across goroutines
// must serialize every access externally, for example with a single mutex
// guarding the whole structure.
//
// Memory exhaustion during node or bucket-array allocation is not
// reported as an error: the Go runtime aborts the process, as it does for
// any failed allocation.
type Map[K comparable, V any] struct {
	sentinel *node[K, V]
	buckets  []*node[K, V]
	size     int
	maxLoad  float64
	hash     HashFunc[K]
}

// Config holds the construction options for a Map.
type Config struct {
	bucketCount   int
	maxLoadFactor float64
}

// WithBucketCount configures the initial number of buckets. Values below
// one are ignored and the default of 10 applies.
func WithBucketCount(n int) func(*Config) {
	return func(c *Config) {
		if n > 0 {
			c.bucketCount = n
		}
	}
}

// WithMaxLoadFactor configures the growth trigger ratio. Non-positive
// values are ignored and the default of 1.0 applies; use
// SetMaxLoadFactor to get an error for out-of-range input.
func WithMaxLoadFactor(f float64) func(*Config) {
	return func(c *Config) {
		if f > 0 {
			c.maxLoadFactor = f
		}
	}
}

// New creates an empty Map. Direct initialization of a zero Map is also
// supported.
func New[K comparable, V any](options ...func(*Config)) *Map[K, V] {
	return NewWithHasher[K, V](nil, options...)
}

// NewWithHasher creates an empty Map that hashes keys with the given
// function. A nil hash selects the built-in hasher. The hash function
// must be deterministic; key equality is always the language == operator.
func NewWithHasher[K comparable, V any](hash HashFunc[K], options ...func(*Config)) *Map[K, V] {
	var cfg Config
	for _, opt := range options {
		opt(&cfg)
	}
	m := &Map[K, V]{hash: hash, maxLoad: cfg.maxLoadFactor}
	if cfg.bucketCount > 0 {
		m.buckets = make([]*node[K, V], cfg.bucketCount)
	}
	m.lazyInit()
	return m
}

// lazyInit installs the sentinel, the bucket array, the hasher and the
// load factor on first use. It makes the zero Map (including a map just
// emptied by Take) behave as a valid empty map.
func (m *Map[K, V]) lazyInit() {
	if m.sentinel != nil {
		return
	}
	if m.hash == nil {
		m.hash = defaultHasher[K]()
	}
	if m.maxLoad <= 0 {
		m.maxLoad = defaultMaxLoadFactor
	}
	if m.buckets == nil {
		m.buckets = make([]*node[K, V], defaultBucketCount)
	}
	m.sentinel = newSentinel[K, V]()
}

// bucketIndex reduces the key's hash to a bucket index.
func (m *Map[K, V]) bucketIndex(key K) int {
	if len(m.buckets) == 0 {
		panic("umap: bucket count is zero")
	}
	return int(m.hash(key) % uint64(len(m.buckets)))
}

// findNode returns the node holding key, or the sentinel if the key is
// absent. The scan is bounded to the key's bucket: it starts right after
// the bucket's recorded predecessor and stops as soon as a node of
// another bucket (or the sentinel) is reached.
func (m *Map[K, V]) findNode(key K) *node[K, V] {
	b := m.bucketIndex(key)
	pred := m.buckets[b]
	if pred == nil {
		return m.sentinel
	}
	for n := pred.next; n != m.sentinel && n.bucket == b; n = n.next {
		if n.key == key {
			return n
		}
	}
	return m.sentinel
}

// Insert adds the key-value pair and returns an iterator to the new
// entry. If the key is already present it returns ErrDuplicateKey and the
// map is left unchanged. A successful insert that pushes the load factor
// to MaxLoadFactor or beyond doubles the bucket count until the factor
// drops below the trigger again; the returned iterator stays valid across
// that growth.
func (m *Map[K, V]) Insert(key K, value V) (Iterator[K, V], error) {
	m.lazyInit()
	b := m.bucketIndex(key)
	if pred := m.buckets[b]; pred != nil {
		for n := pred.next; n != m.sentinel && n.bucket == b; n = n.next {
			if n.key == key {
				return m.End(), fmt.Errorf("insert %v: %w", key, ErrDuplicateKey)
			}
		}
	}
	n := &node[K, V]{key: key, value: value}
	m.splice(b, n, m.buckets)
	m.size++
	// A single doubling is not always enough: with a max load factor
	// below 1/bucketCount the doubled table can still sit at or above
	// the trigger ratio.
	for float64(m.size)/float64(len(m.buckets)) >= m.maxLoad {
		m.rehash(2 * len(m.buckets))
	}
	return Iterator[K, V]{n}, nil
}

// Erase removes the entry for key, or returns ErrKeyNotFound if the key's
// bucket is empty or the key is absent from it. Removal unlinks the node
// from the ring, clears the bucket's slot when no sibling remains, and
// repoints the following bucket's predecessor slot if it referenced the
// removed node.
func (m *Map[K, V]) Erase(key K) error {
	m.lazyInit()
	b := m.bucketIndex(key)
	before := m.buckets[b]
	if before == nil {
		return fmt.Errorf("erase %v: %w", key, ErrKeyNotFound)
	}
	n := before.next
	for n != m.sentinel && n.bucket == b {
		if n.key == key {
			before.next = n.next
			if n.next == m.sentinel && (before == m.sentinel || before.bucket != b) {
				m.buckets[b] = nil
			} else if n.next != m.sentinel && n.next.bucket != b {
				m.buckets[n.next.bucket] = before
				if before == m.sentinel || before.bucket != b {
					m.buckets[b] = nil
				}
			}
			n.next = nil
			m.size--
			return nil
		}
		before = n
		n = n.next
	}
	return fmt.Errorf("erase %v: %w", key, ErrKeyNotFound)
}

// Find returns an iterator to the entry for key, or End() if the key is
// absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	m.lazyInit()
	return Iterator[K, V]{m.findNode(key)}
}

// At returns a pointer to the value stored for key, or ErrKeyNotFound.
// The pointer stays valid until the entry is erased or the map is
// cleared; mutations through it are observed by later lookups.
func (m *Map[K, V]) At(key K) (*V, error) {
	m.lazyInit()
	n := m.findNode(key)
	if n == m.sentinel {
		return nil, fmt.Errorf("at %v: %w", key, ErrKeyNotFound)
	}
	return &n.value, nil
}

// Ref returns a pointer to the value stored for key, inserting a
// zero-valued entry first if the key is absent. It never fails.
func (m *Map[K, V]) Ref(key K) *V {
	m.lazyInit()
	if n := m.findNode(key); n != m.sentinel {
		return &n.value
	}
	var zero V
	it, _ := m.Insert(key, zero)
	return &it.cur.value
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	m.lazyInit()
	return m.findNode(key) != m.sentinel
}

// Clear removes every entry, resetting the sentinel to self-referencing
// and all bucket slots to empty. The bucket count is kept.
func (m *Map[K, V]) Clear() {
	if m.sentinel == nil {
		return
	}
	n := m.sentinel.next
	for n != m.sentinel {
		next := n.next
		n.next = nil
		n = next
	}
	m.sentinel.next = m.sentinel
	clear(m.buckets)
	m.size = 0
}

// Reserve rehashes the map to n buckets. Shrinking is not supported:
// requesting fewer buckets than currently allocated returns
// ErrInvalidArgument and leaves the map unchanged.
func (m *Map[K, V]) Reserve(n int) error {
	m.lazyInit()
	if n < len(m.buckets) {
		return fmt.Errorf("reserve %d buckets with %d allocated: %w", n, len(m.buckets), ErrInvalidArgument)
	}
	m.rehash(n)
	return nil
}

// rehash redistributes every entry into a fresh bucket array of newCount
// slots. The ring is detached from the sentinel and rebuilt in a single
// walk, re-splicing each node under its recomputed bucket index. Nodes
// are never reallocated, so live iterators over surviving entries stay
// dereferenceable.
func (m *Map[K, V]) rehash(newCount int) {
	buckets := make([]*node[K, V], newCount)
	n := m.sentinel.next
	m.sentinel.next = m.sentinel
	for n != m.sentinel {
		next := n.next
		b := int(m.hash(n.key) % uint64(newCount))
		m.splice(b, n, buckets)
		n = next
	}
	m.buckets = buckets
}

// MaxLoadFactor returns the growth trigger ratio.
func (m *Map[K, V]) MaxLoadFactor() float64 {
	if m.maxLoad <= 0 {
		return defaultMaxLoadFactor
	}
	return m.maxLoad
}

// SetMaxLoadFactor changes the growth trigger ratio. Non-positive values
// return ErrInvalidArgument. Lowering the factor does not shrink or
// immediately rehash the map; the new ratio applies from the next insert.
func (m *Map[K, V]) SetMaxLoadFactor(f float64) error {
	if f <= 0 {
		return fmt.Errorf("max load factor %v: %w", f, ErrInvalidArgument)
	}
	m.lazyInit()
	m.maxLoad = f
	return nil
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Empty reports whether the map holds no entries.
func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// BucketCount returns the current number of buckets.
func (m *Map[K, V]) BucketCount() int {
	m.lazyInit()
	return len(m.buckets)
}

// Equal reports whether both maps hold the same set of keys.
//
// NOTE: this is key-membership equality only. Associated values are
// deliberately NOT compared: two maps with identical keys but entirely
// different values compare equal. Do not use Equal to decide whether two
// maps hold the same data; compare values explicitly (for example via
// ToMap) when value equality matters.
func (m *Map[K, V]) Equal(other *Map[K, V]) bool {
	if other == nil {
		return m.size == 0
	}
	if m.size != other.size {
		return false
	}
	if m.sentinel == nil {
		return true
	}
	for n := m.sentinel.next; n != m.sentinel; n = n.next {
		if !other.Contains(n.key) {
			return false
		}
	}
	return true
}

// Clone returns a deep, independent copy: a fresh sentinel, a fresh
// bucket array of the same length, and freshly allocated entries
// re-spliced with the same insertion primitives. The clone shares the
// hash function and load factor; mutating either map never affects the
// other.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{hash: m.hash, maxLoad: m.maxLoad}
	if m.sentinel == nil {
		return c
	}
	c.sentinel = newSentinel[K, V]()
	c.buckets = make([]*node[K, V], len(m.buckets))
	for n := m.sentinel.next; n != m.sentinel; n = n.next {
		c.splice(n.bucket, &node[K, V]{key: n.key, value: n.value}, c.buckets)
	}
	c.size = m.size
	return c
}

// Take transfers ownership of src's entries, buckets and configuration to
// m, discarding whatever m held before. src is reset to the zero state,
// which is a valid empty map ready for reuse. Taking from itself is a
// no-op.
func (m *Map[K, V]) Take(src *Map[K, V]) {
	if m == src {
		return
	}
	*m = *src
	*src = Map[K, V]{}
}
