package umap

// node holds one key-value pair together with its cached bucket index and
// its successor in the traversal ring. Nodes are owned exclusively by the
// Map that allocated them; a node keeps its identity across rehashes, only
// bucket and next are rewritten.
//
// The map's sentinel is an ordinary node with zero key and value,
// recognized by pointer identity. It closes the ring: following next from
// the sentinel exactly Size() times leads back to the sentinel.
type node[K comparable, V any] struct {
	next   *node[K, V]
	bucket int
	key    K
	value  V
}

// newSentinel returns a self-linked anchor node.
func newSentinel[K comparable, V any]() *node[K, V] {
	s := &node[K, V]{}
	s.next = s
	return s
}

// splice links n into the ring as the first entry of bucket b, updating
// the predecessor slots in buckets. It is the single entry point used by
// insert, rehash and clone; buckets is passed explicitly so that a rehash
// can splice into its new bucket array while the old one is still
// installed.
//
// Bucket slots record the node immediately preceding the bucket's first
// entry, so both cases below are O(1):
//
//   - empty bucket: n becomes the new head of the whole ring, right after
//     the sentinel, and the sentinel is recorded as b's predecessor. The
//     displaced head (if any) belongs to some other bucket whose first
//     entry is now preceded by n instead of the sentinel, so that bucket's
//     slot is repointed at n.
//   - non-empty bucket: n is linked right after b's recorded predecessor,
//     i.e. at the head of b's run. No neighboring slot changes, since the
//     predecessor of b's first entry is still the same node.
func (m *Map[K, V]) splice(b int, n *node[K, V], buckets []*node[K, V]) {
	n.bucket = b
	if pred := buckets[b]; pred != nil {
		n.next = pred.next
		pred.next = n
		return
	}
	n.next = m.sentinel.next
	m.sentinel.next = n
	buckets[b] = m.sentinel
	if n.next != m.sentinel {
		buckets[n.next.bucket] = n
	}
}
