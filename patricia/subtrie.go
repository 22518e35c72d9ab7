package patricia

import (
	"github.com/aglyzov/go-patricia/nibble"
)

// SubTrie is a read-only view of a node and everything below it. Its prefix is the
// encoding of the path from the root to the node.
//
// A view is only valid until the next mutation of its trie.
type SubTrie[K comparable, V any] struct {
	prefix nibble.Vec
	node   *node[K, V]
	trie   *Trie[K, V]
}

// SubTrieMut is a view that also accepts inserts below its node. Mutating the trie
// through another handle invalidates it.
type SubTrieMut[K comparable, V any] struct {
	SubTrie[K, V]
}

func (t *Trie[K, V]) view(loc located[K, V]) SubTrie[K, V] {
	return SubTrie[K, V]{prefix: loc.prefix, node: loc.node, trie: t}
}

// Root returns a view of the whole trie.
func (t *Trie[K, V]) Root() SubTrie[K, V] {
	return SubTrie[K, V]{node: t.top(), trie: t}
}

// Subtrie returns the view at the node whose path equals the encoding of key.
func (t *Trie[K, V]) Subtrie(key K) (SubTrie[K, V], bool) {
	enc := t.encodeKey(key)

	n := findNode(t.top(), enc)
	if n == nil {
		return SubTrie[K, V]{}, false
	}

	return SubTrie[K, V]{prefix: enc, node: n, trie: t}, true
}

// SubtrieMut is Subtrie for inserting.
func (t *Trie[K, V]) SubtrieMut(key K) (SubTrieMut[K, V], bool) {
	enc := t.encodeKey(key)

	n := findNode(t.init(), enc)
	if n == nil {
		return SubTrieMut[K, V]{}, false
	}

	return SubTrieMut[K, V]{SubTrie[K, V]{prefix: enc, node: n, trie: t}}, true
}

// Prefix returns the nibbles leading to the view's node.
func (s SubTrie[K, V]) Prefix() nibble.Vec {
	return s.prefix
}

// Key returns the key stored at the view's node, if any.
func (s SubTrie[K, V]) Key() (K, bool) {
	if s.node == nil || !s.node.hasValue() {
		var zero K
		return zero, false
	}

	return s.node.entry.key, true
}

// Value returns the value stored at the view's node, if any.
func (s SubTrie[K, V]) Value() (V, bool) {
	if s.node == nil || !s.node.hasValue() {
		var zero V
		return zero, false
	}

	return s.node.entry.value, true
}

// Len returns the number of keys in the view.
func (s SubTrie[K, V]) Len() int {
	if s.node == nil {
		return 0
	}

	return s.node.values()
}

func (s SubTrie[K, V]) IsEmpty() bool {
	return s.Len() == 0
}

// scope returns the key nibbles that remain below the view's node, or ErrOutOfScope.
func (s SubTrie[K, V]) scope(key K) (nibble.Vec, error) {
	enc := s.trie.encodeKey(key)

	switch MatchKeys(s.prefix, enc).Kind {
	case MatchFull, MatchFirstPrefix:
		_, rest := enc.Split(s.prefix.Len())
		return rest, nil
	}

	return nibble.Vec{}, ErrOutOfScope
}

// Get looks the key up inside the view. Keys that do not extend the view's prefix
// yield ErrOutOfScope.
func (s SubTrie[K, V]) Get(key K) (V, bool, error) {
	var zero V

	if s.node == nil {
		return zero, false, nil
	}

	rest, err := s.scope(key)
	if err != nil {
		return zero, false, err
	}

	if e := s.trie.lookup(s.node, key, rest); e != nil {
		return e.value, true, nil
	}

	return zero, false, nil
}

// AsSubTrie returns the read-only form of the view.
func (s SubTrieMut[K, V]) AsSubTrie() SubTrie[K, V] {
	return s.SubTrie
}

// Insert stores the value under a key extending the view's prefix and returns the
// previous value if there was one.
func (s SubTrieMut[K, V]) Insert(key K, value V) (old V, replaced bool, err error) {
	rest, err := s.scope(key)
	if err != nil {
		return old, false, err
	}

	prev := s.trie.insertAt(s.node, key, value, rest)
	if prev == nil {
		s.trie.length++
		return old, false, nil
	}

	return prev.value, true, nil
}
