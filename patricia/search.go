package patricia

import (
	"github.com/aglyzov/go-patricia/nibble"
)

// located is a node together with the nibbles consumed to reach it.
type located[K comparable, V any] struct {
	node   *node[K, V]
	prefix nibble.Vec
}

// consumed returns the part of key that leads to a node where rest remained.
func consumed(key, rest nibble.Vec) nibble.Vec {
	head, _ := key.Split(key.Len() - rest.Len())
	return head
}

// ancestor returns the deepest node on the path of key. With valued set only nodes
// holding a value qualify.
func ancestor[K comparable, V any](root *node[K, V], key nibble.Vec, valued bool) located[K, V] {
	qualifies := func(n *node[K, V]) bool {
		return !valued || n.hasValue()
	}

	tr := traversal[K, V, nibble.Vec, located[K, V]]{
		match: func(n *node[K, V], key nibble.Vec) located[K, V] {
			if qualifies(n) {
				return located[K, V]{node: n, prefix: key}
			}
			return located[K, V]{}
		},
		noChild: func(n *node[K, V], key nibble.Vec, rest nibble.Vec) located[K, V] {
			if qualifies(n) {
				return located[K, V]{node: n, prefix: consumed(key, rest)}
			}
			return located[K, V]{}
		},
		action: func(n *node[K, V], out located[K, V], _ byte, rest nibble.Vec) located[K, V] {
			if out.node == nil && qualifies(n) {
				return located[K, V]{node: n, prefix: consumed(key, rest)}
			}
			return out
		},
	}

	return tr.run(root, key, key)
}

// descendant returns the node matching key exactly or the closest node below the
// point where key ends inside a fragment.
func descendant[K comparable, V any](root *node[K, V], key nibble.Vec) located[K, V] {
	tr := traversal[K, V, nibble.Vec, located[K, V]]{
		match: func(n *node[K, V], key nibble.Vec) located[K, V] {
			return located[K, V]{node: n, prefix: key}
		},
		firstPrefix: func(
			_ *node[K, V], child *node[K, V], key nibble.Vec, _ byte, rest nibble.Vec,
		) located[K, V] {
			_, extra := child.fragment.Split(rest.Len())
			return located[K, V]{node: child, prefix: key.Join(extra)}
		},
	}

	return tr.run(root, key, key)
}

// GetAncestor returns the subtrie at the longest stored key that is a prefix of
// the given key (the key itself included).
func (t *Trie[K, V]) GetAncestor(key K) (SubTrie[K, V], bool) {
	loc := ancestor(t.top(), t.encodeKey(key), true)
	if loc.node == nil {
		return SubTrie[K, V]{}, false
	}

	return t.view(loc), true
}

// GetAncestorValue returns the value of the longest stored key that is a prefix of
// the given key.
func (t *Trie[K, V]) GetAncestorValue(key K) (V, bool) {
	if loc := ancestor(t.top(), t.encodeKey(key), true); loc.node != nil {
		return loc.node.entry.value, true
	}

	var zero V

	return zero, false
}

// GetRawAncestor returns the subtrie at the deepest node on the path of the key,
// whether or not it holds a value. It falls back to the root.
func (t *Trie[K, V]) GetRawAncestor(key K) SubTrie[K, V] {
	return t.view(ancestor(t.top(), t.encodeKey(key), false))
}

// GetRawDescendant returns the subtrie holding every stored key that extends the
// given one: the node matching the key exactly or, when the key ends in the middle
// of a fragment, the node owning that fragment. Nothing is found when the key
// leaves the trie.
func (t *Trie[K, V]) GetRawDescendant(key K) (SubTrie[K, V], bool) {
	loc := descendant(t.top(), t.encodeKey(key))
	if loc.node == nil {
		return SubTrie[K, V]{}, false
	}

	return t.view(loc), true
}
