package patricia

import (
	"github.com/aglyzov/go-patricia/nibble"
)

// Trie maps keys to values. The zero value is an empty trie that encodes keys with
// DefaultEncode, logs nothing and reports no metrics.
type Trie[K comparable, V any] struct {
	root     *node[K, V]
	length   int
	encode   EncodeFunc[K]
	settings settings
}

// New returns an empty trie storing keys under the given encoding. A nil encode
// means DefaultEncode.
func New[K comparable, V any](encode EncodeFunc[K], opts ...Option) *Trie[K, V] {
	t := &Trie[K, V]{encode: encode}

	for _, opt := range opts {
		opt(&t.settings)
	}

	t.init()

	return t
}

// NewDefault returns an empty trie keyed with DefaultEncode.
func NewDefault[K comparable, V any](opts ...Option) *Trie[K, V] {
	return New[K, V](nil, opts...)
}

// init allocates the root of a zero-value trie.
func (t *Trie[K, V]) init() *node[K, V] {
	if t.root == nil {
		t.root = &node[K, V]{}
		t.metrics().NodesAdd(1)
	}

	return t.root
}

// top returns the root without allocating it in a zero-value trie.
func (t *Trie[K, V]) top() *node[K, V] {
	if t.root == nil {
		return &node[K, V]{}
	}

	return t.root
}

// Len returns the number of keys in the trie.
func (t *Trie[K, V]) Len() int {
	return t.length
}

func (t *Trie[K, V]) IsEmpty() bool {
	return t.length == 0
}

// Insert stores the value under the key. If the key was already present its
// previous value is returned with replaced set to true.
func (t *Trie[K, V]) Insert(key K, value V) (old V, replaced bool) {
	prev := t.insertAt(t.init(), key, value, t.encodeKey(key))
	if prev == nil {
		t.length++
		return old, false
	}

	return prev.value, true
}

// insertAt inserts below n, rest being the key nibbles that remain at n. It returns
// the replaced entry if any. The length is left to the caller.
func (t *Trie[K, V]) insertAt(n *node[K, V], key K, value V, rest nibble.Vec) *entry[K, V] {
	tr := traversal[K, V, *entry[K, V], *entry[K, V]]{
		match: func(n *node[K, V], in *entry[K, V]) *entry[K, V] {
			if n.hasValue() {
				t.checkKeys(n.entry.key, in.key)
			}
			return n.replaceEntry(in.key, in.value)
		},
		noChild: func(n *node[K, V], in *entry[K, V], rest nibble.Vec) *entry[K, V] {
			n.setChild(rest.Get(0), newLeaf(rest, in.key, in.value))
			t.metrics().NodesAdd(1)
			return nil
		},
		partialMatch: func(
			_ *node[K, V], child *node[K, V], in *entry[K, V], _ byte, idx int, rest nibble.Vec,
		) *entry[K, V] {
			t.split(child, idx)

			_, tail := rest.Split(idx)
			child.setChild(tail.Get(0), newLeaf(tail, in.key, in.value))
			t.metrics().NodesAdd(1)

			return nil
		},
		firstPrefix: func(
			_ *node[K, V], child *node[K, V], in *entry[K, V], _ byte, rest nibble.Vec,
		) *entry[K, V] {
			t.split(child, rest.Len())
			child.replaceEntry(in.key, in.value)
			return nil
		},
	}

	return tr.run(n, &entry[K, V]{key: key, value: value}, rest)
}

func (t *Trie[K, V]) split(n *node[K, V], idx int) {
	logger := t.logger()
	if logger.IsTrace() {
		logger.Trace("split", "fragment", n.fragment.String(), "index", idx)
	}

	n.split(idx)
	t.metrics().NodesAdd(1)
}

type removal[K comparable, V any] struct {
	removed *entry[K, V]
	action  deleteAction[K, V]
}

// Remove deletes the key and returns its value.
func (t *Trie[K, V]) Remove(key K) (V, bool) {
	var zero V

	if t.root == nil {
		return zero, false
	}

	root := t.root
	logger := t.logger()

	tr := traversal[K, V, K, removal[K, V]]{
		match: func(n *node[K, V], key K) removal[K, V] {
			if !n.hasValue() {
				return removal[K, V]{}
			}
			t.checkKeys(n.entry.key, key)

			return removal[K, V]{
				removed: n.takeEntry(),
				action:  n.deleteAction(n == root),
			}
		},
		action: func(n *node[K, V], out removal[K, V], bucket byte, _ nibble.Vec) removal[K, V] {
			switch out.action.kind {
			case actReplace:
				if logger.IsTrace() {
					logger.Trace("merge", "fragment", out.action.node.fragment.String())
				}
				n.children[bucket] = out.action.node
				t.metrics().NodesSub(1)
				out.action = deleteAction[K, V]{}

			case actDelete:
				if logger.IsTrace() {
					logger.Trace("delete", "fragment", n.children[bucket].fragment.String())
				}
				n.takeChild(bucket)
				t.metrics().NodesSub(1)
				out.action = n.deleteAction(n == root)
			}

			return out
		},
	}

	out := tr.run(root, key, t.encodeKey(key))
	if out.removed == nil {
		return zero, false
	}

	t.length--

	return out.removed.value, true
}

// Clear removes all keys.
func (t *Trie[K, V]) Clear() {
	if t.root == nil {
		return
	}

	if dropped := t.root.count() - 1; dropped > 0 {
		t.metrics().NodesSub(uint32(dropped))
	}

	*t.root = node[K, V]{}
	t.length = 0
}

// findNode returns the node whose path is exactly rest, starting at n.
func findNode[K comparable, V any](n *node[K, V], rest nibble.Vec) *node[K, V] {
	tr := traversal[K, V, struct{}, *node[K, V]]{
		match: func(n *node[K, V], _ struct{}) *node[K, V] {
			return n
		},
	}

	return tr.run(n, struct{}{}, rest)
}

// lookup returns the entry stored under the key below n.
func (t *Trie[K, V]) lookup(n *node[K, V], key K, rest nibble.Vec) *entry[K, V] {
	found := findNode(n, rest)
	if found == nil || !found.hasValue() {
		return nil
	}

	t.checkKeys(found.entry.key, key)

	return found.entry
}

// Get returns the value stored under the key.
func (t *Trie[K, V]) Get(key K) (V, bool) {
	if e := t.lookup(t.top(), key, t.encodeKey(key)); e != nil {
		return e.value, true
	}

	var zero V

	return zero, false
}

// GetPtr returns a pointer to the stored value or nil. The pointer stays valid until
// the key is replaced or removed.
func (t *Trie[K, V]) GetPtr(key K) *V {
	if e := t.lookup(t.top(), key, t.encodeKey(key)); e != nil {
		return &e.value
	}

	return nil
}

func (t *Trie[K, V]) Contains(key K) bool {
	return t.lookup(t.top(), key, t.encodeKey(key)) != nil
}

// MapWithDefault applies f to the value stored under the key in place, or inserts
// def when the key is absent.
func (t *Trie[K, V]) MapWithDefault(key K, f func(*V), def V) {
	if ptr := t.GetPtr(key); ptr != nil {
		f(ptr)
		return
	}

	t.Insert(key, def)
}
