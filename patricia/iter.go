package patricia

import (
	"iter"
	"math/bits"
)

// walk yields the entries below n in key order. The stack holds the nodes still to
// visit, the smallest on top.
func walk[K comparable, V any](n *node[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if n == nil {
			return
		}

		stack := []*node[K, V]{n}

		for len(stack) > 0 {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if top.hasValue() && !yield(top.entry.key, top.entry.value) {
				return
			}

			for occ := top.occupied; occ != 0; {
				bucket := 15 - bits.LeadingZeros16(occ)
				stack = append(stack, top.children[bucket])
				occ &^= 1 << bucket
			}
		}
	}
}

func keys[K any, V any](seq iter.Seq2[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

func values[K any, V any](seq iter.Seq2[K, V]) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range seq {
			if !yield(v) {
				return
			}
		}
	}
}

// All iterates over key-value pairs in ascending order of key encodings.
func (t *Trie[K, V]) All() iter.Seq2[K, V] {
	return walk(t.root)
}

func (t *Trie[K, V]) Keys() iter.Seq[K] {
	return keys(t.All())
}

func (t *Trie[K, V]) Values() iter.Seq[V] {
	return values(t.All())
}

// All iterates over the view's pairs in ascending order of key encodings.
func (s SubTrie[K, V]) All() iter.Seq2[K, V] {
	return walk(s.node)
}

func (s SubTrie[K, V]) Keys() iter.Seq[K] {
	return keys(s.All())
}

func (s SubTrie[K, V]) Values() iter.Seq[V] {
	return values(s.All())
}

// Children iterates over the views of the node's direct children by bucket.
func (s SubTrie[K, V]) Children() iter.Seq[SubTrie[K, V]] {
	return func(yield func(SubTrie[K, V]) bool) {
		if s.node == nil {
			return
		}

		for occ := s.node.occupied; occ != 0; occ &= occ - 1 {
			child := s.node.children[bits.TrailingZeros16(occ)]

			sub := SubTrie[K, V]{
				prefix: s.prefix.Join(child.fragment),
				node:   child,
				trie:   s.trie,
			}
			if !yield(sub) {
				return
			}
		}
	}
}
