package patricia

import (
	"fmt"
	"math/bits"

	"github.com/hideo55/go-popcount"

	"github.com/aglyzov/go-patricia/nibble"
)

const branchFactor = nibble.Radix

type entry[K comparable, V any] struct {
	key   K
	value V
}

// node is a trie vertex. The first nibble of a child's fragment always equals the
// index of the slot holding it.
type node[K comparable, V any] struct {
	fragment nibble.Vec
	entry    *entry[K, V]
	children [branchFactor]*node[K, V]
	occupied uint16 // bit i is set <=> children[i] != nil
}

func newLeaf[K comparable, V any](fragment nibble.Vec, key K, value V) *node[K, V] {
	return &node[K, V]{
		fragment: fragment,
		entry:    &entry[K, V]{key: key, value: value},
	}
}

func (n *node[K, V]) childCount() int {
	return int(popcount.Count(uint64(n.occupied)))
}

func (n *node[K, V]) isLeaf() bool {
	return n.occupied == 0
}

func (n *node[K, V]) hasValue() bool {
	return n.entry != nil
}

// setChild places the child into its bucket, overwriting any previous one.
func (n *node[K, V]) setChild(bucket byte, child *node[K, V]) {
	n.children[bucket] = child
	n.occupied |= 1 << bucket
}

// takeChild empties the bucket and returns what it held.
func (n *node[K, V]) takeChild(bucket byte) *node[K, V] {
	child := n.children[bucket]
	n.children[bucket] = nil
	n.occupied &^= 1 << bucket

	return child
}

// onlyChild returns the bucket and the child of a single-child node.
func (n *node[K, V]) onlyChild() (byte, *node[K, V]) {
	if n.childCount() != 1 {
		panic(fmt.Errorf("%w: expected a single child, found %d", ErrCorrupt, n.childCount()))
	}

	bucket := byte(bits.TrailingZeros16(n.occupied))

	return bucket, n.children[bucket]
}

// replaceEntry stores a new entry and returns the previous one (nil if none).
func (n *node[K, V]) replaceEntry(key K, value V) *entry[K, V] {
	old := n.entry
	n.entry = &entry[K, V]{key: key, value: value}

	return old
}

func (n *node[K, V]) takeEntry() *entry[K, V] {
	old := n.entry
	n.entry = nil

	return old
}

// count returns the number of nodes in the subtree, n included.
func (n *node[K, V]) count() int {
	total := 1

	for occ := n.occupied; occ != 0; occ &= occ - 1 {
		total += n.children[bits.TrailingZeros16(occ)].count()
	}

	return total
}

// values returns the number of entries in the subtree.
func (n *node[K, V]) values() int {
	total := 0
	if n.hasValue() {
		total = 1
	}

	for occ := n.occupied; occ != 0; occ &= occ - 1 {
		total += n.children[bits.TrailingZeros16(occ)].values()
	}

	return total
}
