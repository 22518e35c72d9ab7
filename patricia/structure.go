package patricia

import (
	"fmt"
)

// split cuts the fragment at idx. The node keeps the head and becomes a valueless
// branch with a single child, which takes over the tail together with the entry and
// all the former children.
//
//	before:  [abcd v=1] --+-- ...       after:  [ab] -- [cd v=1] --+-- ...
//	                      `-- ...                                  `-- ...
func (n *node[K, V]) split(idx int) *node[K, V] {
	if idx <= 0 || idx >= n.fragment.Len() {
		panic(fmt.Errorf("%w: split index %d out of range (0:%d)", ErrCorrupt, idx, n.fragment.Len()))
	}

	head, tail := n.fragment.Split(idx)

	child := &node[K, V]{
		fragment: tail,
		entry:    n.entry,
		children: n.children,
		occupied: n.occupied,
	}

	*n = node[K, V]{fragment: head}
	n.setChild(tail.Get(0), child)

	return child
}

type actionKind uint8

const (
	actNothing actionKind = iota
	actDelete             // drop the node from its parent
	actReplace            // put deleteAction.node in place of the node
)

type deleteAction[K comparable, V any] struct {
	kind actionKind
	node *node[K, V]
}

// deleteAction decides what should happen to a node that may have lost its entry or
// a child. The root always stays where it is.
func (n *node[K, V]) deleteAction(isRoot bool) deleteAction[K, V] {
	if isRoot || n.hasValue() {
		return deleteAction[K, V]{}
	}

	switch n.childCount() {
	case 0:
		return deleteAction[K, V]{kind: actDelete}
	case 1:
		_, child := n.onlyChild()
		child.fragment = n.fragment.Join(child.fragment)

		return deleteAction[K, V]{kind: actReplace, node: child}
	}

	return deleteAction[K, V]{}
}
