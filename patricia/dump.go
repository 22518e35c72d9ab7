package patricia

import (
	"fmt"
	"math/bits"

	"github.com/disiqueira/gotree"
)

// String renders the trie node by node, e.g.
//
//	[root]
//	└── [6:"68656c"]
//	    ├── [6:"6c6f"] hello=55
//	    └── [7:"70"] help=1
func (t *Trie[K, V]) String() string {
	return t.Root().String()
}

// String renders the subtree of the view.
func (s SubTrie[K, V]) String() string {
	if s.node == nil {
		return "[empty]"
	}

	tree := gotree.New(label(s.node, s.prefix.IsEmpty()))
	dump(tree, s.node)

	return tree.Print()
}

func dump[K comparable, V any](tree gotree.Tree, n *node[K, V]) {
	for occ := n.occupied; occ != 0; occ &= occ - 1 {
		child := n.children[bits.TrailingZeros16(occ)]
		dump(tree.Add(label(child, false)), child)
	}
}

func label[K comparable, V any](n *node[K, V], isRoot bool) string {
	var text string

	switch {
	case isRoot:
		text = "[root]"
	case n.fragment.IsEmpty():
		text = "[]"
	default:
		text = fmt.Sprintf("[%x:%q]", n.fragment.Get(0), n.fragment)
	}

	if n.hasValue() {
		text += fmt.Sprintf(" %v=%v", n.entry.key, n.entry.value)
	}

	return text
}
