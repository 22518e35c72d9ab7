package patricia

import (
	"github.com/aglyzov/go-patricia/nibble"
)

// traversal walks down from a node following the nibbles of rest and hands control
// to its hooks. All of them are optional, a missing hook yields the zero output.
//
//   - match: rest is exhausted at n.
//   - noChild: the bucket of rest's first nibble is empty; the result is returned as
//     is, action is not called.
//   - childMatch: rest equals the child's fragment (defaults to match on the child).
//   - partialMatch: rest and the child's fragment diverge at idx.
//   - firstPrefix: rest ends inside the child's fragment.
//   - action: post-order on n, after the child at bucket has been handled; rest is
//     what remained at n.
//
// When the child's fragment is a strict prefix of rest the walk descends into it.
type traversal[K comparable, V any, I, O any] struct {
	match        func(n *node[K, V], in I) O
	noChild      func(n *node[K, V], in I, rest nibble.Vec) O
	childMatch   func(n *node[K, V], child *node[K, V], in I, bucket byte) O
	partialMatch func(n *node[K, V], child *node[K, V], in I, bucket byte, idx int, rest nibble.Vec) O
	firstPrefix  func(n *node[K, V], child *node[K, V], in I, bucket byte, rest nibble.Vec) O
	action       func(n *node[K, V], out O, bucket byte, rest nibble.Vec) O
}

func (tr *traversal[K, V, I, O]) run(n *node[K, V], in I, rest nibble.Vec) O {
	var out O

	if rest.IsEmpty() {
		if tr.match != nil {
			out = tr.match(n, in)
		}
		return out
	}

	bucket := rest.Get(0)
	child := n.children[bucket]

	if child == nil {
		if tr.noChild != nil {
			out = tr.noChild(n, in, rest)
		}
		return out
	}

	switch m := MatchKeys(rest, child.fragment); m.Kind {
	case MatchFull:
		switch {
		case tr.childMatch != nil:
			out = tr.childMatch(n, child, in, bucket)
		case tr.match != nil:
			out = tr.match(child, in)
		}

	case MatchPartial:
		if tr.partialMatch != nil {
			out = tr.partialMatch(n, child, in, bucket, m.Index, rest)
		}

	case MatchFirstPrefix:
		if tr.firstPrefix != nil {
			out = tr.firstPrefix(n, child, in, bucket, rest)
		}

	case MatchSecondPrefix:
		_, tail := rest.Split(child.fragment.Len())
		out = tr.run(child, in, tail)
	}

	if tr.action != nil {
		out = tr.action(n, out, bucket, rest)
	}

	return out
}
