package patricia

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/aglyzov/go-patricia/nibble"
)

// CheckIntegrity walks the whole trie and reports every broken structural
// invariant. Each reported error wraps ErrCorrupt. It returns nil for a healthy trie.
func (t *Trie[K, V]) CheckIntegrity() error {
	if t.root == nil {
		if t.length != 0 {
			return fmt.Errorf("%w: length %d of an empty trie", ErrCorrupt, t.length)
		}
		return nil
	}

	var result *multierror.Error

	if !t.root.fragment.IsEmpty() {
		result = multierror.Append(result,
			fmt.Errorf("%w: root fragment %q is not empty", ErrCorrupt, t.root.fragment))
	}

	count := t.audit(t.root, nibble.Vec{}, true, func(err error) {
		result = multierror.Append(result, err)
	})

	if count != t.length {
		result = multierror.Append(result,
			fmt.Errorf("%w: length is %d but %d values are stored", ErrCorrupt, t.length, count))
	}

	err := result.ErrorOrNil()
	if err != nil {
		t.logger().Debug("integrity check failed", "error", err)
	}

	return err
}

// audit checks the subtree of n reached through path and returns the number of
// values in it.
func (t *Trie[K, V]) audit(n *node[K, V], path nibble.Vec, isRoot bool, report func(error)) int {
	count := 0

	if n.hasValue() {
		count++

		if enc := t.encodeKey(n.entry.key); !enc.Equal(path) {
			report(fmt.Errorf("%w: key %v is encoded as %q but stored at %q",
				ErrCorrupt, n.entry.key, enc, path))
		}
	}

	slots := 0

	for bucket, child := range n.children {
		isSet := n.occupied&(1<<bucket) != 0

		if (child != nil) != isSet {
			report(fmt.Errorf("%w: bucket %x at %q is %v in the bitmap but holds %p",
				ErrCorrupt, bucket, path, isSet, child))
		}

		if child == nil {
			continue
		}

		slots++

		if child.fragment.IsEmpty() {
			report(fmt.Errorf("%w: empty fragment in bucket %x at %q", ErrCorrupt, bucket, path))
			continue
		}

		if first := child.fragment.Get(0); int(first) != bucket {
			report(fmt.Errorf("%w: fragment %q sits in bucket %x at %q",
				ErrCorrupt, child.fragment, bucket, path))
		}

		count += t.audit(child, path.Join(child.fragment), false, report)
	}

	if slots != n.childCount() {
		report(fmt.Errorf("%w: %d children at %q but the bitmap counts %d",
			ErrCorrupt, slots, path, n.childCount()))
	}

	if !isRoot && !n.hasValue() {
		switch slots {
		case 0:
			report(fmt.Errorf("%w: valueless leaf at %q", ErrCorrupt, path))
		case 1:
			report(fmt.Errorf("%w: valueless node with a single child at %q", ErrCorrupt, path))
		}
	}

	return count
}
