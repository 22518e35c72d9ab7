package patricia

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-patricia/nibble"
)

func TestCheckIntegrity_Healthy(t *testing.T) {
	t.Parallel()

	var empty Trie[string, int]

	assert.NoError(t, empty.CheckIntegrity())
	assert.NoError(t, helloTrie().CheckIntegrity())
}

func TestCheckIntegrity_Corrupt(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Name    string
		Corrupt func(trie *Trie[string, int])
		ExpErrs int
	}{
		{
			Name:    "length",
			Corrupt: func(trie *Trie[string, int]) { trie.length++ },
			ExpErrs: 1,
		},
		{
			Name: "root fragment",
			Corrupt: func(trie *Trie[string, int]) {
				trie.root.fragment = nibble.New(1)
			},
			ExpErrs: 1,
		},
		{
			Name: "bitmap",
			Corrupt: func(trie *Trie[string, int]) {
				trie.root.occupied |= 1 << 0xf
			},
			ExpErrs: 2, // slot mismatch and popcount mismatch
		},
		{
			Name: "bucket",
			Corrupt: func(trie *Trie[string, int]) {
				child := trie.root.takeChild(4)
				trie.root.setChild(5, child)
			},
			ExpErrs: 1,
		},
		{
			Name: "valueless single child",
			Corrupt: func(trie *Trie[string, int]) {
				trie.root.children[4].takeEntry()
				trie.length--
			},
			ExpErrs: 1,
		},
		{
			Name: "valueless leaf",
			Corrupt: func(trie *Trie[string, int]) {
				trie.root.children[4].children[4].takeEntry()
				trie.length--
			},
			ExpErrs: 1,
		},
		{
			Name: "key path",
			Corrupt: func(trie *Trie[string, int]) {
				trie.root.children[4].entry.key = "HELP"
			},
			ExpErrs: 1,
		},
	} {
		tcase := tcase

		t.Run(tcase.Name, func(t *testing.T) {
			trie := helloTrie()
			tcase.Corrupt(trie)

			err := trie.CheckIntegrity()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorrupt)

			merr, ok := err.(*multierror.Error)
			require.True(t, ok)
			assert.Len(t, merr.Errors, tcase.ExpErrs, err.Error())
		})
	}
}

func TestSplit_Structure(t *testing.T) {
	t.Parallel()

	n := newLeaf(nibble.New(1, 2, 3, 4), "k", 1)
	n.setChild(5, &node[string, int]{fragment: nibble.New(5)})

	tail := n.split(2)

	assert.Equal(t, "12", n.fragment.String())
	assert.False(t, n.hasValue())
	assert.Equal(t, 1, n.childCount())
	assert.Same(t, tail, n.children[3])

	assert.Equal(t, "34", tail.fragment.String())
	assert.True(t, tail.hasValue())
	assert.Equal(t, 1, tail.childCount())
	assert.NotNil(t, tail.children[5])

	assert.Panics(t, func() { n.split(0) })
	assert.Panics(t, func() { n.split(2) })
}

func TestDeleteAction(t *testing.T) {
	t.Parallel()

	leaf := func(frag ...byte) *node[string, int] {
		return &node[string, int]{fragment: nibble.New(frag...)}
	}

	bare := leaf(1)
	assert.Equal(t, actDelete, bare.deleteAction(false).kind)
	assert.Equal(t, actNothing, bare.deleteAction(true).kind)

	valued := newLeaf(nibble.New(1), "k", 1)
	assert.Equal(t, actNothing, valued.deleteAction(false).kind)

	single := leaf(1, 2)
	single.setChild(3, leaf(3, 4))

	act := single.deleteAction(false)
	require.Equal(t, actReplace, act.kind)
	assert.Equal(t, "1234", act.node.fragment.String())

	pair := leaf(1)
	pair.setChild(3, leaf(3))
	pair.setChild(4, leaf(4))
	assert.Equal(t, actNothing, pair.deleteAction(false).kind)

	assert.Panics(t, func() { pair.onlyChild() })
}
