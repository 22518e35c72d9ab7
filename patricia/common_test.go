package patricia

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// randomKeys returns distinct keys sharing plenty of prefixes: every key either
// extends an earlier one or is a fresh word, and words are cut at random lengths.
func randomKeys(seed int64, total int) []string {
	var (
		fake = gofakeit.New(seed)
		seen = make(map[string]bool, total)
		keys = make([]string, 0, total)
	)

	for len(keys) < total {
		key := fake.Word()

		if len(keys) > 0 && fake.Bool() {
			base := keys[fake.Number(0, len(keys)-1)]
			key = base + fake.LetterN(uint(fake.Number(1, 3)))
		}

		key = key[:fake.Number(1, len(key))]

		if !seen[key] {
			seen[key] = true
			keys = append(keys, key)
		}
	}

	return keys
}

// requireHealthy fails the test when the trie breaks any structural invariant.
func requireHealthy[K comparable, V any](t *testing.T, trie *Trie[K, V]) {
	t.Helper()

	require.NoError(t, trie.CheckIntegrity(), trie.String())
}

func collect[K comparable, V any](trie *Trie[K, V]) map[K]V {
	out := make(map[K]V, trie.Len())

	for k, v := range trie.All() {
		out[k] = v
	}

	return out
}
