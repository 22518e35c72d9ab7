package patricia

import (
	"testing"

	"github.com/armon/go-radix"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloTrie() *Trie[string, int] {
	trie := NewDefault[string, int]()

	trie.Insert("hello", 55)
	trie.Insert("help", 1)
	trie.Insert("HELL", 66)
	trie.Insert("HELLO", 77)

	return trie
}

func TestGetAncestor(t *testing.T) {
	t.Parallel()

	trie := helloTrie()

	for _, tcase := range []*struct {
		Key    string
		ExpKey string
		ExpVal int
		ExpOK  bool
	}{
		{"", "", 0, false},
		{"h", "", 0, false},
		{"hello", "hello", 55, true},
		{"hello, world", "hello", 55, true},
		{"helpless", "help", 1, true},
		{"HELL", "HELL", 66, true},
		{"HELLISH", "HELL", 66, true},
		{"HELLO!", "HELLO", 77, true},
		{"HEL", "", 0, false},
		{"world", "", 0, false},
	} {
		tcase := tcase

		t.Run(tcase.Key, func(t *testing.T) {
			sub, ok := trie.GetAncestor(tcase.Key)
			require.Equal(t, tcase.ExpOK, ok)

			val, ok := trie.GetAncestorValue(tcase.Key)
			assert.Equal(t, tcase.ExpOK, ok)
			assert.Equal(t, tcase.ExpVal, val)

			if !tcase.ExpOK {
				return
			}

			key, _ := sub.Key()
			assert.Equal(t, tcase.ExpKey, key)

			prefix, ok := sub.Prefix().Bytes()
			assert.True(t, ok)
			assert.Equal(t, tcase.ExpKey, string(prefix))
		})
	}
}

func TestGetAncestor_ValuedRoot(t *testing.T) {
	t.Parallel()

	trie := helloTrie()
	trie.Insert("", -1)

	val, ok := trie.GetAncestorValue("world")
	assert.True(t, ok)
	assert.Equal(t, -1, val)

	val, ok = trie.GetAncestorValue("hello!")
	assert.True(t, ok)
	assert.Equal(t, 55, val)
}

func TestGetRawAncestor(t *testing.T) {
	t.Parallel()

	trie := helloTrie()

	for _, tcase := range []*struct {
		Key       string
		ExpPrefix string
		ExpLen    int
	}{
		{"", "", 4},
		{"world", "", 4},
		{"helx", "68656c", 2},
		{"help me", "68656c70", 1},
		{"HE", "", 4},
		{"HELLO", "48454c4c4f", 1},
	} {
		tcase := tcase

		t.Run(tcase.Key, func(t *testing.T) {
			sub := trie.GetRawAncestor(tcase.Key)

			assert.Equal(t, tcase.ExpPrefix, sub.Prefix().String())
			assert.Equal(t, tcase.ExpLen, sub.Len())
		})
	}
}

func TestGetRawDescendant(t *testing.T) {
	t.Parallel()

	trie := helloTrie()

	for _, tcase := range []*struct {
		Key       string
		ExpPrefix string
		ExpKeys   []string
		ExpOK     bool
	}{
		{"", "", []string{"HELL", "HELLO", "hello", "help"}, true},
		{"h", "68656c", []string{"hello", "help"}, true},
		{"he", "68656c", []string{"hello", "help"}, true},
		{"hel", "68656c", []string{"hello", "help"}, true},
		{"hell", "68656c6c6f", []string{"hello"}, true},
		{"H", "48454c4c", []string{"HELL", "HELLO"}, true},
		{"HELLO", "48454c4c4f", []string{"HELLO"}, true},
		{"hex", "", nil, false},
		{"helpful", "", nil, false},
		{"q", "", nil, false},
	} {
		tcase := tcase

		t.Run(tcase.Key, func(t *testing.T) {
			sub, ok := trie.GetRawDescendant(tcase.Key)
			require.Equal(t, tcase.ExpOK, ok)

			if !ok {
				return
			}

			var keys []string
			for k := range sub.Keys() {
				keys = append(keys, k)
			}

			assert.Equal(t, tcase.ExpPrefix, sub.Prefix().String())
			assert.Equal(t, tcase.ExpKeys, keys)
		})
	}
}

// TestSearch_Oracle compares searches on random keys with armon/go-radix.
func TestSearch_Oracle(t *testing.T) {
	t.Parallel()

	var (
		trie   = NewDefault[string, int]()
		oracle = radix.New()
		keys   = randomKeys(987654321, 512)
		fake   = gofakeit.New(987654321)
	)

	for i, key := range keys[:256] {
		trie.Insert(key, i)
		oracle.Insert(key, i)
	}

	queries := append([]string{""}, keys...)
	for _, key := range keys[:64] {
		queries = append(queries, key+fake.LetterN(2), key[:len(key)/2])
	}

	for _, query := range queries {
		oracleKey, oracleVal, oracleOK := oracle.LongestPrefix(query)

		sub, ok := trie.GetAncestor(query)
		require.Equal(t, oracleOK, ok, query)

		if ok {
			key, _ := sub.Key()
			val, _ := sub.Value()
			assert.Equal(t, oracleKey, key, query)
			assert.Equal(t, oracleVal, val, query)
		}

		var expected []string
		oracle.WalkPrefix(query, func(key string, _ interface{}) bool {
			expected = append(expected, key)
			return false
		})

		sub, ok = trie.GetRawDescendant(query)
		require.Equal(t, len(expected) > 0, ok, query)

		if ok {
			var actual []string
			for k := range sub.Keys() {
				actual = append(actual, k)
			}

			if diff := cmp.Diff(expected, actual); diff != "" {
				t.Errorf("descendants of %q mismatch (-oracle +trie):\n%s", query, diff)
			}
		}
	}
}
