// Package patricia defines a compressed prefix tree (a radix or PATRICIA trie) with a
// branching factor of 16.
//
// Keys are encoded into bytes (see EncodeFunc) and then into nibbles (4-bit digits).
// Every node stores a fragment of nibbles, an optional key-value entry and up to 16
// children indexed by the first nibble of their fragments.
//
// The tree is kept maximally compressed: apart from the root, no node without a value
// has a single child. Insertion splits fragments when keys diverge inside them and
// removal merges a lonely child back into its parent.
//
// Example trie:
// ------------
//
//	[root] --+-- [4:"48454c4c" HELL=66] -- [4:"4f" HELLO=77]
//	         |
//	         `-- [6:"68656c"] --+-- [6:"6c6f" hello=55]
//	                            |
//	                            `-- [7:"70" help=1]
//
// (the first nibble of each fragment is also its bucket in the parent)
//
// The trie above contains the following keys: "hello", "help", "HELL" and "HELLO".
//
// All operations are synchronous and allocate at most a handful of nodes. A Trie is
// not safe for concurrent use; guard it with a lock when sharing it between goroutines.
package patricia
