package patricia

import (
	"encoding/binary"
	"errors"
	"fmt"
	"reflect"

	"github.com/aglyzov/go-patricia/nibble"
)

var (
	// ErrOutOfScope is returned by subtrie views for keys that do not extend the
	// view's prefix.
	ErrOutOfScope = errors.New("key is outside of the subtrie")

	// ErrKeyCollision is the panic value (wrapped) raised when two distinct keys turn
	// out to share one encoding.
	ErrKeyCollision = errors.New("multiple keys with the same encoding")

	// ErrCorrupt wraps every violation reported by CheckIntegrity.
	ErrCorrupt = errors.New("trie invariant violated")
)

// EncodeFunc converts a key into the bytes it is indexed by.
//
// Keys that are distinct under == must have distinct encodings. The trie cannot
// verify it up front: a collision is only noticed when both keys meet at the same
// node, and then the trie panics with ErrKeyCollision.
type EncodeFunc[K any] func(K) []byte

// KeyEncoder is implemented by key types that know their own byte encoding.
type KeyEncoder interface {
	EncodeKey() []byte
}

// DefaultEncode is the EncodeFunc of a zero-value Trie and of NewDefault.
//
// It handles KeyEncoder implementations, strings, booleans, integers (big-endian
// with the sign bit flipped, so that iteration follows numeric order) and byte
// arrays, including named types based on them. It panics for anything else.
func DefaultEncode[K comparable](key K) []byte {
	switch k := any(key).(type) {
	case KeyEncoder:
		return k.EncodeKey()
	case string:
		return []byte(k)
	case bool:
		if k {
			return []byte{1}
		}
		return []byte{0}
	}

	var (
		val = reflect.ValueOf(key)
		buf [8]byte
	)

	switch val.Kind() {
	case reflect.String:
		return []byte(val.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		size := int(val.Type().Size())
		sign := uint64(1) << (size*8 - 1)
		binary.BigEndian.PutUint64(buf[:], uint64(val.Int())^sign)

		return buf[8-size:]

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		size := int(val.Type().Size())
		binary.BigEndian.PutUint64(buf[:], val.Uint())

		return buf[8-size:]

	case reflect.Array:
		if val.Type().Elem().Kind() == reflect.Uint8 {
			out := make([]byte, val.Len())
			for i := range out {
				out[i] = byte(val.Index(i).Uint())
			}
			return out
		}
	}

	panic(fmt.Sprintf("patricia: no default encoding for keys of type %T, use New with an EncodeFunc", key))
}

// MatchKind tells how two nibble sequences relate to each other.
type MatchKind uint8

const (
	// MatchFull - both sequences are identical.
	MatchFull MatchKind = iota
	// MatchPartial - the sequences differ at KeyMatch.Index.
	MatchPartial
	// MatchFirstPrefix - the first sequence is a strict prefix of the second.
	MatchFirstPrefix
	// MatchSecondPrefix - the second sequence is a strict prefix of the first.
	MatchSecondPrefix
)

func (kind MatchKind) String() string {
	switch kind {
	case MatchFull:
		return "full"
	case MatchPartial:
		return "partial"
	case MatchFirstPrefix:
		return "first-prefix"
	case MatchSecondPrefix:
		return "second-prefix"
	}

	return fmt.Sprintf("MatchKind(%d)", uint8(kind))
}

// KeyMatch is the result of MatchKeys. Index is the first differing position and is
// only meaningful for MatchPartial.
type KeyMatch struct {
	Kind  MatchKind
	Index int
}

// MatchKeys compares a query sequence (first) with a stored fragment (second).
func MatchKeys(first, second nibble.Vec) KeyMatch {
	var (
		firstLen  = first.Len()
		secondLen = second.Len()
		minLen    = min(firstLen, secondLen)
	)

	for i := 0; i < minLen; i++ {
		if first.Get(i) != second.Get(i) {
			return KeyMatch{Kind: MatchPartial, Index: i}
		}
	}

	switch {
	case firstLen == secondLen:
		return KeyMatch{Kind: MatchFull}
	case firstLen < secondLen:
		return KeyMatch{Kind: MatchFirstPrefix}
	default:
		return KeyMatch{Kind: MatchSecondPrefix}
	}
}

// encodeKey returns the nibbles a key is stored under.
func (t *Trie[K, V]) encodeKey(key K) nibble.Vec {
	if t.encode == nil {
		return nibble.FromBytes(DefaultEncode(key))
	}

	return nibble.FromBytes(t.encode(key))
}

// checkKeys panics when a stored key differs from the requested one although both
// were found under the same encoding.
func (t *Trie[K, V]) checkKeys(stored, requested K) {
	if stored == requested {
		return
	}

	err := fmt.Errorf("%w: %v and %v", ErrKeyCollision, stored, requested)
	t.logger().Error("broken key encoding", "error", err)

	panic(err)
}
