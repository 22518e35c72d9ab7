// Package nibble encodes byte strings as ordered sequences of 4-bit digits.
//
// A Vec packs two nibbles per byte, the high half first:
//
//	bytes:    [ 0x6c       ] [ 0x6f       ]
//	nibbles:  [ 6 ] [ c    ] [ 6 ] [ f    ]
//	index:      0     1        2     3
//
// so the nibble order of two vectors is the same as the lexicographic order of the
// bytes they were made from. The unused low half of the last byte of an odd-length
// vector is always zero.
package nibble

import (
	"bytes"
	"fmt"
	"strings"
)

const (
	Width   = 4               // bits per nibble
	Radix   = 1 << Width      // distinct nibble values, 16
	perByte = 8 / Width       // nibbles packed into a byte
	lowMask = byte(Radix - 1) // 0b_0000_1111
	hexSet  = "0123456789abcdef"
)

// Vec is an ordered sequence of nibbles. Vectors are never modified in place:
// every operation returns a new, independent vector.
type Vec struct {
	data   []byte
	length int
}

// FromBytes returns the nibbles of b. The vector owns a copy of b.
func FromBytes(b []byte) Vec {
	data := make([]byte, len(b))
	copy(data, b)

	return Vec{data: data, length: len(b) * perByte}
}

// New builds a vector from raw digits, each of them must be less than Radix.
func New(nibbles ...byte) Vec {
	vec := alloc(len(nibbles))

	for i, nib := range nibbles {
		if nib >= Radix {
			panic(fmt.Sprintf("nibble: digit %#x at %d does not fit in %d bits", nib, i, Width))
		}
		vec.put(i, nib)
	}

	return vec
}

func alloc(length int) Vec {
	return Vec{
		data:   make([]byte, (length+1)/perByte),
		length: length,
	}
}

// put sets a nibble of a freshly allocated (zeroed) vector.
func (v Vec) put(i int, nib byte) {
	if i&1 == 0 {
		v.data[i>>1] |= nib << Width
	} else {
		v.data[i>>1] |= nib
	}
}

// Len returns the number of nibbles.
func (v Vec) Len() int {
	return v.length
}

func (v Vec) IsEmpty() bool {
	return v.length == 0
}

// Get returns the nibble at index i.
func (v Vec) Get(i int) byte {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("nibble: index %d out of range [0:%d]", i, v.length))
	}

	b := v.data[i>>1]

	if i&1 == 0 {
		return b >> Width
	}

	return b & lowMask
}

// Split returns the first idx nibbles and the remaining ones as two independent
// vectors.
func (v Vec) Split(idx int) (head, tail Vec) {
	if idx < 0 || idx > v.length {
		panic(fmt.Sprintf("nibble: split index %d out of range [0:%d]", idx, v.length))
	}

	return v.slice(0, idx), v.slice(idx, v.length)
}

// slice copies nibbles [from:to) into a new vector.
func (v Vec) slice(from, to int) Vec {
	out := alloc(to - from)

	if from&1 == 0 {
		// aligned - copy whole bytes and clear a trailing half
		copy(out.data, v.data[from>>1:])

		if out.length&1 == 1 {
			out.data[len(out.data)-1] &^= lowMask
		}

		return out
	}

	for i := 0; i < out.length; i++ {
		out.put(i, v.Get(from+i))
	}

	return out
}

// Join returns the concatenation of v and other.
func (v Vec) Join(other Vec) Vec {
	out := alloc(v.length + other.length)

	copy(out.data, v.data)

	if v.length&1 == 0 {
		copy(out.data[v.length>>1:], other.data)

		return out
	}

	for i := 0; i < other.length; i++ {
		out.put(v.length+i, other.Get(i))
	}

	return out
}

// Push returns v with one more nibble appended.
func (v Vec) Push(nib byte) Vec {
	return v.Join(New(nib))
}

func (v Vec) Equal(other Vec) bool {
	return v.length == other.length && bytes.Equal(v.data, other.data)
}

// Bytes decodes the vector back into bytes. It fails for an odd number of nibbles.
func (v Vec) Bytes() ([]byte, bool) {
	if v.length&1 == 1 {
		return nil, false
	}

	out := make([]byte, len(v.data))
	copy(out, v.data)

	return out, true
}

// String returns one lowercase hex digit per nibble.
func (v Vec) String() string {
	var b strings.Builder

	b.Grow(v.length)

	for i := 0; i < v.length; i++ {
		b.WriteByte(hexSet[v.Get(i)])
	}

	return b.String()
}
