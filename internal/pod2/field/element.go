// Package field implements arithmetic over the Goldilocks prime field
// p = 2^64 - 2^32 + 1 and the Poseidon-style hash primitives built on top
// of it (hash-of-sequence, hash_nodes, hash_leaf, hash_str).
//
// The element type is native-uint64-backed rather than big.Int-backed:
// the value encodings used here (from_hex, the two's-complement i64
// embedding, the 7-byte string packing) are all defined in terms of exact
// 64-bit limb layouts, which only round-trip cleanly against a fixed-width
// representation.
package field

import "math/bits"

// P is the Goldilocks prime: 2^64 - 2^32 + 1.
const P uint64 = 0xFFFFFFFF00000001

// epsilon is 2^64 mod P, i.e. 2^32 - 1. It is the constant used throughout
// this package to fold a carry/borrow out of the top word back into the
// bottom word during reduction.
const epsilon uint64 = (1 << 32) - 1

// Element is a canonically-reduced element of the Goldilocks field: its
// internal value always lies in [0, P).
type Element struct {
	v uint64
}

// Zero is the additive identity.
var Zero = Element{0}

// One is the multiplicative identity.
var One = Element{1}

func canonicalize(x uint64) uint64 {
	if x >= P {
		return x - P
	}
	return x
}

// New reduces an arbitrary uint64 into the field.
func New(x uint64) Element {
	return Element{canonicalize(x)}
}

// NewFromInt64 reduces a signed int64 into the field via two's-complement
// reinterpretation.
func NewFromInt64(x int64) Element {
	return New(uint64(x))
}

// Uint64 returns the canonical representative in [0, P).
func (e Element) Uint64() uint64 {
	return e.v
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.v == 0
}

// Equal reports field-element equality.
func (e Element) Equal(o Element) bool {
	return e.v == o.v
}

// Cmp orders canonical representatives, used to build the MSB-limb-first
// ordering on Hash and Value tuples.
func (e Element) Cmp(o Element) int {
	switch {
	case e.v < o.v:
		return -1
	case e.v > o.v:
		return 1
	default:
		return 0
	}
}

// Add returns e + o.
func (e Element) Add(o Element) Element {
	sum, carry := bits.Add64(e.v, o.v, 0)
	if carry != 0 {
		sum += epsilon
	}
	return Element{canonicalize(sum)}
}

// Sub returns e - o.
func (e Element) Sub(o Element) Element {
	diff, borrow := bits.Sub64(e.v, o.v, 0)
	if borrow != 0 {
		diff -= epsilon
	}
	return Element{diff}
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.v == 0 {
		return e
	}
	return Element{P - e.v}
}

// reduce128 folds a 128-bit product (hi, lo) back into a canonical field
// element, using 2^64 ≡ epsilon (mod P) twice: once to fold the high half
// of the high word, once to fold the resulting carry.
func reduce128(hi, lo uint64) uint64 {
	hiHi := hi >> 32
	hiLo := hi & epsilon

	t0, borrow := bits.Sub64(lo, hiHi, 0)
	if borrow != 0 {
		t0 -= epsilon
	}

	t1 := hiLo * epsilon

	t2, carry := bits.Add64(t0, t1, 0)
	if carry != 0 {
		t2 += epsilon
	}
	return canonicalize(t2)
}

// Mul returns e * o.
func (e Element) Mul(o Element) Element {
	hi, lo := bits.Mul64(e.v, o.v)
	return Element{reduce128(hi, lo)}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Exp returns e^n via square-and-multiply.
func (e Element) Exp(n uint64) Element {
	result := One
	base := e
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Square()
		n >>= 1
	}
	return result
}

// Inv returns the multiplicative inverse of e via Fermat's little theorem
// (e^(P-2)). Panics on zero, mirroring the field's mathematical undefined
// behavior; callers that can receive zero must check IsZero first.
func (e Element) Inv() Element {
	if e.IsZero() {
		panic("field: inverse of zero")
	}
	return e.Exp(P - 2)
}

// Div returns e / o.
func (e Element) Div(o Element) Element {
	return e.Mul(o.Inv())
}
