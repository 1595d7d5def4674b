// Package types implements the domain value types that sit on top of
// internal/pod2/field: Value (the tagged 4-field-element payload carried
// by every container entry and statement argument) and PodId/AnchoredKey
// (the naming scheme that ties a statement argument to the POD it came
// from).
package types

import (
	"github.com/holiman/uint256"

	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
)

// Value is a tuple of four field elements carrying one of: an integer in
// [-2^63, 2^63), a boolean (the integer 0 or 1), a string (H(s)), a
// container commitment (a Merkle root), or a raw 4-tuple.
type Value struct {
	d field.Digest
}

// Empty is the all-zero value.
var Empty = Value{field.NullDigest}

// Int64 encodes a signed integer as (lo32, hi32, 0, 0), splitting the
// value's two's-complement u64 representation into two 32-bit halves.
func Int64(v int64) Value {
	u := uint64(v)
	lo := u & 0xFFFFFFFF
	hi := u >> 32
	return Value{field.Digest{field.New(lo), field.New(hi), field.Zero, field.Zero}}
}

// Bool encodes a boolean as the integer 0 or 1.
func Bool(b bool) Value {
	if b {
		return Int64(1)
	}
	return Int64(0)
}

// String encodes a string as H(s).
func String(s string) Value {
	return Value{field.HashStr(s)}
}

// Raw wraps an arbitrary 4-tuple with no interpretation.
func Raw(d field.Digest) Value {
	return Value{d}
}

// FromContainerRoot wraps a container's Merkle root as its commitment
// Value.
func FromContainerRoot(root field.Digest) Value {
	return Value{root}
}

// Digest returns the underlying 4-tuple.
func (v Value) Digest() field.Digest {
	return v.d
}

// Equal reports elementwise equality.
func (v Value) Equal(o Value) bool {
	return v.d.Equal(o.d)
}

// Compare orders values using the same MSB-limb-first rule as Hash.
func (v Value) Compare(o Value) int {
	return v.d.Compare(o.d)
}

// IsIntShape reports whether v matches the integer encoding's shape:
// v[2] = v[3] = 0 and v[0], v[1] < 2^32. Per spec this is a shape test,
// not a tag: any value matching it is treated as an integer for display
// and for arithmetic operations.
func (v Value) IsIntShape() bool {
	return v.d[2].IsZero() && v.d[3].IsZero() &&
		v.d[0].Uint64() < (1<<32) && v.d[1].Uint64() < (1<<32)
}

// AsInt64 decodes v as a signed integer, per spec §9's corrected
// precedence: a + (b << 32), with two's-complement round-tripping.
func (v Value) AsInt64() (int64, error) {
	if !v.IsIntShape() {
		return 0, pod2err.New(pod2err.ValueNotInI64Embedding, "value is not shaped like an integer")
	}
	lo := v.d[0].Uint64()
	hi := v.d[1].Uint64()
	u := lo + (hi << 32)
	return int64(u), nil
}

// AsBool decodes v as a boolean, requiring it to be exactly 0 or 1.
func (v Value) AsBool() (bool, error) {
	n, err := v.AsInt64()
	if err != nil {
		return false, err
	}
	switch n {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, pod2err.New(pod2err.ValueNotInI64Embedding, "value is not a boolean 0/1")
	}
}

// ValueFromHex parses a "0x"-prefixed hex string into a Value using
// holiman/uint256: uint256.Int is internally four little-endian uint64
// words, where limb_i is the little-endian u64 read from byte offset 8i —
// exactly Value's own layout.
func ValueFromHex(hexStr string) (Value, error) {
	u, err := uint256.FromHex(hexStr)
	if err != nil {
		return Value{}, pod2err.Wrap(pod2err.ValueNotInI64Embedding, "invalid hex value", err)
	}
	return Value{field.Digest{
		field.New(u[0]), field.New(u[1]), field.New(u[2]), field.New(u[3]),
	}}, nil
}

// Hex renders v as a "0x"-prefixed hex string via holiman/uint256.
func (v Value) Hex() string {
	u := &uint256.Int{v.d[0].Uint64(), v.d[1].Uint64(), v.d[2].Uint64(), v.d[3].Uint64()}
	return u.Hex()
}
