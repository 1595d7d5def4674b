package field

import "encoding/binary"

// Digest is a tuple of four field elements. It underlies both the Hash
// type (Merkle roots, PodIds) and the Value type (dictionary/set/array
// entries): both share the same ordering and byte encoding rules.
type Digest [4]Element

// NullDigest is the all-zero digest, used as NULL / EMPTY depending on
// context (no POD, no value, empty Merkle child).
var NullDigest = Digest{Zero, Zero, Zero, Zero}

// SelfDigest denotes the POD currently being built.
var SelfDigest = Digest{One, Zero, Zero, Zero}

// Equal reports elementwise equality.
func (d Digest) Equal(o Digest) bool {
	return d[0].Equal(o[0]) && d[1].Equal(o[1]) && d[2].Equal(o[2]) && d[3].Equal(o[3])
}

// Compare orders digests lexicographically on their canonical u64
// representations, most-significant limb (index 3) first: limbs are in
// little-endian order, as in ToBytes and DigestFromHex.
func (d Digest) Compare(o Digest) int {
	for i := 3; i >= 0; i-- {
		if c := d[i].Cmp(o[i]); c != 0 {
			return c
		}
	}
	return 0
}

// IsNull reports whether d is the all-zero digest.
func (d Digest) IsNull() bool {
	return d.Equal(NullDigest)
}

// ToBytes returns the little-endian byte encoding used for Merkle key
// paths: each limb's 8-byte little-endian encoding, concatenated in
// limb order.
func (d Digest) ToBytes() [32]byte {
	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:i*8+8], d[i].Uint64())
	}
	return out
}

// DigestFromHex parses 32 little-endian bytes into four u64 limbs:
// limb_i = u64::from_le_bytes(bytes[8i:8i+8]).
func DigestFromHex(bytes32 [32]byte) Digest {
	var d Digest
	for i := 0; i < 4; i++ {
		d[i] = New(binary.LittleEndian.Uint64(bytes32[i*8 : i*8+8]))
	}
	return d
}

// Elements returns the four field elements as a slice, in limb order.
func (d Digest) Elements() []Element {
	return []Element{d[0], d[1], d[2], d[3]}
}
