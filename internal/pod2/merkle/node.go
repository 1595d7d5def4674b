// Package merkle implements the sparse binary Merkle tree over
// internal/pod2/types.Value keys and values: build, point lookup,
// existence proof, and non-existence proof (via an empty child or a
// colliding leaf along the descent path).
package merkle

import "github.com/pod-network/pod2-go/internal/pod2/field"
import "github.com/pod-network/pod2-go/internal/pod2/types"

type nodeKind int

const (
	kindEmpty nodeKind = iota
	kindLeaf
	kindIntermediate
)

// node is nil for an empty child; otherwise it is tagged leaf or
// intermediate.
type node struct {
	kind        nodeKind
	key, value  types.Value
	left, right *node

	hashSet bool
	hash    field.Digest
}

func (n *node) digest() field.Digest {
	if n == nil {
		return field.NullDigest
	}
	if n.hashSet {
		return n.hash
	}
	var h field.Digest
	switch n.kind {
	case kindLeaf:
		h = field.HashLeaf(n.key.Digest(), n.value.Digest())
	case kindIntermediate:
		h = field.HashNodes(n.left.digest(), n.right.digest())
	}
	n.hash, n.hashSet = h, true
	return h
}

// bitAt reads bit_i = (bytes[i/8] >> (i%8)) & 1 of a key's little-endian
// byte encoding.
func bitAt(keyBytes [32]byte, i int) bool {
	return (keyBytes[i/8]>>uint(i%8))&1 == 1
}
