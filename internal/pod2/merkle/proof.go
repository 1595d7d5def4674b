package merkle

import (
	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// ExistenceProof is the sibling list accumulated while descending to a
// leaf, in root-to-leaf order.
type ExistenceProof struct {
	Siblings []field.Digest
}

// Prove builds an existence proof for key, failing with KeyNotFound if
// absent.
func (t *Tree) Prove(key types.Value) (types.Value, *ExistenceProof, error) {
	final, siblings, _, err := t.descend(key.Digest().ToBytes())
	if err != nil {
		return types.Value{}, nil, err
	}
	if final == nil || final.kind != kindLeaf || !final.key.Equal(key) {
		return types.Value{}, nil, pod2err.New(pod2err.KeyNotFound, "leaf not found")
	}
	return final.value, &ExistenceProof{Siblings: siblings}, nil
}

// VerifyExistence recomputes the root from (key, value, proof) and
// compares it against root.
func VerifyExistence(maxDepth int, root field.Digest, proof *ExistenceProof, key, value types.Value) error {
	if !(len(proof.Siblings) < maxDepth) {
		return pod2err.New(pod2err.ProofDoesNotVerify, "siblings count must be less than max depth")
	}
	keyBytes := key.Digest().ToBytes()
	h := field.HashLeaf(key.Digest(), value.Digest())
	for i := len(proof.Siblings) - 1; i >= 0; i-- {
		if bitAt(keyBytes, i) {
			h = field.HashNodes(proof.Siblings[i], h)
		} else {
			h = field.HashNodes(h, proof.Siblings[i])
		}
	}
	if !h.Equal(root) {
		return pod2err.New(pod2err.ProofDoesNotVerify, "proof does not verify")
	}
	return nil
}

// OtherLeaf carries the colliding-prefix leaf used by a non-existence
// proof's case (b).
type OtherLeaf struct {
	Key, Value types.Value
}

// NonExistenceProof carries the siblings collected down to the point of
// divergence, plus (case b only) the other leaf found there.
type NonExistenceProof struct {
	Siblings  []field.Digest
	OtherLeaf *OtherLeaf
}

// ProveNonExistence builds a non-existence proof for key. Case (a): the
// descent terminates at an empty child. Case (b): it terminates at a
// leaf whose key differs from the query.
func (t *Tree) ProveNonExistence(key types.Value) (*NonExistenceProof, error) {
	final, siblings, _, err := t.descend(key.Digest().ToBytes())
	if err != nil {
		return nil, err
	}
	if final == nil {
		return &NonExistenceProof{Siblings: siblings}, nil
	}
	if final.kind == kindLeaf {
		if final.key.Equal(key) {
			return nil, pod2err.New(pod2err.KeyExists, "key exists, cannot prove non-existence")
		}
		return &NonExistenceProof{
			Siblings:  siblings,
			OtherLeaf: &OtherLeaf{Key: final.key, Value: final.value},
		}, nil
	}
	return nil, pod2err.New(pod2err.MaxDepthReached, "max depth reached")
}

// VerifyNonExistence recomputes the root for either proof case and
// additionally checks, for case (b), that the other leaf's key differs
// from the query and that the two keys' paths agree for the first
// len(Siblings) bits.
func VerifyNonExistence(maxDepth int, root field.Digest, key types.Value, proof *NonExistenceProof) error {
	keyBytes := key.Digest().ToBytes()
	var h field.Digest

	if proof.OtherLeaf == nil {
		h = field.NullDigest
	} else {
		if proof.OtherLeaf.Key.Equal(key) {
			return pod2err.New(pod2err.ProofDoesNotVerify, "other leaf key equals queried key")
		}
		otherBytes := proof.OtherLeaf.Key.Digest().ToBytes()
		for i := 0; i < len(proof.Siblings); i++ {
			if bitAt(keyBytes, i) != bitAt(otherBytes, i) {
				return pod2err.New(pod2err.ProofDoesNotVerify, "key paths diverge before claimed depth")
			}
		}
		h = field.HashLeaf(proof.OtherLeaf.Key.Digest(), proof.OtherLeaf.Value.Digest())
	}

	for i := len(proof.Siblings) - 1; i >= 0; i-- {
		if bitAt(keyBytes, i) {
			h = field.HashNodes(proof.Siblings[i], h)
		} else {
			h = field.HashNodes(h, proof.Siblings[i])
		}
	}
	if !h.Equal(root) {
		return pod2err.New(pod2err.ProofDoesNotVerify, "proof does not verify")
	}
	return nil
}
