// Package container adapts internal/pod2/merkle to three container
// flavors: Dictionary, Set, and Array. Each wraps one Merkle tree and
// maps its user-facing operations onto Tree.Get/Prove/ProveNonExistence —
// a thin convenience-wrapper layer.
package container

import (
	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/merkle"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// Dictionary wraps a Merkle tree whose leaf key is H(user_key) and whose
// leaf value is the user value directly.
type Dictionary struct {
	tree *merkle.Tree
}

// NewDictionary builds a Dictionary from a string-keyed value map.
func NewDictionary(kvs map[string]types.Value, maxDepth int) (*Dictionary, error) {
	leaves := make(map[types.Value]types.Value, len(kvs))
	for k, v := range kvs {
		leaves[types.String(k)] = v
	}
	tree, err := merkle.Build(leaves, maxDepth)
	if err != nil {
		return nil, err
	}
	return &Dictionary{tree: tree}, nil
}

// Commitment returns the dictionary's Merkle root.
func (d *Dictionary) Commitment() field.Digest {
	return d.tree.Root()
}

// Get looks up a value by its original string key.
func (d *Dictionary) Get(key string) (types.Value, error) {
	return d.tree.Get(types.String(key))
}

// Prove builds an existence proof for key.
func (d *Dictionary) Prove(key string) (types.Value, *merkle.ExistenceProof, error) {
	return d.tree.Prove(types.String(key))
}

// ProveNonExistence builds a non-existence proof for key.
func (d *Dictionary) ProveNonExistence(key string) (*merkle.NonExistenceProof, error) {
	return d.tree.ProveNonExistence(types.String(key))
}

// Set wraps a Merkle tree whose leaf key is hash(user_value) and whose
// leaf value is always EMPTY; membership is existence of the key.
type Set struct {
	tree *merkle.Tree
}

// NewSet builds a Set from its member values.
func NewSet(members []types.Value, maxDepth int) (*Set, error) {
	leaves := make(map[types.Value]types.Value, len(members))
	for _, m := range members {
		leaves[types.Raw(field.HashSeq(m.Digest().Elements()))] = types.Empty
	}
	tree, err := merkle.Build(leaves, maxDepth)
	if err != nil {
		return nil, err
	}
	return &Set{tree: tree}, nil
}

// Commitment returns the set's Merkle root.
func (s *Set) Commitment() field.Digest {
	return s.tree.Root()
}

func setKey(v types.Value) types.Value {
	return types.Raw(field.HashSeq(v.Digest().Elements()))
}

// Contains reports whether v is a member.
func (s *Set) Contains(v types.Value) bool {
	_, err := s.tree.Get(setKey(v))
	return err == nil
}

// Prove builds an existence proof for v's membership.
func (s *Set) Prove(v types.Value) (*merkle.ExistenceProof, error) {
	_, proof, err := s.tree.Prove(setKey(v))
	return proof, err
}

// ProveNonExistence builds a non-membership proof for v.
func (s *Set) ProveNonExistence(v types.Value) (*merkle.NonExistenceProof, error) {
	return s.tree.ProveNonExistence(setKey(v))
}

// Array wraps a Merkle tree whose leaf key is V::from(index) and whose
// leaf value is the element.
type Array struct {
	tree *merkle.Tree
	len  int
}

// NewArray builds an Array from an ordered element slice.
func NewArray(elements []types.Value, maxDepth int) (*Array, error) {
	leaves := make(map[types.Value]types.Value, len(elements))
	for i, v := range elements {
		leaves[types.Int64(int64(i))] = v
	}
	tree, err := merkle.Build(leaves, maxDepth)
	if err != nil {
		return nil, err
	}
	return &Array{tree: tree, len: len(elements)}, nil
}

// Commitment returns the array's Merkle root.
func (a *Array) Commitment() field.Digest {
	return a.tree.Root()
}

// Len returns the number of elements committed.
func (a *Array) Len() int {
	return a.len
}

// Get looks up the element at index.
func (a *Array) Get(index int) (types.Value, error) {
	return a.tree.Get(types.Int64(int64(index)))
}

// Prove builds an existence proof for the element at index.
func (a *Array) Prove(index int) (types.Value, *merkle.ExistenceProof, error) {
	return a.tree.Prove(types.Int64(int64(index)))
}
