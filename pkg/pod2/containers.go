package pod2

import (
	"github.com/pod-network/pod2-go/internal/pod2/container"
	"github.com/pod-network/pod2-go/internal/pod2/merkle"
)

// ExistenceProof is a Merkle existence proof's sibling list.
type ExistenceProof = merkle.ExistenceProof

// NonExistenceProof is a Merkle non-existence proof.
type NonExistenceProof = merkle.NonExistenceProof

// Dictionary wraps a Merkle tree whose leaf key is H(user_key).
type Dictionary = container.Dictionary

// Set wraps a Merkle tree whose leaf key is hash(user_value).
type Set = container.Set

// Array wraps a Merkle tree whose leaf key is V::from(index).
type Array = container.Array

// NewDictionary builds a Dictionary from a string-keyed value map.
func NewDictionary(kvs map[string]Value, maxDepth int) (*Dictionary, error) {
	return container.NewDictionary(kvs, maxDepth)
}

// NewSet builds a Set from its member values.
func NewSet(members []Value, maxDepth int) (*Set, error) {
	return container.NewSet(members, maxDepth)
}

// NewArray builds an Array from an ordered element slice.
func NewArray(elements []Value, maxDepth int) (*Array, error) {
	return container.NewArray(elements, maxDepth)
}
