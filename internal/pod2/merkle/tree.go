package merkle

import (
	"sort"

	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// Tree is a sparse binary Merkle tree bounded by MaxDepth.
type Tree struct {
	maxDepth int
	root     *node
}

// MaxDepth returns the tree's configured maximum depth.
func (t *Tree) MaxDepth() int {
	return t.maxDepth
}

// Root returns the Merkle root (the commitment).
func (t *Tree) Root() field.Digest {
	return t.root.digest()
}

// Build constructs a tree from an unordered set of key/value pairs.
// Insertion is internally ordered by key to keep the build deterministic
// regardless of how the caller enumerated kvs (the final tree shape is a
// pure function of the key set either way; sorting removes any
// dependence on Go's randomized map iteration from the code path itself).
func Build(kvs map[types.Value]types.Value, maxDepth int) (*Tree, error) {
	type kv struct{ k, v types.Value }
	pairs := make([]kv, 0, len(kvs))
	for k, v := range kvs {
		pairs = append(pairs, kv{k, v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].k.Compare(pairs[j].k) < 0
	})

	t := &Tree{maxDepth: maxDepth}
	for _, p := range pairs {
		leaf := &node{kind: kindLeaf, key: p.k, value: p.v}
		keyBytes := p.k.Digest().ToBytes()
		newRoot, err := insert(t.root, leaf, keyBytes, 0, maxDepth)
		if err != nil {
			return nil, err
		}
		t.root = newRoot
	}
	return t, nil
}

func insert(cur, leaf *node, leafKeyBytes [32]byte, lvl, maxDepth int) (*node, error) {
	if cur == nil {
		return leaf, nil
	}
	if cur.kind == kindLeaf {
		if cur.key.Equal(leaf.key) {
			return nil, pod2err.New(pod2err.KeyExists, "key already exists")
		}
		return mergeLeaves(cur, leaf, lvl, maxDepth)
	}
	if lvl >= maxDepth {
		return nil, pod2err.New(pod2err.MaxDepthReached, "max depth reached")
	}
	bit := bitAt(leafKeyBytes, lvl)
	if bit {
		child, err := insert(cur.right, leaf, leafKeyBytes, lvl+1, maxDepth)
		if err != nil {
			return nil, err
		}
		cur.right = child
	} else {
		child, err := insert(cur.left, leaf, leafKeyBytes, lvl+1, maxDepth)
		if err != nil {
			return nil, err
		}
		cur.left = child
	}
	cur.hashSet = false
	return cur, nil
}

// mergeLeaves resolves a collision between an existing leaf and a newly
// inserted leaf at level lvl: if their path bits still agree, push both
// down together; once they diverge at level d, attach them as the two
// children, with the new leaf going right iff its bit at d is true.
func mergeLeaves(existing, newLeaf *node, lvl, maxDepth int) (*node, error) {
	if lvl >= maxDepth {
		return nil, pod2err.New(pod2err.MaxDepthReached, "max depth reached")
	}
	existingBytes := existing.key.Digest().ToBytes()
	newBytes := newLeaf.key.Digest().ToBytes()
	eBit := bitAt(existingBytes, lvl)
	nBit := bitAt(newBytes, lvl)

	if eBit == nBit {
		child, err := mergeLeaves(existing, newLeaf, lvl+1, maxDepth)
		if err != nil {
			return nil, err
		}
		inter := &node{kind: kindIntermediate}
		if nBit {
			inter.right = child
		} else {
			inter.left = child
		}
		return inter, nil
	}

	inter := &node{kind: kindIntermediate}
	if nBit {
		inter.right, inter.left = newLeaf, existing
	} else {
		inter.left, inter.right = newLeaf, existing
	}
	return inter, nil
}

// descend walks the tree along a key's path, returning the node it
// terminates on (nil for an empty child, or a leaf) plus the sibling
// digests collected in root-to-leaf order. If max depth is exhausted while
// still on an intermediate node, it returns a nil node and a
// MaxDepthReached error.
func (t *Tree) descend(keyBytes [32]byte) (final *node, siblings []field.Digest, depth int, err error) {
	cur := t.root
	for lvl := 0; lvl < t.maxDepth; lvl++ {
		if cur == nil || cur.kind == kindLeaf {
			return cur, siblings, lvl, nil
		}
		bit := bitAt(keyBytes, lvl)
		var sibling *node
		if bit {
			sibling, cur = cur.left, cur.right
		} else {
			sibling, cur = cur.right, cur.left
		}
		siblings = append(siblings, sibling.digest())
	}
	if cur != nil && cur.kind == kindIntermediate {
		return nil, nil, 0, pod2err.New(pod2err.MaxDepthReached, "max depth reached")
	}
	return cur, siblings, t.maxDepth, nil
}

// Get performs a point lookup, failing with KeyNotFound if the key is
// absent (callers expecting absence should use ProveNonExistence).
func (t *Tree) Get(key types.Value) (types.Value, error) {
	final, _, _, err := t.descend(key.Digest().ToBytes())
	if err != nil {
		return types.Value{}, err
	}
	if final == nil || final.kind != kindLeaf || !final.key.Equal(key) {
		return types.Value{}, pod2err.New(pod2err.KeyNotFound, "leaf not found")
	}
	return final.value, nil
}
