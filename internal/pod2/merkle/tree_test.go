package merkle

import (
	"testing"

	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

func tinyDict() map[types.Value]types.Value {
	return map[types.Value]types.Value{
		types.Int64(0):  types.Int64(1000),
		types.Int64(2):  types.Int64(1002),
		types.Int64(13): types.Int64(1013),
	}
}

func TestBuildDeterminism(t *testing.T) {
	kvs := tinyDict()
	t1, err := Build(kvs, 32)
	if err != nil {
		t.Fatal(err)
	}
	// Build a second time from the same contents, constructed via a
	// different map literal (and therefore, potentially, different Go map
	// iteration order) to confirm the root depends only on the set of
	// pairs, not insertion order.
	reordered := map[types.Value]types.Value{
		types.Int64(13): types.Int64(1013),
		types.Int64(0):  types.Int64(1000),
		types.Int64(2):  types.Int64(1002),
	}
	t2, err := Build(reordered, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !t1.Root().Equal(t2.Root()) {
		t.Error("Merkle root depends on map iteration order")
	}
}

func TestGetAndExistenceProof(t *testing.T) {
	tree, err := Build(tinyDict(), 32)
	if err != nil {
		t.Fatal(err)
	}
	got, err := tree.Get(types.Int64(13))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(types.Int64(1013)) {
		t.Errorf("Get(13) = %v, want 1013", got)
	}

	v, proof, err := tree.Prove(types.Int64(13))
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyExistence(tree.MaxDepth(), tree.Root(), proof, types.Int64(13), v); err != nil {
		t.Errorf("existence proof did not verify: %v", err)
	}
}

func TestExistenceProofRejectsTamperedValue(t *testing.T) {
	tree, err := Build(tinyDict(), 32)
	if err != nil {
		t.Fatal(err)
	}
	_, proof, err := tree.Prove(types.Int64(13))
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyExistence(tree.MaxDepth(), tree.Root(), proof, types.Int64(13), types.Int64(9999)); err == nil {
		t.Error("expected verification to fail against a tampered value")
	}
}

func TestExistenceProofRejectsTamperedSibling(t *testing.T) {
	tree, err := Build(tinyDict(), 32)
	if err != nil {
		t.Fatal(err)
	}
	v, proof, err := tree.Prove(types.Int64(13))
	if err != nil {
		t.Fatal(err)
	}
	if len(proof.Siblings) == 0 {
		t.Skip("no siblings to tamper with")
	}
	proof.Siblings[0] = field.HashStr("not a real sibling")
	if err := VerifyExistence(tree.MaxDepth(), tree.Root(), proof, types.Int64(13), v); err == nil {
		t.Error("expected verification to fail against a tampered sibling")
	}
}

func TestNonExistenceAtOtherLeaf(t *testing.T) {
	tree, err := Build(tinyDict(), 32)
	if err != nil {
		t.Fatal(err)
	}
	// Key 1's path bit 0 is 1, which leads straight to the leaf for key 13
	// (the only key with bit 0 set), so this is the other-leaf case.
	proof, err := tree.ProveNonExistence(types.Int64(1))
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyNonExistence(tree.MaxDepth(), tree.Root(), types.Int64(1), proof); err != nil {
		t.Errorf("non-existence proof did not verify: %v", err)
	}
}

func TestProveNonExistenceRejectsExistingKey(t *testing.T) {
	tree, err := Build(tinyDict(), 32)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tree.ProveNonExistence(types.Int64(13)); err == nil {
		t.Error("expected ProveNonExistence to fail for an existing key")
	}
}

func TestBuildRejectsDuplicateKey(t *testing.T) {
	kvs := map[types.Value]types.Value{types.Int64(1): types.Int64(2)}
	tree, err := Build(kvs, 32)
	if err != nil {
		t.Fatal(err)
	}
	_, err = insert(tree.root, &node{kind: kindLeaf, key: types.Int64(1), value: types.Int64(3)}, types.Int64(1).Digest().ToBytes(), 0, 32)
	if err == nil {
		t.Error("expected inserting a duplicate key to fail")
	}
}
