package container

import (
	"testing"

	"github.com/pod-network/pod2-go/internal/pod2/types"
)

func TestDictionaryGetAndProve(t *testing.T) {
	d, err := NewDictionary(map[string]types.Value{
		"name": types.String("alice"),
		"age":  types.Int64(30),
	}, 32)
	if err != nil {
		t.Fatal(err)
	}

	v, err := d.Get("age")
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(types.Int64(30)) {
		t.Errorf("Get(age) = %v, want 30", v)
	}

	if _, err := d.Get("missing"); err == nil {
		t.Error("expected Get of an absent key to fail")
	}

	_, proof, err := d.Prove("age")
	if err != nil {
		t.Fatal(err)
	}
	if len(proof.Siblings) < 0 {
		t.Error("unreachable")
	}

	if _, err := d.ProveNonExistence("missing"); err != nil {
		t.Errorf("ProveNonExistence(missing) failed: %v", err)
	}
}

func TestSetContainsAndProve(t *testing.T) {
	s, err := NewSet([]types.Value{
		types.Int64(1), types.Int64(2), types.Int64(3),
	}, 32)
	if err != nil {
		t.Fatal(err)
	}

	if !s.Contains(types.Int64(2)) {
		t.Error("set should contain 2")
	}
	if s.Contains(types.Int64(99)) {
		t.Error("set should not contain 99")
	}

	if _, err := s.Prove(types.Int64(2)); err != nil {
		t.Errorf("Prove(2) failed: %v", err)
	}
	if _, err := s.ProveNonExistence(types.Int64(99)); err != nil {
		t.Errorf("ProveNonExistence(99) failed: %v", err)
	}
}

func TestArrayGetAndLen(t *testing.T) {
	a, err := NewArray([]types.Value{
		types.Int64(10), types.Int64(20), types.Int64(30),
	}, 32)
	if err != nil {
		t.Fatal(err)
	}

	if a.Len() != 3 {
		t.Errorf("Len() = %d, want 3", a.Len())
	}

	v, err := a.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if !v.Equal(types.Int64(20)) {
		t.Errorf("Get(1) = %v, want 20", v)
	}

	_, _, err = a.Prove(1)
	if err != nil {
		t.Errorf("Prove(1) failed: %v", err)
	}
}

func TestContainerCommitmentsAreStable(t *testing.T) {
	mk := func() *Dictionary {
		d, err := NewDictionary(map[string]types.Value{"k": types.Int64(1)}, 32)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	a, b := mk(), mk()
	if !a.Commitment().Equal(b.Commitment()) {
		t.Error("two dictionaries built from identical contents should share a commitment")
	}
}
