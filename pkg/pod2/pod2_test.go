package pod2

import "testing"

func smallParams() Params {
	return DefaultParams().
		WithMaxInputSignedPods(1).
		WithMaxInputMainPods(1).
		WithMaxStatements(8).
		WithMaxSignedPodValues(4).
		WithMaxPublicStatements(4).
		WithMaxStatementArgs(3).
		WithMaxOperationArgs(3)
}

func TestEndToEndSignAndProve(t *testing.T) {
	params := smallParams()
	signer := NewMockSigner()
	signedPod, err := signer.Sign(params, map[string]Value{"age": IntValue(21)})
	if err != nil {
		t.Fatal(err)
	}

	b, err := NewBuilder(params)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSignedPodInput(signedPod); err != nil {
		t.Fatal(err)
	}
	ageKey := NewAnchoredKey(signedPod.Id(), "age")
	if err := b.GtFromEntries(FromKey(ageKey), Literal(IntValue(18)), true); err != nil {
		t.Fatal(err)
	}

	compiled, err := b.Compile()
	if err != nil {
		t.Fatal(err)
	}

	prover := NewMockProver()
	mainPod, err := prover.Prove(params, MainPodInputs{SignedPods: []Pod{signedPod}, Compiled: compiled})
	if err != nil {
		t.Fatal(err)
	}

	if err := VerifyAll([]Pod{signedPod, mainPod}); err != nil {
		t.Errorf("VerifyAll should accept a correctly built pipeline: %v", err)
	}
}

func TestVerifyAllAcceptsSignedPod(t *testing.T) {
	signer := NewMockSigner()
	pod, err := signer.Sign(smallParams(), map[string]Value{"x": IntValue(1)})
	if err != nil {
		t.Fatal(err)
	}
	if err := VerifyAll([]Pod{pod}); err != nil {
		t.Errorf("a correctly signed pod should verify: %v", err)
	}
}

func TestDictionarySetArrayFacade(t *testing.T) {
	d, err := NewDictionary(map[string]Value{"k": IntValue(1)}, 32)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Get("k"); err != nil {
		t.Errorf("Get should find a committed key: %v", err)
	}

	s, err := NewSet([]Value{IntValue(1), IntValue(2)}, 32)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Contains(IntValue(1)) {
		t.Error("set should contain 1")
	}

	a, err := NewArray([]Value{IntValue(10), IntValue(20)}, 32)
	if err != nil {
		t.Fatal(err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d, want 2", a.Len())
	}
}
