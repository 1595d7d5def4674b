package backend

import (
	"testing"

	"github.com/pod-network/pod2-go/internal/pod2/compiler"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

func smallParams() compiler.Params {
	return compiler.DefaultParams().
		WithMaxInputSignedPods(1).
		WithMaxInputMainPods(1).
		WithMaxStatements(8).
		WithMaxSignedPodValues(4).
		WithMaxPublicStatements(4).
		WithMaxStatementArgs(3).
		WithMaxOperationArgs(3)
}

func TestMockSignerDeterministic(t *testing.T) {
	signer := &MockSigner{PublicKey: "fixed-key"}
	kvs := map[string]types.Value{"a": types.Int64(1), "b": types.Int64(2)}

	p1, err := signer.Sign(smallParams(), kvs)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := signer.Sign(smallParams(), kvs)
	if err != nil {
		t.Fatal(err)
	}
	if !p1.Id().Equal(p2.Id()) {
		t.Error("signing identical kvs under a fixed public key should yield identical PodIds")
	}
}

func TestMockSignerSensitiveToContent(t *testing.T) {
	signer := &MockSigner{PublicKey: "fixed-key"}
	p1, err := signer.Sign(smallParams(), map[string]types.Value{"a": types.Int64(1)})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := signer.Sign(smallParams(), map[string]types.Value{"a": types.Int64(2)})
	if err != nil {
		t.Fatal(err)
	}
	if p1.Id().Equal(p2.Id()) {
		t.Error("signing different content should yield different PodIds")
	}
}

func TestMockSignerVerifies(t *testing.T) {
	signer := NewMockSigner()
	p, err := signer.Sign(smallParams(), map[string]types.Value{"name": types.String("alice")})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Verify() {
		t.Error("a freshly signed mock pod should verify")
	}
	v, ok := p.Kvs()[types.NewAnchoredKey(p.Id(), "name")]
	if !ok || !v.Equal(types.String("alice")) {
		t.Error("Kvs() should expose the signed entry under its anchored key")
	}
}

func TestMockProverEndToEnd(t *testing.T) {
	params := smallParams()
	signer := NewMockSigner()
	signed, err := signer.Sign(params, map[string]types.Value{"age": types.Int64(21)})
	if err != nil {
		t.Fatal(err)
	}

	b, err := compiler.NewBuilder(params)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.AddSignedPodInput(signed); err != nil {
		t.Fatal(err)
	}
	ak := types.NewAnchoredKey(signed.Id(), "age")
	if _, err := b.GtFromEntries(compiler.Key(ak), compiler.Literal(types.Int64(18)), true); err != nil {
		t.Fatal(err)
	}

	compiled, err := b.Compile()
	if err != nil {
		t.Fatal(err)
	}

	prover := NewMockProver()
	mainPod, err := prover.Prove(params, MainPodInputs{SignedPods: []Pod{signed}, Compiled: compiled})
	if err != nil {
		t.Fatal(err)
	}
	if !mainPod.Verify() {
		t.Error("a correctly compiled and proved main pod should verify")
	}
}

func TestMockPodVerifyRejectsTamperedCompiled(t *testing.T) {
	params := smallParams()
	b, err := compiler.NewBuilder(params)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.EqualFromEntries(compiler.Literal(types.Int64(1)), compiler.Literal(types.Int64(1)), true); err != nil {
		t.Fatal(err)
	}
	compiled, err := b.Compile()
	if err != nil {
		t.Fatal(err)
	}
	prover := NewMockProver()
	mainPod, err := prover.Prove(params, MainPodInputs{Compiled: compiled})
	if err != nil {
		t.Fatal(err)
	}
	// Tamper with the first local statement's literal value after the
	// fact; Verify re-checks every local operation against the slots, and
	// that slot's NewEntry (value 1) no longer checks against it.
	localBase := params.MaxInputSignedPods*params.MaxSignedPodValues + params.MaxInputMainPods*params.MaxPublicStatements
	mp := mainPod.(*mockPod)
	mp.compiled.Statements[localBase].Args[1].Literal = types.Int64(9999)
	if mainPod.Verify() {
		t.Error("expected Verify to fail after tampering with a compiled statement")
	}
}
