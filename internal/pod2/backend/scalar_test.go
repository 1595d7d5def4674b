package backend

import (
	"testing"

	"github.com/pod-network/pod2-go/internal/pod2/compiler"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

func TestScalarCommitmentProverDeterministic(t *testing.T) {
	params := smallParams()
	build := func() *compiler.Compiled {
		b, err := compiler.NewBuilder(params)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := b.EqualFromEntries(compiler.Literal(types.Int64(3)), compiler.Literal(types.Int64(3)), true); err != nil {
			t.Fatal(err)
		}
		c, err := b.Compile()
		if err != nil {
			t.Fatal(err)
		}
		return c
	}

	prover := NewScalarCommitmentProver()
	p1, err := prover.Prove(params, MainPodInputs{Compiled: build()})
	if err != nil {
		t.Fatal(err)
	}
	p2, err := prover.Prove(params, MainPodInputs{Compiled: build()})
	if err != nil {
		t.Fatal(err)
	}
	if !p1.Id().Equal(p2.Id()) {
		t.Error("proving identically compiled inputs should yield identical PodIds")
	}
}

func TestScalarCommitmentProverVerifies(t *testing.T) {
	params := smallParams()
	b, err := compiler.NewBuilder(params)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.EqualFromEntries(compiler.Literal(types.Int64(7)), compiler.Literal(types.Int64(7)), true); err != nil {
		t.Fatal(err)
	}
	compiled, err := b.Compile()
	if err != nil {
		t.Fatal(err)
	}
	prover := NewScalarCommitmentProver()
	p, err := prover.Prove(params, MainPodInputs{Compiled: compiled})
	if err != nil {
		t.Fatal(err)
	}
	if !p.Verify() {
		t.Error("a correctly compiled scalar-commitment pod should verify")
	}
}
