package backend

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/pod-network/pod2-go/internal/pod2/compiler"
	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// ScalarCommitmentProver derives a compiled MainPod's PodId from an
// algebraic commitment over the BN254 scalar field rather than a hash
// transcript: a Horner-style evaluation of the serialized public
// statements at a fixed, hardcoded point. This is explicitly *not* a
// SNARK — there is no circuit, no witness, no proof of the evaluation —
// it exists only to give gnark-crypto's scalar-field arithmetic a
// concrete, correctly-scoped home, standing in for the kind of
// commitment a real circuit-wrapping backend would compute over the
// table before handing it to a prover.
type ScalarCommitmentProver struct{}

// NewScalarCommitmentProver creates a ScalarCommitmentProver.
func NewScalarCommitmentProver() *ScalarCommitmentProver { return &ScalarCommitmentProver{} }

// evaluationPoint is a fixed, arbitrary non-zero scalar; this backend
// makes no soundness claims that would require it to be chosen
// unpredictably.
func evaluationPoint() fr.Element {
	var x fr.Element
	x.SetUint64(0x706f6432) // "pod2" as a little scalar seed
	return x
}

func scalarFromFieldElement(e field.Element) fr.Element {
	var s fr.Element
	s.SetUint64(e.Uint64())
	return s
}

// Prove implements Prover.
func (*ScalarCommitmentProver) Prove(params compiler.Params, in MainPodInputs) (Pod, error) {
	pub := in.Compiled.PublicStatements()

	point := evaluationPoint()
	var acc fr.Element // Horner accumulator, acc = 0 initially

	absorbLimb := func(e field.Element) {
		acc.Mul(&acc, &point)
		term := scalarFromFieldElement(e)
		acc.Add(&acc, &term)
	}

	for _, s := range pub {
		for _, f := range statement.Serialize(s, params.MaxStatementArgs) {
			absorbLimb(f)
		}
	}
	for _, p := range in.SignedPods {
		for _, e := range p.Id().Digest().Elements() {
			absorbLimb(e)
		}
	}
	for _, p := range in.MainPods {
		for _, e := range p.Id().Digest().Elements() {
			absorbLimb(e)
		}
	}

	// Fold the 256-bit scalar commitment down to a 4-limb Hash by reading
	// its big-endian bytes as four 64-bit words, most-significant word
	// first, and reducing each modulo the Goldilocks prime.
	bytes := acc.Bytes() // big-endian canonical representation
	var d field.Digest
	for i := 0; i < 4; i++ {
		var limb uint64
		for j := 0; j < 8; j++ {
			limb = (limb << 8) | uint64(bytes[i*8+j])
		}
		d[i] = field.New(limb)
	}
	id := types.PodId(d)

	inputs := make([]Pod, 0, len(in.SignedPods)+len(in.MainPods))
	inputs = append(inputs, in.SignedPods...)
	inputs = append(inputs, in.MainPods...)

	return &mockPod{id: id, podType: PodTypeMain, pub: pub, compiled: in.Compiled, inputs: inputs}, nil
}
