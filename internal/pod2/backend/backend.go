// Package backend implements the abstract Signer/Prover/Pod entry points
// internal/pod2/compiler depends on, plus two concrete backends: a
// deterministic in-memory MockSigner/MockProver sufficient for tests, and
// an illustrative ScalarCommitmentProver standing in for the kind of
// commitment a real SNARK-wrapping backend would compute — never a SNARK
// verifier itself.
package backend

import (
	"github.com/pod-network/pod2-go/internal/pod2/compiler"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// PodType is the reserved `_type` metadata value every POD publishes.
type PodType int

const (
	PodTypeNone PodType = iota
	PodTypeMockSigned
	PodTypeMockMain
	PodTypeSigned
	PodTypeMain
)

// Reserved key names, hashed like any other AnchoredKey.
const (
	KeySigner = "_signer"
	KeyType   = "_type"
)

// Pod is the capability set every concrete POD kind (signed, main, or the
// padding none) exposes uniformly.
type Pod interface {
	Verify() bool
	Id() types.PodId
	PubStatements() []statement.Statement
	Kvs() map[types.AnchoredKey]types.Value
}

// Signer accepts a key/value map and produces a SignedPod whose public
// statements are one ValueOf per entry plus the `_signer`/`_type`
// metadata entries.
type Signer interface {
	Sign(params compiler.Params, kvs map[string]types.Value) (Pod, error)
}

// MainPodInputs bundles everything a Prover needs: the input PODs (for
// the caller's own bookkeeping and Pod.Verify chaining) and the compiled
// fixed-shape layout the compiler already validated against Params.
type MainPodInputs struct {
	SignedPods []Pod
	MainPods   []Pod
	Compiled   *compiler.Compiled
}

// Prover is trusted to produce the PodId and the resulting Pod's
// Verify() implementation; the compiler only fixes its inputs' shape.
type Prover interface {
	Prove(params compiler.Params, in MainPodInputs) (Pod, error)
}

// kvsFromPubStatements derives the capability-set Kvs() view from a
// Pod's public ValueOf statements, shared by every concrete Pod kind.
func kvsFromPubStatements(pub []statement.Statement) map[types.AnchoredKey]types.Value {
	out := make(map[types.AnchoredKey]types.Value)
	for _, s := range pub {
		if s.Predicate == statement.ValueOf {
			out[s.AnchoredKeyOf()] = s.ValueOfValue()
		}
	}
	return out
}
