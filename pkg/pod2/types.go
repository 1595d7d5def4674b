package pod2

import (
	"github.com/pod-network/pod2-go/internal/pod2/backend"
	"github.com/pod-network/pod2-go/internal/pod2/compiler"
	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// Hash is a tuple of four field elements, most-significant-limb-first
// ordered. PodIds and container commitments are Hashes.
type Hash = field.Digest

// Value is a tuple of four field elements carrying an integer, boolean,
// string, container commitment, or raw payload.
type Value = types.Value

// PodId uniquely identifies a POD instance.
type PodId = types.PodId

// AnchoredKey binds a key to the specific ancestor POD it came from.
type AnchoredKey = types.AnchoredKey

// Params fixes every list length a compiled MainPod's flat slot table
// will have.
type Params = compiler.Params

// Pod is the capability set every concrete POD kind exposes uniformly.
type Pod = backend.Pod

// Signer produces SignedPods from key/value maps.
type Signer = backend.Signer

// Prover compiles a MainPod's inputs into a finished Pod.
type Prover = backend.Prover

// MainPodInputs bundles a Prover's inputs.
type MainPodInputs = backend.MainPodInputs

// NullPodId is the padding PodId, denoting "no POD".
var NullPodId = types.NullPodId

// SelfPodId denotes the POD currently being built.
var SelfPodId = types.SelfPodId

// EmptyValue is the all-zero Value.
var EmptyValue = types.Empty

// IntValue encodes a signed 64-bit integer as a Value.
func IntValue(v int64) Value { return types.Int64(v) }

// BoolValue encodes a boolean as a Value.
func BoolValue(b bool) Value { return types.Bool(b) }

// StringValue encodes a string as a Value via H(s).
func StringValue(s string) Value { return types.String(s) }

// RawValue wraps an arbitrary 4-tuple Hash as a Value with no
// interpretation.
func RawValue(h Hash) Value { return types.Raw(h) }

// FromContainerRoot wraps a container's Merkle root as its commitment
// Value.
func FromContainerRoot(root Hash) Value { return types.FromContainerRoot(root) }

// NewAnchoredKey builds an AnchoredKey from a frontend string key.
func NewAnchoredKey(pod PodId, key string) AnchoredKey { return types.NewAnchoredKey(pod, key) }

// DefaultParams returns the external-interface defaults: 3 signed pod
// inputs, 3 main pod inputs, 20 statements, 8 signed pod values, 10
// public statements, 5 statement args, 5 operation args.
func DefaultParams() Params { return compiler.DefaultParams() }

// NewMockSigner creates a deterministic, in-memory Signer.
func NewMockSigner() *backend.MockSigner { return backend.NewMockSigner() }

// NewMockProver creates a deterministic, in-memory Prover.
func NewMockProver() *backend.MockProver { return backend.NewMockProver() }

// NewScalarCommitmentProver creates the illustrative scalar-commitment
// Prover backed by BN254 scalar-field arithmetic. It is not a SNARK
// prover.
func NewScalarCommitmentProver() *backend.ScalarCommitmentProver {
	return backend.NewScalarCommitmentProver()
}
