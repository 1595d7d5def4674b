package backend

import (
	"hash"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"

	"github.com/pod-network/pod2-go/internal/pod2/compiler"
	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// transcript is a minimal Fiat-Shamir absorb/squeeze helper, trimmed to
// the one thing a PodId derivation needs: absorb bytes, squeeze a digest.
type transcript struct {
	h hash.Hash
}

func newTranscript() *transcript {
	return &transcript{h: sha3.New256()}
}

func (t *transcript) absorb(data []byte) {
	t.h.Write(data)
}

func (t *transcript) absorbStatement(s statement.Statement, maxStatementArgs int) {
	for _, f := range statement.Serialize(s, maxStatementArgs) {
		var buf [8]byte
		v := f.Uint64()
		for i := 0; i < 8; i++ {
			buf[i] = byte(v >> (8 * i))
		}
		t.absorb(buf[:])
	}
}

func (t *transcript) squeeze() field.Digest {
	sum := t.h.Sum(nil)
	var out [32]byte
	copy(out[:], sum)
	return field.DigestFromHex(out)
}

// mockPod is the concrete Pod produced by MockSigner and MockProver.
type mockPod struct {
	id       types.PodId
	podType  PodType
	pub      []statement.Statement
	compiled *compiler.Compiled
	inputs   []Pod
}

func (p *mockPod) Id() types.PodId { return p.id }

func (p *mockPod) PubStatements() []statement.Statement { return p.pub }

func (p *mockPod) Kvs() map[types.AnchoredKey]types.Value {
	return kvsFromPubStatements(p.pub)
}

func (p *mockPod) Verify() bool {
	for _, in := range p.inputs {
		if !in.Verify() {
			return false
		}
	}
	if p.compiled == nil {
		return true
	}
	c := p.compiled
	localBase := c.Params.MaxInputSignedPods*c.Params.MaxSignedPodValues +
		c.Params.MaxInputMainPods*c.Params.MaxPublicStatements
	for i, op := range c.LocalOperations {
		refs := c.OperationArgRefs[i]
		inputs := make([]statement.Statement, len(refs))
		for j, idx := range refs {
			if idx < 0 || idx >= len(c.Statements) {
				return false
			}
			inputs[j] = c.Statements[idx]
		}
		reconstructed := statement.Operation{Code: op.Code, Inputs: inputs, EntryKey: op.EntryKey, EntryValue: op.EntryValue}
		out := c.Statements[localBase+i]
		if !statement.Check(reconstructed, out) {
			return false
		}
	}
	return true
}

// MockSigner is a deterministic, in-memory Signer: its PodId is a
// Fiat-Shamir digest of the signer's public identity and the sorted
// key/value content, never a counter, so identical calls with identical
// content always produce identical PodIds.
type MockSigner struct {
	PublicKey string
}

// NewMockSigner creates a MockSigner with a fresh UUID-derived public
// identity, grounded on the example pack's use of google/uuid for stable
// external identifiers.
func NewMockSigner() *MockSigner {
	return &MockSigner{PublicKey: uuid.NewString()}
}

// Sign implements Signer.
func (s *MockSigner) Sign(params compiler.Params, kvs map[string]types.Value) (Pod, error) {
	keys := make([]string, 0, len(kvs))
	for k := range kvs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	tr := newTranscript()
	tr.absorb([]byte(s.PublicKey))
	for _, k := range keys {
		tr.absorb([]byte(k))
		d := kvs[k].Digest()
		for _, e := range d.Elements() {
			var buf [8]byte
			v := e.Uint64()
			for i := 0; i < 8; i++ {
				buf[i] = byte(v >> (8 * i))
			}
			tr.absorb(buf[:])
		}
	}
	id := types.PodId(tr.squeeze())

	pub := make([]statement.Statement, 0, len(keys)+2)
	for _, k := range keys {
		ak := types.NewAnchoredKey(id, k)
		st, err := statement.New(statement.ValueOf, statement.KeyArg(ak), statement.LiteralArg(kvs[k]))
		if err != nil {
			return nil, err
		}
		pub = append(pub, st)
	}
	signerAk := types.NewAnchoredKey(id, KeySigner)
	signerSt, err := statement.New(statement.ValueOf, statement.KeyArg(signerAk), statement.LiteralArg(types.String(s.PublicKey)))
	if err != nil {
		return nil, err
	}
	typeAk := types.NewAnchoredKey(id, KeyType)
	typeSt, err := statement.New(statement.ValueOf, statement.KeyArg(typeAk), statement.LiteralArg(types.Int64(int64(PodTypeMockSigned))))
	if err != nil {
		return nil, err
	}
	pub = append(pub, signerSt, typeSt)

	return &mockPod{id: id, podType: PodTypeMockSigned, pub: pub}, nil
}

// MockProver is a deterministic, in-memory Prover: its PodId is a
// Fiat-Shamir digest of the compiled public statements and input PodIds.
type MockProver struct{}

// NewMockProver creates a MockProver.
func NewMockProver() *MockProver { return &MockProver{} }

// Prove implements Prover.
func (*MockProver) Prove(params compiler.Params, in MainPodInputs) (Pod, error) {
	pub := in.Compiled.PublicStatements()

	tr := newTranscript()
	for _, s := range pub {
		tr.absorbStatement(s, params.MaxStatementArgs)
	}
	for _, p := range in.SignedPods {
		id := p.Id().Digest()
		for _, e := range id.Elements() {
			var buf [8]byte
			v := e.Uint64()
			for i := 0; i < 8; i++ {
				buf[i] = byte(v >> (8 * i))
			}
			tr.absorb(buf[:])
		}
	}
	for _, p := range in.MainPods {
		id := p.Id().Digest()
		for _, e := range id.Elements() {
			var buf [8]byte
			v := e.Uint64()
			for i := 0; i < 8; i++ {
				buf[i] = byte(v >> (8 * i))
			}
			tr.absorb(buf[:])
		}
	}
	id := types.PodId(tr.squeeze())

	inputs := make([]Pod, 0, len(in.SignedPods)+len(in.MainPods))
	inputs = append(inputs, in.SignedPods...)
	inputs = append(inputs, in.MainPods...)

	return &mockPod{id: id, podType: PodTypeMockMain, pub: pub, compiled: in.Compiled, inputs: inputs}, nil
}
