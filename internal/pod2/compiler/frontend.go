package compiler

import (
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// InputPod is the slice of the backend Pod capability set the compiler
// needs from an already-built input POD: its identity and its public
// statements. Kept local to compiler (rather than importing backend) so
// backend can depend on compiler without a cycle.
type InputPod interface {
	Id() types.PodId
	PubStatements() []statement.Statement
}

// FrontendValue is either a literal Value or an already-anchored key, the
// shape every native-operation helper accepts for an argument that the
// underlying operation ultimately needs as an AnchoredKey-backed entry.
type FrontendValue struct {
	isLiteral bool
	literal   types.Value
	key       types.AnchoredKey
}

// Literal wraps a Value as a frontend argument.
func Literal(v types.Value) FrontendValue { return FrontendValue{isLiteral: true, literal: v} }

// Key wraps an AnchoredKey as a frontend argument.
func Key(ak types.AnchoredKey) FrontendValue { return FrontendValue{key: ak} }

// stmtOpPair is one compiled (Statement, Operation) slot in evaluation
// order.
type stmtOpPair struct {
	statement statement.Statement
	operation statement.Operation
	public    bool
}

// Builder accumulates a MainPod's frontend-level construction: input
// PODs, statement/operation pairs in evaluation order, and which of them
// are public. It performs literal hoisting and new-entry synthesis as
// operations are added, and validates every native operation via
// statement.Check before accepting it.
type Builder struct {
	params Params

	signedPodInputs []InputPod
	mainPodInputs   []InputPod

	pairs []stmtOpPair

	literalCounter int
	knownValueOf   map[types.AnchoredKey]types.Value
}

// NewBuilder starts a builder for the given Params.
func NewBuilder(params Params) (*Builder, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Builder{params: params, knownValueOf: make(map[types.AnchoredKey]types.Value)}, nil
}

// AddSignedPodInput registers an input SignedPod, seeding knownValueOf
// from its public ValueOf statements.
func (b *Builder) AddSignedPodInput(pod InputPod) error {
	if len(b.signedPodInputs) >= b.params.MaxInputSignedPods {
		return pod2err.New(pod2err.BoundExceeded, "too many signed pod inputs")
	}
	b.signedPodInputs = append(b.signedPodInputs, pod)
	b.seedValueOf(pod)
	return nil
}

// AddMainPodInput registers an input MainPod, seeding knownValueOf from
// its public ValueOf statements.
func (b *Builder) AddMainPodInput(pod InputPod) error {
	if len(b.mainPodInputs) >= b.params.MaxInputMainPods {
		return pod2err.New(pod2err.BoundExceeded, "too many main pod inputs")
	}
	b.mainPodInputs = append(b.mainPodInputs, pod)
	b.seedValueOf(pod)
	return nil
}

func (b *Builder) seedValueOf(pod InputPod) {
	for _, s := range pod.PubStatements() {
		if s.Predicate == statement.ValueOf {
			b.knownValueOf[s.AnchoredKeyOf()] = s.ValueOfValue()
		}
	}
}

func (b *Builder) checkStatementsBound() error {
	if len(b.pairs) >= b.params.MaxStatements {
		return pod2err.New(pod2err.BoundExceeded, "too many local statements")
	}
	return nil
}

// NewEntry records an explicit user-level NewEntry(key, value) operation,
// yielding ValueOf(AnchoredKey(SELF, hash_str(key)), value).
func (b *Builder) NewEntry(key string, value types.Value) (types.AnchoredKey, error) {
	return b.addEntry(key, value, false)
}

// PublicEntry is NewEntry, additionally flagging the resulting ValueOf
// statement as public.
func (b *Builder) PublicEntry(key string, value types.Value) (types.AnchoredKey, error) {
	return b.addEntry(key, value, true)
}

func (b *Builder) addEntry(key string, value types.Value, public bool) (types.AnchoredKey, error) {
	if err := b.checkStatementsBound(); err != nil {
		return types.AnchoredKey{}, err
	}
	ak := types.NewAnchoredKey(types.SelfPodId, key)
	out, err := statement.New(statement.ValueOf, statement.KeyArg(ak), statement.LiteralArg(value))
	if err != nil {
		return types.AnchoredKey{}, err
	}
	op := statement.NewEntryOp(key, value)
	if !statement.Check(op, out) {
		return types.AnchoredKey{}, pod2err.New(pod2err.InvalidDeduction, "NewEntry failed to check against its own output")
	}
	b.pairs = append(b.pairs, stmtOpPair{statement: out, operation: op, public: public})
	b.knownValueOf[ak] = value
	return ak, nil
}

// hoist resolves a frontend argument to an AnchoredKey, synthesising a
// fresh `cN`-named entry (strictly increasing N, assigned in
// user-provided operation order) when the argument is a literal.
func (b *Builder) hoist(fv FrontendValue) (types.AnchoredKey, error) {
	if !fv.isLiteral {
		return fv.key, nil
	}
	name := hoistedName(b.literalCounter)
	b.literalCounter++
	return b.addEntry(name, fv.literal, false)
}

func hoistedName(n int) string {
	const digits = "0123456789"
	if n == 0 {
		return "c0"
	}
	var buf []byte
	for n > 0 {
		buf = append([]byte{digits[n%10]}, buf...)
		n /= 10
	}
	return "c" + string(buf)
}

func (b *Builder) valueOf(ak types.AnchoredKey) (types.Value, error) {
	v, ok := b.knownValueOf[ak]
	if !ok {
		return types.Value{}, pod2err.New(pod2err.ArgumentNotKey, "anchored key is not backed by any known ValueOf statement")
	}
	return v, nil
}

func (b *Builder) addStatement(op statement.Operation, out statement.Statement, public bool) error {
	if err := b.checkStatementsBound(); err != nil {
		return err
	}
	if len(op.Inputs) > b.params.MaxOperationArgs {
		return pod2err.New(pod2err.BoundExceeded, "too many operation arguments")
	}
	if !statement.Check(op, out) {
		return pod2err.New(pod2err.InvalidDeduction, "operation does not check against its claimed output")
	}
	b.pairs = append(b.pairs, stmtOpPair{statement: out, operation: op, public: public})
	return nil
}

func (b *Builder) valueOfStatement(ak types.AnchoredKey) (statement.Statement, error) {
	v, err := b.valueOf(ak)
	if err != nil {
		return statement.Statement{}, err
	}
	return statement.New(statement.ValueOf, statement.KeyArg(ak), statement.LiteralArg(v))
}

// EqualFromEntries derives Equal(a,b), hoisting either side if given as a
// literal.
func (b *Builder) EqualFromEntries(a, c FrontendValue, public bool) (statement.Statement, error) {
	ak1, err := b.hoist(a)
	if err != nil {
		return statement.Statement{}, err
	}
	ak2, err := b.hoist(c)
	if err != nil {
		return statement.Statement{}, err
	}
	s1, err := b.valueOfStatement(ak1)
	if err != nil {
		return statement.Statement{}, err
	}
	s2, err := b.valueOfStatement(ak2)
	if err != nil {
		return statement.Statement{}, err
	}
	out, err := statement.New(statement.Equal, statement.KeyArg(ak1), statement.KeyArg(ak2))
	if err != nil {
		return statement.Statement{}, err
	}
	op, err := statement.Op(statement.OpEqualFromEntries, s1, s2)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, out, public); err != nil {
		return statement.Statement{}, err
	}
	return out, nil
}

// LtFromEntries derives Lt(a,b), hoisting either side if given as a
// literal.
func (b *Builder) LtFromEntries(a, c FrontendValue, public bool) (statement.Statement, error) {
	ak1, err := b.hoist(a)
	if err != nil {
		return statement.Statement{}, err
	}
	ak2, err := b.hoist(c)
	if err != nil {
		return statement.Statement{}, err
	}
	s1, err := b.valueOfStatement(ak1)
	if err != nil {
		return statement.Statement{}, err
	}
	s2, err := b.valueOfStatement(ak2)
	if err != nil {
		return statement.Statement{}, err
	}
	out, err := statement.New(statement.Lt, statement.KeyArg(ak1), statement.KeyArg(ak2))
	if err != nil {
		return statement.Statement{}, err
	}
	op, err := statement.Op(statement.OpLtFromEntries, s1, s2)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, out, public); err != nil {
		return statement.Statement{}, err
	}
	return out, nil
}

// GtFromEntries derives Gt(a,b), hoisting either side if given as a
// literal.
func (b *Builder) GtFromEntries(a, c FrontendValue, public bool) (statement.Statement, error) {
	ak1, err := b.hoist(a)
	if err != nil {
		return statement.Statement{}, err
	}
	ak2, err := b.hoist(c)
	if err != nil {
		return statement.Statement{}, err
	}
	s1, err := b.valueOfStatement(ak1)
	if err != nil {
		return statement.Statement{}, err
	}
	s2, err := b.valueOfStatement(ak2)
	if err != nil {
		return statement.Statement{}, err
	}
	out, err := statement.New(statement.Gt, statement.KeyArg(ak1), statement.KeyArg(ak2))
	if err != nil {
		return statement.Statement{}, err
	}
	op, err := statement.Op(statement.OpGtFromEntries, s1, s2)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, out, public); err != nil {
		return statement.Statement{}, err
	}
	return out, nil
}

// NotContainsFromEntries derives NotContains(container, key), hoisting
// either side if given as a literal. The cryptographic non-membership
// proof itself is attached at the backend layer; the checker here only
// validates shape.
func (b *Builder) NotContainsFromEntries(container, key FrontendValue, public bool) (statement.Statement, error) {
	ak1, err := b.hoist(container)
	if err != nil {
		return statement.Statement{}, err
	}
	ak2, err := b.hoist(key)
	if err != nil {
		return statement.Statement{}, err
	}
	s1, err := b.valueOfStatement(ak1)
	if err != nil {
		return statement.Statement{}, err
	}
	s2, err := b.valueOfStatement(ak2)
	if err != nil {
		return statement.Statement{}, err
	}
	out, err := statement.New(statement.NotContains, statement.KeyArg(ak1), statement.KeyArg(ak2))
	if err != nil {
		return statement.Statement{}, err
	}
	op, err := statement.Op(statement.OpNotContainsFromEntries, s1, s2)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, out, public); err != nil {
		return statement.Statement{}, err
	}
	return out, nil
}

// ContainsFromEntries derives Contains(container, key), analogous to
// NotContainsFromEntries.
func (b *Builder) ContainsFromEntries(container, key FrontendValue, public bool) (statement.Statement, error) {
	ak1, err := b.hoist(container)
	if err != nil {
		return statement.Statement{}, err
	}
	ak2, err := b.hoist(key)
	if err != nil {
		return statement.Statement{}, err
	}
	s1, err := b.valueOfStatement(ak1)
	if err != nil {
		return statement.Statement{}, err
	}
	s2, err := b.valueOfStatement(ak2)
	if err != nil {
		return statement.Statement{}, err
	}
	out, err := statement.New(statement.Contains, statement.KeyArg(ak1), statement.KeyArg(ak2))
	if err != nil {
		return statement.Statement{}, err
	}
	op, err := statement.Op(statement.OpContainsFromEntries, s1, s2)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, out, public); err != nil {
		return statement.Statement{}, err
	}
	return out, nil
}

// SumOf derives SumOf(a,b,c), with a,b,c all resolved (hoisted if
// literal) entries.
func (b *Builder) SumOf(sum, x, y FrontendValue, public bool) (statement.Statement, error) {
	return b.arithmetic(statement.OpSumOf, statement.SumOf, sum, x, y, public)
}

// ProductOf derives ProductOf(a,b,c), analogous to SumOf.
func (b *Builder) ProductOf(product, x, y FrontendValue, public bool) (statement.Statement, error) {
	return b.arithmetic(statement.OpProductOf, statement.ProductOf, product, x, y, public)
}

// MaxOf derives MaxOf(a,b,c), analogous to SumOf.
func (b *Builder) MaxOf(max, x, y FrontendValue, public bool) (statement.Statement, error) {
	return b.arithmetic(statement.OpMaxOf, statement.MaxOf, max, x, y, public)
}

func (b *Builder) arithmetic(opCode statement.OpCode, pred statement.Predicate, a, x, y FrontendValue, public bool) (statement.Statement, error) {
	akA, err := b.hoist(a)
	if err != nil {
		return statement.Statement{}, err
	}
	akX, err := b.hoist(x)
	if err != nil {
		return statement.Statement{}, err
	}
	akY, err := b.hoist(y)
	if err != nil {
		return statement.Statement{}, err
	}
	sA, err := b.valueOfStatement(akA)
	if err != nil {
		return statement.Statement{}, err
	}
	sX, err := b.valueOfStatement(akX)
	if err != nil {
		return statement.Statement{}, err
	}
	sY, err := b.valueOfStatement(akY)
	if err != nil {
		return statement.Statement{}, err
	}
	out, err := statement.New(pred, statement.KeyArg(akA), statement.KeyArg(akX), statement.KeyArg(akY))
	if err != nil {
		return statement.Statement{}, err
	}
	op, err := statement.Op(opCode, sA, sX, sY)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, out, public); err != nil {
		return statement.Statement{}, err
	}
	return out, nil
}

// CopyStatement re-asserts an already-established statement, optionally
// promoting it to public.
func (b *Builder) CopyStatement(s statement.Statement, public bool) (statement.Statement, error) {
	op, err := statement.Op(statement.OpCopyStatement, s)
	if err != nil {
		return statement.Statement{}, err
	}
	if err := b.addStatement(op, s, public); err != nil {
		return statement.Statement{}, err
	}
	return s, nil
}
