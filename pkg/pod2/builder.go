package pod2

import (
	"github.com/pod-network/pod2-go/internal/pod2/compiler"
)

// FrontendValue is either a literal Value or an already-anchored key —
// the shape every native-operation helper on Builder accepts.
type FrontendValue = compiler.FrontendValue

// Literal wraps a Value as a frontend argument.
func Literal(v Value) FrontendValue { return compiler.Literal(v) }

// FromKey wraps an AnchoredKey as a frontend argument.
func FromKey(ak AnchoredKey) FrontendValue { return compiler.Key(ak) }

// InputPod is the slice of a Pod a MainPod builder consumes as an input:
// its identity and its public statements.
type InputPod = compiler.InputPod

// Compiled is the fixed-shape output of compiling a Builder.
type Compiled = compiler.Compiled

// Builder accumulates a MainPod's frontend-level construction: input
// PODs and statement/operation pairs in evaluation order, performing
// literal hoisting and bounds checking as operations are added.
type Builder struct {
	inner *compiler.Builder
}

// NewBuilder starts a builder for the given Params.
func NewBuilder(params Params) (*Builder, error) {
	inner, err := compiler.NewBuilder(params)
	if err != nil {
		return nil, err
	}
	return &Builder{inner: inner}, nil
}

// AddSignedPodInput registers an input SignedPod.
func (b *Builder) AddSignedPodInput(pod InputPod) error {
	return b.inner.AddSignedPodInput(pod)
}

// AddMainPodInput registers an input MainPod.
func (b *Builder) AddMainPodInput(pod InputPod) error {
	return b.inner.AddMainPodInput(pod)
}

// NewEntry records NewEntry(key, value), yielding
// ValueOf(AnchoredKey(SELF, hash_str(key)), value).
func (b *Builder) NewEntry(key string, value Value) (AnchoredKey, error) {
	return b.inner.NewEntry(key, value)
}

// PublicEntry is NewEntry, additionally flagging the resulting ValueOf
// statement as public.
func (b *Builder) PublicEntry(key string, value Value) (AnchoredKey, error) {
	return b.inner.PublicEntry(key, value)
}

// EqualFromEntries derives Equal(a,b), hoisting either side if given as
// a literal.
func (b *Builder) EqualFromEntries(a, c FrontendValue, public bool) error {
	_, err := b.inner.EqualFromEntries(a, c, public)
	return err
}

// LtFromEntries derives Lt(a,b), hoisting either side if given as a
// literal.
func (b *Builder) LtFromEntries(a, c FrontendValue, public bool) error {
	_, err := b.inner.LtFromEntries(a, c, public)
	return err
}

// GtFromEntries derives Gt(a,b), hoisting either side if given as a
// literal.
func (b *Builder) GtFromEntries(a, c FrontendValue, public bool) error {
	_, err := b.inner.GtFromEntries(a, c, public)
	return err
}

// ContainsFromEntries derives Contains(container, key), hoisting either
// side if given as a literal.
func (b *Builder) ContainsFromEntries(container, key FrontendValue, public bool) error {
	_, err := b.inner.ContainsFromEntries(container, key, public)
	return err
}

// NotContainsFromEntries derives NotContains(container, key), hoisting
// either side if given as a literal.
func (b *Builder) NotContainsFromEntries(container, key FrontendValue, public bool) error {
	_, err := b.inner.NotContainsFromEntries(container, key, public)
	return err
}

// SumOf derives SumOf(sum,x,y).
func (b *Builder) SumOf(sum, x, y FrontendValue, public bool) error {
	_, err := b.inner.SumOf(sum, x, y, public)
	return err
}

// ProductOf derives ProductOf(product,x,y).
func (b *Builder) ProductOf(product, x, y FrontendValue, public bool) error {
	_, err := b.inner.ProductOf(product, x, y, public)
	return err
}

// MaxOf derives MaxOf(max,x,y).
func (b *Builder) MaxOf(max, x, y FrontendValue, public bool) error {
	_, err := b.inner.MaxOf(max, x, y, public)
	return err
}

// Compile lowers the builder to its fixed-shape representation.
func (b *Builder) Compile() (*Compiled, error) {
	return b.inner.Compile()
}
