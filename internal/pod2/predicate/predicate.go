// Package predicate implements the custom-predicate template system:
// statement templates over wildcards, conjunction/disjunction predicates,
// and content-addressed batches with self and cross-batch references. The
// batch builder follows a fluent builder pattern over an otherwise plain
// struct; PredRefKind/HoWKind/TmplArgKind follow the statement package's
// closed-enum style.
package predicate

import (
	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
)

// HoWKind distinguishes whether a template key's two name slots are a
// fixed hash or a wildcard reference.
type HoWKind int

const (
	// HashLiteral is a fixed, already-resolved Hash.
	HashLiteral HoWKind = iota
	// WildcardRef is a reference to a wildcard by index.
	WildcardRef
)

// HoW ("hash or wildcard") is one half of a Key-kind template argument.
type HoW struct {
	Kind     HoWKind
	Hash     field.Digest
	Wildcard int
}

// Hash wraps a fixed Hash as a HoW.
func Hash(h field.Digest) HoW { return HoW{Kind: HashLiteral, Hash: h} }

// Wildcard wraps a wildcard index as a HoW.
func Wildcard(i int) HoW { return HoW{Kind: WildcardRef, Wildcard: i} }

// TmplArgKind distinguishes the shape of a statement template argument.
type TmplArgKind int

const (
	TmplNone TmplArgKind = iota
	TmplLiteral
	TmplKey
)

// StatementTmplArg is one argument of a statement template: None, a fixed
// literal Value, or a Key built from two HoW name components (pod, key).
type StatementTmplArg struct {
	Kind    TmplArgKind
	Literal field.Digest
	Pod     HoW
	Key     HoW
}

// NoneArg is the padding template argument.
var NoneArg = StatementTmplArg{Kind: TmplNone}

// LiteralArg wraps a fixed value as a template argument.
func LiteralArg(v field.Digest) StatementTmplArg {
	return StatementTmplArg{Kind: TmplLiteral, Literal: v}
}

// KeyArg builds a Key-kind template argument from its pod and key name
// components.
func KeyArg(pod, key HoW) StatementTmplArg {
	return StatementTmplArg{Kind: TmplKey, Pod: pod, Key: key}
}

// PredRefKind distinguishes a template's predicate reference: a native
// predicate, a self-batch reference, or a cross-batch reference.
type PredRefKind int

const (
	RefNative PredRefKind = iota
	RefBatchSelf
	RefCustom
)

// PredRef names the predicate a statement template invokes.
type PredRef struct {
	Kind      PredRefKind
	Native    statement.Predicate
	SelfIndex int
	BatchHash field.Digest
	Index     int
}

// NativeRef wraps a native predicate as a template's predicate reference.
func NativeRef(p statement.Predicate) PredRef {
	return PredRef{Kind: RefNative, Native: p}
}

// BatchSelf references predicate index i within the same batch,
// enabling recursive custom predicates.
func BatchSelf(i int) PredRef {
	return PredRef{Kind: RefBatchSelf, SelfIndex: i}
}

// Custom references predicate index i of another batch, identified by
// that batch's content hash.
func Custom(batchHash field.Digest, i int) PredRef {
	return PredRef{Kind: RefCustom, BatchHash: batchHash, Index: i}
}

// StatementTemplate is a predicate reference paired with its template
// arguments.
type StatementTemplate struct {
	Predicate PredRef
	Args      []StatementTmplArg
}

// CustomPredicate bundles a conjunction/disjunction flag, an ordered list
// of statement templates, and the count of positional (non-existential)
// wildcard arguments.
type CustomPredicate struct {
	Conjunction bool
	Templates   []StatementTemplate
	ArgsLen     int
}
