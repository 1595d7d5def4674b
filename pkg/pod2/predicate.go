package pod2

import (
	"github.com/pod-network/pod2-go/internal/pod2/predicate"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
)

// Predicate is a native statement's stable numeric code.
type Predicate = statement.Predicate

// Native predicate codes.
const (
	PredNone        = statement.None
	PredValueOf     = statement.ValueOf
	PredEqual       = statement.Equal
	PredNotEqual    = statement.NotEqual
	PredGt          = statement.Gt
	PredLt          = statement.Lt
	PredContains    = statement.Contains
	PredNotContains = statement.NotContains
	PredSumOf       = statement.SumOf
	PredProductOf   = statement.ProductOf
	PredMaxOf       = statement.MaxOf
)

// HoW ("hash or wildcard") is one half of a Key-kind template argument.
type HoW = predicate.HoW

// StatementTmplArg is one argument of a statement template.
type StatementTmplArg = predicate.StatementTmplArg

// PredRef names the predicate a statement template invokes: a native
// predicate, a self-batch reference, or a cross-batch reference.
type PredRef = predicate.PredRef

// CustomPredicate bundles a conjunction/disjunction flag, an ordered
// list of statement templates, and the positional-argument count.
type CustomPredicate = predicate.CustomPredicate

// Batch is an ordered, content-addressed list of custom predicates.
type Batch = predicate.Batch

// HashArg wraps a fixed Hash as a HoW.
func HashArg(h Hash) HoW { return predicate.Hash(h) }

// WildcardArg wraps a wildcard index as a HoW.
func WildcardArg(i int) HoW { return predicate.Wildcard(i) }

// NoneTmplArg is the padding template argument.
var NoneTmplArg = predicate.NoneArg

// LiteralTmplArg wraps a fixed value as a template argument.
func LiteralTmplArg(v Hash) StatementTmplArg { return predicate.LiteralArg(v) }

// KeyTmplArg builds a Key-kind template argument from its pod and key
// name components.
func KeyTmplArg(pod, key HoW) StatementTmplArg { return predicate.KeyArg(pod, key) }

// NativePred wraps a native predicate as a template's predicate
// reference.
func NativePred(p Predicate) PredRef { return predicate.NativeRef(p) }

// BatchSelf references predicate index i within the same batch,
// enabling recursive custom predicates.
func BatchSelf(i int) PredRef { return predicate.BatchSelf(i) }

// CustomPred references predicate index i of another batch, identified
// by that batch's content hash.
func CustomPred(batchHash Hash, i int) PredRef { return predicate.Custom(batchHash, i) }

// PredicateBuilder resolves textual wildcard names to stable indices and
// accumulates statement templates for one custom predicate.
type PredicateBuilder = predicate.Builder

// NewPredicateBuilder starts a custom predicate builder. positionalArgs
// names the predicate's formal arguments, in order.
func NewPredicateBuilder(conjunction bool, positionalArgs ...string) *PredicateBuilder {
	return predicate.NewBuilder(conjunction, positionalArgs...)
}

// NewBatch wraps an ordered predicate list as a content-addressed batch.
func NewBatch(preds []CustomPredicate) Batch { return predicate.NewBatch(preds) }
