package statement

import (
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// ArgKind distinguishes a statement argument's shape.
type ArgKind int

const (
	// ArgNone is a padding argument.
	ArgNone ArgKind = iota
	// ArgKey is an AnchoredKey argument.
	ArgKey
	// ArgLiteral is an inline Value argument.
	ArgLiteral
)

// Arg is a statement argument: either an AnchoredKey (ValueOf's first
// slot and every other native predicate's slots) or a literal Value
// (ValueOf's second slot).
type Arg struct {
	Kind    ArgKind
	Key     types.AnchoredKey
	Literal types.Value
}

// NoneArg is the padding argument.
var NoneArg = Arg{Kind: ArgNone}

// KeyArg wraps an AnchoredKey as a statement argument.
func KeyArg(ak types.AnchoredKey) Arg {
	return Arg{Kind: ArgKey, Key: ak}
}

// LiteralArg wraps a Value as a statement argument.
func LiteralArg(v types.Value) Arg {
	return Arg{Kind: ArgLiteral, Literal: v}
}

// Equal compares two arguments by kind and payload.
func (a Arg) Equal(o Arg) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case ArgKey:
		return a.Key.Equal(o.Key)
	case ArgLiteral:
		return a.Literal.Equal(o.Literal)
	default:
		return true
	}
}

// Statement is a tagged variant drawn from the native predicate set, with
// 0-3 arguments.
type Statement struct {
	Predicate Predicate
	Args      [3]Arg
}

// NoneStatement is the padding statement.
var NoneStatement = Statement{Predicate: None}

// New builds a statement, validating the argument count against the
// predicate's fixed arity and rejecting an argument shape ValueOf does
// not expect (Key, Literal) in positions other than (0, 1).
func New(pred Predicate, args ...Arg) (Statement, error) {
	arity := pred.Arity()
	if len(args) != arity {
		return Statement{}, pod2err.New(pod2err.IllFormedOperation, "wrong argument count for predicate")
	}
	var s Statement
	s.Predicate = pred
	for i, a := range args {
		if pred == ValueOf {
			if i == 0 && a.Kind != ArgKey {
				return Statement{}, pod2err.New(pod2err.ArgumentNotKey, "ValueOf's first argument must be an anchored key")
			}
			if i == 1 && a.Kind != ArgLiteral {
				return Statement{}, pod2err.New(pod2err.ArgumentNotLiteral, "ValueOf's second argument must be a literal value")
			}
		} else if a.Kind != ArgKey {
			return Statement{}, pod2err.New(pod2err.ArgumentNotKey, "native predicate arguments must be anchored keys")
		}
		s.Args[i] = a
	}
	return s, nil
}

// Equal compares two statements structurally.
func (s Statement) Equal(o Statement) bool {
	if s.Predicate != o.Predicate {
		return false
	}
	for i := 0; i < s.Predicate.Arity(); i++ {
		if !s.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

// AnchoredKeyOf returns the AnchoredKey carried by a ValueOf statement's
// first argument, for callers that already know the predicate.
func (s Statement) AnchoredKeyOf() types.AnchoredKey {
	return s.Args[0].Key
}

// ValueOfValue returns the literal value of a ValueOf statement's second
// argument.
func (s Statement) ValueOfValue() types.Value {
	return s.Args[1].Literal
}
