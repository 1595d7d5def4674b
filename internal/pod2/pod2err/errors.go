// Package pod2err defines the closed set of construction-time error kinds
// used throughout pod2: a Code + Message + wrapped Cause, with Is comparing
// by code so callers can use errors.Is against a sentinel *Error built from
// the same Code.
package pod2err

import "fmt"

// Code identifies a pod2 error kind.
type Code int

const (
	// Unknown is the zero value; never returned deliberately.
	Unknown Code = iota

	// KeyExists is returned by a Merkle tree build when a key is
	// inserted twice.
	KeyExists

	// KeyNotFound is returned by a Merkle lookup when the key is
	// absent (the existence-proof path, not the non-existence path).
	KeyNotFound

	// MaxDepthReached is returned when a tree descent exceeds its
	// configured max_depth.
	MaxDepthReached

	// ProofDoesNotVerify is returned by a Merkle proof verifier when
	// the recomputed root mismatches.
	ProofDoesNotVerify

	// ArgumentNotLiteral is returned when an operation requires a
	// literal Value argument but received a Statement/AnchoredKey.
	ArgumentNotLiteral

	// ArgumentNotKey is returned when an operation requires an
	// AnchoredKey argument but received a literal Value.
	ArgumentNotKey

	// IllFormedOperation is returned by Operation construction when
	// the argument arity or predicate shape is wrong for the op code.
	IllFormedOperation

	// InvalidDeduction is returned when an operation's input pattern
	// does not match its claimed output statement.
	InvalidDeduction

	// BoundExceeded is returned when a compiled MainPod would exceed
	// one of its Params limits.
	BoundExceeded

	// ValueNotInI64Embedding is returned when a Value outside
	// [-2^63, 2^63) is interpreted as an integer.
	ValueNotInI64Embedding
)

func (c Code) String() string {
	switch c {
	case KeyExists:
		return "key already exists"
	case KeyNotFound:
		return "leaf not found"
	case MaxDepthReached:
		return "max depth reached"
	case ProofDoesNotVerify:
		return "proof does not verify"
	case ArgumentNotLiteral:
		return "argument not literal"
	case ArgumentNotKey:
		return "argument not key"
	case IllFormedOperation:
		return "ill-formed operation"
	case InvalidDeduction:
		return "invalid deduction"
	case BoundExceeded:
		return "bound exceeded"
	case ValueNotInI64Embedding:
		return "value not in i64 embedding"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by every fallible pod2
// operation that isn't a boolean deductive check.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// New creates an Error with no wrapped cause.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Wrap creates an Error wrapping cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("pod2: %s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("pod2: %s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is/As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *Error with the same Code, so sentinel
// comparisons work via errors.Is(err, pod2err.New(pod2err.KeyExists, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
