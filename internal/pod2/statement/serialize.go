package statement

import "github.com/pod-network/pod2-go/internal/pod2/field"

// StatementArgFLen is the fixed field-element width every statement
// argument serializes to, regardless of kind.
const StatementArgFLen = 8

// Serialize lowers s to `[predicate_code, arg0_f, arg1_f, ...]`, padding
// to maxStatementArgs arguments with None so every statement of a given
// Params serializes to exactly `1 + maxStatementArgs*8` field elements.
func Serialize(s Statement, maxStatementArgs int) []field.Element {
	out := make([]field.Element, 0, 1+maxStatementArgs*StatementArgFLen)
	out = append(out, field.New(uint64(s.Predicate)))
	for i := 0; i < maxStatementArgs; i++ {
		var a Arg
		if i < len(s.Args) && i < s.Predicate.Arity() {
			a = s.Args[i]
		}
		out = append(out, serializeArg(a)...)
	}
	return out
}

func serializeArg(a Arg) []field.Element {
	switch a.Kind {
	case ArgLiteral:
		d := a.Literal.Digest()
		return []field.Element{d[0], d[1], d[2], d[3], field.Zero, field.Zero, field.Zero, field.Zero}
	case ArgKey:
		pod := a.Key.Pod.Digest()
		key := a.Key.KeyHash
		return []field.Element{pod[0], pod[1], pod[2], pod[3], key[0], key[1], key[2], key[3]}
	default:
		return []field.Element{field.Zero, field.Zero, field.Zero, field.Zero, field.Zero, field.Zero, field.Zero, field.Zero}
	}
}
