package statement

import (
	"github.com/pod-network/pod2-go/internal/pod2/pod2err"
	"github.com/pod-network/pod2-go/internal/pod2/types"
)

// OpCode is a native operation's stable numeric code.
type OpCode int

const (
	OpNone OpCode = iota
	OpNewEntry
	OpCopyStatement
	OpEqualFromEntries
	OpNotEqualFromEntries
	OpGtFromEntries
	OpLtFromEntries
	OpTransitiveEqualFromStatements
	OpGtToNotEqual
	OpLtToNotEqual
	OpContainsFromEntries
	OpNotContainsFromEntries
	OpRenameContainedBy
	OpSumOf
	OpProductOf
	OpMaxOf
)

func (c OpCode) String() string {
	switch c {
	case OpNone:
		return "None"
	case OpNewEntry:
		return "NewEntry"
	case OpCopyStatement:
		return "CopyStatement"
	case OpEqualFromEntries:
		return "EqualFromEntries"
	case OpNotEqualFromEntries:
		return "NotEqualFromEntries"
	case OpGtFromEntries:
		return "GtFromEntries"
	case OpLtFromEntries:
		return "LtFromEntries"
	case OpTransitiveEqualFromStatements:
		return "TransitiveEqualFromStatements"
	case OpGtToNotEqual:
		return "GtToNotEqual"
	case OpLtToNotEqual:
		return "LtToNotEqual"
	case OpContainsFromEntries:
		return "ContainsFromEntries"
	case OpNotContainsFromEntries:
		return "NotContainsFromEntries"
	case OpRenameContainedBy:
		return "RenameContainedBy"
	case OpSumOf:
		return "SumOf"
	case OpProductOf:
		return "ProductOf"
	case OpMaxOf:
		return "MaxOf"
	default:
		return "Unknown"
	}
}

// Operation is a justification: an operation code plus 0-3 input
// statements, or (NewEntry only) an inline key/value pair.
type Operation struct {
	Code       OpCode
	Inputs     []Statement
	EntryKey   string
	EntryValue types.Value
}

// inputShape names the required predicate for each input slot of a
// statement-input operation; nil means "any predicate accepted".
var inputShape = map[OpCode][]Predicate{
	OpNone:                          {},
	OpCopyStatement:                 nil, // arity 1, any predicate
	OpEqualFromEntries:              {ValueOf, ValueOf},
	OpNotEqualFromEntries:           {ValueOf, ValueOf},
	OpGtFromEntries:                 {ValueOf, ValueOf},
	OpLtFromEntries:                 {ValueOf, ValueOf},
	OpTransitiveEqualFromStatements: {Equal, Equal},
	OpGtToNotEqual:                  {Gt},
	OpLtToNotEqual:                  {Lt},
	OpContainsFromEntries:           {ValueOf, ValueOf},
	OpNotContainsFromEntries:        {ValueOf, ValueOf},
	OpRenameContainedBy:             {Contains, Equal},
	OpSumOf:                         {ValueOf, ValueOf, ValueOf},
	OpProductOf:                     {ValueOf, ValueOf, ValueOf},
	OpMaxOf:                         {ValueOf, ValueOf, ValueOf},
}

// Op constructs an operation from statement inputs, rejecting wrong
// arity or a wrong predicate on any input before the operation is ever
// checked against a claimed output.
func Op(code OpCode, inputs ...Statement) (Operation, error) {
	if code == OpNewEntry {
		return Operation{}, pod2err.New(pod2err.IllFormedOperation, "NewEntry takes an inline key/value, not statement inputs")
	}
	shape, known := inputShape[code]
	if !known {
		return Operation{}, pod2err.New(pod2err.IllFormedOperation, "unknown operation code")
	}
	if code == OpCopyStatement {
		if len(inputs) != 1 {
			return Operation{}, pod2err.New(pod2err.IllFormedOperation, "CopyStatement takes exactly one input")
		}
	} else if len(inputs) != len(shape) {
		return Operation{}, pod2err.New(pod2err.IllFormedOperation, "wrong number of inputs for operation")
	} else {
		for i, want := range shape {
			if inputs[i].Predicate != want {
				return Operation{}, pod2err.New(pod2err.IllFormedOperation, "wrong predicate on operation input")
			}
		}
	}
	return Operation{Code: code, Inputs: inputs}, nil
}

// NewEntryOp constructs a NewEntry operation from its inline key/value.
func NewEntryOp(key string, value types.Value) Operation {
	return Operation{Code: OpNewEntry, EntryKey: key, EntryValue: value}
}
