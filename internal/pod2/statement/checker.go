package statement

// Check decides whether op legitimately derives the claimed output
// statement out. A false result means "well-formed but logically
// invalid" — it is not an error; op's own construction already rejected
// ill-formed input shapes.
func Check(op Operation, out Statement) bool {
	switch op.Code {
	case OpNone:
		return out.Predicate == None

	case OpNewEntry:
		if out.Predicate != ValueOf {
			return false
		}
		ak := out.AnchoredKeyOf()
		if !ak.Pod.IsSelf() {
			return false
		}
		return ak.Key == op.EntryKey && out.ValueOfValue().Equal(op.EntryValue)

	case OpCopyStatement:
		return len(op.Inputs) == 1 && op.Inputs[0].Equal(out)

	case OpEqualFromEntries:
		a, b := op.Inputs[0], op.Inputs[1]
		return out.Predicate == Equal &&
			a.ValueOfValue().Equal(b.ValueOfValue()) &&
			a.AnchoredKeyOf().Equal(out.Args[0].Key) &&
			b.AnchoredKeyOf().Equal(out.Args[1].Key)

	case OpNotEqualFromEntries:
		a, b := op.Inputs[0], op.Inputs[1]
		return out.Predicate == NotEqual &&
			!a.ValueOfValue().Equal(b.ValueOfValue()) &&
			a.AnchoredKeyOf().Equal(out.Args[0].Key) &&
			b.AnchoredKeyOf().Equal(out.Args[1].Key)

	case OpGtFromEntries:
		a, b := op.Inputs[0], op.Inputs[1]
		return out.Predicate == Gt &&
			a.ValueOfValue().Compare(b.ValueOfValue()) > 0 &&
			a.AnchoredKeyOf().Equal(out.Args[0].Key) &&
			b.AnchoredKeyOf().Equal(out.Args[1].Key)

	case OpLtFromEntries:
		a, b := op.Inputs[0], op.Inputs[1]
		return out.Predicate == Lt &&
			a.ValueOfValue().Compare(b.ValueOfValue()) < 0 &&
			a.AnchoredKeyOf().Equal(out.Args[0].Key) &&
			b.AnchoredKeyOf().Equal(out.Args[1].Key)

	case OpTransitiveEqualFromStatements:
		eq1, eq2 := op.Inputs[0], op.Inputs[1]
		a, b := eq1.Args[0].Key, eq1.Args[1].Key
		c, d := eq2.Args[0].Key, eq2.Args[1].Key
		return out.Predicate == Equal &&
			b.Equal(c) &&
			out.Args[0].Key.Equal(a) &&
			out.Args[1].Key.Equal(d)

	case OpGtToNotEqual:
		gt := op.Inputs[0]
		return out.Predicate == NotEqual &&
			gt.Args[0].Key.Equal(out.Args[0].Key) &&
			gt.Args[1].Key.Equal(out.Args[1].Key)

	case OpLtToNotEqual:
		lt := op.Inputs[0]
		return out.Predicate == NotEqual &&
			lt.Args[0].Key.Equal(out.Args[0].Key) &&
			lt.Args[1].Key.Equal(out.Args[1].Key)

	case OpContainsFromEntries:
		return out.Predicate == Contains

	case OpNotContainsFromEntries:
		return out.Predicate == NotContains

	case OpRenameContainedBy:
		contains, eq := op.Inputs[0], op.Inputs[1]
		a, b := contains.Args[0].Key, contains.Args[1].Key
		c, d := eq.Args[0].Key, eq.Args[1].Key
		return out.Predicate == Contains &&
			a.Equal(c) &&
			d.Equal(out.Args[0].Key) &&
			b.Equal(out.Args[1].Key)

	case OpSumOf:
		return checkArithmetic(op, out, func(b, c int64) int64 { return b + c })

	case OpProductOf:
		return checkArithmetic(op, out, func(b, c int64) int64 { return b * c })

	case OpMaxOf:
		return checkArithmetic(op, out, func(b, c int64) int64 {
			if b > c {
				return b
			}
			return c
		})

	default:
		return false
	}
}

func checkArithmetic(op Operation, out Statement, combine func(b, c int64) int64) bool {
	a, b, c := op.Inputs[0], op.Inputs[1], op.Inputs[2]
	v1, err1 := a.ValueOfValue().AsInt64()
	v2, err2 := b.ValueOfValue().AsInt64()
	v3, err3 := c.ValueOfValue().AsInt64()
	if err1 != nil || err2 != nil || err3 != nil {
		return false
	}
	if out.Predicate != outPredicateFor(op.Code) {
		return false
	}
	return v1 == combine(v2, v3) &&
		a.AnchoredKeyOf().Equal(out.Args[0].Key) &&
		b.AnchoredKeyOf().Equal(out.Args[1].Key) &&
		c.AnchoredKeyOf().Equal(out.Args[2].Key)
}

func outPredicateFor(code OpCode) Predicate {
	switch code {
	case OpSumOf:
		return SumOf
	case OpProductOf:
		return ProductOf
	case OpMaxOf:
		return MaxOf
	default:
		return None
	}
}
