package statement

import (
	"testing"

	"github.com/pod-network/pod2-go/internal/pod2/types"
)

func ak(pod types.PodId, key string) types.AnchoredKey {
	return types.NewAnchoredKey(pod, key)
}

func TestNewValueOfRejectsWrongArgShape(t *testing.T) {
	if _, err := New(ValueOf, LiteralArg(types.Int64(1)), LiteralArg(types.Int64(2))); err == nil {
		t.Error("ValueOf's first argument must be a key")
	}
	if _, err := New(ValueOf, KeyArg(ak(types.SelfPodId, "k")), KeyArg(ak(types.SelfPodId, "k"))); err == nil {
		t.Error("ValueOf's second argument must be a literal")
	}
}

func TestNewRejectsWrongArity(t *testing.T) {
	if _, err := New(Equal, KeyArg(ak(types.SelfPodId, "a"))); err == nil {
		t.Error("Equal requires two arguments")
	}
}

func TestNewNativePredicateRejectsLiteralArg(t *testing.T) {
	if _, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), LiteralArg(types.Int64(1))); err == nil {
		t.Error("non-ValueOf native predicates require key arguments")
	}
}

func TestStatementEqual(t *testing.T) {
	a, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "b")))
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "b")))
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("structurally identical statements should compare equal")
	}
	c, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "c")))
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) {
		t.Error("statements differing in an argument should not compare equal")
	}
}

func valueOf(pod types.PodId, key string, v types.Value) Statement {
	s, err := New(ValueOf, KeyArg(ak(pod, key)), LiteralArg(v))
	if err != nil {
		panic(err)
	}
	return s
}

func TestCheckEqualFromEntries(t *testing.T) {
	a := valueOf(types.SelfPodId, "x", types.Int64(5))
	b := valueOf(types.SelfPodId, "y", types.Int64(5))
	out, err := New(Equal, KeyArg(ak(types.SelfPodId, "x")), KeyArg(ak(types.SelfPodId, "y")))
	if err != nil {
		t.Fatal(err)
	}
	op, err := Op(OpEqualFromEntries, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Check(op, out) {
		t.Error("EqualFromEntries should accept equal values")
	}

	bad := valueOf(types.SelfPodId, "y", types.Int64(6))
	badOp, err := Op(OpEqualFromEntries, a, bad)
	if err != nil {
		t.Fatal(err)
	}
	if Check(badOp, out) {
		t.Error("EqualFromEntries should reject unequal values")
	}
}

func TestCheckGtFromEntries(t *testing.T) {
	a := valueOf(types.SelfPodId, "x", types.Int64(10))
	b := valueOf(types.SelfPodId, "y", types.Int64(3))
	out, err := New(Gt, KeyArg(ak(types.SelfPodId, "x")), KeyArg(ak(types.SelfPodId, "y")))
	if err != nil {
		t.Fatal(err)
	}
	gtOp, err := Op(OpGtFromEntries, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Check(gtOp, out) {
		t.Error("GtFromEntries should accept 10 > 3")
	}
	reversed, err := Op(OpGtFromEntries, b, a)
	if err != nil {
		t.Fatal(err)
	}
	if Check(reversed, out) {
		t.Error("GtFromEntries should reject 3 > 10")
	}
}

func TestCheckNewEntry(t *testing.T) {
	out := valueOf(types.SelfPodId, "k", types.Int64(42))
	op := NewEntryOp("k", types.Int64(42))
	if !Check(op, out) {
		t.Error("NewEntry should accept its own key/value")
	}

	nonSelf := valueOf(types.NullPodId, "k", types.Int64(42))
	if Check(op, nonSelf) {
		t.Error("NewEntry must only produce statements about the self pod")
	}
}

func TestCheckSumOf(t *testing.T) {
	sum := valueOf(types.SelfPodId, "sum", types.Int64(7))
	a := valueOf(types.SelfPodId, "a", types.Int64(3))
	b := valueOf(types.SelfPodId, "b", types.Int64(4))
	out, err := New(SumOf, KeyArg(ak(types.SelfPodId, "sum")), KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "b")))
	if err != nil {
		t.Fatal(err)
	}
	sumOp, err := Op(OpSumOf, sum, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !Check(sumOp, out) {
		t.Error("SumOf should accept 3+4=7")
	}

	wrong := valueOf(types.SelfPodId, "sum", types.Int64(8))
	wrongOp, err := Op(OpSumOf, wrong, a, b)
	if err != nil {
		t.Fatal(err)
	}
	if Check(wrongOp, out) {
		t.Error("SumOf should reject a wrong sum")
	}
}

func TestCheckTransitiveEqualFromStatements(t *testing.T) {
	ab, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "b")))
	if err != nil {
		t.Fatal(err)
	}
	bc, err := New(Equal, KeyArg(ak(types.SelfPodId, "b")), KeyArg(ak(types.SelfPodId, "c")))
	if err != nil {
		t.Fatal(err)
	}
	out, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "c")))
	if err != nil {
		t.Fatal(err)
	}
	transOp, err := Op(OpTransitiveEqualFromStatements, ab, bc)
	if err != nil {
		t.Fatal(err)
	}
	if !Check(transOp, out) {
		t.Error("TransitiveEqualFromStatements should chain a=b, b=c into a=c")
	}
}
