package predicate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pod-network/pod2-go/internal/pod2/field"
	"github.com/pod-network/pod2-go/internal/pod2/statement"
)

func TestBuilderReservesPositionalWildcardsFirst(t *testing.T) {
	b := NewBuilder(true, "src", "dst")
	if idx := b.Wildcard("src"); idx.Wildcard != 0 {
		t.Errorf("src wildcard index = %d, want 0", idx.Wildcard)
	}
	if idx := b.Wildcard("dst"); idx.Wildcard != 1 {
		t.Errorf("dst wildcard index = %d, want 1", idx.Wildcard)
	}
	// A fresh wildcard introduced after the positional args gets the next
	// available index.
	if idx := b.Wildcard("extra"); idx.Wildcard != 2 {
		t.Errorf("extra wildcard index = %d, want 2", idx.Wildcard)
	}
}

func TestWildcardResolutionIsIdempotent(t *testing.T) {
	b := NewBuilder(false, "a")
	first := b.Wildcard("a")
	second := b.Wildcard("a")
	if first.Wildcard != second.Wildcard {
		t.Error("resolving the same wildcard name twice should yield the same index")
	}
}

func TestBuildRejectsEmptyPredicate(t *testing.T) {
	b := NewBuilder(true, "a")
	if _, err := b.Build(); err == nil {
		t.Error("expected Build to fail with zero templates")
	}
}

func TestBuildProducesOrderedTemplates(t *testing.T) {
	b := NewBuilder(true, "a", "b")
	wa := b.Wildcard("a")
	wb := b.Wildcard("b")
	b.AddTemplate(NativeRef(statement.Equal), KeyArg(wa, Hash(field.HashStr("k1"))), KeyArg(wb, Hash(field.HashStr("k2"))))
	b.AddTemplate(NativeRef(statement.Gt), KeyArg(wa, Hash(field.HashStr("k3"))), KeyArg(wb, Hash(field.HashStr("k4"))))

	pred, err := b.Build()
	require.NoError(t, err)
	require.Len(t, pred.Templates, 2)
	require.Equal(t, statement.Equal, pred.Templates[0].Predicate.Native, "first template should be the Equal predicate")
	require.Equal(t, statement.Gt, pred.Templates[1].Predicate.Native, "second template should be the Gt predicate")
	require.Equal(t, 2, pred.ArgsLen)
}

func TestBatchHashStableAcrossIdenticalConstructions(t *testing.T) {
	build := func() Batch {
		b := NewBuilder(true, "a", "b")
		wa := b.Wildcard("a")
		wb := b.Wildcard("b")
		b.AddTemplate(NativeRef(statement.Equal), KeyArg(wa, Hash(field.HashStr("k1"))), KeyArg(wb, Hash(field.HashStr("k2"))))
		pred, err := b.Build()
		if err != nil {
			t.Fatal(err)
		}
		return NewBatch([]CustomPredicate{pred})
	}

	b1 := build()
	b2 := build()
	if !b1.Hash().Equal(b2.Hash()) {
		t.Error("two identically constructed batches should share a content hash")
	}
}

func TestBatchHashSensitiveToTemplateOrder(t *testing.T) {
	mk := func(first, second statement.Predicate) Batch {
		b := NewBuilder(true, "a", "b")
		wa := b.Wildcard("a")
		wb := b.Wildcard("b")
		b.AddTemplate(NativeRef(first), KeyArg(wa, Hash(field.HashStr("k1"))), KeyArg(wb, Hash(field.HashStr("k2"))))
		b.AddTemplate(NativeRef(second), KeyArg(wa, Hash(field.HashStr("k1"))), KeyArg(wb, Hash(field.HashStr("k2"))))
		pred, err := b.Build()
		if err != nil {
			t.Fatal(err)
		}
		return NewBatch([]CustomPredicate{pred})
	}

	a := mk(statement.Equal, statement.Gt)
	b := mk(statement.Gt, statement.Equal)
	if a.Hash().Equal(b.Hash()) {
		t.Error("swapping template order should change the batch's content hash")
	}
}
