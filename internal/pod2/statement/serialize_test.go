package statement

import (
	"testing"

	"github.com/pod-network/pod2-go/internal/pod2/types"
)

func TestSerializeLength(t *testing.T) {
	s, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "b")))
	if err != nil {
		t.Fatal(err)
	}
	const maxArgs = 5
	out := Serialize(s, maxArgs)
	want := 1 + maxArgs*StatementArgFLen
	if len(out) != want {
		t.Errorf("Serialize length = %d, want %d", len(out), want)
	}
}

func TestSerializePadsUnusedArgsWithZero(t *testing.T) {
	s, err := New(Equal, KeyArg(ak(types.SelfPodId, "a")), KeyArg(ak(types.SelfPodId, "b")))
	if err != nil {
		t.Fatal(err)
	}
	out := Serialize(s, 3)
	// Equal has arity 2; the third argument slot must serialize to all zeros.
	offset := 1 + 2*StatementArgFLen
	for i := 0; i < StatementArgFLen; i++ {
		if !out[offset+i].IsZero() {
			t.Errorf("expected padding slot %d to be zero, got %v", i, out[offset+i])
		}
	}
}

func TestSerializeDeterministic(t *testing.T) {
	s, err := New(Gt, KeyArg(ak(types.SelfPodId, "x")), KeyArg(ak(types.SelfPodId, "y")))
	if err != nil {
		t.Fatal(err)
	}
	a := Serialize(s, 5)
	b := Serialize(s, 5)
	if len(a) != len(b) {
		t.Fatal("lengths differ")
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			t.Errorf("serialize is not deterministic at index %d", i)
		}
	}
}
