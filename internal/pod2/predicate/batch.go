package predicate

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/pod-network/pod2-go/internal/pod2/field"
)

// Batch is an ordered list of custom predicates. Within a batch, a
// template may invoke another predicate in the same batch via
// Predicate::BatchSelf; cross-batch references are identified by the
// referenced batch's content hash.
type Batch struct {
	Predicates []CustomPredicate
}

// NewBatch wraps an ordered predicate list as a batch.
func NewBatch(preds []CustomPredicate) Batch {
	return Batch{Predicates: append([]CustomPredicate(nil), preds...)}
}

// Hash computes the batch's content-addressed identity: a SHA-256 digest
// over a canonical length-prefixed encoding of every predicate's
// (conjunction flag, arg count, templates) in batch order. The encoding
// is a pure function of the batch's ordered predicate/template slices —
// it never iterates a map — so two independently constructed but
// identical batches always hash equal, which is the only property this
// hash scheme guarantees (cross-implementation interoperability is
// explicitly out of scope).
func (b Batch) Hash() field.Digest {
	h := sha256.New()
	putU64 := func(v uint64) {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	putDigest := func(d field.Digest) {
		b := d.ToBytes()
		h.Write(b[:])
	}

	putU64(uint64(len(b.Predicates)))
	for _, p := range b.Predicates {
		if p.Conjunction {
			putU64(1)
		} else {
			putU64(0)
		}
		putU64(uint64(p.ArgsLen))
		putU64(uint64(len(p.Templates)))
		for _, t := range p.Templates {
			putU64(uint64(t.Predicate.Kind))
			putU64(uint64(t.Predicate.Native))
			putU64(uint64(t.Predicate.SelfIndex))
			putDigest(t.Predicate.BatchHash)
			putU64(uint64(t.Predicate.Index))
			putU64(uint64(len(t.Args)))
			for _, a := range t.Args {
				putU64(uint64(a.Kind))
				putDigest(a.Literal)
				putU64(uint64(a.Pod.Kind))
				putDigest(a.Pod.Hash)
				putU64(uint64(a.Pod.Wildcard))
				putU64(uint64(a.Key.Kind))
				putDigest(a.Key.Hash)
				putU64(uint64(a.Key.Wildcard))
			}
		}
	}

	sum := h.Sum(nil)
	var out [32]byte
	copy(out[:], sum)
	return field.DigestFromHex(out)
}
