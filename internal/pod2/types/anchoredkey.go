package types

import "github.com/pod-network/pod2-go/internal/pod2/field"

// AnchoredKey is the only way a statement can reference an entry: it
// binds a key to the specific ancestor POD it came from. The frontend
// carries the original string Key; lowering hashes it into KeyHash.
type AnchoredKey struct {
	Pod     PodId
	Key     string
	KeyHash field.Digest
}

// NewAnchoredKey builds an AnchoredKey from a frontend string key,
// deriving KeyHash = H(key) eagerly so equality comparisons never need to
// re-hash.
func NewAnchoredKey(pod PodId, key string) AnchoredKey {
	return AnchoredKey{Pod: pod, Key: key, KeyHash: field.HashStr(key)}
}

// Equal compares two AnchoredKeys by (Pod, KeyHash) — the lowered
// identity — never by the frontend string, since two keys backed by the
// same hash are the same key for deductive purposes.
func (ak AnchoredKey) Equal(o AnchoredKey) bool {
	return ak.Pod.Equal(o.Pod) && ak.KeyHash.Equal(o.KeyHash)
}
