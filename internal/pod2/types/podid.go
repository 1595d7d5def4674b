package types

import "github.com/pod-network/pod2-go/internal/pod2/field"

// PodId uniquely identifies a POD instance. NullPodId denotes "no POD"
// (used as padding); SelfPodId denotes the POD currently being built.
type PodId field.Digest

// NullPodId is the padding PodId.
var NullPodId = PodId(field.NullDigest)

// SelfPodId denotes the POD currently being built.
var SelfPodId = PodId(field.SelfDigest)

// Equal reports PodId equality.
func (id PodId) Equal(o PodId) bool {
	return field.Digest(id).Equal(field.Digest(o))
}

// IsNull reports whether id is the padding PodId.
func (id PodId) IsNull() bool {
	return field.Digest(id).IsNull()
}

// IsSelf reports whether id denotes the POD currently being built.
func (id PodId) IsSelf() bool {
	return id.Equal(SelfPodId)
}

// Digest returns the underlying 4-tuple.
func (id PodId) Digest() field.Digest {
	return field.Digest(id)
}
