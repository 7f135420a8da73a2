package primitives

// ValidatorIndex identifies a validator by its position in the beacon state's
// validator registry.
type ValidatorIndex uint64

// CommitteeIndex identifies a committee within a slot.
type CommitteeIndex uint64
