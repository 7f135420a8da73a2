package consensustypes

import "github.com/basalt-chain/forkchoice/consensus-types/primitives"

// Checkpoint pairs an epoch with the block root at that epoch's boundary
// slot, per the Casper FFG specification referenced in the fork-choice spec.
type Checkpoint struct {
	Epoch primitives.Epoch
	Root  [32]byte
}

// Equal reports whether c and other reference the same epoch and root.
func (c Checkpoint) Equal(other Checkpoint) bool {
	return c.Epoch == other.Epoch && c.Root == other.Root
}

// IsZero reports whether c is the zero-value checkpoint (genesis sentinel).
func (c Checkpoint) IsZero() bool {
	return c.Epoch == 0 && c.Root == [32]byte{}
}
