package consensustypes

import (
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	"github.com/holiman/uint256"
)

// Validator is the subset of validator-registry fields the fork-choice core
// and its read API need: status gating for weighting and effective balance
// for stake-weighted accounting. Full validator records live with the
// state-transition collaborator.
type Validator struct {
	EffectiveBalance *uint256.Int
	Slashed          bool
	ExitEpoch        primitives.Epoch
}

// BeaconState is the minimal read-through view of consensus state the
// fork-choice core needs after a block's state transition has run: the
// post-state's own checkpoints (the inputs to pulled-up-tip computation),
// validator registry, and balances. The real BeaconState (full SSZ-hashable
// struct with history, randao, eth1 data, etc.) is a state-transition
// collaborator named only by this interface.
type BeaconState interface {
	Slot() primitives.Slot
	CurrentJustifiedCheckpoint() Checkpoint
	PreviousJustifiedCheckpoint() Checkpoint
	FinalizedCheckpoint() Checkpoint

	ValidatorAtIndex(idx primitives.ValidatorIndex) (*Validator, error)
	Balances() []uint64

	// Clone returns a deep copy so pulled-up-tip computation can run
	// process_justification_and_finalization on a throwaway state without
	// mutating the canonically stored post-state.
	Clone() BeaconState

	// ProcessJustificationAndFinalization runs Casper FFG's justification and
	// finalization accounting in place and returns the resulting current
	// justified and finalized checkpoints. Its internals (attestation
	// tallying, supermajority-link accounting) belong to the state-transition
	// collaborator; the fork-choice core only ever calls this on a Clone(),
	// never on a canonically stored state.
	ProcessJustificationAndFinalization() (justified, finalized Checkpoint, err error)
}
