// Package db names the persistence collaborators the fork-choice core reads
// through and writes to, without implementing a storage engine itself. The
// concrete on-disk format (bbolt, LevelDB, or otherwise) is explicitly out of
// scope; these interfaces exist so the core can be wired to any backend that
// satisfies them.
package db

import (
	"context"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
)

// BlockProvider persists and retrieves signed beacon blocks by root.
type BlockProvider interface {
	Block(ctx context.Context, root [32]byte) (*consensustypes.SignedBeaconBlock, error)
	SaveBlock(ctx context.Context, root [32]byte, block *consensustypes.SignedBeaconBlock) error
	HasBlock(ctx context.Context, root [32]byte) bool
}

// StateProvider persists and retrieves post-state by the block root whose
// processing produced it.
type StateProvider interface {
	State(ctx context.Context, root [32]byte) (consensustypes.BeaconState, error)
	SaveState(ctx context.Context, root [32]byte, state consensustypes.BeaconState) error
}

// FinalizedCheckpointProvider persists the most recent finalized checkpoint
// so it can be recovered across restarts without replaying the whole chain.
type FinalizedCheckpointProvider interface {
	FinalizedCheckpoint(ctx context.Context) (consensustypes.Checkpoint, error)
	SaveFinalizedCheckpoint(ctx context.Context, cp consensustypes.Checkpoint) error
}

// JustifiedCheckpointProvider is the analogous persistence surface for the
// live (realized) justified checkpoint.
type JustifiedCheckpointProvider interface {
	JustifiedCheckpoint(ctx context.Context) (consensustypes.Checkpoint, error)
	SaveJustifiedCheckpoint(ctx context.Context, cp consensustypes.Checkpoint) error
}

// SlotIndexProvider resolves all known block roots at a given slot, the
// collaborator the Read API's slot(s) query delegates to.
type SlotIndexProvider interface {
	RootsBySlot(ctx context.Context, slot primitives.Slot) ([][32]byte, error)
}

// StateRootIndexProvider resolves the block root that produced a given state
// root, the collaborator the Read API's root(r) query delegates to when r
// names a state root rather than a block root.
type StateRootIndexProvider interface {
	BlockRootForStateRoot(ctx context.Context, stateRoot [32]byte) ([32]byte, error)
}
