package blockchain

import (
	"context"
	"testing"
	"time"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	chaintesting "github.com/basalt-chain/forkchoice/beacon-chain/blockchain/testing"
	"github.com/basalt-chain/forkchoice/config/params"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/stretchr/testify/require"
)

func testGenesis(t *testing.T) (*Store, [32]byte, time.Time) {
	t.Helper()
	genesisTime := time.Unix(1700000000, 0)
	genesisRoot := [32]byte{0xAA}
	genesisState := &chaintesting.MockState{
		SlotValue: 0,
	}
	genesisBlock := &consensustypes.SignedBeaconBlock{
		Block: &consensustypes.BeaconBlock{
			Slot: 0,
			Body: &consensustypes.BeaconBlockBody{},
		},
	}
	store, err := NewStore(&StoreConfig{
		Clock:        NewClock(genesisTime, func() time.Time { return genesisTime }),
		EngineCaller: &chaintesting.MockEngine{},
		KZGVerifier:  &chaintesting.MockVerifier{Valid: true},
		TransitionExecutor: &chaintesting.MockTransitionExecutor{
			PostState: genesisState,
		},
		GenesisRoot:  genesisRoot,
		GenesisState: genesisState,
		GenesisBlock: genesisBlock,
	})
	require.NoError(t, err)
	return store, genesisRoot, genesisTime
}

func signedBlock(slot primitives.Slot, parent [32]byte) *consensustypes.SignedBeaconBlock {
	return &consensustypes.SignedBeaconBlock{
		Block: &consensustypes.BeaconBlock{
			Slot:       slot,
			ParentRoot: parent,
			Body:       &consensustypes.BeaconBlockBody{},
		},
	}
}

// Happy path: a block descending from the finalized checkpoint, arriving on
// time, with an available (empty) body is accepted and inserted into the
// registries.
func TestOnBlock_HappyPath(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)

	postState := &chaintesting.MockState{SlotValue: 1}
	store.transition = &chaintesting.MockTransitionExecutor{PostState: postState}
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second)
	})

	root := [32]byte{0x01}
	blk := signedBlock(1, genesisRoot)

	err := store.OnBlock(context.Background(), blk, root)
	require.NoError(t, err)
	require.True(t, store.HasBlock(root))

	got, err := store.Block(root)
	require.NoError(t, err)
	require.Equal(t, primitives.Slot(1), got.Block.Slot)
}

// A block whose slot start time is still ahead of the store's current time
// must be rejected with ErrBlockFromFuture.
func TestOnBlock_FutureBlockRejected(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time { return genesisTime })

	root := [32]byte{0x02}
	blk := signedBlock(5, genesisRoot)

	err := store.OnBlock(context.Background(), blk, root)
	require.ErrorIs(t, err, ErrBlockFromFuture)
	require.False(t, store.HasBlock(root))
}

// A block whose parent is not in the registry must be rejected with
// ErrUnknownParent rather than panicking or silently dropping.
func TestOnBlock_UnknownParentRejected(t *testing.T) {
	store, _, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Hour)
	})

	root := [32]byte{0x03}
	blk := signedBlock(1, [32]byte{0xFF})

	err := store.OnBlock(context.Background(), blk, root)
	require.ErrorIs(t, err, ErrUnknownParent)
}

// A block at or before the finalized checkpoint's start slot must be
// rejected with ErrBeforeFinalized even if its parent is known.
func TestOnBlock_BeforeFinalizedRejected(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Hour)
	})
	store.finalizedCheckpoint = consensustypes.Checkpoint{Epoch: 10, Root: genesisRoot}

	root := [32]byte{0x04}
	blk := signedBlock(1, genesisRoot)

	err := store.OnBlock(context.Background(), blk, root)
	require.ErrorIs(t, err, ErrBeforeFinalized)
}

// A block referencing KZG commitments the execution engine cannot supply
// must be rejected with ErrBlobsUnavailable.
func TestOnBlock_BlobsUnavailableRejected(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Hour)
	})
	store.engine = &chaintesting.MockEngine{} // holds no blobs

	root := [32]byte{0x05}
	blk := signedBlock(1, genesisRoot)
	blk.Block.Body.BlobKZGCommitments = [][48]byte{{0x01}}

	err := store.OnBlock(context.Background(), blk, root)
	require.ErrorIs(t, err, ErrBlobsUnavailable)
	require.False(t, store.HasBlock(root))
}

// Checkpoint updates are monotone: a postState reporting a justified epoch
// equal to (not greater than) the stored epoch must not overwrite the root,
// even if the root differs.
func TestOnBlock_CheckpointMonotonicity(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Hour)
	})

	existing := consensustypes.Checkpoint{Epoch: 3, Root: genesisRoot}
	store.justifiedCheckpoint = existing

	postState := &chaintesting.MockState{
		SlotValue:                       1,
		CurrentJustifiedCheckpointValue: consensustypes.Checkpoint{Epoch: 3, Root: [32]byte{0xEE}},
	}
	store.transition = &chaintesting.MockTransitionExecutor{PostState: postState}

	root := [32]byte{0x06}
	blk := signedBlock(1, genesisRoot)

	require.NoError(t, store.OnBlock(context.Background(), blk, root))
	require.Equal(t, existing, store.JustifiedCheckpoint())
}

// A block arriving in the current slot and before the attesting-interval
// cutoff claims the proposer boost root.
func TestOnBlock_ProposerBoostSetWithinAttestingInterval(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	slotStart := genesisTime.Add(time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second)
	store.clock = NewClock(genesisTime, func() time.Time { return slotStart })
	store.transition = &chaintesting.MockTransitionExecutor{PostState: &chaintesting.MockState{SlotValue: 1}}

	root := [32]byte{0x07}
	blk := signedBlock(1, genesisRoot)

	require.NoError(t, store.OnBlock(context.Background(), blk, root))
	require.Equal(t, root, store.ProposerBoostRoot())
}

// A block arriving after the attesting-interval cutoff within its slot does
// not claim the proposer boost root.
func TestOnBlock_ProposerBoostNotSetAfterAttestingInterval(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	secondsPerSlot := params.BeaconConfig().SecondsPerSlot
	intervalsPerSlot := params.BeaconConfig().IntervalsPerSlot
	slotStart := genesisTime.Add(time.Duration(secondsPerSlot) * time.Second)
	afterCutoff := slotStart.Add(time.Duration(secondsPerSlot/intervalsPerSlot+1) * time.Second)
	store.clock = NewClock(genesisTime, func() time.Time { return afterCutoff })
	store.transition = &chaintesting.MockTransitionExecutor{PostState: &chaintesting.MockState{SlotValue: 1}}

	root := [32]byte{0x08}
	blk := signedBlock(1, genesisRoot)

	require.NoError(t, store.OnBlock(context.Background(), blk, root))
	require.Equal(t, [32]byte{}, store.ProposerBoostRoot())
}

// Of two timely siblings in the same slot, the first one ingested keeps the
// proposer boost root; the second must not steal it.
func TestOnBlock_ProposerBoostFirstSiblingWins(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	slotStart := genesisTime.Add(time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second)
	store.clock = NewClock(genesisTime, func() time.Time { return slotStart })
	store.transition = &chaintesting.MockTransitionExecutor{PostState: &chaintesting.MockState{SlotValue: 1}}

	first := [32]byte{0x09}
	second := [32]byte{0x0A}

	require.NoError(t, store.OnBlock(context.Background(), signedBlock(1, genesisRoot), first))
	require.Equal(t, first, store.ProposerBoostRoot())

	require.NoError(t, store.OnBlock(context.Background(), signedBlock(1, genesisRoot), second))
	require.Equal(t, first, store.ProposerBoostRoot())
}

// A block whose parent is known but whose chain does not pass through the
// finalized checkpoint's root at the finalized slot must be rejected with
// ErrNotDescendantOfFinalized.
func TestOnBlock_ForkOffFinalizedRejected(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Hour)
	})

	// Finalize a checkpoint at a root distinct from genesis; the parent of
	// the candidate block is known but descends from genesis, not from the
	// finalized root, so it diverges before the finalized slot.
	finalizedRoot := [32]byte{0xF0}
	store.blocks[finalizedRoot] = signedBlock(2, genesisRoot)
	store.states[finalizedRoot] = &chaintesting.MockState{SlotValue: 2}
	store.finalizedCheckpoint = consensustypes.Checkpoint{Epoch: 0, Root: finalizedRoot}

	forkParent := [32]byte{0xF1}
	store.blocks[forkParent] = signedBlock(2, genesisRoot)
	store.states[forkParent] = &chaintesting.MockState{SlotValue: 2}

	root := [32]byte{0xF2}
	blk := signedBlock(3, forkParent)

	err := store.OnBlock(context.Background(), blk, root)
	require.ErrorIs(t, err, ErrNotDescendantOfFinalized)
	require.False(t, store.HasBlock(root))
}

// Slashings and the sync aggregate are carried through block ingestion
// untouched: fork-choice never reads them, but the body round-trips them.
func TestOnBlock_CarriesSlashingsAndSyncAggregateUntouched(t *testing.T) {
	store, genesisRoot, genesisTime := testGenesis(t)
	store.clock = NewClock(genesisTime, func() time.Time {
		return genesisTime.Add(time.Hour)
	})
	store.transition = &chaintesting.MockTransitionExecutor{PostState: &chaintesting.MockState{SlotValue: 1}}

	root := [32]byte{0x0B}
	blk := signedBlock(1, genesisRoot)
	blk.Block.Body.ProposerSlashings = []*consensustypes.ProposerSlashing{
		{
			Header1: &consensustypes.SignedBeaconBlockHeader{Slot: 1, ProposerIndex: 7},
			Header2: &consensustypes.SignedBeaconBlockHeader{Slot: 1, ProposerIndex: 7, StateRoot: [32]byte{0x01}},
		},
	}
	blk.Block.Body.AttesterSlashings = []*consensustypes.AttesterSlashing{
		{
			Attestation1: &consensustypes.AttestationData{Slot: 1},
			Attestation2: &consensustypes.AttestationData{Slot: 1, BeaconBlockRoot: [32]byte{0x02}},
		},
	}
	blk.Block.Body.SyncAggregate = &consensustypes.SyncAggregate{
		SyncCommitteeBits: bitfield.Bitvector512{0x01},
	}

	require.NoError(t, store.OnBlock(context.Background(), blk, root))

	got, err := store.Block(root)
	require.NoError(t, err)
	require.Len(t, got.Block.Body.ProposerSlashings, 1)
	require.Len(t, got.Block.Body.AttesterSlashings, 1)
	require.NotNil(t, got.Block.Body.SyncAggregate)
}
