package blockchain

import (
	"context"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	"github.com/basalt-chain/forkchoice/config/params"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// OnBlock implements the block ingestion pipeline (on_block): it validates
// the incoming block against the store's finalized checkpoint and current
// time, gates on blob data availability for post-Deneb blocks, runs the
// state transition, inserts the block and its post-state into the
// registries, updates the live checkpoints, and computes the pulled-up
// (unrealized) tip.
//
// Spec pseudocode definition:
//
//	def on_block(store: Store, signed_block: SignedBeaconBlock) -> None:
//	    block = signed_block.message
//	    assert block.parent_root in store.block_states
//	    pre_state = store.block_states[block.parent_root].copy()
//	    assert store.time >= pre_state.genesis_time + block.slot * SECONDS_PER_SLOT
//	    finalized_slot = compute_start_slot_at_epoch(store.finalized_checkpoint.epoch)
//	    assert block.slot > finalized_slot
//	    assert get_ancestor(store, block.parent_root, finalized_slot) == store.finalized_checkpoint.root
//	    assert is_data_available(block.body)
//	    state = state_transition(pre_state, signed_block)
//	    store.blocks[hash_tree_root(block)] = block
//	    store.block_states[hash_tree_root(block)] = state
//	    update_checkpoints(store, state.current_justified_checkpoint, state.finalized_checkpoint)
//	    compute_pulled_up_tip(store, hash_tree_root(block))
func (s *Store) OnBlock(ctx context.Context, signed *consensustypes.SignedBeaconBlock, blockRoot [32]byte) error {
	ctx, span := trace.StartSpan(ctx, "blockchain.OnBlock")
	defer span.End()

	if signed == nil || signed.Block == nil {
		return errors.New("blockchain: nil block")
	}
	b := signed.Block

	s.mu.Lock()
	defer s.mu.Unlock()

	preState, ok := s.state(b.ParentRoot)
	if !ok {
		blocksRejectedCount.WithLabelValues("unknown_parent").Inc()
		return ErrUnknownParent
	}

	if s.clock.IsFromFuture(b.Slot) {
		blocksRejectedCount.WithLabelValues("from_future").Inc()
		return ErrBlockFromFuture
	}

	finalizedSlot := params.StartSlot(s.finalizedCheckpoint.Epoch)
	if b.Slot <= finalizedSlot {
		blocksRejectedCount.WithLabelValues("before_finalized").Inc()
		return ErrBeforeFinalized
	}

	parentAncestor, err := s.ancestor(b.ParentRoot, finalizedSlot)
	if err != nil {
		return err
	}
	if parentAncestor != s.finalizedCheckpoint.Root {
		blocksRejectedCount.WithLabelValues("not_descendant_of_finalized").Inc()
		return ErrNotDescendantOfFinalized
	}

	if err := s.IsDataAvailable(ctx, b.Body); err != nil {
		blocksRejectedCount.WithLabelValues("data_unavailable").Inc()
		return err
	}

	if s.transition == nil {
		return errors.New("blockchain: no state transition executor configured")
	}
	postState, err := s.transition.ExecuteStateTransition(ctx, preState, signed)
	if err != nil {
		blocksRejectedCount.WithLabelValues("transition_error").Inc()
		return errors.Wrap(ErrTransitionError, err.Error())
	}

	s.blocks[blockRoot] = signed
	s.states[blockRoot] = postState

	logBlockIngested(b.Slot, blockRoot)

	s.updateProposerBoost(b.Slot, blockRoot)

	s.updateCheckpoints(postState.CurrentJustifiedCheckpoint(), postState.FinalizedCheckpoint())

	if err := s.computePulledUpTip(ctx, blockRoot, postState); err != nil {
		return errors.Wrap(err, "could not compute pulled-up tip")
	}

	blocksProcessedCount.Inc()
	return nil
}

// updateProposerBoost sets the proposer boost root to blockRoot only when
// the block both lands in the current slot and arrives before the
// attesting-interval cutoff within that slot. Among multiple timely siblings
// in the same slot, the first one seen claims the boost; later siblings must
// not steal it back.
//
// Callers must hold s.mu for writing.
func (s *Store) updateProposerBoost(slot primitives.Slot, blockRoot [32]byte) {
	if s.clock.CurrentSlot() != slot {
		return
	}
	if !s.isBeforeAttestingInterval() {
		return
	}
	if s.proposerBoostClaimed && s.proposerBoostSlot == slot {
		return
	}
	s.proposerBoostRoot = blockRoot
	s.proposerBoostSlot = slot
	s.proposerBoostClaimed = true
	proposerBoostRootChurn.Inc()
}

// isBeforeAttestingInterval reports whether the current wall-clock position
// within its slot is still before the attesting interval cutoff
// (SECONDS_PER_SLOT / INTERVALS_PER_SLOT).
func (s *Store) isBeforeAttestingInterval() bool {
	secondsPerSlot := params.BeaconConfig().SecondsPerSlot
	intervalsPerSlot := params.BeaconConfig().IntervalsPerSlot
	if intervalsPerSlot == 0 {
		return false
	}
	slotStart := s.clock.SlotStartTime(s.clock.CurrentSlot())
	timeIntoSlot := uint64(s.clock.now().Sub(slotStart).Seconds())
	return timeIntoSlot < secondsPerSlot/intervalsPerSlot
}
