package blockchain

import (
	"context"

	"github.com/basalt-chain/forkchoice/beacon-chain/core/helpers"
	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/config/params"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// computePulledUpTip implements the unrealized-checkpoint computation: it
// clones postState, runs process_justification_and_finalization on the
// clone only, records the result into unrealizedJustifications for root, and
// folds it into the store's unrealized checkpoints via the same monotone
// update rule the live checkpoints use. If the block's own epoch is behind
// the current epoch, the pulled-up result is also realized immediately via
// updateCheckpoints, since there is no future block left to re-derive it.
//
// Callers must hold s.mu for writing.
func (s *Store) computePulledUpTip(ctx context.Context, root [32]byte, postState consensustypes.BeaconState) error {
	_, span := trace.StartSpan(ctx, "blockchain.computePulledUpTip")
	defer span.End()

	clone := postState.Clone()
	justified, finalized, err := clone.ProcessJustificationAndFinalization()
	if err != nil {
		return errors.Wrap(err, "could not compute pulled-up justification and finalization")
	}

	s.unrealizedJustifications[root] = justified
	s.updateUnrealizedCheckpoints(justified, finalized)

	currentEpoch := params.SlotToEpoch(s.clock.CurrentSlot())
	blockEpoch := helpers.CurrentEpoch(postState)
	if blockEpoch < currentEpoch {
		s.updateCheckpoints(justified, finalized)
	}
	return nil
}
