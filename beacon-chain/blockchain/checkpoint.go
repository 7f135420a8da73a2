package blockchain

import (
	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
)

// updateCheckpoints applies the live (realized) checkpoint update rule: a
// checkpoint is only ever upgraded on a strictly greater epoch. A
// same-epoch, different-root candidate is NOT applied — epoch ties never
// overwrite the stored root. Callers must hold s.mu for writing.
func (s *Store) updateCheckpoints(justified, finalized consensustypes.Checkpoint) {
	if justified.Epoch > s.justifiedCheckpoint.Epoch {
		s.previousJustifiedCheckpoint = s.justifiedCheckpoint
		s.justifiedCheckpoint = justified
		justifiedCheckpointEpoch.Set(float64(justified.Epoch))
		logCheckpointAdvanced("justified", justified)
	}
	if finalized.Epoch > s.finalizedCheckpoint.Epoch {
		s.finalizedCheckpoint = finalized
		finalizedCheckpointEpoch.Set(float64(finalized.Epoch))
		logCheckpointAdvanced("finalized", finalized)
	}
}

// updateUnrealizedCheckpoints applies the same monotone upgrade rule to the
// pulled-up (unrealized) checkpoint pair computed by computePulledUpTip.
// Callers must hold s.mu for writing.
func (s *Store) updateUnrealizedCheckpoints(justified, finalized consensustypes.Checkpoint) {
	if justified.Epoch > s.unrealizedJustifiedCheckpoint.Epoch {
		s.unrealizedJustifiedCheckpoint = justified
	}
	if finalized.Epoch > s.unrealizedFinalizedCheckpoint.Epoch {
		s.unrealizedFinalizedCheckpoint = finalized
	}
}

// JustifiedCheckpoint returns the current live justified checkpoint.
func (s *Store) JustifiedCheckpoint() consensustypes.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.justifiedCheckpoint
}

// PreviousJustifiedCheckpoint returns the checkpoint justified prior to the
// current one.
func (s *Store) PreviousJustifiedCheckpoint() consensustypes.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.previousJustifiedCheckpoint
}

// FinalizedCheckpoint returns the current finalized checkpoint.
func (s *Store) FinalizedCheckpoint() consensustypes.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.finalizedCheckpoint
}

// UnrealizedJustifiedCheckpoint returns the pulled-up justified checkpoint,
// which may lead the live justified checkpoint by up to one epoch.
func (s *Store) UnrealizedJustifiedCheckpoint() consensustypes.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unrealizedJustifiedCheckpoint
}

// UnrealizedFinalizedCheckpoint returns the pulled-up finalized checkpoint.
func (s *Store) UnrealizedFinalizedCheckpoint() consensustypes.Checkpoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unrealizedFinalizedCheckpoint
}

// ProposerBoostRoot returns the block root currently receiving proposer
// score boost, or the zero root if none does.
func (s *Store) ProposerBoostRoot() [32]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.proposerBoostRoot
}
