package blockchain

import "github.com/basalt-chain/forkchoice/consensus-types/primitives"

// ancestor walks the block registry's parent pointers iteratively to find
// the ancestor of root at or before atSlot. A recursive walk would risk
// unbounded stack growth on long unfinalized chains, so this is iterative.
//
// If the walk runs off the known registry before reaching atSlot — the
// pre-genesis/checkpoint-sync anchor case, where an ancestor older than the
// store's oldest retained block is requested — root is returned unchanged
// rather than erroring, so callers relying on ancestor_of's totality (the
// descendant-of-finalized check, pruning) see a stable answer instead of a
// spurious failure.
//
// Callers must hold s.mu for reading.
func (s *Store) ancestor(root [32]byte, atSlot primitives.Slot) ([32]byte, error) {
	cur := root
	for {
		b, ok := s.block(cur)
		if !ok {
			return root, nil
		}
		if b.Block.Slot <= atSlot {
			return cur, nil
		}
		cur = b.Block.ParentRoot
	}
}

// isDescendantOfFinalized reports whether root descends from the currently
// finalized checkpoint's block (or is that block itself). Callers must hold
// s.mu for reading.
func (s *Store) isDescendantOfFinalized(root [32]byte) (bool, error) {
	finalizedBlock, ok := s.block(s.finalizedCheckpoint.Root)
	if !ok {
		return false, ErrUnknownBlock
	}
	a, err := s.ancestor(root, finalizedBlock.Block.Slot)
	if err != nil {
		return false, err
	}
	return a == s.finalizedCheckpoint.Root, nil
}
