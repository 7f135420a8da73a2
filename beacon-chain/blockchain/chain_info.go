package blockchain

import (
	"time"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
)

// FinalizationFetcher defines the narrow read surface that resolves
// checkpoints, embedded into ChainInfoFetcher below.
type FinalizationFetcher interface {
	FinalizedCheckpt() consensustypes.Checkpoint
	CurrentJustifiedCheckpt() consensustypes.Checkpoint
	PreviousJustifiedCheckpt() consensustypes.Checkpoint
}

// TimeFetcher retrieves the chain's genesis time and the current slot
// derived from it.
type TimeFetcher interface {
	GenesisTime() time.Time
	CurrentSlot() primitives.Slot
}

// BlockRootFetcher resolves roots to blocks.
type BlockRootFetcher interface {
	Block(root [32]byte) (*consensustypes.SignedBeaconBlock, error)
	HasBlock(root [32]byte) bool
}

// ChainInfoFetcher bundles the narrow read surface this store exposes:
// resolving finalized/justified checkpoints and the current slot. Head and
// genesis resolution are intentionally left to a weighted fork-choice
// component this store does not implement.
type ChainInfoFetcher interface {
	FinalizationFetcher
	TimeFetcher
}

// FinalizedCheckpt returns the latest finalized checkpoint.
func (s *Store) FinalizedCheckpt() consensustypes.Checkpoint {
	return s.FinalizedCheckpoint()
}

// CurrentJustifiedCheckpt returns the current live justified checkpoint.
func (s *Store) CurrentJustifiedCheckpt() consensustypes.Checkpoint {
	return s.JustifiedCheckpoint()
}

// PreviousJustifiedCheckpt returns the checkpoint justified prior to the
// current one.
func (s *Store) PreviousJustifiedCheckpt() consensustypes.Checkpoint {
	return s.PreviousJustifiedCheckpoint()
}

// GenesisRoot returns the root of the genesis block the store was seeded
// with.
func (s *Store) GenesisRoot() [32]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.genesisRoot
}

// GenesisTime returns the chain's genesis time.
func (s *Store) GenesisTime() time.Time {
	return s.clock.GenesisTime()
}

// CurrentSlot returns the slot containing the current wall-clock time.
func (s *Store) CurrentSlot() primitives.Slot {
	return s.clock.CurrentSlot()
}

// RootsBySlot returns every known block root at the given slot, the
// collaborator the Read API's slot(s) query delegates to.
func (s *Store) RootsBySlot(slot primitives.Slot) [][32]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var roots [][32]byte
	for root, b := range s.blocks {
		if b.Block.Slot == slot {
			roots = append(roots, root)
		}
	}
	return roots
}

// IDKind selects which form an ID takes: one of the symbolic names
// (finalized, justified, head, genesis) or a concrete slot or root.
type IDKind int

const (
	IDFinalized IDKind = iota
	IDJustified
	IDHead
	IDGenesis
	IDSlot
	IDRoot
)

// ID identifies one or more blocks, either by a symbolic name or by a
// concrete slot or root, for Resolve.
type ID struct {
	Kind IDKind
	Slot primitives.Slot
	Root [32]byte
}

// Resolve implements the Read API Collaborator Contract: it maps a symbolic
// or concrete ID to the root(s) it names.
//
//   - finalized/justified resolve to their checkpoint's root.
//   - slot resolves to every known root at that slot — there may be more
//     than one pre-finalization, hence slot(s).
//   - root resolves to itself if the store knows it.
//   - head and genesis both return ErrNotFound: head selection requires a
//     weighted fork-choice component this store does not implement, and
//     genesis is deliberately not exposed through the generic ID surface
//     (callers needing it use GenesisRoot directly).
func (s *Store) Resolve(id ID) ([][32]byte, error) {
	switch id.Kind {
	case IDFinalized:
		return [][32]byte{s.FinalizedCheckpt().Root}, nil
	case IDJustified:
		return [][32]byte{s.CurrentJustifiedCheckpt().Root}, nil
	case IDSlot:
		roots := s.RootsBySlot(id.Slot)
		if len(roots) == 0 {
			return nil, ErrNotFound
		}
		return roots, nil
	case IDRoot:
		if !s.HasBlock(id.Root) {
			return nil, ErrNotFound
		}
		return [][32]byte{id.Root}, nil
	case IDHead, IDGenesis:
		return nil, ErrNotFound
	default:
		return nil, ErrNotFound
	}
}
