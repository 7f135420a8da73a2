// Package blockchain implements the fork-choice store: block ingestion,
// Casper FFG checkpoint tracking (including the unrealized/pulled-up
// variants), ancestor resolution, the blob data-availability gate, and the
// narrow read API exposed to callers. HTTP transport, the state-transition
// function's internals, KZG math, SSZ hashing, networking, and on-disk
// storage remain external collaborators, named only by interface.
package blockchain

import (
	"sync"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	"github.com/basalt-chain/forkchoice/beacon-chain/execution"
	"github.com/basalt-chain/forkchoice/beacon-chain/kzg"
	"github.com/basalt-chain/forkchoice/beacon-chain/transition"
	"github.com/pkg/errors"
)

// Store holds the fork-choice core's mutable state: the in-memory block and
// state registries, the live and unrealized checkpoints, and proposer boost
// bookkeeping. All mutation happens through OnBlock; reads go through the
// ChainInfoFetcher-style accessors in chain_info.go.
type Store struct {
	mu sync.RWMutex

	clock *Clock

	engine      execution.EngineCaller
	kzgVerifier kzg.Verifier
	transition  transition.Executor

	blocks map[[32]byte]*consensustypes.SignedBeaconBlock
	states map[[32]byte]consensustypes.BeaconState

	justifiedCheckpoint         consensustypes.Checkpoint
	previousJustifiedCheckpoint consensustypes.Checkpoint
	finalizedCheckpoint         consensustypes.Checkpoint

	// unrealizedJustifications tracks, per block root, the justified
	// checkpoint obtained by pulling up that block's post-state with
	// process_justification_and_finalization run on a clone. This is the
	// input to the monotone update_unrealized_checkpoints step.
	unrealizedJustifications map[[32]byte]consensustypes.Checkpoint

	unrealizedJustifiedCheckpoint consensustypes.Checkpoint
	unrealizedFinalizedCheckpoint consensustypes.Checkpoint

	// proposerBoostRoot, proposerBoostSlot, and proposerBoostClaimed together
	// implement "first timely sibling wins": updateProposerBoost only
	// assigns when proposerBoostSlot doesn't already match the incoming
	// slot with proposerBoostClaimed set, so the first timely block seen in
	// a slot keeps the root even if a later sibling in the same slot also
	// qualifies.
	proposerBoostRoot    [32]byte
	proposerBoostSlot    primitives.Slot
	proposerBoostClaimed bool

	genesisRoot [32]byte
}

// StoreConfig bundles the external collaborators Store needs at
// construction, mirroring Service's own Config struct
// (beacon-chain/blockchain/service.go).
type StoreConfig struct {
	Clock            *Clock
	EngineCaller     execution.EngineCaller
	KZGVerifier      kzg.Verifier
	TransitionExecutor transition.Executor
	GenesisRoot      [32]byte
	GenesisState     consensustypes.BeaconState
	GenesisBlock     *consensustypes.SignedBeaconBlock
}

// NewStore constructs a Store seeded with the genesis block/state and
// checkpoints all pointing at genesis: justified, finalized, and
// previous-justified all start at the genesis checkpoint.
func NewStore(cfg *StoreConfig) (*Store, error) {
	if cfg == nil || cfg.Clock == nil {
		return nil, errors.New("blockchain: missing store config")
	}
	if cfg.GenesisBlock == nil || cfg.GenesisState == nil {
		return nil, errors.New("blockchain: missing genesis block or state")
	}

	genesisCheckpoint := consensustypes.Checkpoint{Epoch: 0, Root: cfg.GenesisRoot}

	s := &Store{
		clock:                         cfg.Clock,
		engine:                        cfg.EngineCaller,
		kzgVerifier:                   cfg.KZGVerifier,
		transition:                    cfg.TransitionExecutor,
		blocks:                        make(map[[32]byte]*consensustypes.SignedBeaconBlock),
		states:                        make(map[[32]byte]consensustypes.BeaconState),
		unrealizedJustifications:      make(map[[32]byte]consensustypes.Checkpoint),
		justifiedCheckpoint:           genesisCheckpoint,
		previousJustifiedCheckpoint:   genesisCheckpoint,
		finalizedCheckpoint:           genesisCheckpoint,
		unrealizedJustifiedCheckpoint: genesisCheckpoint,
		unrealizedFinalizedCheckpoint: genesisCheckpoint,
		genesisRoot:                   cfg.GenesisRoot,
	}
	s.blocks[cfg.GenesisRoot] = cfg.GenesisBlock
	s.states[cfg.GenesisRoot] = cfg.GenesisState
	s.unrealizedJustifications[cfg.GenesisRoot] = genesisCheckpoint

	return s, nil
}

// block returns the stored block for root. Callers must hold mu.
func (s *Store) block(root [32]byte) (*consensustypes.SignedBeaconBlock, bool) {
	b, ok := s.blocks[root]
	return b, ok
}

// state returns the stored post-state for root. Callers must hold mu.
func (s *Store) state(root [32]byte) (consensustypes.BeaconState, bool) {
	st, ok := s.states[root]
	return st, ok
}

// HasBlock reports whether root is present in the block registry.
func (s *Store) HasBlock(root [32]byte) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.blocks[root]
	return ok
}

// Block returns the stored block for root, or ErrUnknownBlock if absent.
func (s *Store) Block(root [32]byte) (*consensustypes.SignedBeaconBlock, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blocks[root]
	if !ok {
		return nil, ErrUnknownBlock
	}
	return b, nil
}

// StateAtRoot returns the stored post-state for root, or ErrUnknownBlock if
// absent.
func (s *Store) StateAtRoot(root [32]byte) (consensustypes.BeaconState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.states[root]
	if !ok {
		return nil, ErrUnknownBlock
	}
	return st, nil
}

// ValidatorsAtState returns the validator registry as observed in the
// post-state at root, addressed by explicit root rather than implicit head.
func (s *Store) ValidatorsAtState(root [32]byte) ([]*consensustypes.Validator, error) {
	st, err := s.StateAtRoot(root)
	if err != nil {
		return nil, err
	}
	balances := st.Balances()
	out := make([]*consensustypes.Validator, 0, len(balances))
	for i := range balances {
		v, err := st.ValidatorAtIndex(primitives.ValidatorIndex(i))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
