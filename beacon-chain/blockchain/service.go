package blockchain

import (
	"context"
	"time"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/config/params"
	"github.com/basalt-chain/forkchoice/beacon-chain/execution"
	"github.com/basalt-chain/forkchoice/beacon-chain/kzg"
	"github.com/basalt-chain/forkchoice/beacon-chain/transition"
	"github.com/pkg/errors"
)

// Service wires a Store to its external collaborators and exposes the
// block-ingestion entrypoint to the rest of a beacon node. Process
// bootstrap, gRPC/HTTP registration, and p2p block delivery are the caller's
// concern; Service only owns the fork-choice core's lifecycle.
type Service struct {
	ctx    context.Context
	cancel context.CancelFunc

	store   *Store
	daQueue *DAQueue
}

// Config bundles the collaborators Service needs at construction.
type Config struct {
	GenesisTime        time.Time
	GenesisRoot        [32]byte
	GenesisState       consensustypes.BeaconState
	GenesisBlock       *consensustypes.SignedBeaconBlock
	EngineCaller       execution.EngineCaller
	KZGVerifier        kzg.Verifier
	TransitionExecutor transition.Executor

	// Now overrides the wall-clock source for tests; nil uses time.Now.
	Now func() time.Time
}

// NewService constructs a Service and its underlying Store from cfg.
func NewService(ctx context.Context, cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("blockchain: nil config")
	}
	ctx, cancel := context.WithCancel(ctx)

	clock := NewClock(cfg.GenesisTime, cfg.Now)

	store, err := NewStore(&StoreConfig{
		Clock:              clock,
		EngineCaller:       cfg.EngineCaller,
		KZGVerifier:        cfg.KZGVerifier,
		TransitionExecutor: cfg.TransitionExecutor,
		GenesisRoot:        cfg.GenesisRoot,
		GenesisState:       cfg.GenesisState,
		GenesisBlock:       cfg.GenesisBlock,
	})
	if err != nil {
		cancel()
		return nil, errors.Wrap(err, "could not initialize fork choice store")
	}

	sidecarWindow := time.Duration(params.BeaconConfig().MinEpochsForBlobSidecarsRequest) *
		time.Duration(params.BeaconConfig().SlotsPerEpoch) *
		time.Duration(params.BeaconConfig().SecondsPerSlot) * time.Second

	return &Service{
		ctx:     ctx,
		cancel:  cancel,
		store:   store,
		daQueue: NewDAQueue(sidecarWindow),
	}, nil
}

// Store returns the underlying fork-choice store for callers that need the
// full read API surface (ChainInfoFetcher, BlockRootFetcher).
func (s *Service) Store() *Store {
	return s.store
}

// Stop cancels the service's context. There is no background goroutine to
// join: OnBlock runs synchronously on the caller's goroutine, matching the
// narrow scope of this module (no gossip loop, no sync loop).
func (s *Service) Stop() error {
	s.cancel()
	return nil
}

// ReceiveBlock feeds a signed block through the ingestion pipeline. On
// ErrBlobsUnavailable it re-queues the block into the DA retry queue rather
// than propagating the error, since the blobs may simply not have arrived
// yet; every other error is returned to the caller unchanged.
func (s *Service) ReceiveBlock(ctx context.Context, signed *consensustypes.SignedBeaconBlock, blockRoot [32]byte) error {
	err := s.store.OnBlock(ctx, signed, blockRoot)
	if errors.Is(err, ErrBlobsUnavailable) {
		s.daQueue.Push(blockRoot, signed)
		logBlockRejected(signed.Block.Slot, blockRoot, err)
		return nil
	}
	if err != nil {
		logBlockRejected(signed.Block.Slot, blockRoot, err)
		return err
	}
	return nil
}

// RetryQueuedBlocks drains the DA retry queue and re-feeds every entry
// through ReceiveBlock, returning the roots that failed with an error other
// than ErrBlobsUnavailable. Entries whose blobs are still unavailable are
// queued again by ReceiveBlock and are not in the returned slice.
func (s *Service) RetryQueuedBlocks(ctx context.Context) [][32]byte {
	var stillFailing [][32]byte
	for _, entry := range s.daQueue.Drain() {
		if err := s.ReceiveBlock(ctx, entry.Signed, entry.Root); err != nil {
			stillFailing = append(stillFailing, entry.Root)
		}
	}
	return stillFailing
}
