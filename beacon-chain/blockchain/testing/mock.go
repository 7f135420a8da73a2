// Package testing provides fakes for the fork-choice core's external
// collaborators (execution engine, KZG verifier, state-transition executor,
// and BeaconState itself): plain structs with exported fields tests can set
// directly, rather than a generated mocking framework.
package testing

import (
	"context"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	"github.com/basalt-chain/forkchoice/beacon-chain/execution"
	"github.com/basalt-chain/forkchoice/beacon-chain/kzg"
	"github.com/pkg/errors"
	ethcommon "github.com/ethereum/go-ethereum/common"
)

// MockEngine is a fake execution.EngineCaller. Blobs maps a versioned hash
// to the blob/proof pair the engine "holds"; a missing entry simulates the
// engine not having that blob.
type MockEngine struct {
	Blobs map[ethcommon.Hash]*execution.BlobAndProof
	Err   error
}

// GetBlobsV1 implements execution.EngineCaller.
func (m *MockEngine) GetBlobsV1(ctx context.Context, versionedHashes []ethcommon.Hash) ([]*execution.BlobAndProof, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]*execution.BlobAndProof, len(versionedHashes))
	for i, h := range versionedHashes {
		out[i] = m.Blobs[h]
	}
	return out, nil
}

// MockVerifier is a fake kzg.Verifier. Valid controls whether
// VerifyBlobKZGProofBatch succeeds.
type MockVerifier struct {
	Valid bool
}

// VerifyBlobKZGProofBatch implements kzg.Verifier.
func (m *MockVerifier) VerifyBlobKZGProofBatch(blobs []kzg.Blob, commitments []kzg.Commitment, proofs []kzg.Proof) error {
	if m.Valid {
		return nil
	}
	return errors.New("mock: kzg proof verification failed")
}

// MockTransitionExecutor is a fake transition.Executor that returns a
// pre-set PostState (or Err), never touching preState.
type MockTransitionExecutor struct {
	PostState consensustypes.BeaconState
	Err       error
}

// ExecuteStateTransition implements transition.Executor.
func (m *MockTransitionExecutor) ExecuteStateTransition(ctx context.Context, preState consensustypes.BeaconState, signed *consensustypes.SignedBeaconBlock) (consensustypes.BeaconState, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.PostState, nil
}

// MockState is a fake consensustypes.BeaconState with directly settable
// fields.
type MockState struct {
	SlotValue                        primitives.Slot
	CurrentJustifiedCheckpointValue  consensustypes.Checkpoint
	PreviousJustifiedCheckpointValue consensustypes.Checkpoint
	FinalizedCheckpointValue         consensustypes.Checkpoint
	ValidatorsValue                  []*consensustypes.Validator
	BalancesValue                    []uint64

	// PulledUpJustified/PulledUpFinalized are what
	// ProcessJustificationAndFinalization returns when called on a clone.
	PulledUpJustified consensustypes.Checkpoint
	PulledUpFinalized consensustypes.Checkpoint
}

// Slot implements consensustypes.BeaconState.
func (m *MockState) Slot() primitives.Slot { return m.SlotValue }

// CurrentJustifiedCheckpoint implements consensustypes.BeaconState.
func (m *MockState) CurrentJustifiedCheckpoint() consensustypes.Checkpoint {
	return m.CurrentJustifiedCheckpointValue
}

// PreviousJustifiedCheckpoint implements consensustypes.BeaconState.
func (m *MockState) PreviousJustifiedCheckpoint() consensustypes.Checkpoint {
	return m.PreviousJustifiedCheckpointValue
}

// FinalizedCheckpoint implements consensustypes.BeaconState.
func (m *MockState) FinalizedCheckpoint() consensustypes.Checkpoint {
	return m.FinalizedCheckpointValue
}

// ValidatorAtIndex implements consensustypes.BeaconState.
func (m *MockState) ValidatorAtIndex(idx primitives.ValidatorIndex) (*consensustypes.Validator, error) {
	if int(idx) >= len(m.ValidatorsValue) {
		return nil, errors.New("mock: validator index out of range")
	}
	return m.ValidatorsValue[idx], nil
}

// Balances implements consensustypes.BeaconState.
func (m *MockState) Balances() []uint64 { return m.BalancesValue }

// Clone implements consensustypes.BeaconState.
func (m *MockState) Clone() consensustypes.BeaconState {
	cpy := *m
	return &cpy
}

// ProcessJustificationAndFinalization implements consensustypes.BeaconState.
func (m *MockState) ProcessJustificationAndFinalization() (consensustypes.Checkpoint, consensustypes.Checkpoint, error) {
	return m.PulledUpJustified, m.PulledUpFinalized, nil
}
