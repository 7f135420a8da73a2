package blockchain

import (
	"testing"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/stretchr/testify/require"
)

func newTestStore() *Store {
	genesis := consensustypes.Checkpoint{Epoch: 0, Root: [32]byte{0x01}}
	return &Store{
		justifiedCheckpoint:           genesis,
		previousJustifiedCheckpoint:   genesis,
		finalizedCheckpoint:           genesis,
		unrealizedJustifiedCheckpoint: genesis,
		unrealizedFinalizedCheckpoint: genesis,
		unrealizedJustifications:      map[[32]byte]consensustypes.Checkpoint{},
	}
}

func TestUpdateCheckpoints_UpgradesOnGreaterEpoch(t *testing.T) {
	s := newTestStore()
	newJustified := consensustypes.Checkpoint{Epoch: 1, Root: [32]byte{0x02}}
	s.updateCheckpoints(newJustified, s.finalizedCheckpoint)

	require.Equal(t, newJustified, s.JustifiedCheckpoint())
	require.Equal(t, consensustypes.Checkpoint{Epoch: 0, Root: [32]byte{0x01}}, s.PreviousJustifiedCheckpoint())
}

func TestUpdateCheckpoints_EqualEpochDifferentRootIgnored(t *testing.T) {
	s := newTestStore()
	tied := consensustypes.Checkpoint{Epoch: 0, Root: [32]byte{0x99}}
	s.updateCheckpoints(tied, s.finalizedCheckpoint)

	require.Equal(t, consensustypes.Checkpoint{Epoch: 0, Root: [32]byte{0x01}}, s.JustifiedCheckpoint())
}

func TestUpdateCheckpoints_NeverRegresses(t *testing.T) {
	s := newTestStore()
	s.justifiedCheckpoint = consensustypes.Checkpoint{Epoch: 5, Root: [32]byte{0x05}}

	lower := consensustypes.Checkpoint{Epoch: 2, Root: [32]byte{0x02}}
	s.updateCheckpoints(lower, s.finalizedCheckpoint)

	require.Equal(t, consensustypes.Checkpoint{Epoch: 5, Root: [32]byte{0x05}}, s.JustifiedCheckpoint())
}

func TestUpdateUnrealizedCheckpoints_Monotone(t *testing.T) {
	s := newTestStore()
	higher := consensustypes.Checkpoint{Epoch: 2, Root: [32]byte{0x02}}
	s.updateUnrealizedCheckpoints(higher, s.unrealizedFinalizedCheckpoint)
	require.Equal(t, higher, s.UnrealizedJustifiedCheckpoint())

	lower := consensustypes.Checkpoint{Epoch: 1, Root: [32]byte{0x01}}
	s.updateUnrealizedCheckpoints(lower, s.unrealizedFinalizedCheckpoint)
	require.Equal(t, higher, s.UnrealizedJustifiedCheckpoint())
}
