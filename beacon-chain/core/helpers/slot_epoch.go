// Package helpers provides slot/epoch arithmetic helpers that operate on a
// consensustypes.BeaconState, layered on top of config/params's stateless
// slot/epoch conversions.
package helpers

import (
	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
	"github.com/basalt-chain/forkchoice/config/params"
)

// CurrentEpoch returns the epoch of the given state's slot.
func CurrentEpoch(state consensustypes.BeaconState) primitives.Epoch {
	return params.SlotToEpoch(state.Slot())
}

// PreviousEpoch returns the epoch before the state's current epoch, clamped
// at the genesis epoch.
func PreviousEpoch(state consensustypes.BeaconState) primitives.Epoch {
	current := CurrentEpoch(state)
	return current.SafeSubEpoch(1)
}

// NextEpoch returns the epoch after the state's current epoch.
func NextEpoch(state consensustypes.BeaconState) primitives.Epoch {
	return CurrentEpoch(state) + 1
}
