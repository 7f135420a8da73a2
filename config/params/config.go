// Package params defines chain-wide configuration constants: a package-level
// mutable pointer, read via BeaconConfig() and swapped via
// OverrideBeaconConfig for tests.
package params

import "github.com/basalt-chain/forkchoice/consensus-types/primitives"

// BeaconChainConfig holds constants governing slot/epoch timing and fork-choice
// behavior. State-transition and networking constants are not included; they
// remain with their owning collaborators.
type BeaconChainConfig struct {
	SecondsPerSlot   uint64 // SecondsPerSlot is the number of seconds in a single slot.
	SlotsPerEpoch    primitives.Slot
	IntervalsPerSlot uint64 // IntervalsPerSlot divides a slot into sub-intervals for proposer-boost timeliness checks.

	SafeSlotsToUpdateJustified primitives.Slot // Minimum slots-into-epoch before proposer boost no longer applies to justification updates.

	MinEpochsForBlobSidecarsRequest primitives.Epoch // Number of epochs blob sidecars stay retrievable (post-Deneb); sizes the DA retry queue's sidecar window.

	GenesisEpoch primitives.Epoch
	GenesisSlot  primitives.Slot

	ZeroHash [32]byte
}

// MainnetConfig returns a copy of the canonical mainnet configuration. Callers
// that need to override a field must call .Copy() first.
func MainnetConfig() *BeaconChainConfig {
	return &BeaconChainConfig{
		SecondsPerSlot:                  12,
		SlotsPerEpoch:                   32,
		IntervalsPerSlot:                3,
		SafeSlotsToUpdateJustified:      8,
		MinEpochsForBlobSidecarsRequest: 4096,
		GenesisEpoch:                    0,
		GenesisSlot:                     0,
		ZeroHash:                        [32]byte{},
	}
}

// Copy returns a deep copy of the config so callers may override fields for a
// test run without mutating the shared instance.
func (b *BeaconChainConfig) Copy() *BeaconChainConfig {
	if b == nil {
		return nil
	}
	cpy := *b
	return &cpy
}

var beaconConfig = MainnetConfig()

// BeaconConfig returns the active chain configuration.
func BeaconConfig() *BeaconChainConfig {
	return beaconConfig
}

// OverrideBeaconConfig swaps the active configuration, for use by tests that
// need a non-mainnet timing setup (e.g. shorter epochs for fast finality
// tests).
func OverrideBeaconConfig(cfg *BeaconChainConfig) {
	beaconConfig = cfg
}

// SlotToEpoch returns the epoch number containing the given slot.
func SlotToEpoch(slot primitives.Slot) primitives.Epoch {
	return primitives.Epoch(uint64(slot) / uint64(BeaconConfig().SlotsPerEpoch))
}

// StartSlot returns the first slot of the given epoch.
func StartSlot(epoch primitives.Epoch) primitives.Slot {
	return primitives.Slot(uint64(epoch) * uint64(BeaconConfig().SlotsPerEpoch))
}

// IsEpochStart returns true when slot is the first slot of its epoch.
func IsEpochStart(slot primitives.Slot) bool {
	return uint64(slot)%uint64(BeaconConfig().SlotsPerEpoch) == 0
}
