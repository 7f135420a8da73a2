package blockchain

import (
	"time"

	"github.com/basalt-chain/forkchoice/config/params"
	"github.com/basalt-chain/forkchoice/consensus-types/primitives"
)

// Clock is the Time & Slot Oracle: it converts wall-clock time to slots and
// back, anchored at a fixed genesis time, and backs the GenesisTime()/
// CurrentSlot() pair on the TimeFetcher interface.
type Clock struct {
	genesisTime time.Time
	now         func() time.Time
}

// NewClock returns a Clock anchored at genesisTime. The now function is
// injectable so tests can control the current time deterministically; it
// defaults to time.Now when nil.
func NewClock(genesisTime time.Time, now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{genesisTime: genesisTime, now: now}
}

// GenesisTime returns the chain's genesis time.
func (c *Clock) GenesisTime() time.Time {
	return c.genesisTime
}

// CurrentSlot returns the slot containing the current wall-clock time. Slots
// before genesis are clamped to slot 0.
func (c *Clock) CurrentSlot() primitives.Slot {
	now := c.now()
	if now.Before(c.genesisTime) {
		return 0
	}
	elapsed := uint64(now.Sub(c.genesisTime).Seconds())
	return primitives.Slot(elapsed / params.BeaconConfig().SecondsPerSlot)
}

// SlotStartTime returns the wall-clock time at which the given slot begins.
func (c *Clock) SlotStartTime(slot primitives.Slot) time.Time {
	secs := uint64(slot) * params.BeaconConfig().SecondsPerSlot
	return c.genesisTime.Add(time.Duration(secs) * time.Second)
}

// IsFromFuture reports whether the given slot's start time is still ahead of
// the current wall-clock time, the guard on_block applies before accepting a
// block ("store.time >= pre_state.genesis_time + block.slot * SECONDS_PER_SLOT").
func (c *Clock) IsFromFuture(slot primitives.Slot) bool {
	return c.now().Before(c.SlotStartTime(slot))
}
