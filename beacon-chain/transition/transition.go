// Package transition names the state-transition collaborator the block
// ingestion pipeline calls into. Its internals — the full per-slot and
// per-block processing (attestations, slashings, randao, the Deneb payload
// diff) — are explicitly out of scope for the fork-choice core; only the
// entrypoint on_block depends on is declared here, grounded on the
// teacher's state.ExecuteStateTransition call site in process_block.go.
package transition

import (
	"context"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
)

// Executor runs the full state-transition function on a block against its
// pre-state and returns the resulting post-state, or an error if the block
// fails any state-transition-level validity check (signature, state-root
// mismatch, invalid operation, etc).
type Executor interface {
	ExecuteStateTransition(ctx context.Context, preState consensustypes.BeaconState, signed *consensustypes.SignedBeaconBlock) (consensustypes.BeaconState, error)
}
