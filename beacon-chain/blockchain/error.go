package blockchain

import "github.com/pkg/errors"

// Sentinel errors implementing the on_block error taxonomy. All of these are
// recoverable by the caller except ErrUnknownBlock, which signals an
// invariant violation inside the store itself (a root the store itself
// inserted can no longer be found).
var (
	// ErrUnknownParent is returned when a block's parent root is not present
	// in the block/state registry. The caller should hold the block until its
	// parent arrives.
	ErrUnknownParent = errors.New("blockchain: unknown parent block")

	// ErrBlockFromFuture is returned when a block's slot start time is ahead
	// of the store's current wall-clock time. The caller should delay
	// ingestion until the block's slot has arrived.
	ErrBlockFromFuture = errors.New("blockchain: block slot is in the future")

	// ErrBeforeFinalized is returned when a block's slot is at or before the
	// finalized checkpoint's epoch start slot.
	ErrBeforeFinalized = errors.New("blockchain: block slot at or before finalized checkpoint")

	// ErrNotDescendantOfFinalized is returned when a block is not a
	// descendant of the currently finalized checkpoint's block.
	ErrNotDescendantOfFinalized = errors.New("blockchain: block is not a descendant of the finalized checkpoint")

	// ErrBlobsUnavailable is returned when the execution engine cannot supply
	// one or more blobs referenced by a post-Deneb block's KZG commitments.
	// The caller MAY re-queue the block for retry within the sidecar window.
	ErrBlobsUnavailable = errors.New("blockchain: referenced blobs unavailable")

	// ErrBlobProofInvalid is returned when a retrieved blob fails KZG proof
	// verification against its commitment.
	ErrBlobProofInvalid = errors.New("blockchain: blob KZG proof verification failed")

	// ErrTransitionError wraps a failure from the state-transition
	// collaborator; the underlying cause is preserved via errors.Wrap.
	ErrTransitionError = errors.New("blockchain: state transition failed")

	// ErrUnknownBlock signals that a root expected to be present in the
	// store (because the store itself inserted it) could not be found. This
	// is a fatal, unrecoverable invariant violation, never a caller mistake.
	ErrUnknownBlock = errors.New("blockchain: unknown block (invariant violation)")

	// ErrNotFound is returned by Resolve when an ID cannot be mapped to any
	// root: head and genesis resolution are deliberately unimplemented, and
	// a slot or root ID with no matching entry is simply absent.
	ErrNotFound = errors.New("blockchain: not found")
)
