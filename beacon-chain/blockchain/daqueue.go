package blockchain

import (
	"time"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

// DAQueue is a small TTL-bounded retry queue for blocks rejected with
// ErrBlobsUnavailable. Callers MAY re-queue within the sidecar window rather
// than discarding the block outright; this gives that policy a concrete
// collaborator rather than leaving it to ad-hoc caller bookkeeping. It does
// not change OnBlock's semantics — a requeued block is simply fed back
// through OnBlock once Drain hands it back.
type DAQueue struct {
	cache *gocache.Cache
}

// pendingBlock is the payload stored for a queued retry entry.
type pendingBlock struct {
	root   [32]byte
	signed *consensustypes.SignedBeaconBlock
}

// NewDAQueue returns a DAQueue whose entries expire after sidecarWindow,
// matching the retention window the execution engine itself observes for
// blob availability.
func NewDAQueue(sidecarWindow time.Duration) *DAQueue {
	return &DAQueue{
		cache: gocache.New(sidecarWindow, sidecarWindow/2),
	}
}

// Push enqueues a block rejected for data unavailability, returning the
// correlation ID the entry is keyed by. No DAQueue method looks up or
// removes a single entry by this ID.
func (q *DAQueue) Push(root [32]byte, signed *consensustypes.SignedBeaconBlock) string {
	id := uuid.New().String()
	q.cache.SetDefault(id, pendingBlock{root: root, signed: signed})
	return id
}

// Drain returns and removes every currently queued retry entry, for the
// caller to re-feed through OnBlock.
func (q *DAQueue) Drain() []struct {
	Root   [32]byte
	Signed *consensustypes.SignedBeaconBlock
} {
	items := q.cache.Items()
	out := make([]struct {
		Root   [32]byte
		Signed *consensustypes.SignedBeaconBlock
	}, 0, len(items))
	for id, item := range items {
		pb, ok := item.Object.(pendingBlock)
		if !ok {
			continue
		}
		out = append(out, struct {
			Root   [32]byte
			Signed *consensustypes.SignedBeaconBlock
		}{Root: pb.root, Signed: pb.signed})
		q.cache.Delete(id)
	}
	return out
}

// Len reports the number of entries currently queued.
func (q *DAQueue) Len() int {
	return q.cache.ItemCount()
}
