// Package execution names the execution-engine collaborator the Data
// Availability Gate calls into. The engine's JSON-RPC transport, request
// signing, and connection management are explicitly out of scope for the
// fork-choice core; only the narrow get_blobs_v1 surface it depends on is
// declared here.
package execution

import (
	"context"

	ethcommon "github.com/ethereum/go-ethereum/common"
)

// BlobAndProof is a single blob body plus its KZG proof, as returned by the
// engine_getBlobsV1 execution API method. A nil entry in a GetBlobsV1
// response means the engine does not hold that versioned hash.
type BlobAndProof struct {
	Blob  []byte
	Proof [48]byte
}

// EngineCaller is the narrow execution-engine surface the Data Availability
// Gate depends on. Everything else an execution engine exposes (new_payload,
// forkchoice_updated, payload building) belongs to collaborators outside this
// module's scope.
type EngineCaller interface {
	// GetBlobsV1 resolves blob bodies and proofs for the given versioned
	// hashes, in the same order as requested. A nil slot in the returned
	// slice means the engine does not have that blob.
	GetBlobsV1(ctx context.Context, versionedHashes []ethcommon.Hash) ([]*BlobAndProof, error)
}

// ErrEngineUnavailable is returned by EngineCaller implementations when the
// execution engine cannot be reached; the Data Availability Gate treats this
// the same as an absent blob (BlobsUnavailable), never as a proof failure.
var ErrEngineUnavailable = errUnavailable{}

type errUnavailable struct{}

func (errUnavailable) Error() string { return "execution: engine unavailable" }
