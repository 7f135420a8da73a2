package blockchain

import (
	"context"
	"crypto/sha256"

	consensustypes "github.com/basalt-chain/forkchoice/consensus-types"
	"github.com/basalt-chain/forkchoice/beacon-chain/kzg"
	ethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"go.opencensus.io/trace"
)

// blobVersionedHashVersion is the EIP-4844 version byte prefixed onto a
// blob's versioned hash.
const blobVersionedHashVersion = 0x01

// versionedHash derives the EIP-4844 versioned hash for a single KZG
// commitment: the version byte followed by the last 31 bytes of the
// commitment's SHA-256 digest.
func versionedHash(commitment [48]byte) ethcommon.Hash {
	digest := sha256.Sum256(commitment[:])
	var out ethcommon.Hash
	out[0] = blobVersionedHashVersion
	copy(out[1:], digest[1:])
	return out
}

// kzgCommitmentsToVersionedHashes maps a block body's blob KZG commitments,
// in block order, to their versioned hashes. Extra or duplicate commitments
// a side channel might carry are never consulted; only the block body's own
// list drives the request to the execution engine.
func kzgCommitmentsToVersionedHashes(body *consensustypes.BeaconBlockBody) []ethcommon.Hash {
	hashes := make([]ethcommon.Hash, len(body.BlobKZGCommitments))
	for i, c := range body.BlobKZGCommitments {
		hashes[i] = versionedHash(c)
	}
	return hashes
}

// IsDataAvailable implements the Data Availability Gate: it resolves every
// blob KZG commitment in the block body to the execution engine's
// get_blobs_v1, fails with ErrBlobsUnavailable if any entry comes back
// absent, and batch-verifies the returned blobs against their commitments
// and proofs, failing with ErrBlobProofInvalid on any mismatch. Pre-Deneb
// blocks (no commitments) are trivially available.
func (s *Store) IsDataAvailable(ctx context.Context, body *consensustypes.BeaconBlockBody) error {
	ctx, span := trace.StartSpan(ctx, "blockchain.IsDataAvailable")
	defer span.End()

	if len(body.BlobKZGCommitments) == 0 {
		return nil
	}
	if s.engine == nil || s.kzgVerifier == nil {
		return errors.New("blockchain: data availability gate missing engine or KZG verifier")
	}

	versionedHashes := kzgCommitmentsToVersionedHashes(body)

	blobAndProofs, err := s.engine.GetBlobsV1(ctx, versionedHashes)
	if err != nil {
		dataAvailabilityRejectedCount.Inc()
		return errors.Wrap(ErrBlobsUnavailable, err.Error())
	}
	if len(blobAndProofs) != len(versionedHashes) {
		dataAvailabilityRejectedCount.Inc()
		return ErrBlobsUnavailable
	}

	blobs := make([]kzg.Blob, len(blobAndProofs))
	commitments := make([]kzg.Commitment, len(blobAndProofs))
	proofs := make([]kzg.Proof, len(blobAndProofs))
	for i, bp := range blobAndProofs {
		if bp == nil {
			dataAvailabilityRejectedCount.Inc()
			return ErrBlobsUnavailable
		}
		blobs[i] = kzg.Blob(bp.Blob)
		commitments[i] = kzg.Commitment(body.BlobKZGCommitments[i])
		proofs[i] = kzg.Proof(bp.Proof)
	}

	if err := s.kzgVerifier.VerifyBlobKZGProofBatch(blobs, commitments, proofs); err != nil {
		return errors.Wrap(ErrBlobProofInvalid, err.Error())
	}
	return nil
}
