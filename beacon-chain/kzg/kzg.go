// Package kzg names the KZG commitment-scheme collaborator the Data
// Availability Gate verifies blob proofs against. The field and pairing
// arithmetic backing verification is explicitly out of scope for this
// module; Verifier only declares the batch-verification entrypoint a
// production implementation (backed by github.com/supranational/blst)
// would satisfy.
package kzg

// Blob is an opaque blob body, one polynomial's worth of field elements.
// Its internal layout is a KZG-math concern, not a fork-choice one.
type Blob []byte

// Commitment is a compressed BLS12-381 G1 point committing to a Blob.
type Commitment [48]byte

// Proof is a compressed BLS12-381 G1 point proving a Commitment opens to a
// Blob at the implicit evaluation point used by the protocol.
type Proof [48]byte

// Verifier verifies that a batch of (blob, commitment, proof) triples are
// mutually consistent. A production implementation wraps
// github.com/supranational/blst's pairing checks; this module only depends
// on the interface.
type Verifier interface {
	// VerifyBlobKZGProofBatch returns nil if every blob in the batch opens to
	// its paired commitment under its paired proof, and a non-nil error
	// otherwise. It performs no partial verification: one bad triple fails
	// the whole batch, matching verify_kzg_proof_batch's all-or-nothing
	// semantics.
	VerifyBlobKZGProofBatch(blobs []Blob, commitments []Commitment, proofs []Proof) error
}
