// Package treehash provides the batched pair-hashing primitive used to
// combine block-identity fields into a root, backed by
// github.com/prysmaticlabs/gohashtree's vectorized SHA-256 implementation.
// Full SSZ hash-tree-root (variable-length lists, merkleization of the
// complete block/state schema) remains an out-of-scope collaborator; this
// package only exposes the pairwise-combine step. No other package in this
// module imports it; block roots are supplied by the caller of OnBlock.
package treehash

import "github.com/prysmaticlabs/gohashtree"

// CombinePairs hashes each adjacent pair in chunks into a single 32-byte
// digest, halving the slice length, exactly as one layer of a Merkle tree
// does. len(chunks) must be even.
func CombinePairs(chunks [][32]byte) ([][32]byte, error) {
	if len(chunks)%2 != 0 {
		return nil, errOddChunks
	}
	digests := make([][32]byte, len(chunks)/2)
	if err := gohashtree.Hash(digests, chunks); err != nil {
		return nil, err
	}
	return digests, nil
}

// MixIn combines two roots into one, e.g. combining a block body root with
// its slot+parent+state-root header fields.
func MixIn(a, b [32]byte) ([32]byte, error) {
	out, err := CombinePairs([][32]byte{a, b})
	if err != nil {
		return [32]byte{}, err
	}
	return out[0], nil
}

type treehashError string

func (e treehashError) Error() string { return string(e) }

const errOddChunks = treehashError("treehash: odd number of chunks")
