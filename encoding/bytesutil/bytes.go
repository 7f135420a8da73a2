// Package bytesutil provides a small set of fixed-size byte/slice conversion
// helpers for roots, 48-byte commitments/proofs, and big-endian slot
// encodings. No other package in this module imports it.
package bytesutil

import "encoding/binary"

// ToBytes32 converts a byte slice into a fixed-size 32-byte array, copying at
// most 32 bytes and zero-padding the remainder.
func ToBytes32(b []byte) [32]byte {
	var a [32]byte
	copy(a[:], b)
	return a
}

// ToBytes48 converts a byte slice into a fixed-size 48-byte array (BLS12-381
// G1 compressed point size, used for KZG commitments/proofs).
func ToBytes48(b []byte) [48]byte {
	var a [48]byte
	copy(a[:], b)
	return a
}

// Bytes8 returns the big-endian byte representation of x, used for slot/epoch
// keys in index providers.
func Bytes8(x uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, x)
	return b
}

// FromBytes8 parses the big-endian uint64 encoded by Bytes8.
func FromBytes8(b []byte) uint64 {
	if len(b) < 8 {
		padded := make([]byte, 8)
		copy(padded[8-len(b):], b)
		b = padded
	}
	return binary.BigEndian.Uint64(b)
}
