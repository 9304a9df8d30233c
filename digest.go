package mssmt

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/blake2b"
)

// DIGEST_SIZE is the width, in bytes, of a node digest.
const DIGEST_SIZE = 32

// Digest is a 256-bit cryptographic hash output.
type Digest [DIGEST_SIZE]byte

// ZERO is the conventional digest of the empty tree, and the default
// digest contributed by an absent child during transient computation.
var ZERO = Digest{}

// Bytes returns d as a byte slice, for hex encoding or wire transmission.
func (d Digest) Bytes() []byte {
	return d[:]
}

// Hasher computes the 256-bit digest used throughout the tree. The default
// is SHA-256; any hash producing 256-bit output may be substituted as long
// as every participant in a given tree agrees on the choice.
type Hasher interface {
	// Sum256 returns the digest of the concatenation of its arguments.
	Sum256(parts ...[]byte) Digest
}

// sha256Hasher is the default Hasher.
type sha256Hasher struct{}

// NewSHA256Hasher returns the default digest primitive.
func NewSHA256Hasher() Hasher {
	return sha256Hasher{}
}

func (sha256Hasher) Sum256(parts ...[]byte) Digest {
	h := sha256.New()
	return sumParts(h, parts)
}

// blake2bHasher is an alternate 256-bit digest primitive, offered behind
// the same Hasher seam for participants that agree to substitute it.
type blake2bHasher struct{}

// NewBlake2bHasher returns a Hasher backed by BLAKE2b-256 instead of
// SHA-256. The encoded leaf and proof preimages assume SHA-256; using this
// hasher produces a tree that is internally consistent but not
// cross-compatible with a SHA-256 participant.
func NewBlake2bHasher() Hasher {
	return blake2bHasher{}
}

func (blake2bHasher) Sum256(parts ...[]byte) Digest {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only errors for a too-long MAC key; we never pass one.
		panic(err)
	}
	return sumParts(h, parts)
}

func sumParts(h hash.Hash, parts [][]byte) Digest {
	for _, p := range parts {
		h.Write(p)
	}
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

// le64 encodes sum as an unsigned little-endian 64-bit quantity, the
// encoding every integer field feeds into the digest primitive.
func le64(sum uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], sum)
	return buf[:]
}

// bit extracts bit index i (0-based) of key, MSB-first within each byte:
// bit 0 is the most significant bit of byte 0.
func bit(key Key, i int) byte {
	b := key[i/8]
	return (b >> (7 - uint(i%8))) & 1
}
