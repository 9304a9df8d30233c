// Package wire provides a canonical CBOR encoding for mssmt proofs and
// leaf records, for transmission between a prover and a remote verifier.
package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/vaktibabat/mssmt"
)

var (
	encoder cbor.EncMode
	decoder cbor.DecMode
)

func init() {
	encOptions := cbor.CanonicalEncOptions()
	enc, err := encOptions.EncMode()
	if err != nil {
		panic(err)
	}
	encoder = enc

	decOptions := cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	dec, err := decOptions.DecMode()
	if err != nil {
		panic(err)
	}
	decoder = dec
}

// siblingWire mirrors mssmt.Sibling with exported, CBOR-tagged fields.
type siblingWire struct {
	Digest [mssmt.DIGEST_SIZE]byte `cbor:"digest"`
	Sum    uint64                  `cbor:"sum"`
}

// proofWire mirrors mssmt.MerkleProof for transmission.
type proofWire struct {
	Siblings []siblingWire `cbor:"siblings"`
}

// EncodeProof serializes a MerkleProof to its canonical CBOR form.
func EncodeProof(p mssmt.MerkleProof) ([]byte, error) {
	pw := proofWire{Siblings: make([]siblingWire, len(p.Siblings))}
	for i, s := range p.Siblings {
		pw.Siblings[i] = siblingWire{Digest: s.Digest, Sum: s.Sum}
	}
	buf, err := encoder.Marshal(pw)
	if err != nil {
		return nil, fmt.Errorf("wire: encode proof: %w", err)
	}
	return buf, nil
}

// DecodeProof deserializes a MerkleProof previously produced by EncodeProof.
func DecodeProof(buf []byte) (mssmt.MerkleProof, error) {
	var pw proofWire
	if err := decoder.Unmarshal(buf, &pw); err != nil {
		return mssmt.MerkleProof{}, fmt.Errorf("wire: decode proof: %w", err)
	}
	p := mssmt.MerkleProof{Siblings: make([]mssmt.Sibling, len(pw.Siblings))}
	for i, s := range pw.Siblings {
		p.Siblings[i] = mssmt.Sibling{Digest: s.Digest, Sum: s.Sum}
	}
	return p, nil
}

// compactWire mirrors mssmt.CompactMerkleProof for transmission.
type compactWire struct {
	Bits     []bool        `cbor:"bits"`
	Siblings []siblingWire `cbor:"siblings"`
}

// EncodeCompactProof serializes a CompactMerkleProof to canonical CBOR.
func EncodeCompactProof(cp mssmt.CompactMerkleProof) ([]byte, error) {
	cw := compactWire{
		Bits:     cp.Bits,
		Siblings: make([]siblingWire, len(cp.Siblings)),
	}
	for i, s := range cp.Siblings {
		cw.Siblings[i] = siblingWire{Digest: s.Digest, Sum: s.Sum}
	}
	buf, err := encoder.Marshal(cw)
	if err != nil {
		return nil, fmt.Errorf("wire: encode compact proof: %w", err)
	}
	return buf, nil
}

// DecodeCompactProof deserializes a CompactMerkleProof previously produced
// by EncodeCompactProof.
func DecodeCompactProof(buf []byte) (mssmt.CompactMerkleProof, error) {
	var cw compactWire
	if err := decoder.Unmarshal(buf, &cw); err != nil {
		return mssmt.CompactMerkleProof{}, fmt.Errorf("wire: decode compact proof: %w", err)
	}
	cp := mssmt.CompactMerkleProof{
		Bits:     cw.Bits,
		Siblings: make([]mssmt.Sibling, len(cw.Siblings)),
	}
	for i, s := range cw.Siblings {
		cp.Siblings[i] = mssmt.Sibling{Digest: s.Digest, Sum: s.Sum}
	}
	return cp, nil
}

// LeafRecord is the wire representation of one tree entry, as exchanged
// between a prover and a client building or checking a proof.
type LeafRecord struct {
	Key   [mssmt.KEY_SIZE]byte `cbor:"key"`
	Value []byte               `cbor:"value"`
	Sum   uint64               `cbor:"sum"`
}

// EncodeLeaf serializes a LeafRecord to canonical CBOR.
func EncodeLeaf(r LeafRecord) ([]byte, error) {
	buf, err := encoder.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("wire: encode leaf: %w", err)
	}
	return buf, nil
}

// DecodeLeaf deserializes a LeafRecord previously produced by EncodeLeaf.
func DecodeLeaf(buf []byte) (LeafRecord, error) {
	var r LeafRecord
	if err := decoder.Unmarshal(buf, &r); err != nil {
		return LeafRecord{}, fmt.Errorf("wire: decode leaf: %w", err)
	}
	return r, nil
}
