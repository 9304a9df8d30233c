package mssmt

// CompactMerkleProof is a MerkleProof with its default (ZERO digest, 0 sum)
// siblings elided, replaced by a single bit each. A proof through a long
// run of single-child branches — the common case when two keys share a
// long bit prefix — compacts to a handful of real siblings plus one bit
// per skipped level (grounded on the bit-mask compaction scheme of the
// wider sparse-Merkle-tree family's sum proofs).
type CompactMerkleProof struct {
	// Bits has one entry per original sibling; true marks a sibling that
	// was the default (ZERO, 0) and so is omitted from Siblings.
	Bits []bool
	// Siblings holds only the non-default entries, in their original order.
	Siblings []Sibling
}

// Compact elides p's default siblings.
func Compact(p MerkleProof) CompactMerkleProof {
	cp := CompactMerkleProof{Bits: make([]bool, len(p.Siblings))}
	for i, s := range p.Siblings {
		if s.Digest == ZERO && s.Sum == 0 {
			cp.Bits[i] = true
			continue
		}
		cp.Siblings = append(cp.Siblings, s)
	}
	return cp
}

// Decompact reconstructs the MerkleProof that produced cp, reinserting a
// default (ZERO, 0) sibling wherever Bits marks one.
func Decompact(cp CompactMerkleProof) MerkleProof {
	if len(cp.Bits) == 0 {
		return MerkleProof{}
	}
	p := MerkleProof{Siblings: make([]Sibling, len(cp.Bits))}
	idx := 0
	for i, isDefault := range cp.Bits {
		if isDefault {
			p.Siblings[i] = Sibling{Digest: ZERO, Sum: 0}
			continue
		}
		p.Siblings[i] = cp.Siblings[idx]
		idx++
	}
	return p
}
