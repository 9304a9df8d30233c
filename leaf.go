package mssmt

// Leaf is a terminal node representing exactly one entry. Its key is not
// part of the digest preimage; identity is instead enforced by structural
// position along the authenticated path.
type Leaf struct {
	key   Key
	value []byte
	wsum  uint64
}

var _ node = (*Leaf)(nil)

// new_leaf constructs a leaf holding key, value and sum.
func new_leaf(key Key, value []byte, sum uint64) *Leaf {
	// Copy the value so the stored leaf does not alias caller-owned memory.
	v := make([]byte, len(value))
	copy(v, value)

	return &Leaf{
		key:   key,
		value: v,
		wsum:  sum,
	}
}

// digest computes H(value ‖ le64(sum)).
func (l *Leaf) digest(h Hasher) Digest {
	return h.Sum256(l.value, le64(l.wsum))
}

// sum returns the leaf's own weight.
func (l *Leaf) sum() uint64 {
	return l.wsum
}
