package mssmt

import "github.com/gammazero/deque"

// Sibling is the digest/sum snapshot of one node adjacent to an
// authenticated path. Only digest and sum are ever transmitted; a sibling
// carries no information about its own depth or subtree shape.
type Sibling struct {
	Digest Digest
	Sum    uint64
}

// MerkleProof authenticates one key's (value, sum) pair against a root
// digest. Siblings are ordered leaf-ward first: index 0 sits immediately
// above the leaf, and the last entry sits immediately below the root.
type MerkleProof struct {
	Siblings []Sibling
}

// MerkleProof returns the authenticated path for key. The proof for a key
// absent from the tree is the path to where it would be inserted; callers
// wanting an inclusion guarantee must also check Get. The empty tree's
// proof is the empty sequence.
func (t *Tree) MerkleProof(key []byte) (MerkleProof, error) {
	k, err := to_key(key)
	if err != nil {
		return MerkleProof{}, err
	}
	return merkle_proof_node(t.root, 0, k, t.hasher), nil
}

func merkle_proof_node(n node, depth int, key Key, h Hasher) MerkleProof {
	v, ok := n.(*Branch)
	if !ok {
		return MerkleProof{}
	}

	b := bit(key, depth)
	rest := merkle_proof_node(v.child(b), depth+1, key, h)
	sib := v.sibling(b)

	return MerkleProof{
		Siblings: append(rest.Siblings, Sibling{
			Digest: node_digest(sib, h),
			Sum:    node_sum(sib),
		}),
	}
}

// PathEntry describes one materialized node discovered by ProofPath.
type PathEntry struct {
	Depth  int
	Digest Digest
	Sum    uint64
	IsLeaf bool
}

// ProofPath walks the tree breadth-first, reporting the depth, digest and
// sum of every materialized node. It exists for debugging and inspection;
// no tree operation depends on its output.
func (t *Tree) ProofPath() []PathEntry {
	var out []PathEntry
	if t.root == nil {
		return out
	}

	type frame struct {
		n     node
		depth int
	}

	q := deque.New(256)
	q.PushBack(frame{t.root, 0})
	for q.Len() > 0 {
		f := q.PopFront().(frame)
		switch v := f.n.(type) {
		case *Leaf:
			out = append(out, PathEntry{
				Depth:  f.depth,
				Digest: v.digest(t.hasher),
				Sum:    v.wsum,
				IsLeaf: true,
			})
		case *Branch:
			out = append(out, PathEntry{
				Depth:  f.depth,
				Digest: v.digest(t.hasher),
				Sum:    v.sum(),
				IsLeaf: false,
			})
			if v.left != nil {
				q.PushBack(frame{v.left, f.depth + 1})
			}
			if v.right != nil {
				q.PushBack(frame{v.right, f.depth + 1})
			}
		}
	}
	return out
}
