package mssmt

// Tree is a persistent Merkle-sum sparse Merkle tree. Every mutating method
// returns a new *Tree that shares unchanged subtrees with its receiver
// rather than mutating in place.
type Tree struct {
	root   node
	hasher Hasher
}

// New returns the empty tree, hashed with SHA-256.
func New() *Tree {
	return &Tree{hasher: NewSHA256Hasher()}
}

// NewWithHasher returns the empty tree, hashed with h. Every participant
// that will compare root hashes must agree on the same hasher.
func NewWithHasher(h Hasher) *Tree {
	return &Tree{hasher: h}
}

// to_key validates and converts a caller-supplied key slice to the fixed
// internal representation.
func to_key(key []byte) (Key, error) {
	if len(key) != KEY_SIZE {
		return Key{}, ErrInvalidKeyLength
	}
	var k Key
	copy(k[:], key)
	return k, nil
}

// Insert returns a new tree with key bound to (value, sum), replacing any
// existing entry at key. value is copied; the caller's slice may be reused
// or mutated afterwards without affecting the tree.
func (t *Tree) Insert(key []byte, value []byte, sum uint64) (*Tree, error) {
	k, err := to_key(key)
	if err != nil {
		return nil, err
	}
	root, err := insert_node(t.root, 0, k, value, sum)
	if err != nil {
		return nil, err
	}
	return &Tree{root: root, hasher: t.hasher}, nil
}

// insert_node places (key, value, sum) into the subtree rooted at n, which
// sits at bit-depth depth. It descends to the true divergence depth between
// colliding leaves rather than splitting immediately, which keeps the
// resulting branches consistent with the depth-indexed proof format
// produced by MerkleProof and consumed by VerifyProof.
func insert_node(n node, depth int, key Key, value []byte, sum uint64) (node, error) {
	switch v := n.(type) {
	case nil:
		return new_leaf(key, value, sum), nil

	case *Leaf:
		if v.key == key {
			return new_leaf(key, value, sum), nil
		}

		d, err := divergence_depth(v.key, key, depth)
		if err != nil {
			return nil, err
		}

		incoming := new_leaf(key, value, sum)
		var branch node = order_leaves(v, incoming, d)
		// Wrap the divergence branch back up to depth, one branch per
		// shared bit; the leaves' shared bit value selects which side
		// the continuing subtree occupies at each level.
		for i := d - 1; i >= depth; i-- {
			if bit(key, i) == 0 {
				branch = new_branch(branch, nil)
			} else {
				branch = new_branch(nil, branch)
			}
		}
		return branch, nil

	case *Branch:
		b := bit(key, depth)
		child, err := insert_node(v.child(b), depth+1, key, value, sum)
		if err != nil {
			return nil, err
		}
		return v.with_child(b, child), nil

	default:
		panic("mssmt: unreachable node type")
	}
}

// divergence_depth returns the least bit index at or after from where a and
// b differ. It is an error only if two distinct 32-byte keys somehow agree
// on every remaining bit, which cannot happen for genuinely distinct keys
// but is guarded against to bound the recursion.
func divergence_depth(a, b Key, from int) (int, error) {
	for i := from; i < MaxDepth; i++ {
		if bit(a, i) != bit(b, i) {
			return i, nil
		}
	}
	return 0, ErrKeyCollision
}

// order_leaves places existing and incoming as the two children of a new
// branch discriminating on bit d, the depth at which their keys diverge.
func order_leaves(existing, incoming *Leaf, d int) *Branch {
	if bit(existing.key, d) == 0 {
		return new_branch(existing, incoming)
	}
	return new_branch(incoming, existing)
}

// Get returns the value and sum bound to key. It returns ErrNotFound if no
// entry exists at key.
func (t *Tree) Get(key []byte) ([]byte, uint64, error) {
	k, err := to_key(key)
	if err != nil {
		return nil, 0, err
	}

	n := t.root
	depth := 0
	for {
		switch v := n.(type) {
		case nil:
			return nil, 0, ErrNotFound
		case *Leaf:
			if v.key != k {
				return nil, 0, ErrNotFound
			}
			value := make([]byte, len(v.value))
			copy(value, v.value)
			return value, v.wsum, nil
		case *Branch:
			n = v.child(bit(k, depth))
			depth++
		default:
			panic("mssmt: unreachable node type")
		}
	}
}

// Delete returns a new tree with key's entry removed. If key is absent, it
// returns the receiver unchanged together with ErrNotFound.
func (t *Tree) Delete(key []byte) (*Tree, error) {
	k, err := to_key(key)
	if err != nil {
		return nil, err
	}

	root, found, err := delete_node(t.root, 0, k)
	if err != nil {
		return nil, err
	}
	if !found {
		return t, ErrNotFound
	}
	return &Tree{root: root, hasher: t.hasher}, nil
}

// delete_node removes key from the subtree rooted at n. A branch left with
// a single live leaf collapses to that leaf directly, since a leaf carries
// its own key and has no dependence on where in the tree it sits. A branch
// left with a single live Branch child is NOT collapsed: a Branch has no
// depth of its own — it is only ever valid at the bit position it was
// built for — so promoting it up a level would silently test the wrong
// key bit on every lookup beneath it. Such a branch stays as a one-child
// wrapper instead.
func delete_node(n node, depth int, key Key) (node, bool, error) {
	switch v := n.(type) {
	case nil:
		return nil, false, nil

	case *Leaf:
		if v.key != key {
			return n, false, nil
		}
		return nil, true, nil

	case *Branch:
		b := bit(key, depth)
		child, found, err := delete_node(v.child(b), depth+1, key)
		if err != nil || !found {
			return n, found, err
		}

		updated := v.with_child(b, child)
		switch {
		case updated.left == nil && updated.right == nil:
			return nil, true, nil
		case updated.left == nil:
			if leaf, ok := updated.right.(*Leaf); ok {
				return leaf, true, nil
			}
			return updated, true, nil
		case updated.right == nil:
			if leaf, ok := updated.left.(*Leaf); ok {
				return leaf, true, nil
			}
			return updated, true, nil
		default:
			return updated, true, nil
		}

	default:
		panic("mssmt: unreachable node type")
	}
}

// RootHash returns the tree's root digest, ZERO for the empty tree.
func (t *Tree) RootHash() Digest {
	return node_digest(t.root, t.hasher)
}

// TotalSum returns the sum of every leaf weight in the tree, 0 for the
// empty tree.
func (t *Tree) TotalSum() uint64 {
	return node_sum(t.root)
}

// Count returns the number of leaves materialized in the tree.
func (t *Tree) Count() int {
	return count_node(t.root)
}

func count_node(n node) int {
	switch v := n.(type) {
	case nil:
		return 0
	case *Leaf:
		return 1
	case *Branch:
		return count_node(v.left) + count_node(v.right)
	default:
		panic("mssmt: unreachable node type")
	}
}
