package mssmt

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLe64(t *testing.T) {
	got := le64(0x0102030405060708)
	want := make([]byte, 8)
	binary.LittleEndian.PutUint64(want, 0x0102030405060708)
	require.Equal(t, want, got)
}

func TestBitMSBFirst(t *testing.T) {
	var k Key
	k[0] = 0x80 // top bit of byte 0 set

	require.Equal(t, byte(1), bit(k, 0))
	for i := 1; i < 8; i++ {
		require.Equal(t, byte(0), bit(k, i))
	}

	k = Key{}
	k[KEY_SIZE-1] = 0x01 // bottom bit of last byte set
	require.Equal(t, byte(1), bit(k, MaxDepth-1))
	require.Equal(t, byte(0), bit(k, MaxDepth-2))
}

func TestHashersAgreeOnlyWithThemselves(t *testing.T) {
	sha := NewSHA256Hasher()
	blake := NewBlake2bHasher()

	a := sha.Sum256([]byte("x"))
	b := blake.Sum256([]byte("x"))
	require.NotEqual(t, a, b)

	require.Equal(t, sha.Sum256([]byte("x")), sha.Sum256([]byte("x")))
	require.Equal(t, blake.Sum256([]byte("x")), blake.Sum256([]byte("x")))
}

func TestTreeWithBlake2bIsInternallyConsistent(t *testing.T) {
	tree := NewWithHasher(NewBlake2bHasher())
	tree, err := tree.Insert(key(0x01), []byte("a"), 1)
	require.NoError(t, err)
	tree, err = tree.Insert(key(0x02), []byte("b"), 2)
	require.NoError(t, err)

	proof, err := tree.MerkleProof(key(0x01))
	require.NoError(t, err)
	require.True(t, VerifyProofWithHasher(NewBlake2bHasher(), tree.RootHash(), key(0x01), []byte("a"), 1, proof))
}
