package merkle_test

import (
	"bytes"
	"crypto/sha256"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/lightninglabs/bolt12/merkle"
	"github.com/lightninglabs/bolt12/tlv"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestTaggedHashDeterministic(t *testing.T) {
	h1 := merkle.TaggedHash([]byte("tag"), []byte("msg"))
	h2 := merkle.TaggedHash([]byte("tag"), []byte("msg"))
	require.Equal(t, h1, h2)

	tagHash := sha256.Sum256([]byte("tag"))
	want := sha256.New()
	want.Write(tagHash[:])
	want.Write(tagHash[:])
	want.Write([]byte("msg"))
	var wantArr [32]byte
	copy(wantArr[:], want.Sum(nil))
	require.Equal(t, wantArr, h1)
}

func TestMerkleRootEmptyIsError(t *testing.T) {
	_, err := merkle.MerkleRoot(nil)
	require.ErrorIs(t, err, merkle.ErrEmptyEntries)
}

func TestMerkleRootDeterministicAcrossPermutations(t *testing.T) {
	entries := []tlv.Entry{
		{Type: 1, Value: []byte{0x01}},
		{Type: 5, Value: []byte{0x02, 0x03}},
		{Type: 3, Value: []byte{}},
	}
	reversed := []tlv.Entry{entries[2], entries[1], entries[0]}

	root1, err := merkle.MerkleRoot(entries)
	require.NoError(t, err)
	root2, err := merkle.MerkleRoot(reversed)
	require.NoError(t, err)
	require.Equal(t, root1, root2)

	// And computing it again from the same (unsorted) input must be
	// byte-identical.
	root3, err := merkle.MerkleRoot(entries)
	require.NoError(t, err)
	require.Equal(t, root1, root3)
}

func TestMerkleRootSingleEntryIsBranchOfLeafAndNonce(t *testing.T) {
	entry := tlv.Entry{Type: 7, Value: []byte{0xaa, 0xbb}}

	root, err := merkle.MerkleRoot([]tlv.Entry{entry})
	require.NoError(t, err)

	ser, err := entry.Serialize()
	require.NoError(t, err)
	leaf := merkle.TaggedHash([]byte("LnLeaf"), ser)

	var (
		typBuf   [9]byte
		typBytes bytes.Buffer
	)
	require.NoError(t, tlv.EncodeBigSize(&typBytes, uint64(entry.Type), &typBuf))

	nonceTagInput := append([]byte("LnNonce"), ser...)
	nonce := merkle.TaggedHash(nonceTagInput, typBytes.Bytes())

	lo, hi := leaf, nonce
	if string(leaf[:]) > string(nonce[:]) {
		lo, hi = nonce, leaf
	}
	var msg [64]byte
	copy(msg[:32], lo[:])
	copy(msg[32:], hi[:])
	want := merkle.TaggedHash([]byte("LnBranch"), msg[:])

	require.Equal(t, want, root)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	sk, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	entries := []tlv.Entry{
		{Type: 0, Value: []byte("metadata")},
		{Type: 88, Value: sk.PubKey().SerializeCompressed()},
	}

	sig, err := merkle.Sign(merkle.KindInvoiceRequest, entries, sk)
	require.NoError(t, err)

	ok, err := merkle.Verify(
		merkle.KindInvoiceRequest, entries, sig,
		sk.PubKey().SerializeCompressed(),
	)
	require.NoError(t, err)
	require.True(t, ok)

	// x-only form must verify identically.
	xOnly := sk.PubKey().SerializeCompressed()[1:]
	ok, err = merkle.Verify(merkle.KindInvoiceRequest, entries, sig, xOnly)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestVerifyTamperedSignatureFails(t *testing.T) {
	sk, err := btcec.NewPrivateKey()
	require.NoError(t, err)

	entries := []tlv.Entry{{Type: 0, Value: []byte("metadata")}}

	sig, err := merkle.Sign(merkle.KindInvoiceRequest, entries, sk)
	require.NoError(t, err)

	sig[0] ^= 0x80

	ok, err := merkle.Verify(
		merkle.KindInvoiceRequest, entries, sig,
		sk.PubKey().SerializeCompressed(),
	)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestVerifyRejectsBadKeyLength(t *testing.T) {
	_, err := merkle.Verify(
		merkle.KindInvoice, []tlv.Entry{{Type: 1, Value: []byte{1}}},
		[64]byte{}, make([]byte, 20),
	)
	require.ErrorIs(t, err, merkle.ErrInvalidPubKeyLength)
}

// TestMerkleRootDeterministicProperty checks spec.md's property that
// MerkleRoot over the same entries is byte-identical regardless of input
// permutation.
func TestMerkleRootDeterministicProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(rt, "n")

		seen := map[tlv.Type]bool{}
		entries := make([]tlv.Entry, 0, n)
		for len(entries) < n {
			typ := tlv.Type(rapid.IntRange(0, 1000).Draw(rt, "type"))
			if seen[typ] {
				continue
			}
			seen[typ] = true

			valLen := rapid.IntRange(0, 8).Draw(rt, "vlen")
			val := rapid.SliceOfN(rapid.Byte(), valLen, valLen).Draw(rt, "val")
			entries = append(entries, tlv.Entry{Type: typ, Value: val})
		}

		root1, err := merkle.MerkleRoot(entries)
		if err != nil {
			rt.Fatalf("root1: %v", err)
		}

		shuffled := make([]tlv.Entry, len(entries))
		copy(shuffled, entries)
		for i := len(shuffled) - 1; i > 0; i-- {
			j := rapid.IntRange(0, i).Draw(rt, "swap")
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		}

		root2, err := merkle.MerkleRoot(shuffled)
		if err != nil {
			rt.Fatalf("root2: %v", err)
		}

		if root1 != root2 {
			rt.Fatalf("root mismatch across permutation")
		}
	})
}
