package merkle

import (
	"bytes"
	"errors"

	"github.com/lightninglabs/bolt12/tlv"
)

// ReservedRangeStart and ReservedRangeEnd bound the inclusive TLV type range
// reserved for signature fields. The Merkle root is computed only over
// entries strictly outside this window — never hard-code the single type
// 240 as the excision criterion, since other signature-like fields within
// the window could be introduced later.
const (
	ReservedRangeStart tlv.Type = 240
	ReservedRangeEnd   tlv.Type = 1000
)

// ErrEmptyEntries signals that MerkleRoot was asked to hash zero entries.
var ErrEmptyEntries = errors.New("merkle: no entries to hash")

// ExcludeSignatureRange returns the subset of entries whose type falls
// outside [ReservedRangeStart, ReservedRangeEnd], preserving order.
func ExcludeSignatureRange(entries []tlv.Entry) []tlv.Entry {
	out := make([]tlv.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Type < ReservedRangeStart || e.Type > ReservedRangeEnd {
			out = append(out, e)
		}
	}
	return out
}

// leafTag and nonceTag are the literal tag strings §4.5 defines for the two
// leaves derived from every TLV entry.
const (
	leafTag  = "LnLeaf"
	nonceTag = "LnNonce"
)

// MerkleRoot computes the signature-engine Merkle root over entries, per
// §4.5: entries are sorted ascending by type; the first (smallest-type)
// entry's serialized bytes become E0; every entry contributes two leaves,
// leaf_i = H("LnLeaf", serialize(entry_i)) and
// nonce_i = H("LnNonce" || E0, BigSize(entry_i.type)); the 2n leaves reduce
// level by level, pairing adjacent hashes and promoting an unpaired final
// hash unchanged, until one hash remains.
//
// Callers are responsible for excluding reserved-range signature entries
// first (ExcludeSignatureRange) — MerkleRoot itself hashes whatever it is
// given.
func MerkleRoot(entries []tlv.Entry) ([32]byte, error) {
	if len(entries) == 0 {
		return [32]byte{}, ErrEmptyEntries
	}

	sorted := make([]tlv.Entry, len(entries))
	copy(sorted, entries)
	tlv.SortEntries(sorted)

	e0, err := sorted[0].Serialize()
	if err != nil {
		return [32]byte{}, err
	}

	nonceTagBytes := make([]byte, 0, len(nonceTag)+len(e0))
	nonceTagBytes = append(nonceTagBytes, []byte(nonceTag)...)
	nonceTagBytes = append(nonceTagBytes, e0...)

	leaves := make([][32]byte, 0, 2*len(sorted))
	for _, entry := range sorted {
		ser, err := entry.Serialize()
		if err != nil {
			return [32]byte{}, err
		}
		leaves = append(leaves, TaggedHash([]byte(leafTag), ser))

		var typBuf [9]byte
		var typBytes bytes.Buffer
		if err := tlv.EncodeBigSize(&typBytes, uint64(entry.Type), &typBuf); err != nil {
			return [32]byte{}, err
		}
		leaves = append(leaves, TaggedHash(nonceTagBytes, typBytes.Bytes()))
	}

	return reduce(leaves), nil
}

// reduce pairs adjacent hashes level by level — (0,1), (2,3), ... — with an
// odd trailing hash promoted unchanged to the next level, until a single
// root hash remains. This puts the deepest subtree on the lowest-indexed
// leaves.
func reduce(level [][32]byte) [32]byte {
	for len(level) > 1 {
		next := make([][32]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 < len(level) {
				next = append(next, branch(level[i], level[i+1]))
			} else {
				next = append(next, level[i])
			}
		}
		level = next
	}
	return level[0]
}

// branch computes the position-independent parent of a and b: the same
// pair always yields the same hash regardless of which argument is "left".
func branch(a, b [32]byte) [32]byte {
	lo, hi := a, b
	if bytes.Compare(a[:], b[:]) > 0 {
		lo, hi = b, a
	}

	var msg [64]byte
	copy(msg[:32], lo[:])
	copy(msg[32:], hi[:])

	return TaggedHash([]byte("LnBranch"), msg[:])
}
