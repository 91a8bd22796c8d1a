package merkle

import "github.com/btcsuite/btcd/chaincfg/chainhash"

// TaggedHash computes H(tag, msg) := SHA256(SHA256(tag) || SHA256(tag) ||
// msg), the domain-separation construction BIP-340 and BOLT 12's Merkle
// tree both build on. tag is taken as raw bytes — callers that have a
// string tag pass []byte(tag); the "LnNonce" tag additionally concatenates
// a serialized TLV entry onto the literal tag bytes before this function
// ever sees them, so TaggedHash itself has no notion of "tag is a string".
// chainhash.TaggedHash implements exactly this construction; everything
// here is naming it to the terms the Merkle spec uses.
func TaggedHash(tag, msg []byte) [32]byte {
	return [32]byte(*chainhash.TaggedHash(tag, msg))
}
