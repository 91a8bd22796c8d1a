package merkle

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/lightninglabs/bolt12/tlv"
)

// MessageKind identifies which of the two signable BOLT 12 message kinds
// a signature tag is being built for. Offers are never signed (§4.5); the
// type exists only for InvoiceRequest and Invoice.
type MessageKind int

const (
	// KindInvoiceRequest is the invoice_request message kind.
	KindInvoiceRequest MessageKind = iota

	// KindInvoice is the invoice message kind.
	KindInvoice
)

// ErrInvalidPubKeyLength signals that a public key was neither 32
// (x-only) nor 33 (compressed) bytes.
var ErrInvalidPubKeyLength = errors.New("merkle: public key must be 32 or 33 bytes")

// messageName returns the BOLT 12 message name a signature tag embeds for
// the given kind, per §4.5's messagename() table.
func messageName(kind MessageKind) (string, error) {
	switch kind {
	case KindInvoiceRequest:
		return "invoice_request", nil
	case KindInvoice:
		return "invoice", nil
	default:
		return "", fmt.Errorf("merkle: unknown message kind %d", kind)
	}
}

// signatureTag builds tag_k := "lightning" || messagename(k) || "signature"
// for the given message kind.
func signatureTag(kind MessageKind) ([]byte, error) {
	name, err := messageName(kind)
	if err != nil {
		return nil, err
	}

	tag := make([]byte, 0, len("lightning")+len(name)+len("signature"))
	tag = append(tag, []byte("lightning")...)
	tag = append(tag, []byte(name)...)
	tag = append(tag, []byte("signature")...)
	return tag, nil
}

// SignatureDigest computes the domain-separated message BIP-340 signs:
// H(tag_k, MerkleRoot(entries)), where entries must already have reserved
// signature-range TLVs excluded (ExcludeSignatureRange).
func SignatureDigest(kind MessageKind, entries []tlv.Entry) ([32]byte, error) {
	root, err := MerkleRoot(entries)
	if err != nil {
		return [32]byte{}, err
	}

	tag, err := signatureTag(kind)
	if err != nil {
		return [32]byte{}, err
	}

	return TaggedHash(tag, root[:]), nil
}

// Sign computes the Merkle root over entries (caller must have already
// excluded the reserved signature range), builds the message-kind-tagged
// digest, and returns a 64-byte BIP-340 Schnorr signature over it using sk.
func Sign(kind MessageKind, entries []tlv.Entry, sk *btcec.PrivateKey) ([64]byte, error) {
	digest, err := SignatureDigest(kind, entries)
	if err != nil {
		return [64]byte{}, err
	}

	sig, err := schnorr.Sign(sk, digest[:])
	if err != nil {
		return [64]byte{}, fmt.Errorf("merkle: signing failed: %w", err)
	}

	var out [64]byte
	copy(out[:], sig.Serialize())
	return out, nil
}

// Verify reports whether sig is a valid BIP-340 Schnorr signature over the
// message-kind-tagged Merkle root of entries (reserved-range TLVs already
// excluded), under pubKey. pubKey may be a 32-byte x-only key or a 33-byte
// compressed key — the latter has its leading parity byte stripped, with
// no further parity check beyond what BIP-340 verification itself enforces.
// A mismatched signature is reported as (false, nil), never as an error;
// errors are returned only for malformed input: a bad key length, an
// unparsable key or signature, or an empty entry set.
func Verify(kind MessageKind, entries []tlv.Entry, sig [64]byte, pubKey []byte) (bool, error) {
	xOnly, err := toXOnlyPubKey(pubKey)
	if err != nil {
		return false, err
	}

	digest, err := SignatureDigest(kind, entries)
	if err != nil {
		return false, err
	}

	parsedSig, err := schnorr.ParseSignature(sig[:])
	if err != nil {
		return false, fmt.Errorf("merkle: invalid signature encoding: %w", err)
	}

	parsedKey, err := schnorr.ParsePubKey(xOnly)
	if err != nil {
		return false, fmt.Errorf("merkle: invalid public key: %w", err)
	}

	return parsedSig.Verify(digest[:], parsedKey), nil
}

// toXOnlyPubKey accepts a 32-byte x-only key unchanged, or strips the
// leading parity byte off a 33-byte compressed key.
func toXOnlyPubKey(pubKey []byte) ([]byte, error) {
	switch len(pubKey) {
	case 32:
		return pubKey, nil
	case 33:
		return pubKey[1:], nil
	default:
		return nil, ErrInvalidPubKeyLength
	}
}
