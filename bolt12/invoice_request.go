package bolt12

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	fn "github.com/lightningnetwork/lnd/fn/v2"
	"github.com/lightninglabs/bolt12/bech32"
	"github.com/lightninglabs/bolt12/merkle"
	"github.com/lightninglabs/bolt12/tlv"
)

// InvoiceRequest is a signed request for an Invoice, built by a payer from
// an Offer's terms. It mirrors the offer-mirrored TLV range verbatim and
// adds its own invreq_ fields, including the payer's identity key.
type InvoiceRequest struct {
	Offer  OfferFields
	Invreq InvreqFields

	// Signature is populated on decode, and on encode once EncodeInvoiceRequest
	// has signed the message.
	Signature fn.Option[[64]byte]

	// UnknownOddFields preserves any odd TLVs this decoder did not
	// recognize, so a re-encode round-trips them.
	UnknownOddFields []tlv.Entry

	// signedEntries holds exactly the entries the signature commits to,
	// captured verbatim from the wire on decode (or built fresh on
	// encode) — never reconstructed from decoded field values, since a
	// re-serialization could normalize away non-minimal but valid
	// truncated-integer encodings and silently break verification.
	signedEntries []tlv.Entry
}

func (ir *InvoiceRequest) validate() error {
	if len(ir.Invreq.Metadata) == 0 {
		return ErrEmptyMetadata
	}
	if ir.Invreq.PayerID.IsNone() {
		return ErrMissingRequiredField
	}
	return ir.Offer.validate()
}

// EncodeInvoiceRequest validates, signs with sk, and serializes ir into its
// "lnr"-prefixed textual envelope.
func EncodeInvoiceRequest(ir *InvoiceRequest, sk *btcec.PrivateKey) (string, error) {
	if err := ir.validate(); err != nil {
		return "", err
	}

	entries, err := ir.Offer.appendEntries(nil)
	if err != nil {
		return "", err
	}
	entries, err = ir.Invreq.appendEntries(entries)
	if err != nil {
		return "", err
	}
	entries = append(entries, ir.UnknownOddFields...)
	tlv.SortEntries(entries)

	signedEntries := merkle.ExcludeSignatureRange(entries)
	sig, err := merkle.Sign(merkle.KindInvoiceRequest, signedEntries, sk)
	if err != nil {
		return "", err
	}
	ir.signedEntries = signedEntries
	ir.Signature = fn.Some(sig)

	all := append(append([]tlv.Entry(nil), entries...), tlv.Entry{
		Type:  typeSignature,
		Value: sig[:],
	})
	tlv.SortEntries(all)

	data, err := tlv.EncodeStreamToBytes(all)
	if err != nil {
		return "", err
	}

	return bech32.EncodeNoChecksum(prefixInvoiceRequest, data)
}

// DecodeInvoiceRequest parses and validates the "lnr"-prefixed textual
// envelope s. It does not verify the signature — call Verify with the
// payer's public key once it is known.
func DecodeInvoiceRequest(s string) (*InvoiceRequest, error) {
	prefix, data, err := bech32.DecodeNoChecksum(s)
	if err != nil {
		return nil, err
	}
	if prefix != prefixInvoiceRequest {
		return nil, ErrWrongPrefix
	}

	entries, err := tlv.DecodeStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var ir InvoiceRequest
	handlers := mergeHandlers(ir.Offer.handlers(), ir.Invreq.handlers())

	sigType := typeSignature
	unknownOdd, sigBytes, err := decodeKnownEntries(entries, handlers, &sigType)
	if err != nil {
		return nil, err
	}
	ir.UnknownOddFields = unknownOdd
	ir.signedEntries = merkle.ExcludeSignatureRange(entries)

	if sigBytes != nil {
		sig, err := decodeSig64(sigBytes)
		if err != nil {
			return nil, err
		}
		ir.Signature = fn.Some(sig)
	}

	if err := ir.validate(); err != nil {
		return nil, err
	}

	return &ir, nil
}

// Verify checks ir's signature against pubKey, which must be a 32-byte
// x-only or 33-byte compressed public key.
func (ir *InvoiceRequest) Verify(pubKey []byte) (bool, error) {
	if ir.Signature.IsNone() {
		return false, ErrNoSignature
	}
	sig := ir.Signature.UnwrapOr([64]byte{})
	return merkle.Verify(merkle.KindInvoiceRequest, ir.signedEntries, sig, pubKey)
}

func mergeHandlers(ms ...map[tlv.Type]func([]byte) error) map[tlv.Type]func([]byte) error {
	out := make(map[tlv.Type]func([]byte) error)
	for _, m := range ms {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}
