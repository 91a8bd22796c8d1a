package bolt12

import (
	"bytes"

	"github.com/btcsuite/btcd/btcec/v2"
	fn "github.com/lightningnetwork/lnd/fn/v2"
	"github.com/lightninglabs/bolt12/bech32"
	"github.com/lightninglabs/bolt12/merkle"
	"github.com/lightninglabs/bolt12/record"
	"github.com/lightninglabs/bolt12/tlv"
)

// Invoice answers an InvoiceRequest (or a standalone "push" offer) with
// concrete payment instructions. It mirrors both the offer-mirrored and
// invreq-mirrored TLV ranges verbatim and adds its own invoice-specific
// fields.
type Invoice struct {
	Offer  OfferFields
	Invreq InvreqFields

	Paths          fn.Option[[]*record.BlindedPath]
	BlindedPayInfo fn.Option[[]*record.BlindedPayInfo]
	CreatedAt      fn.Option[uint64]
	RelativeExpiry fn.Option[uint64]
	PaymentHash    fn.Option[[32]byte]
	Amount         fn.Option[uint64]
	Fallbacks      fn.Option[[]*record.FallbackAddress]
	Features       fn.Option[[]byte]
	NodeID         fn.Option[[33]byte]

	Signature fn.Option[[64]byte]

	UnknownOddFields []tlv.Entry

	signedEntries []tlv.Entry
}

func (inv *Invoice) validate() error {
	paths := inv.Paths.UnwrapOr(nil)
	payInfo := inv.BlindedPayInfo.UnwrapOr(nil)
	if len(paths) != len(payInfo) {
		return ErrPathPayInfoMismatch
	}
	return inv.Offer.validate()
}

func (inv *Invoice) appendOwnEntries(entries []tlv.Entry) ([]tlv.Entry, error) {
	var err error

	inv.Paths.WhenSome(func(paths []*record.BlindedPath) {
		if err != nil {
			return
		}
		var v []byte
		v, err = record.EncodeBlindedPaths(paths)
		if err == nil {
			entries = append(entries, tlv.Entry{Type: typeInvoicePaths, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}
	inv.BlindedPayInfo.WhenSome(func(infos []*record.BlindedPayInfo) {
		if err != nil {
			return
		}
		var v []byte
		v, err = record.EncodeBlindedPayInfos(infos)
		if err == nil {
			entries = append(entries, tlv.Entry{Type: typeInvoiceBlindedPayInfo, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}
	inv.CreatedAt.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeInvoiceCreatedAt, Value: encodeTU64(v)})
	})
	inv.RelativeExpiry.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeInvoiceRelativeExpiry, Value: encodeTU64(v)})
	})
	inv.PaymentHash.WhenSome(func(h [32]byte) {
		entries = append(entries, tlv.Entry{Type: typeInvoicePaymentHash, Value: h[:]})
	})
	inv.Amount.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeInvoiceAmount, Value: encodeTU64(v)})
	})
	inv.Fallbacks.WhenSome(func(addrs []*record.FallbackAddress) {
		if err != nil {
			return
		}
		var v []byte
		v, err = record.EncodeFallbackAddresses(addrs)
		if err == nil {
			entries = append(entries, tlv.Entry{Type: typeInvoiceFallbacks, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}
	inv.Features.WhenSome(func(v []byte) {
		entries = append(entries, tlv.Entry{Type: typeInvoiceFeatures, Value: v})
	})
	inv.NodeID.WhenSome(func(v [33]byte) {
		entries = append(entries, tlv.Entry{Type: typeInvoiceNodeID, Value: v[:]})
	})

	return entries, nil
}

func (inv *Invoice) ownHandlers() map[tlv.Type]func([]byte) error {
	return map[tlv.Type]func([]byte) error{
		typeInvoicePaths: func(v []byte) error {
			paths, err := record.DecodeBlindedPaths(v)
			if err != nil {
				return err
			}
			inv.Paths = fn.Some(paths)
			return nil
		},
		typeInvoiceBlindedPayInfo: func(v []byte) error {
			infos, err := record.DecodeBlindedPayInfos(v)
			if err != nil {
				return err
			}
			inv.BlindedPayInfo = fn.Some(infos)
			return nil
		},
		typeInvoiceCreatedAt: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			inv.CreatedAt = fn.Some(val)
			return nil
		},
		typeInvoiceRelativeExpiry: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			inv.RelativeExpiry = fn.Some(val)
			return nil
		},
		typeInvoicePaymentHash: func(v []byte) error {
			h, err := decodeHash32(v)
			if err != nil {
				return err
			}
			inv.PaymentHash = fn.Some(h)
			return nil
		},
		typeInvoiceAmount: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			inv.Amount = fn.Some(val)
			return nil
		},
		typeInvoiceFallbacks: func(v []byte) error {
			addrs, err := record.DecodeFallbackAddresses(v)
			if err != nil {
				return err
			}
			inv.Fallbacks = fn.Some(addrs)
			return nil
		},
		typeInvoiceFeatures: func(v []byte) error {
			inv.Features = fn.Some(append([]byte(nil), v...))
			return nil
		},
		typeInvoiceNodeID: func(v []byte) error {
			pk, err := decodePubKey33(v)
			if err != nil {
				return err
			}
			inv.NodeID = fn.Some(pk)
			return nil
		},
	}
}

// EncodeInvoice validates, signs with sk, and serializes inv into its
// "lni"-prefixed textual envelope.
func EncodeInvoice(inv *Invoice, sk *btcec.PrivateKey) (string, error) {
	if err := inv.validate(); err != nil {
		return "", err
	}

	entries, err := inv.Offer.appendEntries(nil)
	if err != nil {
		return "", err
	}
	entries, err = inv.Invreq.appendEntries(entries)
	if err != nil {
		return "", err
	}
	entries, err = inv.appendOwnEntries(entries)
	if err != nil {
		return "", err
	}
	entries = append(entries, inv.UnknownOddFields...)
	tlv.SortEntries(entries)

	signedEntries := merkle.ExcludeSignatureRange(entries)
	sig, err := merkle.Sign(merkle.KindInvoice, signedEntries, sk)
	if err != nil {
		return "", err
	}
	inv.signedEntries = signedEntries
	inv.Signature = fn.Some(sig)

	all := append(append([]tlv.Entry(nil), entries...), tlv.Entry{
		Type:  typeSignature,
		Value: sig[:],
	})
	tlv.SortEntries(all)

	data, err := tlv.EncodeStreamToBytes(all)
	if err != nil {
		return "", err
	}

	return bech32.EncodeNoChecksum(prefixInvoice, data)
}

// DecodeInvoice parses and validates the "lni"-prefixed textual envelope s.
// It does not verify the signature — call Verify with the issuer's public
// key once it is known.
func DecodeInvoice(s string) (*Invoice, error) {
	prefix, data, err := bech32.DecodeNoChecksum(s)
	if err != nil {
		return nil, err
	}
	if prefix != prefixInvoice {
		return nil, ErrWrongPrefix
	}

	entries, err := tlv.DecodeStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var inv Invoice
	handlers := mergeHandlers(
		inv.Offer.handlers(), inv.Invreq.handlers(), inv.ownHandlers(),
	)

	sigType := typeSignature
	unknownOdd, sigBytes, err := decodeKnownEntries(entries, handlers, &sigType)
	if err != nil {
		return nil, err
	}
	inv.UnknownOddFields = unknownOdd
	inv.signedEntries = merkle.ExcludeSignatureRange(entries)

	if sigBytes != nil {
		sig, err := decodeSig64(sigBytes)
		if err != nil {
			return nil, err
		}
		inv.Signature = fn.Some(sig)
	}

	if err := inv.validate(); err != nil {
		return nil, err
	}

	return &inv, nil
}

// Verify checks inv's signature against pubKey, which must be a 32-byte
// x-only or 33-byte compressed public key.
func (inv *Invoice) Verify(pubKey []byte) (bool, error) {
	if inv.Signature.IsNone() {
		return false, ErrNoSignature
	}
	sig := inv.Signature.UnwrapOr([64]byte{})
	return merkle.Verify(merkle.KindInvoice, inv.signedEntries, sig, pubKey)
}
