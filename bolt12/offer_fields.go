package bolt12

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	fn "github.com/lightningnetwork/lnd/fn/v2"
	"github.com/lightninglabs/bolt12/record"
	"github.com/lightninglabs/bolt12/tlv"
)

// OfferFields holds the TLVs that describe what is being offered: types
// 2 through 22. They appear standalone in an offer, and are mirrored
// verbatim into the invoice_request and invoice messages that reference it.
type OfferFields struct {
	Chains         fn.Option[[]chainhash.Hash]
	Metadata       fn.Option[[]byte]
	Currency       fn.Option[string]
	AmountMsat     fn.Option[uint64]
	Description    fn.Option[string]
	Features       fn.Option[[]byte]
	AbsoluteExpiry fn.Option[uint64]
	Paths          fn.Option[[]*record.BlindedPath]
	Issuer         fn.Option[string]
	QuantityMax    fn.Option[uint64]
	IssuerID       fn.Option[[33]byte]
}

// validate enforces the cross-field rules that apply wherever offer terms
// appear, whether in a standalone offer or mirrored into a signed message.
func (f *OfferFields) validate() error {
	if f.AmountMsat.IsSome() && f.Description.IsNone() {
		return ErrAmountRequiresDescription
	}
	if f.Currency.IsSome() && f.AmountMsat.IsNone() {
		return ErrCurrencyRequiresAmount
	}
	return nil
}

// appendEntries appends one tlv.Entry per populated field to entries, in
// ascending type order, and returns the result.
func (f *OfferFields) appendEntries(entries []tlv.Entry) ([]tlv.Entry, error) {
	var err error

	f.Chains.WhenSome(func(chains []chainhash.Hash) {
		buf := make([]byte, 0, len(chains)*chainhash.HashSize)
		for _, c := range chains {
			buf = append(buf, c[:]...)
		}
		entries = append(entries, tlv.Entry{Type: typeOfferChains, Value: buf})
	})
	f.Metadata.WhenSome(func(v []byte) {
		entries = append(entries, tlv.Entry{Type: typeOfferMetadata, Value: v})
	})
	f.Currency.WhenSome(func(v string) {
		entries = append(entries, tlv.Entry{Type: typeOfferCurrency, Value: []byte(v)})
	})
	f.AmountMsat.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeOfferAmount, Value: encodeTU64(v)})
	})
	f.Description.WhenSome(func(v string) {
		entries = append(entries, tlv.Entry{Type: typeOfferDescription, Value: []byte(v)})
	})
	f.Features.WhenSome(func(v []byte) {
		entries = append(entries, tlv.Entry{Type: typeOfferFeatures, Value: v})
	})
	f.AbsoluteExpiry.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeOfferAbsoluteExpiry, Value: encodeTU64(v)})
	})
	f.Paths.WhenSome(func(paths []*record.BlindedPath) {
		if err != nil {
			return
		}
		var v []byte
		v, err = record.EncodeBlindedPaths(paths)
		if err == nil {
			entries = append(entries, tlv.Entry{Type: typeOfferPaths, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}
	f.Issuer.WhenSome(func(v string) {
		entries = append(entries, tlv.Entry{Type: typeOfferIssuer, Value: []byte(v)})
	})
	f.QuantityMax.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeOfferQuantityMax, Value: encodeTU64(v)})
	})
	f.IssuerID.WhenSome(func(v [33]byte) {
		entries = append(entries, tlv.Entry{Type: typeOfferIssuerID, Value: v[:]})
	})

	return entries, nil
}

// handlers returns the type-dispatch table used by decodeKnownEntries for
// the offer-mirrored field range.
func (f *OfferFields) handlers() map[tlv.Type]func([]byte) error {
	return map[tlv.Type]func([]byte) error{
		typeOfferChains: func(v []byte) error {
			if len(v)%chainhash.HashSize != 0 {
				return tlv.ErrBufferTooSmall
			}
			chains := make([]chainhash.Hash, 0, len(v)/chainhash.HashSize)
			for i := 0; i < len(v); i += chainhash.HashSize {
				var h chainhash.Hash
				copy(h[:], v[i:i+chainhash.HashSize])
				chains = append(chains, h)
			}
			f.Chains = fn.Some(chains)
			return nil
		},
		typeOfferMetadata: func(v []byte) error {
			f.Metadata = fn.Some(append([]byte(nil), v...))
			return nil
		},
		typeOfferCurrency: func(v []byte) error {
			f.Currency = fn.Some(string(v))
			return nil
		},
		typeOfferAmount: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			f.AmountMsat = fn.Some(val)
			return nil
		},
		typeOfferDescription: func(v []byte) error {
			f.Description = fn.Some(string(v))
			return nil
		},
		typeOfferFeatures: func(v []byte) error {
			f.Features = fn.Some(append([]byte(nil), v...))
			return nil
		},
		typeOfferAbsoluteExpiry: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			f.AbsoluteExpiry = fn.Some(val)
			return nil
		},
		typeOfferPaths: func(v []byte) error {
			paths, err := record.DecodeBlindedPaths(v)
			if err != nil {
				return err
			}
			f.Paths = fn.Some(paths)
			return nil
		},
		typeOfferIssuer: func(v []byte) error {
			f.Issuer = fn.Some(string(v))
			return nil
		},
		typeOfferQuantityMax: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			f.QuantityMax = fn.Some(val)
			return nil
		},
		typeOfferIssuerID: func(v []byte) error {
			pk, err := decodePubKey33(v)
			if err != nil {
				return err
			}
			f.IssuerID = fn.Some(pk)
			return nil
		},
	}
}
