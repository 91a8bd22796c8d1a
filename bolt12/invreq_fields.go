package bolt12

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	fn "github.com/lightningnetwork/lnd/fn/v2"
	"github.com/lightninglabs/bolt12/record"
	"github.com/lightninglabs/bolt12/tlv"
)

// InvreqFields holds the TLVs an invoice_request contributes: invreq_
// metadata plus types 80 through 91. They appear in a standalone
// invoice_request, and are mirrored verbatim into the invoice that answers
// it.
type InvreqFields struct {
	Metadata   []byte
	Chain      fn.Option[chainhash.Hash]
	AmountMsat fn.Option[uint64]
	Features   fn.Option[[]byte]
	Quantity   fn.Option[uint64]
	PayerID    fn.Option[[33]byte]
	PayerNote  fn.Option[string]
	Paths      fn.Option[[]*record.BlindedPath]
	BIP353Name fn.Option[record.BIP353Name]
}

func (f *InvreqFields) appendEntries(entries []tlv.Entry) ([]tlv.Entry, error) {
	if f.Metadata != nil {
		entries = append(entries, tlv.Entry{Type: typeInvreqMetadata, Value: f.Metadata})
	}

	var err error

	f.Chain.WhenSome(func(h chainhash.Hash) {
		entries = append(entries, tlv.Entry{Type: typeInvreqChain, Value: h[:]})
	})
	f.AmountMsat.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeInvreqAmount, Value: encodeTU64(v)})
	})
	f.Features.WhenSome(func(v []byte) {
		entries = append(entries, tlv.Entry{Type: typeInvreqFeatures, Value: v})
	})
	f.Quantity.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{Type: typeInvreqQuantity, Value: encodeTU64(v)})
	})
	f.PayerID.WhenSome(func(v [33]byte) {
		entries = append(entries, tlv.Entry{Type: typeInvreqPayerID, Value: v[:]})
	})
	f.PayerNote.WhenSome(func(v string) {
		entries = append(entries, tlv.Entry{Type: typeInvreqPayerNote, Value: []byte(v)})
	})
	f.Paths.WhenSome(func(paths []*record.BlindedPath) {
		if err != nil {
			return
		}
		var v []byte
		v, err = record.EncodeBlindedPaths(paths)
		if err == nil {
			entries = append(entries, tlv.Entry{Type: typeInvreqPaths, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}
	f.BIP353Name.WhenSome(func(n record.BIP353Name) {
		if err != nil {
			return
		}
		var v []byte
		v, err = record.EncodeBIP353Name(&n)
		if err == nil {
			entries = append(entries, tlv.Entry{Type: typeInvreqBIP353Name, Value: v})
		}
	})
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (f *InvreqFields) handlers() map[tlv.Type]func([]byte) error {
	return map[tlv.Type]func([]byte) error{
		typeInvreqMetadata: func(v []byte) error {
			f.Metadata = append([]byte(nil), v...)
			return nil
		},
		typeInvreqChain: func(v []byte) error {
			h, err := decodeHash32(v)
			if err != nil {
				return err
			}
			f.Chain = fn.Some(chainhash.Hash(h))
			return nil
		},
		typeInvreqAmount: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			f.AmountMsat = fn.Some(val)
			return nil
		},
		typeInvreqFeatures: func(v []byte) error {
			f.Features = fn.Some(append([]byte(nil), v...))
			return nil
		},
		typeInvreqQuantity: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			f.Quantity = fn.Some(val)
			return nil
		},
		typeInvreqPayerID: func(v []byte) error {
			pk, err := decodePubKey33(v)
			if err != nil {
				return err
			}
			f.PayerID = fn.Some(pk)
			return nil
		},
		typeInvreqPayerNote: func(v []byte) error {
			f.PayerNote = fn.Some(string(v))
			return nil
		},
		typeInvreqPaths: func(v []byte) error {
			paths, err := record.DecodeBlindedPaths(v)
			if err != nil {
				return err
			}
			f.Paths = fn.Some(paths)
			return nil
		},
		typeInvreqBIP353Name: func(v []byte) error {
			n, err := record.DecodeBIP353Name(v)
			if err != nil {
				return err
			}
			f.BIP353Name = fn.Some(*n)
			return nil
		},
	}
}
