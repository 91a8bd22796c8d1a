package bolt12

import (
	"bytes"

	fn "github.com/lightningnetwork/lnd/fn/v2"
	"github.com/lightninglabs/bolt12/tlv"
)

// InvoiceError reports why an invoice_request or invoice could not be
// satisfied. Unlike the other three message kinds it has no textual
// envelope and no signature: it is a bare TLV stream, typically carried
// inside an onion message or gossip reply.
type InvoiceError struct {
	ErroneousField fn.Option[uint64]
	SuggestedValue fn.Option[[]byte]
	Message        string

	UnknownOddFields []tlv.Entry
}

func (e *InvoiceError) validate() error {
	if e.SuggestedValue.IsSome() && e.ErroneousField.IsNone() {
		return ErrSuggestedValueRequiresField
	}
	if e.Message == "" {
		return ErrMissingRequiredField
	}
	return nil
}

// EncodeInvoiceError validates and serializes e as a bare TLV stream.
func EncodeInvoiceError(e *InvoiceError) ([]byte, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}

	var entries []tlv.Entry
	e.ErroneousField.WhenSome(func(v uint64) {
		entries = append(entries, tlv.Entry{
			Type:  typeInvoiceErrorErroneousField,
			Value: encodeTU64(v),
		})
	})
	e.SuggestedValue.WhenSome(func(v []byte) {
		entries = append(entries, tlv.Entry{
			Type:  typeInvoiceErrorSuggestedValue,
			Value: v,
		})
	})
	entries = append(entries, tlv.Entry{
		Type:  typeInvoiceErrorMessage,
		Value: []byte(e.Message),
	})
	entries = append(entries, e.UnknownOddFields...)
	tlv.SortEntries(entries)

	return tlv.EncodeStreamToBytes(entries)
}

// DecodeInvoiceError parses and validates a bare TLV stream as an
// InvoiceError.
func DecodeInvoiceError(data []byte) (*InvoiceError, error) {
	if len(data) > tlv.MaxStreamSize {
		return nil, ErrInputTooLarge
	}

	entries, err := tlv.DecodeStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var e InvoiceError
	handlers := map[tlv.Type]func([]byte) error{
		typeInvoiceErrorErroneousField: func(v []byte) error {
			val, err := decodeTU64(v)
			if err != nil {
				return err
			}
			e.ErroneousField = fn.Some(val)
			return nil
		},
		typeInvoiceErrorSuggestedValue: func(v []byte) error {
			e.SuggestedValue = fn.Some(append([]byte(nil), v...))
			return nil
		},
		typeInvoiceErrorMessage: func(v []byte) error {
			e.Message = string(v)
			return nil
		},
	}

	unknownOdd, _, err := decodeKnownEntries(entries, handlers, nil)
	if err != nil {
		return nil, err
	}
	e.UnknownOddFields = unknownOdd

	if err := e.validate(); err != nil {
		return nil, err
	}

	return &e, nil
}
