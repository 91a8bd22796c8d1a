package bolt12

import (
	"errors"
	"fmt"

	"github.com/lightninglabs/bolt12/tlv"
)

var (
	// ErrWrongPrefix is returned when a textual envelope's human-readable
	// prefix does not match the message kind being decoded.
	ErrWrongPrefix = errors.New("bolt12: unexpected envelope prefix")

	// ErrMissingRequiredField is returned when a required TLV is absent.
	ErrMissingRequiredField = errors.New("bolt12: missing required field")

	// ErrEmptyMetadata is returned when invreq_metadata is present but
	// zero-length.
	ErrEmptyMetadata = errors.New("bolt12: invreq_metadata must be non-empty")

	// ErrAmountRequiresDescription is returned encoding/decoding an offer
	// (or a message mirroring offer fields) whose amount is set without a
	// description.
	ErrAmountRequiresDescription = errors.New("bolt12: amount requires description")

	// ErrCurrencyRequiresAmount is returned when currency is set without
	// an amount.
	ErrCurrencyRequiresAmount = errors.New("bolt12: currency requires amount")

	// ErrSuggestedValueRequiresField is returned when an invoice error
	// carries a suggested_value without an erroneous_field.
	ErrSuggestedValueRequiresField = errors.New("bolt12: suggested_value requires erroneous_field")

	// ErrPathPayInfoMismatch is returned when an invoice's blinded path
	// count does not match its blinded pay-info count.
	ErrPathPayInfoMismatch = errors.New("bolt12: blinded path count does not match pay-info count")

	// ErrNoSignature is returned attempting to verify a message that
	// carries no signature TLV.
	ErrNoSignature = errors.New("bolt12: message carries no signature")

	// ErrInputTooLarge is returned decoding a bare TLV stream (one with no
	// textual envelope of its own to bound it, such as an invoice_error)
	// whose input exceeds tlv.MaxStreamSize.
	ErrInputTooLarge = errors.New("bolt12: input exceeds maximum accepted size")
)

// ErrUnknownEvenType is returned when a TLV stream contains an even type
// that the decoder does not recognize for the message kind being decoded.
// Per the even/odd convention, an unrecognized even type must abort
// decoding rather than being silently ignored.
type ErrUnknownEvenType struct {
	Type tlv.Type
}

func (e ErrUnknownEvenType) Error() string {
	return fmt.Sprintf("bolt12: unknown even TLV type %d", e.Type)
}
