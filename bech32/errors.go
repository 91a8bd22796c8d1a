package bech32

import "errors"

// ErrMixedCase signals that the envelope string mixed uppercase and
// lowercase characters, which bech32-derived encodings forbid.
var ErrMixedCase = errors.New("bech32: string contains mixed case")

// ErrMissingSeparator signals that no '1' separator was found between the
// human-readable prefix and the payload.
var ErrMissingSeparator = errors.New("bech32: missing separator '1'")

// ErrEmptyPayload signals that the separator was found but nothing followed
// it.
var ErrEmptyPayload = errors.New("bech32: empty payload")

// ErrInvalidCharacter signals that a payload byte did not appear in the
// bech32 charset.
type ErrInvalidCharacter struct {
	Char byte
}

func (e ErrInvalidCharacter) Error() string {
	return "bech32: invalid character in payload: " + string(e.Char)
}

// ErrInvalidPadding signals that the trailing partial group left over after
// regrouping payload bits to 8-bit bytes was non-zero or too wide to be
// padding, per the pad=false decode policy.
var ErrInvalidPadding = errors.New("bech32: non-zero or excess padding bits")

// ErrInvalidPrefix signals that the human-readable prefix was not 3 or 4
// ASCII letters.
var ErrInvalidPrefix = errors.New("bech32: prefix must be 3 or 4 letters")

// ErrInputTooLarge signals that an envelope string exceeded MaxEnvelopeSize,
// the maximum accepted message size spec requires a decoder to enforce so
// that its work stays linear in input length rather than unbounded.
var ErrInputTooLarge = errors.New("bech32: input exceeds maximum accepted size")
