package bech32

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
)

// continuationPattern matches BOLT 12's in-stream concatenation sentinel: a
// '+' followed by a run of ASCII whitespace. It permits a wire-format
// message to be wrapped across lines (or otherwise split and rejoined)
// without those artifacts becoming part of the logical string.
var continuationPattern = regexp.MustCompile(`\+[ \t\n\v\f\r]+`)

// prefixPattern matches the three or four ASCII lowercase letters allowed as
// a human-readable prefix.
var prefixPattern = regexp.MustCompile(`^[a-z]{3,4}$`)

// MaxEnvelopeSize bounds the length of a text envelope DecodeNoChecksum will
// accept, matching spec's reasonable default of 64 KiB for the text
// envelope. It is the maximum-accepted-message-size bound spec requires so
// that decoding an adversarial input completes in time linear in input
// length.
const MaxEnvelopeSize = 65536

// EncodeNoChecksum regroups data into 5-bit words (zero-padding the final
// partial word), maps each word to a bech32 charset character, and returns
// prefix + "1" + the mapped payload. No checksum is appended — this is
// BOLT 12's deliberate deviation from bech32/bech32m.
func EncodeNoChecksum(prefix string, data []byte) (string, error) {
	if !prefixPattern.MatchString(prefix) {
		return "", ErrInvalidPrefix
	}

	words, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("bech32: regrouping to 5-bit words: %w", err)
	}

	var sb strings.Builder
	sb.Grow(len(prefix) + 1 + len(words))
	sb.WriteString(prefix)
	sb.WriteByte('1')
	for _, w := range words {
		sb.WriteByte(charset[w])
	}

	return sb.String(), nil
}

// DecodeNoChecksum reverses EncodeNoChecksum. It first strips any "+" plus
// whitespace continuation sentinels, rejects mixed-case input, locates the
// first '1' separator from the left, maps the payload back to 5-bit words
// via the charset, and regroups those words to 8-bit bytes with pad=false:
// a non-zero or over-wide trailing partial word is a parse error.
func DecodeNoChecksum(s string) (prefix string, data []byte, err error) {
	if len(s) > MaxEnvelopeSize {
		return "", nil, ErrInputTooLarge
	}

	s = continuationPattern.ReplaceAllString(s, "")

	if hasMixedCase(s) {
		return "", nil, ErrMixedCase
	}
	s = strings.ToLower(s)

	sepIdx := strings.IndexByte(s, '1')
	if sepIdx < 0 {
		return "", nil, ErrMissingSeparator
	}

	prefix = s[:sepIdx]
	payload := s[sepIdx+1:]

	if !prefixPattern.MatchString(prefix) {
		return "", nil, ErrInvalidPrefix
	}
	if len(payload) == 0 {
		return "", nil, ErrEmptyPayload
	}

	words := make([]byte, len(payload))
	for i := 0; i < len(payload); i++ {
		v, ok := charToVal[payload[i]]
		if !ok {
			return "", nil, ErrInvalidCharacter{Char: payload[i]}
		}
		words[i] = v
	}

	data, err = bech32.ConvertBits(words, 5, 8, false)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	}

	return prefix, data, nil
}

// hasMixedCase reports whether s contains both an uppercase and a lowercase
// ASCII letter.
func hasMixedCase(s string) bool {
	var hasUpper, hasLower bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		}
		if hasUpper && hasLower {
			return true
		}
	}
	return false
}
