package bech32_test

import (
	"strings"
	"testing"

	"github.com/lightninglabs/bolt12/bech32"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	data := []byte("hello bolt 12")
	encoded, err := bech32.EncodeNoChecksum("lno", data)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(encoded, "lno1"))

	prefix, decoded, err := bech32.DecodeNoChecksum(encoded)
	require.NoError(t, err)
	require.Equal(t, "lno", prefix)
	require.Equal(t, data, decoded)
}

func TestEnvelopeRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		prefix := rapid.SampledFrom([]string{"lno", "lnr", "lni", "test"}).Draw(rt, "prefix")
		n := rapid.IntRange(0, 64).Draw(rt, "n")
		data := rapid.SliceOfN(rapid.Byte(), n, n).Draw(rt, "data")

		encoded, err := bech32.EncodeNoChecksum(prefix, data)
		if err != nil {
			rt.Fatalf("encode: %v", err)
		}

		gotPrefix, gotData, err := bech32.DecodeNoChecksum(encoded)
		if err != nil {
			rt.Fatalf("decode: %v", err)
		}
		if gotPrefix != prefix {
			rt.Fatalf("prefix mismatch: %q vs %q", gotPrefix, prefix)
		}
		if string(gotData) != string(data) {
			rt.Fatalf("data mismatch")
		}
	})
}

func TestEnvelopeAcceptsUppercase(t *testing.T) {
	encoded, err := bech32.EncodeNoChecksum("lno", []byte{0x01, 0x02})
	require.NoError(t, err)

	upper := strings.ToUpper(encoded)
	prefix, data, err := bech32.DecodeNoChecksum(upper)
	require.NoError(t, err)
	require.Equal(t, "lno", prefix)
	require.Equal(t, []byte{0x01, 0x02}, data)
}

func TestEnvelopeRejectsMixedCase(t *testing.T) {
	_, _, err := bech32.DecodeNoChecksum("Lno1pq")
	require.ErrorIs(t, err, bech32.ErrMixedCase)
}

func TestEnvelopeContinuationMarkers(t *testing.T) {
	encoded, err := bech32.EncodeNoChecksum("lno", []byte("concatenated message body"))
	require.NoError(t, err)

	for _, sep := range []string{"+\n  ", "+\t", "+ "} {
		k := len(encoded) / 2
		spliced := encoded[:k] + sep + encoded[k:]

		prefix, data, err := bech32.DecodeNoChecksum(spliced)
		require.NoError(t, err, "sep=%q", sep)
		require.Equal(t, "lno", prefix)
		require.Equal(t, []byte("concatenated message body"), data)
	}
}

func TestEnvelopeMissingSeparator(t *testing.T) {
	_, _, err := bech32.DecodeNoChecksum("lnoqpz")
	require.ErrorIs(t, err, bech32.ErrMissingSeparator)
}

func TestEnvelopeEmptyPayload(t *testing.T) {
	_, _, err := bech32.DecodeNoChecksum("lno1")
	require.ErrorIs(t, err, bech32.ErrEmptyPayload)
}

func TestEnvelopeInvalidCharacter(t *testing.T) {
	_, _, err := bech32.DecodeNoChecksum("lno1b")
	require.Error(t, err)
	var invalidChar bech32.ErrInvalidCharacter
	require.ErrorAs(t, err, &invalidChar)
}

func TestEnvelopeRejectsOversizedInput(t *testing.T) {
	oversized := "lno1" + strings.Repeat("p", bech32.MaxEnvelopeSize)

	_, _, err := bech32.DecodeNoChecksum(oversized)
	require.ErrorIs(t, err, bech32.ErrInputTooLarge)
}

func TestBech32MCompanionRoundTrip(t *testing.T) {
	encoded, err := bech32.EncodeBech32M("bc", []byte{0xde, 0xad, 0xbe, 0xef})
	require.NoError(t, err)

	hrp, data, err := bech32.DecodeBech32M(encoded)
	require.NoError(t, err)
	require.Equal(t, "bc", hrp)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, data)
}
