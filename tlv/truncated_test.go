package tlv_test

import (
	"bytes"
	"testing"

	"github.com/lightninglabs/bolt12/tlv"
	"github.com/stretchr/testify/require"
)

func TestTUint64ZeroIsEmpty(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, tlv.EncodeTUint64(&b, 0))
	require.Empty(t, b.Bytes())
	require.Equal(t, uint64(0), tlv.SizeTUint64(0))
}

func TestTUint64RoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xff, 0x100, 0xffffffffffffffff}
	for _, v := range values {
		var b bytes.Buffer
		require.NoError(t, tlv.EncodeTUint64(&b, v))
		require.EqualValues(t, tlv.SizeTUint64(v), b.Len())

		got, err := tlv.DecodeTUint64(&b, uint64(b.Len()))
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestTUint64DecodeToleratesLeadingZero(t *testing.T) {
	got, err := tlv.DecodeTUint64(bytes.NewReader([]byte{0x00, 0x01}), 2)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)
}

func TestTUint64DecodeTooLong(t *testing.T) {
	_, err := tlv.DecodeTUint64(bytes.NewReader(make([]byte, 9)), 9)
	require.ErrorIs(t, err, tlv.ErrTruncatedIntTooLong)
}
