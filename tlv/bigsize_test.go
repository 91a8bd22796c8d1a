package tlv_test

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/lightninglabs/bolt12/tlv"
	"github.com/stretchr/testify/require"
)

func TestBigSizeRoundTrip(t *testing.T) {
	values := []uint64{
		0, 0xfc, 0xfd, 0xfe, 0xff, 0xffff,
		0x10000, 0xffffffff,
		0x100000000, math.MaxUint64,
	}

	for _, v := range values {
		var (
			buf [9]byte
			b   bytes.Buffer
		)
		require.NoError(t, tlv.EncodeBigSize(&b, v, &buf))

		got, err := tlv.DecodeBigSize(&b, &buf)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestBigSizeEncodingWidth(t *testing.T) {
	tests := []struct {
		val  uint64
		size uint64
	}{
		{0, 1}, {0xfc, 1},
		{0xfd, 3}, {0xffff, 3},
		{0x10000, 5}, {0xffffffff, 5},
		{0x100000000, 9}, {math.MaxUint64, 9},
	}

	var buf [9]byte
	for _, test := range tests {
		var b bytes.Buffer
		require.NoError(t, tlv.EncodeBigSize(&b, test.val, &buf))
		require.Len(t, b.Bytes(), int(test.size))
		require.Equal(t, test.size, tlv.SizeBigSize(test.val))
	}
}

func TestBigSizeNonMinimalRejected(t *testing.T) {
	var buf [9]byte

	// 0xfc encoded under the 0xfd prefix.
	_, err := tlv.DecodeBigSize(bytes.NewReader([]byte{0xfd, 0x00, 0xfc}), &buf)
	require.ErrorIs(t, err, tlv.ErrBigSizeNotMinimal)

	// 0xffff encoded under the 0xfe prefix.
	_, err = tlv.DecodeBigSize(
		bytes.NewReader([]byte{0xfe, 0x00, 0x00, 0xff, 0xff}), &buf,
	)
	require.ErrorIs(t, err, tlv.ErrBigSizeNotMinimal)

	// 0xffffffff encoded under the 0xff prefix.
	_, err = tlv.DecodeBigSize(bytes.NewReader([]byte{
		0xff, 0x00, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff,
	}), &buf)
	require.ErrorIs(t, err, tlv.ErrBigSizeNotMinimal)
}

func TestBigSizeTruncated(t *testing.T) {
	var buf [9]byte

	// Discriminant present, but the remainder is cut short.
	_, err := tlv.DecodeBigSize(bytes.NewReader([]byte{0xfd, 0x01}), &buf)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// Nothing at all is a clean end of stream (io.EOF), not a truncation
	// error, so that stream decoding can stop gracefully.
	_, err = tlv.DecodeBigSize(bytes.NewReader(nil), &buf)
	require.ErrorIs(t, err, io.EOF)
}
