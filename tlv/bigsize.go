package tlv

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrBigSizeNotMinimal signals that a decoded BigSize used a wider prefix
// byte than the value required.
var ErrBigSizeNotMinimal = errors.New("bigsize: not minimally encoded")

// ErrBigSizeNegative signals that a caller attempted to encode a negative
// value as a BigSize.
var ErrBigSizeNegative = errors.New("bigsize: value is negative")

// EncodeBigSize writes val to w using the minimal BigSize encoding: a single
// byte for values below 0xfd, otherwise a one-byte discriminant (0xfd, 0xfe,
// or 0xff) followed by 2, 4, or 8 big-endian bytes. buf must have length at
// least 9, the largest encoding this function produces.
func EncodeBigSize(w io.Writer, val uint64, buf *[9]byte) error {
	switch {
	case val < 0xfd:
		buf[0] = byte(val)
		_, err := w.Write(buf[:1])
		return err

	case val <= 0xffff:
		buf[0] = 0xfd
		binary.BigEndian.PutUint16(buf[1:3], uint16(val))
		_, err := w.Write(buf[:3])
		return err

	case val <= 0xffffffff:
		buf[0] = 0xfe
		binary.BigEndian.PutUint32(buf[1:5], uint32(val))
		_, err := w.Write(buf[:5])
		return err

	default:
		buf[0] = 0xff
		binary.BigEndian.PutUint64(buf[1:9], val)
		_, err := w.Write(buf[:9])
		return err
	}
}

// SizeBigSize returns the number of bytes EncodeBigSize will write for val.
func SizeBigSize(val uint64) uint64 {
	switch {
	case val < 0xfd:
		return 1
	case val <= 0xffff:
		return 3
	case val <= 0xffffffff:
		return 5
	default:
		return 9
	}
}

// DecodeBigSize reads a BigSize-encoded value from r. Truncated input
// surfaces as io.ErrUnexpectedEOF (except when the very first byte is
// missing, which is reported as io.EOF so stream decoders can treat it as a
// clean end-of-stream). A non-minimal encoding — a multi-byte discriminant
// whose value could have fit in a shorter form — is reported as
// ErrBigSizeNotMinimal, distinct from truncation.
func DecodeBigSize(r io.Reader, buf *[9]byte) (uint64, error) {
	if _, err := io.ReadFull(r, buf[:1]); err != nil {
		return 0, err
	}
	discriminant := buf[0]

	switch {
	case discriminant < 0xfd:
		return uint64(discriminant), nil

	case discriminant == 0xfd:
		if _, err := readFullNoEOF(r, buf[:2]); err != nil {
			return 0, err
		}
		val := uint64(binary.BigEndian.Uint16(buf[:2]))
		if val < 0xfd {
			return 0, ErrBigSizeNotMinimal
		}
		return val, nil

	case discriminant == 0xfe:
		if _, err := readFullNoEOF(r, buf[:4]); err != nil {
			return 0, err
		}
		val := uint64(binary.BigEndian.Uint32(buf[:4]))
		if val <= 0xffff {
			return 0, ErrBigSizeNotMinimal
		}
		return val, nil

	default:
		if _, err := readFullNoEOF(r, buf[:8]); err != nil {
			return 0, err
		}
		val := binary.BigEndian.Uint64(buf[:8])
		if val <= 0xffffffff {
			return 0, ErrBigSizeNotMinimal
		}
		return val, nil
	}
}

// readFullNoEOF is io.ReadFull but converts a bare io.EOF (zero bytes read
// before the slice could be filled) into io.ErrUnexpectedEOF, since a
// BigSize discriminant always promises a fixed-width remainder.
func readFullNoEOF(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.EOF {
		return n, io.ErrUnexpectedEOF
	}
	return n, err
}
