package tlv

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrTruncatedIntTooLong signals that a truncated integer field held more
// bytes than the target width allows (more than 8 for a tu64, 4 for a tu32,
// 2 for a tu16).
var ErrTruncatedIntTooLong = errors.New("truncated integer: too many bytes")

// truncatedUint is the set of unsigned integer widths this module encodes
// using the tu16/tu32/tu64 truncation scheme.
type truncatedUint interface {
	uint16 | uint32 | uint64
}

// SizeTUint64 returns the number of bytes needed to encode val with leading
// zero bytes stripped. Zero requires zero bytes.
func SizeTUint64(val uint64) uint64 { return sizeTUint(val) }

// SizeTUint32 returns the number of bytes needed to encode val with leading
// zero bytes stripped. Zero requires zero bytes.
func SizeTUint32(val uint32) uint64 { return sizeTUint(val) }

// SizeTUint16 returns the number of bytes needed to encode val with leading
// zero bytes stripped. Zero requires zero bytes.
func SizeTUint16(val uint16) uint64 { return sizeTUint(val) }

func sizeTUint[T truncatedUint](val T) uint64 {
	var n uint64
	for val != 0 {
		n++
		val >>= 8
	}
	return n
}

// EncodeTUint64 writes val to w as a big-endian integer with leading zero
// bytes stripped; zero is encoded as the empty byte sequence.
func EncodeTUint64(w io.Writer, val uint64) error {
	return encodeTUint(w, val)
}

// EncodeTUint32 writes val to w as a big-endian integer with leading zero
// bytes stripped; zero is encoded as the empty byte sequence.
func EncodeTUint32(w io.Writer, val uint32) error {
	return encodeTUint(w, val)
}

// EncodeTUint16 writes val to w as a big-endian integer with leading zero
// bytes stripped; zero is encoded as the empty byte sequence.
func EncodeTUint16(w io.Writer, val uint16) error {
	return encodeTUint(w, val)
}

func encodeTUint[T truncatedUint](w io.Writer, val T) error {
	size := sizeTUint(val)
	if size == 0 {
		return nil
	}

	var full [8]byte
	switch v := any(val).(type) {
	case uint16:
		binary.BigEndian.PutUint16(full[6:8], v)
	case uint32:
		binary.BigEndian.PutUint32(full[4:8], v)
	case uint64:
		binary.BigEndian.PutUint64(full[:], v)
	}

	_, err := w.Write(full[8-size:])
	return err
}

// DecodeTUint64 reads a truncated big-endian integer of exactly l bytes from
// r. l must be between 0 and 8 inclusive; a longer value cannot fit a uint64
// and is rejected with ErrTruncatedIntTooLong. Leading zero bytes in the
// input are tolerated (no minimality check is performed on decode).
func DecodeTUint64(r io.Reader, l uint64) (uint64, error) {
	if l > 8 {
		return 0, ErrTruncatedIntTooLong
	}

	var full [8]byte
	if l > 0 {
		if _, err := io.ReadFull(r, full[8-l:]); err != nil {
			if err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
	}

	return binary.BigEndian.Uint64(full[:]), nil
}

// DecodeTUint32 reads a truncated big-endian integer of exactly l bytes from
// r. l must be between 0 and 4 inclusive.
func DecodeTUint32(r io.Reader, l uint64) (uint32, error) {
	if l > 4 {
		return 0, ErrTruncatedIntTooLong
	}

	var full [4]byte
	if l > 0 {
		if _, err := io.ReadFull(r, full[4-l:]); err != nil {
			if err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
	}

	return binary.BigEndian.Uint32(full[:]), nil
}

// DecodeTUint16 reads a truncated big-endian integer of exactly l bytes from
// r. l must be between 0 and 2 inclusive.
func DecodeTUint16(r io.Reader, l uint64) (uint16, error) {
	if l > 2 {
		return 0, ErrTruncatedIntTooLong
	}

	var full [2]byte
	if l > 0 {
		if _, err := io.ReadFull(r, full[2-l:]); err != nil {
			if err == io.EOF {
				return 0, io.ErrUnexpectedEOF
			}
			return 0, err
		}
	}

	return binary.BigEndian.Uint16(full[:]), nil
}
