package tlv

import (
	"encoding/binary"
	"errors"
	"io"
)

// ErrBufferTooSmall is returned when a fixed-width decoder is asked to read
// fewer or more bytes than its width requires.
var ErrBufferTooSmall = errors.New("tlv: unexpected field length")

// EUint16 writes val to w as 2 big-endian bytes.
func EUint16(w io.Writer, val uint16) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// DUint16 reads 2 big-endian bytes from r.
func DUint16(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, unexpectEOF(err)
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

// EUint32 writes val to w as 4 big-endian bytes.
func EUint32(w io.Writer, val uint32) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// DUint32 reads 4 big-endian bytes from r.
func DUint32(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, unexpectEOF(err)
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// EUint64 writes val to w as 8 big-endian bytes.
func EUint64(w io.Writer, val uint64) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// DUint64 reads 8 big-endian bytes from r.
func DUint64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, unexpectEOF(err)
	}
	return binary.BigEndian.Uint64(b[:]), nil
}

// EBytes writes a fixed number of raw bytes to w.
func EBytes(w io.Writer, val []byte) error {
	_, err := w.Write(val)
	return err
}

// DBytes reads exactly n raw bytes from r.
func DBytes(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, unexpectEOF(err)
	}
	return buf, nil
}

func unexpectEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
