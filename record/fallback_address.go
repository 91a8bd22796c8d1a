package record

import (
	"bytes"
	"io"

	"github.com/lightninglabs/bolt12/tlv"
)

// FallbackAddress is an on-chain address a payer can fall back to if the
// Lightning payment described by an invoice cannot be completed.
type FallbackAddress struct {
	WitnessVersion uint8
	Address        []byte
}

// Encode writes a to w as a 1-byte witness version, a 2-byte big-endian
// address length, and the address bytes.
func (a *FallbackAddress) Encode(w io.Writer) error {
	if len(a.Address) > 0xffff {
		return ErrAddressTooLong
	}
	if err := tlv.EBytes(w, []byte{a.WitnessVersion}); err != nil {
		return err
	}
	if err := tlv.EUint16(w, uint16(len(a.Address))); err != nil {
		return err
	}
	return tlv.EBytes(w, a.Address)
}

func decodeFallbackAddress(r io.Reader) (*FallbackAddress, error) {
	var version [1]byte
	n, err := io.ReadFull(r, version[:])
	if err == io.EOF && n == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, unexpectEOF(err)
	}

	addrLen, err := tlv.DUint16(r)
	if err != nil {
		return nil, err
	}

	addr := make([]byte, addrLen)
	if addrLen > 0 {
		if _, err := io.ReadFull(r, addr); err != nil {
			return nil, unexpectEOF(err)
		}
	}

	return &FallbackAddress{WitnessVersion: version[0], Address: addr}, nil
}

// DecodeFallbackAddresses decodes value as a back-to-back sequence of
// FallbackAddress records, consuming until end-of-value.
func DecodeFallbackAddresses(value []byte) ([]*FallbackAddress, error) {
	r := bytes.NewReader(value)

	var addrs []*FallbackAddress
	for {
		addr, err := decodeFallbackAddress(r)
		if err == io.EOF {
			return addrs, nil
		}
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
}

// EncodeFallbackAddresses concatenates the wire encoding of every address.
func EncodeFallbackAddresses(addrs []*FallbackAddress) ([]byte, error) {
	var b bytes.Buffer
	for _, a := range addrs {
		if err := a.Encode(&b); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}
