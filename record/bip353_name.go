package record

import (
	"bytes"
	"io"

	"github.com/lightninglabs/bolt12/tlv"
)

// BIP353Name is a human-readable BIP-353 payment name of the form
// "name@domain".
type BIP353Name struct {
	Name   string
	Domain string
}

// isAllowedNameChar reports whether c is legal in a BIP-353 name or domain
// component: [0-9a-zA-Z._-].
func isAllowedNameChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c == '.' || c == '_' || c == '-':
		return true
	default:
		return false
	}
}

func validateNameComponent(s string) error {
	if len(s) > 0xff {
		return ErrNameComponentTooLong
	}
	for i := 0; i < len(s); i++ {
		if !isAllowedNameChar(s[i]) {
			return ErrDisallowedCharacter{Char: s[i]}
		}
	}
	return nil
}

// Encode writes n to w as a 1-byte name length, the name bytes, a 1-byte
// domain length, and the domain bytes.
func (n *BIP353Name) Encode(w io.Writer) error {
	if err := validateNameComponent(n.Name); err != nil {
		return err
	}
	if err := validateNameComponent(n.Domain); err != nil {
		return err
	}

	if err := tlv.EBytes(w, []byte{byte(len(n.Name))}); err != nil {
		return err
	}
	if err := tlv.EBytes(w, []byte(n.Name)); err != nil {
		return err
	}
	if err := tlv.EBytes(w, []byte{byte(len(n.Domain))}); err != nil {
		return err
	}
	return tlv.EBytes(w, []byte(n.Domain))
}

// DecodeBIP353Name decodes a single BIP353Name from value, which must
// contain exactly the name's wire encoding with no trailing bytes.
func DecodeBIP353Name(value []byte) (*BIP353Name, error) {
	r := bytes.NewReader(value)

	nameLen, err := tlv.DBytes(r, 1)
	if err != nil {
		return nil, err
	}
	name, err := tlv.DBytes(r, int(nameLen[0]))
	if err != nil {
		return nil, err
	}

	domainLen, err := tlv.DBytes(r, 1)
	if err != nil {
		return nil, err
	}
	domain, err := tlv.DBytes(r, int(domainLen[0]))
	if err != nil {
		return nil, err
	}

	if err := validateNameComponent(string(name)); err != nil {
		return nil, err
	}
	if err := validateNameComponent(string(domain)); err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, ErrTrailingBytes
	}

	return &BIP353Name{Name: string(name), Domain: string(domain)}, nil
}

// EncodeBIP353Name returns the wire encoding of n.
func EncodeBIP353Name(n *BIP353Name) ([]byte, error) {
	var b bytes.Buffer
	if err := n.Encode(&b); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
