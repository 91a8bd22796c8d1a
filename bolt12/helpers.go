package bolt12

import (
	"bytes"

	"github.com/lightninglabs/bolt12/tlv"
)

// encodeTU64 returns the truncated big-endian encoding of v.
func encodeTU64(v uint64) []byte {
	var b bytes.Buffer
	// EncodeTUint64 cannot fail for an in-memory buffer.
	_ = tlv.EncodeTUint64(&b, v)
	return b.Bytes()
}

// decodeTU64 decodes a truncated big-endian uint64 from the whole of v.
func decodeTU64(v []byte) (uint64, error) {
	return tlv.DecodeTUint64(bytes.NewReader(v), uint64(len(v)))
}

// decodePubKey33 copies a required 33-byte compressed public key out of v.
func decodePubKey33(v []byte) ([33]byte, error) {
	var pk [33]byte
	if len(v) != 33 {
		return pk, tlv.ErrBufferTooSmall
	}
	copy(pk[:], v)
	return pk, nil
}

// decodeHash32 copies a required 32-byte value out of v.
func decodeHash32(v []byte) ([32]byte, error) {
	var h [32]byte
	if len(v) != 32 {
		return h, tlv.ErrBufferTooSmall
	}
	copy(h[:], v)
	return h, nil
}

// decodeSig64 copies a required 64-byte BIP-340 signature out of v.
func decodeSig64(v []byte) ([64]byte, error) {
	var sig [64]byte
	if len(v) != 64 {
		return sig, tlv.ErrBufferTooSmall
	}
	copy(sig[:], v)
	return sig, nil
}

// decodeKnownEntries walks entries in wire order, dispatching each to the
// handler registered for its type. An entry whose type matches neither a
// handler nor *sigType is preserved verbatim if odd (the "OK to be odd"
// convention for forward compatibility), or rejected if even. sigType, when
// non-nil, identifies the reserved-range entry the caller extracts
// separately — it participates in neither mirroring nor unknown-field
// preservation. Pass nil for message kinds that carry no signature.
func decodeKnownEntries(
	entries []tlv.Entry, handlers map[tlv.Type]func([]byte) error,
	sigType *tlv.Type) (unknownOdd []tlv.Entry, sig []byte, err error) {

	for _, e := range entries {
		if sigType != nil && e.Type == *sigType {
			sig = e.Value
			continue
		}
		if h, ok := handlers[e.Type]; ok {
			if err := h(e.Value); err != nil {
				return nil, nil, err
			}
			continue
		}
		if e.Type%2 == 0 {
			return nil, nil, ErrUnknownEvenType{Type: e.Type}
		}
		unknownOdd = append(unknownOdd, e)
	}
	return unknownOdd, sig, nil
}
