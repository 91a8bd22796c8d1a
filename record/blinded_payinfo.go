package record

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/lightninglabs/bolt12/tlv"
)

// BlindedPayInfo carries the fee and timelock parameters a sender must
// apply when paying through a blinded path, alongside the feature bits the
// path's blinder is willing to accept.
type BlindedPayInfo struct {
	FeeBaseMsat               uint32
	FeeProportionalMillionths uint32
	CltvExpiryDelta           uint16
	HtlcMinimumMsat           uint64
	HtlcMaximumMsat           uint64
	Features                  []byte
}

// Encode writes p to w as 4-byte fee base, 4-byte proportional fee, 2-byte
// CLTV delta, 8-byte HTLC minimum, 8-byte HTLC maximum, 2-byte feature
// length, and the feature bytes.
func (p *BlindedPayInfo) Encode(w io.Writer) error {
	if err := tlv.EUint32(w, p.FeeBaseMsat); err != nil {
		return err
	}
	if err := tlv.EUint32(w, p.FeeProportionalMillionths); err != nil {
		return err
	}
	if err := tlv.EUint16(w, p.CltvExpiryDelta); err != nil {
		return err
	}
	if err := tlv.EUint64(w, p.HtlcMinimumMsat); err != nil {
		return err
	}
	if err := tlv.EUint64(w, p.HtlcMaximumMsat); err != nil {
		return err
	}
	if len(p.Features) > 0xffff {
		return ErrFeatureTooLong
	}
	if err := tlv.EUint16(w, uint16(len(p.Features))); err != nil {
		return err
	}
	return tlv.EBytes(w, p.Features)
}

func decodeBlindedPayInfo(r io.Reader) (*BlindedPayInfo, error) {
	var info BlindedPayInfo

	var first [4]byte
	n, err := io.ReadFull(r, first[:])
	if err == io.EOF && n == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, unexpectEOF(err)
	}
	info.FeeBaseMsat = binary.BigEndian.Uint32(first[:])

	feeProp, err := tlv.DUint32(r)
	if err != nil {
		return nil, err
	}
	info.FeeProportionalMillionths = feeProp

	cltv, err := tlv.DUint16(r)
	if err != nil {
		return nil, err
	}
	info.CltvExpiryDelta = cltv

	htlcMin, err := tlv.DUint64(r)
	if err != nil {
		return nil, err
	}
	info.HtlcMinimumMsat = htlcMin

	htlcMax, err := tlv.DUint64(r)
	if err != nil {
		return nil, err
	}
	info.HtlcMaximumMsat = htlcMax

	featureLen, err := tlv.DUint16(r)
	if err != nil {
		return nil, err
	}
	features := make([]byte, featureLen)
	if featureLen > 0 {
		if _, err := io.ReadFull(r, features); err != nil {
			return nil, unexpectEOF(err)
		}
	}
	info.Features = features

	return &info, nil
}

// DecodeBlindedPayInfos decodes value as a back-to-back sequence of
// BlindedPayInfo records with no leading count — the count is inferred by
// consuming to end-of-value, per §4.4.
func DecodeBlindedPayInfos(value []byte) ([]*BlindedPayInfo, error) {
	r := bytes.NewReader(value)

	var infos []*BlindedPayInfo
	for {
		info, err := decodeBlindedPayInfo(r)
		if err == io.EOF {
			return infos, nil
		}
		if err != nil {
			return nil, err
		}
		infos = append(infos, info)
	}
}

// EncodeBlindedPayInfos concatenates the wire encoding of every entry.
func EncodeBlindedPayInfos(infos []*BlindedPayInfo) ([]byte, error) {
	var b bytes.Buffer
	for _, info := range infos {
		if err := info.Encode(&b); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

