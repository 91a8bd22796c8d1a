package record

import (
	"bytes"
	"errors"
	"io"

	"github.com/lightninglabs/bolt12/tlv"
)

// ErrTooManyHops signals that a blinded path declared more hops than fit in
// its single-byte hop count (255).
var ErrTooManyHops = errors.New("record: blinded path has too many hops")

// BlindedHop is one relay in a blinded path: the persistent node ID the
// sender's onion is routed through, and the opaque encrypted payload only
// that hop can open.
type BlindedHop struct {
	NodeID  [33]byte
	Payload []byte
}

// BlindedPath is a privacy-preserving route: an ephemeral blinding public
// key shared by every hop, followed by the hop list itself.
type BlindedPath struct {
	BlindingKey [33]byte
	Hops        []BlindedHop
}

// Encode writes p to w as: 33-byte blinding key, 1-byte hop count, then per
// hop a 33-byte node ID, a 2-byte big-endian payload length, and the
// payload bytes.
func (p *BlindedPath) Encode(w io.Writer) error {
	if len(p.Hops) > 0xff {
		return ErrTooManyHops
	}

	if err := tlv.EBytes(w, p.BlindingKey[:]); err != nil {
		return err
	}
	if err := tlv.EBytes(w, []byte{byte(len(p.Hops))}); err != nil {
		return err
	}

	for _, hop := range p.Hops {
		if err := tlv.EBytes(w, hop.NodeID[:]); err != nil {
			return err
		}
		if len(hop.Payload) > 0xffff {
			return errors.New("record: blinded hop payload too large")
		}
		if err := tlv.EUint16(w, uint16(len(hop.Payload))); err != nil {
			return err
		}
		if err := tlv.EBytes(w, hop.Payload); err != nil {
			return err
		}
	}

	return nil
}

// decodeBlindedPath reads a single BlindedPath from r. It returns io.EOF
// (unmodified) only when r is exhausted before any byte of a new path has
// been read, so that DecodeBlindedPaths can distinguish "no more paths"
// from a truncated one.
func decodeBlindedPath(r io.Reader) (*BlindedPath, error) {
	var path BlindedPath

	n, err := io.ReadFull(r, path.BlindingKey[:])
	if err == io.EOF && n == 0 {
		return nil, io.EOF
	}
	if err != nil {
		return nil, unexpectEOF(err)
	}

	var hopCount [1]byte
	if _, err := io.ReadFull(r, hopCount[:]); err != nil {
		return nil, unexpectEOF(err)
	}

	path.Hops = make([]BlindedHop, hopCount[0])
	for i := range path.Hops {
		if _, err := io.ReadFull(r, path.Hops[i].NodeID[:]); err != nil {
			return nil, unexpectEOF(err)
		}

		payloadLen, err := tlv.DUint16(r)
		if err != nil {
			return nil, err
		}

		payload := make([]byte, payloadLen)
		if payloadLen > 0 {
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, unexpectEOF(err)
			}
		}
		path.Hops[i].Payload = payload
	}

	return &path, nil
}

// DecodeBlindedPaths decodes value as a back-to-back sequence of
// BlindedPath records, consuming until end-of-value, per §4.4.
func DecodeBlindedPaths(value []byte) ([]*BlindedPath, error) {
	r := bytes.NewReader(value)

	var paths []*BlindedPath
	for {
		path, err := decodeBlindedPath(r)
		if err == io.EOF {
			return paths, nil
		}
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
}

// EncodeBlindedPaths concatenates the wire encoding of every path in order.
func EncodeBlindedPaths(paths []*BlindedPath) ([]byte, error) {
	var b bytes.Buffer
	for _, p := range paths {
		if err := p.Encode(&b); err != nil {
			return nil, err
		}
	}
	return b.Bytes(), nil
}

func unexpectEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
