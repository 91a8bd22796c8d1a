package tlv

import "bytes"

// Type is a 64-bit TLV type identifier. It is kept as its own named type,
// rather than a bare uint64, so that call sites carrying a TLV type can't be
// silently confused with an ordinary length or amount field — the space of
// legal values is the full 64-bit range per spec, so nothing narrower will
// do.
type Type uint64

// Entry is a single decoded or to-be-encoded TLV record: a type and its raw
// value bytes. Entry intentionally carries no notion of the field's
// semantic meaning — that's the message adapter's job — because the
// signature engine needs to hash the exact wire bytes of every entry
// regardless of whether this library understands its type.
type Entry struct {
	Type  Type
	Value []byte
}

// Serialize returns the wire encoding of a single entry: BigSize(type) ||
// BigSize(len(value)) || value.
func (e Entry) Serialize() ([]byte, error) {
	var (
		buf [9]byte
		b   bytes.Buffer
	)
	b.Grow(int(SizeBigSize(uint64(e.Type)) + SizeBigSize(uint64(len(e.Value))) + uint64(len(e.Value))))

	if err := EncodeBigSize(&b, uint64(e.Type), &buf); err != nil {
		return nil, err
	}
	if err := EncodeBigSize(&b, uint64(len(e.Value)), &buf); err != nil {
		return nil, err
	}
	if _, err := b.Write(e.Value); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
