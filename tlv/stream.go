package tlv

import (
	"bytes"
	"errors"
	"io"
	"sort"
)

// ErrStreamNotAscending signals that a decoded stream contained two entries
// whose types were not in strictly ascending order — either a duplicate
// type or a type that is smaller than one already read.
var ErrStreamNotAscending = errors.New("tlv stream: types not strictly ascending")

// MaxRecordSize bounds the length field of a single TLV record. It matches
// the BOLT 1 transport's maximum message size, which every individual
// record necessarily fits within.
const MaxRecordSize = 65535

// ErrRecordTooLarge signals that a record's length prefix exceeded
// MaxRecordSize. Rejecting it here means the decoder never has to size an
// allocation from an unbounded, attacker-controlled value.
var ErrRecordTooLarge = errors.New("tlv stream: record length exceeds maximum")

// MaxStreamSize bounds the total value bytes a single DecodeStream call will
// accept, matching spec's 64 KiB default maximum message size for callers
// that hand DecodeStream a bare, unwrapped byte stream with no envelope of
// its own to enforce that bound.
const MaxStreamSize = 65536

// ErrStreamTooLarge signals that a stream's cumulative record lengths
// exceeded MaxStreamSize.
var ErrStreamTooLarge = errors.New("tlv stream: exceeds maximum accepted size")

// EncodeStream writes entries to w in order, as BigSize(type) ||
// BigSize(len(value)) || value per entry. The caller is responsible for
// having sorted entries by ascending type; EncodeStream does not re-sort
// and does not reject a badly ordered slice — canonical ordering is a
// decode-time invariant, not an encode-time one, per spec.
func EncodeStream(w io.Writer, entries []Entry) error {
	var buf [9]byte
	for _, e := range entries {
		if err := EncodeBigSize(w, uint64(e.Type), &buf); err != nil {
			return err
		}
		if err := EncodeBigSize(w, uint64(len(e.Value)), &buf); err != nil {
			return err
		}
		if err := EBytes(w, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// DecodeStream reads entries from r until exhaustion, enforcing strictly
// ascending, non-duplicate types. A clean end of stream is signalled by
// io.EOF while reading the next type byte; any truncation once a type byte
// has been consumed is reported as io.ErrUnexpectedEOF.
func DecodeStream(r io.Reader) ([]Entry, error) {
	var (
		buf       [9]byte
		entries   []Entry
		minType   Type
		first     = true
		totalSeen uint64
	)

	for {
		typVal, err := DecodeBigSize(r, &buf)
		if err == io.EOF {
			return entries, nil
		}
		if err != nil {
			return nil, err
		}
		typ := Type(typVal)

		if !first && typ <= minType {
			return nil, ErrStreamNotAscending
		}
		first = false
		minType = typ

		length, err := DecodeBigSize(r, &buf)
		if err != nil {
			return nil, unexpectEOF(err)
		}
		if length > MaxRecordSize {
			return nil, ErrRecordTooLarge
		}

		totalSeen += length
		if totalSeen > MaxStreamSize {
			return nil, ErrStreamTooLarge
		}

		var value bytes.Buffer
		if length > 0 {
			value.Grow(int(length))
			if _, err := io.CopyN(&value, r, int64(length)); err != nil {
				return nil, unexpectEOF(err)
			}
		}

		entries = append(entries, Entry{Type: typ, Value: value.Bytes()})
	}
}

// EncodeStreamToBytes is a convenience wrapper around EncodeStream for
// callers that want the serialized bytes directly rather than writing to a
// caller-supplied io.Writer.
func EncodeStreamToBytes(entries []Entry) ([]byte, error) {
	var b bytes.Buffer
	if err := EncodeStream(&b, entries); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// SortEntries sorts entries in place by ascending type. TLV types are
// unique within a valid message, so the sort need not be stable.
func SortEntries(entries []Entry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Type < entries[j].Type
	})
}
