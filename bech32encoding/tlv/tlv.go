// Package tlv implements the Type Length Value framing used inside NIP-19
// bech32 encoded entities. Each record is one byte of type, one byte of length
// and then that many bytes of value, so no value can be longer than 255 bytes.
//
// The framer knows nothing about what the types mean. Unknown types are
// returned like any other so the layer above can decide whether to skip them.
package tlv

import (
	"bytes"
	"io"

	"github.com/pkg/errors"

	"nprofile.mleku.dev/chk"
)

const (
	Default byte = iota
	Relay
)

// MaxValueLen is the longest value that fits in the one byte length field.
const MaxValueLen = 255

var (
	// ErrMalformed is returned when a buffer cannot be split into whole
	// records.
	ErrMalformed = errors.New("malformed TLV")
	// ErrValueTooLong is returned when a value does not fit in the length
	// field.
	ErrValueTooLong = errors.New("TLV value longer than 255 bytes")
)

// Record is one type/value pair.
type Record struct {
	Type  byte
	Value []byte
}

// Encode writes the records in order into a new buffer.
func Encode(records []Record) (b []byte, err error) {
	buf := &bytes.Buffer{}
	for i, r := range records {
		if err = WriteEntry(buf, r.Type, r.Value); err != nil {
			err = errors.Wrapf(err, "record %d", i)
			return
		}
	}
	b = buf.Bytes()
	return
}

// Decode splits b into records. It fails with ErrMalformed if a header or a
// value runs past the end of the buffer. The values are copies, not slices of
// b.
func Decode(b []byte) (records []Record, err error) {
	r := bytes.NewReader(b)
	for r.Len() > 0 {
		offset := len(b) - r.Len()
		var rec Record
		if rec.Type, rec.Value, err = ReadEntry(r); chk.T(err) {
			err = errors.Wrapf(err, "record %d at offset %d", len(records), offset)
			return nil, err
		}
		records = append(records, rec)
	}
	return
}

// WriteEntry writes one record to w.
func WriteEntry(w io.Writer, typ byte, value []byte) (err error) {
	if len(value) > MaxValueLen {
		return errors.Wrapf(ErrValueTooLong, "type %d value is %d bytes", typ, len(value))
	}
	if _, err = w.Write(append([]byte{typ, byte(len(value))}, value...)); chk.E(err) {
		return
	}
	return
}

// ReadEntry reads one record from r. io.EOF is returned only when r is empty
// before the record starts; a record cut short anywhere after that is
// ErrMalformed.
func ReadEntry(r io.Reader) (typ byte, value []byte, err error) {
	header := make([]byte, 2)
	var n int
	if n, err = io.ReadFull(r, header); err != nil {
		if n == 0 && errors.Is(err, io.EOF) {
			return
		}
		err = errors.Wrapf(ErrMalformed, "truncated header, %d of 2 bytes", n)
		return
	}
	typ = header[0]
	value = make([]byte, header[1])
	if n, err = io.ReadFull(r, value); err != nil {
		err = errors.Wrapf(ErrMalformed, "type %d declares %d bytes, %d remain",
			typ, len(value), n)
		value = nil
		return
	}
	return
}
