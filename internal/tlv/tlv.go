// Package tlv tokenizes and encodes the tag-length-value wire format
// used inside ZATCA QR payloads: 1 byte tag, 1 byte length L (0-255),
// followed by L value bytes, repeated to the end of the buffer. There
// is no overall length prefix or terminator; end of buffer is the only
// termination signal.
//
// The tokenizer performs no semantic tag interpretation. Duplicate
// tags are permitted and tags outside the mandatory invoice range are
// preserved verbatim for pass-through.
package tlv

import (
	"fmt"

	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
)

// headerSize is the tag byte plus the length byte
const headerSize = 2

// MaxValueLen is the largest value a single record can carry,
// bounded by the one-byte length field
const MaxValueLen = 255

// Record is a single tag-length-value field. Value length always
// equals the length byte that preceded it in the source buffer.
type Record struct {
	Tag   byte
	Value []byte
}

// Tokenize walks buf into an ordered sequence of records.
//
// Success requires the read offset to land exactly on the buffer end
// after the last record; any record that would overrun the buffer
// fails with a TRUNCATED error carrying the offset of the offending
// record, never a silently short result. An empty buffer fails with
// EMPTY_PAYLOAD. The returned records alias buf; callers that keep
// them beyond the life of buf must copy.
func Tokenize(buf []byte) ([]Record, error) {
	if len(buf) == 0 {
		return nil, model.NewEmptyPayloadError()
	}

	var records []Record
	offset := 0
	for offset < len(buf) {
		if len(buf)-offset < headerSize {
			return nil, model.NewTruncatedError(offset)
		}

		tag := buf[offset]
		length := int(buf[offset+1])
		if len(buf)-offset-headerSize < length {
			return nil, model.NewTruncatedError(offset)
		}

		start := offset + headerSize
		records = append(records, Record{
			Tag:   tag,
			Value: buf[start : start+length],
		})
		offset = start + length
	}

	return records, nil
}

// Append serializes one record onto buf and returns the extended
// buffer. Values longer than MaxValueLen cannot be represented in
// the one-byte length field and are rejected.
func Append(buf []byte, tag byte, value []byte) ([]byte, error) {
	if len(value) > MaxValueLen {
		return nil, fmt.Errorf("tlv: value for tag %d is %d bytes, exceeds %d", tag, len(value), MaxValueLen)
	}
	buf = append(buf, tag, byte(len(value)))
	return append(buf, value...), nil
}

// Encode serializes records in order into a fresh buffer, the exact
// inverse of Tokenize.
func Encode(records []Record) ([]byte, error) {
	size := 0
	for _, r := range records {
		size += headerSize + len(r.Value)
	}

	buf := make([]byte, 0, size)
	var err error
	for _, r := range records {
		if buf, err = Append(buf, r.Tag, r.Value); err != nil {
			return nil, err
		}
	}
	return buf, nil
}
