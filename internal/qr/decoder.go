// Package qr decodes and validates ZATCA e-invoice QR payloads: base64
// text in, a validated invoice record or a classified failure out.
//
// Decoding is a pure, synchronous transformation with no I/O and no
// shared state; it is safe to call concurrently. Malformed input is
// always reported as a *model.ParseError value, never a panic.
package qr

import (
	"encoding/base64"
	"strings"

	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

// MaxPayloadSize caps the accepted base64 text length. Captured QR
// content is at most a few hundred bytes even with phase-2 stamp
// fields; anything larger is rejected before decoding to bound the
// cost of oversized or hostile input.
const MaxPayloadSize = 4096

// DecodePayload turns captured base64 text into the raw byte buffer.
// Surrounding whitespace and newlines from the capture layer are
// trimmed first. Fails with PAYLOAD_TOO_LARGE above the size cap and
// INVALID_BASE64 for bad alphabet, bad padding, or zero decoded bytes.
func DecodePayload(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if len(payload) > MaxPayloadSize {
		return nil, model.NewPayloadTooLargeError()
	}

	buf, err := base64.StdEncoding.Strict().DecodeString(payload)
	if err != nil {
		return nil, model.NewInvalidBase64Error(err)
	}
	if len(buf) == 0 {
		return nil, model.NewInvalidBase64Error(nil)
	}
	return buf, nil
}

// Decode runs the full pipeline: base64 text to bytes, bytes to TLV
// records, records to a validated invoice. A non-nil error is always
// a *model.ParseError naming the specific failure; on success the
// returned invoice may carry advisory warnings but is never partially
// populated.
func Decode(payload string) (*model.Invoice, error) {
	buf, err := DecodePayload(payload)
	if err != nil {
		return nil, err
	}

	records, err := tlv.Tokenize(buf)
	if err != nil {
		return nil, err
	}

	return mapRecords(records)
}
