// Package zatcaqr provides a public API for decoding ZATCA e-invoice
// QR payloads.
//
// This package exposes the core types and functions for turning the
// base64 TLV payload captured from a Saudi e-invoicing QR code into a
// validated invoice record, or a classified failure for malformed
// input.
//
// Example usage:
//
//	invoice, err := zatcaqr.Decode(payload)
//	if err != nil {
//	    var parseErr *zatcaqr.ParseError
//	    errors.As(err, &parseErr)
//	    log.Printf("invalid QR code: %s", parseErr.Kind)
//	    return
//	}
//	fmt.Println(invoice.SellerName, invoice.InvoiceTotal)
package zatcaqr

import (
	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/qr"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

// Re-export core types for public API
type (
	Invoice     = model.Invoice
	Warning     = model.Warning
	WarningKind = model.WarningKind
	ParseError  = model.ParseError
	ErrorKind   = model.ErrorKind
	Record      = tlv.Record
)

// Re-export error kinds
const (
	ErrInvalidBase64   = model.ErrInvalidBase64
	ErrPayloadTooLarge = model.ErrPayloadTooLarge
	ErrEmptyPayload    = model.ErrEmptyPayload
	ErrTruncated       = model.ErrTruncated
	ErrMissingTag      = model.ErrMissingTag
	ErrInvalidUTF8     = model.ErrInvalidUTF8
	ErrNotANumber      = model.ErrNotANumber
)

// Re-export warning kinds
const (
	WarnSuspiciousVATNumber = model.WarnSuspiciousVATNumber
	WarnInconsistentAmounts = model.WarnInconsistentAmounts
)

// Re-export mandatory tag numbers
const (
	TagSellerName   = qr.TagSellerName
	TagVATNumber    = qr.TagVATNumber
	TagTimestamp    = qr.TagTimestamp
	TagInvoiceTotal = qr.TagInvoiceTotal
	TagVATTotal     = qr.TagVATTotal
)

// Decode turns captured base64 QR text into a validated invoice.
// A non-nil error is always a *ParseError; on success the invoice may
// carry advisory warnings but is never partially populated.
func Decode(payload string) (*Invoice, error) {
	return qr.Decode(payload)
}

// Encode serializes an invoice back into a base64 QR payload, the
// inverse of Decode.
func Encode(inv *Invoice) (string, error) {
	return qr.Encode(inv)
}

// Tokenize exposes the raw TLV walk for callers that need the record
// layout without field validation, such as stamp verifiers consuming
// extended tags.
func Tokenize(buf []byte) ([]Record, error) {
	return tlv.Tokenize(buf)
}
