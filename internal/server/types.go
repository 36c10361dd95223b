package server

import (
	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
)

// DecodeResponse is the response for the decode endpoint. ScanID is
// assigned per request so the calling pipeline can correlate captures
// with whatever bookkeeping it keeps.
type DecodeResponse struct {
	ScanID   string         `json:"scan_id"`
	Invoice  *model.Invoice `json:"invoice"`
	Warnings []string       `json:"warnings,omitempty"`
}

// ValidationResponse is the response for the validate endpoint
type ValidationResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// EncodeRequest carries invoice fields for payload construction
type EncodeRequest struct {
	SellerName   string `json:"seller_name" binding:"required"`
	VATNumber    string `json:"vat_number" binding:"required"`
	Timestamp    string `json:"timestamp" binding:"required"`
	InvoiceTotal string `json:"invoice_total" binding:"required"`
	VATTotal     string `json:"vat_total" binding:"required"`
}

// EncodeResponse returns the constructed base64 payload
type EncodeResponse struct {
	Payload string `json:"payload"`
}

// RecordInfo describes one TLV record for the info endpoint
type RecordInfo struct {
	Tag     byte   `json:"tag"`
	Name    string `json:"name"`
	Length  int    `json:"length"`
	Preview string `json:"preview,omitempty"`
}

// InfoResponse is the response for the info endpoint
type InfoResponse struct {
	Size    int          `json:"size"`
	Records []RecordInfo `json:"records"`
}

// ErrorResponse is the standard error response. Kind, offset and tag
// carry the decode failure classification for diagnostics; display
// layers are expected to show users only a coarse invalid-QR status.
type ErrorResponse struct {
	Error  string          `json:"error"`
	Kind   model.ErrorKind `json:"kind,omitempty"`
	Offset *int            `json:"offset,omitempty"`
	Tag    *byte           `json:"tag,omitempty"`
}
