package model

import (
	"github.com/shopspring/decimal"
)

// Invoice is a decoded ZATCA simplified-invoice QR record.
// It is constructed once per decode and not mutated afterwards;
// all amounts carry exact decimal semantics.
type Invoice struct {
	SellerName string `json:"seller_name"`
	VATNumber  string `json:"vat_number"`
	// Timestamp is stored verbatim as captured; no timezone
	// normalization is applied.
	Timestamp    string          `json:"timestamp"`
	InvoiceTotal decimal.Decimal `json:"invoice_total"`
	VATTotal     decimal.Decimal `json:"vat_total"`
	// Subtotal is derived as InvoiceTotal - VATTotal and may be
	// negative when the amounts are inconsistent.
	Subtotal decimal.Decimal `json:"subtotal"`

	// ExtendedTags holds tags outside the mandatory 1-5 range
	// (phase-2 cryptographic stamp material) verbatim, for an
	// external verifier to consume.
	ExtendedTags map[byte][]byte `json:"extended_tags,omitempty"`

	// Warnings are advisory anomalies on an otherwise valid record
	Warnings []Warning `json:"warnings,omitempty"`
}

// AddWarning appends an advisory anomaly to the invoice
func (inv *Invoice) AddWarning(kind WarningKind, field, message string) {
	inv.Warnings = append(inv.Warnings, Warning{
		Kind:    kind,
		Field:   field,
		Message: message,
	})
}

// HasWarning reports whether a warning of the given kind is present
func (inv *Invoice) HasWarning(kind WarningKind) bool {
	for _, w := range inv.Warnings {
		if w.Kind == kind {
			return true
		}
	}
	return false
}

// WarningMessages returns the warning texts in order, for display layers
func (inv *Invoice) WarningMessages() []string {
	if len(inv.Warnings) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(inv.Warnings))
	for _, w := range inv.Warnings {
		msgs = append(msgs, w.Message)
	}
	return msgs
}
