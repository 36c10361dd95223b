package model

import "fmt"

// WarningKind classifies an advisory anomaly on a structurally
// valid invoice. Warnings never invalidate a record; callers that
// need strict rejection apply their own policy on top.
type WarningKind string

const (
	// WarnSuspiciousVATNumber flags a VAT number that is not
	// exactly 15 ASCII digits
	WarnSuspiciousVATNumber WarningKind = "SUSPICIOUS_VAT_NUMBER"

	// WarnInconsistentAmounts flags vat_total > invoice_total
	// (the derived subtotal is negative)
	WarnInconsistentAmounts WarningKind = "INCONSISTENT_AMOUNTS"
)

// Warning is a field-level anomaly descriptor
type Warning struct {
	Kind    WarningKind `json:"kind"`
	Field   string      `json:"field"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s: %s", w.Kind, w.Field, w.Message)
}
