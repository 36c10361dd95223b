package qr

import (
	"fmt"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	dec "github.com/Atharvaux2222/zat-qr-scanner/internal/decimal"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

// vatNumberLen is the expected length of a Saudi VAT registration
// number (15 ASCII digits)
const vatNumberLen = 15

// mapRecords interprets tokenized records as typed invoice fields.
//
// The first occurrence of each tag is authoritative; later duplicates
// are ignored. All five mandatory tags must be present and decodable
// or the whole record is rejected. Semantic checks run only after
// structural validity is established and downgrade nothing; they
// append warnings to the returned invoice.
func mapRecords(records []tlv.Record) (*model.Invoice, error) {
	core := make(map[byte][]byte, lastMandatoryTag)
	var extended map[byte][]byte

	for _, r := range records {
		if r.Tag >= TagSellerName && r.Tag <= lastMandatoryTag {
			if _, seen := core[r.Tag]; !seen {
				core[r.Tag] = r.Value
			}
			continue
		}
		if extended == nil {
			extended = make(map[byte][]byte)
		}
		if _, seen := extended[r.Tag]; !seen {
			extended[r.Tag] = append([]byte(nil), r.Value...)
		}
	}

	// Structural pass: every mandatory tag, in tag order, so the
	// reported failure names the lowest offending tag
	for tag := TagSellerName; tag <= lastMandatoryTag; tag++ {
		if _, ok := core[tag]; !ok {
			return nil, model.NewMissingTagError(tag)
		}
	}

	sellerName, err := decodeText(TagSellerName, core[TagSellerName])
	if err != nil {
		return nil, err
	}
	if sellerName == "" {
		// a present but zero-length seller name carries no field
		return nil, model.NewMissingTagError(TagSellerName)
	}

	vatNumber, err := decodeText(TagVATNumber, core[TagVATNumber])
	if err != nil {
		return nil, err
	}

	timestamp, err := decodeText(TagTimestamp, core[TagTimestamp])
	if err != nil {
		return nil, err
	}

	invoiceTotal, err := decodeAmount(TagInvoiceTotal, core[TagInvoiceTotal])
	if err != nil {
		return nil, err
	}

	vatTotal, err := decodeAmount(TagVATTotal, core[TagVATTotal])
	if err != nil {
		return nil, err
	}

	inv := &model.Invoice{
		SellerName:   sellerName,
		VATNumber:    vatNumber,
		Timestamp:    timestamp,
		InvoiceTotal: invoiceTotal,
		VATTotal:     vatTotal,
		Subtotal:     invoiceTotal.Sub(vatTotal),
		ExtendedTags: extended,
	}

	// Advisory pass
	if !isVATNumber(vatNumber) {
		inv.AddWarning(model.WarnSuspiciousVATNumber, "vat_number",
			fmt.Sprintf("VAT number %q is not %d ASCII digits", vatNumber, vatNumberLen))
	}
	if vatTotal.GreaterThan(invoiceTotal) {
		inv.AddWarning(model.WarnInconsistentAmounts, "vat_total",
			fmt.Sprintf("VAT total %s exceeds invoice total %s", vatTotal, invoiceTotal))
	}

	return inv, nil
}

func decodeText(tag byte, value []byte) (string, error) {
	if !utf8.Valid(value) {
		return "", model.NewInvalidUTF8Error(tag)
	}
	return string(value), nil
}

func decodeAmount(tag byte, value []byte) (decimal.Decimal, error) {
	if !utf8.Valid(value) {
		return dec.Zero, model.NewNotANumberError(tag, string(value), nil)
	}
	raw := string(value)
	d, err := dec.ParseAmount(raw)
	if err != nil {
		return dec.Zero, model.NewNotANumberError(tag, raw, err)
	}
	return d, nil
}

func isVATNumber(s string) bool {
	if len(s) != vatNumberLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
