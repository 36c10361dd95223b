package qr

// Mandatory invoice tags per the ZATCA simplified-invoice QR layout
const (
	TagSellerName   byte = 1
	TagVATNumber    byte = 2
	TagTimestamp    byte = 3
	TagInvoiceTotal byte = 4
	TagVATTotal     byte = 5
)

// Extended tags carry phase-2 cryptographic stamp material. They are
// tokenized and passed through untouched; verification belongs to an
// external collaborator.
const (
	TagInvoiceHash    byte = 6
	TagSignature      byte = 7
	TagPublicKey      byte = 8
	TagStampSignature byte = 9
)

// lastMandatoryTag bounds the range checked by the field mapper
const lastMandatoryTag = TagVATTotal

// TagName returns a display name for known tags, for diagnostics only
func TagName(tag byte) string {
	switch tag {
	case TagSellerName:
		return "Seller Name"
	case TagVATNumber:
		return "VAT Number"
	case TagTimestamp:
		return "Timestamp"
	case TagInvoiceTotal:
		return "Invoice Total"
	case TagVATTotal:
		return "VAT Total"
	case TagInvoiceHash:
		return "Invoice Hash"
	case TagSignature:
		return "ECDSA Signature"
	case TagPublicKey:
		return "ECDSA Public Key"
	case TagStampSignature:
		return "Stamp Signature"
	default:
		return "Unknown"
	}
}
