package qr

import (
	"encoding/base64"
	"sort"

	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

// Encode serializes an invoice's five core fields and extended tags
// back into a base64 QR payload, the inverse of Decode. Amounts are
// rendered with their exact decimal text so a decode of the result
// reproduces identical values. Extended tags are written in ascending
// tag order for deterministic output.
func Encode(inv *model.Invoice) (string, error) {
	records := []tlv.Record{
		{Tag: TagSellerName, Value: []byte(inv.SellerName)},
		{Tag: TagVATNumber, Value: []byte(inv.VATNumber)},
		{Tag: TagTimestamp, Value: []byte(inv.Timestamp)},
		{Tag: TagInvoiceTotal, Value: []byte(inv.InvoiceTotal.String())},
		{Tag: TagVATTotal, Value: []byte(inv.VATTotal.String())},
	}

	if len(inv.ExtendedTags) > 0 {
		tags := make([]int, 0, len(inv.ExtendedTags))
		for tag := range inv.ExtendedTags {
			tags = append(tags, int(tag))
		}
		sort.Ints(tags)
		for _, tag := range tags {
			records = append(records, tlv.Record{
				Tag:   byte(tag),
				Value: inv.ExtendedTags[byte(tag)],
			})
		}
	}

	buf, err := tlv.Encode(records)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
