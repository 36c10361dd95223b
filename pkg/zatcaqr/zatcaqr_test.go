package zatcaqr_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atharvaux2222/zat-qr-scanner/pkg/zatcaqr"
)

func samplePayload(t *testing.T) string {
	t.Helper()
	var buf []byte
	for _, f := range []struct {
		tag   byte
		value string
	}{
		{zatcaqr.TagSellerName, "Acme Corp"},
		{zatcaqr.TagVATNumber, "300000000000003"},
		{zatcaqr.TagTimestamp, "2023-01-05T13:00:00"},
		{zatcaqr.TagInvoiceTotal, "115.00"},
		{zatcaqr.TagVATTotal, "15.00"},
	} {
		buf = append(buf, f.tag, byte(len(f.value)))
		buf = append(buf, f.value...)
	}
	return base64.StdEncoding.EncodeToString(buf)
}

func TestDecode(t *testing.T) {
	inv, err := zatcaqr.Decode(samplePayload(t))
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", inv.SellerName)
	assert.Equal(t, "300000000000003", inv.VATNumber)
	assert.True(t, inv.Subtotal.Equal(inv.InvoiceTotal.Sub(inv.VATTotal)))
	assert.Empty(t, inv.Warnings)
}

func TestDecode_ClassifiedFailure(t *testing.T) {
	_, err := zatcaqr.Decode("!!!")
	require.Error(t, err)

	var parseErr *zatcaqr.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, zatcaqr.ErrInvalidBase64, parseErr.Kind)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original, err := zatcaqr.Decode(samplePayload(t))
	require.NoError(t, err)

	payload, err := zatcaqr.Encode(original)
	require.NoError(t, err)

	decoded, err := zatcaqr.Decode(payload)
	require.NoError(t, err)

	assert.Equal(t, original.SellerName, decoded.SellerName)
	assert.Equal(t, original.VATNumber, decoded.VATNumber)
	assert.Equal(t, original.Timestamp, decoded.Timestamp)
	assert.True(t, original.InvoiceTotal.Equal(decoded.InvoiceTotal))
	assert.True(t, original.VATTotal.Equal(decoded.VATTotal))
}

func TestTokenize(t *testing.T) {
	buf, err := base64.StdEncoding.DecodeString(samplePayload(t))
	require.NoError(t, err)

	records, err := zatcaqr.Tokenize(buf)
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, zatcaqr.TagSellerName, records[0].Tag)
}
