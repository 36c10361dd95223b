package server_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Atharvaux2222/zat-qr-scanner/internal/server"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

func newTestServer() *server.Server {
	config := &server.Config{
		Address: ":8080",
		Debug:   true,
	}
	return server.NewServer(config)
}

func validPayload(t *testing.T) string {
	t.Helper()
	buf, err := tlv.Encode([]tlv.Record{
		{Tag: 1, Value: []byte("Acme Corp")},
		{Tag: 2, Value: []byte("300000000000003")},
		{Tag: 3, Value: []byte("2023-01-05T13:00:00")},
		{Tag: 4, Value: []byte("115.00")},
		{Tag: 5, Value: []byte("15.00")},
	})
	require.NoError(t, err)
	return base64.StdEncoding.EncodeToString(buf)
}

func postBody(t *testing.T, srv *server.Server, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "ok", response["status"])
	assert.NotEmpty(t, response["time"])
}

func TestDecodeEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postBody(t, srv, "/api/v1/decode", validPayload(t))
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.DecodeResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotEmpty(t, response.ScanID)
	require.NotNil(t, response.Invoice)
	assert.Equal(t, "Acme Corp", response.Invoice.SellerName)
	assert.Equal(t, "300000000000003", response.Invoice.VATNumber)
	assert.Empty(t, response.Warnings)
}

func TestDecodeEndpoint_EmptyBody(t *testing.T) {
	srv := newTestServer()

	w := postBody(t, srv, "/api/v1/decode", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeEndpoint_InvalidPayload(t *testing.T) {
	srv := newTestServer()

	w := postBody(t, srv, "/api/v1/decode", "not!!base64")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "INVALID_BASE64", string(response.Kind))
}

func TestDecodeEndpoint_MissingTagDiagnostics(t *testing.T) {
	srv := newTestServer()

	buf, err := tlv.Encode([]tlv.Record{
		{Tag: 1, Value: []byte("Acme Corp")},
		{Tag: 2, Value: []byte("300000000000003")},
		{Tag: 3, Value: []byte("2023-01-05T13:00:00")},
	})
	require.NoError(t, err)

	w := postBody(t, srv, "/api/v1/decode", base64.StdEncoding.EncodeToString(buf))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "MISSING_TAG", string(response.Kind))
	require.NotNil(t, response.Tag)
	assert.Equal(t, byte(4), *response.Tag)
}

func TestValidateEndpoint(t *testing.T) {
	srv := newTestServer()

	w := postBody(t, srv, "/api/v1/validate", validPayload(t))
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.True(t, response.Valid)
	assert.Empty(t, response.Errors)
}

func TestValidateEndpoint_WithWarnings(t *testing.T) {
	srv := newTestServer()

	buf, err := tlv.Encode([]tlv.Record{
		{Tag: 1, Value: []byte("Acme Corp")},
		{Tag: 2, Value: []byte("123")}, // not 15 digits
		{Tag: 3, Value: []byte("2023-01-05T13:00:00")},
		{Tag: 4, Value: []byte("115.00")},
		{Tag: 5, Value: []byte("15.00")},
	})
	require.NoError(t, err)

	w := postBody(t, srv, "/api/v1/validate", base64.StdEncoding.EncodeToString(buf))
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.True(t, response.Valid)
	require.Len(t, response.Warnings, 1)
}

func TestValidateEndpoint_Invalid(t *testing.T) {
	srv := newTestServer()

	w := postBody(t, srv, "/api/v1/validate", "AAAA")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.False(t, response.Valid)
	assert.NotEmpty(t, response.Errors)
}

func TestEncodeEndpoint_RoundTrip(t *testing.T) {
	srv := newTestServer()

	reqBody, err := json.Marshal(server.EncodeRequest{
		SellerName:   "Acme Corp",
		VATNumber:    "300000000000003",
		Timestamp:    "2023-01-05T13:00:00",
		InvoiceTotal: "115.00",
		VATTotal:     "15.00",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/encode", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var encResp server.EncodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encResp))
	require.NotEmpty(t, encResp.Payload)

	// The constructed payload decodes back to the same invoice
	w = postBody(t, srv, "/api/v1/decode", encResp.Payload)
	assert.Equal(t, http.StatusOK, w.Code)

	var decResp server.DecodeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decResp))
	assert.Equal(t, "Acme Corp", decResp.Invoice.SellerName)
	assert.Equal(t, "2023-01-05T13:00:00", decResp.Invoice.Timestamp)
}

func TestEncodeEndpoint_BadAmount(t *testing.T) {
	srv := newTestServer()

	reqBody, err := json.Marshal(server.EncodeRequest{
		SellerName:   "Acme Corp",
		VATNumber:    "300000000000003",
		Timestamp:    "2023-01-05T13:00:00",
		InvoiceTotal: "-115.00",
		VATTotal:     "15.00",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/encode", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInfoEndpoint(t *testing.T) {
	srv := newTestServer()

	buf, err := tlv.Encode([]tlv.Record{
		{Tag: 1, Value: []byte("Acme Corp")},
		{Tag: 7, Value: []byte{0x30, 0x45, 0x02}},
	})
	require.NoError(t, err)

	w := postBody(t, srv, "/api/v1/info", base64.StdEncoding.EncodeToString(buf))
	assert.Equal(t, http.StatusOK, w.Code)

	var response server.InfoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	assert.Equal(t, len(buf), response.Size)
	require.Len(t, response.Records, 2)
	assert.Equal(t, "Seller Name", response.Records[0].Name)
	assert.Equal(t, "Acme Corp", response.Records[0].Preview)
	assert.Equal(t, "ECDSA Signature", response.Records[1].Name)
	assert.Equal(t, 3, response.Records[1].Length)
}

func TestInfoEndpoint_Truncated(t *testing.T) {
	srv := newTestServer()

	payload := base64.StdEncoding.EncodeToString([]byte{1, 200, 'x'})
	w := postBody(t, srv, "/api/v1/info", payload)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var response server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "TRUNCATED", string(response.Kind))
	require.NotNil(t, response.Offset)
	assert.Equal(t, 0, *response.Offset)
}

// Benchmark tests

func BenchmarkDecode(b *testing.B) {
	srv := newTestServer()

	buf, _ := tlv.Encode([]tlv.Record{
		{Tag: 1, Value: []byte("Acme Corp")},
		{Tag: 2, Value: []byte("300000000000003")},
		{Tag: 3, Value: []byte("2023-01-05T13:00:00")},
		{Tag: 4, Value: []byte("115.00")},
		{Tag: 5, Value: []byte("15.00")},
	})
	payload := base64.StdEncoding.EncodeToString(buf)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/decode", strings.NewReader(payload))
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}

func BenchmarkHealth(b *testing.B) {
	srv := newTestServer()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, req)
	}
}
