package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	dec "github.com/Atharvaux2222/zat-qr-scanner/internal/decimal"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/qr"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

// Config holds server configuration
type Config struct {
	Address      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config *Config
	router *gin.Engine
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/decode", s.handleDecode)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/encode", s.handleEncode)
		v1.POST("/info", s.handleInfo)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleDecode(c *gin.Context) {
	payload, ok := s.readPayload(c)
	if !ok {
		return
	}

	inv, err := qr.Decode(payload)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, parseErrorResponse(err))
		return
	}

	c.JSON(http.StatusOK, DecodeResponse{
		ScanID:   uuid.NewString(),
		Invoice:  inv,
		Warnings: inv.WarningMessages(),
	})
}

func (s *Server) handleValidate(c *gin.Context) {
	payload, ok := s.readPayload(c)
	if !ok {
		return
	}

	inv, err := qr.Decode(payload)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Valid:  false,
			Errors: []string{err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, ValidationResponse{
		Valid:    true,
		Warnings: inv.WarningMessages(),
	})
}

func (s *Server) handleEncode(c *gin.Context) {
	var req EncodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	invoiceTotal, err := dec.ParseAmount(req.InvoiceTotal)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("invoice_total: %v", err),
		})
		return
	}

	vatTotal, err := dec.ParseAmount(req.VATTotal)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf("vat_total: %v", err),
		})
		return
	}

	payload, err := qr.Encode(&model.Invoice{
		SellerName:   req.SellerName,
		VATNumber:    req.VATNumber,
		Timestamp:    req.Timestamp,
		InvoiceTotal: invoiceTotal,
		VATTotal:     vatTotal,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, EncodeResponse{Payload: payload})
}

func (s *Server) handleInfo(c *gin.Context) {
	payload, ok := s.readPayload(c)
	if !ok {
		return
	}

	buf, err := qr.DecodePayload(payload)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, parseErrorResponse(err))
		return
	}

	records, err := tlv.Tokenize(buf)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, parseErrorResponse(err))
		return
	}

	infos := make([]RecordInfo, 0, len(records))
	for _, r := range records {
		infos = append(infos, RecordInfo{
			Tag:     r.Tag,
			Name:    qr.TagName(r.Tag),
			Length:  len(r.Value),
			Preview: previewValue(r.Value),
		})
	}

	c.JSON(http.StatusOK, InfoResponse{
		Size:    len(buf),
		Records: infos,
	})
}

// readPayload reads the request body as base64 text, replying 400 on
// a missing or empty body
func (s *Server) readPayload(c *gin.Context) (string, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return "", false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return "", false
	}
	return string(body), true
}

func parseErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{Error: err.Error()}

	var parseErr *model.ParseError
	if errors.As(err, &parseErr) {
		resp.Kind = parseErr.Kind
		switch parseErr.Kind {
		case model.ErrTruncated:
			offset := parseErr.Offset
			resp.Offset = &offset
		case model.ErrMissingTag, model.ErrInvalidUTF8, model.ErrNotANumber:
			tag := parseErr.Tag
			resp.Tag = &tag
		}
	}
	return resp
}

const maxPreviewLen = 32

// previewValue renders a short, log-safe rendition of a record value:
// text as-is, binary as hex
func previewValue(value []byte) string {
	if len(value) == 0 {
		return ""
	}
	if utf8.Valid(value) && isPrintable(value) {
		s := string(value)
		if len(s) > maxPreviewLen {
			s = s[:maxPreviewLen] + "..."
		}
		return s
	}
	if len(value) > maxPreviewLen/2 {
		return fmt.Sprintf("%x...", value[:maxPreviewLen/2])
	}
	return fmt.Sprintf("%x", value)
}

func isPrintable(value []byte) bool {
	for _, b := range value {
		if b < 0x20 && b != '\t' {
			return false
		}
	}
	return true
}
