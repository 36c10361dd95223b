package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	dec "github.com/Atharvaux2222/zat-qr-scanner/internal/decimal"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/qr"
)

var (
	encodeSeller    string
	encodeVATNumber string
	encodeTimestamp string
	encodeTotal     string
	encodeVAT       string
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Build a QR payload from invoice fields",
	Long: `Construct a base64 QR payload from the five mandatory invoice
fields, the inverse of decode. Useful for generating test fixtures
and verifying scanner integrations.

Examples:
  zat-qr-scanner encode --seller "Acme Corp" --vat-number 300000000000003 \
    --timestamp 2023-01-05T13:00:00 --total 115.00 --vat 15.00`,
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	encodeCmd.Flags().StringVar(&encodeSeller, "seller", "", "Seller name (required)")
	encodeCmd.Flags().StringVar(&encodeVATNumber, "vat-number", "", "VAT registration number (required)")
	encodeCmd.Flags().StringVar(&encodeTimestamp, "timestamp", "", "Invoice timestamp (required)")
	encodeCmd.Flags().StringVar(&encodeTotal, "total", "", "Invoice total with VAT (required)")
	encodeCmd.Flags().StringVar(&encodeVAT, "vat", "", "VAT total (required)")

	for _, flag := range []string{"seller", "vat-number", "timestamp", "total", "vat"} {
		_ = encodeCmd.MarkFlagRequired(flag)
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	invoiceTotal, err := dec.ParseAmount(encodeTotal)
	if err != nil {
		return fmt.Errorf("invalid --total: %w", err)
	}

	vatTotal, err := dec.ParseAmount(encodeVAT)
	if err != nil {
		return fmt.Errorf("invalid --vat: %w", err)
	}

	payload, err := qr.Encode(&model.Invoice{
		SellerName:   encodeSeller,
		VATNumber:    encodeVATNumber,
		Timestamp:    encodeTimestamp,
		InvoiceTotal: invoiceTotal,
		VATTotal:     vatTotal,
	})
	if err != nil {
		return err
	}

	fmt.Println(payload)
	return nil
}
