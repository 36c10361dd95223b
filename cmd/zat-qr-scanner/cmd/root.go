package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "1.0.0"

	// Global flags
	verbose      bool
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:   "zat-qr-scanner",
	Short: "Decode and validate ZATCA e-invoice QR payloads",
	Long: `zat-qr-scanner decodes the base64 TLV payload embedded in Saudi
e-invoicing (ZATCA) QR codes into a validated invoice record.

Mandatory fields (tags 1-5): seller name, VAT registration number,
timestamp, invoice total, VAT total. Tags 6 and above carry phase-2
cryptographic stamp material and are passed through untouched.

Examples:
  # Decode a captured payload
  zat-qr-scanner decode AQlBY21lIENvcnAC...

  # Decode payloads stored in files
  zat-qr-scanner decode capture1.txt capture2.txt -f table

  # Validate with warnings treated as failures
  zat-qr-scanner validate capture.txt --strict

  # Build a payload for testing
  zat-qr-scanner encode --seller "Acme Corp" --vat-number 300000000000003 \
    --timestamp 2023-01-05T13:00:00 --total 115.00 --vat 15.00

  # Start the HTTP API
  zat-qr-scanner serve --address :8080`,
	Version: version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "json", "Output format (json, table)")
}

func printVerbose(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}
