package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	dec "github.com/Atharvaux2222/zat-qr-scanner/internal/decimal"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/model"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/qr"
)

var outputFile string

var decodeCmd = &cobra.Command{
	Use:   "decode [payloads|files...]",
	Short: "Decode QR payloads into invoice records",
	Long: `Decode one or more base64 QR payloads into structured invoice data.

Each argument is either the payload text itself, a path to a file
containing it, or "-" to read from stdin. Surrounding whitespace is
trimmed before decoding.

Exit status is non-zero if any payload fails to decode; advisory
warnings (suspicious VAT number, inconsistent amounts) do not fail
the command.

Examples:
  zat-qr-scanner decode AQlBY21lIENvcnAC...
  zat-qr-scanner decode capture.txt -f table
  cat capture.txt | zat-qr-scanner decode -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)

	decodeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
}

// DecodeResult holds the outcome of decoding a single payload
type DecodeResult struct {
	Source   string         `json:"source"`
	Invoice  *model.Invoice `json:"invoice,omitempty"`
	Warnings []string       `json:"warnings,omitempty"`
	Error    string         `json:"error,omitempty"`
}

func runDecode(cmd *cobra.Command, args []string) error {
	results := make([]*DecodeResult, 0, len(args))
	failed := 0

	for _, arg := range args {
		source, payload, err := readPayloadArg(arg)
		result := &DecodeResult{Source: source}
		if err != nil {
			result.Error = err.Error()
		} else {
			printVerbose("Decoding: %s\n", source)
			inv, decErr := qr.Decode(payload)
			if decErr != nil {
				result.Error = decErr.Error()
			} else {
				result.Invoice = inv
				result.Warnings = inv.WarningMessages()
			}
		}

		if result.Error != "" {
			failed++
			printVerbose("  Error: %s\n", result.Error)
		}
		results = append(results, result)
	}

	if err := outputResults(results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d payloads failed to decode", failed, len(args))
	}
	return nil
}

// readPayloadArg resolves a CLI argument into base64 payload text.
// "-" reads stdin, an existing file path reads the file, anything
// else is treated as the payload itself.
func readPayloadArg(arg string) (source, payload string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "stdin", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return "stdin", string(data), nil
	}

	if info, statErr := os.Stat(arg); statErr == nil && !info.IsDir() {
		data, err := os.ReadFile(arg)
		if err != nil {
			return arg, "", fmt.Errorf("failed to read file: %w", err)
		}
		return arg, string(data), nil
	}

	return "argument", arg, nil
}

func outputResults(results []*DecodeResult) error {
	var writer = os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	switch outputFormat {
	case "json":
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(results)
	case "table":
		return outputTable(writer, results)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}

func outputTable(w *os.File, results []*DecodeResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tSELLER\tVAT NUMBER\tTIMESTAMP\tTOTAL\tVAT\tSUBTOTAL\tWARNINGS")
	fmt.Fprintln(tw, "------\t------\t----------\t---------\t-----\t---\t--------\t--------")

	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(tw, "%s\tERROR: %s\t\t\t\t\t\t\n", r.Source, r.Error)
			continue
		}

		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%d\n",
			r.Source,
			r.Invoice.SellerName,
			r.Invoice.VATNumber,
			r.Invoice.Timestamp,
			dec.FormatAmount(r.Invoice.InvoiceTotal),
			dec.FormatAmount(r.Invoice.VATTotal),
			dec.FormatAmount(r.Invoice.Subtotal),
			len(r.Warnings),
		)
	}

	return tw.Flush()
}
