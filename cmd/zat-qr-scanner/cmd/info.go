package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/Atharvaux2222/zat-qr-scanner/internal/qr"
	"github.com/Atharvaux2222/zat-qr-scanner/internal/tlv"
)

var infoCmd = &cobra.Command{
	Use:   "info [payloads|files...]",
	Short: "Show the TLV layout of QR payloads",
	Long: `Tokenize QR payloads and display their raw tag layout without
field validation. Useful for inspecting malformed captures and
payloads carrying extended cryptographic stamp tags.

Examples:
  zat-qr-scanner info capture.txt
  zat-qr-scanner info AQlBY21l...`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	for _, arg := range args {
		printPayloadInfo(arg)
		fmt.Println()
	}

	return nil
}

func printPayloadInfo(arg string) {
	source, payload, err := readPayloadArg(arg)
	fmt.Printf("Payload: %s\n", source)
	if err != nil {
		fmt.Printf("  Error: %v\n", err)
		return
	}

	buf, decErr := qr.DecodePayload(payload)
	if decErr != nil {
		fmt.Printf("  Error: %v\n", decErr)
		return
	}
	fmt.Printf("  Decoded size: %d bytes\n", len(buf))

	records, tokErr := tlv.Tokenize(buf)
	if tokErr != nil {
		fmt.Printf("  Error: %v\n", tokErr)
		return
	}
	fmt.Printf("  Records: %d\n", len(records))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  TAG\tNAME\tLENGTH\tVALUE")
	for _, r := range records {
		fmt.Fprintf(tw, "  %d\t%s\t%d\t%s\n", r.Tag, qr.TagName(r.Tag), len(r.Value), valuePreview(r.Value))
	}
	tw.Flush()
}

const previewLimit = 40

func valuePreview(value []byte) string {
	if len(value) == 0 {
		return "(empty)"
	}
	if utf8.Valid(value) && isDisplayable(value) {
		s := string(value)
		if len(s) > previewLimit {
			return s[:previewLimit] + "..."
		}
		return s
	}
	if len(value) > previewLimit/2 {
		return fmt.Sprintf("0x%x...", value[:previewLimit/2])
	}
	return fmt.Sprintf("0x%x", value)
}

func isDisplayable(value []byte) bool {
	for _, b := range value {
		if b < 0x20 {
			return false
		}
	}
	return true
}
