package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Atharvaux2222/zat-qr-scanner/internal/qr"
)

var strictValidation bool

var validateCmd = &cobra.Command{
	Use:   "validate [payloads|files...]",
	Short: "Validate QR payloads",
	Long: `Validate one or more QR payloads for structural and semantic
correctness.

Checks performed:
  - Base64 encoding and size cap
  - TLV structure (no truncated or overrunning records)
  - Mandatory tags 1-5 present and decodable
  - VAT number format (15 ASCII digits)
  - Amount consistency (VAT total <= invoice total)

Format anomalies are reported as warnings and do not fail validation
unless --strict is given.

Examples:
  zat-qr-scanner validate capture.txt
  zat-qr-scanner validate AQlBY21l... --strict`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().BoolVar(&strictValidation, "strict", false, "Treat warnings as validation failures")
}

// ValidationResult holds the result of validating a single payload
type ValidationResult struct {
	Source   string   `json:"source"`
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	results := make([]*ValidationResult, 0, len(args))
	allValid := true

	for _, arg := range args {
		result := validatePayload(arg)
		results = append(results, result)

		if !result.Valid {
			allValid = false
		}
	}

	if outputFormat == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			if r.Valid {
				fmt.Printf("✓ %s: VALID\n", r.Source)
			} else {
				fmt.Printf("✗ %s: INVALID\n", r.Source)
				for _, e := range r.Errors {
					fmt.Printf("  - %s\n", e)
				}
			}
			for _, w := range r.Warnings {
				fmt.Printf("  ⚠ %s\n", w)
			}
		}
	}

	if !allValid {
		return fmt.Errorf("validation failed for some payloads")
	}

	return nil
}

func validatePayload(arg string) *ValidationResult {
	source, payload, err := readPayloadArg(arg)
	result := &ValidationResult{
		Source:   source,
		Valid:    true,
		Errors:   []string{},
		Warnings: []string{},
	}

	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	inv, decErr := qr.Decode(payload)
	if decErr != nil {
		result.Valid = false
		result.Errors = append(result.Errors, decErr.Error())
		return result
	}

	for _, w := range inv.Warnings {
		if strictValidation {
			result.Valid = false
			result.Errors = append(result.Errors, w.String())
		} else {
			result.Warnings = append(result.Warnings, w.String())
		}
	}

	return result
}
