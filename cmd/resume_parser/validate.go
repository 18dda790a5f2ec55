package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/schemas"
	bundled "github.com/jonathan/resume-parser/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.json>",
	Short: "Validate a JSON document against a bundled schema",
	Long: `Validate a résumé record (--kind record, the default) or an experience bank
(--kind bank) against the JSON Schema bundled with this binary.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

var validateKind string

var schemaByKind = map[string]string{
	"record": bundled.ResumeRecordFile,
	"bank":   bundled.ExperienceBankFile,
}

func init() {
	validateCmd.Flags().StringVarP(&validateKind, "kind", "k", "record", "Document kind: record or bank")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaName, ok := schemaByKind[validateKind]
	if !ok {
		return fmt.Errorf("unknown --kind %q (want record or bank)", validateKind)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	if err := schemas.ValidateBytes(schemaName, data); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid %s\n", args[0], validateKind)
	return nil
}
