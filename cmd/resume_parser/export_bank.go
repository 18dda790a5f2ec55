package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-parser/internal/experience"
	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/schemas"
	"github.com/jonathan/resume-parser/internal/types"
)

var exportBankCmd = &cobra.Command{
	Use:   "export-bank <file>",
	Short: "Convert a résumé into an experience bank",
	Long: `Convert a résumé into the experience bank format. The input is either a
document (PDF, DOCX, plain text), which is parsed first, or a record JSON
file previously written by "parse".`,
	Args: cobra.ExactArgs(1),
	RunE: runExportBank,
}

var (
	exportOutFile string
	exportVerbose bool
)

func init() {
	exportBankCmd.Flags().StringVarP(&exportOutFile, "out", "o", "", "Path to output experience bank JSON file (required)")
	exportBankCmd.Flags().BoolVarP(&exportVerbose, "verbose", "v", false, "Print the exported stories")

	if err := exportBankCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(exportBankCmd)
}

func runExportBank(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	record, err := loadRecord(ctx, args[0])
	if err != nil {
		return err
	}

	bank, err := experience.FromResume(record)
	if err != nil {
		return fmt.Errorf("failed to export experience bank: %w", err)
	}
	if err := schemas.ValidateExperienceBank(bank); err != nil {
		return fmt.Errorf("exported experience bank is invalid: %w", err)
	}

	if dir := filepath.Dir(exportOutFile); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := experience.SaveExperienceBank(exportOutFile, bank); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if exportVerbose {
		observability.NewPrinter(out).PrintExperienceBank(bank)
	}
	_, _ = fmt.Fprintf(out, "Exported %d stories (%d bullets) to %s\n", len(bank.Stories), bank.BulletCount(), exportOutFile)
	return nil
}

// loadRecord reads a record JSON file or parses a résumé document.
func loadRecord(ctx context.Context, path string) (*types.ResumeRecord, error) {
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		result, err := parseFile(ctx, newParser(appConfig, logger), path)
		if err != nil {
			return nil, fmt.Errorf("%s: %s", path, userMessage(err))
		}
		return result.Record, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// Accept both a bare record and the {record, metadata, warnings} output of parse.
	var wrapped struct {
		Record *types.ResumeRecord `json:"record"`
	}
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	record := wrapped.Record
	if record == nil {
		record = &types.ResumeRecord{}
		if err := json.Unmarshal(data, record); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	record.FillDefaults()
	return record, nil
}
