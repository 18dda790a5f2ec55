package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-parser/internal/observability"
	"github.com/jonathan/resume-parser/internal/pipeline"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse résumé files into structured records",
	Long: `Parse one or more PDF, DOCX or plain text résumés. Each file is parsed
independently; a failure in one file does not affect the others.

Without --out a single record is written to stdout as JSON. With --out each
result is written to <out>/<name>.json; two inputs with the same <name> are
rejected. --verbose summaries go to stderr when the JSON goes to stdout.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var (
	parseOutDir  string
	parseVerbose bool
	parseJobs    int
	parseSave    bool
)

func init() {
	parseCmd.Flags().StringVarP(&parseOutDir, "out", "o", "", "Directory to write <name>.json results to")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print a human-readable summary of each record")
	parseCmd.Flags().IntVarP(&parseJobs, "jobs", "j", 4, "Number of files parsed concurrently")
	parseCmd.Flags().BoolVar(&parseSave, "save", false, "Store results in the database at DATABASE_URL")

	rootCmd.AddCommand(parseCmd)
}

// parseOutcome is the result of parsing one file.
type parseOutcome struct {
	Path   string
	Result *pipeline.Result
	Err    error
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if len(args) > 1 && parseOutDir == "" {
		return fmt.Errorf("--out is required when parsing more than one file")
	}
	if parseOutDir != "" {
		if err := checkOutputNames(args); err != nil {
			return err
		}
	}

	outcomes := parseFiles(ctx, newParser(appConfig, logger), args, parseJobs)

	if parseSave {
		if err := saveOutcomes(ctx, outcomes); err != nil {
			return err
		}
	}

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()
	// Without --out stdout carries the JSON, so the summary goes to stderr.
	summary := stdout
	if parseOutDir == "" {
		summary = stderr
	}
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			_, _ = fmt.Fprintf(stderr, "%s: %s (%s)\n", o.Path, userMessage(o.Err), pipeline.KindOf(o.Err))
			logger.Debug("parse failed", zap.String("path", o.Path), zap.Error(o.Err))
			continue
		}

		if parseVerbose {
			printOutcome(summary, o)
		}
		if err := writeOutcome(stdout, parseOutDir, o); err != nil {
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(outcomes))
	}
	return nil
}

// parseFiles parses paths with at most jobs files in flight. Outcomes keep
// the order of paths; per-file failures are recorded, not returned.
func parseFiles(ctx context.Context, parser *pipeline.Parser, paths []string, jobs int) []parseOutcome {
	outcomes := make([]parseOutcome, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, jobs))
	for i, path := range paths {
		g.Go(func() error {
			result, err := parseFile(gctx, parser, path)
			outcomes[i] = parseOutcome{Path: path, Result: result, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	return outcomes
}

func parseFile(ctx context.Context, parser *pipeline.Parser, path string) (*pipeline.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return parser.ParseResume(ctx, pipeline.Upload{Filename: filepath.Base(path), Body: f})
}

// userMessage is the end-user sentence for a parse failure. File system
// errors are shown as they are.
func userMessage(err error) string {
	var pe *pipeline.ParseError
	if errors.As(err, &pe) {
		return pe.UserMessage()
	}
	return err.Error()
}

func writeOutcome(stdout io.Writer, outDir string, o parseOutcome) error {
	content, err := json.MarshalIndent(o.Result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result for %s: %w", o.Path, err)
	}
	content = append(content, '\n')

	if outDir == "" {
		_, err := stdout.Write(content)
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	outPath := filepath.Join(outDir, outputName(o.Path))
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	logger.Info("wrote result", zap.String("path", outPath))
	return nil
}

// outputName is the file a result for path is written to under --out.
func outputName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".json"
}

// checkOutputNames rejects inputs that would overwrite each other's result,
// such as a/resume.pdf and b/resume.pdf, before any file is parsed.
func checkOutputNames(paths []string) error {
	seen := make(map[string]string, len(paths))
	for _, path := range paths {
		name := outputName(path)
		if first, ok := seen[name]; ok {
			return fmt.Errorf("%s and %s would both be written to %s", first, path, name)
		}
		seen[name] = path
	}
	return nil
}

func printOutcome(w io.Writer, o parseOutcome) {
	printer := observability.NewPrinter(w)
	printer.PrintMetadata(o.Result.Metadata)
	printer.PrintResumeRecord(o.Result.Record)

	if len(o.Result.Warnings) > 0 {
		messages := make([]string, 0, len(o.Result.Warnings))
		for _, warning := range o.Result.Warnings {
			messages = append(messages, warning.Message)
		}
		printer.PrintWarnings(messages)
	}
}

func saveOutcomes(ctx context.Context, outcomes []parseOutcome) error {
	store, err := openStore(ctx, appConfig)
	if err != nil {
		return err
	}
	if store == nil {
		return fmt.Errorf("--save requires DATABASE_URL")
	}
	defer store.Close()

	for _, o := range outcomes {
		if o.Err != nil {
			continue
		}
		saved, err := store.SaveParsedResume(ctx, o.Result)
		if err != nil {
			return fmt.Errorf("failed to save %s: %w", o.Path, err)
		}
		logger.Info("saved parse result", zap.String("path", o.Path), zap.String("id", saved.ID.String()))
	}
	return nil
}
