// Package observability provides logging setup and the formatted output used
// by the CLI's verbose mode.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, inner))
	fmt.Fprintf(p.out, "├%s┤\n", border)
	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, inner), inner))
	}
	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to at most width runes, marking the cut with "...".
func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	return string(runes[:width-3]) + "..."
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// PrintResumeRecord outputs a human-readable summary of a parsed record.
func (p *Printer) PrintResumeRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder
	personal := record.Personal
	writeField(&sb, "Name", personal.Name)
	writeField(&sb, "Email", personal.Email)
	writeField(&sb, "Phone", personal.Phone)
	writeField(&sb, "LinkedIn", personal.LinkedIn)
	writeField(&sb, "GitHub", personal.GitHub)
	writeField(&sb, "Website", personal.Website)
	sb.WriteString("\n")

	if len(record.Experience) > 0 {
		sb.WriteString("Experience:\n")
		count := min(len(record.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			exp := record.Experience[i]
			fmt.Fprintf(&sb, "  • %s, %s (%d lines)\n", exp.Title, exp.Company, len(exp.Description))
		}
		writeMore(&sb, len(record.Experience))
	}

	if len(record.Education) > 0 {
		sb.WriteString("Education:\n")
		count := min(len(record.Education), maxItemsToShow)
		for i := 0; i < count; i++ {
			fmt.Fprintf(&sb, "  • %s, %s\n", record.Education[i].Degree, record.Education[i].Institution)
		}
		writeMore(&sb, len(record.Education))
	}

	for _, group := range record.Skills {
		fmt.Fprintf(&sb, "%s: %s\n", group.Category, strings.Join(group.Items, ", "))
	}

	fmt.Fprintf(&sb, "\nProjects: %d  Certifications: %d  Languages: %d\n",
		len(record.Projects), len(record.Certifications), len(record.Languages))
	fmt.Fprintf(&sb, "Publications: %d  Awards: %d  Volunteer: %d",
		len(record.Publications), len(record.Awards), len(record.Volunteer))

	p.printBox("PARSED RÉSUMÉ", sb.String())
}

// PrintMetadata outputs facts about the parsed upload.
func (p *Printer) PrintMetadata(meta *ingestion.Metadata) {
	if meta == nil {
		return
	}

	var sb strings.Builder
	writeField(&sb, "File", meta.Filename)
	writeField(&sb, "Format", meta.Format)
	writeField(&sb, "Detected", meta.DetectedMIME)
	fmt.Fprintf(&sb, "Size:     %d bytes\n", meta.SizeBytes)
	if meta.Pages > 0 {
		fmt.Fprintf(&sb, "Pages:    %d\n", meta.Pages)
	}
	fmt.Fprintf(&sb, "Text:     %d chars, %d lines, %d blocks\n", meta.Chars, meta.Lines, meta.Blocks)
	fmt.Fprintf(&sb, "SHA-256:  %s", meta.Hash)

	p.printBox("UPLOAD", sb.String())
}

// PrintWarnings lists soft findings; nothing is printed when there are none.
func (p *Printer) PrintWarnings(messages []string) {
	if len(messages) == 0 {
		return
	}
	p.printBox("WARNINGS", "• "+strings.Join(messages, "\n• "))
}

// PrintExperienceBank outputs the stories exported from a record.
func (p *Printer) PrintExperienceBank(bank *types.ExperienceBank) {
	if bank == nil || len(bank.Stories) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Stories: %d\n\n", len(bank.Stories))
	count := min(len(bank.Stories), maxItemsToShow)
	for i := 0; i < count; i++ {
		story := bank.Stories[i]
		fmt.Fprintf(&sb, "%s  %s @ %s\n", story.ID, story.Role, story.Company)
		for _, b := range story.Bullets {
			fmt.Fprintf(&sb, "    [%s] %s\n", b.EvidenceStrength, b.Text)
		}
	}
	writeMore(&sb, len(bank.Stories))

	p.printBox("EXPERIENCE BANK", strings.TrimSuffix(sb.String(), "\n"))
}

func writeField(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(sb, "%-9s %s\n", label+":", value)
}

func writeMore(sb *strings.Builder, total int) {
	if total > maxItemsToShow {
		fmt.Fprintf(sb, "  ... and %d more\n", total-maxItemsToShow)
	}
}
