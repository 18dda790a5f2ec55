// Package ingestion normalizes text recovered from uploaded documents and
// describes each parsed upload with metadata.
package ingestion

import (
	"regexp"
	"strings"
)

var (
	innerSpaceRe   = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRunRe = regexp.MustCompile(`\n{3,}`)
)

// CleanText normalizes extracted text while keeping its line structure.
// Blank lines survive (runs are reduced to a single blank line) so that
// paragraph boundaries are still visible to the segmenter.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// 1. Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// 2. Non-breaking and zero-width spaces show up in PDF and DOCX output
	content = strings.ReplaceAll(content, "\u00a0", " ")
	content = strings.ReplaceAll(content, "\u200b", "")
	content = strings.ReplaceAll(content, "\ufeff", "")

	// 3. Process each line
	lines := strings.Split(content, "\n")
	cleanedLines := make([]string, 0, len(lines))
	for _, line := range lines {
		cleanedLines = append(cleanedLines, cleanLine(line))
	}

	// 4. Join lines and reduce blank-line runs
	result := strings.Join(cleanedLines, "\n")
	result = blankLineRunRe.ReplaceAllString(result, "\n\n")

	return strings.TrimSpace(result)
}

// cleanLine collapses runs of spaces and tabs and trims the line.
// A whitespace-only line becomes empty.
func cleanLine(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	return innerSpaceRe.ReplaceAllString(trimmed, " ")
}

// IsBulletLine checks if a line starts with a list marker
func IsBulletLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// StripBullet removes a leading list marker, if any
func StripBullet(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	for _, marker := range bulletMarkers {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, marker))
		}
	}
	return strings.TrimSpace(line)
}

var bulletMarkers = []string{"- ", "* ", "• ", "· ", "▪ ", "◦ ", "– "}
