package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	// North American grouping: optional country code, optional parenthesized
	// area code, and '.', '-' or space between groups.
	phoneRe    = regexp.MustCompile(`(\+\d{1,2}\s?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	linkedInRe = regexp.MustCompile(`(?i)(?:https?://)?(?:[a-z]{2,3}\.)?linkedin\.com/in/[\w%-]+/?`)
	gitHubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[a-z0-9](?:[a-z0-9-]*[a-z0-9])?`)
	urlRe      = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s,;|<>()]+`)
)

// ContactExtractor finds email, phone and profile links by pattern. The
// first match of each pattern wins and nothing beyond the pattern shape is
// validated.
type ContactExtractor struct{}

// Name implements FieldExtractor
func (ContactExtractor) Name() string { return "contact" }

// Extract implements FieldExtractor
func (ContactExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	p := &partial.Personal

	p.Email = emailRe.FindString(doc.Text)
	p.Phone = strings.TrimSpace(phoneRe.FindString(doc.Text))
	p.LinkedIn = strings.TrimRight(linkedInRe.FindString(doc.Text), "/")
	p.GitHub = gitHubRe.FindString(doc.Text)
	p.Website = firstWebsite(doc.Text)

	return partial
}

// firstWebsite returns the first URL that is not a LinkedIn or GitHub profile.
func firstWebsite(text string) string {
	for _, u := range urlRe.FindAllString(text, -1) {
		u = strings.TrimRight(u, ".,:;!?")
		lower := strings.ToLower(u)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		return u
	}
	return ""
}

// NameExtractor takes the first line of the first block as the candidate's
// name unless that line is really a contact line.
type NameExtractor struct{}

// Name implements FieldExtractor
func (NameExtractor) Name() string { return "name" }

// Extract implements FieldExtractor
func (NameExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	if len(doc.Blocks) == 0 {
		return partial
	}
	candidate := doc.Blocks[0].Header()
	if strings.Contains(candidate, "@") || phoneRe.MatchString(candidate) {
		return partial
	}
	partial.Personal.Name = candidate
	return partial
}
