package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// TechnicalSkillsCategory labels the single skill group the skills extractor produces.
const TechnicalSkillsCategory = "Technical Skills"

// SkillsExtractor treats every non-empty line of the list under a skills
// header as one skill, in document order.
type SkillsExtractor struct{}

// Name implements FieldExtractor
func (SkillsExtractor) Name() string { return "skills" }

// Extract implements FieldExtractor
func (SkillsExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	items := bulletTexts(doc.ListLines(SectionSkills))
	if len(items) == 0 {
		return partial
	}
	partial.Skills = []types.SkillGroup{{
		Category: TechnicalSkillsCategory,
		Items:    items,
	}}
	return partial
}

// CertificationsExtractor reads one certification name per line.
type CertificationsExtractor struct{}

// Name implements FieldExtractor
func (CertificationsExtractor) Name() string { return "certifications" }

// Extract implements FieldExtractor
func (CertificationsExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, line := range bulletTexts(doc.ListLines(SectionCertifications)) {
		partial.Certifications = append(partial.Certifications, types.Certification{Name: line})
	}
	return partial
}

// PublicationsExtractor reads one publication title per line.
type PublicationsExtractor struct{}

// Name implements FieldExtractor
func (PublicationsExtractor) Name() string { return "publications" }

// Extract implements FieldExtractor
func (PublicationsExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, line := range bulletTexts(doc.ListLines(SectionPublications)) {
		partial.Publications = append(partial.Publications, types.Publication{Title: line})
	}
	return partial
}

// AwardsExtractor reads one award title per line.
type AwardsExtractor struct{}

// Name implements FieldExtractor
func (AwardsExtractor) Name() string { return "awards" }

// Extract implements FieldExtractor
func (AwardsExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, line := range bulletTexts(doc.ListLines(SectionAwards)) {
		partial.Awards = append(partial.Awards, types.Award{Title: line})
	}
	return partial
}

// languageLineRe splits "Spanish - Fluent", "Spanish: Fluent", "Spanish – Fluent"
// and "Spanish (Fluent)".
var languageLineRe = regexp.MustCompile(`^(.+?)(?:\s*:\s*(.+)|\s+[-–—]\s+(.+)|\s*\((.+)\))$`)

// LanguagesExtractor reads one language per line, splitting off a
// proficiency only when an explicit separator is present.
type LanguagesExtractor struct{}

// Name implements FieldExtractor
func (LanguagesExtractor) Name() string { return "languages" }

// Extract implements FieldExtractor
func (LanguagesExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, line := range bulletTexts(doc.ListLines(SectionLanguages)) {
		partial.Languages = append(partial.Languages, parseLanguage(line))
	}
	return partial
}

func parseLanguage(line string) types.Language {
	m := languageLineRe.FindStringSubmatch(line)
	if m == nil {
		return types.Language{Language: line}
	}
	var proficiency string
	for _, group := range m[2:] {
		if group != "" {
			proficiency = group
			break
		}
	}
	return types.Language{
		Language:    strings.TrimSpace(m[1]),
		Proficiency: strings.TrimSpace(proficiency),
	}
}

// SummaryExtractor joins the lines under a summary header into one paragraph.
type SummaryExtractor struct{}

// Name implements FieldExtractor
func (SummaryExtractor) Name() string { return "summary" }

// Extract implements FieldExtractor
func (SummaryExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	partial.Personal.Summary = joinLines(doc.Lines(SectionSummary))
	return partial
}

// bulletTexts strips list markers and drops empty lines.
func bulletTexts(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if text := ingestion.StripBullet(line); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func joinLines(lines []string) string {
	return strings.Join(lines, " ")
}
