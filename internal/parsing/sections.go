package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/ingestion"
)

// Section identifies a résumé section a block can be routed to.
type Section string

const (
	SectionVolunteer      Section = "volunteer"
	SectionExperience     Section = "experience"
	SectionEducation      Section = "education"
	SectionSkills         Section = "skills"
	SectionProjects       Section = "projects"
	SectionCertifications Section = "certifications"
	SectionPublications   Section = "publications"
	SectionAwards         Section = "awards"
	SectionLanguages      Section = "languages"
	SectionSummary        Section = "summary"
)

// maxHeaderWords bounds how long a line may be and still count as a header.
const maxHeaderWords = 5

type sectionRule struct {
	section Section
	pattern *regexp.Regexp
}

// sectionRules is evaluated top to bottom and the first match wins, so a
// header names at most one section. Volunteer precedes experience so that
// "Volunteer Experience" is not read as work history, and skills precedes
// languages so that "Programming Languages" is read as skills.
var sectionRules = []sectionRule{
	{SectionVolunteer, regexp.MustCompile(`(?i)volunteer`)},
	{SectionExperience, regexp.MustCompile(`(?i)experience|work history|employment`)},
	{SectionEducation, regexp.MustCompile(`(?i)education|academic`)},
	{SectionSkills, regexp.MustCompile(`(?i)skills|technologies|programming languages|tech stack`)},
	{SectionProjects, regexp.MustCompile(`(?i)projects`)},
	{SectionCertifications, regexp.MustCompile(`(?i)certification|licenses`)},
	{SectionPublications, regexp.MustCompile(`(?i)publications`)},
	{SectionAwards, regexp.MustCompile(`(?i)awards|honors|honours`)},
	{SectionLanguages, regexp.MustCompile(`(?i)languages`)},
	{SectionSummary, regexp.MustCompile(`(?i)summary|objective|profile|about me`)},
}

// ClassifyHeader routes a block header line to a section. Matching is
// case-insensitive and substring based. Bullet lines and lines longer than a
// few words are never headers.
func ClassifyHeader(line string) (Section, bool) {
	line = strings.TrimSpace(line)
	if line == "" || ingestion.IsBulletLine(line) {
		return "", false
	}
	if len(strings.Fields(line)) > maxHeaderWords {
		return "", false
	}
	for _, rule := range sectionRules {
		if rule.pattern.MatchString(line) {
			return rule.section, true
		}
	}
	return "", false
}

// Entry is one unit inside a section: the lines of a single sub-block.
type Entry struct {
	Lines []string
}

// headerQualifiers are the words a header may carry besides its section
// keywords, as in "Professional Experience" or "Honors and Awards".
var headerQualifiers = map[string]bool{
	"work": true, "professional": true, "relevant": true, "selected": true,
	"technical": true, "core": true, "key": true, "career": true, "personal": true,
	"additional": true, "other": true, "recent": true, "industry": true,
	"history": true, "background": true, "training": true, "tools": true,
	"programming": true, "tech": true, "stack": true, "about": true, "me": true,
	"and": true, "&": true, "/": true, "of": true,
}

// IsStandaloneHeader reports whether line is a header and nothing else:
// every word is either a section keyword or a qualifier. An entry line such
// as "Customer Experience Manager" or "Master of Education" classifies as a
// header but is not a standalone one.
func IsStandaloneHeader(line string) bool {
	if _, ok := ClassifyHeader(line); !ok {
		return false
	}
	for _, word := range strings.Fields(strings.ToLower(line)) {
		word = strings.Trim(word, ",:;()")
		if word == "" || headerQualifiers[word] || matchesAnyRule(word) {
			continue
		}
		return false
	}
	return true
}

func matchesAnyRule(word string) bool {
	for _, rule := range sectionRules {
		if rule.pattern.MatchString(word) {
			return true
		}
	}
	return false
}

// sectionSpan is a classified run of blocks: the header block and every
// following block up to the next header.
type sectionSpan struct {
	section Section
	entries []Entry
}

// splitSections walks the blocks in order. Lines under the header in the
// header block form the first entry; each following block is one more entry.
// Before the first section any classified block opens one; after that only a
// standalone header does, so an entry titled "Customer Experience Manager"
// stays inside the section it belongs to.
func splitSections(blocks []Block) []sectionSpan {
	var spans []sectionSpan
	var current *sectionSpan

	for _, b := range blocks {
		section, ok := ClassifyHeader(b.Header())
		if ok && (current == nil || IsStandaloneHeader(b.Header())) {
			spans = append(spans, sectionSpan{section: section})
			current = &spans[len(spans)-1]
			if body := b.Body(); len(body) > 0 {
				current.entries = append(current.entries, Entry{Lines: body})
			}
			continue
		}
		if current != nil {
			current.entries = append(current.entries, Entry{Lines: b.Lines})
		}
	}
	return spans
}
