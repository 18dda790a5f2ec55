// Package parsing turns linear résumé text into a types.ResumeRecord using
// conservative heuristics: a field is filled only when a regular expression,
// a header keyword or a fixed line position clearly identifies it.
package parsing

import (
	"github.com/jonathan/resume-parser/internal/types"
)

// FieldExtractor produces one facet of a résumé record. Extractors share no
// state, never fail, and return a partial record holding only their facet;
// a facet with no evidence is simply left empty.
type FieldExtractor interface {
	Name() string
	Extract(doc *Document) *types.ResumeRecord
}

// DefaultExtractors returns the built-in extractors in assembly order.
func DefaultExtractors() []FieldExtractor {
	return []FieldExtractor{
		NameExtractor{},
		ContactExtractor{},
		SummaryExtractor{},
		ExperienceExtractor{},
		EducationExtractor{},
		SkillsExtractor{},
		ProjectsExtractor{},
		CertificationsExtractor{},
		LanguagesExtractor{},
		PublicationsExtractor{},
		AwardsExtractor{},
		VolunteerExtractor{},
	}
}

// ParseText runs the default extractors over text and assembles the record.
func ParseText(text string) *types.ResumeRecord {
	return ParseDocument(NewDocument(text), DefaultExtractors()...)
}

// ParseDocument runs the given extractors over doc and assembles their output.
func ParseDocument(doc *Document, extractors ...FieldExtractor) *types.ResumeRecord {
	partials := make([]*types.ResumeRecord, 0, len(extractors))
	for _, e := range extractors {
		partials = append(partials, e.Extract(doc))
	}
	return Assemble(partials...)
}

// Assemble merges partial records into a complete one. For string fields the
// first non-empty value wins; list fields are concatenated in argument order.
// The result always has every list field initialized.
func Assemble(partials ...*types.ResumeRecord) *types.ResumeRecord {
	record := &types.ResumeRecord{}
	for _, p := range partials {
		if p == nil {
			continue
		}
		mergePersonal(&record.Personal, p.Personal)
		record.Experience = append(record.Experience, p.Experience...)
		record.Education = append(record.Education, p.Education...)
		record.Skills = append(record.Skills, p.Skills...)
		record.Projects = append(record.Projects, p.Projects...)
		record.Certifications = append(record.Certifications, p.Certifications...)
		record.Languages = append(record.Languages, p.Languages...)
		record.Publications = append(record.Publications, p.Publications...)
		record.Awards = append(record.Awards, p.Awards...)
		record.Volunteer = append(record.Volunteer, p.Volunteer...)
	}
	record.FillDefaults()
	return record
}

func mergePersonal(dst *types.Personal, src types.Personal) {
	setIfEmpty(&dst.Name, src.Name)
	setIfEmpty(&dst.Email, src.Email)
	setIfEmpty(&dst.Phone, src.Phone)
	setIfEmpty(&dst.Location, src.Location)
	setIfEmpty(&dst.Website, src.Website)
	setIfEmpty(&dst.LinkedIn, src.LinkedIn)
	setIfEmpty(&dst.GitHub, src.GitHub)
	setIfEmpty(&dst.Summary, src.Summary)
}

func setIfEmpty(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}
