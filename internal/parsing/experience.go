package parsing

import (
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/types"
)

// ExperienceExtractor reads each entry under an experience header as
// line 1 = title, line 2 = company, remaining lines = description.
// Dates embedded in the title or company lines are left in place; the
// date fields stay empty.
type ExperienceExtractor struct{}

// Name implements FieldExtractor
func (ExperienceExtractor) Name() string { return "experience" }

// Extract implements FieldExtractor
func (ExperienceExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, entry := range doc.Entries(SectionExperience) {
		// An entry without a company line does not describe a position.
		if len(entry.Lines) < 2 {
			continue
		}
		partial.Experience = append(partial.Experience, types.Experience{
			Title:       entry.Lines[0],
			Company:     entry.Lines[1],
			Description: bulletTexts(entry.Lines[2:]),
		})
	}
	return partial
}

// EducationExtractor mirrors ExperienceExtractor: line 1 = degree,
// line 2 = institution, remaining lines joined into the description.
type EducationExtractor struct{}

// Name implements FieldExtractor
func (EducationExtractor) Name() string { return "education" }

// Extract implements FieldExtractor
func (EducationExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, entry := range doc.Entries(SectionEducation) {
		if len(entry.Lines) < 2 {
			continue
		}
		partial.Education = append(partial.Education, types.Education{
			Degree:      entry.Lines[0],
			Institution: entry.Lines[1],
			Description: joinLines(bulletTexts(entry.Lines[2:])),
		})
	}
	return partial
}

// VolunteerExtractor reads line 1 = role, line 2 = organization, remaining
// lines = description.
type VolunteerExtractor struct{}

// Name implements FieldExtractor
func (VolunteerExtractor) Name() string { return "volunteer" }

// Extract implements FieldExtractor
func (VolunteerExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, entry := range doc.Entries(SectionVolunteer) {
		if len(entry.Lines) < 2 {
			continue
		}
		partial.Volunteer = append(partial.Volunteer, types.VolunteerEntry{
			Role:         entry.Lines[0],
			Organization: entry.Lines[1],
			Description:  bulletTexts(entry.Lines[2:]),
		})
	}
	return partial
}

// ProjectsExtractor reads line 1 = project name. Bullet lines become
// achievements and the other lines are joined into the description.
type ProjectsExtractor struct{}

// Name implements FieldExtractor
func (ProjectsExtractor) Name() string { return "projects" }

// Extract implements FieldExtractor
func (ProjectsExtractor) Extract(doc *Document) *types.ResumeRecord {
	partial := &types.ResumeRecord{}
	for _, entry := range doc.Entries(SectionProjects) {
		project := types.Project{Name: entry.Lines[0]}
		var description []string
		for _, line := range entry.Lines[1:] {
			if ingestion.IsBulletLine(line) {
				project.Achievements = append(project.Achievements, ingestion.StripBullet(line))
				continue
			}
			description = append(description, line)
		}
		project.Description = joinLines(description)
		partial.Projects = append(partial.Projects, project)
	}
	return partial
}
