// Package types defines the records produced by the résumé parser and the experience-bank format derived from them.
//
//nolint:revive // types is a standard Go package name pattern
package types

// ResumeRecord is the structured result of parsing a résumé document.
// Every list field is non-nil once the record has been through FillDefaults.
type ResumeRecord struct {
	Personal       Personal         `json:"personal"`
	Experience     []Experience     `json:"experience"`
	Education      []Education      `json:"education"`
	Skills         []SkillGroup     `json:"skills"`
	Projects       []Project        `json:"projects"`
	Certifications []Certification  `json:"certifications"`
	Languages      []Language       `json:"languages"`
	Publications   []Publication    `json:"publications"`
	Awards         []Award          `json:"awards"`
	Volunteer      []VolunteerEntry `json:"volunteer"`
}

// Personal holds identity and contact fields
type Personal struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Summary  string `json:"summary"`
}

// Experience is one position in the work history.
// When Current is true EndDate stays empty and reads as "present".
type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
}

// Education is one degree or program
type Education struct {
	Degree      string   `json:"degree"`
	Institution string   `json:"institution"`
	Location    string   `json:"location"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	GPA         string   `json:"gpa"`
	Honors      []string `json:"honors"`
	Courses     []string `json:"courses"`
	Description string   `json:"description"`
}

// SkillGroup is a labelled list of skills
type SkillGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Project is a personal or professional project
type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link"`
	Dates        string   `json:"dates"`
	Current      bool     `json:"current"`
	Achievements []string `json:"achievements"`
}

// Certification is a professional certification
type Certification struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	Date       string `json:"date"`
	Expiration string `json:"expiration"`
	ID         string `json:"id"`
	URL        string `json:"url"`
}

// Language is a spoken language with its proficiency
type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency"`
}

// Publication is a published work
type Publication struct {
	Title       string   `json:"title"`
	Publisher   string   `json:"publisher"`
	Date        string   `json:"date"`
	Authors     []string `json:"authors"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
}

// Award is an honor or award
type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// VolunteerEntry is one volunteer role
type VolunteerEntry struct {
	Organization string   `json:"organization"`
	Role         string   `json:"role"`
	Dates        string   `json:"dates"`
	Current      bool     `json:"current"`
	Description  []string `json:"description"`
}

// NewResumeRecord returns an empty record with every list field initialized.
func NewResumeRecord() *ResumeRecord {
	r := &ResumeRecord{}
	r.FillDefaults()
	return r
}

// FillDefaults replaces every nil slice in the record, including nested ones,
// with an empty slice so consumers can iterate without nil checks.
func (r *ResumeRecord) FillDefaults() {
	r.Experience = orEmpty(r.Experience)
	for i := range r.Experience {
		e := &r.Experience[i]
		e.Description = orEmpty(e.Description)
		e.Achievements = orEmpty(e.Achievements)
		e.Technologies = orEmpty(e.Technologies)
	}

	r.Education = orEmpty(r.Education)
	for i := range r.Education {
		e := &r.Education[i]
		e.Honors = orEmpty(e.Honors)
		e.Courses = orEmpty(e.Courses)
	}

	r.Skills = orEmpty(r.Skills)
	for i := range r.Skills {
		r.Skills[i].Items = orEmpty(r.Skills[i].Items)
	}

	r.Projects = orEmpty(r.Projects)
	for i := range r.Projects {
		p := &r.Projects[i]
		p.Technologies = orEmpty(p.Technologies)
		p.Achievements = orEmpty(p.Achievements)
	}

	r.Certifications = orEmpty(r.Certifications)
	r.Languages = orEmpty(r.Languages)

	r.Publications = orEmpty(r.Publications)
	for i := range r.Publications {
		r.Publications[i].Authors = orEmpty(r.Publications[i].Authors)
	}

	r.Awards = orEmpty(r.Awards)

	r.Volunteer = orEmpty(r.Volunteer)
	for i := range r.Volunteer {
		r.Volunteer[i].Description = orEmpty(r.Volunteer[i].Description)
	}
}

// IsEmpty reports whether no facet of the record was populated.
func (r *ResumeRecord) IsEmpty() bool {
	return r.Personal == (Personal{}) &&
		len(r.Experience) == 0 &&
		len(r.Education) == 0 &&
		len(r.Skills) == 0 &&
		len(r.Projects) == 0 &&
		len(r.Certifications) == 0 &&
		len(r.Languages) == 0 &&
		len(r.Publications) == 0 &&
		len(r.Awards) == 0 &&
		len(r.Volunteer) == 0
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
