package types

// ExperienceBank is the story-oriented view of a work history consumed by
// résumé tailoring tools. Story and bullet IDs are stable across exports of
// the same record.
type ExperienceBank struct {
	Stories []Story `json:"stories"`
}

// Story is one position from the work history.
type Story struct {
	ID        string   `json:"id"`
	Company   string   `json:"company"`
	Role      string   `json:"role"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []Bullet `json:"bullets"`
}

// Bullet is one accomplishment line with the skills and metrics it mentions.
type Bullet struct {
	ID               string   `json:"id"`
	Text             string   `json:"text"`
	Skills           []string `json:"skills"`
	Metrics          string   `json:"metrics,omitempty"`
	LengthChars      int      `json:"length_chars"`
	EvidenceStrength string   `json:"evidence_strength"` // high, medium or low
	RiskFlags        []string `json:"risk_flags"`
}

// BulletCount returns the number of bullets across all stories.
func (b *ExperienceBank) BulletCount() int {
	n := 0
	for _, s := range b.Stories {
		n += len(s.Bullets)
	}
	return n
}
