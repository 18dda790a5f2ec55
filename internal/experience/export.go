package experience

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// metricRe finds the first quantity in a bullet: money, percentages,
// multipliers and plain counts with an optional magnitude suffix.
var metricRe = regexp.MustCompile(`(?i)(?:\$\d|\b\d)[\d,.]*\s?(?:%|x\b|[kmb]\b|\+)?`)

// FromResume turns each experience entry into a story. Story IDs are
// positional (story_001, story_002, ...) and bullet IDs extend them
// (story_001_b01), so the same record always yields the same bank. Bullets
// are the description lines followed by the achievements.
func FromResume(record *types.ResumeRecord) (*types.ExperienceBank, error) {
	bank := &types.ExperienceBank{Stories: []types.Story{}}
	if record == nil {
		return bank, nil
	}

	matchers := skillMatchers(record.Skills)

	for i, exp := range record.Experience {
		story := types.Story{
			ID:        fmt.Sprintf("story_%03d", i+1),
			Company:   exp.Company,
			Role:      exp.Title,
			StartDate: exp.StartDate,
			EndDate:   exp.EndDate,
			Bullets:   []types.Bullet{},
		}
		if exp.Current && story.EndDate == "" {
			story.EndDate = "present"
		}

		lines := make([]string, 0, len(exp.Description)+len(exp.Achievements))
		lines = append(lines, exp.Description...)
		lines = append(lines, exp.Achievements...)

		for _, text := range lines {
			text = strings.TrimSpace(text)
			if text == "" {
				continue
			}
			story.Bullets = append(story.Bullets, newBullet(
				fmt.Sprintf("%s_b%02d", story.ID, len(story.Bullets)+1),
				text,
				matchers,
			))
		}
		bank.Stories = append(bank.Stories, story)
	}

	if err := NormalizeExperienceBank(bank); err != nil {
		return nil, err
	}
	return bank, nil
}

func newBullet(id, text string, matchers []skillMatcher) types.Bullet {
	b := types.Bullet{
		ID:        id,
		Text:      text,
		Skills:    []string{},
		Metrics:   strings.TrimRight(strings.TrimSpace(metricRe.FindString(text)), ".,"),
		RiskFlags: []string{},
	}
	for _, m := range matchers {
		if m.re.MatchString(text) {
			b.Skills = append(b.Skills, m.skill)
		}
	}

	switch {
	case b.Metrics != "":
		b.EvidenceStrength = EvidenceHigh
	case len(b.Skills) > 0:
		b.EvidenceStrength = EvidenceMedium
	default:
		b.EvidenceStrength = EvidenceLow
	}
	return b
}

type skillMatcher struct {
	skill string
	re    *regexp.Regexp
}

// skillMatchers compiles a whole-word, case-insensitive matcher per skill item.
func skillMatchers(groups []types.SkillGroup) []skillMatcher {
	var out []skillMatcher
	seen := make(map[string]bool)
	for _, g := range groups {
		for _, item := range g.Items {
			item = strings.TrimSpace(item)
			key := strings.ToLower(item)
			if item == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, skillMatcher{
				skill: item,
				re:    regexp.MustCompile(`(?i)(?:^|[^\pL\pN])` + regexp.QuoteMeta(item) + `(?:$|[^\pL\pN])`),
			})
		}
	}
	return out
}
