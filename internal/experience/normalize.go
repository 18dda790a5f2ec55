package experience

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// Evidence strengths a bullet may carry.
const (
	EvidenceHigh   = "high"
	EvidenceMedium = "medium"
	EvidenceLow    = "low"
)

// NormalizeExperienceBank canonicalizes skills, fills missing lengths and
// checks evidence strengths, in that order.
func NormalizeExperienceBank(bank *types.ExperienceBank) error {
	NormalizeSkills(bank)
	ComputeLengthChars(bank)
	return ValidateEvidenceStrength(bank)
}

// NormalizeSkills canonicalizes and deduplicates the skills of every bullet.
func NormalizeSkills(bank *types.ExperienceBank) {
	forEachBullet(bank, func(_ *types.Story, b *types.Bullet) {
		b.Skills = parsing.NormalizeSkills(b.Skills)
	})
}

// ComputeLengthChars sets LengthChars to the rune count of the text when it is unset.
func ComputeLengthChars(bank *types.ExperienceBank) {
	forEachBullet(bank, func(_ *types.Story, b *types.Bullet) {
		if b.LengthChars == 0 {
			b.LengthChars = utf8.RuneCountInString(b.Text)
		}
	})
}

// ValidateEvidenceStrength lowercases every evidence strength and rejects
// values other than high, medium and low.
func ValidateEvidenceStrength(bank *types.ExperienceBank) error {
	var firstErr error
	forEachBullet(bank, func(s *types.Story, b *types.Bullet) {
		if firstErr != nil {
			return
		}
		strength := strings.ToLower(b.EvidenceStrength)
		switch strength {
		case EvidenceHigh, EvidenceMedium, EvidenceLow:
			b.EvidenceStrength = strength
		default:
			firstErr = &NormalizationError{
				StoryID:  s.ID,
				BulletID: b.ID,
				Message:  "invalid evidence_strength '" + b.EvidenceStrength + "'",
			}
		}
	})
	return firstErr
}

func forEachBullet(bank *types.ExperienceBank, fn func(*types.Story, *types.Bullet)) {
	for i := range bank.Stories {
		story := &bank.Stories[i]
		for j := range story.Bullets {
			fn(story, &story.Bullets[j])
		}
	}
}
