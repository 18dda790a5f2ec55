package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// skillAliases maps lowercase spellings to a canonical skill name.
var skillAliases = map[string]string{
	"golang":     "Go",
	"go lang":    "Go",
	"javascript": "JavaScript",
	"js":         "JavaScript",
	"typescript": "TypeScript",
	"ts":         "TypeScript",
	"k8s":        "Kubernetes",
	"kubernetes": "Kubernetes",
	"postgres":   "PostgreSQL",
	"postgresql": "PostgreSQL",
	"react.js":   "React",
	"reactjs":    "React",
	"vue.js":     "Vue",
	"vuejs":      "Vue",
	"node.js":    "Node.js",
	"nodejs":     "Node.js",
}

// NormalizeSkillName maps a skill to its canonical spelling. Known aliases
// are looked up case-insensitively; otherwise a single all-lowercase or
// all-uppercase word gets its first letter capitalized and everything else
// is returned trimmed but unchanged.
func NormalizeSkillName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	lower := strings.ToLower(name)
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}
	if strings.ContainsAny(name, " \t") {
		return name
	}

	upper := strings.ToUpper(name)
	switch {
	case name == lower:
		return capitalize(lower)
	case name == upper && utf8.RuneCountInString(name) > 1:
		return capitalize(lower)
	}
	return name
}

// NormalizeSkills canonicalizes names and drops duplicates, keeping the
// first occurrence of each.
func NormalizeSkills(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		canonical := NormalizeSkillName(name)
		if canonical == "" || seen[canonical] {
			continue
		}
		seen[canonical] = true
		out = append(out, canonical)
	}
	return out
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
