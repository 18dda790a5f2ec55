package parsing

import (
	"regexp"
	"strings"
)

// blockBoundaryRe matches two or more line breaks, ignoring whitespace-only lines.
var blockBoundaryRe = regexp.MustCompile(`\n(?:[ \t]*\n)+`)

// Block is a contiguous run of non-blank lines.
// Résumés that separate sections with a single line break come out as one
// large block; that loss is accepted rather than guessed around.
type Block struct {
	Lines []string
}

// Header returns the first line of the block.
func (b Block) Header() string {
	if len(b.Lines) == 0 {
		return ""
	}
	return b.Lines[0]
}

// Body returns every line after the header.
func (b Block) Body() []string {
	if len(b.Lines) < 2 {
		return nil
	}
	return b.Lines[1:]
}

// Segment splits text into blocks at blank-line boundaries. Lines are trimmed
// and blocks with no content are dropped.
func Segment(text string) []Block {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	parts := blockBoundaryRe.Split(text, -1)

	blocks := make([]Block, 0, len(parts))
	for _, part := range parts {
		var lines []string
		for _, line := range strings.Split(part, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, Block{Lines: lines})
		}
	}
	return blocks
}
