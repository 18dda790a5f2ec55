package parsing

// Document is the read-only view of segmented résumé text that every field
// extractor receives. It is built once per parse and never mutated.
type Document struct {
	Text   string
	Blocks []Block
	spans  []sectionSpan
}

// NewDocument segments text and classifies its blocks into sections.
func NewDocument(text string) *Document {
	blocks := Segment(text)
	return &Document{
		Text:   text,
		Blocks: blocks,
		spans:  splitSections(blocks),
	}
}

// HasSection reports whether any block header routed to the section.
func (d *Document) HasSection(section Section) bool {
	for _, s := range d.spans {
		if s.section == section {
			return true
		}
	}
	return false
}

// Entries returns the entries of every span of the given section, in document order.
func (d *Document) Entries(section Section) []Entry {
	var entries []Entry
	for _, s := range d.spans {
		if s.section == section {
			entries = append(entries, s.entries...)
		}
	}
	return entries
}

// Lines returns every line of every entry of the section, in document order.
func (d *Document) Lines(section Section) []string {
	var lines []string
	for _, e := range d.Entries(section) {
		lines = append(lines, e.Lines...)
	}
	return lines
}

// ListLines returns the lines of a one-item-per-line section. Only the list
// directly under each header counts: the header block's own lines, or the
// next block when the header stands alone. Later blocks up to the next
// header are not read as list items.
func (d *Document) ListLines(section Section) []string {
	var lines []string
	for _, s := range d.spans {
		if s.section != section || len(s.entries) == 0 {
			continue
		}
		lines = append(lines, s.entries[0].Lines...)
	}
	return lines
}

// Sections returns the classified sections in document order. A section
// that appears twice is listed twice.
func (d *Document) Sections() []Section {
	out := make([]Section, 0, len(d.spans))
	for _, s := range d.spans {
		out = append(out, s.section)
	}
	return out
}
