package blogmark

import "strings"

// FormatTOC renders sections as a nested Markdown list of anchor links,
// suitable for prepending to a draft as a table of contents.
// Nesting is relative to the shallowest heading present.
func FormatTOC(sections []Section) string {
	if len(sections) == 0 {
		return ""
	}

	minLevel := sections[0].Level
	for _, s := range sections[1:] {
		if s.Level < minLevel {
			minLevel = s.Level
		}
	}

	var sb strings.Builder
	for _, s := range sections {
		sb.WriteString(strings.Repeat("  ", s.Level-minLevel))
		sb.WriteString("- [" + s.Title + "](#" + s.Anchor + ")\n")
	}

	return sb.String()
}
