package scandown

import (
	"strconv"
	"strings"
)

// TOC renders headings as a flat list of anchor links, indenting each item
// by its level for readability without enforcing any nesting. Returns ""
// for no headings.
func TOC(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(`<ul class="toc-list">`)
	for _, h := range headings {
		level := strconv.Itoa(h.Level)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat("  ", h.Level-1))
		sb.WriteString(`<li class="toc-h` + level + `"><a href="#` + h.Slug + `">`)
		sb.WriteString(h.HTML)
		sb.WriteString("</a></li>")
	}
	sb.WriteString("\n</ul>")
	return sb.String()
}
