package scandown

import "strings"

// Alignment of a table column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// splitRow splits a table row on '|', dropping the outer pipes.
func splitRow(line string) []string {
	cells := strings.Split(strings.Trim(strings.TrimSpace(line), "|"), "|")
	for i, cell := range cells {
		cells[i] = strings.TrimSpace(cell)
	}
	return cells
}

func parseAlignments(line string) []Alignment {
	cells := splitRow(line)
	aligns := make([]Alignment, len(cells))
	for i, cell := range cells {
		switch {
		case strings.HasPrefix(cell, ":") && strings.HasSuffix(cell, ":"):
			aligns[i] = AlignCenter
		case strings.HasSuffix(cell, ":"):
			aligns[i] = AlignRight
		}
	}
	return aligns
}

// table renders a header row, the delimiter row below it, and every
// following non-blank line containing a pipe. Cell counts are never checked
// against the header; cells past the delimiter row align left.
func (p *parser) table(lines []string, i int) (Block, string) {
	header := splitRow(lines[i])
	aligns := parseAlignments(lines[i+1])

	var sb strings.Builder
	sb.WriteString("<table>\n  <thead>\n    <tr>\n")
	writeCells(&sb, "th", header, aligns)
	sb.WriteString("\n    </tr>\n  </thead>\n  <tbody>\n")

	j := i + 2
	for ; j < len(lines) && strings.ContainsRune(lines[j], '|') && !isBlank(lines[j]); j++ {
		if j > i+2 {
			sb.WriteByte('\n')
		}
		sb.WriteString("    <tr>\n")
		writeCells(&sb, "td", splitRow(lines[j]), aligns)
		sb.WriteString("\n    </tr>")
	}
	sb.WriteString("\n  </tbody>\n</table>")

	return Block{Type: Table, Delim: '|', Width: len(header), Start: i, End: j}, sb.String()
}

func writeCells(sb *strings.Builder, tag string, cells []string, aligns []Alignment) {
	for k, cell := range cells {
		align := AlignLeft
		if k < len(aligns) {
			align = aligns[k]
		}
		if k > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("      <" + tag + ` style="text-align:` + align.String() + `">`)
		sb.WriteString(Inline(cell))
		sb.WriteString("</" + tag + ">")
	}
}
