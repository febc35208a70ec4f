package scandown

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// BlockType classifies a run of document lines.
type BlockType int

const (
	noBlock BlockType = iota
	ATXHeading
	Codefence
	Blockquote
	List
	OrderedList
	Table
	Ruler
	Paragraph
)

// Block records one classified run of lines, the half-open range
// [Start, End) of the lines it consumed.
type Block struct {
	Type  BlockType
	Delim byte // leading marker byte, e.g. '#', '`', '>', '-', '|'
	Width int  // heading level, list item count, or table column count
	Start int
	End   int
	Info  string  // code fence language tag
	Quote []Block // blocks of a blockquote's nested document
}

// space matches Unicode whitespace, beyond the ASCII-only \s: ideographic and
// no-break spaces separate markers from text as well as ' ' does.
const space = `\s\p{Z}\x0b\x1c-\x1f\x85`

var (
	atxPattern       = regexp.MustCompile(`^(#{1,6})[` + space + `]+(.+)$`)
	bulletPattern    = regexp.MustCompile(`^[` + space + `]*([-*+])[` + space + `]+`)
	ordinalPattern   = regexp.MustCompile(`^[` + space + `]*\p{Nd}+\.[` + space + `]+`)
	delimiterPattern = regexp.MustCompile(`^[` + space + `|:-]+$`)
	quotePattern     = regexp.MustCompile(`^>[` + space + `]?`)
)

func isBlank(line string) bool { return len(strings.TrimSpace(line)) == 0 }

func isFence(line string) bool { return strings.HasPrefix(strings.TrimSpace(line), "```") }

func isQuote(line string) bool { return strings.HasPrefix(strings.TrimSpace(line), ">") }

func isHeading(line string) bool { return atxPattern.MatchString(line) }

func isBullet(line string) bool { return bulletPattern.MatchString(line) }

func isOrdinal(line string) bool { return ordinalPattern.MatchString(line) }

// isRuler matches lines made only of '-', '*' or '_' marks and whitespace,
// with at least 3 marks.
func isRuler(line string) bool {
	marks := 0
	for _, r := range line {
		switch {
		case r == '-', r == '*', r == '_':
			marks++
		case unicode.IsSpace(r):
		default:
			return false
		}
	}
	return marks >= 3
}

func isTable(lines []string, i int) bool {
	return strings.ContainsRune(lines[i], '|') &&
		i+1 < len(lines) &&
		delimiterPattern.MatchString(lines[i+1])
}

// classify picks the block type started by lines[i]; first match wins.
func classify(lines []string, i int) BlockType {
	line := lines[i]
	switch {
	case isFence(line):
		return Codefence
	case isHeading(line):
		return ATXHeading
	case isRuler(line):
		return Ruler
	case isQuote(line):
		return Blockquote
	case isBullet(line):
		return List
	case isOrdinal(line):
		return OrderedList
	case isTable(lines, i):
		return Table
	default:
		return Paragraph
	}
}

// interruptsParagraph reports whether line starts a block that ends a
// running paragraph.
func interruptsParagraph(line string) bool {
	return isHeading(line) ||
		isQuote(line) ||
		isFence(line) ||
		isBullet(line) ||
		isOrdinal(line) ||
		isRuler(line)
}

func (p *parser) heading(lines []string, i int) (Block, string) {
	m := atxPattern.FindStringSubmatch(lines[i])
	h := p.headings.Add(len(m[1]), strings.TrimSpace(m[2]))
	return Block{Type: ATXHeading, Delim: '#', Width: h.Level, Start: i, End: i + 1},
		"<h" + strconv.Itoa(h.Level) + ` id="` + h.Slug + `">` + h.HTML + "</h" + strconv.Itoa(h.Level) + ">"
}

func (p *parser) ruler(lines []string, i int) (Block, string) {
	delim := strings.TrimSpace(lines[i])[0]
	return Block{Type: Ruler, Delim: delim, Start: i, End: i + 1}, "<hr>"
}

func (p *parser) codeFence(lines []string, i int) (Block, string) {
	b := Block{Type: Codefence, Delim: '`', Start: i}
	b.Info = strings.TrimSpace(strings.TrimSpace(lines[i])[3:])

	var sb strings.Builder
	sb.WriteString("<pre><code")
	if b.Info != "" {
		sb.WriteString(` class="language-` + b.Info + `"`)
	}
	sb.WriteString(">")

	j := i + 1
	for first := true; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "```" {
			j++
			break
		}
		if !first {
			sb.WriteByte('\n')
		}
		first = false
		sb.WriteString(escapeHTML(lines[j]))
	}
	sb.WriteString("</code></pre>")

	b.End = j
	return b, sb.String()
}

func (p *parser) blockQuote(lines []string, i int) (Block, string) {
	j := i
	var body []string
	for ; j < len(lines) && isQuote(lines[j]); j++ {
		body = append(body, quotePattern.ReplaceAllString(strings.TrimLeftFunc(lines[j], unicode.IsSpace), ""))
	}

	// nested documents accumulate their own headings
	inner := Parse(strings.Join(body, "\n"))

	return Block{Type: Blockquote, Delim: '>', Start: i, End: j, Quote: inner.Blocks},
		"<blockquote>\n" + inner.HTML + "\n</blockquote>"
}

func (p *parser) bulletList(lines []string, i int) (Block, string) {
	b, items := p.listItems(lines, i, bulletPattern)
	b.Type = List
	b.Delim = bulletPattern.FindStringSubmatch(lines[i])[1][0]
	return b, "<ul>\n" + items + "\n</ul>"
}

func (p *parser) orderedList(lines []string, i int) (Block, string) {
	b, items := p.listItems(lines, i, ordinalPattern)
	b.Type = OrderedList
	b.Delim = '.'
	return b, "<ol>\n" + items + "\n</ol>"
}

// listItems consumes flat items while lines match marker, stripping it.
func (p *parser) listItems(lines []string, i int, marker *regexp.Regexp) (Block, string) {
	var sb strings.Builder
	j := i
	for ; j < len(lines) && marker.MatchString(lines[j]); j++ {
		if j > i {
			sb.WriteByte('\n')
		}
		sb.WriteString("  <li>")
		sb.WriteString(Inline(marker.ReplaceAllString(lines[j], "")))
		sb.WriteString("</li>")
	}
	return Block{Start: i, End: j, Width: j - i}, sb.String()
}

func (p *parser) paragraph(lines []string, i int) (Block, string) {
	j := i + 1
	for ; j < len(lines); j++ {
		if isBlank(lines[j]) || interruptsParagraph(lines[j]) {
			break
		}
	}
	return Block{Type: Paragraph, Start: i, End: j},
		"<p>" + Inline(strings.Join(lines[i:j], " ")) + "</p>"
}
