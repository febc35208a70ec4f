// Package scandown converts a restricted Markdown dialect into HTML fragments
// and collects the heading outline needed for a table of contents.
//
// Documents are split into lines and scanned by a cursor; at every non-blank
// line the first matching block recognizer (code fence, ATX heading, ruler,
// blockquote, bullet list, ordered list, table, paragraph) consumes its run of
// lines. Text content of everything but code is then passed through an
// ordered list of inline substitution rules, see Inline.
//
// Malformed input never fails: every string produces some HTML.
package scandown

import "strings"

// Document is the result of parsing one Markdown text.
type Document struct {
	HTML     string
	Headings []Heading
	Blocks   []Block
}

// TOC returns the table of contents list for the document's headings, or
// an empty string if it has none.
func (doc Document) TOC() string { return TOC(doc.Headings) }

// Parse converts markdown into a Document. Each call accumulates headings
// into a fresh Headings, so concurrent and nested calls never share state.
func Parse(markdown string) Document {
	p := parser{headings: new(Headings)}
	html, blocks := p.parse(SplitLines(markdown))
	return Document{
		HTML:     html,
		Headings: p.headings.List(),
		Blocks:   blocks,
	}
}

// SplitLines splits markdown into the lines that Block ranges index,
// normalizing "\r\n" and "\r" line breaks first.
func SplitLines(markdown string) []string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")
	return strings.Split(markdown, "\n")
}

type parser struct {
	headings *Headings
}

func (p *parser) parse(lines []string) (string, []Block) {
	var (
		parts  []string
		blocks []Block
	)
	for i := 0; i < len(lines); {
		if isBlank(lines[i]) {
			i++
			continue
		}
		b, html := p.block(lines, i)
		blocks = append(blocks, b)
		parts = append(parts, html)
		i = b.End
	}
	return strings.Join(parts, "\n"), blocks
}

func (p *parser) block(lines []string, i int) (Block, string) {
	switch classify(lines, i) {
	case Codefence:
		return p.codeFence(lines, i)
	case ATXHeading:
		return p.heading(lines, i)
	case Ruler:
		return p.ruler(lines, i)
	case Blockquote:
		return p.blockQuote(lines, i)
	case List:
		return p.bulletList(lines, i)
	case OrderedList:
		return p.orderedList(lines, i)
	case Table:
		return p.table(lines, i)
	default:
		return p.paragraph(lines, i)
	}
}

// Parser pairs Parse with GenerateTOC for callers that render the table of
// contents separately from the body.
//
// A Parser is not safe for concurrent use; use one per goroutine.
type Parser struct {
	last Document
}

// Parse converts markdown into an HTML fragment, replacing the headings
// retained from any prior call.
func (p *Parser) Parse(markdown string) string {
	p.last = Parse(markdown)
	return p.last.HTML
}

// GenerateTOC returns the table of contents for the most recent Parse.
func (p *Parser) GenerateTOC() string { return p.last.TOC() }

// Headings returns a copy of the headings recorded by the most recent Parse.
func (p *Parser) Headings() []Heading {
	if len(p.last.Headings) == 0 {
		return nil
	}
	return append([]Heading(nil), p.last.Headings...)
}
