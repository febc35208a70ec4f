// Package reference renders Markdown with blackfriday, a fuller
// CommonMark-ish engine, to cross-check the restricted scandown dialect.
package reference

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/russross/blackfriday"

	"github.com/jcorbin/mdtoc/scandown"
)

const extensions = 0 |
	blackfriday.NoIntraEmphasis |
	blackfriday.Tables |
	blackfriday.FencedCode |
	blackfriday.Strikethrough |
	blackfriday.SpaceHeadings |
	blackfriday.HeadingIDs

// Render returns blackfriday's HTML rendering of src.
func Render(src []byte) []byte {
	return blackfriday.Run(src, blackfriday.WithExtensions(extensions))
}

// Heading is an outline entry as blackfriday sees it.
type Heading struct {
	Level int
	Text  string // plain text, inline markup removed
}

func (h Heading) String() string { return fmt.Sprintf("h%v %q", h.Level, h.Text) }

// Headings walks blackfriday's parse of src, collecting every heading that
// is not nested inside a block quote.
func Headings(src []byte) []Heading {
	md := blackfriday.New(blackfriday.WithExtensions(extensions))
	doc := md.Parse(src)

	var (
		headings []Heading
		text     bytes.Buffer
	)
	doc.Walk(func(node *blackfriday.Node, entering bool) blackfriday.WalkStatus {
		if node.Type != blackfriday.Heading {
			return blackfriday.GoToNext
		}
		if !entering || quoted(node) {
			return blackfriday.SkipChildren
		}
		text.Reset()
		collectText(&text, node)
		headings = append(headings, Heading{
			Level: node.HeadingData.Level,
			Text:  strings.TrimSpace(text.String()),
		})
		return blackfriday.SkipChildren
	})
	return headings
}

func quoted(node *blackfriday.Node) bool {
	for p := node.Parent; p != nil; p = p.Parent {
		if p.Type == blackfriday.BlockQuote {
			return true
		}
	}
	return false
}

func collectText(w io.Writer, node *blackfriday.Node) {
	for c := node.FirstChild; c != nil; c = c.Next {
		switch c.Type {
		case blackfriday.Text, blackfriday.Code:
			w.Write(c.Literal)
		default:
			collectText(w, c)
		}
	}
}

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// Outline reduces scandown headings to the same plain form as Headings.
func Outline(headings []scandown.Heading) []Heading {
	if len(headings) == 0 {
		return nil
	}
	out := make([]Heading, len(headings))
	for i, h := range headings {
		out[i] = Heading{
			Level: h.Level,
			Text:  strings.TrimSpace(tagPattern.ReplaceAllString(h.HTML, "")),
		}
	}
	return out
}

// Mismatch is one position where two outlines disagree; a zero Level on
// either side means that outline ran out of headings.
type Mismatch struct {
	Index int
	Ours  Heading
	Ref   Heading
}

func (m Mismatch) String() string {
	return fmt.Sprintf("#%v: ours=%v reference=%v", m.Index+1, m.Ours, m.Ref)
}

// Compare parses src with both engines and reports where their heading
// outlines differ.
func Compare(src []byte) []Mismatch {
	return Diff(Outline(scandown.Parse(string(src)).Headings), Headings(src))
}

// Diff pairs two outlines by position.
func Diff(ours, ref []Heading) (mismatches []Mismatch) {
	n := len(ours)
	if len(ref) > n {
		n = len(ref)
	}
	for i := 0; i < n; i++ {
		var m Mismatch
		m.Index = i
		if i < len(ours) {
			m.Ours = ours[i]
		}
		if i < len(ref) {
			m.Ref = ref[i]
		}
		if m.Ours != m.Ref {
			mismatches = append(mismatches, m)
		}
	}
	return mismatches
}
