package scandown

import (
	"regexp"
	"strconv"
	"strings"
)

// Heading is one entry of a document outline.
type Heading struct {
	Level int    // 1 through 6
	Slug  string // anchor id, unique within its document
	Text  string // raw heading text
	HTML  string // inline-transformed heading text
}

// Headings accumulates a document's headings in order, assigning each a
// slug not yet used by an earlier one.
type Headings struct {
	list []Heading
	seen map[string]struct{}
}

// Add records a heading with the given level and raw text, returning it
// with its assigned slug and rendered text.
//
// Slugs derive from the raw text (see Slugify); a text that reduces to
// nothing falls back to "h-N", N being the count of prior headings. Taken
// slugs get "-1", "-2", ... suffixes until one is free.
func (hs *Headings) Add(level int, raw string) Heading {
	base := Slugify(raw)
	if base == "" {
		base = "h-" + strconv.Itoa(len(hs.list))
	}
	slug := base
	for n := 1; hs.taken(slug); n++ {
		slug = base + "-" + strconv.Itoa(n)
	}

	if hs.seen == nil {
		hs.seen = make(map[string]struct{})
	}
	hs.seen[slug] = struct{}{}

	h := Heading{
		Level: level,
		Slug:  slug,
		Text:  raw,
		HTML:  Inline(raw),
	}
	hs.list = append(hs.list, h)
	return h
}

func (hs *Headings) taken(slug string) bool {
	_, ok := hs.seen[slug]
	return ok
}

// Len returns the number of headings recorded so far.
func (hs *Headings) Len() int { return len(hs.list) }

// List returns a copy of the recorded headings, in document order.
func (hs *Headings) List() []Heading {
	if len(hs.list) == 0 {
		return nil
	}
	return append([]Heading(nil), hs.list...)
}

// slugStrip matches anything but letters (CJK ideographs included), digits,
// underscore and hyphen.
var slugStrip = regexp.MustCompile(`[^\p{L}\p{N}_-]`)

// Slugify reduces heading text to its anchor form, before any de-duplication.
func Slugify(raw string) string {
	return strings.ToLower(slugStrip.ReplaceAllString(raw, ""))
}
