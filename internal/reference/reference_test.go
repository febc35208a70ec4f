package reference_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/jcorbin/mdtoc/internal/reference"
	"github.com/jcorbin/mdtoc/scandown"
)

func TestHeadings(t *testing.T) {
	src := []byte("# A *b*\n\n> # Quoted\n\n## C `d`\n\n```\n# fenced\n```\n")
	assert.Equal(t, []Heading{
		{Level: 1, Text: "A b"},
		{Level: 2, Text: "C d"},
	}, Headings(src))
}

func TestOutline(t *testing.T) {
	doc := scandown.Parse("# A *b*\n## [C](u) `d`\n")
	assert.Equal(t, []Heading{
		{Level: 1, Text: "A b"},
		{Level: 2, Text: "C d"},
	}, Outline(doc.Headings))
	assert.Nil(t, Outline(nil))
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		name string
		src  string
		out  []Mismatch
	}{
		{
			name: "agreeing outlines",
			src:  "# One\n\ntext\n\n## Two **bold**\n\n> # Quoted\n",
		},
		{
			name: "setext heading unknown to scandown",
			src:  "Title\n=====\n\n## Next\n",
			out: []Mismatch{
				{Index: 0, Ours: Heading{Level: 2, Text: "Next"}, Ref: Heading{Level: 1, Text: "Title"}},
				{Index: 1, Ref: Heading{Level: 2, Text: "Next"}},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, Compare([]byte(tc.src)))
		})
	}
}

func TestDiff(t *testing.T) {
	a := Heading{Level: 1, Text: "a"}
	b := Heading{Level: 2, Text: "b"}
	assert.Nil(t, Diff([]Heading{a, b}, []Heading{a, b}))
	assert.Equal(t, []Mismatch{{Index: 1, Ours: b}}, Diff([]Heading{a, b}, []Heading{a}))
	assert.Equal(t, "#2: ours=h2 \"b\" reference=h0 \"\"", Mismatch{Index: 1, Ours: b}.String())
}

func TestRender(t *testing.T) {
	html := string(Render([]byte("# One\n\n~~gone~~\n")))
	assert.Contains(t, html, "One</h1>")
	assert.Contains(t, html, "<del>gone</del>")
}
