package scandown_test

import (
	"fmt"
	"strings"

	"github.com/jcorbin/mdtoc/scandown"
)

func Example() {
	doc := scandown.Parse(strings.Join([]string{
		"# A Header",
		"",
		"This is an initial",
		"paragraph with content",
		"---",
		"> ## Quoted",
		"> text",
		"- a thing",
		"- an other thing",
		"1. first",
		"| A | B |",
		"|:--|--:|",
		"| 1 | 2 |",
		"",
		"```go",
		"x := 1",
		"```",
		"",
	}, "\n"))

	var dump func(prefix string, blocks []scandown.Block)
	dump = func(prefix string, blocks []scandown.Block) {
		for _, b := range blocks {
			fmt.Printf("%v%+v\n", prefix, b)
			dump(prefix+"  ", b.Quote)
		}
	}
	dump("", doc.Blocks)

	// Output:
	// <Heading delim='#' level=1 lines=0:1>
	// <Paragraph lines=2:4>
	// <Ruler delim='-' lines=4:5>
	// <Blockquote delim='>' lines=5:7>
	//   <Heading delim='#' level=2 lines=0:1>
	//   <Paragraph lines=1:2>
	// <List delim='-' items=2 lines=7:9>
	// <OrderedList delim='.' items=1 lines=9:10>
	// <Table columns=2 lines=10:13>
	// <Codefence delim='`' info="go" lines=14:17>
}

func ExampleParse() {
	doc := scandown.Parse("# Title\n\nSome *text* here.\n\n## Title\n")
	fmt.Println(doc.HTML)
	fmt.Println(doc.TOC())

	// Output:
	// <h1 id="title">Title</h1>
	// <p>Some <em>text</em> here.</p>
	// <h2 id="title-1">Title</h2>
	// <ul class="toc-list">
	// <li class="toc-h1"><a href="#title">Title</a></li>
	//   <li class="toc-h2"><a href="#title-1">Title</a></li>
	// </ul>
}

func ExampleBlock_Format() {
	for _, b := range scandown.Parse("## Intro\n\n* one\n* two").Blocks {
		fmt.Printf("%v %+v\n", b, b)
	}

	// Output:
	// Heading2 <Heading delim='#' level=2 lines=0:1>
	// List <List delim='*' items=2 lines=2:4>
}
