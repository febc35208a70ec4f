package scandown

import (
	"fmt"
	"io"
)

// Format writes a textual representation of the receiver, providing improved
// fmt.Printf display. Produces a verbose "<Type attr=value>" form when
// formatted with `%+v", a terse "Type" form otherwise.
func (b Block) Format(f fmt.State, _ rune) {
	if f.Flag('+') {
		switch b.Type {
		case ATXHeading:
			fmt.Fprintf(f, "<%v delim=%q level=%v lines=%v:%v>", b.Type, b.Delim, b.Width, b.Start, b.End)

		case Codefence:
			fmt.Fprintf(f, "<%v delim=%q info=%q lines=%v:%v>", b.Type, b.Delim, b.Info, b.Start, b.End)

		case List, OrderedList:
			fmt.Fprintf(f, "<%v delim=%q items=%v lines=%v:%v>", b.Type, b.Delim, b.Width, b.Start, b.End)

		case Table:
			fmt.Fprintf(f, "<%v columns=%v lines=%v:%v>", b.Type, b.Width, b.Start, b.End)

		case Ruler, Blockquote:
			fmt.Fprintf(f, "<%v delim=%q lines=%v:%v>", b.Type, b.Delim, b.Start, b.End)

		default:
			fmt.Fprintf(f, "<%v lines=%v:%v>", b.Type, b.Start, b.End)
		}
	} else {
		switch b.Type {
		case ATXHeading:
			fmt.Fprintf(f, "%v%v", b.Type, b.Width)
		default:
			fmt.Fprint(f, b.Type)
		}
	}
}

// Format writes a type string representing the receiver code.
func (t BlockType) Format(f fmt.State, _ rune) {
	switch t {
	case noBlock:
		io.WriteString(f, "None")
	case ATXHeading:
		io.WriteString(f, "Heading")
	case Codefence:
		io.WriteString(f, "Codefence")
	case Blockquote:
		io.WriteString(f, "Blockquote")
	case List:
		io.WriteString(f, "List")
	case OrderedList:
		io.WriteString(f, "OrderedList")
	case Table:
		io.WriteString(f, "Table")
	case Ruler:
		io.WriteString(f, "Ruler")
	case Paragraph:
		io.WriteString(f, "Paragraph")
	default:
		fmt.Fprintf(f, "InvalidBlock%v", int(t))
	}
}
