package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcorbin/mdtoc/internal/writeutil"
	"github.com/jcorbin/mdtoc/scandown"
)

func blocksCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "blocks [FILE]",
		Short: "Print how each run of lines was classified",
		Long: `Print one numbered entry per block: its type and first source line.
With --verbose, print block attributes and line ranges instead, and the blocks
nested inside each block quote.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			text := string(src)
			lines := scandown.SplitLines(text)
			blocks := scandown.Parse(text).Blocks
			return writeOutput(cmd, opts, func(w io.Writer) error {
				return dumpBlocks(w, blocks, lines, opts.verbose)
			})
		},
	}
}

// dumpBlocks writes a numbered list of blocks; lines may be nil for nested
// quote content, whose line numbers index the dedented quote body.
func dumpBlocks(out io.Writer, blocks []scandown.Block, lines []string, verbose bool) (rerr error) {
	n := 0
	if err := writeutil.WriteLines(out, func(w io.Writer) bool {
		if n >= len(blocks) {
			return false
		}
		b := blocks[n]
		n++

		width, _ := fmt.Fprintf(w, "%v. ", n)
		switch {
		case verbose:
			fmt.Fprintf(w, "%+v\n", b)
		case lines != nil:
			fmt.Fprintf(w, "%v %q\n", b, lines[b.Start])
		default:
			fmt.Fprintf(w, "%v\n", b)
		}

		if verbose && len(b.Quote) > 0 {
			nested := writeutil.PrefixWriter(strings.Repeat(" ", width), w)
			err := dumpBlocks(nested, b.Quote, nil, verbose)
			if cerr := nested.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				rerr = err
				return false
			}
		}
		return true
	}); rerr == nil {
		rerr = err
	}
	return rerr
}
