package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jcorbin/mdtoc/internal/reference"
)

var errOutlineMismatch = errors.New("heading outlines differ")

func refCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "ref [FILE]",
		Short: "Print the blackfriday reference rendering",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			html := reference.Render(src)
			return writeOutput(cmd, opts, func(w io.Writer) error {
				_, err := w.Write(html)
				return err
			})
		},
	}
}

func compareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [FILE]",
		Short: "Diff the heading outline against the blackfriday reference",
		Long: `Compare the heading outline (levels and plain text) against the one
blackfriday parses from the same input, printing each differing position.
Exits non-zero when the outlines differ.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			mismatches := reference.Compare(src)
			if err := writeOutput(cmd, opts, func(w io.Writer) error {
				for _, m := range mismatches {
					fmt.Fprintln(w, m)
				}
				return nil
			}); err != nil {
				return err
			}
			if len(mismatches) > 0 {
				log.Warn().Int("mismatches", len(mismatches)).Msg("heading outlines differ")
				return errOutlineMismatch
			}
			log.Debug().Msg("heading outlines agree")
			return nil
		},
	}
}
