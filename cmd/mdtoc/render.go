package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jcorbin/mdtoc/scandown"
)

func renderCmd(opts *options) *cobra.Command {
	var withTOC bool
	cmd := &cobra.Command{
		Use:   "render [FILE]",
		Short: "Print the HTML fragment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc := scandown.Parse(string(src))
			return writeOutput(cmd, opts, func(w io.Writer) error {
				if toc := doc.TOC(); withTOC && toc != "" {
					fmt.Fprintln(w, toc)
				}
				if doc.HTML != "" {
					fmt.Fprintln(w, doc.HTML)
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&withTOC, "toc", false, "print the table of contents before the fragment")
	return cmd
}

func tocCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "toc [FILE]",
		Short: "Print the table of contents list",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			toc := scandown.Parse(string(src)).TOC()
			return writeOutput(cmd, opts, func(w io.Writer) error {
				if toc != "" {
					fmt.Fprintln(w, toc)
				}
				return nil
			})
		},
	}
}

func headingsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "headings [FILE]",
		Short: "Print the heading outline with anchor slugs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			headings := scandown.Parse(string(src)).Headings
			return writeOutput(cmd, opts, func(w io.Writer) error {
				for i, h := range headings {
					fmt.Fprintf(w, "%v. h%v #%v %v\n", i+1, h.Level, h.Slug, h.Text)
				}
				return nil
			})
		},
	}
}
