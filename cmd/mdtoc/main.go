// Command mdtoc converts Markdown into an HTML fragment and table of contents.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jcorbin/mdtoc/internal/writeutil"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errOutlineMismatch) {
			log.Error().Err(err).Msg("mdtoc failed")
		}
		os.Exit(1)
	}
}

type options struct {
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:   "mdtoc",
		Short: "Markdown to HTML fragments with a table of contents",
		Long: `mdtoc renders a restricted Markdown dialect (ATX headings, fenced code,
block quotes, flat lists, pipe tables, rulers and paragraphs) to HTML, and
collects heading anchors for a table of contents.

Input is read from the FILE argument, or stdin when absent or "-".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			initLogging(cmd.ErrOrStderr(), opts.verbose)
		},
	}
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "write to this file, atomically replacing it")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(
		renderCmd(&opts),
		tocCmd(&opts),
		headingsCmd(&opts),
		blocksCmd(&opts),
		refCmd(&opts),
		compareCmd(&opts),
	)
	return root
}

func initLogging(w io.Writer, verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).
		Level(level).
		With().Timestamp().Logger()
}

// readInput reads the optional FILE argument, or stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	src, err := writeutil.ReadInput(name, cmd.InOrStdin())
	if err != nil {
		return nil, err
	}
	log.Debug().Str("input", name).Int("bytes", len(src)).Msg("read markdown")
	return src, nil
}

// writeOutput runs write against the selected output, closing it (and so
// committing any output file) only if write succeeded.
func writeOutput(cmd *cobra.Command, opts *options, write func(w io.Writer) error) error {
	out := writeutil.Output(opts.output, cmd.OutOrStdout())
	ew := &writeutil.ErrWriter{Writer: out}
	if err := write(ew); err != nil {
		return err
	}
	if ew.Err != nil {
		return ew.Err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if opts.output != "" && opts.output != "-" {
		log.Debug().Str("output", opts.output).Msg("wrote output file")
	}
	return nil
}
