package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/amello/b3folio/renderer"
	"github.com/google/subcommands"
)

// indexCmd holds the flags for the 'index' subcommand.
type indexCmd struct{}

func (*indexCmd) Name() string     { return "index" }
func (*indexCmd) Synopsis() string { return "display the market-index history" }
func (*indexCmd) Usage() string {
	return `b3f index

  Displays the market-index sessions found in the raw input directory:
  opening, closing, variation, minimum, maximum and traded volume.
`
}

func (c *indexCmd) SetFlags(f *flag.FlagSet) {}

func (c *indexCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	history, err := decodeIndex()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(history) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no index files found.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.IndexMarkdown(history))
	return subcommands.ExitSuccess
}
