package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifestock"
	"github.com/etnz/lifestock/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the current price and the latest analyst note" }
func (*summaryCmd) Usage() string {
	return `lsk summary

  Displays the dashboard: current price and change, performance since the first
  record, total study hours and amounts, and the latest analyst note.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (*summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger, err := s.view(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderSummary(lifestock.NewSummary(ledger, s.cfg.Currency)))
	return subcommands.ExitSuccess
}
