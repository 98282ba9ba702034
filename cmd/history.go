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

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the price history" }
func (*historyCmd) Usage() string {
	return `lsk history

  Displays the price and change of every record over time.
`
}

func (*historyCmd) SetFlags(f *flag.FlagSet) {}

func (*historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	printMarkdown(renderer.RenderHistory(lifestock.NewHistory(ledger)))
	return subcommands.ExitSuccess
}
