package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifestock/renderer"
	"github.com/google/subcommands"
)

type logCmd struct {
	head int
	tail int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the archived records with their id" }
func (*logCmd) Usage() string {
	return `lsk log [-head <n>] [-tail <n>]

  Lists the records of the ledger, with options for limiting the output. The id
  column is the one to use with 'lsk delete'.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N records.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N records.")
}

func (c *logCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

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

	start, end := 0, ledger.Len()
	if c.head > 0 && end > c.head {
		end = c.head
	}
	if c.tail > 0 && end > c.tail {
		start = end - c.tail
	}

	printMarkdown(renderer.RenderRecords(ledger, s.cfg.Currency, start, end))
	return subcommands.ExitSuccess
}
