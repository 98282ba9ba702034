package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifestock"
	"github.com/google/subcommands"
)

type deleteCmd struct{}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete records by id" }
func (*deleteCmd) Usage() string {
	return `lsk delete <id>...

  Deletes the records with the given ids (as shown by 'lsk log'). Remaining
  records are renumbered, their prices are not recomputed.
`
}

func (*deleteCmd) SetFlags(f *flag.FlagSet) {}

func (*deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ids, err := parseIDs(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, err := openSession(ctx, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger, err := s.tracker.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nNothing was deleted, fix or move the store first.\n", err)
		return subcommands.ExitFailure
	}
	for _, id := range ids {
		if id >= ledger.Len() {
			fmt.Fprintf(os.Stderr, "warning: no record %d, ignored\n", id)
		}
	}

	next, err := s.tracker.DeleteRecords(ctx, ledger, ids...)
	if errors.Is(err, lifestock.ErrNoSelection) {
		fmt.Fprintln(os.Stderr, "warning: no record selected, nothing deleted")
		return subcommands.ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %d record(s), %d left in %s\n", ledger.Len()-next.Len(), next.Len(), s.store.Name())
	return subcommands.ExitSuccess
}
