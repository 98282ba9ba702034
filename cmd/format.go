package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type formatCmd struct {
	to string
}

func (*formatCmd) Name() string     { return "format" }
func (*formatCmd) Synopsis() string { return "rewrite the ledger store in canonical form" }
func (*formatCmd) Usage() string {
	return `lsk format [-to <file>]

  Reads the ledger store and writes it back in canonical form. With -to, the
  ledger is written to another store instead; the backend is selected by the
  file extension, so this also converts between csv, jsonl and sqlite.
`
}

func (c *formatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Destination store (default: rewrite in place).")
}

func (c *formatCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	// Unlike the other commands, a read failure is fatal here.
	ledger, err := s.store.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	dest, closeDest := s.store, func() error { return nil }
	if c.to != "" {
		if dest, closeDest, err = OpenStore(c.to); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}
	defer closeDest()

	if err := dest.Persist(ctx, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Ledger %s has been written to %s (%d records).\n", s.store.Name(), dest.Name(), ledger.Len())
	return subcommands.ExitSuccess
}
