package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifestock"
	"github.com/etnz/lifestock/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type archiveCmd struct {
	spending decimalFlag
	income   decimalFlag
	sleep    decimalFlag
	study    decimalFlag
	weight   decimalFlag
	diary    string
	noAI     bool
}

func (*archiveCmd) Name() string     { return "archive" }
func (*archiveCmd) Synopsis() string { return "archive today's metrics and update the price" }
func (*archiveCmd) Usage() string {
	return `lsk archive -spending <amount> -income <amount> -sleep <hours> -study <hours> [-weight <kg>] [-diary <text>] [-no-ai]

  Scores today's metrics against the last price, asks for an analyst note
  (unless -no-ai or no API key is configured), appends the record to the ledger
  and saves it.

  Sleep and study are clamped to [0, 12] hours. Weight defaults to the last
  recorded weight.
`
}

func (c *archiveCmd) SetFlags(f *flag.FlagSet) {
	f.Var(&c.spending, "spending", "Amount spent today.")
	f.Var(&c.income, "income", "Amount earned today.")
	f.Var(&c.sleep, "sleep", "Hours of sleep.")
	f.Var(&c.study, "study", "Hours of study.")
	f.Var(&c.weight, "weight", "Body weight (defaults to the last recorded weight).")
	f.StringVar(&c.diary, "diary", "", "Free text note for the day.")
	f.BoolVar(&c.noAI, "no-ai", false, "Do not ask for an analyst note.")
}

// inputs validates and clamps the flags the way the input form does.
func (c *archiveCmd) inputs(l *lifestock.Ledger) (lifestock.Inputs, error) {
	in := lifestock.Inputs{
		Spending: c.spending.value,
		Income:   c.income.value,
		Sleep:    clamp(c.sleep.value, 0, 12),
		Study:    clamp(c.study.value, 0, 12),
		Weight:   c.weight.value,
		Diary:    c.diary,
	}
	if in.Spending.IsNegative() || in.Income.IsNegative() {
		return in, fmt.Errorf("spending and income cannot be negative")
	}
	if !c.weight.set {
		if last, ok := l.Last(); ok {
			in.Weight = last.Weight
		}
	}
	if !in.Weight.GreaterThan(decimal.Zero) {
		return in, fmt.Errorf("weight must be positive, use -weight")
	}
	return in, nil
}

func (c *archiveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := openSession(ctx, !c.noAI)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger, err := s.tracker.Open(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nNothing was archived, fix or move the store first.\n", err)
		return subcommands.ExitFailure
	}

	in, err := c.inputs(ledger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	_, record, err := s.tracker.Archive(ctx, ledger, in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: the day was NOT archived: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderRecord(record))
	return subcommands.ExitSuccess
}
