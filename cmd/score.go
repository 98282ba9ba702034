package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/lifestock"
	"github.com/google/subcommands"
)

type scoreCmd struct {
	last     decimalFlag
	spending decimalFlag
	sleep    decimalFlag
	study    decimalFlag
}

func (*scoreCmd) Name() string     { return "score" }
func (*scoreCmd) Synopsis() string { return "compute a price change without archiving" }
func (*scoreCmd) Usage() string {
	return `lsk score [-last <price>] -spending <amount> -sleep <hours> -study <hours>

  Applies the scoring rule to the given inputs and prints the change and the
  new price. Nothing is saved. The last price defaults to 100.
`
}

func (c *scoreCmd) SetFlags(f *flag.FlagSet) {
	c.last.value = lifestock.GenesisPrice
	f.Var(&c.last, "last", "Last price.")
	f.Var(&c.spending, "spending", "Amount spent.")
	f.Var(&c.sleep, "sleep", "Hours of sleep.")
	f.Var(&c.study, "study", "Hours of study.")
}

func (c *scoreCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.last.value.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: -last must be a positive price")
		return subcommands.ExitUsageError
	}
	price, change := lifestock.Score(c.last.value, c.spending.value, c.sleep.value, c.study.value)
	fmt.Printf("change: %s\nprice:  %s\n", lifestock.P(change).SignedString(), price.String())
	return subcommands.ExitSuccess
}
