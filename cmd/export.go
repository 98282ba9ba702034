package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/lifestock"
	"github.com/etnz/lifestock/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

type exportCmd struct {
	html   bool
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the summary and history as markdown or html" }
func (*exportCmd) Usage() string {
	return `lsk export [-html] [-o <file>]

  Writes the summary and the price history as a markdown document, or as an
  HTML page with -html. Writes to stdout unless -o is given.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.html, "html", false, "Export as HTML instead of markdown.")
	f.StringVar(&c.output, "o", "", "Output file (default stdout).")
}

// report builds the exported markdown document.
func report(l *lifestock.Ledger, cur string) string {
	return renderer.RenderSummary(lifestock.NewSummary(l, cur)) + "\n" + renderer.RenderHistory(lifestock.NewHistory(l))
}

// toHTML converts markdown to an HTML fragment, tables included.
func toHTML(md string) ([]byte, error) {
	var buf bytes.Buffer
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return nil, fmt.Errorf("cannot convert to html: %w", err)
	}
	return buf.Bytes(), nil
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	content := []byte(report(ledger, s.cfg.Currency))
	if c.html {
		if content, err = toHTML(string(content)); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	var w io.Writer = os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if _, err := w.Write(content); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing export: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
