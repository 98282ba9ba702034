package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/lifestock"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	path    string
	replace bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import records from a spreadsheet JSON export" }
func (*importCmd) Usage() string {
	return `lsk import -f <file> [-path <jsonpath>] [-replace]

  Imports records from a JSON document holding a grid of cells, such as the
  response of a spreadsheet "values" API. The grid is located with a JSONPath
  expression (default $.values); its first row is the header, using the columns:

    date, spending, income, sleep, study, weight, diary, change, price, ai_comment

  Prices and changes are imported as they are. Imported records are appended to
  the ledger, or replace it with -replace.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "JSON file to import.")
	f.StringVar(&c.path, "path", "$.values", "JSONPath of the grid of cells.")
	f.BoolVar(&c.replace, "replace", false, "Replace the ledger instead of appending.")
}

// decodeGrid extracts a grid of cells from a JSON document.
func decodeGrid(data []byte, path string) ([][]string, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	rows, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("%q is not a list of rows: %T", path, jval)
	}
	grid := make([][]string, 0, len(rows))
	for i, row := range rows {
		cells, ok := row.([]any)
		if !ok {
			return nil, fmt.Errorf("row %d is not a list of cells: %T", i, row)
		}
		line := make([]string, len(cells))
		for j, cell := range cells {
			switch v := cell.(type) {
			case nil:
			case string:
				line[j] = v
			case float64:
				line[j] = strconv.FormatFloat(v, 'f', -1, 64)
			case bool:
				line[j] = strconv.FormatBool(v)
			default:
				return nil, fmt.Errorf("row %d cell %d: unsupported value %T", i, j, cell)
			}
		}
		grid = append(grid, line)
	}
	return grid, nil
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}
	data, err := os.ReadFile(c.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	grid, err := decodeGrid(data, c.path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}
	imported, err := lifestock.DecodeTable(grid)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error decoding %q: %v\n", c.file, err)
		return subcommands.ExitFailure
	}

	s, err := openSession(ctx, false)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger := lifestock.NewLedger()
	if !c.replace {
		// a broken store must not be silently replaced by the import.
		if ledger, err = s.store.Load(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	for _, r := range imported.Records() {
		ledger = ledger.Append(r)
	}
	if err := s.store.Persist(ctx, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: nothing imported: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d record(s) into %s\n", imported.Len(), s.store.Name())
	return subcommands.ExitSuccess
}
