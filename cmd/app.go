// Package cmd implements the CLI application to track a life stock.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/lifestock"
	"github.com/etnz/lifestock/annotator"
	"github.com/etnz/lifestock/sqlite"
	"github.com/google/subcommands"
)

// Commands lists the subcommands, main registers them in a commander.
var Commands = []subcommands.Command{
	&archiveCmd{},
	&deleteCmd{},
	&logCmd{},
	&summaryCmd{},
	&historyCmd{},
	&scoreCmd{},
	&exportCmd{},
	&importCmd{},
	&formatCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeFile = flag.String("store", "", "Path to the ledger store, .csv, .jsonl or .db (default $LIFESTOCK_STORE or lifestock.csv)")
	currency  = flag.String("currency", "", "Currency used to display amounts (default $LIFESTOCK_CURRENCY or CNY)")
	model     = flag.String("model", "", "Gemini model used for commentaries (default $LIFESTOCK_MODEL or discovered)")
	Verbose   = flag.Bool("v", false, "Print diagnostic logs")
)

// SetupLogging discards diagnostic logs unless verbose mode is on.
func SetupLogging() {
	cfg, err := LoadConfig()
	if err == nil && cfg.Verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// OpenStore opens the store at path, the backend is selected by the extension.
// The returned close function must be called once done.
func OpenStore(path string) (lifestock.Store, func() error, error) {
	noop := func() error { return nil }
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return lifestock.NewCSVStore(path), noop, nil
	case ".jsonl":
		return lifestock.NewJSONLStore(path), noop, nil
	case ".db", ".sqlite", ".sqlite3":
		s, err := sqlite.Open(path)
		if err != nil {
			return nil, noop, fmt.Errorf("cannot open %q: %w", path, err)
		}
		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported store %q: use a .csv, .jsonl or .db file", path)
	}
}

// session is what a command needs to run: configuration, store and tracker.
type session struct {
	cfg     Config
	store   lifestock.Store
	tracker *lifestock.Tracker
	close   func() error
}

// openSession loads the configuration and opens the store. When annotate is true
// and an API key is configured, the tracker asks for commentaries.
func openSession(ctx context.Context, annotate bool) (*session, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	store, closeFn, err := OpenStore(cfg.Store)
	if err != nil {
		return nil, err
	}
	tracker := lifestock.NewTracker(store, nil)
	tracker.Describe = annotator.Describe
	if annotate {
		a, err := annotator.New(ctx, cfg.Annotator())
		switch {
		case err == nil:
			tracker.Annotator = a
		case errors.Is(err, annotator.ErrNoAPIKey):
			log.Println("no API key, archiving without commentary")
		default:
			log.Printf("warning, archiving without commentary: %v", err)
		}
	}
	return &session{cfg: cfg, store: store, tracker: tracker, close: closeFn}, nil
}

// view opens the ledger for display. An unreadable store is always reported on
// stderr, the command then goes on with the seeded ledger returned by Open.
func (s *session) view(ctx context.Context) (*lifestock.Ledger, error) {
	l, err := s.tracker.Open(ctx)
	if err != nil && l != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return l, nil
	}
	return l, err
}

// Close releases the store.
func (s *session) Close() {
	if err := s.close(); err != nil {
		log.Printf("error closing %s: %v", s.store.Name(), err)
	}
}

// printMarkdown renders markdown for the terminal, or prints it as is when it
// cannot be rendered.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
