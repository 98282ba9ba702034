package lifestock

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
)

// fileStore is the common part of the file based stores.
type fileStore struct {
	path    string
	backend string
	decode  func(io.Reader) (*Ledger, error)
	encode  func(io.Writer, *Ledger) error
}

// CSVStore persists a ledger as a CSV table with a header row.
type CSVStore struct{ fileStore }

// NewCSVStore returns a store backed by the CSV file at path.
func NewCSVStore(path string) *CSVStore {
	return &CSVStore{fileStore{path: path, backend: "csv", decode: DecodeCSV, encode: EncodeCSV}}
}

// JSONLStore persists a ledger as JSON lines, one record per line.
type JSONLStore struct{ fileStore }

// NewJSONLStore returns a store backed by the JSONL file at path.
func NewJSONLStore(path string) *JSONLStore {
	return &JSONLStore{fileStore{path: path, backend: "jsonl", decode: DecodeLedger, encode: EncodeLedger}}
}

// Name returns the file path.
func (s *fileStore) Name() string { return s.path }

// Load reads the ledger file. A missing file is an empty ledger.
func (s *fileStore) Load(ctx context.Context) (*Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, Unavailable("load", s.backend, err)
	}
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, Unavailable("load", s.backend, err)
	}
	defer f.Close()

	l, err := s.decode(f)
	if err != nil {
		return nil, Unavailable("load", s.backend, err)
	}
	return l, nil
}

// Persist overwrites the ledger file with l.
func (s *fileStore) Persist(ctx context.Context, l *Ledger) error {
	if err := ctx.Err(); err != nil {
		return Unavailable("persist", s.backend, err)
	}
	err := writeFileAtomic(s.path, func(w io.Writer) error { return s.encode(w, l) })
	if err != nil {
		return Unavailable("persist", s.backend, err)
	}
	return nil
}
