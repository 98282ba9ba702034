package lifestock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrStoreUnavailable is returned (wrapped) by every Store when the backing
// table cannot be read or written.
var ErrStoreUnavailable = errors.New("store unavailable")

// Store persists a Ledger.
//
// Load returns an empty ledger and no error when the backing store does not exist
// yet. Any other read failure is reported as a *StoreError, callers decide whether
// to degrade to an empty ledger. Persist overwrites the whole table.
type Store interface {
	Load(ctx context.Context) (*Ledger, error)
	Persist(ctx context.Context, l *Ledger) error
	Name() string
}

// StoreError describes a failed store operation.
type StoreError struct {
	Op      string // "load" or "persist"
	Backend string
	Err     error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Backend, e.Err)
}

func (e *StoreError) Unwrap() []error { return []error{ErrStoreUnavailable, e.Err} }

// Unavailable wraps err into a *StoreError.
func Unavailable(op, backend string, err error) error {
	return &StoreError{Op: op, Backend: backend, Err: err}
}

// writeFileAtomic writes the content produced by encode into a temporary file,
// then renames it over filename.
func writeFileAtomic(filename string, encode func(io.Writer) error) error {
	f, err := os.CreateTemp(filepath.Dir(filename), "."+filepath.Base(filename)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op once renamed

	if err := encode(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, filename)
}
