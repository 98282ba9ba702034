package lifestock

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

// ErrNoSelection is returned by DeleteRecords when no record is selected.
var ErrNoSelection = errors.New("no record selected")

// Annotator produces a short commentary for a day of inputs.
type Annotator interface {
	Annotate(ctx context.Context, in Inputs) (string, error)
}

// Tracker runs the user operations on a ledger: opening it, archiving a day,
// deleting records. Every mutation is persisted before it is reported.
type Tracker struct {
	Store     Store
	Annotator Annotator        // optional
	Now       func() time.Time // defaults to time.Now

	// Describe turns an annotation failure into the commentary text.
	Describe func(error) string

	unreadable error // load failure of the last Open, nil if the store was read
}

// NewTracker returns a tracker on store. annotator may be nil.
func NewTracker(store Store, annotator Annotator) *Tracker {
	return &Tracker{Store: store, Annotator: annotator, Now: time.Now}
}

func (t *Tracker) now() time.Time {
	if t.Now == nil {
		return time.Now()
	}
	return t.Now()
}

func (t *Tracker) describe(err error) string {
	if t.Describe == nil {
		return fmt.Sprintf("Commentary unavailable: %v", err)
	}
	return t.Describe(err)
}

// Open loads the ledger and seeds it when empty.
//
// When the store cannot be read, Open returns a seeded in-memory ledger together
// with an error wrapping ErrStoreUnavailable. The ledger can be displayed but the
// tracker refuses to persist anything until a later Open succeeds, so that an
// unreadable store is never overwritten. The seed of a store read as empty is
// persisted right away.
func (t *Tracker) Open(ctx context.Context) (*Ledger, error) {
	l, err := t.Store.Load(ctx)
	if err != nil {
		t.unreadable = err
		return NewLedger().Append(Seed(t.now())), fmt.Errorf("cannot read %s, showing an empty ledger: %w", t.Store.Name(), err)
	}
	t.unreadable = nil
	if !l.IsEmpty() {
		return l, nil
	}
	l = l.Append(Seed(t.now()))
	if err := t.Store.Persist(ctx, l); err != nil {
		return nil, fmt.Errorf("cannot persist the genesis record: %w", err)
	}
	return l, nil
}

// writable returns an error if the last Open could not read the store.
func (t *Tracker) writable() error {
	if t.unreadable != nil {
		return fmt.Errorf("%s was not read, it is left untouched: %w", t.Store.Name(), t.unreadable)
	}
	return nil
}

// persist writes l unless the store could not be read.
func (t *Tracker) persist(ctx context.Context, l *Ledger) error {
	if err := t.writable(); err != nil {
		return err
	}
	return t.Store.Persist(ctx, l)
}

// Archive scores today's inputs against the last price, annotates them and
// appends the resulting record.
//
// Annotation failures never abort the archive, their description is stored as
// commentary instead. If the ledger cannot be persisted the error is returned and
// the returned ledger must not be considered saved.
func (t *Tracker) Archive(ctx context.Context, l *Ledger, in Inputs) (*Ledger, Record, error) {
	if err := t.writable(); err != nil {
		return l, Record{}, fmt.Errorf("record not saved: %w", err)
	}
	price, change := ScoreInputs(l.LastPrice(), in)

	var commentary *string
	if t.Annotator != nil {
		text, err := t.Annotator.Annotate(ctx, in)
		if err != nil {
			log.Printf("annotation failed: %v", err)
			text = t.describe(err)
		}
		commentary = &text
	}

	r := NewRecord(t.now(), in, price, change, commentary)
	next := l.Append(r)
	if err := t.persist(ctx, next); err != nil {
		return next, r, fmt.Errorf("record not saved: %w", err)
	}
	return next, r, nil
}

// DeleteRecords removes the records at the given positions and persists the
// result. Prices of the remaining records are not recomputed.
func (t *Tracker) DeleteRecords(ctx context.Context, l *Ledger, ids ...int) (*Ledger, error) {
	if len(ids) == 0 {
		return l, ErrNoSelection
	}
	next := l.DeleteByIDs(ids...)
	if err := t.persist(ctx, next); err != nil {
		return next, fmt.Errorf("deletion not saved: %w", err)
	}
	return next, nil
}
