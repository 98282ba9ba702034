package lifestock

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func fileStores(dir string) map[string]Store {
	return map[string]Store{
		"csv":   NewCSVStore(filepath.Join(dir, "lifestock.csv")),
		"jsonl": NewJSONLStore(filepath.Join(dir, "lifestock.jsonl")),
	}
}

func TestFileStoreMissing(t *testing.T) {
	for name, s := range fileStores(t.TempDir()) {
		t.Run(name, func(t *testing.T) {
			l, err := s.Load(context.Background())
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !l.IsEmpty() {
				t.Errorf("Load() returned %d records, want 0", l.Len())
			}
		})
	}
}

func TestFileStorePersistLoad(t *testing.T) {
	r := day("2025-01-02 21:00", "0", "8", "3", "2.2", "102.2")
	r.Commentary = ptr("BUY, the fundamentals are strong.")
	want := NewLedger(Seed(ts("2025-01-01 08:00")), r)

	for name, s := range fileStores(t.TempDir()) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Persist(ctx, want); err != nil {
				t.Fatalf("Persist() error = %v", err)
			}
			// Loading twice without persisting in between must return the same ledger.
			for i := range 2 {
				got, err := s.Load(ctx)
				if err != nil {
					t.Fatalf("Load() #%d error = %v", i, err)
				}
				if !got.Equal(want) {
					t.Errorf("Load() #%d = %v, want %v", i, got.records, want.records)
				}
			}
		})
	}
}

func TestFileStorePersistOverwrites(t *testing.T) {
	dir := t.TempDir()
	for name, s := range fileStores(dir) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			long := NewLedger(
				Seed(ts("2025-01-01 08:00")),
				day("2025-01-02 21:00", "0", "8", "3", "2.2", "102.2"),
				day("2025-01-03 21:00", "600", "5", "0", "-2.5", "99.645"),
			)
			short := long.DeleteByIDs(1, 2)
			if err := s.Persist(ctx, long); err != nil {
				t.Fatalf("Persist(long) error = %v", err)
			}
			if err := s.Persist(ctx, short); err != nil {
				t.Fatalf("Persist(short) error = %v", err)
			}
			got, err := s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if !got.Equal(short) {
				t.Errorf("Load() = %v, want %v", got.records, short.records)
			}
		})
	}
	// No temporary file is left behind.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory holds %v, want only the two stores", names)
	}
}

func TestFileStoreMalformed(t *testing.T) {
	dir := t.TempDir()
	stores := fileStores(dir)
	for name, content := range map[string]string{
		"csv":   "date,spending\n2025-01-02 21:00,0\n",
		"jsonl": "{not json}\n",
	} {
		t.Run(name, func(t *testing.T) {
			s := stores[name]
			if err := os.WriteFile(s.Name(), []byte(content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := s.Load(context.Background())
			if !errors.Is(err, ErrStoreUnavailable) {
				t.Fatalf("Load() error = %v, want %v", err, ErrStoreUnavailable)
			}
			var serr *StoreError
			if !errors.As(err, &serr) {
				t.Fatalf("Load() error = %T, want *StoreError", err)
			}
			if serr.Op != "load" || serr.Backend != name {
				t.Errorf("StoreError = {%s %s}, want {load %s}", serr.Op, serr.Backend, name)
			}
		})
	}
}

func TestFileStorePersistFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no", "such", "dir")
	for name, s := range fileStores(missing) {
		t.Run(name, func(t *testing.T) {
			err := s.Persist(context.Background(), NewLedger(Seed(ts("2025-01-01 08:00"))))
			if !errors.Is(err, ErrStoreUnavailable) {
				t.Fatalf("Persist() error = %v, want %v", err, ErrStoreUnavailable)
			}
			var serr *StoreError
			if !errors.As(err, &serr) || serr.Op != "persist" {
				t.Errorf("Persist() error = %#v, want a persist *StoreError", err)
			}
		})
	}
}

func TestFileStoreCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range fileStores(t.TempDir()) {
		t.Run(name, func(t *testing.T) {
			if _, err := s.Load(ctx); !errors.Is(err, context.Canceled) {
				t.Errorf("Load() error = %v, want %v", err, context.Canceled)
			}
			if err := s.Persist(ctx, NewLedger()); !errors.Is(err, ErrStoreUnavailable) {
				t.Errorf("Persist() error = %v, want %v", err, ErrStoreUnavailable)
			}
		})
	}
}

func TestFileStoreSeedScenario(t *testing.T) {
	for name, s := range fileStores(t.TempDir()) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			l, err := s.Load(ctx)
			if err != nil || !l.IsEmpty() {
				t.Fatalf("Load() = %d records, %v, want an empty ledger", l.Len(), err)
			}
			if err := s.Persist(ctx, l.Append(Seed(ts("2025-01-01 08:00")))); err != nil {
				t.Fatalf("Persist() error = %v", err)
			}
			l, err = s.Load(ctx)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if l.Len() != 1 || !l.At(0).Price.Equal(d("100")) || !l.At(0).Change.IsZero() {
				t.Errorf("Load() = %v, want a single record at 100 with no change", l.records)
			}
		})
	}
}
