// Package sqlite provides a SQLite-backed ledger store.
//
// The whole ledger lives in a single "records" table, ordered by position.
// Numbers are kept as text so that decimals read back exactly as written.
// Persist replaces every row inside one transaction, so a failed save leaves the
// previous table untouched.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/etnz/lifestock"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"
)

const backend = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS records (
    position   INTEGER PRIMARY KEY,
    date       TEXT NOT NULL,
    spending   TEXT NOT NULL,
    income     TEXT NOT NULL,
    sleep      TEXT NOT NULL,
    study      TEXT NOT NULL,
    weight     TEXT NOT NULL,
    diary      TEXT NOT NULL DEFAULT '',
    change     TEXT NOT NULL,
    price      TEXT NOT NULL,
    ai_comment TEXT
);
`

// Store persists a ledger in SQLite.
type Store struct {
	sqlDB *sql.DB
	path  string
}

// Open opens (or creates) a SQLite ledger store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Store{sqlDB: sqlDB, path: cleanPath}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Name returns the database path.
func (s *Store) Name() string { return s.path }

// Load reads all records in position order.
func (s *Store) Load(ctx context.Context) (*lifestock.Ledger, error) {
	if err := ctx.Err(); err != nil {
		return nil, lifestock.Unavailable("load", backend, err)
	}
	if s == nil || s.sqlDB == nil {
		return nil, lifestock.Unavailable("load", backend, fmt.Errorf("storage is not configured"))
	}
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT date, spending, income, sleep, study, weight, diary, change, price, ai_comment
FROM records ORDER BY position`)
	if err != nil {
		return nil, lifestock.Unavailable("load", backend, fmt.Errorf("query records: %w", err))
	}
	defer rows.Close()

	var records []lifestock.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, lifestock.Unavailable("load", backend, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, lifestock.Unavailable("load", backend, fmt.Errorf("iterate records: %w", err))
	}
	return lifestock.NewLedger(records...), nil
}

func scanRecord(rows *sql.Rows) (lifestock.Record, error) {
	var (
		date, diary                                           string
		spending, income, sleep, study, weight, change, price string
		comment                                               sql.NullString
	)
	if err := rows.Scan(&date, &spending, &income, &sleep, &study, &weight, &diary, &change, &price, &comment); err != nil {
		return lifestock.Record{}, fmt.Errorf("scan record: %w", err)
	}
	on, err := lifestock.ParseTimestamp(date)
	if err != nil {
		return lifestock.Record{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	var values [7]decimal.Decimal
	for i, s := range []string{spending, income, sleep, study, weight, change, price} {
		values[i], err = decimal.NewFromString(s)
		if err != nil {
			return lifestock.Record{}, fmt.Errorf("invalid number %q: %w", s, err)
		}
	}
	r := lifestock.Record{
		Timestamp: on,
		Inputs: lifestock.Inputs{
			Spending: values[0],
			Income:   values[1],
			Sleep:    values[2],
			Study:    values[3],
			Weight:   values[4],
			Diary:    diary,
		},
		Change: values[5],
		Price:  values[6],
	}
	if comment.Valid && comment.String != "" {
		r.Commentary = &comment.String
	}
	return r, r.Validate()
}

// Persist replaces the table content with l.
func (s *Store) Persist(ctx context.Context, l *lifestock.Ledger) error {
	if err := ctx.Err(); err != nil {
		return lifestock.Unavailable("persist", backend, err)
	}
	if s == nil || s.sqlDB == nil {
		return lifestock.Unavailable("persist", backend, fmt.Errorf("storage is not configured"))
	}
	if err := s.replace(ctx, l); err != nil {
		return lifestock.Unavailable("persist", backend, err)
	}
	return nil
}

func (s *Store) replace(ctx context.Context, l *lifestock.Ledger) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO records (position, date, spending, income, sleep, study, weight, diary, change, price, ai_comment)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range l.Records() {
		var comment sql.NullString
		if r.Commentary != nil {
			comment = sql.NullString{String: *r.Commentary, Valid: true}
		}
		_, err := stmt.ExecContext(ctx, i, r.Date(),
			r.Spending.String(), r.Income.String(), r.Sleep.String(), r.Study.String(), r.Weight.String(),
			r.Diary, r.Change.String(), r.Price.String(), comment)
		if err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
