// Package lifestock turns daily self-tracking metrics into a synthetic stock
// price that represents personal progress.
//
// The core functionalities include:
//   - Scoring: a deterministic rule mapping the previous price and one day of
//     inputs (spending, sleep, study) to a new price and a percentage change.
//   - Ledger Management: an append-only, chronological list of daily records.
//     Records are identified by position; deleting records renumbers them but
//     never recomputes the derived prices.
//   - Data Persistence: interchangeable stores that overwrite the whole table on
//     each save, as CSV or JSONL files (and SQLite in the sqlite package).
//   - Tracking: the Tracker composes scoring, an optional commentary from a text
//     generation service, and persistence into the user operations.
//
// This package serves as the foundational logic for the `lsk` command-line tool.
package lifestock
