// Package cache implements an incremental diagnostics cache keyed by
// file path, with the file's content hash deciding whether a stored
// entry is still valid, backed by modernc.org/sqlite (pure Go, no cgo) so
// the CLI can skip re-resolving files that haven't changed since the
// last run (SPEC_FULL.md §2 Domain Stack).
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/dorichev/lit/internal/diagnostics"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	file TEXT PRIMARY KEY,
	content_hash TEXT NOT NULL,
	had_error INTEGER NOT NULL,
	diagnostics TEXT NOT NULL
);
`

// Cache wraps a sqlite database storing one row per resolved file.
type Cache struct {
	db *sql.DB
}

// Open creates or reuses the sqlite database at path.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Hash returns the content hash Cache uses as its change-detection key.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// record is the JSON-serializable form of diagnostics.DiagnosticError
// stored in the cache; diagnostics.Sink itself is write-only from the
// resolver's perspective, so this is a plain mirror of its fields.
type record struct {
	Code    string `json:"code"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	File    string `json:"file"`
	Message string `json:"message"`
}

// Lookup returns the cached diagnostics for file if its content hash
// still matches what's stored, and false otherwise (cache miss: the
// caller must re-resolve).
func (c *Cache) Lookup(file string, contentHash string) ([]*diagnostics.DiagnosticError, bool, error) {
	var storedHash string
	var hadError int
	var blob string
	err := c.db.QueryRow(
		`SELECT content_hash, had_error, diagnostics FROM runs WHERE file = ?`, file,
	).Scan(&storedHash, &hadError, &blob)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: lookup %s: %w", file, err)
	}
	if storedHash != contentHash {
		return nil, false, nil
	}

	var recs []record
	if err := json.Unmarshal([]byte(blob), &recs); err != nil {
		return nil, false, fmt.Errorf("cache: decode %s: %w", file, err)
	}
	out := make([]*diagnostics.DiagnosticError, len(recs))
	for i, r := range recs {
		out[i] = &diagnostics.DiagnosticError{
			Code:    diagnostics.ErrorCode(r.Code),
			File:    r.File,
			Message: r.Message,
		}
		out[i].Token.Line = r.Line
		out[i].Token.Column = r.Column
	}
	return out, true, nil
}

// Store records the result of resolving file at contentHash.
func (c *Cache) Store(file, contentHash string, errs []*diagnostics.DiagnosticError) error {
	recs := make([]record, len(errs))
	for i, e := range errs {
		recs[i] = record{
			Code:    string(e.Code),
			Line:    e.Token.Line,
			Column:  e.Token.Column,
			File:    e.File,
			Message: e.Message,
		}
	}
	blob, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("cache: encode %s: %w", file, err)
	}
	_, err = c.db.Exec(
		`INSERT INTO runs (file, content_hash, had_error, diagnostics) VALUES (?, ?, ?, ?)
		 ON CONFLICT(file) DO UPDATE SET content_hash = excluded.content_hash, had_error = excluded.had_error, diagnostics = excluded.diagnostics`,
		file, contentHash, boolToInt(len(errs) > 0), string(blob),
	)
	if err != nil {
		return fmt.Errorf("cache: store %s: %w", file, err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
