// Package store implements the durable clipboard history: a SQLite table of
// entries indexed by creation time and content hash, with a rolling retention
// window. All writes come from the single-threaded daemon loop; CLI query
// commands open their own read-only handle and rely on SQLite's WAL
// single-writer/multi-reader semantics.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "modernc.org/sqlite"

	"github.com/olajoao/sticky-one/internal/entry"
)

// NotFoundError reports a lookup for an entry ID with no matching row.
type NotFoundError struct {
	ID int64
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("entry not found: %d", e.ID)
}

// Store is a handle to the clipboard history database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id INTEGER PRIMARY KEY,
	content_type TEXT NOT NULL,
	content TEXT,
	image_data BLOB,
	hash TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_created_at ON entries(created_at);
CREATE INDEX IF NOT EXISTS idx_hash ON entries(hash);
`

// Open opens (creating if necessary) the history database at path. The parent
// directory is created and, on unix, the database file is restricted to the
// owning user.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s, err := open(path)
	if err != nil {
		return nil, err
	}

	if runtime.GOOS != "windows" {
		if err := os.Chmod(path, 0o600); err != nil {
			s.Close()
			return nil, fmt.Errorf("restrict db permissions: %w", err)
		}
	}
	return s, nil
}

// OpenInMemory opens a throwaway in-memory store, used by tests.
func OpenInMemory() (*Store, error) {
	return open(":memory:")
}

func open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc.org/sqlite serialises writes per connection; a single
	// connection also keeps :memory: databases alive across calls.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Insert appends e as a new row, assigns the next ID, and returns it. No
// dedup happens here: the daemon loop suppresses consecutive duplicates, but
// the store itself permits repeated hashes.
func (s *Store) Insert(e *entry.Entry) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO entries (content_type, content, image_data, hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(e.Type), nullableText(e), e.ImageData, e.Hash, e.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert entry: %w", err)
	}
	e.ID = id
	return id, nil
}

// LatestFingerprint returns the hash of the most recently created entry, or
// "" if the store is empty. The daemon uses it to seed its dedup state
// without loading payloads.
func (s *Store) LatestFingerprint() (string, error) {
	var hash string
	err := s.db.QueryRow(
		"SELECT hash FROM entries ORDER BY created_at DESC, id DESC LIMIT 1",
	).Scan(&hash)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("latest fingerprint: %w", err)
	}
	return hash, nil
}

// GetByID returns the entry with the given ID, or a NotFoundError.
func (s *Store) GetByID(id int64) (*entry.Entry, error) {
	row := s.db.QueryRow(
		`SELECT id, content_type, content, image_data, hash, created_at
		 FROM entries WHERE id = ?`, id,
	)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	return e, nil
}

// List returns the most recent limit entries, newest first.
func (s *Store) List(limit int) ([]*entry.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, content_type, content, image_data, hash, created_at
		 FROM entries ORDER BY created_at DESC, id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return collectEntries(rows)
}

// Search returns entries whose content contains query as a case-sensitive
// substring, newest first, capped at limit. Image entries have no content
// and are never matched.
func (s *Store) Search(query string, limit int) ([]*entry.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, content_type, content, image_data, hash, created_at
		 FROM entries WHERE content GLOB ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		"*"+globEscape(query)+"*", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("search entries: %w", err)
	}
	return collectEntries(rows)
}

// EvictExpired deletes entries older than the retention window and returns
// how many were removed. Called once at daemon startup and after every
// successful insert; the store runs no timers of its own.
func (s *Store) EvictExpired(retentionHours int) (int64, error) {
	cutoff := time.Now().Unix() - int64(retentionHours)*3600
	res, err := s.db.Exec("DELETE FROM entries WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("evict expired: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("evict expired: %w", err)
	}
	return n, nil
}

// Clear deletes all entries and returns how many were removed.
func (s *Store) Clear() (int64, error) {
	res, err := s.db.Exec("DELETE FROM entries")
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clear entries: %w", err)
	}
	return n, nil
}

// Count returns the number of live entries.
func (s *Store) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func nullableText(e *entry.Entry) any {
	if e.Type == entry.TypeImage {
		return nil
	}
	return e.Content
}

type scanner interface {
	Scan(dest ...any) error
}

// scanEntry decodes one row. An unrecognized content_type tag is coerced to
// text so one malformed row cannot break listing the rest.
func scanEntry(row scanner) (*entry.Entry, error) {
	var (
		e       entry.Entry
		typ     string
		content sql.NullString
	)
	if err := row.Scan(&e.ID, &typ, &content, &e.ImageData, &e.Hash, &e.CreatedAt); err != nil {
		return nil, err
	}
	e.Type, _ = entry.ParseContentType(typ)
	e.Content = content.String
	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]*entry.Entry, error) {
	defer rows.Close()
	var entries []*entry.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan entries: %w", err)
	}
	return entries, nil
}

// globEscape neutralises GLOB metacharacters so Search stays a plain
// substring match. GLOB is used instead of LIKE for case sensitivity.
func globEscape(s string) string {
	var out []rune
	for _, r := range s {
		switch r {
		case '*', '?', '[':
			out = append(out, '[', r, ']')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
