// Package store provides a SQLite-backed snapshot cache for parsed itineraries.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jkhomeclaw/tripview/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// Cache stores the last good parse of each data source.
type Cache struct {
	db *sql.DB
}

// Entry is one cached snapshot.
type Entry struct {
	Source    string
	MtimeNs   int64
	SizeBytes int64
	Trip      model.Trip
	ParsedAt  time.Time
}

// Open opens or creates the cache database at the given path.
func Open(dbPath string) (*Cache, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)")
	if err != nil {
		return nil, fmt.Errorf("opening cache db: %w", err)
	}

	c, err := New(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return c, nil
}

// New wraps an already-open database and ensures the schema exists.
func New(db *sql.DB) (*Cache, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the cache database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the snapshot for source. ok is false when nothing is cached.
func (c *Cache) Get(source string) (e Entry, ok bool, err error) {
	var payload []byte
	var parsedAt string

	err = c.db.QueryRow(
		"SELECT mtime_ns, size_bytes, payload, parsed_at FROM trips WHERE source = ?", source,
	).Scan(&e.MtimeNs, &e.SizeBytes, &payload, &parsedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("reading %s: %w", source, err)
	}

	if err := json.Unmarshal(payload, &e.Trip); err != nil {
		return Entry{}, false, fmt.Errorf("decoding cached %s: %w", source, err)
	}
	e.Trip.ResolveDates()
	e.Source = source
	e.ParsedAt, _ = time.Parse(time.RFC3339, parsedAt)
	return e, true, nil
}

// Put stores trip as the snapshot for source, replacing any previous one.
func (c *Cache) Put(source string, mtimeNs, sizeBytes int64, trip model.Trip) error {
	payload, err := json.Marshal(trip)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", source, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = c.db.Exec(`INSERT OR REPLACE INTO trips
		(source, mtime_ns, size_bytes, payload, parsed_at)
		VALUES (?, ?, ?, ?, ?)`,
		source, mtimeNs, sizeBytes, payload, now,
	)
	return err
}

// Delete removes the snapshot for source.
func (c *Cache) Delete(source string) error {
	_, err := c.db.Exec("DELETE FROM trips WHERE source = ?", source)
	return err
}

// Count returns the number of cached snapshots.
func (c *Cache) Count() (int, error) {
	var count int
	err := c.db.QueryRow("SELECT COUNT(*) FROM trips").Scan(&count)
	return count, err
}
