// Package cache provides a local sqlite-backed cache of constructed
// layouts for the crossgen CLI, so rebuilding a layout for a word list
// already seen on this machine never re-runs the search.
package cache

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LayoutCache stores rendered layouts keyed by the content hash of
// their input word list.
type LayoutCache struct {
	db *sql.DB
}

// Open opens (creating if necessary) the sqlite cache database at path
// and ensures its schema exists.
func Open(path string) (*LayoutCache, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS layout_cache (
		hash       TEXT PRIMARY KEY,
		word_count INTEGER NOT NULL,
		grid       TEXT NOT NULL,
		entries    TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init cache schema: %w", err)
	}

	return &LayoutCache{db: db}, nil
}

func (c *LayoutCache) Close() error {
	return c.db.Close()
}

// Get retrieves a previously cached rendering for hash.
// Returns (grid, entries, true) if found, ("", "", false) otherwise,
// treating database errors the same as a miss.
func (c *LayoutCache) Get(hash string) (grid string, entriesJSON string, ok bool) {
	if c.db == nil {
		return "", "", false
	}

	err := c.db.QueryRow(`
		SELECT grid, entries FROM layout_cache WHERE hash = ?
	`, hash).Scan(&grid, &entriesJSON)
	if err != nil {
		return "", "", false
	}
	return grid, entriesJSON, true
}

// Save inserts or replaces the cached rendering for hash.
func (c *LayoutCache) Save(hash string, wordCount int, grid, entriesJSON string) error {
	if hash == "" {
		return fmt.Errorf("hash cannot be empty")
	}
	if grid == "" {
		return fmt.Errorf("grid cannot be empty")
	}

	_, err := c.db.Exec(`
		INSERT INTO layout_cache (hash, word_count, grid, entries)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(hash) DO UPDATE SET word_count = excluded.word_count,
			grid = excluded.grid, entries = excluded.entries
	`, hash, wordCount, grid, entriesJSON)
	if err != nil {
		return fmt.Errorf("failed to save layout: %w", err)
	}
	return nil
}

// Stats summarizes the contents of the cache for display by the stats command.
type Stats struct {
	TotalEntries  int
	SmallestWords int
	LargestWords  int
}

func (c *LayoutCache) Stats() (Stats, error) {
	var s Stats
	var smallest, largest sql.NullInt64

	err := c.db.QueryRow(`
		SELECT COUNT(*), MIN(word_count), MAX(word_count) FROM layout_cache
	`).Scan(&s.TotalEntries, &smallest, &largest)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to query cache stats: %w", err)
	}

	s.SmallestWords = int(smallest.Int64)
	s.LargestWords = int(largest.Int64)
	return s, nil
}

// SizeHistogram returns entry counts keyed by word-list size, for the
// stats command's breakdown; the map carries no order.
func (c *LayoutCache) SizeHistogram() (map[int]int, error) {
	rows, err := c.db.Query(`
		SELECT word_count, COUNT(*) FROM layout_cache
		GROUP BY word_count ORDER BY word_count
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query size histogram: %w", err)
	}
	defer rows.Close()

	hist := make(map[int]int)
	for rows.Next() {
		var wordCount, count int
		if err := rows.Scan(&wordCount, &count); err != nil {
			return nil, fmt.Errorf("failed to scan histogram row: %w", err)
		}
		hist[wordCount] = count
	}
	return hist, rows.Err()
}
