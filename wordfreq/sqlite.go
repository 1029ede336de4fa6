package wordfreq

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"
)

// SQLiteCounter counts words in a throwaway on-disk SQLite database,
// trading speed for memory that stays flat however large the input gets.
// The database file lives in the system temp directory and is removed
// by Close.
type SQLiteCounter struct {
	db   *sql.DB
	path string
	incr *sql.Stmt
}

var _ Counter = (*SQLiteCounter)(nil)

func NewSQLiteCounter() (*SQLiteCounter, error) {
	f, err := os.CreateTemp("", "wordfreq-*.db")
	if err != nil {
		return nil, fmt.Errorf("create temp database: %w", err)
	}

	path := f.Name()
	f.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		os.Remove(path)
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	if _, err := db.Exec(`
		CREATE TABLE word_counts (
			word TEXT PRIMARY KEY,
			count INTEGER DEFAULT 0
		)
	`); err != nil {
		db.Close()
		os.Remove(path)

		return nil, fmt.Errorf("create word_counts: %w", err)
	}

	incr, err := db.Prepare(`
		INSERT INTO word_counts (word, count) VALUES (?, 1)
		ON CONFLICT(word) DO UPDATE SET count = count + 1
	`)
	if err != nil {
		db.Close()
		os.Remove(path)

		return nil, fmt.Errorf("prepare increment: %w", err)
	}

	return &SQLiteCounter{db: db, path: path, incr: incr}, nil
}

func (c *SQLiteCounter) Increment(word string) error {
	if _, err := c.incr.Exec(word); err != nil {
		return fmt.Errorf("increment %q: %w", word, err)
	}

	return nil
}

func (c *SQLiteCounter) TopWords(n int) ([]WordCount, error) {
	// SQLite treats a negative LIMIT as "no limit", matching TopWords.
	rows, err := c.db.Query(`
		SELECT word, count FROM word_counts
		ORDER BY count DESC, word ASC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("query top words: %w", err)
	}
	defer rows.Close()

	var entries []WordCount
	for rows.Next() {
		var e WordCount
		if err := rows.Scan(&e.Word, &e.Count); err != nil {
			return nil, fmt.Errorf("scan top words: %w", err)
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Close shuts the database down and deletes its file. Safe to call once;
// the counter is unusable afterwards.
func (c *SQLiteCounter) Close() error {
	err := c.incr.Close()

	if dbErr := c.db.Close(); err == nil {
		err = dbErr
	}
	if rmErr := os.Remove(c.path); err == nil {
		err = rmErr
	}

	return err
}

// Path returns the location of the backing database file. Useful for tests
// that check cleanup; the file is gone after Close.
func (c *SQLiteCounter) Path() string {
	return c.path
}
