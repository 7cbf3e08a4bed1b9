package wordlist

import (
	"database/sql"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-wordle/internal/game"
	"github.com/vovakirdan/tui-wordle/internal/registry"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// SQLiteDictionary is a word list kept in a SQLite lookup table.
// It serves large lists without holding them in memory.
type SQLiteDictionary struct {
	db   *sql.DB
	name string
}

// OpenSQLite opens or creates a word database at dbPath.
// A leading ~ is expanded to the home directory.
func OpenSQLite(dbPath string) (*SQLiteDictionary, error) {
	name := MemoryDSN
	if dbPath != MemoryDSN {
		if dbPath != "" && dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("wordlist: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("wordlist: cannot create directory %s: %w", dir, err)
		}
		name = filepath.Base(dbPath)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("wordlist: cannot open database: %w", err)
	}
	// Every pooled connection to :memory: would see its own empty database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("wordlist: cannot connect to database: %w", err)
	}

	d := &SQLiteDictionary{db: db, name: name}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("wordlist: migration failed: %w", err)
	}
	return d, nil
}

func (d *SQLiteDictionary) migrate() error {
	_, err := d.db.Exec(`
		CREATE TABLE IF NOT EXISTS words (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			word TEXT NOT NULL UNIQUE
		);
	`)
	return err
}

// Close closes the database connection.
func (d *SQLiteDictionary) Close() error {
	if d.db != nil {
		return d.db.Close()
	}
	return nil
}

// Import adds words in one transaction, skipping ones already present.
// Returns the number of rows inserted.
func (d *SQLiteDictionary) Import(words []string) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("wordlist: cannot begin import: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR IGNORE INTO words (word) VALUES (?)")
	if err != nil {
		return 0, fmt.Errorf("wordlist: cannot prepare import: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if !game.IsWord(w) {
			return 0, fmt.Errorf("wordlist: invalid word %q", w)
		}
		res, err := stmt.Exec(w)
		if err != nil {
			return 0, fmt.Errorf("wordlist: cannot insert %q: %w", w, err)
		}
		if n, err := res.RowsAffected(); err == nil {
			inserted += int(n)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("wordlist: cannot commit import: %w", err)
	}
	return inserted, nil
}

// Name returns the database file name.
func (d *SQLiteDictionary) Name() string {
	return d.name
}

// Count returns the number of stored words.
func (d *SQLiteDictionary) Count() (int, error) {
	var n int
	if err := d.db.QueryRow("SELECT COUNT(*) FROM words").Scan(&n); err != nil {
		return 0, fmt.Errorf("wordlist: cannot count words: %w", err)
	}
	return n, nil
}

// Len returns the number of stored words, or 0 if the count fails.
func (d *SQLiteDictionary) Len() int {
	n, err := d.Count()
	if err != nil {
		return 0
	}
	return n
}

// Contains reports whether word is stored, ignoring case.
// Query errors count as not found.
func (d *SQLiteDictionary) Contains(word string) bool {
	var one int
	err := d.db.QueryRow(
		"SELECT 1 FROM words WHERE word = ? LIMIT 1",
		strings.ToLower(word),
	).Scan(&one)
	return err == nil
}

// Pick returns a uniformly chosen stored word.
func (d *SQLiteDictionary) Pick(rng *rand.Rand) (string, error) {
	n, err := d.Count()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", ErrEmpty
	}

	var offset int
	if rng != nil {
		offset = rng.Intn(n)
	} else {
		offset = rand.Intn(n)
	}

	var w string
	err = d.db.QueryRow(
		"SELECT word FROM words ORDER BY id LIMIT 1 OFFSET ?",
		offset,
	).Scan(&w)
	if err != nil {
		return "", fmt.Errorf("wordlist: cannot pick word: %w", err)
	}
	return w, nil
}

// Words returns all stored words in insertion order.
func (d *SQLiteDictionary) Words() []string {
	rows, err := d.db.Query("SELECT word FROM words ORDER BY id")
	if err != nil {
		return nil
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil
		}
		words = append(words, w)
	}
	return words
}

var (
	_ registry.WordList = (*SQLiteDictionary)(nil)
	_ game.WordSource   = (*SQLiteDictionary)(nil)
)
