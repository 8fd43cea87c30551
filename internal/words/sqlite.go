// internal/words/sqlite.go
//
// SQLite-backed corpus source. Schema lives in internal/db/migrations.

package words

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// SQLiteSource reads the corpus from the words/word_tags tables.
type SQLiteSource struct {
	DB *sql.DB
}

// NewSQLiteSource wraps an open, migrated database handle.
func NewSQLiteSource(db *sql.DB) *SQLiteSource { return &SQLiteSource{DB: db} }

// Load returns one entry per stored record ordered by position, each with
// its tags in insertion order. Repeated words stay separate entries.
func (s *SQLiteSource) Load(ctx context.Context) ([]Entry, error) {
	rows, err := s.DB.QueryContext(ctx, `
        SELECT w.id, w.word, COALESCE(t.tag, '')
        FROM words w
        LEFT JOIN word_tags t ON t.word_id = w.id
        ORDER BY w.position ASC, t.rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("words: query corpus: %w", err)
	}
	defer rows.Close()

	var (
		raw    []Entry
		lastID int64 = -1
	)
	for rows.Next() {
		var (
			id        int64
			word, tag string
		)
		if err := rows.Scan(&id, &word, &tag); err != nil {
			return nil, fmt.Errorf("words: scan corpus: %w", err)
		}
		if id != lastID {
			raw = append(raw, Entry{Word: word})
			lastID = id
		}
		if tag != "" {
			last := &raw[len(raw)-1]
			last.Tags = append(last.Tags, tag)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("words: iterate corpus: %w", err)
	}
	return Normalize(raw), nil
}

// Count returns the number of stored words.
func (s *SQLiteSource) Count(ctx context.Context) (int, error) {
	var n int
	err := s.DB.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n)
	return n, err
}

// Bootstrap seeds an empty store with entries, one row per entry in order.
// It is a no-op when any word is already present; a stored count that
// differs from len(entries) is logged as a warning since the store then
// serves a different corpus than the seed. Returns the number of rows
// inserted.
func (s *SQLiteSource) Bootstrap(ctx context.Context, entries []Entry) (int, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("words: count: %w", err)
	}
	if n > 0 {
		if n != len(entries) {
			log.Warn().
				Int("stored", n).
				Int("seed", len(entries)).
				Msg("corpus store differs from seed corpus; keeping stored words")
		} else {
			log.Debug().Int("words", n).Msg("corpus store already seeded")
		}
		return 0, nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	for i, e := range entries {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO words(word, position) VALUES (?, ?)`, e.Word, i)
		if err != nil {
			return 0, fmt.Errorf("words: insert %s: %w", e.Word, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, err
		}
		for _, t := range e.Tags {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO word_tags(word_id, tag) VALUES (?, ?)`, id, t); err != nil {
				return 0, fmt.Errorf("words: tag %s: %w", e.Word, err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("words: commit seed: %w", err)
	}
	log.Info().Int("words", len(entries)).Msg("seeded corpus store")
	return len(entries), nil
}
