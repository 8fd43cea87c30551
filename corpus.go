package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsprint/internal/config"
	"github.com/robalobadob/wordsprint/internal/db"
	"github.com/robalobadob/wordsprint/internal/words"
)

// openSource builds the configured corpus source. The returned close
// function releases any resources (the SQLite handle) and is always non-nil.
//
// For WORDS_SOURCE=sqlite an empty store is seeded from WORDS_FILE when set,
// otherwise from the embedded corpus.
func openSource(ctx context.Context, cfg config.Config) (words.Source, func(), error) {
	noop := func() {}

	switch cfg.WordsSource {
	case config.SourceFile:
		return words.FileSource{Path: cfg.WordsFile}, noop, nil

	case config.SourceSQLite:
		conn, err := db.Open(cfg.WordsDB)
		if err != nil {
			return nil, noop, fmt.Errorf("open %s: %w", cfg.WordsDB, err)
		}
		closeFn := func() {
			if err := conn.Close(); err != nil {
				log.Warn().Err(err).Msg("close words db")
			}
		}
		if err := db.Migrate(ctx, conn); err != nil {
			closeFn()
			return nil, noop, fmt.Errorf("migrate: %w", err)
		}

		var seed words.Source = words.EmbeddedSource{}
		if cfg.WordsFile != "" {
			seed = words.FileSource{Path: cfg.WordsFile}
		}
		entries, err := seed.Load(ctx)
		if err != nil {
			closeFn()
			return nil, noop, fmt.Errorf("load seed corpus: %w", err)
		}
		src := words.NewSQLiteSource(conn)
		if _, err := src.Bootstrap(ctx, entries); err != nil {
			closeFn()
			return nil, noop, err
		}
		return src, closeFn, nil

	default:
		return words.EmbeddedSource{}, noop, nil
	}
}
