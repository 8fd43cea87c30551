// internal/words/source.go
//
// Corpus sources. Every Load call returns a freshly built slice, so callers
// get an immutable snapshot per request and nothing is cached here.

package words

import (
	"context"
	"fmt"
	"os"

	"github.com/robalobadob/wordsprint/assets"
)

// Source supplies the word corpus.
type Source interface {
	Load(ctx context.Context) ([]Entry, error)
}

// StaticSource serves a fixed in-memory corpus.
type StaticSource []Entry

// Load returns a copy of the static entries.
func (s StaticSource) Load(ctx context.Context) ([]Entry, error) {
	out := make([]Entry, len(s))
	copy(out, s)
	return out, nil
}

// EmbeddedSource serves the corpus compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Load(ctx context.Context) ([]Entry, error) {
	b, err := assets.DefaultCorpus()
	if err != nil {
		return nil, fmt.Errorf("words: read embedded corpus: %w", err)
	}
	return Decode(b, FormatJSON)
}

// FileSource reads a JSON or YAML corpus from disk on every Load.
type FileSource struct {
	Path string
}

func (f FileSource) Load(ctx context.Context) ([]Entry, error) {
	format, err := FormatFromPath(f.Path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", f.Path, err)
	}
	return Decode(b, format)
}
