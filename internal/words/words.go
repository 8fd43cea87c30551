// internal/words/words.go
//
// Word corpus model for the daily game.
//
// Responsibilities:
//   - Entry: an immutable {word, tags} record, uppercased at construction.
//   - Decode corpora from JSON or YAML into entries.
//   - Derive the category list (distinct tags) from a corpus.
//
// Constraints:
//   • Words must be 5 alphabetic letters (A–Z) after normalization.
//   • Entries that fail the constraint are skipped with a warning.
//   • Corpus order is significant: daily selection indexes into it.

package words

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordsprint/internal/game"
)

// Entry is one corpus record. Treat as read-only once constructed.
type Entry struct {
	Word string   `json:"word" yaml:"word"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// NewEntry uppercases and trims word and drops blank tags.
func NewEntry(word string, tags ...string) Entry {
	e := Entry{Word: strings.ToUpper(strings.TrimSpace(word))}
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			e.Tags = append(e.Tags, t)
		}
	}
	return e
}

// HasTag reports whether the entry carries tag exactly.
func (e Entry) HasTag(tag string) bool {
	for _, t := range e.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Format is a corpus encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a Format from a file extension (.json, .yaml, .yml).
func FormatFromPath(path string) (Format, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	case strings.HasSuffix(lower, ".yaml"), strings.HasSuffix(lower, ".yml"):
		return FormatYAML, nil
	}
	return "", fmt.Errorf("words: unsupported corpus format %q", path)
}

// Decode parses raw corpus bytes into normalized entries.
// Both formats are a top-level list of {word, tags} records.
func Decode(data []byte, f Format) ([]Entry, error) {
	var raw []Entry
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("words: decode json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("words: decode yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("words: unknown format %q", f)
	}
	return Normalize(raw), nil
}

// Normalize returns a new slice with every entry passed through NewEntry,
// keeping only valid game words. Order is preserved.
func Normalize(raw []Entry) []Entry {
	out := make([]Entry, 0, len(raw))
	for _, r := range raw {
		e := NewEntry(r.Word, r.Tags...)
		if len(e.Word) != game.WordLength || !game.IsAlpha(e.Word) {
			log.Warn().Str("word", r.Word).Msg("skipping invalid corpus entry")
			continue
		}
		out = append(out, e)
	}
	return out
}

// Categories returns the sorted, de-duplicated set of tags across corpus.
func Categories(corpus []Entry) []string {
	seen := make(map[string]struct{})
	for _, e := range corpus {
		for _, t := range e.Tags {
			seen[t] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for t := range seen {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
