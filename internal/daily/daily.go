// internal/daily/daily.go
//
// Deterministic "word of the day" selection.
// The same (date, category, corpus) always yields the same word, and no
// stored state is needed for separate processes to agree on it.

package daily

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/robalobadob/wordsprint/internal/words"
)

// DateLayout is the ISO 8601 calendar date used as the selection key.
const DateLayout = "2006-01-02"

var (
	// ErrEmptyCorpus means no candidate words remain, even after category fallback.
	ErrEmptyCorpus = errors.New("daily: no words available to choose from")
	// ErrInvalidDate is returned by ParseDate for anything but YYYY-MM-DD.
	ErrInvalidDate = errors.New("daily: date must be YYYY-MM-DD")
)

// Selection is the outcome of Pick.
type Selection struct {
	Word     string
	Date     string
	Category string
	// Fallback is true when Category matched no entries and the full
	// corpus was used instead.
	Fallback bool
}

// DateKey returns YYYY-MM-DD for t in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a YYYY-MM-DD string as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Index returns SHA-256(dateKey), first 4 bytes as a big-endian uint32,
// modulo n. n must be positive.
func Index(dateKey string, n int) int {
	sum := sha256.Sum256([]byte(dateKey))
	v := binary.BigEndian.Uint32(sum[:4])
	return int(uint64(v) % uint64(n))
}

// Filter returns the entries tagged with category. An empty category
// returns corpus unchanged.
func Filter(corpus []words.Entry, category string) []words.Entry {
	if category == "" {
		return corpus
	}
	var out []words.Entry
	for _, e := range corpus {
		if e.HasTag(category) {
			out = append(out, e)
		}
	}
	return out
}

// Pick selects the word for day from corpus.
//
// A non-empty category restricts candidates to entries carrying that tag;
// if none do, the whole corpus is used. Only the calendar date of day (in
// its own location) matters. Returns ErrEmptyCorpus when there is nothing
// to choose from.
func Pick(corpus []words.Entry, category string, day time.Time) (Selection, error) {
	sel := Selection{Date: DateKey(day), Category: category}

	candidates := Filter(corpus, category)
	if len(candidates) == 0 {
		candidates = corpus
		sel.Fallback = category != ""
	}
	if len(candidates) == 0 {
		return Selection{}, ErrEmptyCorpus
	}

	sel.Word = candidates[Index(sel.Date, len(candidates))].Word
	return sel, nil
}
