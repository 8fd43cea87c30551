// internal/httpserver/routes_daily.go
//
// HTTP routes for the word of the day.
// Exposes three endpoints under /api:
//   - GET  /api/categories → distinct corpus tags, sorted
//   - GET  /api/daily      → metadata for today's word (never the word itself)
//   - POST /api/guess      → score a guess against today's word
//
// The corpus is loaded from the configured source on every request.
// Guesses are validated here; the evaluator assumes clean input.

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsprint/internal/daily"
	"github.com/robalobadob/wordsprint/internal/game"
	"github.com/robalobadob/wordsprint/internal/words"
)

// maxGuessBody caps the POST /api/guess payload.
const maxGuessBody = 1 << 10

// mountGame registers the game routes on r.
func (s *Server) mountGame(r chi.Router) {
	r.Get("/categories", s.handleCategories)
	r.Get("/daily", s.handleDaily)
	r.Post("/guess", s.handleGuess)
}

// day resolves the selection date: an explicit YYYY-MM-DD wins, otherwise
// the calendar date of the server clock in the configured location.
func (s *Server) day(explicit string) (time.Time, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return daily.ParseDate(explicit)
	}
	return s.now().In(s.loc), nil
}

// pick loads the corpus and selects the word for (category, day). On failure
// it writes the error response and returns ok=false.
func (s *Server) pick(w http.ResponseWriter, r *http.Request, category string, day time.Time) (daily.Selection, bool) {
	corpus, err := s.corpus.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load corpus")
		writeError(w, http.StatusInternalServerError, "corpus_unavailable", "")
		return daily.Selection{}, false
	}
	sel, err := daily.Pick(corpus, category, day)
	if errors.Is(err, daily.ErrEmptyCorpus) {
		log.Error().Err(err).Msg("pick daily word")
		writeError(w, http.StatusServiceUnavailable, "empty_corpus", "no words are configured")
		return daily.Selection{}, false
	}
	if err != nil {
		log.Error().Err(err).Msg("pick daily word")
		writeError(w, http.StatusInternalServerError, "server_error", "")
		return daily.Selection{}, false
	}
	if sel.Fallback {
		log.Debug().Str("category", category).Msg("category matched no words; using full corpus")
	}
	return sel, true
}

// -----------------------------------------------------------------------------
// /api/categories

type categoriesRes struct {
	Categories []string `json:"categories"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	corpus, err := s.corpus.Load(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("load corpus")
		writeError(w, http.StatusInternalServerError, "corpus_unavailable", "")
		return
	}
	writeJSON(w, http.StatusOK, categoriesRes{Categories: words.Categories(corpus)})
}

// -----------------------------------------------------------------------------
// /api/daily

// dailyRes describes today's puzzle without revealing the answer.
type dailyRes struct {
	Date     string `json:"date"`
	Category string `json:"category,omitempty"`
	Length   int    `json:"length"`
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	day, err := s.day(q.Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}
	category := strings.TrimSpace(q.Get("category"))
	sel, ok := s.pick(w, r, category, day)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, dailyRes{Date: sel.Date, Category: category, Length: len(sel.Word)})
}

// -----------------------------------------------------------------------------
// /api/guess

// guessReq is the request payload for /api/guess.
type guessReq struct {
	Guess    string `json:"guess"`
	Category string `json:"category,omitempty"`
	Date     string `json:"date,omitempty"` // YYYY-MM-DD; defaults to today
}

// guessRes is the response payload for /api/guess.
type guessRes struct {
	Result game.Result `json:"result"`
	Solved bool        `json:"solved"`
	Date   string      `json:"date"`
}

// handleGuess validates a guess and scores it against the day's word.
// - Rejects malformed or trailing JSON, wrong length, and non A–Z characters with 400.
// - Empty corpus is a server fault (503), distinct from client faults.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxGuessBody))
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json", "")
		return
	}
	// Exactly one JSON value per body.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json", "trailing data after request object")
		return
	}
	guess, err := game.NormalizeGuess(req.Guess)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_guess", err.Error())
		return
	}
	day, err := s.day(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date", err.Error())
		return
	}

	sel, ok := s.pick(w, r, strings.TrimSpace(req.Category), day)
	if !ok {
		return
	}
	res := game.Evaluate(sel.Word, guess)
	writeJSON(w, http.StatusOK, guessRes{Result: res, Solved: res.Solved(), Date: sel.Date})
}
