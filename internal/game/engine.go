// internal/game/engine.go
//
// Guess evaluation for the daily word game.
// Responsibilities:
//   - Normalize and validate raw guesses (length, alphabetic A–Z).
//   - Score guesses using the classic two‑pass algorithm.
//
// Notes:
//   - Evaluate does not re-validate its inputs; callers run NormalizeGuess first.
//   - Both answer and guess are uppercased before comparison.
package game

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidGuessLength is returned when a guess is not WordLength letters.
	ErrInvalidGuessLength = errors.New("guess must be exactly 5 letters")
	// ErrInvalidGuessCharacters is returned when a guess contains anything but A–Z.
	ErrInvalidGuessCharacters = errors.New("guess must contain only letters A-Z")
)

// NormalizeGuess trims and uppercases a raw guess and checks it is exactly
// WordLength ASCII letters.
func NormalizeGuess(raw string) (string, error) {
	g := strings.ToUpper(strings.TrimSpace(raw))
	if len(g) != WordLength {
		return "", ErrInvalidGuessLength
	}
	if !IsAlpha(g) {
		return "", ErrInvalidGuessCharacters
	}
	return g, nil
}

// Evaluate compares guess against answer and returns one status per guess
// position.
//
// Pass 1:
//   - Mark exact matches as correct.
//   - Count the answer letters at every non-matching position.
//
// Pass 2:
//   - For each non-correct guess letter: if that letter still has a count,
//     mark it present and consume one; otherwise it stays absent.
//
// Correct matches are all resolved before any present decision, so a letter
// already used up by correct positions is never reported present again.
// Answer and guess must have equal length.
func Evaluate(answer, guess string) Result {
	answer = strings.ToUpper(answer)
	guess = strings.ToUpper(guess)

	n := len(guess)
	res := make(Result, n)
	remaining := make(map[byte]int, n)

	for i := 0; i < n; i++ {
		res[i] = StatusAbsent
		if guess[i] == answer[i] {
			res[i] = StatusCorrect
		} else {
			remaining[answer[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == StatusCorrect {
			continue
		}
		if c := guess[i]; remaining[c] > 0 {
			res[i] = StatusPresent
			remaining[c]--
		}
	}
	return res
}

// IsAlpha reports whether s consists only of uppercase A–Z.
func IsAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
