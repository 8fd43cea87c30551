// internal/game/types.go
//
// Core type definitions for guess evaluation.
// Defines:
//   - LetterStatus: per-letter result of a guess (correct/present/absent).
//   - Result: ordered statuses for a whole guess.

package game

// WordLength is the fixed number of letters in answers and guesses.
const WordLength = 5

// LetterStatus represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the answer at the same position.
//   - "present": letter exists in the answer but at a different position.
//   - "absent":  no unclaimed occurrence of the letter remains in the answer.
type LetterStatus string

const (
	StatusCorrect LetterStatus = "correct"
	StatusPresent LetterStatus = "present"
	StatusAbsent  LetterStatus = "absent"
)

// Valid reports whether s is one of the three known statuses.
func (s LetterStatus) Valid() bool {
	switch s {
	case StatusCorrect, StatusPresent, StatusAbsent:
		return true
	}
	return false
}

// Result is the per-position outcome of evaluating a guess.
// It always has the same length as the guess.
type Result []LetterStatus

// Solved reports true if every position is StatusCorrect.
func (r Result) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, s := range r {
		if s != StatusCorrect {
			return false
		}
	}
	return true
}
