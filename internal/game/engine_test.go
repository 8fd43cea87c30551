package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	c = StatusCorrect
	p = StatusPresent
	a = StatusAbsent
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		guess  string
		want   Result
	}{
		{"exact match", "CRANE", "CRANE", Result{c, c, c, c, c}},
		{"no shared letters", "CRANE", "PUDGY", Result{a, a, a, a, a}},
		{"shared R and E in place", "CRANE", "ARISE", Result{p, c, a, a, c}},
		{"double E in guess and answer", "SPEED", "ERASE", Result{p, a, a, p, p}},
		{"correct consumes the only E", "CRANE", "EERIE", Result{a, a, p, a, c}},
		{"repeated B split between correct and present", "ABBEY", "KEBAB", Result{a, p, c, p, p}},
		{"one L in answer, three in guess", "PLANT", "LLLLL", Result{a, c, a, a, a}},
		{"present before later correct of same letter", "ALLOT", "LOLLY", Result{p, p, c, a, a}},
		{"lowercase input", "crane", "arise", Result{p, c, a, a, c}},
		{"mixed case", "Speed", "eRaSe", Result{p, a, a, p, p}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.answer, tt.guess))
		})
	}
}

func TestEvaluate_LetterBudgetNeverExceeded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const alphabet = "ABCDE" // small alphabet forces plenty of repeats
	const foreign = "VWXYZ"

	word := func() string {
		var sb strings.Builder
		for i := 0; i < WordLength; i++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		return sb.String()
	}

	for i := 0; i < 2000; i++ {
		answer, guess := word(), word()
		res := Evaluate(answer, guess)
		require.Len(t, res, len(guess))

		hits := map[byte]int{}
		for j, s := range res {
			require.True(t, s.Valid())
			if s != StatusAbsent {
				hits[guess[j]]++
			}
		}
		for letter, n := range hits {
			assert.LessOrEqual(t, n, strings.Count(answer, string(letter)),
				"answer=%s guess=%s letter=%c", answer, guess, letter)
		}

		self := Evaluate(answer, answer)
		assert.True(t, self.Solved(), "answer=%s", answer)
		for _, s := range self {
			require.Equal(t, StatusCorrect, s, "answer=%s", answer)
		}

		// Letters outside the answer alphabet never score.
		var disjoint strings.Builder
		for j := 0; j < WordLength; j++ {
			disjoint.WriteByte(foreign[rng.Intn(len(foreign))])
		}
		for j, s := range Evaluate(answer, disjoint.String()) {
			require.Equal(t, StatusAbsent, s, "answer=%s guess=%s pos=%d", answer, disjoint.String(), j)
		}
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	first := Evaluate("SPEED", "ERASE")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Evaluate("SPEED", "ERASE"))
	}
}

func TestResult_Solved(t *testing.T) {
	assert.True(t, Evaluate("CRANE", "crane").Solved())
	assert.False(t, Evaluate("CRANE", "CRANK").Solved())
	assert.False(t, Result{}.Solved())
}

func TestNormalizeGuess(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr error
	}{
		{"crane", "CRANE", nil},
		{"  Crane \n", "CRANE", nil},
		{"cran", "", ErrInvalidGuessLength},
		{"cranes", "", ErrInvalidGuessLength},
		{"", "", ErrInvalidGuessLength},
		{"cr4ne", "", ErrInvalidGuessCharacters},
		{"cr ne", "", ErrInvalidGuessCharacters},
		{"crané", "", ErrInvalidGuessLength},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := NormalizeGuess(tt.raw)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
