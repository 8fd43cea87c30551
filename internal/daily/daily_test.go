package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsprint/internal/words"
)

func testCorpus() []words.Entry {
	return []words.Entry{
		words.NewEntry("crane", "animals", "nature"),
		words.NewEntry("otter", "animals"),
		words.NewEntry("pixel", "tech"),
		words.NewEntry("speed"),
		words.NewEntry("lemon", "food"),
	}
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestIndex_KnownDigests(t *testing.T) {
	// sha256("2024-06-01") starts 3b951b59, sha256("2024-06-02") starts 7d1b9783.
	assert.Equal(t, 999627609%5, Index("2024-06-01", 5))
	assert.Equal(t, 4, Index("2024-06-01", 5))
	assert.Equal(t, 0, Index("2024-06-01", 3))
	assert.Equal(t, 3, Index("2024-06-02", 4))
	assert.Equal(t, 0, Index("2025-01-01", 7))
}

func TestPick_Deterministic(t *testing.T) {
	corpus := testCorpus()
	first, err := Pick(corpus, "", day(t, "2024-06-01"))
	require.NoError(t, err)
	second, err := Pick(corpus, "", day(t, "2024-06-01"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "LEMON", first.Word)
	assert.Equal(t, "2024-06-01", first.Date)
	assert.False(t, first.Fallback)
}

func TestPick_CategoryFilter(t *testing.T) {
	// animals → [CRANE, OTTER]; 999627609 % 2 == 1
	sel, err := Pick(testCorpus(), "animals", day(t, "2024-06-01"))
	require.NoError(t, err)
	assert.Equal(t, "OTTER", sel.Word)
	assert.Equal(t, "animals", sel.Category)
	assert.False(t, sel.Fallback)

	sel, err = Pick(testCorpus(), "tech", day(t, "2024-06-02"))
	require.NoError(t, err)
	assert.Equal(t, "PIXEL", sel.Word)
}

func TestPick_UnknownCategoryFallsBack(t *testing.T) {
	corpus := testCorpus()
	full, err := Pick(corpus, "", day(t, "2024-06-01"))
	require.NoError(t, err)

	sel, err := Pick(corpus, "nonexistent-tag", day(t, "2024-06-01"))
	require.NoError(t, err)
	assert.True(t, sel.Fallback)
	assert.Equal(t, full.Word, sel.Word)
}

func TestPick_EmptyCorpus(t *testing.T) {
	_, err := Pick(nil, "", day(t, "2024-06-01"))
	assert.ErrorIs(t, err, ErrEmptyCorpus)

	_, err = Pick([]words.Entry{}, "animals", day(t, "2024-06-01"))
	assert.ErrorIs(t, err, ErrEmptyCorpus)
}

func TestPick_UsesCalendarDateOfLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	// 2024-05-31 20:00 UTC is already 2024-06-01 in Tokyo.
	utc := time.Date(2024, 5, 31, 20, 0, 0, 0, time.UTC)

	sel, err := Pick(testCorpus(), "", utc.In(tokyo))
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", sel.Date)

	sel, err = Pick(testCorpus(), "", utc)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-31", sel.Date)
}

func TestPick_TimeOfDayIgnored(t *testing.T) {
	morning := time.Date(2024, 6, 1, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)
	a, err := Pick(testCorpus(), "", morning)
	require.NoError(t, err)
	b, err := Pick(testCorpus(), "", night)
	require.NoError(t, err)
	assert.Equal(t, a.Word, b.Word)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-01", DateKey(d))

	for _, bad := range []string{"", "2024-6-1", "06/01/2024", "2024-13-01", "today"} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, bad)
	}
}
