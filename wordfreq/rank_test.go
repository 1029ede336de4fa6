package wordfreq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopWords_Ordering(t *testing.T) {
	entries := []WordCount{
		{Word: "apple", Count: 5},
		{Word: "banana", Count: 3},
		{Word: "cherry", Count: 8},
		{Word: "date", Count: 1},
	}

	got := TopWords(entries, 4)

	require.Equal(t, []WordCount{
		{Word: "cherry", Count: 8},
		{Word: "apple", Count: 5},
		{Word: "banana", Count: 3},
		{Word: "date", Count: 1},
	}, got)
}

func TestTopWords_AlphabeticalTiebreaker(t *testing.T) {
	entries := []WordCount{
		{Word: "zebra", Count: 1},
		{Word: "apple", Count: 1},
		{Word: "banana", Count: 1},
	}

	got := TopWords(entries, 3)

	require.Equal(t, []WordCount{
		{Word: "apple", Count: 1},
		{Word: "banana", Count: 1},
		{Word: "zebra", Count: 1},
	}, got)
}

func TestTopWords_Truncation(t *testing.T) {
	entries := make([]WordCount, 0, 10)
	for i := 0; i < 10; i++ {
		entries = append(entries, WordCount{Word: string(rune('a' + i)), Count: i})
	}

	assert.Len(t, TopWords(append([]WordCount(nil), entries...), 5), 5)
	assert.Len(t, TopWords(append([]WordCount(nil), entries...), 3), 3)
	assert.Len(t, TopWords(append([]WordCount(nil), entries...), 100), 10)
	assert.Len(t, TopWords(append([]WordCount(nil), entries...), -1), 10)
	assert.Empty(t, TopWords(append([]WordCount(nil), entries...), 0))
}

func TestRender(t *testing.T) {
	var sb strings.Builder

	err := Render(&sb, []WordCount{
		{Word: "the", Count: 6},
		{Word: "fox", Count: 2},
	})
	require.NoError(t, err)

	require.Equal(t, "6 the\n2 fox\n", sb.String())
}

func TestRender_Empty(t *testing.T) {
	var sb strings.Builder

	require.NoError(t, Render(&sb, nil))
	require.Equal(t, "No words found in file.\n", sb.String())
}
