package wordfreq

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// DefaultTopN is how many words a report shows unless the caller asks for
// a different cut.
const DefaultTopN = 20

// emptyMessage is printed in place of a report when the input had no words.
const emptyMessage = "No words found in file."

// WordCount is one ranked entry of a report.
type WordCount struct {
	Word  string
	Count int
}

// TopWords sorts entries by count descending, ties broken by word ascending,
// and truncates to at most n. It sorts in place and returns the prefix;
// n < 0 means no truncation.
func TopWords(entries []WordCount, n int) []WordCount {
	slices.SortFunc(entries, func(a, b WordCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Word, b.Word)
	})

	if n >= 0 && len(entries) > n {
		entries = entries[:n]
	}

	return entries
}

// Render writes one "<count> <word>" line per entry, or the fixed
// no-words message when there are none.
func Render(w io.Writer, entries []WordCount) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, emptyMessage)
		return err
	}

	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d %s\n", e.Count, e.Word); err != nil {
			return err
		}
	}

	return nil
}
