package wordfreq

import (
	"github.com/dailybotai/word-count/probetab"
)

// Counter is the contract both backends share: words go in one at a time
// through Increment, the ranking comes out through TopWords. Close releases
// whatever the backend holds; for the in-memory table it is a no-op.
type Counter interface {
	Increment(word string) error
	TopWords(n int) ([]WordCount, error)
	Close() error
}

// TableCounter counts words in an in-memory probing hash table.
type TableCounter struct {
	table *probetab.CounterTable
}

var _ Counter = (*TableCounter)(nil)

// NewTableCounter returns a table-backed counter. capacity <= 0 picks the
// table's default.
func NewTableCounter(capacity int) *TableCounter {
	return &TableCounter{table: probetab.New(capacity)}
}

func (c *TableCounter) Increment(word string) error {
	return c.table.Increment(word)
}

func (c *TableCounter) TopWords(n int) ([]WordCount, error) {
	items := c.table.Items()

	entries := make([]WordCount, len(items))
	for i, it := range items {
		entries[i] = WordCount{Word: it.Key, Count: it.Value}
	}

	return TopWords(entries, n), nil
}

func (c *TableCounter) Close() error { return nil }

// ProcessFile streams every word of the file at path into the counter and
// returns the top n words. The counter is left open; closing it stays with
// whoever created it.
func ProcessFile(c Counter, path string, n int) ([]WordCount, error) {
	if err := EachWord(path, c.Increment); err != nil {
		return nil, err
	}

	return c.TopWords(n)
}
