// Package wordfreq turns text files into ranked word counts. It streams
// words out of a file one line at a time, feeds them to one of two
// interchangeable counter backends (an in-memory probing hash table or a
// disk-backed SQLite database) and renders the most frequent words.
package wordfreq

// Tokenize splits text into lowercase words. A word is a maximal run of
// ASCII letters and digits; every other byte, multi-byte runes included,
// is a separator. Empty input yields no tokens.
func Tokenize(text string) []string {
	var words []string

	start := -1
	for i := 0; i <= len(text); i++ {
		inWord := i < len(text) && isWordByte(text[i])

		switch {
		case inWord && start < 0:
			start = i
		case !inWord && start >= 0:
			words = append(words, lower(text[start:i]))
			start = -1
		}
	}

	return words
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9'
}

// lower folds ASCII only; tokens never contain non-ASCII bytes.
func lower(word string) string {
	for i := 0; i < len(word); i++ {
		if word[i] >= 'A' && word[i] <= 'Z' {
			b := []byte(word)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}

			return string(b)
		}
	}

	return word
}
