package wordfreq

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// EachWord streams the words of the file at path to fn in document order,
// one line at a time, without loading the whole file into memory. Lines can
// be arbitrarily long. An error from fn aborts the scan and is returned
// as-is; open and read failures are wrapped with the path.
func EachWord(path string, fn func(word string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)

	for {
		line, readErr := r.ReadString('\n')

		for _, word := range Tokenize(line) {
			if err := fn(word); err != nil {
				return err
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}

			return fmt.Errorf("read %s: %w", path, readErr)
		}
	}
}
