package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/dailybotai/word-count/probetab"
	"github.com/dailybotai/word-count/wordfreq"
)

var (
	rootMode     string
	rootTop      int
	rootCapacity int
	rootVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "wordfreq <file>",
	Short: "Count word frequencies in a text file",
	Long: `wordfreq reports the most frequent words of a text file as
"<count> <word>" lines, most frequent first, ties broken alphabetically.

Two interchangeable backends are available: an in-memory open-addressing
hash table (the default) and a disk-backed SQLite counter. Both produce
identical output for the same input.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if rootVerbose {
			level = slog.LevelDebug
		}

		w := os.Stderr

		slog.SetDefault(slog.New(
			tint.NewHandler(w, &tint.Options{
				Level:      level,
				TimeFormat: time.Kitchen,
				NoColor:    !isatty.IsTerminal(w.Fd()),
			}),
		))
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		counter, err := newCounter(rootMode)
		if err != nil {
			return err
		}
		defer counter.Close()

		start := time.Now()

		top, err := wordfreq.ProcessFile(counter, args[0], rootTop)
		if err != nil {
			return err
		}

		slog.Debug("processed",
			"file", args[0],
			"mode", rootMode,
			"words", len(top),
			"elapsed", time.Since(start),
		)

		return wordfreq.Render(os.Stdout, top)
	},
}

func newCounter(mode string) (wordfreq.Counter, error) {
	switch mode {
	case "hashtable":
		return wordfreq.NewTableCounter(rootCapacity), nil
	case "sqlite":
		return wordfreq.NewSQLiteCounter()
	default:
		return nil, fmt.Errorf("unknown mode: %s", mode)
	}
}

func init() {
	rootCmd.Flags().StringVar(&rootMode, "mode", "hashtable", "counting backend (hashtable or sqlite)")
	rootCmd.Flags().IntVar(&rootTop, "top", wordfreq.DefaultTopN, "number of words to report")
	rootCmd.Flags().IntVar(&rootCapacity, "capacity", probetab.DefaultCapacity, "initial hash table slot count (hashtable mode)")
	rootCmd.PersistentFlags().BoolVar(&rootVerbose, "verbose", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
