// Command lgcount-bench is a small harness for exercising the lgcount
// engine end to end: it reads a toy sentence fixture, counts linkages, and
// prints the result. It is not a link-grammar dictionary reader.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coregx/lgcount"
)

var log = logrus.New()

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "lgcount-bench",
		Short: "Exercise the lgcount linkage-counting engine against a sentence fixture",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log memo table diagnostics")

	root.AddCommand(newParseCmd())
	return root
}

func newParseCmd() *cobra.Command {
	var nullCount int
	var islandsOK bool

	cmd := &cobra.Command{
		Use:   "parse <fixture-file>",
		Short: "Parse a sentence fixture and print its linkage count",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("lgcount-bench: %w", err)
			}
			defer f.Close()

			sent, err := parseFixture(f)
			if err != nil {
				return err
			}

			ctx, err := lgcount.NewContext(sent.Length())
			if err != nil {
				return fmt.Errorf("lgcount-bench: %w", err)
			}
			defer ctx.Close()

			result, err := ctx.Parse(sent, lgcount.Options{IslandsOK: islandsOK}, nullCount)
			if err != nil {
				return fmt.Errorf("lgcount-bench: %w", err)
			}

			stats := ctx.Stats()
			log.WithFields(logrus.Fields{
				"memo_hits":   stats.MemoHits,
				"memo_misses": stats.MemoMisses,
				"memo_size":   stats.MemoSize,
			}).Debug("parse complete")

			fmt.Printf("count=%d saturated=%v exhausted=%v\n", result.Count, result.Saturated, result.Exhausted)
			return nil
		},
	}
	cmd.Flags().IntVar(&nullCount, "null-count", 0, "null-word budget to count linkages at")
	cmd.Flags().BoolVar(&islandsOK, "islands", false, "allow disconnected linkage components")
	return cmd
}
