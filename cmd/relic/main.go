package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	charmlipgloss "github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/fwojciec/relic"
	"github.com/fwojciec/relic/chroma"
	"github.com/fwojciec/relic/git"
	"github.com/fwojciec/relic/lipgloss"
	"github.com/fwojciec/relic/render"
	"github.com/fwojciec/relic/ripgrep"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	var (
		pattern      string
		contextLines int
		dir          string
		glob         string
		date         string
		noColor      bool
		syntax       bool
	)

	root := &cobra.Command{
		Use:           "relic",
		Short:         "Find marker comments in your codebase and its history",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&pattern, "pattern", "p", "TODO", "pattern to search for")
	root.PersistentFlags().IntVarP(&contextLines, "context", "C", 2, "number of context lines to show")
	root.PersistentFlags().StringVarP(&dir, "dir", "D", ".", "directory to search in")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.PersistentFlags().BoolVar(&syntax, "syntax", false, "syntax-highlight context lines")

	// color reports whether styled output is in effect after profile setup.
	color := func() bool {
		profile := termenv.ColorProfile()
		if noColor {
			profile = termenv.Ascii
		}
		charmlipgloss.SetColorProfile(profile)
		return profile != termenv.Ascii
	}

	newApp := func() *App {
		var highlighter relic.Highlighter
		if syntax {
			highlighter = chroma.NewHighlighter()
		}
		return &App{
			Git:      git.NewRunner(),
			Searcher: ripgrep.NewSearcher(),
			Renderer: render.New(lipgloss.DefaultTheme(), highlighter),
			Out:      os.Stdout,
			Dir:      dir,
			Pattern:  pattern,
			Context:  contextLines,
		}
	}

	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Search for the pattern in current files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newApp().RunCurrent(cmd.Context(), glob, color())
		},
	}
	currentCmd.Flags().StringVarP(&glob, "type", "t", "", `file glob to include (e.g. "*.go")`)

	sinceCmd := &cobra.Command{
		Use:   "since",
		Short: "Search for the pattern in lines added since a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			color()
			return newApp().RunSince(cmd.Context(), date)
		},
	}
	sinceCmd.Flags().StringVarP(&date, "date", "d", "", "date in YYYY-MM-DD format (e.g. 2025-12-01)")
	_ = sinceCmd.MarkFlagRequired("date")

	rangeCmd := &cobra.Command{
		Use:   "range <from> [to]",
		Short: "Search for the pattern in lines added in a commit range",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			to := "HEAD"
			if len(args) == 2 {
				to = args[1]
			}
			color()
			return newApp().RunRange(cmd.Context(), args[0], to)
		},
	}

	root.AddCommand(currentCmd, sinceCmd, rangeCmd)
	return root
}
