package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/exhuma/stopwatch/internal/config"
	"github.com/exhuma/stopwatch/internal/timer"
	"github.com/exhuma/stopwatch/internal/tui"
	"github.com/exhuma/stopwatch/internal/util"
)

func main() {
	single, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintf(os.Stderr, "%s: stdin is not a terminal\n", config.AppName)
		os.Exit(1)
	}

	fmt.Println(tui.RenderBanner())

	reg := timer.NewRegistry()
	p := tea.NewProgram(tui.NewModel(reg, single))

	// Run blocks until quit. bubbletea restores the terminal (cooked mode,
	// cursor) on every exit path before Run returns, including input errors.
	_, err = p.Run()
	util.MustSucceed("read input", err)

	if single {
		fmt.Print(tui.RenderReport(reg.Snapshot()))
	}
}

// parseFlags handles the one supported flag, in both spellings.
func parseFlags(args []string) (bool, error) {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	var single bool
	fs.BoolVar(&single, "single", false, "only show the currently active timer")
	fs.BoolVar(&single, "s", false, "only show the currently active timer (shorthand)")
	if err := fs.Parse(args); err != nil {
		return false, err
	}
	return single, nil
}
