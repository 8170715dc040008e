package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rinodrops/stagedirector/internal/tui"
)

func runTUI(args []string) int {
	fs := flag.NewFlagSet("tui", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector tui")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Interactive inspector for monitors, windows, and action dispatch.")
		fmt.Fprintln(os.Stderr, "Requires the daemon to be running for live data.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keybindings:")
		fmt.Fprintln(os.Stderr, "  tab/shift-tab  Switch tabs")
		fmt.Fprintln(os.Stderr, "  1/2/3          Jump to Monitors, Windows, Actions")
		fmt.Fprintln(os.Stderr, "  j/k, ↑/↓       Navigate lists")
		fmt.Fprintln(os.Stderr, "  Enter          Dispatch selected action (Actions tab)")
		fmt.Fprintln(os.Stderr, "  r              Refresh from daemon")
		fmt.Fprintln(os.Stderr, "  q, Ctrl+C      Quit")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "tui takes no arguments")
		fs.Usage()
		return 2
	}

	if err := tui.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
