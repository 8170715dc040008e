package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		os.Exit(runDaemon(os.Args[2:]))
	case "left", "right", "top", "bottom",
		"maximize", "center", "upper-center",
		"next-screen", "prev-screen":
		os.Exit(runAction(os.Args[1], os.Args[2:]))
	case "corner":
		os.Exit(runCorner(os.Args[2:]))
	case "set-window-gap":
		os.Exit(runSetValue("set-window-gap", "window_gap", os.Args[2:]))
	case "set-edge-gap":
		os.Exit(runSetValue("set-edge-gap", "edge_gap", os.Args[2:]))
	case "set-sidebar-width":
		os.Exit(runSetValue("set-sidebar-width", "sidebar_width", os.Args[2:]))
	case "set-maximize-sizes":
		os.Exit(runSetMaximizeSizes(os.Args[2:]))
	case "status":
		os.Exit(runStatus(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "reload":
		os.Exit(runReload(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "tui":
		os.Exit(runTUI(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: stagedirector <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon              Start the stagedirector daemon (foreground)")
	fmt.Fprintln(w, "  status              Show daemon status")
	fmt.Fprintln(w, "  monitors            List connected displays")
	fmt.Fprintln(w, "  reload              Reload the daemon's configuration file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  left                Snap to left edge, or cycle width when already there")
	fmt.Fprintln(w, "  right               Snap to right edge, or cycle width")
	fmt.Fprintln(w, "  top                 Snap to top edge, or cycle height")
	fmt.Fprintln(w, "  bottom              Snap to bottom edge, or cycle height")
	fmt.Fprintln(w, "  corner <1-4>        Snap to a corner, or step the corner size ladder")
	fmt.Fprintln(w, "  maximize            Cycle the almost-maximize ladder")
	fmt.Fprintln(w, "  center              Center without resizing")
	fmt.Fprintln(w, "  upper-center        Center horizontally, upper third vertically")
	fmt.Fprintln(w, "  next-screen         Move to the next display")
	fmt.Fprintln(w, "  prev-screen         Move to the previous display")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  set-window-gap <px>       Change the gap between windows at runtime")
	fmt.Fprintln(w, "  set-edge-gap <px>         Change the gap at screen edges at runtime")
	fmt.Fprintln(w, "  set-sidebar-width <px>    Change the reserved sidebar width at runtime")
	fmt.Fprintln(w, "  set-maximize-sizes <f..>  Replace the almost-maximize ladder (fractions in (0,1])")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config init         Interactively create a config file")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  tui                 Open interactive TUI")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'stagedirector <command> --help' for command-specific options.")
}

func runAction(name string, args []string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stagedirector %s\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Dispatch the action to the running daemon via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "%s takes no arguments\n", name)
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	if err := client.Action(name); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runCorner(args []string) int {
	fs := flag.NewFlagSet("corner", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector corner <1-4>")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Corners: 1 top-left, 2 top-right, 3 bottom-left, 4 bottom-right.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	corner, err := strconv.Atoi(fs.Arg(0))
	if err != nil || corner < 1 || corner > 4 {
		fmt.Fprintf(os.Stderr, "invalid corner %q (expected 1-4)\n", fs.Arg(0))
		return 2
	}

	client := ipc.NewClient()
	if err := client.Corner(corner); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSetValue(name, key string, args []string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: stagedirector %s <pixels>\n", name)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Update the running daemon's setting. The change is not persisted")
		fmt.Fprintln(os.Stderr, "to the config file.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return 2
	}

	value, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid value %q\n", fs.Arg(0))
		return 2
	}

	client := ipc.NewClient()
	if err := client.SetConfig(key, value); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runSetMaximizeSizes(args []string) int {
	fs := flag.NewFlagSet("set-maximize-sizes", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector set-maximize-sizes <fraction> [fraction...]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Replace the almost-maximize ladder. Fractions must be in (0, 1],")
		fmt.Fprintln(os.Stderr, "e.g. 'stagedirector set-maximize-sizes 0.9 0.65'.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	sizes := make([]float64, 0, fs.NArg())
	for _, arg := range fs.Args() {
		f, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid fraction %q\n", arg)
			return 2
		}
		sizes = append(sizes, f)
	}

	client := ipc.NewClient()
	if err := client.SetMaximizeSizes(sizes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runReload(args []string) int {
	fs := flag.NewFlagSet("reload", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector reload")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Ask the daemon to re-read its configuration file.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "reload takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	if err := client.Reload(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func formatSizes(sizes []float64) string {
	parts := make([]string, len(sizes))
	for i, s := range sizes {
		parts[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return strings.Join(parts, ", ")
}
