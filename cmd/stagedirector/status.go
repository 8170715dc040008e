package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

var (
	statusLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Width(16)

	statusValueStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15"))

	statusOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)
)

// statusLine renders a label/value pair, styled only when stdout is a
// terminal so piped output stays plain.
func statusLine(label, value string, styled bool) string {
	if !styled {
		return fmt.Sprintf("%-16s%s", label, value)
	}
	return statusLabelStyle.Render(label) + statusValueStyle.Render(value)
}

func runStatus(args []string) int {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector status")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Show daemon status via IPC.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "status takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	status, err := client.GetStatus()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))

	running := "yes"
	if styled {
		running = statusOKStyle.Render("yes")
	}
	fmt.Println(statusLine("daemon:", running, styled))
	fmt.Println(statusLine("uptime:", fmt.Sprintf("%ds", status.UptimeSeconds), styled))
	fmt.Println(statusLine("window gap:", fmt.Sprintf("%gpx", status.WindowGap), styled))
	fmt.Println(statusLine("edge gap:", fmt.Sprintf("%gpx", status.EdgeGap), styled))
	fmt.Println(statusLine("sidebar width:", fmt.Sprintf("%gpx", status.SidebarWidth), styled))
	fmt.Println(statusLine("maximize sizes:", formatSizes(status.MaximizeSizes), styled))

	sidebarState := "off"
	if status.SidebarEnabled {
		sidebarState = "on (dock: " + status.DockEdge + ")"
	}
	fmt.Println(statusLine("sidebar:", sidebarState, styled))
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: stagedirector monitors")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List connected displays as the daemon sees them.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "monitors takes no arguments")
		fs.Usage()
		return 2
	}

	client := ipc.NewClient()
	data, err := client.GetMonitors()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	styled := term.IsTerminal(int(os.Stdout.Fd()))
	for _, m := range data.Monitors {
		name := m.Name
		if styled {
			name = statusValueStyle.Bold(true).Render(name)
		}
		fmt.Printf("%d: %s  %.0fx%.0f at (%.0f, %.0f)\n", m.ID, name, m.Width, m.Height, m.X, m.Y)
	}
	return 0
}
