package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

// Tab identifies a TUI tab.
type Tab int

const (
	TabMonitors Tab = iota
	TabWindows
	TabActions
	tabCount // sentinel for iteration
)

func (t Tab) String() string {
	switch t {
	case TabMonitors:
		return "Monitors"
	case TabWindows:
		return "Windows"
	case TabActions:
		return "Actions"
	default:
		return "?"
	}
}

var (
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("62")).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("250")).
				Background(lipgloss.Color("236")).
				Padding(0, 2)

	tabBarStyle = lipgloss.NewStyle().
			MarginBottom(1)

	tabGap = lipgloss.NewStyle().
		Background(lipgloss.Color("235")).
		SetString(" ")
)

// renderTabBar renders the tab bar with the given active tab and width.
func renderTabBar(active Tab, width int) string {
	var tabs []string
	for i := Tab(0); i < tabCount; i++ {
		label := fmt.Sprintf("%d:%s", int(i)+1, i.String())
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top, intersperse(tabs, tabGap.Render())...)
	return tabBarStyle.Width(width).Render(row)
}

// intersperse inserts sep between each element of items.
func intersperse(items []string, sep string) []string {
	if len(items) <= 1 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}

// renderStatusBar renders the daemon connection status bar.
func renderStatusBar(status *ipc.StatusData, width int) string {
	var text string
	if status != nil {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Render("●")
		parts := []string{dot + " daemon connected"}
		parts = append(parts, fmt.Sprintf("gap:%g", status.WindowGap))
		if status.SidebarEnabled {
			parts = append(parts, fmt.Sprintf("sidebar:%s %gpx", status.DockEdge, status.SidebarWidth))
		} else {
			parts = append(parts, "sidebar:off")
		}
		text = strings.Join(parts, "  ")
	} else {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("●")
		text = dot + " daemon not running"
	}

	style := lipgloss.NewStyle().
		Width(width).
		Background(lipgloss.Color("235")).
		Foreground(lipgloss.Color("250")).
		Padding(0, 1)
	return style.Render(text)
}

// renderHelpBar renders the bottom help/keybinding bar.
func renderHelpBar(width int) string {
	help := "tab/shift-tab: switch tabs  1-3: jump to tab  r: refresh  q/ctrl-c: quit"
	style := lipgloss.NewStyle().
		Width(width).
		Foreground(lipgloss.Color("241")).
		Padding(0, 1)
	return style.Render(help)
}
