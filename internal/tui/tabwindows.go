package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

// windowItem implements list.Item for the windows tab.
type windowItem struct {
	info ipc.WindowInfo
}

func (i windowItem) Title() string {
	prefix := "  "
	if i.info.Active {
		prefix = "* "
	}
	title := i.info.Title
	if title == "" {
		title = fmt.Sprintf("window 0x%x", i.info.ID)
	}
	return prefix + title
}

func (i windowItem) Description() string {
	desc := fmt.Sprintf("monitor %d  %.0fx%.0f at (%.0f, %.0f)",
		i.info.MonitorID, i.info.Width, i.info.Height, i.info.X, i.info.Y)
	if i.info.Fullscreen {
		desc += "  [fullscreen]"
	}
	return desc
}

func (i windowItem) FilterValue() string { return i.info.Title }

// WindowsTab lists the visible windows across all displays.
type WindowsTab struct {
	list   list.Model
	width  int
	height int
}

// NewWindowsTab creates a new WindowsTab sub-model.
func NewWindowsTab() WindowsTab {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Windows"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return WindowsTab{list: l}
}

// SetWindows replaces the tab content.
func (wt *WindowsTab) SetWindows(data *ipc.WindowsData) {
	var items []list.Item
	if data != nil {
		for _, w := range data.Windows {
			items = append(items, windowItem{info: w})
		}
	}
	wt.list.SetItems(items)
}

// Update implements the sub-model update contract.
func (wt WindowsTab) Update(msg tea.Msg) (WindowsTab, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		wt.width = size.Width
		wt.height = size.Height
		wt.list.SetSize(size.Width, size.Height)
		return wt, nil
	}

	var cmd tea.Cmd
	wt.list, cmd = wt.list.Update(msg)
	return wt, cmd
}

// View implements the sub-model view contract.
func (wt WindowsTab) View() string {
	return wt.list.View()
}
