package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

// monitorItem implements list.Item for the monitors tab.
type monitorItem struct {
	info ipc.MonitorInfo
}

func (i monitorItem) Title() string {
	return fmt.Sprintf("%d: %s", i.info.ID, i.info.Name)
}

func (i monitorItem) Description() string {
	return fmt.Sprintf("%.0fx%.0f at (%.0f, %.0f)", i.info.Width, i.info.Height, i.info.X, i.info.Y)
}

func (i monitorItem) FilterValue() string { return i.info.Name }

// MonitorsTab lists the connected displays as the daemon sees them.
type MonitorsTab struct {
	list   list.Model
	width  int
	height int
}

// NewMonitorsTab creates a new MonitorsTab sub-model.
func NewMonitorsTab() MonitorsTab {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Monitors"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return MonitorsTab{list: l}
}

// SetMonitors replaces the tab content.
func (mt *MonitorsTab) SetMonitors(data *ipc.MonitorsData) {
	var items []list.Item
	if data != nil {
		for _, m := range data.Monitors {
			items = append(items, monitorItem{info: m})
		}
	}
	mt.list.SetItems(items)
}

// Update implements the sub-model update contract.
func (mt MonitorsTab) Update(msg tea.Msg) (MonitorsTab, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		mt.width = size.Width
		mt.height = size.Height
		mt.list.SetSize(size.Width, size.Height)
		return mt, nil
	}

	var cmd tea.Cmd
	mt.list, cmd = mt.list.Update(msg)
	return mt, cmd
}

// View implements the sub-model view contract.
func (mt MonitorsTab) View() string {
	return mt.list.View()
}
