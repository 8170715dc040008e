package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

// actionItem implements list.Item for the action dispatcher tab.
type actionItem struct {
	label  string
	name   string
	desc   string
	corner int // 1-4 when name == "corner"
}

func (i actionItem) Title() string       { return i.label }
func (i actionItem) Description() string { return i.desc }
func (i actionItem) FilterValue() string { return i.label }

var actionCatalog = []actionItem{
	{label: "left", name: "left", desc: "snap to left edge or cycle width"},
	{label: "right", name: "right", desc: "snap to right edge or cycle width"},
	{label: "top", name: "top", desc: "snap to top edge or cycle height"},
	{label: "bottom", name: "bottom", desc: "snap to bottom edge or cycle height"},
	{label: "corner 1", name: "corner", corner: 1, desc: "top-left corner ladder"},
	{label: "corner 2", name: "corner", corner: 2, desc: "top-right corner ladder"},
	{label: "corner 3", name: "corner", corner: 3, desc: "bottom-left corner ladder"},
	{label: "corner 4", name: "corner", corner: 4, desc: "bottom-right corner ladder"},
	{label: "maximize", name: "maximize", desc: "cycle the almost-maximize ladder"},
	{label: "center", name: "center", desc: "center without resizing"},
	{label: "upper-center", name: "upper-center", desc: "center horizontally, upper third vertically"},
	{label: "next-screen", name: "next-screen", desc: "move to the next display"},
	{label: "prev-screen", name: "prev-screen", desc: "move to the previous display"},
}

// statusMsg is sent after an IPC action completes.
type statusMsg struct {
	text string
}

// clearStatusMsg clears the status message after a delay.
type clearStatusMsg struct{}

// ActionsTab dispatches window actions to the daemon.
type ActionsTab struct {
	list      list.Model
	ipcClient *ipc.Client

	statusText string

	width  int
	height int
}

// NewActionsTab creates a new ActionsTab sub-model.
func NewActionsTab(ipcClient *ipc.Client) ActionsTab {
	items := make([]list.Item, len(actionCatalog))
	for i, a := range actionCatalog {
		items[i] = a
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Actions"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	return ActionsTab{
		list:      l,
		ipcClient: ipcClient,
	}
}

// Update implements the sub-model update contract.
func (at ActionsTab) Update(msg tea.Msg) (ActionsTab, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		at.width = msg.Width
		at.height = msg.Height
		at.list.SetSize(msg.Width, max(msg.Height-1, 1))
		return at, nil

	case statusMsg:
		at.statusText = msg.text
		return at, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return clearStatusMsg{}
		})

	case clearStatusMsg:
		at.statusText = ""
		return at, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return at.dispatchSelected()
		}
	}

	var cmd tea.Cmd
	at.list, cmd = at.list.Update(msg)
	return at, cmd
}

func (at ActionsTab) dispatchSelected() (ActionsTab, tea.Cmd) {
	item, ok := at.list.SelectedItem().(actionItem)
	if !ok {
		return at, nil
	}

	client := at.ipcClient
	return at, func() tea.Msg {
		var err error
		if item.name == "corner" {
			err = client.Corner(item.corner)
		} else {
			err = client.Action(item.name)
		}
		if err != nil {
			return statusMsg{text: "error: " + err.Error()}
		}
		return statusMsg{text: "dispatched " + item.Title()}
	}
}

// View implements the sub-model view contract.
func (at ActionsTab) View() string {
	view := at.list.View()
	if at.statusText != "" {
		status := lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Padding(0, 1).
			Render(at.statusText)
		view = lipgloss.JoinVertical(lipgloss.Left, view, status)
	}
	return view
}
