package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rinodrops/stagedirector/internal/ipc"
)

// model is the root bubbletea model for the TUI.
type model struct {
	ipcClient *ipc.Client

	// Tab navigation
	activeTab Tab

	// Sub-models
	monitorsTab MonitorsTab
	windowsTab  WindowsTab
	actionsTab  ActionsTab

	// Daemon state
	status *ipc.StatusData

	// Terminal dimensions
	width  int
	height int
}

func newModel() model {
	m := model{
		activeTab:   TabMonitors,
		ipcClient:   ipc.NewClient(),
		monitorsTab: NewMonitorsTab(),
		windowsTab:  NewWindowsTab(),
	}
	m.actionsTab = NewActionsTab(m.ipcClient)
	m.refresh()
	return m
}

// refresh re-queries daemon status, monitors, and windows. A failed
// status query marks the daemon as down but keeps the TUI usable.
func (m *model) refresh() {
	status, err := m.ipcClient.GetStatus()
	if err != nil {
		m.status = nil
		return
	}
	m.status = status

	if monitors, err := m.ipcClient.GetMonitors(); err == nil {
		m.monitorsTab.SetMonitors(monitors)
	}
	if windows, err := m.ipcClient.GetWindows(); err == nil {
		m.windowsTab.SetWindows(windows)
	}
}

// contentHeight returns the height available for tab content.
func (m model) contentHeight() int {
	// status bar (1) + tab bar (2 with margin) + help bar (1)
	h := m.height - 4
	if h < 1 {
		h = 1
	}
	return h
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
			return m, nil

		case "shift+tab":
			m.activeTab = (m.activeTab - 1 + tabCount) % tabCount
			return m, nil

		case "1":
			m.activeTab = TabMonitors
			return m, nil
		case "2":
			m.activeTab = TabWindows
			return m, nil
		case "3":
			m.activeTab = TabActions
			return m, nil

		case "r":
			m.refresh()
			return m, nil
		}

	case statusMsg:
		// Window layout changed after a dispatched action; re-query
		// alongside showing the status text in the actions tab.
		m.refresh()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		subMsg := tea.WindowSizeMsg{Width: m.width, Height: m.contentHeight()}
		m.monitorsTab, _ = m.monitorsTab.Update(subMsg)
		m.windowsTab, _ = m.windowsTab.Update(subMsg)
		m.actionsTab, _ = m.actionsTab.Update(subMsg)
		return m, nil
	}

	// Delegate to active tab's sub-model
	switch m.activeTab {
	case TabMonitors:
		var cmd tea.Cmd
		m.monitorsTab, cmd = m.monitorsTab.Update(msg)
		return m, cmd
	case TabWindows:
		var cmd tea.Cmd
		m.windowsTab, cmd = m.windowsTab.Update(msg)
		return m, cmd
	case TabActions:
		var cmd tea.Cmd
		m.actionsTab, cmd = m.actionsTab.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	statusBar := renderStatusBar(m.status, m.width)
	tabBar := renderTabBar(m.activeTab, m.width)
	helpBar := renderHelpBar(m.width)

	var content string
	switch m.activeTab {
	case TabMonitors:
		content = m.monitorsTab.View()
	case TabWindows:
		content = m.windowsTab.View()
	case TabActions:
		content = m.actionsTab.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		statusBar,
		tabBar,
		content,
		helpBar,
	)
}

// Run starts the TUI main loop.
func Run() error {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
