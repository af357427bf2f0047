// Package tui provides the terminal user interface implementation
// using the Bubbletea framework. The model never mutates session state
// directly: key events map to controller commands, and rendering reads a
// snapshot taken between command turns.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/averost/focustick/internal/config"
	"github.com/averost/focustick/internal/session"
)

// tickMsg drives the once-per-second re-render.
type tickMsg time.Time

// Model represents the TUI state.
type Model struct {
	controller *session.Controller
	snap       session.Snapshot
	theme      config.ThemeConfig
	progress   progress.Model

	width  int
	height int

	adding addTaskState
}

// NewModel creates a new TUI model bound to a controller.
func NewModel(controller *session.Controller, theme *config.ThemeConfig) Model {
	resolved := config.DefaultThemeConfig()
	if theme != nil {
		resolved = *theme
	}
	return Model{
		controller: controller,
		snap:       controller.Snapshot(),
		theme:      resolved,
		progress:   progress.New(progress.WithDefaultGradient()),
		adding:     newAddTaskState(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.adding.active {
		return m.updateAddTask(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.controller.Shutdown()
			return m, tea.Quit
		case "up":
			m.controller.NavigateUp()
		case "down":
			m.controller.NavigateDown()
		case "l":
			m.controller.CycleLanguage()
		case "enter":
			return m.activateSelection()
		}
		m.snap = m.controller.Snapshot()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = msg.Width - 8

	case tickMsg:
		m.snap = m.controller.Snapshot()
		return m, tickCmd()
	}

	return m, nil
}

// activateSelection dispatches the highlighted menu option as a controller
// command. Long-running collaborators (persistence, report generation) run
// synchronously within this command turn, as the dispatcher is otherwise
// idle between keys.
func (m Model) activateSelection() (tea.Model, tea.Cmd) {
	switch session.MenuOptions[m.snap.MenuIndex] {
	case session.OptionAddTask:
		m.adding.begin()
		m.snap = m.controller.Snapshot()
		return m, m.adding.focusCmd()
	case session.OptionStartTimer:
		m.controller.StartTimer()
	case session.OptionPauseTimer:
		m.controller.PauseTimer()
	case session.OptionStopTimer:
		m.controller.StopTimer()
	case session.OptionViewTasks:
		// Tasks are always visible in the bottom panel.
	case session.OptionVisualize:
		// Errors land on the snapshot status line.
		_ = m.controller.VisualizeData()
	case session.OptionExit:
		m.controller.Shutdown()
		return m, tea.Quit
	}
	m.snap = m.controller.Snapshot()
	return m, nil
}

// updateAddTask handles the three-step add-task input flow.
func (m Model) updateAddTask(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.controller.Shutdown()
			return m, tea.Quit
		case "esc":
			m.adding.cancel()
			return m, nil
		case "enter":
			done, title, description, duration := m.adding.advance()
			if !done {
				return m, m.adding.focusCmd()
			}
			// An invalid duration discards the whole flow: no task, no
			// message beyond returning to the menu.
			_ = m.controller.AddTask(title, description, duration)
			m.snap = m.controller.Snapshot()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		m.snap = m.controller.Snapshot()
		return m, tea.Batch(tickCmd(), m.adding.update(msg))
	}
	return m, m.adding.update(msg)
}

// tickCmd creates a command that sends a tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
