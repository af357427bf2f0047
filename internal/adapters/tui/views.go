package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/averost/focustick/internal/domain"
	"github.com/averost/focustick/internal/session"
)

// View renders the three panels: timer on top, menu in the middle, tasks at
// the bottom. Rendering is a pure function of the snapshot.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	panelWidth := m.width - 2
	if panelWidth < 20 {
		panelWidth = 20
	}

	var sections []string
	sections = append(sections, m.viewTimerPanel(panelWidth))
	sections = append(sections, m.viewMenuPanel(panelWidth))
	sections = append(sections, m.viewTaskPanel(panelWidth))

	if m.adding.active {
		helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
		sections = append(sections, fmt.Sprintf("%s: %s", m.adding.prompt(), m.adding.view()))
		sections = append(sections, helpStyle.Render("enter next · esc cancel"))
	} else {
		sections = append(sections, m.viewStatusLine(panelWidth))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) panelStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorBorder)).
		Padding(0, 1).
		Width(width)
}

func (m Model) viewTimerPanel(width int) string {
	timer := m.snap.Timer

	var color string
	switch timer.Phase {
	case domain.PhasePaused:
		color = m.theme.ColorPaused
	case domain.PhaseExpired:
		color = m.theme.ColorExpired
	default:
		color = m.theme.ColorTimer
	}
	timeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))

	line := fmt.Sprintf("Time Remaining: %s  [%s]", formatClock(timer.Remaining), domain.PhaseLabel(timer.Phase))
	content := timeStyle.Render(line)

	if total := m.timerTotalSeconds(); total > 0 && timer.Active() {
		bar := m.progress
		bar.Width = width - 6
		ratio := 1.0 - float64(timer.Remaining)/float64(total)
		content = lipgloss.JoinVertical(lipgloss.Left, content, bar.ViewAs(ratio))
	}

	return m.panelStyle(width).Render(content)
}

// timerTotalSeconds returns the full countdown length of the governed task,
// or zero when no task is governed.
func (m Model) timerTotalSeconds() int {
	idx := m.snap.Timer.TaskIndex
	if idx < 0 || idx >= len(m.snap.Tasks) {
		return 0
	}
	return m.snap.Tasks[idx].DurationMinutes * 60
}

func (m Model) viewMenuPanel(width int) string {
	highlight := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.ColorHighlight))
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	lines := make([]string, 0, len(session.MenuOptions)+1)
	for i, option := range session.MenuOptions {
		if i == m.snap.MenuIndex {
			lines = append(lines, highlight.Render("> "+string(option)))
		} else {
			lines = append(lines, "  "+string(option))
		}
	}
	lines = append(lines, helpStyle.Render(fmt.Sprintf("Language: %s (l to cycle)", m.snap.Language)))

	return m.panelStyle(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewTaskPanel(width int) string {
	if len(m.snap.Tasks) == 0 {
		return m.panelStyle(width).Render("No tasks yet")
	}

	// Room for border and padding; lines are truncated, never wrapped.
	avail := width - 4
	lines := make([]string, 0, len(m.snap.Tasks))
	for _, t := range m.snap.Tasks {
		line := fmt.Sprintf("%s | %dmin | %s | %s", t.Title, t.DurationMinutes, t.Language, domain.StatusLabel(t.Status))
		lines = append(lines, truncate(line, avail))
	}
	return m.panelStyle(width).Render(strings.Join(lines, "\n"))
}

func (m Model) viewStatusLine(width int) string {
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	help := helpStyle.Render("↑/↓ navigate · enter select · l language · q quit")

	if m.snap.Status == "" {
		return help
	}
	errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorError))
	return lipgloss.JoinVertical(lipgloss.Left, errStyle.Render(truncate(m.snap.Status, width)), help)
}

// truncate cuts a plain (unstyled) line to at most width runes.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width])
}

// formatClock formats remaining seconds as MM:SS.
func formatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
