package session

import "github.com/averost/focustick/internal/domain"

// MenuOption identifies one entry in the session menu.
type MenuOption string

const (
	OptionAddTask    MenuOption = "Add Task"
	OptionStartTimer MenuOption = "Start Timer"
	OptionPauseTimer MenuOption = "Pause Timer"
	OptionStopTimer  MenuOption = "Stop Timer"
	OptionViewTasks  MenuOption = "View Tasks"
	OptionVisualize  MenuOption = "Visualize Data"
	OptionExit       MenuOption = "Exit"
)

// MenuOptions is the fixed menu in display order.
var MenuOptions = []MenuOption{
	OptionAddTask,
	OptionStartTimer,
	OptionPauseTimer,
	OptionStopTimer,
	OptionViewTasks,
	OptionVisualize,
	OptionExit,
}

// MenuState tracks the highlighted menu entry. Navigation clamps at the
// bounds; it never wraps.
type MenuState struct {
	Selected int
}

// Up moves the selection one entry up, clamping at the first entry.
func (m *MenuState) Up() {
	if m.Selected > 0 {
		m.Selected--
	}
}

// Down moves the selection one entry down, clamping at the last entry.
func (m *MenuState) Down() {
	if m.Selected < len(MenuOptions)-1 {
		m.Selected++
	}
}

// Current returns the highlighted option.
func (m MenuState) Current() MenuOption {
	return MenuOptions[m.Selected]
}

// LanguageSelector cycles through the configured language tags. Unlike the
// menu it wraps around.
type LanguageSelector struct {
	Languages []domain.Language
	Selected  int
}

// NewLanguageSelector builds a selector over the given tag set, falling
// back to the default set when empty.
func NewLanguageSelector(languages []domain.Language) LanguageSelector {
	if len(languages) == 0 {
		languages = domain.DefaultLanguages
	}
	return LanguageSelector{Languages: languages}
}

// Cycle advances to the next language, wrapping modulo the set size.
func (l *LanguageSelector) Cycle() {
	l.Selected = (l.Selected + 1) % len(l.Languages)
}

// Current returns the selected language tag.
func (l LanguageSelector) Current() domain.Language {
	return l.Languages[l.Selected]
}
