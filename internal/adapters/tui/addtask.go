package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// addTaskStep indexes the three sequential inputs of the add-task flow.
const (
	stepTitle = iota
	stepDescription
	stepDuration
	stepCount
)

var addTaskPrompts = [stepCount]string{
	"Task title",
	"Description",
	"Duration (minutes)",
}

// addTaskState holds the in-progress add-task inputs.
type addTaskState struct {
	active bool
	step   int
	inputs [stepCount]textinput.Model
}

func newAddTaskState() addTaskState {
	var s addTaskState
	for i := range s.inputs {
		in := textinput.New()
		in.Prompt = "> "
		in.CharLimit = 120
		in.Width = 40
		s.inputs[i] = in
	}
	s.inputs[stepDuration].CharLimit = 5
	s.inputs[stepDuration].Width = 8
	return s
}

// begin resets the inputs and enters the flow at the title step.
func (s *addTaskState) begin() {
	s.active = true
	s.step = stepTitle
	for i := range s.inputs {
		s.inputs[i].Reset()
		s.inputs[i].Blur()
	}
	s.inputs[stepTitle].Focus()
}

// cancel discards the flow.
func (s *addTaskState) cancel() {
	s.active = false
}

// advance moves to the next input. When the final step is confirmed it
// returns done=true with the collected values and leaves the flow.
func (s *addTaskState) advance() (done bool, title, description, duration string) {
	if s.step < stepDuration {
		s.inputs[s.step].Blur()
		s.step++
		s.inputs[s.step].Focus()
		return false, "", "", ""
	}
	s.active = false
	return true,
		s.inputs[stepTitle].Value(),
		s.inputs[stepDescription].Value(),
		s.inputs[stepDuration].Value()
}

// focusCmd returns the blink command for the focused input.
func (s *addTaskState) focusCmd() tea.Cmd {
	return s.inputs[s.step].Cursor.BlinkCmd()
}

// update forwards a message to the focused input.
func (s *addTaskState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.inputs[s.step], cmd = s.inputs[s.step].Update(msg)
	return cmd
}

// prompt returns the label for the focused input.
func (s *addTaskState) prompt() string {
	return addTaskPrompts[s.step]
}

// view renders the focused input.
func (s *addTaskState) view() string {
	return s.inputs[s.step].View()
}
