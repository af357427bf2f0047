// Package session implements the interactive session controller: the single
// owner of the task list, timer state, and menu state. Every mutation —
// user commands from the UI and ticks from the clock — goes through one
// mutex-guarded path, so readers only ever observe state between completed
// command turns.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/averost/focustick/internal/domain"
	"github.com/averost/focustick/internal/ports"
)

// Controller coordinates the countdown clock, the task list, and the menu.
type Controller struct {
	mu sync.Mutex

	tasks []*domain.Task
	timer domain.TimerState
	menu  MenuState
	langs LanguageSelector

	clock    ports.Countdown
	store    ports.TaskStore
	reports  ports.ReportGenerator
	notifier ports.Notifier

	date   time.Time
	status string
}

// New creates a controller for a session starting now.
func New(clock ports.Countdown, store ports.TaskStore, reports ports.ReportGenerator, notifier ports.Notifier, languages []domain.Language) *Controller {
	return &Controller{
		timer:    domain.NewTimerState(),
		langs:    NewLanguageSelector(languages),
		clock:    clock,
		store:    store,
		reports:  reports,
		notifier: notifier,
		date:     time.Now(),
	}
}

// NavigateUp moves the menu selection up.
func (c *Controller) NavigateUp() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menu.Up()
}

// NavigateDown moves the menu selection down.
func (c *Controller) NavigateDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.menu.Down()
}

// CycleLanguage advances the language tag applied to new tasks.
func (c *Controller) CycleLanguage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langs.Cycle()
}

// AddTask validates the duration input, appends a new task tagged with the
// current language, and persists the day's record file. A non-numeric or
// non-positive duration returns ErrInvalidDuration and creates nothing.
func (c *Controller) AddTask(title, description, durationText string) error {
	minutes, err := domain.ParseDurationMinutes(durationText)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	task, err := domain.NewTask(title, description, minutes, c.langs.Current())
	if err != nil {
		return err
	}
	c.tasks = append(c.tasks, task)
	c.persistLocked()
	return nil
}

// StartTimer starts a countdown against the most recently added task.
// It is rejected silently when the list is empty, when a task is already
// in progress, or when the clock is already running: no second countdown
// may ever start beside an active one.
func (c *Controller) StartTimer() {
	c.mu.Lock()
	if len(c.tasks) == 0 || c.anyInProgressLocked() || c.clock.Running() {
		c.mu.Unlock()
		return
	}

	idx := len(c.tasks) - 1
	task := c.tasks[idx]
	task.Start()
	c.timer = domain.TimerState{
		Remaining: task.DurationMinutes * 60,
		Phase:     domain.PhaseRunning,
		TaskIndex: idx,
	}
	seconds := c.timer.Remaining
	c.persistLocked()
	c.mu.Unlock()

	c.clock.Start(seconds, c.Tick)
}

// PauseTimer halts a running countdown, freezing the remaining time.
// There is no resume: the only way out of Paused is StopTimer.
func (c *Controller) PauseTimer() {
	c.mu.Lock()
	if c.timer.Phase != domain.PhaseRunning {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	// Join the clock before flipping the phase; the lock is released so an
	// in-flight tick can complete instead of deadlocking against Stop.
	c.clock.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.timer.Phase != domain.PhaseRunning {
		// The countdown expired in the gap; the expiry stands.
		return
	}
	c.timer.Phase = domain.PhasePaused
}

// StopTimer cancels a running or paused countdown, forces the remaining
// time to zero, and marks the governed task Stopped.
func (c *Controller) StopTimer() {
	c.mu.Lock()
	if !c.timer.Active() {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	c.clock.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.timer.Active() {
		return
	}
	if idx := c.timer.TaskIndex; idx >= 0 && idx < len(c.tasks) {
		c.tasks[idx].Stop()
	}
	c.timer = domain.NewTimerState()
	c.persistLocked()
}

// Tick is the clock's delivery path. A tick arriving after a Pause or Stop
// has won the race is ignored: only a Running timer counts down.
func (c *Controller) Tick(remaining int) {
	c.mu.Lock()
	if c.timer.Phase != domain.PhaseRunning {
		c.mu.Unlock()
		return
	}
	c.timer.Remaining = remaining
	if remaining > 0 {
		c.mu.Unlock()
		return
	}

	var expired *domain.Task
	if idx := c.timer.TaskIndex; idx >= 0 && idx < len(c.tasks) {
		c.tasks[idx].Complete()
		copied := *c.tasks[idx]
		expired = &copied
	}
	c.timer.Phase = domain.PhaseExpired
	c.persistLocked()
	c.mu.Unlock()

	if expired != nil && c.notifier != nil {
		c.notifier.TimerExpired(expired)
	}
}

// VisualizeData generates the aggregate report for the current year.
// Failures are surfaced on the status line, never fatal.
func (c *Controller) VisualizeData() error {
	c.mu.Lock()
	year := c.date.Year()
	c.mu.Unlock()

	err := c.reports.Generate(year)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.status = fmt.Sprintf("report failed: %v", err)
		return err
	}
	c.status = fmt.Sprintf("report written for %d", year)
	return nil
}

// Shutdown stops any running clock. Task statuses are left as they are;
// the day file already reflects the last completed transition.
func (c *Controller) Shutdown() {
	c.clock.Stop()
}

// Snapshot is the read surface for rendering: a consistent copy of the
// controller state taken between command turns.
type Snapshot struct {
	Tasks     []domain.Task
	Timer     domain.TimerState
	MenuIndex int
	Language  domain.Language
	Status    string
}

// Snapshot returns a copy of the current state. The presenter never sees a
// mid-mutation partial state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	tasks := make([]domain.Task, len(c.tasks))
	for i, t := range c.tasks {
		tasks[i] = *t
	}
	return Snapshot{
		Tasks:     tasks,
		Timer:     c.timer,
		MenuIndex: c.menu.Selected,
		Language:  c.langs.Current(),
		Status:    c.status,
	}
}

// anyInProgressLocked reports whether some task is currently in progress.
// Callers hold c.mu.
func (c *Controller) anyInProgressLocked() bool {
	for _, t := range c.tasks {
		if t.IsActive() {
			return true
		}
	}
	return false
}

// persistLocked rewrites the day's record file with the full task list and
// records any failure on the status line. Callers hold c.mu.
func (c *Controller) persistLocked() {
	if c.store == nil {
		return
	}
	if err := c.store.WriteDay(c.date, c.tasks); err != nil {
		c.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	c.status = ""
}
