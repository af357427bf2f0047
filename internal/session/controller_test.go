package session

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/averost/focustick/internal/domain"
)

// fakeClock is a deterministic countdown: the test drives ticks by hand.
type fakeClock struct {
	mu      sync.Mutex
	running bool
	seconds int
	onTick  func(int)
	starts  int
	stops   int
}

func (f *fakeClock) Start(seconds int, onTick func(remaining int)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return
	}
	f.running = true
	f.seconds = seconds
	f.onTick = onTick
	f.starts++
}

func (f *fakeClock) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		f.running = false
		f.stops++
	}
}

func (f *fakeClock) Running() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

// tick delivers one tick the way the real clock would, and settles the
// clock when the countdown naturally expires.
func (f *fakeClock) tick(remaining int) {
	f.mu.Lock()
	onTick := f.onTick
	f.mu.Unlock()
	if onTick != nil {
		onTick(remaining)
	}
	if remaining == 0 {
		f.mu.Lock()
		f.running = false
		f.mu.Unlock()
	}
}

// memStore records the last persisted day in memory.
type memStore struct {
	mu     sync.Mutex
	writes int
	last   []domain.Task
	err    error
}

func (s *memStore) WriteDay(date time.Time, tasks []*domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.writes++
	s.last = make([]domain.Task, len(tasks))
	for i, t := range tasks {
		s.last[i] = *t
	}
	return nil
}

type fakeReports struct {
	years []int
	err   error
}

func (r *fakeReports) Generate(year int) error {
	r.years = append(r.years, year)
	return r.err
}

type fakeNotifier struct {
	mu    sync.Mutex
	tasks []string
}

func (n *fakeNotifier) TimerExpired(task *domain.Task) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.tasks = append(n.tasks, task.Title)
}

func newTestController() (*Controller, *fakeClock, *memStore, *fakeNotifier) {
	clk := &fakeClock{}
	store := &memStore{}
	notifier := &fakeNotifier{}
	c := New(clk, store, &fakeReports{}, notifier, nil)
	return c, clk, store, notifier
}

func TestController_AddTask(t *testing.T) {
	t.Run("valid duration appends and persists", func(t *testing.T) {
		c, _, store, _ := newTestController()

		if err := c.AddTask("Write parser", "impl", "25"); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}

		snap := c.Snapshot()
		if len(snap.Tasks) != 1 {
			t.Fatalf("task count = %d, want 1", len(snap.Tasks))
		}
		task := snap.Tasks[0]
		if task.Status != domain.StatusNotStarted {
			t.Errorf("status = %v, want %v", task.Status, domain.StatusNotStarted)
		}
		if task.DurationMinutes != 25 {
			t.Errorf("duration = %d, want 25", task.DurationMinutes)
		}
		if task.Language != domain.DefaultLanguages[0] {
			t.Errorf("language = %v, want %v", task.Language, domain.DefaultLanguages[0])
		}
		if store.writes != 1 {
			t.Errorf("store writes = %d, want 1", store.writes)
		}
	})

	t.Run("invalid durations create nothing", func(t *testing.T) {
		c, _, store, _ := newTestController()

		for _, input := range []string{"abc", "", "0", "-5", "2.5"} {
			err := c.AddTask("Task", "", input)
			if !errors.Is(err, domain.ErrInvalidDuration) {
				t.Errorf("AddTask(%q) error = %v, want ErrInvalidDuration", input, err)
			}
		}

		if snap := c.Snapshot(); len(snap.Tasks) != 0 {
			t.Errorf("task count = %d, want 0", len(snap.Tasks))
		}
		if store.writes != 0 {
			t.Errorf("store writes = %d, want 0", store.writes)
		}
	})

	t.Run("list length equals successful adds", func(t *testing.T) {
		c, _, _, _ := newTestController()

		inputs := []string{"10", "x", "20", "-1", "30"}
		successes := 0
		for _, in := range inputs {
			if err := c.AddTask("t", "", in); err == nil {
				successes++
			}
		}
		if snap := c.Snapshot(); len(snap.Tasks) != successes {
			t.Errorf("task count = %d, want %d", len(snap.Tasks), successes)
		}
	})
}

func TestController_StartTimer(t *testing.T) {
	t.Run("starts countdown on last task", func(t *testing.T) {
		c, clk, _, _ := newTestController()
		mustAdd(t, c, "Write parser", "impl", "25")

		c.StartTimer()

		snap := c.Snapshot()
		if snap.Tasks[0].Status != domain.StatusInProgress {
			t.Errorf("status = %v, want %v", snap.Tasks[0].Status, domain.StatusInProgress)
		}
		if snap.Timer.Phase != domain.PhaseRunning {
			t.Errorf("phase = %v, want %v", snap.Timer.Phase, domain.PhaseRunning)
		}
		if snap.Timer.Remaining != 1500 {
			t.Errorf("remaining = %d, want 1500", snap.Timer.Remaining)
		}
		if snap.Timer.TaskIndex != 0 {
			t.Errorf("task index = %d, want 0", snap.Timer.TaskIndex)
		}
		if clk.seconds != 1500 {
			t.Errorf("clock started with %d seconds, want 1500", clk.seconds)
		}
	})

	t.Run("empty list is a no-op", func(t *testing.T) {
		c, clk, _, _ := newTestController()

		c.StartTimer()

		if snap := c.Snapshot(); snap.Timer.Phase != domain.PhaseIdle {
			t.Errorf("phase = %v, want idle", snap.Timer.Phase)
		}
		if clk.starts != 0 {
			t.Errorf("clock starts = %d, want 0", clk.starts)
		}
	})

	t.Run("rejected while a task is in progress", func(t *testing.T) {
		c, clk, _, _ := newTestController()
		mustAdd(t, c, "first", "", "25")
		c.StartTimer()
		mustAdd(t, c, "second", "", "10")

		before := c.Snapshot()
		c.StartTimer()
		after := c.Snapshot()

		if after.Timer != before.Timer {
			t.Errorf("timer changed: %+v -> %+v", before.Timer, after.Timer)
		}
		if after.Tasks[1].Status != domain.StatusNotStarted {
			t.Errorf("second task status = %v, want NotStarted", after.Tasks[1].Status)
		}
		if clk.starts != 1 {
			t.Errorf("clock starts = %d, want 1", clk.starts)
		}
	})
}

func TestController_NaturalExpiry(t *testing.T) {
	c, clk, store, notifier := newTestController()
	mustAdd(t, c, "Write parser", "impl", "25")
	c.StartTimer()

	for remaining := 1499; remaining >= 0; remaining-- {
		clk.tick(remaining)
	}

	snap := c.Snapshot()
	if snap.Tasks[0].Status != domain.StatusCompleted {
		t.Errorf("status = %v, want Completed", snap.Tasks[0].Status)
	}
	if snap.Timer.Phase != domain.PhaseExpired {
		t.Errorf("phase = %v, want Expired", snap.Timer.Phase)
	}
	if snap.Timer.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", snap.Timer.Remaining)
	}

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	if len(notifier.tasks) != 1 || notifier.tasks[0] != "Write parser" {
		t.Errorf("notifications = %v, want one for the expired task", notifier.tasks)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if store.last[0].Status != domain.StatusCompleted {
		t.Errorf("persisted status = %v, want Completed", store.last[0].Status)
	}
}

func TestController_StopAfterTicks(t *testing.T) {
	c, clk, _, _ := newTestController()
	mustAdd(t, c, "Write parser", "impl", "25")
	c.StartTimer()

	for remaining := 1499; remaining > 1489; remaining-- {
		clk.tick(remaining)
	}
	c.StopTimer()

	snap := c.Snapshot()
	if snap.Tasks[0].Status != domain.StatusStopped {
		t.Errorf("status = %v, want Stopped", snap.Tasks[0].Status)
	}
	if snap.Timer.Remaining != 0 {
		t.Errorf("remaining = %d, want 0", snap.Timer.Remaining)
	}
	if snap.Timer.Phase != domain.PhaseIdle {
		t.Errorf("phase = %v, want Idle", snap.Timer.Phase)
	}
	if snap.Timer.TaskIndex != domain.NoActiveTask {
		t.Errorf("task index = %d, want none", snap.Timer.TaskIndex)
	}
	if clk.stops == 0 {
		t.Error("clock was never stopped")
	}
}

func TestController_PauseFreezesRemaining(t *testing.T) {
	c, clk, _, _ := newTestController()
	mustAdd(t, c, "task", "", "1")
	c.StartTimer()
	clk.tick(59)
	clk.tick(58)

	c.PauseTimer()

	snap := c.Snapshot()
	if snap.Timer.Phase != domain.PhasePaused {
		t.Errorf("phase = %v, want Paused", snap.Timer.Phase)
	}
	if snap.Timer.Remaining != 58 {
		t.Errorf("remaining = %d, want 58", snap.Timer.Remaining)
	}
	if clk.stops != 1 {
		t.Errorf("clock stops = %d, want 1", clk.stops)
	}

	// A tick that lost the race against Pause must be ignored.
	c.Tick(57)
	if snap := c.Snapshot(); snap.Timer.Remaining != 58 {
		t.Errorf("remaining after stray tick = %d, want 58", snap.Timer.Remaining)
	}

	// No resume path: the only exit from Paused is Stop.
	c.PauseTimer()
	if snap := c.Snapshot(); snap.Timer.Phase != domain.PhasePaused {
		t.Errorf("phase = %v, want Paused", snap.Timer.Phase)
	}
	c.StopTimer()
	snap = c.Snapshot()
	if snap.Timer.Phase != domain.PhaseIdle {
		t.Errorf("phase = %v, want Idle", snap.Timer.Phase)
	}
	if snap.Tasks[0].Status != domain.StatusStopped {
		t.Errorf("status = %v, want Stopped", snap.Tasks[0].Status)
	}
}

func TestController_StopPauseWithNoTimerAreNoops(t *testing.T) {
	c, clk, _, _ := newTestController()
	mustAdd(t, c, "task", "", "5")

	c.PauseTimer()
	c.StopTimer()

	snap := c.Snapshot()
	if snap.Timer.Phase != domain.PhaseIdle {
		t.Errorf("phase = %v, want Idle", snap.Timer.Phase)
	}
	if snap.Tasks[0].Status != domain.StatusNotStarted {
		t.Errorf("status = %v, want NotStarted", snap.Tasks[0].Status)
	}
	if clk.stops != 0 {
		t.Errorf("clock stops = %d, want 0", clk.stops)
	}
}

func TestController_AtMostOneTaskInProgress(t *testing.T) {
	c, clk, _, _ := newTestController()

	// An arbitrary command sequence; the invariant must hold after each.
	steps := []func(){
		func() { _ = c.AddTask("a", "", "5") },
		func() { c.StartTimer() },
		func() { _ = c.AddTask("b", "", "10") },
		func() { c.StartTimer() },
		func() { clk.tick(100) },
		func() { c.StopTimer() },
		func() { c.StartTimer() },
		func() { _ = c.AddTask("c", "", "3") },
		func() { c.StartTimer() },
	}

	for i, step := range steps {
		step()
		inProgress := 0
		for _, task := range c.Snapshot().Tasks {
			if task.Status == domain.StatusInProgress {
				inProgress++
			}
		}
		if inProgress > 1 {
			t.Fatalf("after step %d: %d tasks in progress, want at most 1", i, inProgress)
		}
	}
}

func TestController_PersistenceErrorSurfacesInline(t *testing.T) {
	clk := &fakeClock{}
	store := &memStore{err: errors.New("disk full")}
	c := New(clk, store, &fakeReports{}, nil, nil)

	if err := c.AddTask("task", "", "5"); err != nil {
		t.Fatalf("AddTask() error = %v, want nil (persistence failure is non-fatal)", err)
	}

	snap := c.Snapshot()
	if len(snap.Tasks) != 1 {
		t.Errorf("task count = %d, want 1 (task kept despite save failure)", len(snap.Tasks))
	}
	if snap.Status == "" {
		t.Error("status line empty, want inline save error")
	}
}

func TestController_VisualizeData(t *testing.T) {
	t.Run("invokes the generator for the current year", func(t *testing.T) {
		reports := &fakeReports{}
		c := New(&fakeClock{}, &memStore{}, reports, nil, nil)

		if err := c.VisualizeData(); err != nil {
			t.Fatalf("VisualizeData() error = %v", err)
		}
		if len(reports.years) != 1 || reports.years[0] != time.Now().Year() {
			t.Errorf("generated years = %v, want current year", reports.years)
		}
	})

	t.Run("failure is surfaced, not fatal", func(t *testing.T) {
		reports := &fakeReports{err: errors.New("bad records")}
		c := New(&fakeClock{}, &memStore{}, reports, nil, nil)

		if err := c.VisualizeData(); err == nil {
			t.Fatal("VisualizeData() error = nil, want error")
		}
		if snap := c.Snapshot(); snap.Status == "" {
			t.Error("status line empty, want inline report error")
		}
	})
}

func TestController_ShutdownStopsClock(t *testing.T) {
	c, clk, _, _ := newTestController()
	mustAdd(t, c, "task", "", "5")
	c.StartTimer()

	c.Shutdown()

	if clk.Running() {
		t.Error("clock still running after Shutdown()")
	}
}

func TestController_RestartAfterExpiry(t *testing.T) {
	c, clk, _, _ := newTestController()
	mustAdd(t, c, "task", "", "1")
	c.StartTimer()
	clk.tick(0)

	// The countdown expired; a fresh start must be possible again.
	c.StartTimer()
	snap := c.Snapshot()
	if snap.Timer.Phase != domain.PhaseRunning {
		t.Errorf("phase = %v, want Running", snap.Timer.Phase)
	}
	if clk.starts != 2 {
		t.Errorf("clock starts = %d, want 2", clk.starts)
	}
}

func mustAdd(t *testing.T, c *Controller, title, description, duration string) {
	t.Helper()
	if err := c.AddTask(title, description, duration); err != nil {
		t.Fatalf("AddTask(%q) error = %v", title, err)
	}
}
