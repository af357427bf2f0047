// Package ports defines the interfaces between the session controller and
// its external collaborators. Driven ports are implemented by adapters;
// the controller depends only on these contracts.
package ports

import (
	"time"

	"github.com/averost/focustick/internal/domain"
)

// Countdown is the contract of the background countdown clock.
// This is a driven port (implemented by the clock package and by test fakes).
type Countdown interface {
	// Start begins a countdown, reporting remaining seconds through onTick.
	Start(seconds int, onTick func(remaining int))

	// Stop cancels the countdown; no ticks are delivered after it returns.
	Stop()

	// Running reports whether a countdown is in flight.
	Running() bool
}

// TaskStore is the durable task-record store, keyed by date.
// This is a driven port (implemented by adapters).
type TaskStore interface {
	// WriteDay serializes the full task list for the given date,
	// replacing any prior record file for that date.
	WriteDay(date time.Time, tasks []*domain.Task) error
}

// ReportGenerator produces the aggregate visualization for a year of records.
// This is a driven port (implemented by adapters).
type ReportGenerator interface {
	// Generate reads every record for the year and writes the summary
	// artifact. A year with no records is a silent no-op.
	Generate(year int) error
}

// Notifier surfaces timer lifecycle events outside the terminal.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// TimerExpired is called when a countdown reaches zero naturally.
	TimerExpired(task *domain.Task)
}
