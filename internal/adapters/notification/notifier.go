// Package notification provides desktop notification utilities.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/averost/focustick/internal/domain"
)

// Notifier handles desktop notifications.
type Notifier struct {
	enabled bool
}

// New creates a notifier.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// TimerExpired announces a completed countdown for the given task.
func (n *Notifier) TimerExpired(task *domain.Task) {
	if !n.enabled || task == nil {
		return
	}
	title := "Timer Complete!"
	message := fmt.Sprintf("%q finished its %d minute countdown.", task.Title, task.DurationMinutes)
	// A failed notification is not worth interrupting the session for.
	_ = beeep.Notify(title, message, "")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}
