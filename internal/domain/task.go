// Package domain contains the core business entities for focustick.
// These entities represent the fundamental concepts of the timed-task
// system and are independent of any external frameworks or infrastructure.
package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common domain errors.
var (
	ErrEmptyTaskTitle  = errors.New("task title cannot be empty")
	ErrInvalidDuration = errors.New("duration must be a positive number of minutes")
	ErrNoTasks         = errors.New("no tasks to run")
	ErrTimerActive     = errors.New("a timer is already active")
	ErrNoActiveTimer   = errors.New("no active timer")
)

// TaskStatus represents the current state of a task.
type TaskStatus string

const (
	StatusNotStarted TaskStatus = "not_started"
	StatusInProgress TaskStatus = "in_progress"
	StatusStopped    TaskStatus = "stopped"
	StatusCompleted  TaskStatus = "completed"
)

// StatusLabel returns a human-readable label for a task status.
func StatusLabel(s TaskStatus) string {
	switch s {
	case StatusNotStarted:
		return "Not Started"
	case StatusInProgress:
		return "In Progress"
	case StatusStopped:
		return "Stopped"
	case StatusCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// ParseStatus converts a persisted label back into a TaskStatus.
// Unrecognized labels map to NotStarted rather than failing: old record
// files must stay readable by the report generator.
func ParseStatus(label string) TaskStatus {
	switch strings.TrimSpace(label) {
	case "In Progress":
		return StatusInProgress
	case "Stopped":
		return StatusStopped
	case "Completed":
		return StatusCompleted
	default:
		return StatusNotStarted
	}
}

// Language is the programming-language tag attached to a task.
type Language string

// DefaultLanguages is the language set used when config does not override it.
var DefaultLanguages = []Language{"Python", "Golang", "Java", "Rust"}

// Task represents a unit of timed work.
type Task struct {
	ID              string
	Title           string
	Description     string
	DurationMinutes int
	Language        Language
	Status          TaskStatus
	CreatedAt       time.Time
}

// NewTask creates a task in the NotStarted state.
func NewTask(title, description string, durationMinutes int, lang Language) (*Task, error) {
	if title == "" {
		return nil, ErrEmptyTaskTitle
	}
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	return &Task{
		ID:              generateID(),
		Title:           title,
		Description:     description,
		DurationMinutes: durationMinutes,
		Language:        lang,
		Status:          StatusNotStarted,
		CreatedAt:       time.Now(),
	}, nil
}

// ParseDurationMinutes parses user input into a positive minute count.
func ParseDurationMinutes(input string) (int, error) {
	minutes, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || minutes <= 0 {
		return 0, ErrInvalidDuration
	}
	return minutes, nil
}

// Start marks the task as in progress.
func (t *Task) Start() {
	t.Status = StatusInProgress
}

// Complete marks the task as completed.
func (t *Task) Complete() {
	t.Status = StatusCompleted
}

// Stop marks the task as stopped before its timer ran out.
func (t *Task) Stop() {
	t.Status = StatusStopped
}

// IsActive returns true if the task is currently being worked on.
func (t *Task) IsActive() bool {
	return t.Status == StatusInProgress
}

// generateID creates a new unique task identifier.
func generateID() string {
	return uuid.New().String()
}
