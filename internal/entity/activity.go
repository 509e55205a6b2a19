package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLevel string

const (
	ActivityInfo    ActivityLevel = "info"
	ActivitySuccess ActivityLevel = "success"
	ActivityWarn    ActivityLevel = "warn"
	ActivityError   ActivityLevel = "error"
)

// ActivityEntry is one line of the dashboard activity log.
type ActivityEntry struct {
	ID      string        `json:"id"`
	At      time.Time     `json:"at"`
	Level   ActivityLevel `json:"level"`
	Message string        `json:"message"`
}

func NewActivityEntry(level ActivityLevel, message string, at time.Time) ActivityEntry {
	return ActivityEntry{
		ID:      uuid.New().String(),
		At:      at,
		Level:   level,
		Message: message,
	}
}
