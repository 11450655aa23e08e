// Package monitor collects assertion outcomes as events and streams them
// to WebSocket clients while a run is in progress.
package monitor

import "time"

// EventType represents the outcome an event records.
type EventType string

const (
	EventPassed EventType = "passed"
	EventFailed EventType = "failed"
)

// AssertionEvent records the outcome of one assertion.
type AssertionEvent struct {
	Type      EventType `json:"type"`
	Name      string    `json:"name,omitempty"`
	Message   string    `json:"message,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
