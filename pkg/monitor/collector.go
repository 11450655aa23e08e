package monitor

import (
	"sync"
	"time"

	"digital.vasic.chronoassert/pkg/assertion"
	"digital.vasic.chronoassert/pkg/failure"
)

// EventCollector captures assertion events and aggregate counts.
type EventCollector struct {
	mu       sync.RWMutex
	events   []AssertionEvent
	handlers []func(AssertionEvent)
	stats    CollectorStats
}

// CollectorStats holds aggregate statistics.
type CollectorStats struct {
	Total     int           `json:"total"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// NewEventCollector creates a new event collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{
		events: make([]AssertionEvent, 0, 64),
		stats:  CollectorStats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler to be called for each event.
func (c *EventCollector) OnEvent(handler func(AssertionEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Emit records an event and notifies all handlers. Handlers run
// on the caller's goroutine after the collector lock is released.
func (c *EventCollector) Emit(event AssertionEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, event)
	c.stats.Total++
	switch event.Type {
	case EventPassed:
		c.stats.Passed++
	case EventFailed:
		c.stats.Failed++
	}
	handlers := make([]func(AssertionEvent), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(event)
	}
}

// EmitPassed emits a passed event.
func (c *EventCollector) EmitPassed(name, msg string) {
	c.Emit(AssertionEvent{Type: EventPassed, Name: name, Message: msg})
}

// EmitFailed emits a failed event.
func (c *EventCollector) EmitFailed(name, msg, reason string) {
	c.Emit(AssertionEvent{
		Type:    EventFailed,
		Name:    name,
		Message: msg,
		Reason:  reason,
	})
}

// Observe emits an event for an evaluated assertion result.
func (c *EventCollector) Observe(r assertion.Result) {
	if r.Passed {
		c.EmitPassed(r.Name, r.Message)
		return
	}
	c.EmitFailed(r.Name, r.Message, "")
}

// Reporter returns a failure.Reporter that emits a failed event
// labelled name for every failure it receives. Combine it with
// failure.Tee to keep the host's own failure signalling.
func (c *EventCollector) Reporter(name string) failure.Reporter {
	return failure.Func(func(because []any, template string, args ...any) {
		err := failure.NewError(because, template, args...)
		c.EmitFailed(name, err.Message, err.Reason)
	})
}

// Events returns a copy of all collected events.
func (c *EventCollector) Events() []AssertionEvent {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]AssertionEvent, len(c.events))
	copy(result, c.events)
	return result
}

// Stats returns the current aggregate statistics.
func (c *EventCollector) Stats() CollectorStats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s := c.stats
	s.Duration = time.Since(s.StartTime)
	return s
}

// Reset clears all collected events and statistics.
func (c *EventCollector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = CollectorStats{StartTime: time.Now()}
}
