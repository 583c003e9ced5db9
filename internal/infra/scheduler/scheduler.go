// Package scheduler provides a time.AfterFunc-backed implementation
// of the reminder Scheduler port.
package scheduler

import (
	"sync"
	"time"

	"github.com/mkondo/remindo/internal/domain"
)

// Scheduler arms one deferred callback per task ID. Arming a task
// that already has a pending timer cancels the old one first, so the
// one-timer-per-task invariant holds structurally.
type Scheduler struct {
	timers map[int]*time.Timer
	mu     sync.Mutex
}

// New creates an empty Scheduler.
func New() *Scheduler {
	return &Scheduler{
		timers: make(map[int]*time.Timer),
	}
}

// Arm schedules fn to run once after delay, keyed by task ID.
func (s *Scheduler) Arm(taskID int, delay time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.timers[taskID]; ok {
		old.Stop()
	}

	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		s.mu.Lock()
		// Drop the registry entry only if it still refers to this
		// timer; a re-arm may have replaced it meanwhile.
		if current, ok := s.timers[taskID]; ok && current == timer {
			delete(s.timers, taskID)
		}
		s.mu.Unlock()
		fn()
	})
	s.timers[taskID] = timer
}

// Cancel prevents a pending timer from firing. No-op if the timer
// already fired or was never armed.
func (s *Scheduler) Cancel(taskID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[taskID]; ok {
		timer.Stop()
		delete(s.timers, taskID)
	}
}

// CancelAll cancels every pending timer. Used at teardown.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

// Armed reports whether a timer is pending for the task.
func (s *Scheduler) Armed(taskID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.timers[taskID]
	return ok
}

// Ensure Scheduler implements the port.
var _ domain.Scheduler = (*Scheduler)(nil)
