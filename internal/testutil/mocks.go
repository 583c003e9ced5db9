// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sort"
	"time"

	"github.com/mkondo/remindo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockStore is an in-memory test double for domain.TaskStore.
type MockStore struct {
	Tasks   []domain.Task
	LoadErr error
	SaveErr error
	NextIDN int
	Saves   int
}

// NewMockStore creates a MockStore whose ID counter starts at 1.
func NewMockStore() *MockStore {
	return &MockStore{NextIDN: 1}
}

// Load returns a copy of the stored list.
func (m *MockStore) Load() ([]domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]domain.Task(nil), m.Tasks...), nil
}

// Save replaces the stored list and counts the write.
func (m *MockStore) Save(tasks []domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = append([]domain.Task(nil), tasks...)
	m.Saves++
	return nil
}

// NextID returns the next available task ID.
func (m *MockStore) NextID() (int, error) {
	id := m.NextIDN
	m.NextIDN++
	return id, nil
}

// fakeTimer is a pending virtual-time timer.
type fakeTimer struct {
	fn     func()
	fireAt time.Time
	taskID int
}

// FakeScheduler is a virtual-time test double for domain.Scheduler.
// Timers fire only when Advance moves the fake clock past their
// deadline, making reminder tests deterministic.
type FakeScheduler struct {
	Clock   *MockClock
	pending []fakeTimer
}

// NewFakeScheduler creates a FakeScheduler driven by the given clock.
func NewFakeScheduler(clock *MockClock) *FakeScheduler {
	return &FakeScheduler{Clock: clock}
}

// Arm registers a virtual timer, replacing any pending one for the task.
func (s *FakeScheduler) Arm(taskID int, delay time.Duration, fn func()) {
	s.Cancel(taskID)
	s.pending = append(s.pending, fakeTimer{
		taskID: taskID,
		fireAt: s.Clock.NowTime.Add(delay),
		fn:     fn,
	})
}

// Cancel drops the pending timer for the task, if any.
func (s *FakeScheduler) Cancel(taskID int) {
	kept := s.pending[:0]
	for _, t := range s.pending {
		if t.taskID != taskID {
			kept = append(kept, t)
		}
	}
	s.pending = kept
}

// CancelAll drops every pending timer.
func (s *FakeScheduler) CancelAll() {
	s.pending = nil
}

// Armed reports whether a timer is pending for the task.
func (s *FakeScheduler) Armed(taskID int) bool {
	for _, t := range s.pending {
		if t.taskID == taskID {
			return true
		}
	}
	return false
}

// ArmedCount returns the number of pending timers.
func (s *FakeScheduler) ArmedCount() int {
	return len(s.pending)
}

// Advance moves virtual time forward and fires every timer whose
// deadline has passed, in deadline order.
func (s *FakeScheduler) Advance(d time.Duration) {
	s.Clock.NowTime = s.Clock.NowTime.Add(d)

	var due, kept []fakeTimer
	for _, t := range s.pending {
		if !t.fireAt.After(s.Clock.NowTime) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.pending = kept

	sort.Slice(due, func(i, j int) bool { return due[i].fireAt.Before(due[j].fireAt) })
	for _, t := range due {
		t.fn()
	}
}

// MockNotifier is a recording test double for domain.Notifier.
type MockNotifier struct {
	Perm      domain.Permission
	Notified  []Notification
	RequestN  int
	NotifyErr error
}

// Notification records a single Notify call.
type Notification struct {
	Title string
	Body  string
}

// NewMockNotifier creates a MockNotifier in the default state.
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{Perm: domain.PermissionDefault}
}

// Permission returns the configured permission state.
func (m *MockNotifier) Permission() domain.Permission {
	return m.Perm
}

// RequestPermission grants unless already denied, mirroring the real
// notifier's terminal-denial behavior.
func (m *MockNotifier) RequestPermission(_ context.Context) (domain.Permission, error) {
	m.RequestN++
	if m.Perm == domain.PermissionDefault {
		m.Perm = domain.PermissionGranted
	}
	return m.Perm, nil
}

// Notify records the notification when permission is granted.
func (m *MockNotifier) Notify(title, body string) error {
	if m.NotifyErr != nil {
		return m.NotifyErr
	}
	if m.Perm != domain.PermissionGranted {
		return nil
	}
	m.Notified = append(m.Notified, Notification{Title: title, Body: body})
	return nil
}

// NopLogger is a no-op test double for domain.Logger.
type NopLogger struct{}

// Debug does nothing.
func (NopLogger) Debug(string, string) {}

// Info does nothing.
func (NopLogger) Info(string, string) {}

// Warn does nothing.
func (NopLogger) Warn(string, string) {}

// Error does nothing.
func (NopLogger) Error(string, string) {}

// Interface checks.
var (
	_ domain.Clock     = (*MockClock)(nil)
	_ domain.TaskStore = (*MockStore)(nil)
	_ domain.Scheduler = (*FakeScheduler)(nil)
	_ domain.Notifier  = (*MockNotifier)(nil)
	_ domain.Logger    = NopLogger{}
)
