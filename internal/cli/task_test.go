package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mkondo/remindo/internal/app"
	"github.com/mkondo/remindo/internal/domain"
	"github.com/mkondo/remindo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testDeps bundles the mock dependencies behind a test container.
type testDeps struct {
	store     *testutil.MockStore
	scheduler *testutil.FakeScheduler
	notifier  *testutil.MockNotifier
	clock     *testutil.MockClock
}

// newTestContainer creates an app.Container with mock dependencies.
func newTestContainer() (*app.Container, *testDeps) {
	deps := &testDeps{
		store:    testutil.NewMockStore(),
		notifier: testutil.NewMockNotifier(),
		clock:    &testutil.MockClock{NowTime: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
	}
	deps.scheduler = testutil.NewFakeScheduler(deps.clock)
	container := app.NewWithDeps(
		domain.NewDefaultConfig(),
		deps.store,
		deps.scheduler,
		deps.notifier,
		deps.clock,
		testutil.NopLogger{},
	)
	return container, deps
}

// =============================================================================
// Add Command Tests
// =============================================================================

func TestNewAddCommand_CreateTask(t *testing.T) {
	container, deps := newTestContainer()

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Buy milk"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Added task #1")
	require.Len(t, deps.store.Tasks, 1)
	assert.Equal(t, "Buy milk", deps.store.Tasks[0].Text)
}

func TestNewAddCommand_WithReminder(t *testing.T) {
	container, deps := newTestContainer()

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"Water the plants", "--at", "2025-03-01 12:30"})

	err := cmd.Execute()

	assert.NoError(t, err)
	require.Len(t, deps.store.Tasks, 1)
	require.NotNil(t, deps.store.Tasks[0].Reminder)
	assert.True(t, deps.scheduler.Armed(1))
}

func TestNewAddCommand_TimeOnlyReminder(t *testing.T) {
	container, deps := newTestContainer()

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"Standup", "--at", "13:00"})

	err := cmd.Execute()

	assert.NoError(t, err)
	require.Len(t, deps.store.Tasks, 1)
	require.NotNil(t, deps.store.Tasks[0].Reminder)
	want := time.Date(2025, 3, 1, 13, 0, 0, 0, time.UTC)
	assert.Equal(t, want, *deps.store.Tasks[0].Reminder)
}

func TestNewAddCommand_InvalidReminder(t *testing.T) {
	container, deps := newTestContainer()

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"x", "--at", "tomorrow-ish"})

	err := cmd.Execute()

	assert.Error(t, err)
	assert.Empty(t, deps.store.Tasks)
}

func TestNewAddCommand_BlankTextIsSilentNoop(t *testing.T) {
	container, deps := newTestContainer()

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"   "})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Empty(t, buf.String())
	assert.Empty(t, deps.store.Tasks)
}

func TestNewAddCommand_FromFile(t *testing.T) {
	container, deps := newTestContainer()

	path := filepath.Join(t.TempDir(), "tasks.md")
	content := `---
text: Buy milk
---

---
text: Water the plants
reminder: "2025-03-01 12:30"
---
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cmd := newAddCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--from", path})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Added 2 task(s)")
	require.Len(t, deps.store.Tasks, 2)
	assert.Equal(t, 1, deps.scheduler.ArmedCount())
}

func TestNewAddCommand_FromFileMissing(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newAddCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--from", filepath.Join(t.TempDir(), "missing.md")})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read file")
}

// =============================================================================
// List Command Tests
// =============================================================================

func TestNewListCommand_Empty(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "No tasks yet. Add one above!")
}

func TestNewListCommand_ActiveOnly(t *testing.T) {
	container, deps := newTestContainer()
	deps.store.Tasks = []domain.Task{
		{ID: 1, Text: "active one", Created: deps.clock.NowTime},
		{ID: 2, Text: "done one", Created: deps.clock.NowTime, Completed: true},
	}

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "active one")
	assert.NotContains(t, buf.String(), "done one")
}

func TestNewListCommand_All(t *testing.T) {
	container, deps := newTestContainer()
	deps.store.Tasks = []domain.Task{
		{ID: 1, Text: "active one", Created: deps.clock.NowTime},
		{ID: 2, Text: "done one", Created: deps.clock.NowTime, Completed: true},
	}

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--all"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "active one")
	assert.Contains(t, buf.String(), "done one")
}

func TestNewListCommand_PastReminderMarked(t *testing.T) {
	container, deps := newTestContainer()
	past := deps.clock.NowTime.Add(-time.Hour)
	deps.store.Tasks = []domain.Task{
		{ID: 1, Text: "overdue", Created: deps.clock.NowTime, Reminder: &past},
	}

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "(past)")
}

func TestNewListCommand_JSON(t *testing.T) {
	container, deps := newTestContainer()
	deps.store.Tasks = []domain.Task{
		{ID: 1, Text: "active one", Created: deps.clock.NowTime},
		{ID: 2, Text: "done one", Created: deps.clock.NowTime, Completed: true},
	}

	cmd := newListCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--json", "--all"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"text": "active one"`)
	assert.Contains(t, buf.String(), `"text": "done one"`)
}

// =============================================================================
// Done Command Tests
// =============================================================================

func TestNewDoneCommand_Toggle(t *testing.T) {
	container, deps := newTestContainer()
	deps.store.Tasks = []domain.Task{
		{ID: 1, Text: "a", Created: deps.clock.NowTime},
	}

	cmd := newDoneCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Task #1 is now done")
	assert.True(t, deps.store.Tasks[0].Completed)
}

func TestNewDoneCommand_NotFound(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newDoneCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestNewDoneCommand_InvalidID(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newDoneCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"abc"})

	err := cmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid task ID")
}

// =============================================================================
// Rm Command Tests
// =============================================================================

func TestNewRmCommand_Delete(t *testing.T) {
	container, deps := newTestContainer()
	deps.store.Tasks = []domain.Task{
		{ID: 1, Text: "a", Created: deps.clock.NowTime},
		{ID: 2, Text: "b", Created: deps.clock.NowTime},
	}

	cmd := newRmCommand(container)
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"1"})

	err := cmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Deleted task #1: a")
	require.Len(t, deps.store.Tasks, 1)
	assert.Equal(t, 2, deps.store.Tasks[0].ID)
}

func TestNewRmCommand_NotFound(t *testing.T) {
	container, _ := newTestContainer()

	cmd := newRmCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"42"})

	err := cmd.Execute()
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}
