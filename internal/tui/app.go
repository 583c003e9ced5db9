package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkondo/remindo/internal/app"
	"github.com/mkondo/remindo/internal/domain"
	"github.com/mkondo/remindo/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error

	// State (slices - contain pointers)
	active    []domain.Task
	completed []domain.Task

	// Components
	keys   KeyMap
	styles Styles

	// Input state (large structs)
	textInput     textinput.Model
	reminderInput textinput.Model

	// Pending add state
	pendingText string
	permission  domain.Permission

	// Numeric state (smaller types last)
	mode          Mode
	cursor        int
	confirmTaskID int
	width         int
	height        int
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200

	ri := textinput.New()
	ri.Placeholder = "Reminder (e.g. 2025-03-01 09:00 or 09:00), empty for none"
	ri.CharLimit = 40

	return &Model{
		container:     c,
		mode:          ModeNormal,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		textInput:     ti,
		reminderInput: ri,
		permission:    c.Notifier.Permission(),
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads tasks from the store.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Active: out.Active, Completed: out.Completed}
	}
}

// visibleTasks returns the display order: active tasks first, then
// completed, each section in insertion order.
func (m *Model) visibleTasks() []domain.Task {
	tasks := make([]domain.Task, 0, len(m.active)+len(m.completed))
	tasks = append(tasks, m.active...)
	tasks = append(tasks, m.completed...)
	return tasks
}

// SelectedTask returns the task under the cursor, or nil if the list
// is empty.
func (m *Model) SelectedTask() *domain.Task {
	tasks := m.visibleTasks()
	if len(tasks) == 0 || m.cursor < 0 || m.cursor >= len(tasks) {
		return nil
	}
	return &tasks[m.cursor]
}

// clampCursor keeps the cursor inside the visible list after a reload.
func (m *Model) clampCursor() {
	n := len(m.visibleTasks())
	if n == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
