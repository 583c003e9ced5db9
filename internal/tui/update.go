package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mkondo/remindo/internal/domain"
	"github.com/mkondo/remindo/internal/usecase"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTasksLoaded:
		m.active = msg.Active
		m.completed = msg.Completed
		m.clampCursor()
		return m, nil

	case MsgTaskAdded:
		m.mode = ModeNormal
		m.textInput.Reset()
		m.reminderInput.Reset()
		m.pendingText = ""
		return m, m.loadTasks()

	case MsgTaskToggled:
		return m, m.loadTasks()

	case MsgTaskDeleted:
		m.mode = ModeNormal
		m.confirmTaskID = 0
		return m, m.loadTasks()

	case MsgPermissionChanged:
		m.permission = msg.Permission
		return m, nil

	case MsgError:
		m.err = msg.Err
		m.mode = ModeNormal
		m.confirmTaskID = 0
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches key events by mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInputText:
		return m.handleInputTextMode(msg)
	case ModeInputReminder:
		return m.handleInputReminderMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}
	return m, nil
}

// handleNormalMode handles keys in the default navigation mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.visibleTasks())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.err = nil
		m.mode = ModeInputText
		m.textInput.Focus()
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		return m, m.toggleTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmTaskID = task.ID
		return m, nil

	case key.Matches(msg, m.keys.Notify):
		return m, m.enableNotifications()

	case key.Matches(msg, m.keys.Refresh):
		m.err = nil
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.err = nil
		return m, nil
	}

	return m, nil
}

// handleInputTextMode handles keys while entering new task text.
func (m *Model) handleInputTextMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.textInput.Reset()
		return m, nil

	case msg.Type == tea.KeyEnter:
		text := domain.NormalizeText(m.textInput.Value())
		if text == "" {
			// Blank input is ignored; just close the form
			m.mode = ModeNormal
			m.textInput.Reset()
			return m, nil
		}
		m.pendingText = text
		m.mode = ModeInputReminder
		m.textInput.Blur()
		m.reminderInput.Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// handleInputReminderMode handles keys while entering the optional
// reminder time.
func (m *Model) handleInputReminderMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		// Back to text entry, keeping what was typed
		m.mode = ModeInputText
		m.reminderInput.Reset()
		m.reminderInput.Blur()
		m.textInput.Focus()
		return m, nil

	case msg.Type == tea.KeyEnter:
		reminderStr := m.reminderInput.Value()
		var reminder *time.Time
		if reminderStr != "" {
			at, err := domain.ParseReminder(reminderStr, m.container.Clock.Now())
			if err != nil {
				m.err = fmt.Errorf("invalid reminder %q", reminderStr)
				return m, nil
			}
			reminder = &at
		}
		m.err = nil
		m.reminderInput.Blur()
		return m, m.addTask(m.pendingText, reminder)
	}

	var cmd tea.Cmd
	m.reminderInput, cmd = m.reminderInput.Update(msg)
	return m, cmd
}

// handleConfirmMode handles keys in the delete confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		return m, m.deleteTask(m.confirmTaskID)

	case key.Matches(msg, m.keys.Escape), msg.String() == "n":
		m.mode = ModeNormal
		m.confirmTaskID = 0
		return m, nil
	}
	return m, nil
}

// handleHelpMode handles keys in the help overlay.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
	}
	return m, nil
}

// addTask returns a command that creates a task.
func (m *Model) addTask(text string, reminder *time.Time) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.AddTaskUseCase().Execute(context.Background(), usecase.AddTaskInput{
			Text:     text,
			Reminder: reminder,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskAdded{TaskID: out.Task.ID}
	}
}

// toggleTask returns a command that flips a task's completion state.
func (m *Model) toggleTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ToggleTaskUseCase().Execute(context.Background(), usecase.ToggleTaskInput{TaskID: taskID})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskToggled{TaskID: taskID, Completed: out.Task.Completed}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(taskID int) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{TaskID: taskID}); err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskDeleted{TaskID: taskID}
	}
}

// enableNotifications returns a command that requests notification
// permission.
func (m *Model) enableNotifications() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.EnableNotificationsUseCase().Execute(context.Background(), usecase.EnableNotificationsInput{})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgPermissionChanged{Permission: out.Permission}
	}
}
