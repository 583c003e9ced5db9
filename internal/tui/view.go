package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/mkondo/remindo/internal/domain"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInputText, ModeInputReminder, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the task list with any active overlay.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())

	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay
	case ModeInputText:
		b.WriteString("\n")
		b.WriteString(m.viewTextInput())
	case ModeInputReminder:
		b.WriteString("\n")
		b.WriteString(m.viewReminderInput())
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
	}

	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	return b.String()
}

// viewHeader renders the title line with counts and permission state.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("remindo")
	counts := m.styles.Status.Render(fmt.Sprintf("%d active, %d done", len(m.active), len(m.completed)))

	perm := ""
	switch m.permission {
	case domain.PermissionGranted:
		perm = m.styles.Status.Render("· notifications on")
	case domain.PermissionDenied:
		perm = m.styles.Status.Render("· notifications denied")
	default:
		perm = m.styles.Status.Render("· press N to enable notifications")
	}

	return title + "  " + counts + " " + perm
}

// viewTaskList renders the active and completed sections.
func (m *Model) viewTaskList() string {
	tasks := m.visibleTasks()
	if len(tasks) == 0 {
		return m.styles.Empty.Render("No tasks yet. Add one above!") + "\n"
	}

	var b strings.Builder
	row := 0

	if len(m.active) > 0 {
		b.WriteString(m.styles.SectionLabel.Render("── Active ──") + "\n")
		for _, task := range m.active {
			b.WriteString(m.viewTaskRow(task, row == m.cursor))
			b.WriteString("\n")
			row++
		}
	}

	if len(m.completed) > 0 {
		if len(m.active) > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.styles.SectionLabel.Render("── Completed ──") + "\n")
		for _, task := range m.completed {
			b.WriteString(m.viewTaskRow(task, row == m.cursor))
			b.WriteString("\n")
			row++
		}
	}

	return b.String()
}

// viewTaskRow renders one task line.
func (m *Model) viewTaskRow(task domain.Task, selected bool) string {
	cursor := "  "
	if selected {
		cursor = m.styles.CursorCurrent.Render("> ")
	}

	id := m.styles.TaskID.Render(fmt.Sprintf("#%d", task.ID))
	icon := TaskIcon(task.Completed)

	text := task.Text
	maxText := m.width - 30
	if maxText > 0 {
		text = runewidth.Truncate(text, maxText, "…")
	}

	textStyle := m.styles.TaskNormal
	if task.Completed {
		textStyle = m.styles.TaskDone
	} else if selected {
		textStyle = m.styles.TaskSelected
	}

	line := cursor + id + " " + icon + " " + textStyle.Render(text)

	if task.HasReminder() && !task.Completed {
		stamp := task.Reminder.Format("2006-01-02 15:04")
		style := m.styles.Reminder
		if task.Reminder.Before(m.container.Clock.Now()) {
			style = m.styles.ReminderPast
			stamp += " (past)"
		}
		line += " " + style.Render("⏰ "+stamp)
	}

	return line
}

// viewTextInput renders the task text entry form.
func (m *Model) viewTextInput() string {
	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render("New task") + "\n")
	b.WriteString(m.styles.Input.Render(m.textInput.View()))
	b.WriteString("\n" + m.styles.Footer.Render("enter: next · esc: cancel"))
	return b.String()
}

// viewReminderInput renders the optional reminder entry form.
func (m *Model) viewReminderInput() string {
	var b strings.Builder
	b.WriteString(m.styles.InputPrompt.Render("Reminder for: ") + m.styles.TaskNormal.Render(m.pendingText) + "\n")
	b.WriteString(m.styles.Input.Render(m.reminderInput.View()))
	b.WriteString("\n" + m.styles.Footer.Render("enter: add · esc: back"))
	return b.String()
}

// viewConfirmDialog renders the delete confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	task := m.taskByID(m.confirmTaskID)
	prompt := fmt.Sprintf("Delete task #%d?", m.confirmTaskID)
	if task != nil {
		prompt = fmt.Sprintf("Delete task #%d: %s?", task.ID, task.Text)
	}

	content := m.styles.DialogTitle.Render("Confirm") + "\n\n" +
		m.styles.DialogPrompt.Render(prompt) + "\n\n" +
		m.styles.Footer.Render("y: delete · esc: cancel")
	return m.styles.Dialog.Render(content)
}

// viewHelp renders the help overlay.
func (m *Model) viewHelp() string {
	rows := []struct {
		key  string
		desc string
	}{
		{"↑/k, ↓/j", "move cursor"},
		{"a", "add task"},
		{"enter/space", "toggle done"},
		{"d", "delete task"},
		{"N", "enable notifications"},
		{"r", "refresh"},
		{"?", "close help"},
		{"q", "quit"},
	}

	var b strings.Builder
	b.WriteString(m.styles.DialogTitle.Render("Keybindings") + "\n\n")
	for _, r := range rows {
		b.WriteString(m.styles.HelpKey.Render(runewidth.FillRight(r.key, 14)))
		b.WriteString(m.styles.HelpDesc.Render(r.desc))
		b.WriteString("\n")
	}
	return m.styles.Help.Render(b.String())
}

// viewFooter renders the key hints line.
func (m *Model) viewFooter() string {
	hints := []string{"a add", "enter toggle", "d delete", "? help", "q quit"}
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		k, desc, _ := strings.Cut(h, " ")
		parts = append(parts, m.styles.FooterKey.Render(k)+" "+m.styles.Footer.Render(desc))
	}
	return strings.Join(parts, m.styles.Footer.Render(" · "))
}

// taskByID finds a task in the loaded lists.
func (m *Model) taskByID(id int) *domain.Task {
	tasks := m.visibleTasks()
	for i := range tasks {
		if tasks[i].ID == id {
			return &tasks[i]
		}
	}
	return nil
}
