package usecase

import (
	"context"
	"fmt"

	"github.com/mkondo/remindo/internal/domain"
)

// AddTasksFromFileInput contains the parameters for bulk task creation.
type AddTasksFromFileInput struct {
	Content string // Markdown content with YAML frontmatter blocks
}

// AddTasksFromFileOutput contains the created tasks.
type AddTasksFromFileOutput struct {
	Tasks []domain.Task
}

// AddTasksFromFile is the use case for creating tasks from a file.
// Each draft goes through the same path as a single add, including
// reminder arming.
type AddTasksFromFile struct {
	addTask *AddTask
	clock   domain.Clock
}

// NewAddTasksFromFile creates a new AddTasksFromFile use case.
func NewAddTasksFromFile(addTask *AddTask, clock domain.Clock) *AddTasksFromFile {
	return &AddTasksFromFile{
		addTask: addTask,
		clock:   clock,
	}
}

// Execute parses the drafts and creates one task per draft. Parsing
// is all-or-nothing: a malformed draft fails the whole batch before
// any task is created.
func (uc *AddTasksFromFile) Execute(ctx context.Context, in AddTasksFromFileInput) (*AddTasksFromFileOutput, error) {
	drafts, err := domain.ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	inputs := make([]AddTaskInput, 0, len(drafts))
	for i, draft := range drafts {
		reminder, err := draft.ReminderTime(now)
		if err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
		inputs = append(inputs, AddTaskInput{Text: draft.Text, Reminder: reminder})
	}

	created := make([]domain.Task, 0, len(inputs))
	for _, input := range inputs {
		out, err := uc.addTask.Execute(ctx, input)
		if err != nil {
			return nil, err
		}
		created = append(created, out.Task)
	}

	return &AddTasksFromFileOutput{Tasks: created}, nil
}
