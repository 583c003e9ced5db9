package usecase

import (
	"context"
	"fmt"

	"github.com/mkondo/remindo/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct{}

// ListTasksOutput contains the ordered task list and its partition.
type ListTasksOutput struct {
	Tasks     []domain.Task // Full list in insertion order
	Active    []domain.Task // Incomplete tasks, insertion order
	Completed []domain.Task // Completed tasks, insertion order
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	store domain.TaskStore
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(store domain.TaskStore) *ListTasks {
	return &ListTasks{store: store}
}

// Execute returns the current task list partitioned into active and
// completed sections.
func (uc *ListTasks) Execute(_ context.Context, _ ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	active, completed := domain.Partition(tasks)
	return &ListTasksOutput{
		Tasks:     tasks,
		Active:    active,
		Completed: completed,
	}, nil
}
