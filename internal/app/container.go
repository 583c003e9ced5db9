// Package app provides the dependency injection container for the application.
package app

import (
	"os"
	"path/filepath"

	"github.com/mkondo/remindo/internal/domain"
	"github.com/mkondo/remindo/internal/infra/config"
	"github.com/mkondo/remindo/internal/infra/jsonstore"
	"github.com/mkondo/remindo/internal/infra/logging"
	"github.com/mkondo/remindo/internal/infra/notify"
	"github.com/mkondo/remindo/internal/infra/scheduler"
	"github.com/mkondo/remindo/internal/usecase"
)

// Paths holds the resolved application paths.
type Paths struct {
	DataDir    string // Data directory (tasks, notify state, log)
	StorePath  string // Path to tasks.json
	NotifyPath string // Path to notify.json
}

// newPaths resolves the data directory and the files under it.
// The storage path from config, when set, overrides the default
// store location.
func newPaths(cfg *domain.Config) Paths {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			dataHome = filepath.Join(home, ".local", "share")
		}
	}

	var dataDir string
	if dataHome != "" {
		dataDir = domain.DataDir(dataHome)
	}

	storePath := filepath.Join(dataDir, domain.StoreFileName)
	if cfg.Storage.Path != "" {
		storePath = cfg.Storage.Path
	}

	return Paths{
		DataDir:    dataDir,
		StorePath:  storePath,
		NotifyPath: filepath.Join(dataDir, domain.NotifyFileName),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks            domain.TaskStore
	StoreInitializer domain.StoreInitializer
	Scheduler        domain.Scheduler
	Notifier         domain.Notifier
	Clock            domain.Clock
	Logger           domain.Logger

	// Configuration
	Config *domain.Config
	Paths  Paths

	closers []func()
}

// New creates a new Container with the default implementations.
func New() (*Container, error) {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		return nil, err
	}

	paths := newPaths(cfg)

	logger := logging.New(paths.DataDir, logging.ParseLevel(cfg.Log.Level))
	for _, w := range cfg.Warnings {
		logger.Warn("config", w)
	}

	store := jsonstore.New(paths.StorePath)
	if err := store.Initialize(); err != nil {
		return nil, err
	}

	sched := scheduler.New()

	c := &Container{
		Tasks:            store,
		StoreInitializer: store,
		Scheduler:        sched,
		Notifier:         notify.New(paths.NotifyPath, cfg.Notifications.Command, logger),
		Clock:            domain.RealClock{},
		Logger:           logger,
		Config:           cfg,
		Paths:            paths,
	}
	c.closers = append(c.closers, sched.CancelAll, func() { _ = logger.Close() })
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg *domain.Config, tasks domain.TaskStore, sched domain.Scheduler, notifier domain.Notifier, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Tasks:     tasks,
		Scheduler: sched,
		Notifier:  notifier,
		Clock:     clock,
		Logger:    logger,
		Config:    cfg,
	}
}

// Close cancels pending timers and releases resources.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Scheduler, c.Notifier, c.Clock, c.Logger)
}

// AddTasksFromFileUseCase returns a new AddTasksFromFile use case.
func (c *Container) AddTasksFromFileUseCase() *usecase.AddTasksFromFile {
	return usecase.NewAddTasksFromFile(c.AddTaskUseCase(), c.Clock)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks, c.Scheduler, c.Logger)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.Scheduler, c.Logger)
}

// RearmRemindersUseCase returns a new RearmReminders use case.
func (c *Container) RearmRemindersUseCase() *usecase.RearmReminders {
	return usecase.NewRearmReminders(c.Tasks, c.Scheduler, c.Notifier, c.Clock, c.Logger)
}

// EnableNotificationsUseCase returns a new EnableNotifications use case.
func (c *Container) EnableNotificationsUseCase() *usecase.EnableNotifications {
	return usecase.NewEnableNotifications(c.Notifier, c.Logger)
}
