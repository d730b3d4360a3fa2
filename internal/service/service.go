package service

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Backend persists the full task list.
// Storage details never leak past this interface; commands only see Service.
type Backend interface {
	// Load reads the full task list. It never fails: a missing store is
	// LoadMissing, an unreadable one is LoadRecovered with an empty list.
	Load() LoadResult

	// Save overwrites the store with tasks.
	Save(tasks []Task) error
}

// Service defines the task store operations available to commands.
type Service interface {
	// Load returns the current task list in storage order.
	Load() LoadResult

	// AddNewTask validates the input, rejects duplicates, and appends the
	// task. Validation failures are reported through AddResult; the error
	// is non-nil only when persisting the new list failed.
	AddNewTask(title, dueDate, priority string) (AddResult, error)
}

// TaskStore implements Service on top of a Backend.
// It keeps no state between calls; every add reloads the list.
// There is no locking: two concurrent adds can lose an update.
type TaskStore struct {
	backend Backend
	logger  *log.Logger
}

// New creates a TaskStore. A nil logger discards diagnostics.
func New(backend Backend, logger *log.Logger) *TaskStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &TaskStore{backend: backend, logger: logger}
}

// Load implements Service.
func (s *TaskStore) Load() LoadResult {
	return s.backend.Load()
}

// AddNewTask implements Service.
func (s *TaskStore) AddNewTask(title, dueDate, priority string) (AddResult, error) {
	task, err := NewTask(title, dueDate, priority)
	if err != nil {
		s.logger.Debug("rejected task", "err", err)
		return AddResult{Outcome: outcomeFor(err)}, nil
	}

	loaded := s.backend.Load()
	for _, existing := range loaded.Tasks {
		if existing.SameAs(task) {
			s.logger.Debug("duplicate task", "title", task.Title, "due", task.DueDate)
			return AddResult{Outcome: OutcomeDuplicate, Task: task}, nil
		}
	}

	tasks := append(loaded.Tasks, task)
	if err := s.backend.Save(tasks); err != nil {
		return AddResult{}, fmt.Errorf("save tasks: %w", err)
	}

	s.logger.Debug("task added", "title", task.Title, "due", task.DueDate, "count", len(tasks))
	return AddResult{Outcome: OutcomeAdded, Task: task}, nil
}

func outcomeFor(err error) Outcome {
	switch {
	case errors.Is(err, ErrTitleEmpty):
		return OutcomeTitleEmpty
	case errors.Is(err, ErrInvalidDate):
		return OutcomeInvalidDate
	default:
		return OutcomeInvalidPriority
	}
}
