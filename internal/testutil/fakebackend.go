// Package testutil provides testing utilities.
package testutil

import (
	"sync"

	"ptask/internal/service"
)

// FakeBackend is an in-memory implementation of service.Backend for testing.
type FakeBackend struct {
	mu    sync.Mutex
	tasks []service.Task
	saves int

	// Error injection for testing
	LoadState service.LoadState // LoadOK unless set; LoadRecovered returns an empty list
	LoadErr   error             // reported with LoadRecovered
	SaveErr   error
}

// NewFakeBackend creates a FakeBackend holding tasks.
func NewFakeBackend(tasks ...service.Task) *FakeBackend {
	return &FakeBackend{tasks: append([]service.Task(nil), tasks...)}
}

// Load implements service.Backend. The returned slice is a copy.
func (f *FakeBackend) Load() service.LoadResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.LoadState == service.LoadRecovered || f.LoadState == service.LoadMissing {
		return service.LoadResult{Tasks: []service.Task{}, State: f.LoadState, Err: f.LoadErr}
	}
	tasks := make([]service.Task, len(f.tasks))
	copy(tasks, f.tasks)
	return service.LoadResult{Tasks: tasks, State: service.LoadOK}
}

// Save implements service.Backend.
func (f *FakeBackend) Save(tasks []service.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]service.Task(nil), tasks...)
	f.LoadState = service.LoadOK
	f.saves++
	return nil
}

// Tasks returns a copy of the stored tasks.
func (f *FakeBackend) Tasks() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]service.Task(nil), f.tasks...)
}

// Saves returns how many times Save succeeded.
func (f *FakeBackend) Saves() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.saves
}
