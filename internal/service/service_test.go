package service_test

import (
	"errors"
	"reflect"
	"testing"

	"ptask/internal/service"
	"ptask/internal/testutil"
)

var buyMilk = service.Task{Title: "Buy milk", DueDate: "2025-01-01", Priority: service.PriorityLow}

func TestAddNewTask_EmptyStore(t *testing.T) {
	backend := testutil.NewFakeBackend()
	store := service.New(backend, nil)

	result, err := store.AddNewTask("Write report", "2025-06-01", "High")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OK() {
		t.Fatalf("expected task to be added, got outcome %v", result.Outcome)
	}

	want := []service.Task{{Title: "Write report", DueDate: "2025-06-01", Priority: service.PriorityHigh}}
	if got := backend.Tasks(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
	if backend.Saves() != 1 {
		t.Errorf("expected 1 save, got %d", backend.Saves())
	}
}

func TestAddNewTask_AppendsInOrder(t *testing.T) {
	backend := testutil.NewFakeBackend(buyMilk)
	store := service.New(backend, nil)

	if _, err := store.AddNewTask("Call mom", "2025-01-02", "Medium"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := backend.Tasks()
	if len(got) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(got))
	}
	if got[0] != buyMilk {
		t.Errorf("expected first task unchanged, got %+v", got[0])
	}
	if got[1].Title != "Call mom" {
		t.Errorf("expected appended task last, got %+v", got[1])
	}
}

func TestAddNewTask_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		due     string
		want    service.Outcome
		wantLen int
	}{
		{"same title different case", "BUY MILK", "2025-01-01", service.OutcomeDuplicate, 1},
		{"exact same title", "Buy milk", "2025-01-01", service.OutcomeDuplicate, 1},
		{"same title different date", "Buy milk", "2025-01-02", service.OutcomeAdded, 2},
		{"different title same date", "Buy bread", "2025-01-01", service.OutcomeAdded, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewFakeBackend(buyMilk)
			store := service.New(backend, nil)

			result, err := store.AddNewTask(tt.title, tt.due, "High")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Outcome != tt.want {
				t.Errorf("expected outcome %v, got %v", tt.want, result.Outcome)
			}
			if got := len(backend.Tasks()); got != tt.wantLen {
				t.Errorf("expected %d tasks, got %d", tt.wantLen, got)
			}
		})
	}
}

func TestAddNewTask_ValidationLeavesStoreUntouched(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		due      string
		priority string
		want     service.Outcome
	}{
		{"empty title", "", "2025-01-01", "Low", service.OutcomeTitleEmpty},
		{"whitespace title", " \t\n", "2025-01-01", "Low", service.OutcomeTitleEmpty},
		{"impossible date", "Pay rent", "2025-13-40", "Low", service.OutcomeInvalidDate},
		{"empty date", "Pay rent", "", "Low", service.OutcomeInvalidDate},
		{"unknown priority", "Pay rent", "2025-01-01", "Urgent", service.OutcomeInvalidPriority},
		{"lowercase priority", "Pay rent", "2025-01-01", "low", service.OutcomeInvalidPriority},
		// First failure wins
		{"empty title and bad date", "", "nope", "Urgent", service.OutcomeTitleEmpty},
		{"bad date and bad priority", "Pay rent", "nope", "Urgent", service.OutcomeInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := testutil.NewFakeBackend(buyMilk)
			store := service.New(backend, nil)

			result, err := store.AddNewTask(tt.title, tt.due, tt.priority)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Outcome != tt.want {
				t.Errorf("expected outcome %v, got %v", tt.want, result.Outcome)
			}
			if backend.Saves() != 0 {
				t.Errorf("expected no saves, got %d", backend.Saves())
			}
			if got := backend.Tasks(); !reflect.DeepEqual(got, []service.Task{buyMilk}) {
				t.Errorf("store changed: %+v", got)
			}
		})
	}
}

func TestAddNewTask_SaveError(t *testing.T) {
	backend := testutil.NewFakeBackend()
	backend.SaveErr = errors.New("disk full")
	store := service.New(backend, nil)

	_, err := store.AddNewTask("Write report", "2025-06-01", "High")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, backend.SaveErr) {
		t.Errorf("expected wrapped save error, got %v", err)
	}
}

func TestAddNewTask_RecoveredStoreStartsFresh(t *testing.T) {
	backend := testutil.NewFakeBackend(buyMilk)
	backend.LoadState = service.LoadRecovered
	backend.LoadErr = errors.New("parse task store: unexpected end of JSON input")
	store := service.New(backend, nil)

	result, err := store.AddNewTask("Buy milk", "2025-01-01", "Low")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.OK() {
		t.Fatalf("expected add on fresh list, got %v", result.Outcome)
	}
	if got := backend.Tasks(); len(got) != 1 {
		t.Errorf("expected store rewritten with 1 task, got %d", len(got))
	}
}

func TestLoad_PassesThrough(t *testing.T) {
	backend := testutil.NewFakeBackend(buyMilk)
	store := service.New(backend, nil)

	result := store.Load()
	if result.State != service.LoadOK {
		t.Errorf("expected state %v, got %v", service.LoadOK, result.State)
	}
	if !reflect.DeepEqual(result.Tasks, []service.Task{buyMilk}) {
		t.Errorf("unexpected tasks: %+v", result.Tasks)
	}
}
