// Package service implements the task store: record types, input validation,
// and the load-validate-append-save pipeline behind "add".
package service

import "strings"

// DateLayout is the only accepted due date format (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// Priority is a task priority. Matching is exact and case-sensitive.
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// Priorities lists the accepted priorities in ascending order.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// Task represents a single stored task record.
type Task struct {
	Title    string   `json:"title"`
	DueDate  string   `json:"due_date"` // yyyy-MM-dd
	Priority Priority `json:"priority"`
}

// SameAs reports whether t and other collide: same title ignoring case and
// the same due date.
func (t Task) SameAs(other Task) bool {
	return strings.EqualFold(t.Title, other.Title) && t.DueDate == other.DueDate
}

// LoadState describes how a Load ended.
type LoadState int

const (
	// LoadOK means the store was read and decoded.
	LoadOK LoadState = iota
	// LoadMissing means no store exists yet; the list is empty.
	LoadMissing
	// LoadRecovered means the store was unreadable or malformed and was
	// replaced by an empty list. Err holds the cause.
	LoadRecovered
)

func (s LoadState) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadRecovered:
		return "recovered"
	default:
		return "unknown"
	}
}

// LoadResult is the outcome of loading the store. Tasks is never nil.
type LoadResult struct {
	Tasks []Task
	State LoadState
	Err   error
}

// Outcome classifies the result of AddNewTask.
type Outcome int

const (
	OutcomeAdded Outcome = iota
	OutcomeTitleEmpty
	OutcomeInvalidDate
	OutcomeInvalidPriority
	OutcomeDuplicate
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAdded:
		return "added"
	case OutcomeTitleEmpty:
		return "title empty"
	case OutcomeInvalidDate:
		return "invalid date"
	case OutcomeInvalidPriority:
		return "invalid priority"
	case OutcomeDuplicate:
		return "duplicate"
	default:
		return "unknown"
	}
}

// AddResult is the result of AddNewTask. Task is set when Outcome is
// OutcomeAdded or OutcomeDuplicate (the candidate that was rejected).
type AddResult struct {
	Outcome Outcome
	Task    Task
}

// OK reports whether the task was added.
func (r AddResult) OK() bool {
	return r.Outcome == OutcomeAdded
}
