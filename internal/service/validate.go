package service

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrTitleEmpty is returned for a blank title.
	ErrTitleEmpty = errors.New("title empty")

	// ErrInvalidDate is returned for a due date that is not a yyyy-MM-dd calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidPriority is returned for a priority outside Low, Medium, High.
	ErrInvalidPriority = errors.New("invalid priority")
)

// ValidateTitle rejects titles that are empty or whitespace only.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrTitleEmpty
	}
	return nil
}

// ParseDueDate parses a strict yyyy-MM-dd date. Week dates, ordinal dates,
// times, and out-of-range days are rejected.
func ParseDueDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// ParsePriority returns the priority named exactly by s.
func ParsePriority(s string) (Priority, error) {
	for _, p := range Priorities {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
}

// NewTask validates raw input and builds a task record.
// The returned error wraps ErrTitleEmpty, ErrInvalidDate, or ErrInvalidPriority,
// checked in that order.
func NewTask(title, dueDate, priority string) (Task, error) {
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}
	due, err := ParseDueDate(dueDate)
	if err != nil {
		return Task{}, err
	}
	p, err := ParsePriority(priority)
	if err != nil {
		return Task{}, err
	}
	return Task{
		Title:    title,
		DueDate:  due.Format(DateLayout),
		Priority: p,
	}, nil
}
