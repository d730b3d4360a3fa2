package output

import (
	"bytes"
	"testing"

	"ptask/internal/service"
)

var report = service.Task{Title: "Write report", DueDate: "2025-06-01", Priority: service.PriorityHigh}

func TestAddMessage_DistinctPerOutcome(t *testing.T) {
	outcomes := []service.AddResult{
		{Outcome: service.OutcomeAdded, Task: report},
		{Outcome: service.OutcomeTitleEmpty},
		{Outcome: service.OutcomeInvalidDate},
		{Outcome: service.OutcomeInvalidPriority},
		{Outcome: service.OutcomeDuplicate, Task: report},
	}

	seen := make(map[string]service.Outcome)
	for _, r := range outcomes {
		msg := AddMessage(r)
		if msg == "" {
			t.Errorf("empty message for %v", r.Outcome)
		}
		if prev, ok := seen[msg]; ok {
			t.Errorf("outcomes %v and %v share message %q", prev, r.Outcome, msg)
		}
		seen[msg] = r.Outcome
	}
}

func TestWriteAddResult(t *testing.T) {
	tests := []struct {
		name       string
		result     service.AddResult
		quiet      bool
		wantOut    string
		wantErrOut string
	}{
		{
			name:    "added",
			result:  service.AddResult{Outcome: service.OutcomeAdded, Task: report},
			wantOut: "ok: added \"Write report\" due 2025-06-01 [High]\n",
		},
		{
			name:   "added quiet",
			result: service.AddResult{Outcome: service.OutcomeAdded, Task: report},
			quiet:  true,
		},
		{
			name:       "duplicate",
			result:     service.AddResult{Outcome: service.OutcomeDuplicate, Task: report},
			wantErrOut: "error: task already exists: \"Write report\" due 2025-06-01 [High]\n",
		},
		{
			name:       "invalid priority ignores quiet",
			result:     service.AddResult{Outcome: service.OutcomeInvalidPriority},
			quiet:      true,
			wantErrOut: "error: invalid priority (accepted: Low, Medium, High)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			WriteAddResult(&out, &errOut, tt.result, tt.quiet)
			if out.String() != tt.wantOut {
				t.Errorf("stdout: expected %q, got %q", tt.wantOut, out.String())
			}
			if errOut.String() != tt.wantErrOut {
				t.Errorf("stderr: expected %q, got %q", tt.wantErrOut, errOut.String())
			}
		})
	}
}

func TestFormatTask_SingleLine(t *testing.T) {
	task := service.Task{Title: "line one\nline two", DueDate: "2025-01-01", Priority: service.PriorityLow}
	want := `"line one line two" due 2025-01-01 [Low]`
	if got := FormatTask(task); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatCount(t *testing.T) {
	for n, want := range map[int]string{0: "0 tasks", 1: "1 task", 7: "7 tasks"} {
		if got := FormatCount(n); got != want {
			t.Errorf("FormatCount(%d) = %q, want %q", n, got, want)
		}
	}
}
