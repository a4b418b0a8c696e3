package storage

import (
	"errors"
	"os"
	"testing"
	"time"

	"fibtest/internal/config"
	"fibtest/internal/domain"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg
}

func sampleRun() ([]domain.TestResult, []domain.TestFailure) {
	results := []domain.TestResult{
		{Name: "fib", Success: true},
		{Name: "broken", Success: false, Message: "fib.go:12: 5 != 6"},
	}
	failures := []domain.TestFailure{
		{TestName: "broken", File: "fib.go", Line: 12, Message: "5 != 6"},
	}
	return results, failures
}

func TestJSONStorage_SaveLoad(t *testing.T) {
	cfg := newTestConfig(t)
	st := NewJSONStorage(cfg)
	st.now = func() time.Time { return time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC) }

	results, failures := sampleRun()
	if err := st.Save(results, failures, 1500*time.Millisecond, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	meta := output.Meta
	if meta.TotalTests != 2 || meta.PassedTests != 1 || meta.FailedTests != 1 {
		t.Errorf("unexpected counts: %+v", meta)
	}
	if meta.Duration != "1.5s" || meta.DurationSeconds != 1.5 {
		t.Errorf("unexpected duration: %s / %f", meta.Duration, meta.DurationSeconds)
	}
	if meta.Workers != 2 {
		t.Errorf("expected 2 workers, got %d", meta.Workers)
	}
	if meta.Timestamp != "2026-10-17T09:30:00Z" {
		t.Errorf("unexpected timestamp %s", meta.Timestamp)
	}
	if len(output.Details) != 1 || output.Details[0] != failures[0] {
		t.Errorf("unexpected details: %+v", output.Details)
	}
}

func TestJSONStorage_SaveOutputKeepsResolved(t *testing.T) {
	cfg := newTestConfig(t)
	st := NewJSONStorage(cfg)

	results, failures := sampleRun()
	if err := st.Save(results, failures, time.Second, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output.Details[0].Resolved = true
	if err := st.SaveOutput(output); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reloaded, err := st.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reloaded.Details[0].Resolved {
		t.Error("expected resolved flag to persist")
	}
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	st := NewJSONStorage(newTestConfig(t))
	_, err := st.Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestBuildOutput_NoFailures(t *testing.T) {
	output := BuildOutput([]domain.TestResult{{Name: "fib", Success: true}}, nil, 0, 1, time.Now())
	if output.Details == nil {
		t.Error("expected empty, non-nil details so JSON encodes []")
	}
	if output.Meta.FailedTests != 0 || output.Meta.PassedTests != 1 {
		t.Errorf("unexpected counts: %+v", output.Meta)
	}
}
