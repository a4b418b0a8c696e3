package storage

import (
	"time"

	"fibtest/internal/config"
	"fibtest/internal/domain"
)

// Storage persists and loads test run results (e.g. for the failures viewer).
type Storage interface {
	Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, workers int) error
	Load() (*domain.TestResultsOutput, error)
	// SaveOutput writes the full output (e.g. after marking failures resolved).
	SaveOutput(output *domain.TestResultsOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
	now func() time.Time
}

var (
	_ Storage = (*JSONStorage)(nil)
	_ Storage = (*MySQLStorage)(nil)
	_ Storage = (*MultiStorage)(nil)
)

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg, now: time.Now}
}

// BuildOutput assembles the persisted form of a run
func BuildOutput(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, workers int, at time.Time) *domain.TestResultsOutput {
	passed := 0
	failed := 0
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}

	if failures == nil {
		failures = []domain.TestFailure{}
	}

	return &domain.TestResultsOutput{
		Meta: domain.TestResultsMeta{
			TotalTests:      len(results),
			PassedTests:     passed,
			FailedTests:     failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Workers:         workers,
			Timestamp:       at.Format(time.RFC3339),
		},
		Details: failures,
	}
}
