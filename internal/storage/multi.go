package storage

import (
	"errors"
	"time"

	"fibtest/internal/domain"
)

// MultiStorage saves to every sink and loads from the first one.
type MultiStorage struct {
	sinks []Storage
}

// NewMultiStorage combines sinks; the first one is the primary used by Load
func NewMultiStorage(primary Storage, others ...Storage) *MultiStorage {
	return &MultiStorage{sinks: append([]Storage{primary}, others...)}
}

// Save writes the run to all sinks, collecting every error
func (m *MultiStorage) Save(results []domain.TestResult, failures []domain.TestFailure, duration time.Duration, workers int) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.Save(results, failures, duration, workers); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Load reads from the primary sink
func (m *MultiStorage) Load() (*domain.TestResultsOutput, error) {
	return m.sinks[0].Load()
}

// SaveOutput writes output to all sinks, collecting every error
func (m *MultiStorage) SaveOutput(output *domain.TestResultsOutput) error {
	var errs []error
	for _, s := range m.sinks {
		if err := s.SaveOutput(output); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
