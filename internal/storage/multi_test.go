package storage

import (
	"errors"
	"testing"
	"time"

	"fibtest/internal/domain"
)

type fakeStorage struct {
	saved    int
	outputs  int
	saveErr  error
	loadFrom *domain.TestResultsOutput
}

func (f *fakeStorage) Save([]domain.TestResult, []domain.TestFailure, time.Duration, int) error {
	f.saved++
	return f.saveErr
}

func (f *fakeStorage) Load() (*domain.TestResultsOutput, error) {
	return f.loadFrom, nil
}

func (f *fakeStorage) SaveOutput(*domain.TestResultsOutput) error {
	f.outputs++
	return f.saveErr
}

func TestMultiStorage(t *testing.T) {
	errSink := errors.New("sink down")
	primary := &fakeStorage{loadFrom: &domain.TestResultsOutput{Meta: domain.TestResultsMeta{TotalTests: 4}}}
	secondary := &fakeStorage{saveErr: errSink}
	m := NewMultiStorage(primary, secondary)

	err := m.Save(nil, nil, 0, 1)
	if !errors.Is(err, errSink) {
		t.Errorf("expected sink error, got %v", err)
	}
	if primary.saved != 1 || secondary.saved != 1 {
		t.Errorf("expected both sinks to be written, got %d and %d", primary.saved, secondary.saved)
	}

	if err := m.SaveOutput(&domain.TestResultsOutput{}); !errors.Is(err, errSink) {
		t.Errorf("expected sink error, got %v", err)
	}
	if primary.outputs != 1 || secondary.outputs != 1 {
		t.Errorf("expected both sinks to receive output")
	}

	output, err := m.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Meta.TotalTests != 4 {
		t.Errorf("expected load from primary, got %+v", output.Meta)
	}
}
