package execution

import (
	"time"

	"fibtest/internal/assert"
	"fibtest/internal/domain"
)

// Runner executes a single test case
type Runner struct{}

// NewRunner creates a new Runner
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes the test body with a fresh assertion handle and reports its outcome
func (r *Runner) Run(tc domain.TestCase) domain.TestResult {
	start := time.Now()
	err := assert.New(tc.Name).Run(tc.Func)

	result := domain.TestResult{
		Name:     tc.Name,
		Success:  err == nil,
		Error:    err,
		Duration: time.Since(start),
	}
	if err != nil {
		result.Message = err.Error()
	}
	return result
}
