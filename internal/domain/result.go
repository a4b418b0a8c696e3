package domain

import "time"

// TestResult represents the outcome of a single test invocation
type TestResult struct {
	Name     string        // Name of the test case
	Index    int           // Registration position of the test case
	WorkerID int           // Worker that executed the test
	Success  bool          // Whether the test passed
	Message  string        // Failure message, empty on success
	Error    error         // Failure that stopped the test, nil on success
	Duration time.Duration // Time taken to execute
}

// TestResultsMeta contains metadata about a test run
type TestResultsMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Workers         int     `json:"workers"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the complete output structure for test results
type TestResultsOutput struct {
	Meta    TestResultsMeta `json:"meta"`
	Details []TestFailure   `json:"details"`
}

// FailedNames returns the names of the failed tests in the run
func (o *TestResultsOutput) FailedNames() map[string]struct{} {
	names := make(map[string]struct{}, len(o.Details))
	for _, d := range o.Details {
		names[d.TestName] = struct{}{}
	}
	return names
}
