package domain

// TestFailure represents a failed test case
type TestFailure struct {
	TestName string `json:"test_name"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Resolved bool   `json:"resolved,omitempty"` // Track if test case is marked as resolved
}
