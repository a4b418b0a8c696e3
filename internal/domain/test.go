package domain

import "fibtest/internal/assert"

// TestFunc is the body of a test case
type TestFunc func(t *assert.T)

// TestCase represents a named test registered for execution
type TestCase struct {
	Name string   // Unique test name, printed in result lines
	Func TestFunc // Test body
}
