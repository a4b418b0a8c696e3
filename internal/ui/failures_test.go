package ui

import (
	"strings"
	"testing"

	"fibtest/internal/domain"
)

func TestListItemText(t *testing.T) {
	tests := []struct {
		name     string
		failure  domain.TestFailure
		index    int
		expected string
	}{
		{"unresolved", domain.TestFailure{TestName: "fib"}, 0, "[yellow]1.[white] fib"},
		{"resolved", domain.TestFailure{TestName: "fib", Resolved: true}, 1, "[gray]✓ [yellow]2.[gray] fib[white]"},
		{"unnamed", domain.TestFailure{}, 2, "[yellow]3.[white] Test 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := listItemText(tt.failure, tt.index); got != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestFormatFailureDetails(t *testing.T) {
	details := formatFailureDetails(domain.TestFailure{TestName: "fib", File: "fib.go", Line: 9, Message: "[5] != [6]"})

	if !strings.Contains(details, "fib.go:9") {
		t.Errorf("expected location in details, got %s", details)
	}
	if strings.Contains(details, "\n[5] != [6]") {
		t.Errorf("expected message brackets to be escaped, got %s", details)
	}
}

func TestCountUnresolved(t *testing.T) {
	details := []domain.TestFailure{{Resolved: true}, {}, {}}
	if got := countUnresolved(details); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}
