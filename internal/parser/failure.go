package parser

import (
	"errors"
	"regexp"
	"strconv"

	"fibtest/internal/assert"
	"fibtest/internal/domain"
)

// locationPattern matches "file:line: detail" failure messages
var locationPattern = regexp.MustCompile(`(?s)^([^\s:]+):(\d+): (.*)$`)

// FailureParser turns failed test results into structured failures
type FailureParser struct{}

var _ Parser = (*FailureParser)(nil)

// NewFailureParser creates a new FailureParser
func NewFailureParser() *FailureParser {
	return &FailureParser{}
}

// ParseFailure extracts the failure of a test result. Passed results yield nothing.
func (p *FailureParser) ParseFailure(result domain.TestResult) []domain.TestFailure {
	if result.Success {
		return nil
	}

	var f *assert.Failure
	if errors.As(result.Error, &f) {
		return []domain.TestFailure{{
			TestName: result.Name,
			File:     f.File,
			Line:     f.Line,
			Message:  f.Message,
		}}
	}

	return []domain.TestFailure{p.parseMessage(result.Name, result.Message)}
}

// parseMessage splits a "file:line: detail" message, keeping unlocated messages whole
func (p *FailureParser) parseMessage(name, message string) domain.TestFailure {
	failure := domain.TestFailure{TestName: name, Message: message}

	m := locationPattern.FindStringSubmatch(message)
	if len(m) != 4 {
		return failure
	}
	line, err := strconv.Atoi(m[2])
	if err != nil {
		return failure
	}
	failure.File = m[1]
	failure.Line = line
	failure.Message = m[3]
	return failure
}
