// Package assert provides the assertions available to registered test cases.
//
// A failed assertion records a Failure on the T that belongs to the current
// invocation and aborts the rest of the test body. Run recovers the abort and
// hands the Failure back to the caller, so no state outlives one invocation.
package assert

import (
	"fmt"
	"math"
	"path/filepath"
	"reflect"
	"runtime"
)

// FloatTolerance is the largest difference FloatEqual accepts
const FloatTolerance = 1e-6

// Failure describes a failed assertion
type Failure struct {
	File    string
	Line    int
	Message string
}

// Error formats the failure as "file:line: message"
func (f *Failure) Error() string {
	if f.File == "" {
		return f.Message
	}
	return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Message)
}

// T is the assertion handle passed to a single test invocation
type T struct {
	name    string
	failure *Failure
}

// abort unwinds a test body after a failed assertion
type abort struct {
	failure *Failure
}

// New creates a T for the named test
func New(name string) *T {
	return &T{name: name}
}

// Name returns the name of the test being run
func (t *T) Name() string {
	return t.name
}

// Failed reports whether an assertion has failed
func (t *T) Failed() bool {
	return t.failure != nil
}

// Failure returns the recorded failure, or nil
func (t *T) Failure() *Failure {
	return t.failure
}

// Run invokes fn with t and returns the failure that stopped it, if any.
// A panic that did not come from an assertion is reported as a failure too.
func (t *T) Run(fn func(*T)) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if a, ok := r.(abort); ok {
			t.failure = a.failure
		} else {
			t.failure = &Failure{Message: fmt.Sprintf("panic: %v", r)}
		}
		err = t.failure
	}()

	fn(t)

	// The body may have swallowed the abort with its own recover.
	if t.failure != nil {
		return t.failure
	}
	return nil
}

// fail records msg at the caller skip frames above the assertion and aborts
func (t *T) fail(skip int, msg string) {
	f := &Failure{Message: msg}
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		f.File = filepath.Base(file)
		f.Line = line
	}
	t.failure = f
	panic(abort{failure: f})
}

// Fail fails the test unconditionally
func (t *T) Fail(format string, args ...any) {
	t.fail(1, fmt.Sprintf(format, args...))
}

// True fails the test when cond is false
func (t *T) True(cond bool) {
	if !cond {
		t.fail(1, "condition is not true")
	}
}

// False fails the test when cond is true
func (t *T) False(cond bool) {
	if cond {
		t.fail(1, "condition is not false")
	}
}

// Equal fails the test when actual and expected differ
func (t *T) Equal(actual, expected any) {
	if !reflect.DeepEqual(actual, expected) {
		t.fail(1, fmt.Sprintf("%v != %v", actual, expected))
	}
}

// StringEqual fails the test when the two strings differ
func (t *T) StringEqual(actual, expected string) {
	if actual != expected {
		t.fail(1, fmt.Sprintf("%q != %q", actual, expected))
	}
}

// Nil fails the test when v is not nil
func (t *T) Nil(v any) {
	if !isNil(v) {
		t.fail(1, fmt.Sprintf("%v != nil", v))
	}
}

// NotNil fails the test when v is nil
func (t *T) NotNil(v any) {
	if isNil(v) {
		t.fail(1, "value == nil")
	}
}

// FloatEqual fails the test when actual and expected differ by more than FloatTolerance.
// A NaN on either side always fails.
func (t *T) FloatEqual(actual, expected float64) {
	if math.IsNaN(actual) || math.IsNaN(expected) || math.Abs(actual-expected) > FloatTolerance {
		t.fail(1, fmt.Sprintf("%g != %g", actual, expected))
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
