// Package suite holds the ordered registry of test cases and the built-in tests.
package suite

import (
	"errors"
	"fmt"

	"fibtest/internal/domain"
)

var (
	ErrEmptyName     = errors.New("test name is empty")
	ErrNilFunc       = errors.New("test body is nil")
	ErrDuplicateTest = errors.New("test already registered")
)

// Registry keeps test cases in registration order
type Registry struct {
	cases []domain.TestCase
	index map[string]int
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register appends a test case. Names must be unique and non-empty.
func (r *Registry) Register(name string, fn domain.TestFunc) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return fmt.Errorf("register %s: %w", name, ErrNilFunc)
	}
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("register %s: %w", name, ErrDuplicateTest)
	}
	r.index[name] = len(r.cases)
	r.cases = append(r.cases, domain.TestCase{Name: name, Func: fn})
	return nil
}

// MustRegister is like Register but panics on error
func (r *Registry) MustRegister(name string, fn domain.TestFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Len returns the number of registered test cases
func (r *Registry) Len() int {
	return len(r.cases)
}

// Cases returns a copy of the registered test cases in registration order
func (r *Registry) Cases() []domain.TestCase {
	out := make([]domain.TestCase, len(r.cases))
	copy(out, r.cases)
	return out
}

// Names returns the registered test names in registration order
func (r *Registry) Names() []string {
	names := make([]string, len(r.cases))
	for i, tc := range r.cases {
		names[i] = tc.Name
	}
	return names
}

// Lookup finds a test case by name
func (r *Registry) Lookup(name string) (domain.TestCase, bool) {
	i, ok := r.index[name]
	if !ok {
		return domain.TestCase{}, false
	}
	return r.cases[i], true
}

// Select returns the registered cases whose names are in names, keeping registration order
func (r *Registry) Select(names []string) []domain.TestCase {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []domain.TestCase
	for _, tc := range r.cases {
		if want[tc.Name] {
			out = append(out, tc)
		}
	}
	return out
}
