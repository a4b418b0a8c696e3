package suite

import (
	"fibtest/internal/assert"
	"fibtest/internal/fib"
)

// Default returns a Registry holding the built-in test cases
func Default() *Registry {
	r := NewRegistry()
	r.MustRegister("fib", testFib)
	return r
}

func testFib(t *assert.T) {
	t.Equal(fib.Fib(0), 0)
	t.Equal(fib.Fib(1), 1)
	t.Equal(fib.Fib(2), 1)
	t.Equal(fib.Fib(3), 2)
	t.Equal(fib.Fib(4), 3)
	t.Equal(fib.Fib(5), 5)
	t.Equal(fib.Fib(6), 8)
	t.Equal(fib.Fib(7), 13)
	t.Equal(fib.Fib(8), 21)
}
