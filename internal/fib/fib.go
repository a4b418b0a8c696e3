// Package fib computes Fibonacci numbers.
package fib

// Fib returns the n-th Fibonacci number, with Fib(0) = 0 and Fib(1) = 1.
// It uses the plain recursive definition and runs in exponential time.
// Values of n below 2 are returned unchanged.
func Fib(n int) int {
	if n < 2 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}
