// Package fibbench times naive recursive Fibonacci computation across a few
// input sizes and reports total elapsed wall-clock durations, one line per
// input size.
package fibbench

// Fib returns the n-th Fibonacci number under the convention fib(0)=0,
// fib(1)=1, via direct double recursion. The exponential cost is the workload
// being measured, so this must not be memoized.
func Fib(n int) int {
	if n < 2 {
		return n
	}
	return Fib(n-1) + Fib(n-2)
}

// FibIterative computes the same sequence in linear time. It exists as a
// reference for tests and takes no part in measurements.
func FibIterative(n int) int {
	if n < 2 {
		return n
	}
	a, b := 0, 1
	for i := 1; i < n; i++ {
		a, b = b, a+b
	}
	return b
}
