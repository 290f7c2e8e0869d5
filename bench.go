package fibbench

import (
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultSizes and DefaultRepetitions are the inputs the benchmark was
// written for: enough repetitions to amortize timer resolution, sizes spread
// far enough apart that the exponential growth is visible in the output.
var DefaultSizes = []int{10, 20, 25}

const DefaultRepetitions = 10000

// sink retains the result of the last call so the compiler cannot discard
// the work inside Measure.
var sink int

// Config drives one benchmark run. Zero-value Sizes and Repetitions fall
// back to the defaults; a nil Out writes to os.Stdout.
type Config struct {
	Sizes       []int
	Repetitions int
	Out         io.Writer
}

// Measure invokes Fib(n) repetitions times and returns the total elapsed
// wall-clock time.
func Measure(n, repetitions int) time.Duration {
	start := time.Now()
	for i := 0; i < repetitions; i++ {
		sink = Fib(n)
	}
	return time.Since(start)
}

// Run measures each configured size in order and writes one line per size,
// e.g. "fib(20) -> 12.34ms". Measurements are sequential: a size is fully
// timed before the next begins.
func (c Config) Run() error {
	sizes := c.Sizes
	if len(sizes) == 0 {
		sizes = DefaultSizes
	}
	repetitions := c.Repetitions
	if repetitions <= 0 {
		repetitions = DefaultRepetitions
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}
	for _, n := range sizes {
		d := Measure(n, repetitions)
		if _, err := fmt.Fprintln(out, FormatLine(n, d)); err != nil {
			return err
		}
	}
	return nil
}

// FormatLine renders one labeled result line.
func FormatLine(n int, d time.Duration) string {
	return fmt.Sprintf("fib(%d) -> %s", n, FormatBare(d))
}

// FormatBare renders a duration as milliseconds with two decimal places,
// the form used when a single size is measured standalone.
func FormatBare(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d)/float64(time.Millisecond))
}
