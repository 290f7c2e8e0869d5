package main

import (
	"fmt"
	"io"
	"os"

	"fibbench"
)

func main() {
	if err := run(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is separated out for the purpose of unit testing.
func run(stdOut io.Writer) error {
	return fibbench.Config{Out: stdOut}.Run()
}
