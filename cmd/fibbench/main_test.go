package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the full default benchmark")
	}

	var out strings.Builder
	require.NoError(t, run(&out))

	re := regexp.MustCompile(`^fib\(\d+\) -> \d+\.\d{2}ms$`)
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		require.Regexp(t, re, line)
	}
}
