package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLine checks that the program output contains a line with the given
// prefix and value, e.g. AssertLine(t, r, "tree:", "Branch()").
func AssertLine(t *testing.T, result *HarnessResult, prefix, value string) {
	t.Helper()

	for _, line := range strings.Split(result.Output, "\n") {
		if !strings.HasPrefix(line, prefix) {
			continue
		}
		if strings.TrimSpace(strings.TrimPrefix(line, prefix)) == value {
			return
		}
	}
	require.Fail(t, fmt.Sprintf("no output line %q with value %q", prefix, value), "output:\n%s", result.Output)
}
