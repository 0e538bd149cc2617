package integration_tests

import (
	"strings"
	"testing"

	"github.com/specialistvlad/patternkit/internal/app"
	"github.com/specialistvlad/patternkit/internal/testutil"
	"github.com/stretchr/testify/require"
)

// Test for: the built-in sort runs the initial algorithm, then the opposite one
func TestStrategyDemo_DefaultSwitch(t *testing.T) {
	tests := []struct {
		algorithm string
		want      []string
	}{
		{"ascending", []string{"ascending: a,b,c,d,e", "descending: e,d,c,b,a"}},
		{"descending", []string{"descending: e,d,c,b,a", "ascending: a,b,c,d,e"}},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			// --- Act ---
			result := testutil.RunIntegrationTest(t, nil, &app.Config{Algorithm: tt.algorithm})

			// --- Assert ---
			require.NoError(t, result.Err)
			section := result.Output[strings.Index(result.Output, "== strategy: default =="):]
			lines := strings.Split(strings.TrimSpace(section), "\n")
			require.Equal(t, tt.want, lines[1:])
			require.Contains(t, result.LogOutput, "Switched algorithm.")
		})
	}
}

// Test for: configured sorts run in order, each over its own input
func TestStrategyDemo_ConfiguredSorts(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"sorts.hcl": `
sort "numbers" {
  algorithm = "descending"
  input     = [3, 1, 2]
}
`,
		"more/sorts.yml": `
sorts:
  - name: words
    algorithm: ascending
    switch_to: descending
    input: [pear, apple, fig]
`,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, nil)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "== strategy: numbers ==\ndescending: 3,2,1\n")
	require.Contains(t, result.Output, "== strategy: words ==\nascending: apple,fig,pear\ndescending: pear,fig,apple\n")
	require.Less(t, strings.Index(result.Output, "numbers"), strings.Index(result.Output, "words"), "HCL sorts are loaded before YAML sorts")
}
