package strategy

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAlgorithms(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm[string]
		input     []string
		want      []string
	}{
		{"ascending sorted input", Ascending[string]{}, []string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c", "d", "e"}},
		{"descending sorted input", Descending[string]{}, []string{"a", "b", "c", "d", "e"}, []string{"e", "d", "c", "b", "a"}},
		{"ascending shuffled", Ascending[string]{}, []string{"c", "a", "e", "b", "d"}, []string{"a", "b", "c", "d", "e"}},
		{"descending shuffled", Descending[string]{}, []string{"c", "a", "e", "b", "d"}, []string{"e", "d", "c", "b", "a"}},
		{"ascending duplicates", Ascending[string]{}, []string{"b", "a", "b"}, []string{"a", "b", "b"}},
		{"empty input", Ascending[string]{}, []string{}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.algorithm.Apply(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAlgorithms_DoNotMutateInput(t *testing.T) {
	input := []int{3, 1, 2}

	Ascending[int]{}.Apply(input)
	Descending[int]{}.Apply(input)

	assert.Equal(t, []int{3, 1, 2}, input)
}

func TestAlgorithmNames(t *testing.T) {
	assert.Equal(t, "ascending", Ascending[string]{}.Name())
	assert.Equal(t, "descending", Descending[string]{}.Name())
}

func TestNewContext_RejectsNil(t *testing.T) {
	ctx, err := NewContext[string](nil)

	assert.ErrorIs(t, err, ErrNilAlgorithm)
	assert.Nil(t, ctx)
}

func TestContext_SwitchAffectsOnlyLaterRuns(t *testing.T) {
	ctx, err := NewDefaultContext(Ascending[string]{})
	require.NoError(t, err)

	first := ctx.Run()
	require.NoError(t, ctx.SetAlgorithm(Descending[string]{}))
	second := ctx.Run()

	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, first)
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, second)
	assert.Equal(t, "descending", ctx.Algorithm().Name())
}

func TestContext_SetNilKeepsCurrent(t *testing.T) {
	ctx, err := NewDefaultContext(Descending[string]{})
	require.NoError(t, err)

	assert.ErrorIs(t, ctx.SetAlgorithm(nil), ErrNilAlgorithm)
	assert.Equal(t, "descending", ctx.Algorithm().Name())
	assert.Equal(t, []string{"e", "d", "c", "b", "a"}, ctx.Run())
}

func TestContext_InputIsIsolated(t *testing.T) {
	input := []string{"b", "a"}
	ctx, err := NewContext[string](Ascending[string]{}, input...)
	require.NoError(t, err)

	input[0] = "z"
	out := ctx.Run()
	out[0] = "y"

	assert.Equal(t, []string{"b", "a"}, ctx.Input())
	assert.Equal(t, []string{"a", "b"}, ctx.Run())
}

// reverser is a third-party algorithm; the context must accept it unchanged.
type reverser struct{}

func (reverser) Name() string { return "reverse" }

func (reverser) Apply(data []int) []int {
	out := slices.Clone(data)
	slices.Reverse(out)
	return out
}

func TestContext_AcceptsCustomAlgorithm(t *testing.T) {
	ctx, err := NewContext[int](reverser{}, 1, 3, 2)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 1}, ctx.Run())
}

func TestProperty_AscendingAndDescendingAreMirrors(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		data := rapid.SliceOf(rapid.Int()).Draw(t, "data")

		asc := Ascending[int]{}.Apply(data)
		desc := Descending[int]{}.Apply(data)

		if !slices.IsSorted(asc) {
			t.Fatalf("ascending result not sorted: %v", asc)
		}
		reversed := slices.Clone(desc)
		slices.Reverse(reversed)
		if !slices.Equal(asc, reversed) {
			t.Fatalf("descending %v is not the mirror of ascending %v", desc, asc)
		}
		if len(asc) != len(data) {
			t.Fatalf("length changed: %d != %d", len(asc), len(data))
		}
	})
}
