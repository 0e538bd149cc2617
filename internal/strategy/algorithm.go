package strategy

import (
	"cmp"
	"slices"
)

// Algorithm transforms a sequence of ordered values. Implementations must not
// modify the slice they receive.
type Algorithm[T cmp.Ordered] interface {
	Name() string
	Apply(data []T) []T
}

// Ascending sorts from the smallest to the largest value.
type Ascending[T cmp.Ordered] struct{}

func (Ascending[T]) Name() string { return "ascending" }

// Apply returns a sorted copy of data.
func (Ascending[T]) Apply(data []T) []T {
	out := slices.Clone(data)
	slices.Sort(out)
	return out
}

// Descending sorts from the largest to the smallest value.
type Descending[T cmp.Ordered] struct{}

func (Descending[T]) Name() string { return "descending" }

// Apply returns a reverse-sorted copy of data.
func (Descending[T]) Apply(data []T) []T {
	out := slices.Clone(data)
	slices.SortFunc(out, func(a, b T) int {
		return cmp.Compare(b, a)
	})
	return out
}
