package strategy

import (
	"cmp"
	"errors"
	"slices"
)

// ErrNilAlgorithm is returned when a Context would be left without an algorithm.
var ErrNilAlgorithm = errors.New("algorithm must not be nil")

// DefaultInput is the sequence used when a Context is created without input.
var DefaultInput = []string{"a", "b", "c", "d", "e"}

// Context holds exactly one active Algorithm and the input it runs on.
// It is not safe for concurrent use.
type Context[T cmp.Ordered] struct {
	algorithm Algorithm[T]
	input     []T
}

// NewContext binds a context to its initial algorithm and a fixed input.
func NewContext[T cmp.Ordered](initial Algorithm[T], input ...T) (*Context[T], error) {
	if initial == nil {
		return nil, ErrNilAlgorithm
	}
	return &Context[T]{
		algorithm: initial,
		input:     slices.Clone(input),
	}, nil
}

// NewDefaultContext returns a string context over DefaultInput.
func NewDefaultContext(initial Algorithm[string]) (*Context[string], error) {
	return NewContext(initial, DefaultInput...)
}

// Algorithm returns the active algorithm.
func (c *Context[T]) Algorithm() Algorithm[T] {
	return c.algorithm
}

// SetAlgorithm replaces the active algorithm for subsequent Run calls. A nil
// algorithm is rejected and the current one stays active.
func (c *Context[T]) SetAlgorithm(a Algorithm[T]) error {
	if a == nil {
		return ErrNilAlgorithm
	}
	c.algorithm = a
	return nil
}

// Input returns a copy of the fixed input sequence.
func (c *Context[T]) Input() []T {
	return slices.Clone(c.input)
}

// Run applies the active algorithm to the input.
func (c *Context[T]) Run() []T {
	return c.algorithm.Apply(slices.Clone(c.input))
}
