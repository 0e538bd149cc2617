// Package composite implements a tree of components where leaves and branches
// are handled through the same Component interface.
//
// A Branch owns an ordered list of children and aggregates their results,
// while a Leaf produces a fixed label. Every child keeps a non-owning
// reference back to the branch that holds it; the reference is only updated
// by Branch.Add and Branch.Remove.
//
// Cycles are not detected. Callers must not add a branch to one of its own
// descendants.
package composite
