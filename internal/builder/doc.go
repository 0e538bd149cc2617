/*
Package builder turns the format-agnostic config.Model into live objects.

The construction is a two-part process:

 1. Tree assembly: every config.Node is validated and turned into a
    composite.Leaf or composite.Branch. Children are added in declaration
    order, so the resulting Operation output mirrors the file.

 2. Sort preparation: every config.Sort is resolved against the algorithm
    registry and wrapped in a strategy.Context over its input (or the
    default input when none is given). An optional second algorithm is
    resolved up front so that a bad name fails before anything runs.
*/
package builder
