// Package hcl provides the HCL implementation of the config.Loader interface.
// It parses `branch`, `leaf` and `sort` blocks and translates them into the
// format-agnostic config.Model. Tree blocks are read through the low-level
// hcl.Body API so that children keep their source order; `sort` blocks are
// decoded with gohcl and their `input` lists converted with go-cty.
package hcl
