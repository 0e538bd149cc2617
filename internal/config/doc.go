// Package config defines the format-agnostic model of a patternkit run: the
// tree to assemble and the sort contexts to execute. Loaders for concrete
// file formats, such as HCL and YAML, live in their own packages and all
// produce a config.Model.
package config
