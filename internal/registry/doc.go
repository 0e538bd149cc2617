// Package registry maps algorithm names used on the command line and in
// config files to the Go factories that build them.
//
// Modules register their factories at startup; lookups afterwards are
// read-only. A duplicate registration is a programmer error and panics.
package registry
