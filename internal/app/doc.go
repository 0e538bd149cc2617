// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the run lifecycle that assembles the tree,
// prepares the sort contexts and prints their results, decoupled from any
// specific entrypoint like a CLI.
package app
