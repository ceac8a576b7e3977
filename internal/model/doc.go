// Package model defines the domain types and value objects for the
// shieldsmith CLI.
//
// The central type is Project, the explicit configuration struct threaded
// through every pipeline stage. It replaces the shell-style pattern of
// passing directory paths, token parameters, and network settings between
// steps via process environment — each stage reads and writes one shared,
// typed object instead.
//
// The package also defines CLIError, the error type that carries a process
// exit code from any component up to the command layer, and the input
// validation rules for user-supplied token parameters.
package model
