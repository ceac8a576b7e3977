// Package scaffold implements the project initializer stage: it prepares
// the target directory, lays down the base Hardhat project structure via
// the external scaffolding tool, and removes the sample contract the
// scaffolder produces.
//
// The scaffolder runs interactively (it asks its own questions about
// project type), so its invocation inherits the parent's stdio.
package scaffold
