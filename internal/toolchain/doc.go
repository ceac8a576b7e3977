// Package toolchain executes the external tools the bootstrap pipeline
// depends on: npm for dependency management and npx (hardhat) for
// scaffolding, compiling, and running deployment scripts.
//
// Design decisions:
//   - We shell out to npm/npx rather than reimplementing any part of the
//     package manager or the Hardhat toolchain. The pipeline consumes those
//     tools strictly through their command-line interfaces.
//   - Every invocation receives a context.Context. Chain-facing commands
//     (deploy) are given deadlines by their callers, so a hung RPC endpoint
//     cannot hang the pipeline indefinitely.
//   - The Runner is an interface so the orchestration core and the tests
//     can substitute a double that records invocations instead of spawning
//     processes.
package toolchain
