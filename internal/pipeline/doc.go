// Package pipeline models the bootstrap workflow as an explicit ordered
// list of stages driven by a sequential runner.
//
// The workflow is strictly linear and single-pass: each stage runs once,
// in registration order, with no retries and no parallel branches. A
// stage failure halts the run at that stage — earlier file writes are
// not rolled back, and the error names the failing stage so the operator
// knows exactly where the pipeline stopped.
//
// Concurrent pipeline runs against the same target directory are not
// supported; the stages share the project directory and its state files
// without locking.
package pipeline
