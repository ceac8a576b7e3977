// Package deploy implements the build and deployment drivers: the two
// pipeline stages that hand the generated project to the external
// Hardhat toolchain, first to compile the contract and then to run the
// generated deploy script against the configured network.
//
// The deployment driver captures the deployed contract address from the
// script's output and persists it through the record package, whose
// atomic write guarantees a failed deploy never leaves a partial or
// stale address behind.
package deploy
