// Package record manages the deployed-contract address record: a single
// plaintext file in the project root holding the address of the most
// recently deployed contract.
//
// The record is created by the deploy stage and consumed read-only by the
// generated mint/transfer scripts and the status command. Writes are
// atomic (temp file + rename) so a failed deploy can never leave a
// partial or corrupt address behind for later scripts to pick up.
package record
