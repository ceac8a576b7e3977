// Package secrets writes the project's private-key env file.
//
// Credential handling note: the key is stored in plaintext in .env, with
// no encryption at rest and no confirmation prompt. This matches the
// original local-development tooling and is a known weakness, not an
// oversight — the file is written 0600 and a warning is logged, but the
// behavior is deliberately not hardened beyond that.
package secrets
