// Package chain provides a thin wrapper around the go-ethereum RPC
// client for the few on-chain checks the CLI performs directly: probing
// that the configured endpoint is reachable and on the expected chain,
// and confirming that code exists at a recorded contract address.
//
// All transaction submission happens in the generated JavaScript
// automation scripts, not here — this package only observes the chain.
// Every call takes a context; callers attach deadlines so an unreachable
// endpoint fails fast instead of hanging the pipeline.
package chain
