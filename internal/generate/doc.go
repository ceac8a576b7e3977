// Package generate renders the files of the bootstrapped project: the
// hardhat network configuration, the ERC20 token contract, and the
// deploy/mint/transfer automation scripts.
//
// All rendering goes through text/template with an escaping function for
// double-quoted string literals. User-supplied values (token name and
// symbol) are therefore embedded as valid Solidity/JavaScript source even
// when they contain the literal delimiter character — raw interpolation
// of unescaped input into generated source is the one correctness gap of
// the original tooling this package closes.
package generate
