// Package prompt collects the operator's answers for the four
// interactive inputs of the bootstrap pipeline: project directory,
// private key, token name, and token symbol.
//
// The Prompter interface exists so commands can substitute preset
// answers (from flags) or a scripted double (in tests) for the
// pterm-backed terminal prompter.
package prompt
