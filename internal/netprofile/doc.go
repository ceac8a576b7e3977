// Package netprofile defines the target network profiles: the named
// configuration bundles (RPC endpoint, block explorer, chain ID, compiler
// version pin) a bootstrapped project can deploy to.
//
// Built-in profiles ship embedded in the binary as YAML. Users can add or
// override profiles by placing additional entries in
// ~/.shieldsmith/networks.yaml; user entries with an ID matching a
// built-in replace it.
package netprofile
