// Package npm implements the dependency resolver stage: it reads the
// project's package.json manifest, checks a fixed list of required
// packages against it, and installs whatever is missing.
//
// The manifest is parsed with github.com/tidwall/jsonc before
// encoding/json, because package.json files that have passed through
// editor tooling occasionally carry comments or trailing commas that the
// strict parser rejects.
//
// No version constraints are tracked — membership in dependencies or
// devDependencies is the whole check, matching the original tooling.
package npm
