package netprofile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadBuiltins verifies the embedded registry parses and carries the
// default testnet profile with a usable endpoint and compiler pin.
func TestLoadBuiltins(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)

	p, err := reg.Lookup(DefaultID)
	require.NoError(t, err)

	assert.Equal(t, "fhenixHelium", p.HardhatName)
	assert.NotEmpty(t, p.RPCURL)
	assert.NotEmpty(t, p.ExplorerURL)
	assert.NotEmpty(t, p.SolidityVersion)
	assert.NotZero(t, p.ChainID)
}

// TestLookupUnknownProfile verifies the error names the available IDs so
// the user can self-correct.
func TestLookupUnknownProfile(t *testing.T) {
	reg, err := Load("")
	require.NoError(t, err)

	_, err = reg.Lookup("mainnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown network profile")
	assert.Contains(t, err.Error(), DefaultID)
}

// TestOverrideFileAddsAndReplaces verifies user entries extend the
// registry and that a matching ID replaces the built-in.
func TestOverrideFileAddsAndReplaces(t *testing.T) {
	override := filepath.Join(t.TempDir(), "networks.yaml")
	content := `profiles:
  - id: localnet
    displayName: Local Devnet
    hardhatName: localnet
    rpcUrl: http://127.0.0.1:8545
    explorerUrl: http://127.0.0.1:4000
    chainId: 31337
    solidityVersion: 0.8.20
  - id: fhenix-helium
    displayName: Helium (patched endpoint)
    hardhatName: fhenixHelium
    rpcUrl: https://rpc.example.test
    explorerUrl: https://explorer.helium.fhenix.zone
    chainId: 8008135
    solidityVersion: 0.8.20
`
	require.NoError(t, os.WriteFile(override, []byte(content), 0644))

	reg, err := Load(override)
	require.NoError(t, err)

	local, err := reg.Lookup("localnet")
	require.NoError(t, err)
	assert.Equal(t, uint64(31337), local.ChainID)

	patched, err := reg.Lookup(DefaultID)
	require.NoError(t, err)
	assert.Equal(t, "https://rpc.example.test", patched.RPCURL)
}

// TestOverrideFileMissingIsFine verifies a nonexistent override path
// falls back to built-ins only.
func TestOverrideFileMissingIsFine(t *testing.T) {
	reg, err := Load(filepath.Join(t.TempDir(), "nope", "networks.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{DefaultID}, reg.IDs())
}

// TestOverrideRejectsIncompleteProfile verifies profiles missing required
// fields are rejected at load time, not at render time.
func TestOverrideRejectsIncompleteProfile(t *testing.T) {
	override := filepath.Join(t.TempDir(), "networks.yaml")
	content := `profiles:
  - id: broken
    displayName: No endpoint
`
	require.NoError(t, os.WriteFile(override, []byte(content), 0644))

	_, err := Load(override)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}
