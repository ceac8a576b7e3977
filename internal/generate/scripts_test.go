package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/record"
)

// TestWriteScripts verifies all four script files are rendered and share
// the well-known record file name.
func TestWriteScripts(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteScripts(dir, testProfile(), model.DefaultScriptParams()))

	for _, relPath := range []string{
		ShieldedHelperPath, DeployScriptPath, MintScriptPath, TransferScriptPath,
	} {
		assert.FileExists(t, dir+"/"+relPath)
	}

	deploy := readGenerated(t, dir, DeployScriptPath)
	mint := readGenerated(t, dir, MintScriptPath)
	transfer := readGenerated(t, dir, TransferScriptPath)
	for _, src := range []string{deploy, mint, transfer} {
		assert.Contains(t, src, `RECORD_FILE = "`+record.FileName+`"`)
	}
}

// TestMintScriptShape checks the six-step interaction shape: record
// read with the distinct no-deployment error, signer, contract binding,
// interface encoding, shielded routing, explorer confirmation.
func TestMintScriptShape(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteScripts(dir, testProfile(), model.DefaultScriptParams()))

	mint := readGenerated(t, dir, MintScriptPath)
	assert.Contains(t, mint, "no deployed contract found")
	assert.Contains(t, mint, "hre.ethers.getSigners()")
	assert.Contains(t, mint, `hre.ethers.getContractAt("Token", address, signer)`)
	assert.Contains(t, mint, `encodeFunctionData("mint100tokens", [])`)
	assert.Contains(t, mint, "sendShielded(signer, address, data, 0n)")
	assert.Contains(t, mint, "https://explorer.helium.fhenix.zone/tx/")
}

// TestShieldedHelperEncryptsBeforeSend verifies the helper encrypts the
// call data via the network utility before the send, and that mint and
// transfer both route through it.
func TestShieldedHelperEncryptsBeforeSend(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteScripts(dir, testProfile(), model.DefaultScriptParams()))

	helper := readGenerated(t, dir, ShieldedHelperPath)
	assert.Contains(t, helper, `require("fhenixjs")`)
	assert.Contains(t, helper, "client.encrypt(")
	assert.Contains(t, helper, "signer.sendTransaction(")

	for _, relPath := range []string{MintScriptPath, TransferScriptPath} {
		src := readGenerated(t, dir, relPath)
		assert.Contains(t, src, `require("./shielded-tx")`, "%s must use the shared helper", relPath)
	}
}

// TestTransferScriptDefaults pins the backward-compatible transfer
// parameters: one whole token to the fixed recipient, scaled by the
// token's decimals.
func TestTransferScriptDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteScripts(dir, testProfile(), model.DefaultScriptParams()))

	transfer := readGenerated(t, dir, TransferScriptPath)
	assert.Contains(t, transfer, `RECIPIENT = "`+model.DefaultTransferRecipient+`"`)
	assert.Contains(t, transfer, "AMOUNT_TOKENS = 1n")
	assert.Contains(t, transfer, "10n ** BigInt(decimals)")
	assert.Contains(t, transfer, `encodeFunctionData("transfer", [RECIPIENT, amount])`)
}

// TestTransferScriptCustomParams verifies generator-time overrides land
// in the script.
func TestTransferScriptCustomParams(t *testing.T) {
	dir := t.TempDir()
	params := model.ScriptParams{
		TransferRecipient:    "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		TransferAmountTokens: 5,
	}
	require.NoError(t, WriteScripts(dir, testProfile(), params))

	transfer := readGenerated(t, dir, TransferScriptPath)
	assert.Contains(t, transfer, `RECIPIENT = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"`)
	assert.Contains(t, transfer, "AMOUNT_TOKENS = 5n")
}

// TestDeployScriptWritesRecordAtomically verifies the generated deploy
// script uses the write-then-rename pattern for the address record.
func TestDeployScriptWritesRecordAtomically(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteScripts(dir, testProfile(), model.DefaultScriptParams()))

	deploy := readGenerated(t, dir, DeployScriptPath)
	assert.Contains(t, deploy, `fs.writeFileSync(RECORD_FILE + ".tmp"`)
	assert.Contains(t, deploy, `fs.renameSync(RECORD_FILE + ".tmp", RECORD_FILE)`)
	assert.Contains(t, deploy, "waitForDeployment()")
}
