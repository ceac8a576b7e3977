package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// TestPresetAnswers verifies the flag-backed prompter returns preset
// values, trims whitespace, and falls back to defaults.
func TestPresetAnswers(t *testing.T) {
	p := NewPreset(map[string]string{
		MsgTokenName:   "  TestToken ",
		MsgTokenSymbol: "TT",
	})

	name, err := p.Ask(MsgTokenName, "", true)
	require.NoError(t, err)
	assert.Equal(t, "TestToken", name)

	dir, err := p.Ask(MsgProjectDir, "/default/dir", false)
	require.NoError(t, err)
	assert.Equal(t, "/default/dir", dir)
}

// TestPresetMissingRequired verifies a missing required answer is an
// input error, matching the interactive behavior.
func TestPresetMissingRequired(t *testing.T) {
	p := NewPreset(nil)

	_, err := p.Ask(MsgPrivateKey, "", true)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitInputError, cliErr.Code)
	assert.Contains(t, err.Error(), "required")
}

// TestPresetOptionalEmpty verifies optional values may stay empty.
func TestPresetOptionalEmpty(t *testing.T) {
	p := NewPreset(nil)

	dir, err := p.Ask(MsgProjectDir, "", false)
	require.NoError(t, err)
	assert.Empty(t, dir)
}
