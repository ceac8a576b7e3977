package chain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
)

func testProfile() netprofile.Profile {
	return netprofile.Profile{
		ID:              "fhenix-helium",
		DisplayName:     "Fhenix Helium Testnet",
		HardhatName:     "fhenixHelium",
		RPCURL:          "http://127.0.0.1:1", // nothing listens here
		ExplorerURL:     "https://explorer.helium.fhenix.zone/",
		ChainID:         8008135,
		SolidityVersion: "0.8.20",
	}
}

// TestExplorerURLs verifies link construction, including trailing-slash
// normalization of the configured explorer base.
func TestExplorerURLs(t *testing.T) {
	p := testProfile()

	assert.Equal(t,
		"https://explorer.helium.fhenix.zone/tx/0xabc",
		ExplorerTxURL(p, "0xabc"))
	assert.Equal(t,
		"https://explorer.helium.fhenix.zone/address/0xdef",
		ExplorerAddressURL(p, "0xdef"))
}

// TestProbeUnreachableEndpoint verifies an endpoint nobody listens on
// fails fast with a chain error under a deadline, rather than hanging.
func TestProbeUnreachableEndpoint(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := Dial(ctx, testProfile())
	require.NoError(t, err, "HTTP dial is lazy and must not fail")
	defer client.Close()

	err = client.Probe(ctx)
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitChainError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "unreachable")
}

// TestHasCodeRejectsInvalidAddress verifies address validation happens
// before any RPC round trip.
func TestHasCodeRejectsInvalidAddress(t *testing.T) {
	ctx := context.Background()
	client, err := Dial(ctx, testProfile())
	require.NoError(t, err)
	defer client.Close()

	_, err = client.HasCode(ctx, "not-an-address")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid contract address")
}
