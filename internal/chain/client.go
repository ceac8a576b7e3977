package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"

	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
)

// Client wraps an ethclient connection to one network profile.
type Client struct {
	inner   *ethclient.Client
	profile netprofile.Profile
}

// Dial connects to the profile's RPC endpoint.
//
// Dialing an HTTP endpoint does not touch the network by itself, so a
// bad URL only surfaces on the first call; use Probe to verify
// reachability eagerly.
func Dial(ctx context.Context, profile netprofile.Profile) (*Client, error) {
	inner, err := ethclient.DialContext(ctx, profile.RPCURL)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitChainError,
			fmt.Sprintf("failed to connect to %s", profile.RPCURL), err)
	}
	return &Client{inner: inner, profile: profile}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.inner.Close()
}

// Probe fetches the remote chain ID and checks it against the profile.
// A mismatch means the endpoint answers but is a different network —
// deploying there with a testnet key would be a confusing failure later,
// so it is reported up front.
func (c *Client) Probe(ctx context.Context) error {
	chainID, err := c.inner.ChainID(ctx)
	if err != nil {
		return model.WrapCLIError(model.ExitChainError,
			fmt.Sprintf("%s is unreachable", c.profile.RPCURL), err)
	}
	if c.profile.ChainID != 0 && chainID.Uint64() != c.profile.ChainID {
		return model.NewCLIError(model.ExitChainError,
			fmt.Sprintf("endpoint %s reports chain ID %d, expected %d (%s)",
				c.profile.RPCURL, chainID.Uint64(), c.profile.ChainID, c.profile.DisplayName))
	}
	return nil
}

// HasCode reports whether contract code exists at the given address in
// the latest state. Used to verify a recorded deployment actually landed.
func (c *Client) HasCode(ctx context.Context, address string) (bool, error) {
	if !common.IsHexAddress(address) {
		return false, model.NewCLIError(model.ExitChainError,
			fmt.Sprintf("invalid contract address %q", address))
	}
	code, err := c.inner.CodeAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return false, model.WrapCLIError(model.ExitChainError,
			"failed to query contract code", err)
	}
	return len(code) > 0, nil
}

// ExplorerAddressURL builds the block-explorer link for an address on
// the given profile.
func ExplorerAddressURL(profile netprofile.Profile, address string) string {
	return strings.TrimRight(profile.ExplorerURL, "/") + "/address/" + address
}

// ExplorerTxURL builds the block-explorer link for a transaction hash on
// the given profile.
func ExplorerTxURL(profile netprofile.Profile, txHash string) string {
	return strings.TrimRight(profile.ExplorerURL, "/") + "/tx/" + txHash
}
