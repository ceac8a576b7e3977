package generate

import (
	"path/filepath"

	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
)

// ContractPath is the generated token contract, relative to the project
// root.
const ContractPath = "contracts/Token.sol"

// contractTemplate renders the test token on top of the OpenZeppelin
// ERC20 base.
//
// mint100tokens and burn100tokens are deliberately callable by anyone:
// this is a faucet-style test token for a test network, and the absence
// of authorization checks is the deployed contract's documented behavior,
// not an oversight. Do not add access control here.
const contractTemplate = `// SPDX-License-Identifier: MIT
pragma solidity ^{{.SolidityVersion}};

import "@openzeppelin/contracts/token/ERC20/ERC20.sol";

contract Token is ERC20 {
    constructor() ERC20("{{esc .Name}}", "{{esc .Symbol}}") {}

    // Faucet operations for testnet use. Intentionally unrestricted:
    // any caller may mint or burn exactly 100 whole tokens.
    function mint100tokens() public {
        _mint(msg.sender, 100 * 10 ** uint256(decimals()));
    }

    function burn100tokens() public {
        _burn(msg.sender, 100 * 10 ** uint256(decimals()));
    }
}
`

// contractData combines the token descriptor with the profile's compiler
// pin for the pragma line.
type contractData struct {
	Name            string
	Symbol          string
	SolidityVersion string
}

// WriteContract validates the token descriptor and renders
// contracts/Token.sol. Name and symbol are escaped into the string
// literals of the ERC20 constructor call.
func WriteContract(dir string, token model.TokenDescriptor, profile netprofile.Profile) error {
	if err := token.Validate(); err != nil {
		return err
	}

	data := contractData{
		Name:            token.Name,
		Symbol:          token.Symbol,
		SolidityVersion: profile.SolidityVersion,
	}
	path := filepath.Join(dir, filepath.FromSlash(ContractPath))
	return renderToFile(path, "Token.sol", contractTemplate, data)
}
