package generate

import (
	"path/filepath"

	"github.com/hayato-mori/shieldsmith/internal/netprofile"
)

// HardhatConfigName is the build configuration file rendered into the
// project root.
const HardhatConfigName = "hardhat.config.js"

// hardhatConfigTemplate embeds exactly one network profile. The account
// list is sourced from the .env file at build/deploy time via dotenv —
// the key itself is never copied into this file.
const hardhatConfigTemplate = `require("@nomicfoundation/hardhat-toolbox");
require("fhenix-hardhat-plugin");
require("dotenv").config();

/** @type import('hardhat/config').HardhatUserConfig */
module.exports = {
  solidity: "{{.SolidityVersion}}",
  defaultNetwork: "{{.HardhatName}}",
  networks: {
    {{.HardhatName}}: {
      url: "{{esc .RPCURL}}",
      chainId: {{.ChainID}},
      accounts: [process.env.PRIVATE_KEY],
    },
  },
};
`

// WriteHardhatConfig renders hardhat.config.js for the given network
// profile. The output is fully determined by the profile — no user input
// reaches this template.
func WriteHardhatConfig(dir string, profile netprofile.Profile) error {
	path := filepath.Join(dir, HardhatConfigName)
	return renderToFile(path, HardhatConfigName, hardhatConfigTemplate, profile)
}
