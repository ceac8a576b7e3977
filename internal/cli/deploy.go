// Package cli — deploy.go implements the "shieldsmith deploy" command.
//
// The deploy command runs the generated deploy script against the
// target network, parses the contract address from the script output,
// records it, and verifies code presence on chain. It exists so a
// project bootstrapped with --skip-deploy (or one whose deployment
// failed) can be deployed without re-running the full pipeline.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hayato-mori/shieldsmith/internal/chain"
	"github.com/hayato-mori/shieldsmith/internal/deploy"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
	"github.com/hayato-mori/shieldsmith/internal/scaffold"
	"github.com/hayato-mori/shieldsmith/internal/toolchain"
)

// deployResult is the JSON output shape for the deploy command.
type deployResult struct {
	Network         string `json:"network"`
	ContractAddress string `json:"contractAddress"`
	ExplorerURL     string `json:"explorerUrl"`
}

// NewDeployCommand creates the "deploy" cobra command.
func NewDeployCommand() *cobra.Command {
	var (
		dir     string
		network string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy the compiled token contract",
		Long: `Deploy the token contract of an already-bootstrapped project.

Runs the generated deploy script against the configured network,
records the resulting contract address in ` + "`contract-address.txt`" + `,
and verifies that code is present at the address.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			registry, err := netprofile.Load(netprofile.DefaultOverridePath())
			if err != nil {
				return err
			}
			profile, err := registry.Lookup(network)
			if err != nil {
				return err
			}

			projectDir, err := scaffold.EnsureProjectDir(dir)
			if err != nil {
				return err
			}

			address, err := deploy.Run(cmd.Context(), toolchain.NewRunner(), projectDir, profile)
			if err != nil {
				return err
			}

			explorerURL := chain.ExplorerAddressURL(profile, address)

			if IsJSONOutput() {
				data, _ := json.MarshalIndent(deployResult{
					Network:         profile.ID,
					ContractAddress: address,
					ExplorerURL:     explorerURL,
				}, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			pterm.Success.Printf("Contract deployed to %s\n", address)
			fmt.Printf("  Explorer: %s\n", explorerURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (default: current directory)")
	cmd.Flags().StringVar(&network, "network", netprofile.DefaultID, "Target network profile")

	return cmd
}
