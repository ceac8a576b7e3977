// Package cli — status.go implements the "shieldsmith status" command.
//
// The status command reads the recorded contract address and reports
// it together with its block-explorer URL. A missing or empty record
// is a distinct error so callers can tell "never deployed" apart from
// a corrupt record.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/hayato-mori/shieldsmith/internal/chain"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
	"github.com/hayato-mori/shieldsmith/internal/record"
	"github.com/hayato-mori/shieldsmith/internal/scaffold"
)

// statusResult is the JSON output shape for the status command.
type statusResult struct {
	Network         string `json:"network"`
	ContractAddress string `json:"contractAddress"`
	ExplorerURL     string `json:"explorerUrl"`
	CodePresent     *bool  `json:"codePresent,omitempty"`
}

// NewStatusCommand creates the "status" cobra command.
func NewStatusCommand() *cobra.Command {
	var (
		dir     string
		network string
		verify  bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the recorded deployment",
		Long: `Show the contract address recorded by the last deployment.

With --verify, also queries the network to check that contract code is
still present at the recorded address.`,

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

			address, err := record.Read(projectDir)
			if err != nil {
				return err
			}

			result := statusResult{
				Network:         profile.ID,
				ContractAddress: address,
				ExplorerURL:     chain.ExplorerAddressURL(profile, address),
			}

			if verify {
				client, err := chain.Dial(cmd.Context(), profile)
				if err != nil {
					return err
				}
				defer client.Close()

				if err := client.Probe(cmd.Context()); err != nil {
					return err
				}

				present, err := client.HasCode(cmd.Context(), address)
				if err != nil {
					return err
				}
				result.CodePresent = &present
				if !present {
					log.Warn().Str("address", address).
						Msg("no contract code at the recorded address")
				}
			}

			if IsJSONOutput() {
				data, _ := json.MarshalIndent(result, "", "  ")
				fmt.Println(string(data))
				return nil
			}

			fmt.Printf("Network:   %s\n", profile.DisplayName)
			fmt.Printf("Contract:  %s\n", result.ContractAddress)
			fmt.Printf("Explorer:  %s\n", result.ExplorerURL)
			if result.CodePresent != nil {
				if *result.CodePresent {
					pterm.Success.Println("Contract code verified on chain")
				} else {
					pterm.Warning.Println("No contract code found at the recorded address")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (default: current directory)")
	cmd.Flags().StringVar(&network, "network", netprofile.DefaultID, "Target network profile")
	cmd.Flags().BoolVar(&verify, "verify", false, "Check on chain that code exists at the recorded address")

	return cmd
}
