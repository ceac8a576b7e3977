// Package cli — compile.go implements the "shieldsmith compile" command.
//
// The compile command re-runs the contract compiler in an existing
// project without touching any generated files, useful after manual
// edits to contracts/Token.sol.
package cli

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hayato-mori/shieldsmith/internal/deploy"
	"github.com/hayato-mori/shieldsmith/internal/scaffold"
	"github.com/hayato-mori/shieldsmith/internal/toolchain"
)

// NewCompileCommand creates the "compile" cobra command.
func NewCompileCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Compile the project contracts",
		Long: `Compile the contracts of an already-bootstrapped project.

Runs the Hardhat compiler in the project directory and reports its
diagnostics verbatim on failure.`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir, err := scaffold.EnsureProjectDir(dir)
			if err != nil {
				return err
			}
			if err := deploy.Compile(cmd.Context(), toolchain.NewRunner(), projectDir); err != nil {
				return err
			}
			pterm.Success.Println("Contracts compiled")
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Project directory (default: current directory)")

	return cmd
}
