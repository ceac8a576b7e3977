// Package cli — init.go implements the "shieldsmith init" command.
//
// init is the primary user-facing operation: it runs the full bootstrap
// pipeline against a target directory. The eight stages execute strictly
// in order, and any failure halts the run at that stage.
//
// Pipeline stages:
//  1. dependencies — ensure the required npm packages are installed
//  2. scaffold     — lay down the base Hardhat project, drop the sample
//  3. secrets      — write the private key to .env
//  4. config       — render hardhat.config.js for the target network
//  5. contract     — render contracts/Token.sol from the token parameters
//  6. compile      — run the external compiler
//  7. scripts      — render the deploy/mint/transfer automation scripts
//  8. deploy       — run the deploy script, record the contract address
package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/hayato-mori/shieldsmith/internal/chain"
	"github.com/hayato-mori/shieldsmith/internal/deploy"
	"github.com/hayato-mori/shieldsmith/internal/generate"
	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
	"github.com/hayato-mori/shieldsmith/internal/npm"
	"github.com/hayato-mori/shieldsmith/internal/pipeline"
	"github.com/hayato-mori/shieldsmith/internal/prompt"
	"github.com/hayato-mori/shieldsmith/internal/scaffold"
	"github.com/hayato-mori/shieldsmith/internal/secrets"
	"github.com/hayato-mori/shieldsmith/internal/toolchain"
)

// initFlags holds the flag values for the init command. Any value left
// empty is collected interactively, in the same order the original
// tooling prompted: directory, private key, token name, token symbol.
type initFlags struct {
	dir            string // --dir: target project directory
	network        string // --network: network profile ID
	name           string // --name: token name
	symbol         string // --symbol: token symbol
	key            string // --key: private key (prompted unmasked if omitted)
	recipient      string // --recipient: transfer script recipient
	transferAmount int64  // --transfer-amount: transfer script whole-token amount
	skipDeploy     bool   // --skip-deploy: stop after script generation
}

// NewInitCommand creates the "init" cobra command.
func NewInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Bootstrap a confidential-token project",
		Long: `Bootstrap a complete Hardhat project for a shielded-token deployment.

The command installs the required npm packages, scaffolds the project,
writes the private-key env file, generates the network configuration,
the ERC20 token contract, and the deploy/mint/transfer automation
scripts, compiles, and deploys to the configured testnet.

Examples:
  shieldsmith init
  shieldsmith init --dir ./mytoken --name TestToken --symbol TT --skip-deploy
  shieldsmith init --network fhenix-helium --transfer-amount 5`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd.Context(), flags)
		},
	}

	cmd.Flags().StringVar(&flags.dir, "dir", "", "Project directory (default: current directory)")
	cmd.Flags().StringVar(&flags.network, "network", netprofile.DefaultID, "Target network profile")
	cmd.Flags().StringVar(&flags.name, "name", "", "Token name (prompted if omitted)")
	cmd.Flags().StringVar(&flags.symbol, "symbol", "", "Token symbol (prompted if omitted)")
	cmd.Flags().StringVar(&flags.key, "key", "", "Deployment account private key (prompted if omitted)")
	cmd.Flags().StringVar(&flags.recipient, "recipient", model.DefaultTransferRecipient,
		"Recipient baked into the generated transfer script")
	cmd.Flags().Int64Var(&flags.transferAmount, "transfer-amount", 1,
		"Whole-token amount baked into the generated transfer script")
	cmd.Flags().BoolVar(&flags.skipDeploy, "skip-deploy", false,
		"Generate and compile only, don't deploy")

	return cmd
}

// runInit is the main orchestration function for the init command.
func runInit(ctx context.Context, flags *initFlags) error {
	// Step 1: Resolve the target network profile.
	registry, err := netprofile.Load(netprofile.DefaultOverridePath())
	if err != nil {
		return err
	}
	profile, err := registry.Lookup(flags.network)
	if err != nil {
		return err
	}

	// Step 2: Collect the operator inputs, prompting for whatever the
	// flags did not supply. Prompt order matches the original tooling.
	prompter := prompt.NewTerminal()

	dir, err := askOrFlag(prompter, flags.dir, prompt.MsgProjectDir, "", false)
	if err != nil {
		return err
	}
	key, err := askOrFlag(prompter, flags.key, prompt.MsgPrivateKey, "", true)
	if err != nil {
		return err
	}
	name, err := askOrFlag(prompter, flags.name, prompt.MsgTokenName, "", true)
	if err != nil {
		return err
	}
	symbol, err := askOrFlag(prompter, flags.symbol, prompt.MsgTokenSymbol, "", true)
	if err != nil {
		return err
	}

	// Step 3: Build the project configuration threaded through the
	// pipeline. The directory is resolved and created up front — every
	// stage roots its file operations here.
	projectDir, err := scaffold.EnsureProjectDir(dir)
	if err != nil {
		return err
	}

	project := &model.Project{
		Dir:     projectDir,
		Network: profile.ID,
		Token:   model.TokenDescriptor{Name: name, Symbol: symbol},
		Scripts: model.ScriptParams{
			TransferRecipient:    flags.recipient,
			TransferAmountTokens: flags.transferAmount,
		},
		DeployerAddress: secrets.DeriveAddress(key),
		SkipDeploy:      flags.skipDeploy,
	}

	// Validate the token parameters before any stage runs — generating
	// half a project and then failing on the contract render helps nobody.
	if err := project.Token.Validate(); err != nil {
		return err
	}

	// Step 4: Assemble and run the pipeline. The private key is captured
	// by the secrets stage closure only; it is not carried on the
	// project object.
	runner := toolchain.NewRunner()
	resolver := npm.NewResolver(runner)

	stages := []pipeline.Stage{
		pipeline.NewStage("dependencies", func(ctx context.Context, p *model.Project) error {
			return resolver.Ensure(ctx, p.Dir, npm.RequiredPackages)
		}),
		pipeline.NewStage("scaffold", func(ctx context.Context, p *model.Project) error {
			return scaffold.Init(ctx, runner, p.Dir)
		}),
		pipeline.NewStage("secrets", func(_ context.Context, p *model.Project) error {
			return secrets.WriteEnvFile(p.Dir, key)
		}),
		pipeline.NewStage("config", func(_ context.Context, p *model.Project) error {
			return generate.WriteHardhatConfig(p.Dir, profile)
		}),
		pipeline.NewStage("contract", func(_ context.Context, p *model.Project) error {
			return generate.WriteContract(p.Dir, p.Token, profile)
		}),
		pipeline.NewStage("compile", func(ctx context.Context, p *model.Project) error {
			return deploy.Compile(ctx, runner, p.Dir)
		}),
		pipeline.NewStage("scripts", func(_ context.Context, p *model.Project) error {
			return generate.WriteScripts(p.Dir, profile, p.Scripts)
		}),
		pipeline.NewStage("deploy", func(ctx context.Context, p *model.Project) error {
			if p.SkipDeploy {
				return nil
			}
			address, err := deploy.Run(ctx, runner, p.Dir, profile)
			if err != nil {
				return err
			}
			p.ContractAddress = address
			return nil
		}),
	}

	if err := pipeline.NewRunner(stages...).Run(ctx, project); err != nil {
		return err
	}

	// Step 5: Output results.
	printInitResult(project, profile)
	return nil
}

// askOrFlag returns the flag value when supplied, otherwise prompts.
func askOrFlag(p prompt.Prompter, flagValue, message, defaultValue string, required bool) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	return p.Ask(message, defaultValue, required)
}

// printInitResult outputs the init results in text or JSON format.
func printInitResult(project *model.Project, profile netprofile.Profile) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(project, "", "  ")
		fmt.Println(string(data))
		return
	}

	pterm.Success.Printf("Project bootstrapped in %s\n", project.Dir)
	fmt.Printf("  Network:   %s\n", profile.DisplayName)
	fmt.Printf("  Token:     %s (%s)\n", project.Token.Name, project.Token.Symbol)
	if project.DeployerAddress != "" {
		fmt.Printf("  Deployer:  %s\n", project.DeployerAddress)
	}

	if project.SkipDeploy {
		pterm.Info.Println("Deployment skipped — run `shieldsmith deploy` when ready")
		return
	}
	if project.ContractAddress != "" {
		fmt.Printf("  Contract:  %s\n", project.ContractAddress)
		fmt.Printf("  Explorer:  %s\n", chain.ExplorerAddressURL(profile, project.ContractAddress))
	}
}
