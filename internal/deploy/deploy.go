package deploy

import (
	"context"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hayato-mori/shieldsmith/internal/chain"
	"github.com/hayato-mori/shieldsmith/internal/generate"
	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/netprofile"
	"github.com/hayato-mori/shieldsmith/internal/record"
	"github.com/hayato-mori/shieldsmith/internal/toolchain"
)

// DeployTimeout bounds one deployment run, including the wait for
// finality on the remote network.
const DeployTimeout = 5 * time.Minute

// verifyTimeout bounds the optional post-deploy code check.
const verifyTimeout = 15 * time.Second

// addressPattern matches the address line printed by the generated
// deploy script.
var addressPattern = regexp.MustCompile(`deployed to (0x[0-9a-fA-F]{40})`)

// Compile invokes the external compiler on the generated contract.
// On failure the compiler's diagnostics are surfaced unchanged — a
// failing compile makes every later stage meaningless, so the error
// halts the pipeline.
func Compile(ctx context.Context, runner toolchain.Runner, dir string) error {
	log.Info().Msg("compiling contracts")
	out, err := runner.Run(ctx, dir, "npx", "hardhat", "compile")
	if err != nil {
		return err
	}
	if out != "" {
		log.Debug().Msg(out)
	}
	return nil
}

// Run executes the generated deploy script against the profile's network
// and persists the resulting contract address.
//
// The address is taken from the script's own output, validated, and
// written atomically — never from a pre-existing record file, so a
// stale address from an earlier deployment can never masquerade as this
// run's result. After recording, the deployment is verified over RPC
// when the endpoint cooperates; an unreachable endpoint downgrades the
// verification to a warning because the deploy itself already succeeded.
func Run(ctx context.Context, runner toolchain.Runner, dir string, profile netprofile.Profile) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DeployTimeout)
	defer cancel()

	log.Info().Str("network", profile.DisplayName).Msg("deploying contract")
	out, err := runner.Run(ctx, dir, "npx", "hardhat", "run",
		generate.DeployScriptPath, "--network", profile.HardhatName)
	if err != nil {
		return "", err
	}

	address, ok := ExtractAddress(out)
	if !ok {
		return "", model.NewCLIError(model.ExitChainError,
			"deploy script did not report a contract address")
	}

	if err := record.Write(dir, address); err != nil {
		return "", err
	}

	verify(ctx, profile, address)
	return address, nil
}

// ExtractAddress pulls the deployed contract address out of the deploy
// script's output. The second return is false when no address line is
// present, which callers treat as a failed deployment.
func ExtractAddress(output string) (string, bool) {
	m := addressPattern.FindStringSubmatch(output)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// verify confirms code exists at the recorded address. Best effort: RPC
// problems are logged, only a definitive "no code there" is surprising
// enough to warn about loudly.
func verify(ctx context.Context, profile netprofile.Profile, address string) {
	vctx, cancel := context.WithTimeout(ctx, verifyTimeout)
	defer cancel()

	client, err := chain.Dial(vctx, profile)
	if err != nil {
		log.Debug().Err(err).Msg("skipping post-deploy verification")
		return
	}
	defer client.Close()

	// A chain ID mismatch here means the deploy went to a different
	// network than the profile claims — worth a loud warning.
	if err := client.Probe(vctx); err != nil {
		log.Warn().Err(err).Msg("endpoint check failed after deploy")
		return
	}

	hasCode, err := client.HasCode(vctx, address)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("could not verify deployment over RPC")
	case !hasCode:
		log.Warn().Str("address", address).Msg("no contract code found at the recorded address yet")
	default:
		log.Debug().Str("address", address).Msg("deployment verified on-chain")
	}
}
