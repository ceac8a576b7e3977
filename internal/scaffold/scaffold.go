package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/toolchain"
)

// sampleContract is the placeholder contract `hardhat init` generates.
// It is removed so the generated Token.sol is the project's only
// contract and compiles are not cluttered with sample artifacts.
const sampleContract = "contracts/Lock.sol"

// EnsureProjectDir resolves the target directory to an absolute path,
// creating it if absent. An empty input means the current working
// directory.
//
// Every later stage roots its file operations at the returned path, so a
// failure here aborts the pipeline before anything is written anywhere.
func EnsureProjectDir(dir string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", model.WrapCLIError(model.ExitEnvironmentError,
				"failed to determine current directory", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", model.WrapCLIError(model.ExitInputError,
			"failed to resolve project directory", err)
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", model.WrapCLIError(model.ExitEnvironmentError,
			"failed to create project directory "+abs, err)
	}
	return abs, nil
}

// Init lays down the base project structure.
//
// When a hardhat.config.js already exists the scaffolder is skipped —
// re-running the pipeline against a bootstrapped directory regenerates
// files but does not re-scaffold. Otherwise `npx hardhat init` runs
// interactively, and the sample contract it produces is deleted.
func Init(ctx context.Context, runner toolchain.Runner, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, "hardhat.config.js")); err == nil {
		log.Debug().Str("dir", dir).Msg("hardhat project already present, skipping scaffold")
		return nil
	}

	log.Info().Str("dir", dir).Msg("scaffolding hardhat project")
	if err := runner.RunInteractive(ctx, dir, "npx", "hardhat", "init"); err != nil {
		return err
	}

	return RemoveSample(dir)
}

// RemoveSample deletes the scaffolder's sample contract. A missing
// sample is fine — newer scaffolder versions may not generate one.
func RemoveSample(dir string) error {
	path := filepath.Join(dir, filepath.FromSlash(sampleContract))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to remove sample contract", err)
	}
	return nil
}
