package npm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/tidwall/jsonc"

	"github.com/hayato-mori/shieldsmith/internal/model"
	"github.com/hayato-mori/shieldsmith/internal/toolchain"
)

// RequiredPackages is the fixed set of npm packages the generated project
// needs: the Hardhat toolchain, the OpenZeppelin token base the generated
// contract imports, the network's encryption utility and its Hardhat
// plugin, and dotenv for the private-key env file.
var RequiredPackages = []string{
	"hardhat",
	"@nomicfoundation/hardhat-toolbox",
	"@openzeppelin/contracts",
	"fhenix-hardhat-plugin",
	"fhenixjs",
	"dotenv",
}

// manifest models the two dependency sections of package.json.
// Everything else in the file is ignored.
type manifest struct {
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Installed returns the set of package names declared in the project
// manifest, across both dependencies and devDependencies.
//
// A missing package.json is not an error — it simply means nothing is
// installed yet. npm creates the manifest on the first install.
func Installed(dir string) (map[string]bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, model.WrapCLIError(model.ExitEnvironmentError,
			"failed to read package.json", err)
	}

	var m manifest
	if err := json.Unmarshal(jsonc.ToJSON(raw), &m); err != nil {
		return nil, model.WrapCLIError(model.ExitEnvironmentError,
			"failed to parse package.json", err)
	}

	installed := make(map[string]bool, len(m.Dependencies)+len(m.DevDependencies))
	for name := range m.Dependencies {
		installed[name] = true
	}
	for name := range m.DevDependencies {
		installed[name] = true
	}
	return installed, nil
}

// Resolver installs missing packages through the external package manager.
type Resolver struct {
	runner toolchain.Runner
}

// NewResolver creates a resolver backed by the given command runner.
func NewResolver(runner toolchain.Runner) *Resolver {
	return &Resolver{runner: runner}
}

// Ensure checks each required package against the manifest and installs
// the missing ones, one `npm install --save-dev <pkg>` per package.
//
// Packages already present produce no install call, so running Ensure
// twice in a row performs no work the second time. The first install
// failure aborts immediately — every later pipeline stage assumes the
// full set is present, so partial success is not continued from.
func (r *Resolver) Ensure(ctx context.Context, dir string, required []string) error {
	installed, err := Installed(dir)
	if err != nil {
		return err
	}

	for _, pkg := range required {
		if installed[pkg] {
			log.Debug().Str("package", pkg).Msg("already installed")
			continue
		}

		log.Info().Str("package", pkg).Msg("installing")
		if _, err := r.runner.Run(ctx, dir, "npm", "install", "--save-dev", pkg); err != nil {
			return model.WrapCLIError(model.ExitEnvironmentError,
				fmt.Sprintf("failed to install %s", pkg), err)
		}
	}
	return nil
}
