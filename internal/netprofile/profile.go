package netprofile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// DefaultID is the profile used when the user does not select a network.
const DefaultID = "fhenix-helium"

//go:embed networks.yaml
var builtinYAML []byte

// Profile describes one target network.
type Profile struct {
	// ID is the profile identifier used on the command line (--network).
	ID string `yaml:"id"`

	// DisplayName is the human-readable network name.
	DisplayName string `yaml:"displayName"`

	// HardhatName is the key rendered into the generated hardhat config's
	// networks block and passed to `hardhat run --network`.
	HardhatName string `yaml:"hardhatName"`

	// RPCURL is the JSON-RPC endpoint of the network.
	RPCURL string `yaml:"rpcUrl"`

	// ExplorerURL is the base URL of the network's block explorer.
	// Transaction links are built as <ExplorerURL>/tx/<hash>.
	ExplorerURL string `yaml:"explorerUrl"`

	// ChainID is the EIP-155 chain identifier.
	ChainID uint64 `yaml:"chainId"`

	// SolidityVersion is the compiler version pin rendered into the
	// generated hardhat config.
	SolidityVersion string `yaml:"solidityVersion"`
}

// Validate checks that a profile carries everything the generators need.
func (p *Profile) Validate() error {
	switch {
	case p.ID == "":
		return fmt.Errorf("network profile: id must not be empty")
	case p.HardhatName == "":
		return fmt.Errorf("network profile %q: hardhatName must not be empty", p.ID)
	case p.RPCURL == "":
		return fmt.Errorf("network profile %q: rpcUrl must not be empty", p.ID)
	case p.SolidityVersion == "":
		return fmt.Errorf("network profile %q: solidityVersion must not be empty", p.ID)
	}
	return nil
}

// registryFile models the YAML document shape shared by the embedded
// defaults and the user override file.
type registryFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// Registry holds the merged set of built-in and user-defined profiles.
type Registry struct {
	profiles map[string]Profile
}

// Load builds the registry from the embedded defaults plus, when present,
// the user override file at overridePath. Pass an empty overridePath to
// load built-ins only.
func Load(overridePath string) (*Registry, error) {
	reg := &Registry{profiles: make(map[string]Profile)}

	if err := reg.merge(builtinYAML, "embedded networks.yaml"); err != nil {
		// The embedded registry is compiled in; failing to parse it is a
		// programming error, but surface it like any other config problem.
		return nil, err
	}

	if overridePath != "" {
		raw, err := os.ReadFile(overridePath)
		switch {
		case os.IsNotExist(err):
			// No override file is the common case.
		case err != nil:
			return nil, model.WrapCLIError(model.ExitEnvironmentError,
				"failed to read network profile overrides", err)
		default:
			if mergeErr := reg.merge(raw, overridePath); mergeErr != nil {
				return nil, mergeErr
			}
		}
	}

	return reg, nil
}

// DefaultOverridePath returns the per-user override file location,
// or empty when the home directory cannot be determined.
func DefaultOverridePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".shieldsmith", "networks.yaml")
}

func (r *Registry) merge(raw []byte, source string) error {
	var file registryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return model.WrapCLIError(model.ExitEnvironmentError,
			fmt.Sprintf("failed to parse %s", source), err)
	}
	for _, p := range file.Profiles {
		if err := p.Validate(); err != nil {
			return model.WrapCLIError(model.ExitEnvironmentError,
				fmt.Sprintf("invalid profile in %s", source), err)
		}
		r.profiles[p.ID] = p
	}
	return nil
}

// Lookup returns the profile with the given ID.
func (r *Registry) Lookup(id string) (Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return Profile{}, model.NewCLIError(model.ExitInputError,
			fmt.Sprintf("unknown network profile %q (available: %v)", id, r.IDs()))
	}
	return p, nil
}

// IDs returns the sorted profile identifiers, for error messages and help
// output.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
