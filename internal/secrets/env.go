package secrets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog/log"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// EnvFileName is the fixed name of the env file consumed by the generated
// hardhat config (via dotenv).
const EnvFileName = ".env"

// WriteEnvFile persists the private key as a single PRIVATE_KEY=<value>
// line in the project's .env file, overwriting any previous content.
//
// The key format is deliberately NOT validated — the original tooling
// accepts whatever the operator types, and a wrong key surfaces later as
// a deploy failure against the network. An empty key is rejected up
// front, since it can only produce a broken config.
func WriteEnvFile(dir, privateKey string) error {
	if strings.TrimSpace(privateKey) == "" {
		return model.NewCLIError(model.ExitInputError, "private key must not be empty")
	}

	log.Warn().Msg("private key is stored in plaintext in .env — do not use a funded mainnet key")

	content := "PRIVATE_KEY=" + privateKey + "\n"
	path := filepath.Join(dir, EnvFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to write "+EnvFileName, err)
	}
	return nil
}

// DeriveAddress returns the EIP-55 address for a secp256k1 private key in
// hex form (with or without the 0x prefix).
//
// It is a convenience for operator feedback only: an unparseable key
// returns an empty string and no error, and the pipeline proceeds —
// key-format validation is not part of the secrets contract.
func DeriveAddress(privateKey string) string {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return ""
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}
