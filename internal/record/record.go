package record

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// FileName is the well-known record file name in the project root. The
// generated automation scripts read the same name.
const FileName = "contract-address.txt"

// ErrNoDeployment is returned when the record file is missing or empty.
// Callers surface it as "deploy the contract first" guidance rather than
// a raw file-not-found trace.
var ErrNoDeployment = model.NewCLIError(model.ExitNoDeployment,
	"no deployed contract found — run `shieldsmith deploy` first")

// Write persists the contract address atomically.
//
// The address is validated and normalized to its EIP-55 checksum form
// before writing. The temp-file-plus-rename dance guarantees readers
// never observe a partially written record, and that nothing is written
// at all when validation fails.
func Write(dir, address string) error {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return model.NewCLIError(model.ExitChainError,
			fmt.Sprintf("refusing to record invalid contract address %q", address))
	}
	checksummed := common.HexToAddress(address).Hex()

	path := filepath.Join(dir, FileName)
	tmp, err := os.CreateTemp(dir, FileName+".tmp-*")
	if err != nil {
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to create temp file for address record", err)
	}
	tmpName := tmp.Name()

	_, writeErr := tmp.WriteString(checksummed + "\n")
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmpName)
		if writeErr == nil {
			writeErr = closeErr
		}
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to write address record", writeErr)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return model.WrapCLIError(model.ExitEnvironmentError,
			"failed to finalize address record", err)
	}
	return nil
}

// Read returns the recorded contract address.
//
// A missing or empty record returns ErrNoDeployment — the distinct,
// user-actionable error required by the state-consistency contract. A
// record containing something that is not an address is reported as
// corruption, since only Write (which validates) should produce the file.
func Read(dir string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoDeployment
		}
		return "", model.WrapCLIError(model.ExitEnvironmentError,
			"failed to read address record", err)
	}

	address := strings.TrimSpace(string(raw))
	if address == "" {
		return "", ErrNoDeployment
	}
	if !common.IsHexAddress(address) {
		return "", model.NewCLIError(model.ExitNoDeployment,
			fmt.Sprintf("address record is corrupt (%q) — re-run `shieldsmith deploy`", address))
	}
	return common.HexToAddress(address).Hex(), nil
}
