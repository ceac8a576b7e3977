package model

import (
	"fmt"
	"strings"
)

// TokenDescriptor holds the user-supplied parameters for the generated
// ERC20 token contract.
//
// Both fields are embedded into generated Solidity source as string
// literals. They are escaped for the Solidity string grammar at render
// time (see the generate package), so values containing quotes or
// backslashes produce valid source rather than silently corrupting the
// generated file.
type TokenDescriptor struct {
	// Name is the human-readable token name, e.g. "TestToken".
	Name string `json:"name"`

	// Symbol is the short ticker symbol, e.g. "TT".
	Symbol string `json:"symbol"`
}

// Validate checks the descriptor against the input contract: both fields
// are required and must not contain control characters, which have no
// valid representation inside a generated single-line string literal.
//
// Quotes and backslashes are deliberately NOT rejected here — they are
// handled by escaping during template rendering.
func (t TokenDescriptor) Validate() error {
	if err := validateTokenField("token name", t.Name); err != nil {
		return err
	}
	return validateTokenField("token symbol", t.Symbol)
}

// validateTokenField enforces the shared rules for name and symbol.
func validateTokenField(label, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewCLIError(ExitInputError, label+" must not be empty")
	}
	for _, r := range value {
		if r < 0x20 || r == 0x7f {
			return NewCLIError(ExitInputError,
				fmt.Sprintf("%s must not contain control characters", label))
		}
	}
	return nil
}

// ScriptParams holds the parameters baked into the generated mint and
// transfer automation scripts.
//
// The defaults reproduce the original tooling behavior: transfer sends
// exactly one whole token to a fixed recipient. Both are configurable at
// generation time, but the defaults are the backward-compatible contract.
type ScriptParams struct {
	// TransferRecipient is the address the generated transfer script
	// sends tokens to.
	TransferRecipient string `json:"transferRecipient"`

	// TransferAmountTokens is the whole-token amount the generated
	// transfer script sends. Scaled by the token's decimals inside the
	// generated script.
	TransferAmountTokens int64 `json:"transferAmountTokens"`
}

// DefaultTransferRecipient is the recipient hardcoded into generated
// transfer scripts when the user does not override it.
const DefaultTransferRecipient = "0x95fC9D0759D89415B6a5f433dC38b5F4b366e4a3"

// DefaultScriptParams returns the backward-compatible script defaults.
func DefaultScriptParams() ScriptParams {
	return ScriptParams{
		TransferRecipient:    DefaultTransferRecipient,
		TransferAmountTokens: 1,
	}
}

// Project is the explicit configuration object threaded through the
// bootstrap pipeline. Every stage receives the same *Project; earlier
// stages populate fields that later stages consume.
//
// Dir is always an absolute path. All file operations in the pipeline are
// rooted at Dir explicitly — the process working directory is never
// changed, so a failure in one stage cannot leave later file writes
// pointing at an unintended location.
type Project struct {
	// Dir is the absolute path to the project root.
	Dir string `json:"dir"`

	// Network identifies the target network profile by ID
	// (see the netprofile package).
	Network string `json:"network"`

	// Token carries the user-supplied token parameters. Populated by the
	// contract stage (or by flags) before rendering.
	Token TokenDescriptor `json:"token"`

	// Scripts carries the generation parameters for the automation scripts.
	Scripts ScriptParams `json:"scripts"`

	// DeployerAddress is the address derived from the supplied private
	// key, when the key parses as secp256k1 hex. Informational only; an
	// unparseable key leaves it empty and the pipeline continues.
	DeployerAddress string `json:"deployerAddress,omitempty"`

	// ContractAddress is the deployed contract address, populated by the
	// deploy stage after the address record is written.
	ContractAddress string `json:"contractAddress,omitempty"`

	// SkipDeploy stops the pipeline after script generation, leaving
	// deployment to a later `shieldsmith deploy` invocation.
	SkipDeploy bool `json:"skipDeploy,omitempty"`
}
