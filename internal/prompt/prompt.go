package prompt

import (
	"strings"

	"github.com/pterm/pterm"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// Prompt messages for the pipeline's interactive inputs. Shared between
// the commands and the Preset prompter so flag-supplied answers line up
// with their prompts.
const (
	MsgProjectDir  = "Project directory"
	MsgPrivateKey  = "Private key for the deployment account"
	MsgTokenName   = "Token name"
	MsgTokenSymbol = "Token symbol"
)

// Prompter asks the operator for a single value.
type Prompter interface {
	// Ask displays the prompt and returns the trimmed answer. An empty
	// answer returns defaultValue; when defaultValue is also empty and
	// required is true, an input error is returned.
	Ask(message, defaultValue string, required bool) (string, error)
}

// Terminal is the production Prompter backed by pterm's interactive
// text input.
type Terminal struct{}

// NewTerminal creates the terminal prompter.
func NewTerminal() *Terminal {
	return &Terminal{}
}

// Ask shows an interactive text input on the terminal.
//
// The private key is deliberately echoed unmasked, matching the original
// tooling; the secrets package warns about the plaintext handling
// separately.
func (t *Terminal) Ask(message, defaultValue string, required bool) (string, error) {
	input := pterm.DefaultInteractiveTextInput
	if defaultValue != "" {
		input = *input.WithDefaultValue(defaultValue)
	}

	answer, err := input.Show(message)
	if err != nil {
		return "", model.WrapCLIError(model.ExitUserCancelled, "prompt cancelled", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		answer = defaultValue
	}
	if answer == "" && required {
		return "", model.NewCLIError(model.ExitInputError, message+" is required")
	}
	return answer, nil
}

// Preset is a Prompter that answers from a fixed map, used when values
// arrive via command-line flags and for tests. Missing required answers
// fail the same way an empty interactive answer would.
type Preset struct {
	answers map[string]string
}

// NewPreset creates a prompter answering from the given map, keyed by
// prompt message.
func NewPreset(answers map[string]string) *Preset {
	return &Preset{answers: answers}
}

// Ask returns the preset answer for the message.
func (p *Preset) Ask(message, defaultValue string, required bool) (string, error) {
	answer := strings.TrimSpace(p.answers[message])
	if answer == "" {
		answer = defaultValue
	}
	if answer == "" && required {
		return "", model.NewCLIError(model.ExitInputError, message+" is required")
	}
	return answer, nil
}
