package toolchain

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// Runner executes external commands rooted at a project directory.
//
// Run captures output and is used for non-interactive tools (npm install,
// hardhat compile, hardhat run). RunInteractive inherits the parent's
// stdio and is used for tools that prompt the operator themselves
// (hardhat init).
type Runner interface {
	// Run executes name with args in dir and returns combined
	// stdout. On a non-zero exit, the returned error includes the tool's
	// stderr verbatim.
	Run(ctx context.Context, dir, name string, args ...string) (string, error)

	// RunInteractive executes name with args in dir with stdin, stdout,
	// and stderr attached to the parent process.
	RunInteractive(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner is the production Runner backed by os/exec.
type ExecRunner struct{}

// NewRunner creates the production command runner.
func NewRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command with captured output.
//
// Stdout is returned on success. On failure, stderr is folded into the
// error message so external-tool diagnostics (compiler errors, npm
// resolution failures) reach the user unchanged, wrapped in a CLIError
// carrying the tool-failure exit code.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (string, error) {
	// #nosec G204 — tool names and arguments are constructed internally
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// A context deadline means the external call hung or the network
		// stalled — report it as such rather than as a tool diagnostic.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", model.WrapCLIError(model.ExitToolError,
				fmt.Sprintf("%s %s timed out", name, strings.Join(args, " ")), ctxErr)
		}

		stderrStr := strings.TrimSpace(stderr.String())
		message := fmt.Sprintf("%s %s failed", name, strings.Join(args, " "))
		if stderrStr != "" {
			message = fmt.Sprintf("%s:\n%s", message, stderrStr)
		}
		return "", model.WrapCLIError(model.ExitToolError, message, err)
	}

	return stdout.String(), nil
}

// RunInteractive executes the command with inherited stdio. It blocks
// until the tool exits, which for interactive tools means until the
// operator finishes answering its prompts.
func (r *ExecRunner) RunInteractive(ctx context.Context, dir, name string, args ...string) error {
	// #nosec G204 — tool names and arguments are constructed internally
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return model.WrapCLIError(model.ExitToolError,
			fmt.Sprintf("%s %s failed", name, strings.Join(args, " ")), err)
	}
	return nil
}
