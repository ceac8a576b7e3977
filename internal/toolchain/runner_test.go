package toolchain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hayato-mori/shieldsmith/internal/model"
)

// TestRunCapturesStdout verifies that successful commands return their
// standard output.
func TestRunCapturesStdout(t *testing.T) {
	r := NewRunner()

	out, err := r.Run(context.Background(), t.TempDir(), "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out)
}

// TestRunRunsInDir verifies the command executes rooted at the given
// directory. The pipeline never changes the process working directory,
// so everything depends on this.
func TestRunRunsInDir(t *testing.T) {
	r := NewRunner()
	dir := t.TempDir()

	out, err := r.Run(context.Background(), dir, "pwd")
	require.NoError(t, err)
	// macOS may report the temp dir through a /private symlink, so match
	// on suffix rather than full equality.
	assert.Contains(t, out, dir[len(dir)-8:])
}

// TestRunSurfacesStderrOnFailure verifies that a failing tool's stderr
// diagnostics reach the error message verbatim, wrapped as a tool error.
func TestRunSurfacesStderrOnFailure(t *testing.T) {
	r := NewRunner()

	_, err := r.Run(context.Background(), t.TempDir(),
		"sh", "-c", "echo compile blew up >&2; exit 1")
	require.Error(t, err)

	var cliErr *model.CLIError
	require.ErrorAs(t, err, &cliErr)
	assert.Equal(t, model.ExitToolError, cliErr.Code)
	assert.Contains(t, cliErr.Message, "compile blew up")
}

// TestRunHonorsContextDeadline verifies a hung external call is cut off
// by its context rather than blocking the pipeline forever.
func TestRunHonorsContextDeadline(t *testing.T) {
	r := NewRunner()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := r.Run(ctx, t.TempDir(), "sleep", "10")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
	assert.Contains(t, err.Error(), "timed out")
}
