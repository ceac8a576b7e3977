package npm

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner records install invocations instead of spawning npm. After
// each install it appends the package to the manifest, mimicking what a
// real `npm install --save-dev` does to package.json.
type fakeRunner struct {
	t     *testing.T
	dir   string
	calls []string
	fail  bool
}

func (f *fakeRunner) Run(_ context.Context, dir, name string, args ...string) (string, error) {
	f.t.Helper()
	require.Equal(f.t, "npm", name)
	require.Equal(f.t, f.dir, dir)
	// args: install --save-dev <pkg>
	require.Len(f.t, args, 3)
	pkg := args[2]
	f.calls = append(f.calls, pkg)
	if f.fail {
		return "", os.ErrPermission
	}
	addToManifest(f.t, dir, pkg)
	return "", nil
}

func (f *fakeRunner) RunInteractive(context.Context, string, string, ...string) error {
	f.t.Fatal("RunInteractive should not be called by the resolver")
	return nil
}

// writeManifest writes a package.json with the given devDependencies.
func writeManifest(t *testing.T, dir string, devDeps map[string]string) {
	t.Helper()
	content := `{"name":"proj","devDependencies":{`
	first := true
	for k, v := range devDeps {
		if !first {
			content += ","
		}
		content += `"` + k + `":"` + v + `"`
		first = false
	}
	content += `}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))
}

func addToManifest(t *testing.T, dir, pkg string) {
	t.Helper()
	installed, err := Installed(dir)
	require.NoError(t, err)
	deps := map[string]string{}
	for name := range installed {
		deps[name] = "^1.0.0"
	}
	deps[pkg] = "^1.0.0"
	writeManifest(t, dir, deps)
}

// TestEnsureInstallsOnlyMissing verifies the core resolver property: a
// present requirement triggers no install call, a missing one triggers
// exactly one.
func TestEnsureInstallsOnlyMissing(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, map[string]string{"hardhat": "^2.22.0", "dotenv": "^16.0.0"})

	runner := &fakeRunner{t: t, dir: dir}
	resolver := NewResolver(runner)

	required := []string{"hardhat", "fhenixjs", "dotenv"}
	require.NoError(t, resolver.Ensure(context.Background(), dir, required))

	assert.Equal(t, []string{"fhenixjs"}, runner.calls)
}

// TestEnsureIsIdempotent verifies that a second run over the same
// manifest performs no additional install calls.
func TestEnsureIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{t: t, dir: dir}
	resolver := NewResolver(runner)

	required := []string{"hardhat", "fhenixjs"}
	require.NoError(t, resolver.Ensure(context.Background(), dir, required))
	assert.Len(t, runner.calls, 2)

	require.NoError(t, resolver.Ensure(context.Background(), dir, required))
	assert.Len(t, runner.calls, 2, "second run must not install anything")
}

// TestEnsureHaltsOnInstallFailure verifies the resolver stops at the
// first failing install instead of continuing with a partial set.
func TestEnsureHaltsOnInstallFailure(t *testing.T) {
	dir := t.TempDir()
	runner := &fakeRunner{t: t, dir: dir, fail: true}
	resolver := NewResolver(runner)

	err := resolver.Ensure(context.Background(), dir, []string{"hardhat", "fhenixjs"})
	require.Error(t, err)
	assert.Len(t, runner.calls, 1, "must halt after the first failure")
}

// TestInstalledMissingManifest verifies an absent package.json reads as
// an empty installed set, not an error.
func TestInstalledMissingManifest(t *testing.T) {
	installed, err := Installed(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, installed)
}

// TestInstalledToleratesComments verifies manifests with JSONC-style
// comments and trailing commas still parse.
func TestInstalledToleratesComments(t *testing.T) {
	dir := t.TempDir()
	content := `{
  // toolchain
  "devDependencies": {
    "hardhat": "^2.22.0",
  },
  "dependencies": {
    "fhenixjs": "^0.4.0"
  }
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644))

	installed, err := Installed(dir)
	require.NoError(t, err)
	assert.True(t, installed["hardhat"])
	assert.True(t, installed["fhenixjs"])
}
