package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unikit-dev/unikit/pkg/app"
	"github.com/unikit-dev/unikit/pkg/errors"
	"github.com/unikit-dev/unikit/pkg/kconfig"
)

// fakeStore answers Has from a set of name@version keys.
type fakeStore map[string]bool

func (s fakeStore) Has(name, version string) bool {
	return s[name+"@"+version]
}

func fullStore() fakeStore {
	return fakeStore{
		"core@0.9.0": true,
		"lwip@0.9.0": true,
		"tlsf@0.9.0": true,
	}
}

func newTestApp(t *testing.T, store app.ComponentStore) *app.Application {
	t.Helper()
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	a, err := app.FromWorkdir(dir, false, nil)
	require.NoError(t, err)
	a.Store = store
	return a
}

func TestFromWorkdir_MissingDirectory(t *testing.T) {
	_, err := app.FromWorkdir(filepath.Join(t.TempDir(), "nope"), false, nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestFromWorkdir_MissingManifest(t *testing.T) {
	_, err := app.FromWorkdir(t.TempDir(), false, nil)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrManifestLoad))
}

func TestFromWorkdir_ForceInitSynthesizesManifest(t *testing.T) {
	dir := t.TempDir()

	a, err := app.FromWorkdir(dir, true, nil)
	require.NoError(t, err)

	assert.Equal(t, filepath.Base(dir), a.Manifest.Name)
	assert.Empty(t, a.Targets())
}

func TestFromWorkdir_AppliesVersionOverrides(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	a, err := app.FromWorkdir(dir, false, []string{"lwip@staging"})
	require.NoError(t, err)

	assert.Equal(t, "staging", a.Manifest.Libraries["lwip"].Version)
}

func TestTargetsAndBinaries_DeclaredOrder(t *testing.T) {
	a := newTestApp(t, fullStore())

	targets := a.Targets()
	require.Len(t, targets, 2)
	assert.Equal(t, "hello-qemu", targets[0].Name)
	assert.Equal(t, "hello-kvm", targets[1].Name)

	// Only the first target declares a binary.
	binaries := a.Binaries()
	require.Len(t, binaries, 1)
	assert.Equal(t, "build/hello_qemu-x86_64", binaries[0].Path)
	assert.Equal(t, "hello-qemu", binaries[0].TargetName)
}

func TestIsConfigured(t *testing.T) {
	a := newTestApp(t, fullStore())
	assert.False(t, a.IsConfigured())

	require.NoError(t, a.Configure(a.Targets()[0], nil, false))
	assert.True(t, a.IsConfigured())
}

func TestConfigure_WritesBaseAndOptions(t *testing.T) {
	a := newTestApp(t, fullStore())

	err := a.Configure(a.Targets()[0], []string{"CONFIG_LWIP_DHCP=n", "CONFIG_STACK_SIZE=8192"}, false)
	require.NoError(t, err)

	assignments, err := kconfig.ReadDotConfig(filepath.Join(a.Workdir, ".config"))
	require.NoError(t, err)

	assert.Contains(t, assignments, "CONFIG_ARCH_X86_64=y")
	assert.Contains(t, assignments, "CONFIG_PLAT_QEMU=y")
	assert.Contains(t, assignments, "CONFIG_HAVE_BOOTENTRY=y")
	assert.Contains(t, assignments, "CONFIG_LIBLWIP=y")
	assert.Contains(t, assignments, "CONFIG_LIBTLSF=y")
	assert.Contains(t, assignments, "CONFIG_STACK_SIZE=8192")
	// The caller's disable overrides the library's default enable.
	assert.Contains(t, assignments, "CONFIG_LWIP_DHCP=n")
	assert.NotContains(t, assignments, "CONFIG_LWIP_DHCP=y")
}

func TestConfigure_RefusesOverwriteWithoutForce(t *testing.T) {
	a := newTestApp(t, fullStore())
	require.NoError(t, a.Configure(a.Targets()[0], nil, false))

	err := a.Configure(a.Targets()[0], nil, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyConfigured))

	require.NoError(t, a.Configure(a.Targets()[0], nil, true))
}

func TestConfigure_MissingCore(t *testing.T) {
	store := fullStore()
	store["core@0.9.0"] = false
	a := newTestApp(t, store)

	err := a.Configure(a.Targets()[0], nil, false)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingComponent))
	assert.Equal(t, "core", errors.ComponentName(err))
}

func TestConfigure_MissingLibraryNamesFirstAbsent(t *testing.T) {
	store := fullStore()
	store["lwip@0.9.0"] = false
	store["tlsf@0.9.0"] = false
	a := newTestApp(t, store)

	err := a.Configure(a.Targets()[0], nil, false)

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingComponent))
	assert.Equal(t, "lwip", errors.ComponentName(err))
}

func TestSaveConfig_PersistsOverriddenVersions(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, sampleManifest)

	a, err := app.FromWorkdir(dir, false, []string{"core@staging"})
	require.NoError(t, err)
	require.NoError(t, a.SaveConfig())

	data, err := os.ReadFile(filepath.Join(dir, "unikit.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "staging")
}
