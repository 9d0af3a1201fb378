package packages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/testutil"
)

const manifestYAML = `managers:
  pacman:
    packages:
      - fish
      - kitty
      - waybar
  flatpak:
    packages:
      - org.mozilla.firefox
  apt:
    packages: []
`

func TestLoadManifest(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.MustWriteFile(t, fsys, "/repo/packages.yaml", manifestYAML, 0644)

	m, err := LoadManifest(fsys, "/repo/packages.yaml")
	require.NoError(t, err)

	assert.Equal(t, []string{"apt", "flatpak", "pacman"}, m.ManagerNames())
	assert.Equal(t, []string{"fish", "kitty", "waybar"}, m.Managers["pacman"].Packages)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	fsys := testutil.NewMemoryFS()

	_, err := LoadManifest(fsys, "/repo/packages.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestLoadManifest_BadYAML(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.MustWriteFile(t, fsys, "/repo/packages.yaml", "managers: [not a map", 0644)

	_, err := LoadManifest(fsys, "/repo/packages.yaml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}

func TestSync_InvokesAvailableManagers(t *testing.T) {
	fsys := testutil.NewMemoryFS()
	testutil.MustWriteFile(t, fsys, "/repo/packages.yaml", manifestYAML, 0644)
	m, err := LoadManifest(fsys, "/repo/packages.yaml")
	require.NoError(t, err)

	installer := &testutil.RecorderInstaller{Missing: map[string]bool{"flatpak": true}}
	skipped, err := Sync(context.Background(), installer, m)
	require.NoError(t, err)

	assert.Equal(t, []string{"flatpak"}, skipped)
	// apt has an empty list and is never invoked
	require.Len(t, installer.Calls, 1)
	assert.Equal(t, "pacman", installer.Calls[0].Manager)
	assert.Equal(t, []string{"fish", "kitty", "waybar"}, installer.Calls[0].Packages)
}

func TestSync_StopsOnInstallError(t *testing.T) {
	m := &Manifest{Managers: map[string]Group{
		"pacman": {Packages: []string{"fish"}},
	}}
	installer := &testutil.RecorderInstaller{Err: errors.New(errors.ErrToolMissing, "pacman failed")}

	_, err := Sync(context.Background(), installer, m)
	require.Error(t, err)
	assert.Len(t, installer.Calls, 1)
}

func TestExecInstaller_UnknownManager(t *testing.T) {
	installer := NewExecInstaller()
	assert.False(t, installer.Available("nix"))

	err := installer.Install(context.Background(), "nix", []string{"fish"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}
