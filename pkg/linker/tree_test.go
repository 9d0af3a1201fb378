package linker

import (
	"io/fs"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idadots/ida/pkg/testutil"
	"github.com/idadots/ida/pkg/types"
)

func TestLinkTree_LinksImmediateChildren(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustWriteFile(t, fsys, "/repo/config/kitty/kitty.conf", "x", 0644)
	testutil.MustWriteFile(t, fsys, "/repo/config/gitconfig", "x", 0644)
	testutil.MustMkdirAll(t, fsys, "/home/u/.config")

	stats, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Linked)
	assert.Equal(t, 0, stats.Skipped)

	// the directory is one unit, not recursed into
	dest, err := fsys.Readlink("/home/u/.config/kitty")
	require.NoError(t, err)
	assert.Equal(t, "/repo/config/kitty", dest)

	dest, err = fsys.Readlink("/home/u/.config/gitconfig")
	require.NoError(t, err)
	assert.Equal(t, "/repo/config/gitconfig", dest)
}

func TestLinkTree_SkipSet(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustMkdirAll(t, fsys, "/repo/config/kitty")
	testutil.MustMkdirAll(t, fsys, "/repo/config/private")
	testutil.MustMkdirAll(t, fsys, "/home/u/.config")

	stats, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{
		Skip: map[string]bool{"private": true},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 1, stats.Skipped)
	assert.False(t, fsys.Exists("/home/u/.config/private"))
}

func TestLinkTree_ScriptsOnlyExecutabilityTest(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustWriteFile(t, fsys, "/repo/bin/with-exec-bit", "binary", 0755)
	testutil.MustWriteFile(t, fsys, "/repo/bin/with-shebang", "#!/bin/sh\necho hi\n", 0644)
	testutil.MustWriteFile(t, fsys, "/repo/bin/notes.txt", "not a script", 0644)
	testutil.MustMkdirAll(t, fsys, "/repo/bin/subdir")
	testutil.MustMkdirAll(t, fsys, "/home/u/.local/bin")

	stats, err := e.LinkTree("/repo/bin", "/home/u/.local/bin", TreeOptions{ScriptsOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Linked)
	assert.Equal(t, 2, stats.Skipped) // notes.txt and subdir

	assert.True(t, fsys.Exists("/home/u/.local/bin/with-exec-bit"))
	assert.True(t, fsys.Exists("/home/u/.local/bin/with-shebang"))
	assert.False(t, fsys.Exists("/home/u/.local/bin/notes.txt"))
	assert.False(t, fsys.Exists("/home/u/.local/bin/subdir"))
}

func TestLinkTree_FishVariablesPreserved(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustWriteFile(t, fsys, "/repo/config/fish/config.fish", "repo config", 0644)
	// live fish dir is a real directory with a dynamically-managed file
	testutil.MustWriteFile(t, fsys, "/home/u/.config/fish/config.fish", "local config", 0644)
	testutil.MustWriteFile(t, fsys, "/home/u/.config/fish/fish_variables", "SETUVAR theme:dark", 0644)

	stats, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{
		FishDir:           "fish",
		FishVariablesFile: "fish_variables",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 1, stats.Backups)

	// fish dir is now a symlink into the repo
	dest, err := fsys.Readlink("/home/u/.config/fish")
	require.NoError(t, err)
	assert.Equal(t, "/repo/config/fish", dest)

	// the variables file survived, as a real file, with its content
	info, err := fsys.Lstat("/home/u/.config/fish/fish_variables")
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	data, err := fsys.ReadFile("/home/u/.config/fish/fish_variables")
	require.NoError(t, err)
	assert.Equal(t, "SETUVAR theme:dark", string(data))
}

func TestLinkTree_FishVariablesShadowingSymlinkRemoved(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeForce, false)
	testutil.MustWriteFile(t, fsys, "/repo/config/fish/config.fish", "repo config", 0644)
	// the repo copy carries a symlinked fish_variables that would shadow
	// the restored file once the directory is linked
	testutil.MustSymlink(t, fsys, "/repo/config/fish/config.fish", "/repo/config/fish/fish_variables")
	testutil.MustWriteFile(t, fsys, "/home/u/.config/fish/fish_variables", "SETUVAR x:y", 0644)

	_, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{
		FishDir:           "fish",
		FishVariablesFile: "fish_variables",
	})
	require.NoError(t, err)

	info, err := fsys.Lstat("/home/u/.config/fish/fish_variables")
	require.NoError(t, err)
	assert.Zero(t, info.Mode()&os.ModeSymlink)

	data, err := fsys.ReadFile("/home/u/.config/fish/fish_variables")
	require.NoError(t, err)
	assert.Equal(t, "SETUVAR x:y", string(data))
}

func TestLinkTree_FishAlreadyLinkedSkipsDance(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustWriteFile(t, fsys, "/repo/config/fish/fish_variables", "SETUVAR repo:managed", 0644)
	testutil.MustSymlink(t, fsys, "/repo/config/fish", "/home/u/.config/fish")

	stats, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{
		FishDir:           "fish",
		FishVariablesFile: "fish_variables",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 0, stats.Backups)

	data, err := fsys.ReadFile("/repo/config/fish/fish_variables")
	require.NoError(t, err)
	assert.Equal(t, "SETUVAR repo:managed", string(data))
}

func TestLinkTree_SourceMissingDoesNotAbort(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustMkdirAll(t, fsys, "/repo/config/kitty")
	testutil.MustMkdirAll(t, fsys, "/repo/config/vanishing")
	testutil.MustMkdirAll(t, fsys, "/home/u/.config")
	// the entry is listed but inspection reports it gone, as if removed
	// between the readdir and the link
	fsys.InjectError("/repo/config/vanishing", fs.ErrNotExist)

	stats, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Linked)
	assert.Equal(t, 1, stats.Errors)
	assert.True(t, fsys.Exists("/home/u/.config/kitty"))
}

func TestLinkTree_FilesystemErrorAborts(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, false)
	testutil.MustMkdirAll(t, fsys, "/repo/config/aaa")
	testutil.MustMkdirAll(t, fsys, "/home/u/.config")
	fsys.InjectError("/home/u/.config/aaa", fs.ErrPermission)

	_, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{})
	require.Error(t, err)
}

func TestLinkTree_IdempotentSecondRun(t *testing.T) {
	e, fsys, store := newTestEngine(t, types.ModeDefault, false)
	testutil.MustMkdirAll(t, fsys, "/repo/config/kitty")
	testutil.MustWriteFile(t, fsys, "/repo/config/gitconfig", "x", 0644)
	testutil.MustWriteFile(t, fsys, "/home/u/.config/kitty/kitty.conf", "local", 0644)

	first, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Backups)

	second, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Linked) // both already correct
	assert.Equal(t, 0, second.Backups)

	// exactly one backup entry from the first run
	entries, err := fsys.ReadDir(store.SessionDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestLinkTree_DryRunReportsWithoutMutating(t *testing.T) {
	e, fsys, _ := newTestEngine(t, types.ModeDefault, true)
	testutil.MustMkdirAll(t, fsys, "/repo/config/kitty")
	testutil.MustWriteFile(t, fsys, "/home/u/.config/kitty", "old", 0644)

	var outcomes []types.LinkOutcome
	stats, err := e.LinkTree("/repo/config", "/home/u/.config", TreeOptions{
		OnOutcome: func(o types.LinkOutcome) { outcomes = append(outcomes, o) },
	})
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Linked)

	require.Len(t, outcomes, 1)
	assert.Equal(t, types.ActionBackupThenLink, outcomes[0].Action)
	assert.True(t, outcomes[0].DryRun)

	data, err := fsys.ReadFile("/home/u/.config/kitty")
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}
