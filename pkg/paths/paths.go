// Package paths provides centralized path handling for ida.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/idadots/ida/pkg/errors"
)

// Environment variable names
const (
	// EnvRepoRoot is the primary environment variable for the repo location
	EnvRepoRoot = "IDA_ROOT"

	// EnvCacheDir overrides the theme cache directory
	EnvCacheDir = "IDA_CACHE_DIR"

	// EnvConfigDir overrides the ida config directory
	EnvConfigDir = "IDA_CONFIG_DIR"

	// EnvBackupDir overrides the backup store root
	EnvBackupDir = "IDA_BACKUP_DIR"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Directory and file names inside the repo and the user's environment.
// These define ida's on-disk contract and are not user-configurable.
const (
	// IdaDirName is the directory name for ida-specific files
	IdaDirName = "ida"

	// ThemeCacheDirName is the cache directory name for theme artifacts
	ThemeCacheDirName = "ida-theme"

	// ConfigSourceDir is the repo subdirectory holding config directories
	ConfigSourceDir = "config"

	// ScriptsSourceDir is the repo subdirectory holding CLI scripts
	ScriptsSourceDir = "scripts/bin"

	// TemplatesDir is the repo subdirectory holding theme templates
	TemplatesDir = "scripts/theme/templates"

	// BackupDirName is the directory under home that receives backups
	BackupDirName = ".ida-backups"

	// BinTargetDir is where scripts are linked, relative to home
	BinTargetDir = ".local/bin"

	// CurrentThemeDir is the live snapshot directory under the theme cache
	CurrentThemeDir = "current"

	// ThemesDir holds per-identity snapshots under the theme cache
	ThemesDir = "themes"

	// OverridesFileName is the override file name, both global and per-theme
	OverridesFileName = "overrides.conf"

	// ConfigFileName is ida's own TOML config file
	ConfigFileName = "config.toml"
)

// Paths provides centralized path management for ida
type Paths interface {
	RepoRoot() string
	UsedFallback() bool
	ConfigSource() string
	ScriptsSource() string
	TemplatesDir() string
	HomeDir() string
	ConfigTarget() string
	BinTarget() string
	BackupRoot() string
	ConfigDir() string
	ConfigFilePath() string
	GlobalOverridePath() string
	ThemeCacheDir() string
	CurrentThemeDir() string
	ThemeDir(identity string) string
	ThemeOverridePath(identity string) string
}

type paths struct {
	repoRoot     string
	home         string
	xdgConfig    string
	xdgCache     string
	backupRoot   string
	usedFallback bool
}

// New creates a new Paths instance with the given repo root.
// If repoRoot is empty it is determined from IDA_ROOT, falling back to
// ~/ida with a warning flag the CLI can surface.
func New(repoRoot string) (Paths, error) {
	p := &paths{}

	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		home, err = os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFilesystem, "failed to determine home directory")
		}
	}
	p.home = home

	if repoRoot == "" {
		root, usedFallback := findRepoRoot(home)
		p.repoRoot = root
		p.usedFallback = usedFallback
	} else {
		p.repoRoot = expandHome(repoRoot, home)
	}

	absRoot, err := filepath.Abs(p.repoRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFilesystem, "failed to get absolute path for repo root")
	}
	p.repoRoot = absRoot

	p.setupXDGDirs(home)

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs(home string) {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir, home)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, IdaDirName)
	}

	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir, home)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, ThemeCacheDirName)
	}

	if backupDir := os.Getenv(EnvBackupDir); backupDir != "" {
		p.backupRoot = expandHome(backupDir, home)
	} else {
		p.backupRoot = filepath.Join(home, BackupDirName)
	}
}

// findRepoRoot determines the repo root: IDA_ROOT if set, else ~/ida.
// The bool reports whether the fallback was used.
func findRepoRoot(home string) (string, bool) {
	if root := os.Getenv(EnvRepoRoot); root != "" {
		return expandHome(root, home), false
	}
	return filepath.Join(home, IdaDirName), true
}

// expandHome expands a leading ~ to the home directory
func expandHome(path, home string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	if len(path) == 1 {
		return home
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

func (p *paths) RepoRoot() string      { return p.repoRoot }
func (p *paths) UsedFallback() bool    { return p.usedFallback }
func (p *paths) HomeDir() string       { return p.home }
func (p *paths) ConfigDir() string     { return p.xdgConfig }
func (p *paths) BackupRoot() string    { return p.backupRoot }
func (p *paths) ThemeCacheDir() string { return p.xdgCache }

func (p *paths) ConfigSource() string {
	return filepath.Join(p.repoRoot, ConfigSourceDir)
}

func (p *paths) ScriptsSource() string {
	return filepath.Join(p.repoRoot, ScriptsSourceDir)
}

func (p *paths) TemplatesDir() string {
	return filepath.Join(p.repoRoot, TemplatesDir)
}

func (p *paths) ConfigTarget() string {
	return filepath.Join(p.home, ".config")
}

func (p *paths) BinTarget() string {
	return filepath.Join(p.home, BinTargetDir)
}

func (p *paths) ConfigFilePath() string {
	return filepath.Join(p.xdgConfig, ConfigFileName)
}

func (p *paths) GlobalOverridePath() string {
	return filepath.Join(p.xdgConfig, OverridesFileName)
}

func (p *paths) CurrentThemeDir() string {
	return filepath.Join(p.xdgCache, CurrentThemeDir)
}

func (p *paths) ThemeDir(identity string) string {
	return filepath.Join(p.xdgCache, ThemesDir, identity)
}

func (p *paths) ThemeOverridePath(identity string) string {
	return filepath.Join(p.ThemeDir(identity), OverridesFileName)
}
