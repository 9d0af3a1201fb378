package theme

// Message constants
const (
	MsgShort = "Build and manage the wallpaper-derived theme"
	MsgLong  = `The 'theme' commands run the theme pipeline. A wallpaper's content hash
names a cached theme; building renders every per-application color file
from that theme's palette, applies your overrides, and signals running
desktop processes to pick up the result.`

	MsgBuildShort = "Render theme files for a wallpaper and reload the desktop"
	MsgBuildLong  = `Build derives the theme identity from the wallpaper's content, seeds the
theme's cache directory on first sight, resolves semantic colors
(palette defaults, then global overrides, then per-theme overrides),
renders every template, and asks the compositor and status bar to reload.

Override parse problems and unknown template placeholders are warnings;
an invalid resolved color fails the build.`

	MsgBuildExample = `  # Build for the current wallpaper
  ida theme build --wallpaper ~/Pictures/walls/sunset.png

  # Build without signaling running processes
  ida theme build --wallpaper sunset.png --no-reload`

	MsgWatchShort = "Rebuild the theme whenever the wallpaper file changes"
	MsgWatchLong  = `Watch observes the wallpaper path and reruns the build after each change,
coalescing rapid rewrites into one run. It blocks until interrupted.`

	MsgPreviewShort = "Show the current theme's semantic colors as swatches"
)
