package style

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// swatchWidth is the width of one preview color block.
const swatchWidth = 7

// ColorsEnabled reports whether stdout wants colored output. Piped output
// and NO_COLOR both disable it.
func ColorsEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// RenderSwatches renders one labeled swatch line per semantic color, in the
// order of keys. Keys absent from colors are skipped.
func RenderSwatches(colors map[string]string, keys []string) string {
	var sb strings.Builder
	for _, key := range keys {
		hex, ok := colors[key]
		if !ok {
			continue
		}
		block := lipgloss.NewStyle().
			Background(lipgloss.Color(hex)).
			Render(strings.Repeat(" ", swatchWidth))
		sb.WriteString(fmt.Sprintf("  %-10s %s %s\n", key, block, MutedStyle.Render(hex)))
	}
	return strings.TrimRight(sb.String(), "\n")
}
