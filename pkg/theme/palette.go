package theme

import (
	"encoding/json"
	"path/filepath"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/types"
)

// File names the external palette extractor leaves in the current snapshot.
const (
	PaletteFileName  = "theme.json"
	SemanticFileName = "semantic.json"
)

// Palette is the base color set produced by the external extraction tool
// for one wallpaper. Colors is the 16-slot terminal palette.
type Palette struct {
	Background string   `json:"background"`
	Foreground string   `json:"foreground"`
	Cursor     string   `json:"cursor,omitempty"`
	Colors     []string `json:"colors"`
}

// Color returns palette slot i, or an error when the extractor produced a
// shorter palette than the templates expect.
func (p *Palette) Color(i int) (string, error) {
	if i < 0 || i >= len(p.Colors) {
		return "", errors.Newf(errors.ErrPaletteMissing, "palette has %d colors, need index %d", len(p.Colors), i)
	}
	return p.Colors[i], nil
}

// LoadPalette reads the base palette and the semantic defaults from the
// current snapshot directory. Both files must exist; their absence means
// the external extractor has not run for this wallpaper yet.
func LoadPalette(fsys types.FS, currentDir string) (*Palette, map[string]string, error) {
	palettePath := filepath.Join(currentDir, PaletteFileName)
	data, err := fsys.ReadFile(palettePath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrPaletteMissing, "palette file not found: %s", palettePath)
	}
	var palette Palette
	if err := json.Unmarshal(data, &palette); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrPaletteMissing, "cannot parse %s", palettePath)
	}

	semanticPath := filepath.Join(currentDir, SemanticFileName)
	data, err = fsys.ReadFile(semanticPath)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrPaletteMissing, "semantic file not found: %s", semanticPath)
	}
	var semantic map[string]string
	if err := json.Unmarshal(data, &semantic); err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrPaletteMissing, "cannot parse %s", semanticPath)
	}

	return &palette, semantic, nil
}
