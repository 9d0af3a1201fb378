package theme

import (
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/logging"
	"github.com/idadots/ida/pkg/paths"
	"github.com/idadots/ida/pkg/types"
)

// Template and output names for the per-application generators.
const (
	fishThemeTemplate    = "fish-theme.fish.tmpl"
	fishThemeOutput      = "fish-theme.fish"
	wofiColorsTemplate   = "wofi-colors.css.tmpl"
	wofiColorsOutput     = "wofi-colors.css"
	semanticConfTemplate = "ida-semantic.conf.tmpl"
	semanticConfOutput   = "ida-semantic.conf"
	semanticCSSTemplate  = "ida-semantic.css.tmpl"
	semanticCSSOutput    = "ida-semantic.css"
	semanticFishTemplate = "ida-semantic.fish.tmpl"
	semanticFishOutput   = "ida-semantic.fish"
)

// defaultAlpha is the alpha byte appended for hyprland rgba colors.
const defaultAlpha = "FF"

// Builder runs the theme pipeline for one identity: palette in, rendered
// per-application files out. Warnings (override parse problems, unknown
// template placeholders) accumulate on the builder; only invalid resolved
// colors and filesystem failures are errors.
type Builder struct {
	fs       types.FS
	paths    paths.Paths
	cache    *Cache
	keys     []string
	identity string
	logger   zerolog.Logger

	Warnings []string
}

// NewBuilder creates a Builder for the given theme identity.
func NewBuilder(fsys types.FS, p paths.Paths, semanticKeys []string, identity string) *Builder {
	return &Builder{
		fs:       fsys,
		paths:    p,
		cache:    NewCache(fsys, p),
		keys:     semanticKeys,
		identity: identity,
		logger:   logging.GetLogger("theme.builder").With().Str("identity", identity).Logger(),
	}
}

// Build runs the full pipeline: load the base palette, resolve overrides,
// render every generator, and write the results into both the current
// snapshot and the identity's cache directory.
func (b *Builder) Build() error {
	defer logging.LogDuration(time.Now(), "theme build")

	palette, semanticDefaults, err := LoadPalette(b.fs, b.paths.CurrentThemeDir())
	if err != nil {
		return err
	}

	if _, err := b.cache.EnsureThemeDir(b.identity); err != nil {
		return err
	}

	semantic, err := b.resolveSemantic(semanticDefaults)
	if err != nil {
		return err
	}

	generators := []func(*Palette, map[string]string) error{
		b.generateFishTheme,
		b.generateWofiColors,
		b.generateSemanticConf,
		b.generateSemanticCSS,
		b.generateSemanticFish,
	}
	for _, generate := range generators {
		if err := generate(palette, semantic); err != nil {
			return err
		}
	}

	b.logger.Info().Int("warnings", len(b.Warnings)).Msg("theme build complete")
	return nil
}

// resolveSemantic layers the override files over the palette's semantic
// defaults. Parse warnings are collected; an unresolvable or invalid final
// value fails the build rather than writing a corrupt color.
func (b *Builder) resolveSemantic(defaults map[string]string) (map[string]string, error) {
	global, warns, err := ParseOverrides(b.fs, b.paths.GlobalOverridePath(), b.keys)
	if err != nil {
		return nil, err
	}
	b.warnAll(warns)

	perTheme, warns, err := ParseOverrides(b.fs, b.paths.ThemeOverridePath(b.identity), b.keys)
	if err != nil {
		return nil, err
	}
	b.warnAll(warns)

	return ResolveColors(defaults, global, perTheme, b.keys)
}

func (b *Builder) generateFishTheme(palette *Palette, semantic map[string]string) error {
	color8, err := palette.Color(8)
	if err != nil {
		return err
	}
	return b.render(fishThemeTemplate, fishThemeOutput, map[string]string{
		"fg":     StripHash(palette.Foreground),
		"urgent": StripHash(semantic["urgent"]),
		"color8": StripHash(color8),
	})
}

func (b *Builder) generateWofiColors(palette *Palette, semantic map[string]string) error {
	color5, err := palette.Color(5)
	if err != nil {
		return err
	}
	bgAlt, err := Lighten(palette.Background, 0.08)
	if err != nil {
		return err
	}
	bgHover, err := Lighten(palette.Background, 0.18)
	if err != nil {
		return err
	}
	return b.render(wofiColorsTemplate, wofiColorsOutput, map[string]string{
		"bg":       palette.Background,
		"bg_alt":   bgAlt,
		"bg_hover": bgHover,
		"fg":       palette.Foreground,
		"accent":   semantic["accent"],
		"color5":   color5,
		"urgent":   semantic["urgent"],
		"warning":  semantic["warning"],
		"success":  semantic["success"],
		"info":     semantic["info"],
	})
}

func (b *Builder) generateSemanticConf(_ *Palette, semantic map[string]string) error {
	return b.render(semanticConfTemplate, semanticConfOutput, map[string]string{
		"accent_rgba":  ToRGBA(semantic["accent"], defaultAlpha),
		"accent2_rgba": ToRGBA(semantic["accent2"], defaultAlpha),
		"warning_rgba": ToRGBA(semantic["warning"], defaultAlpha),
		"urgent_rgba":  ToRGBA(semantic["urgent"], defaultAlpha),
	})
}

func (b *Builder) generateSemanticCSS(_ *Palette, semantic map[string]string) error {
	return b.render(semanticCSSTemplate, semanticCSSOutput, semantic)
}

func (b *Builder) generateSemanticFish(_ *Palette, semantic map[string]string) error {
	return b.render(semanticFishTemplate, semanticFishOutput, semantic)
}

// render loads a template, substitutes the data, records unknown-placeholder
// warnings, and writes the output into both snapshot locations.
func (b *Builder) render(templateName, outputName string, data map[string]string) error {
	templatePath := filepath.Join(b.paths.TemplatesDir(), templateName)
	text, err := b.fs.ReadFile(templatePath)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateNotFound, "template not found: %s", templatePath)
	}

	rendered, unknown := Render(string(text), data)
	for _, token := range unknown {
		b.Warnings = append(b.Warnings, templateName+": unresolved placeholder "+token)
	}

	if err := b.cache.WriteSnapshotFile(b.identity, outputName, []byte(rendered)); err != nil {
		return err
	}

	b.logger.Debug().Str("file", outputName).Msg("generated theme file")
	return nil
}

func (b *Builder) warnAll(warns []ParseWarning) {
	for _, w := range warns {
		b.logger.Warn().Str("source", w.Source).Int("line", w.Line).Msg(w.Reason)
		b.Warnings = append(b.Warnings, w.String())
	}
}
