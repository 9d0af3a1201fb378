package theme

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/types"
)

// hexColorPattern is the only accepted color form: 6 hex digits with an
// optional leading #.
var hexColorPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{6})$`)

// overrideKeyPrefix may prefix keys in override files (IDA_ACCENT=...);
// it is stripped before matching semantic keys.
const overrideKeyPrefix = "IDA_"

// ValidateHex checks a raw color value and returns its normalized form:
// uppercase hex with a leading #.
func ValidateHex(value, context string) (string, error) {
	m := hexColorPattern.FindStringSubmatch(strings.TrimSpace(value))
	if m == nil {
		return "", errors.Newf(errors.ErrInvalidColor,
			"invalid hex color %q in %s (expected #RRGGBB or RRGGBB)", value, context)
	}
	return "#" + strings.ToUpper(m[1]), nil
}

// ParseWarning describes a line that was skipped while parsing an override
// file: malformed syntax, an invalid color value, or an unknown key.
type ParseWarning struct {
	Source string
	Line   int
	Reason string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("%s:%d: %s", w.Source, w.Line, w.Reason)
}

// ParseOverrides reads a KEY=value override file. Comment lines (leading #)
// and blank lines are ignored. Keys are matched case-insensitively against
// the semantic key set after stripping the optional IDA_ prefix. Lines that
// do not parse, carry an invalid color, or name an unknown key produce
// warnings and are excluded; they never partially apply.
func ParseOverrides(fsys types.FS, path string, keys []string) (map[string]string, []ParseWarning, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil, nil
		}
		return nil, nil, errors.Wrapf(err, errors.ErrFilesystem, "cannot read overrides %s", path)
	}

	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}

	overrides := make(map[string]string)
	var warnings []ParseWarning

	for i, raw := range strings.Split(string(data), "\n") {
		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, found := strings.Cut(line, "=")
		if !found {
			warnings = append(warnings, ParseWarning{
				Source: path, Line: lineNum,
				Reason: fmt.Sprintf("malformed line %q (expected KEY=value)", line),
			})
			continue
		}

		key = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(key), overrideKeyPrefix))
		value = strings.TrimSpace(value)
		if key == "" || value == "" {
			warnings = append(warnings, ParseWarning{
				Source: path, Line: lineNum,
				Reason: "empty key or value",
			})
			continue
		}

		if !known[key] {
			warnings = append(warnings, ParseWarning{
				Source: path, Line: lineNum,
				Reason: fmt.Sprintf("unknown semantic key %q", key),
			})
			continue
		}

		normalized, err := ValidateHex(value, fmt.Sprintf("%s line %d", path, lineNum))
		if err != nil {
			warnings = append(warnings, ParseWarning{
				Source: path, Line: lineNum,
				Reason: err.Error(),
			})
			continue
		}

		overrides[key] = normalized
	}

	return overrides, warnings, nil
}

// ResolveColors merges the three override layers for every semantic key,
// with increasing precedence: defaults, then global, then per-theme. The
// inputs from ParseOverrides are already validated; the defaults (derived
// from the base palette) are validated here so a corrupt palette value
// cannot reach a rendered template. A missing default for a requested key
// is an error.
func ResolveColors(defaults, global, perTheme map[string]string, keys []string) (map[string]string, error) {
	resolved := make(map[string]string, len(keys))

	for _, key := range keys {
		switch {
		case perTheme[key] != "":
			resolved[key] = perTheme[key]
		case global[key] != "":
			resolved[key] = global[key]
		default:
			value, ok := defaults[key]
			if !ok {
				return nil, errors.Newf(errors.ErrInvalidColor, "no value for semantic key %q", key)
			}
			normalized, err := ValidateHex(value, fmt.Sprintf("semantic.%s", key))
			if err != nil {
				return nil, err
			}
			resolved[key] = normalized
		}
	}

	return resolved, nil
}
