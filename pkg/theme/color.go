package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/idadots/ida/pkg/errors"
)

// StripHash removes a leading # from a hex color.
func StripHash(color string) string {
	return strings.TrimPrefix(color, "#")
}

// ToRGBA converts a hex color to the RRGGBBAA form (no #) hyprland expects.
func ToRGBA(color, alpha string) string {
	return StripHash(color) + alpha
}

// Lighten raises a color's lightness by amount (0.0-1.0) in HSL space,
// clamped at white. Used for derived surfaces like hover backgrounds.
func Lighten(hexColor string, amount float64) (string, error) {
	c, err := colorful.Hex(normalizeForParse(hexColor))
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidColor, "cannot parse %q", hexColor)
	}

	h, s, l := c.Hsl()
	l += amount
	if l > 1.0 {
		l = 1.0
	}

	return colorful.Hsl(h, s, l).Clamped().Hex(), nil
}

func normalizeForParse(color string) string {
	if strings.HasPrefix(color, "#") {
		return color
	}
	return fmt.Sprintf("#%s", color)
}
