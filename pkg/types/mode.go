package types

import "fmt"

// Mode controls how the symlink engine resolves conflicts with existing
// targets. It never affects the no-conflict path.
type Mode string

const (
	// ModeSafe skips any target that already exists.
	ModeSafe Mode = "safe"

	// ModeDefault displaces an existing target into the backup store
	// before linking.
	ModeDefault Mode = "default"

	// ModeForce removes an existing target before linking. No backup.
	ModeForce Mode = "force"
)

// ParseMode converts a string into a Mode, defaulting to ModeDefault for
// the empty string.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "":
		return ModeDefault, nil
	case string(ModeSafe):
		return ModeSafe, nil
	case string(ModeDefault):
		return ModeDefault, nil
	case string(ModeForce):
		return ModeForce, nil
	}
	return "", fmt.Errorf("unknown install mode %q (want safe, default or force)", s)
}

func (m Mode) String() string {
	return string(m)
}
