package theme

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/idadots/ida/pkg/errors"
	"github.com/idadots/ida/pkg/types"
)

// identityHashLen is how many hex characters of the content hash go into a
// theme identity. 32 bits is plenty for a caching key over a personal
// wallpaper library; this is not a security boundary.
const identityHashLen = 8

// SHA256Hasher is the production types.ContentHasher.
type SHA256Hasher struct{}

// HashFile returns the lowercase hex SHA-256 digest of the file's bytes.
func (SHA256Hasher) HashFile(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFilesystem, "cannot read %s", path)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// DeriveIdentity computes the stable identity for a wallpaper: the base
// filename without extension, a hyphen, and the first 8 hex characters of
// its content hash. Same bytes and name always produce the same identity.
func DeriveIdentity(fsys types.FS, hasher types.ContentHasher, wallpaperPath string) (string, error) {
	digest, err := hasher.HashFile(fsys, wallpaperPath)
	if err != nil {
		return "", err
	}
	if len(digest) < identityHashLen {
		return "", errors.Newf(errors.ErrInternal, "content hash too short: %q", digest)
	}

	base := filepath.Base(wallpaperPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	return fmt.Sprintf("%s-%s", name, digest[:identityHashLen]), nil
}
