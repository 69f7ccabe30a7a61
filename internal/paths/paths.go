// Package paths resolves the filesystem locations used by the skillref CLI,
// following the XDG base directory specification.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "skillref"

// ConfigHome returns the base directory for skillref configuration files.
// The SKILLREF_CONFIG_DIR environment variable overrides the XDG default.
func ConfigHome() string {
	if dir := os.Getenv("SKILLREF_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}

// EnsureDir creates dir (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating directory %s", dir)
	}
	return nil
}
