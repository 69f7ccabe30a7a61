package skill

import (
	"os"
	"path/filepath"
)

// Dir is an opaque, read-only handle on a skill directory. It is supplied by
// the caller when metadata originates from an on-disk skill package and
// enables the directory-dependent validation checks; validation of inline
// text passes a nil *Dir instead.
//
// Dir never walks the filesystem beyond the single directory it names.
type Dir struct {
	path string
}

// DirAt returns a handle on the skill directory at path. The path is
// resolved to an absolute form when possible so error messages and prompt
// locations are stable regardless of the working directory.
func DirAt(path string) *Dir {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Dir{path: path}
}

// Path returns the directory path.
func (d *Dir) Path() string {
	return d.path
}

// Name returns the base name of the directory, which a skill's declared name
// is expected to match.
func (d *Dir) Name() string {
	return filepath.Base(d.path)
}

// Exists reports whether the path exists and is a directory.
func (d *Dir) Exists() bool {
	info, err := os.Stat(d.path)
	return err == nil && info.IsDir()
}

// SkillFile returns the path of the SKILL.md document inside the directory.
func (d *Dir) SkillFile() string {
	return filepath.Join(d.path, FileName)
}

// HasSkillFile reports whether the directory contains a regular SKILL.md.
func (d *Dir) HasSkillFile() bool {
	info, err := os.Stat(d.SkillFile())
	return err == nil && info.Mode().IsRegular()
}
