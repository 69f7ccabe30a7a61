// Package validator checks parsed skill metadata against the skill schema.
//
// Ordinary invalidity is reported as data: Validate returns a list of
// human-readable problems, and an empty list means the metadata is valid.
// The error return is reserved for metadata that violates the parser's
// output contract and carries no schema meaning.
package validator

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/skillref/internal/frontmatter"
	"github.com/thoreinstein/skillref/internal/skill"
)

// Validator validates skill metadata. Create one with New; a Validator is
// stateless and safe for concurrent use.
type Validator struct{}

// New creates a Validator.
func New() *Validator {
	return &Validator{}
}

// Validate checks meta against the skill schema and returns the list of
// problems found. The schema is permissive: unknown keys are never reported.
//
// Rules run in a fixed order and never short-circuit, so the problem list is
// deterministic for identical input:
//
//  1. name must be present and a non-empty string after trimming
//  2. description must be present and a non-empty string after trimming
//  3. when dir is non-nil, the directory must exist, must contain SKILL.md,
//     and its base name must match the declared skill name
//
// The directory checks are skipped entirely when dir is nil; that is the
// inline-text mode, not a failure.
//
// The returned error is non-nil only when meta itself is malformed (nil, or
// holding a value outside the scalar contract). Such an error never encodes
// ordinary invalidity.
func (v *Validator) Validate(meta *frontmatter.Metadata, dir *skill.Dir) ([]string, error) {
	if meta == nil {
		return nil, errors.New("metadata mapping is nil")
	}

	problems := []string{}

	for _, key := range []string{"name", "description"} {
		ps, err := requireNonEmptyString(meta, key)
		if err != nil {
			return nil, err
		}
		problems = append(problems, ps...)
	}

	if dir != nil {
		problems = append(problems, checkDir(meta, dir)...)
	}

	return problems, nil
}

// requireNonEmptyString applies the required-field rule for key.
func requireNonEmptyString(meta *frontmatter.Metadata, key string) ([]string, error) {
	val, ok := meta.Get(key)
	if !ok {
		return []string{"missing required field: " + key}, nil
	}
	if !val.Valid() {
		// Only possible when the mapping was not produced by the parser.
		return nil, errors.Newf("field %q holds a value outside the scalar metadata contract", key)
	}
	if val.Kind() != frontmatter.KindString || strings.TrimSpace(val.String()) == "" {
		return []string{fmt.Sprintf("field '%s' must be a non-empty string", key)}, nil
	}
	return nil, nil
}

// checkDir runs the directory-context checks. Each check fails
// independently; a missing directory also reports its missing SKILL.md.
func checkDir(meta *frontmatter.Metadata, dir *skill.Dir) []string {
	var problems []string

	if !dir.Exists() {
		problems = append(problems, fmt.Sprintf("skill directory does not exist: %s", dir.Path()))
	}
	if !dir.HasSkillFile() {
		problems = append(problems, fmt.Sprintf("skill directory is missing %s: %s", skill.FileName, dir.Path()))
	}

	if val, ok := meta.Get("name"); ok && val.Kind() == frontmatter.KindString {
		name := strings.TrimSpace(val.String())
		if name != "" && name != dir.Name() {
			problems = append(problems,
				fmt.Sprintf("skill name '%s' does not match directory name '%s'", name, dir.Name()))
		}
	}

	return problems
}
