// Package skill provides the skill data model for skillref: loading SKILL.md
// documents, extracting the declared properties, and the read-only directory
// context used for on-disk consistency checks.
package skill

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/skillref/internal/frontmatter"
)

// FileName is the canonical name of the skill document inside a skill
// directory.
const FileName = "SKILL.md"

// Sentinel errors for property extraction.
var (
	// ErrMissingField indicates a required frontmatter field is absent.
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidField indicates a required field is present but not a
	// non-empty string.
	ErrInvalidField = errors.New("invalid field")
)

// Props holds the declared properties of a skill, trimmed of surrounding
// whitespace.
type Props struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	Description string `json:"description" yaml:"description" toml:"description"`
}

// Properties extracts the required name and description from parsed skill
// metadata. Unlike validation, which reports problems as data, Properties is
// strict: a missing or empty required field is an error, wrapping
// ErrMissingField or ErrInvalidField.
func Properties(meta *frontmatter.Metadata) (*Props, error) {
	if meta == nil {
		return nil, errors.New("metadata mapping is nil")
	}

	name, err := requiredString(meta, "name")
	if err != nil {
		return nil, err
	}
	description, err := requiredString(meta, "description")
	if err != nil {
		return nil, err
	}

	return &Props{Name: name, Description: description}, nil
}

func requiredString(meta *frontmatter.Metadata, key string) (string, error) {
	v, ok := meta.Get(key)
	if !ok {
		return "", errors.Wrapf(ErrMissingField, "frontmatter field %q", key)
	}
	if v.Kind() != frontmatter.KindString || strings.TrimSpace(v.String()) == "" {
		return "", errors.Wrapf(ErrInvalidField, "field %q must be a non-empty string", key)
	}
	return strings.TrimSpace(v.String()), nil
}
