package skill

import (
	"os"

	"github.com/cockroachdb/errors"

	"github.com/thoreinstein/skillref/internal/frontmatter"
)

// Load reads and parses the SKILL.md document inside dir. The body is
// returned verbatim, exactly as it follows the closing frontmatter delimiter.
func Load(dir *Dir) (*frontmatter.Metadata, string, error) {
	if dir == nil {
		return nil, "", errors.New("skill directory is nil")
	}
	return LoadFile(dir.SkillFile())
}

// LoadFile reads and parses a skill document from path.
func LoadFile(path string) (*frontmatter.Metadata, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "reading skill file %s", path)
	}

	meta, body, err := frontmatter.Parse(string(data))
	if err != nil {
		return nil, "", errors.Wrapf(err, "parsing skill file %s", path)
	}
	return meta, body, nil
}
