package commands

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/skill"
	"github.com/thoreinstein/skillref/pkg/fileutil"
)

// input is a skill document ready for the core pipeline.
type input struct {
	// content is the raw document text.
	content string
	// dir is the directory context, non-nil only when the document was
	// loaded from a skill directory.
	dir *skill.Dir
	// path is the display path, empty for stdin.
	path string
}

// readInput loads a skill document from arg: "-" reads stdin, a directory
// reads its SKILL.md with directory context, and anything else is read as a
// plain markdown file. The configured size limit is enforced here, before
// the document reaches the parser.
func readInput(arg string, stdin io.Reader) (*input, error) {
	limit := maxContentSize()

	if arg == "-" {
		data, err := fileutil.ReadAllWithLimit(stdin, limit)
		if err != nil {
			return nil, inputError(err, "reading stdin")
		}
		return &input{content: string(data)}, nil
	}

	path := arg
	if abs, err := filepath.Abs(arg); err == nil {
		path = abs
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, skillreferrors.NewUserError(errors.Wrapf(err, "reading %s", arg), "")
	}

	var dir *skill.Dir
	filePath := path
	if info.IsDir() {
		dir = skill.DirAt(path)
		filePath = dir.SkillFile()
	}

	data, err := fileutil.ReadFileWithLimit(filePath, limit)
	if err != nil {
		if dir != nil && errors.Is(err, os.ErrNotExist) {
			return nil, skillreferrors.NewUserError(err,
				"A skill directory must contain a "+skill.FileName+" file")
		}
		return nil, inputError(err, "reading "+filePath)
	}

	return &input{content: string(data), dir: dir, path: path}, nil
}

// inputError classifies a read failure: an oversized document is a user
// error carrying the size sentinel, anything else is a system error.
func inputError(err error, context string) error {
	if errors.Is(err, fileutil.ErrTooLarge) {
		return skillreferrors.NewUserError(
			errors.Wrap(errors.Mark(err, skillreferrors.ErrContentTooLarge), context),
			"Increase max_content_size in the skillref config to accept larger documents")
	}
	return skillreferrors.NewSystemError(errors.Wrap(err, context), "")
}
