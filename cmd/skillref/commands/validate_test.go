package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/report"
	"github.com/thoreinstein/skillref/internal/skill"
)

func newTestCmd(stdin string) (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{}
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	return cmd, buf
}

func writeSkillDir(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, skill.FileName), []byte(content), 0644))
	return path
}

const validSkillDoc = "---\nname: my-skill\ndescription: Does useful things\n---\n# Instructions\n"

func TestRunValidate_ValidDirectory(t *testing.T) {
	path := writeSkillDir(t, "my-skill", validSkillDoc)
	cmd, buf := newTestCmd("")

	err := runValidate(cmd, []string{path})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Skill is valid")
}

func TestRunValidate_DirectoryNameMismatch(t *testing.T) {
	path := writeSkillDir(t, "wrong-dir", validSkillDoc)
	cmd, buf := newTestCmd("")

	err := runValidate(cmd, []string{path})
	require.Error(t, err)
	assert.True(t, errors.Is(err, skillreferrors.ErrValidationFailed))
	assert.Contains(t, buf.String(), "does not match directory name")
}

func TestRunValidate_Stdin(t *testing.T) {
	cmd, buf := newTestCmd(validSkillDoc)

	err := runValidate(cmd, []string{"-"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Skill is valid")
}

func TestRunValidate_StdinMissingFields(t *testing.T) {
	cmd, buf := newTestCmd("---\n---\nbody")

	err := runValidate(cmd, []string{"-"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, skillreferrors.ErrValidationFailed))

	out := buf.String()
	assert.Contains(t, out, "missing required field: name")
	assert.Contains(t, out, "missing required field: description")
}

func TestRunValidate_ParseErrorIsReportedAsProblem(t *testing.T) {
	cmd, buf := newTestCmd("no frontmatter at all")

	err := runValidate(cmd, []string{"-"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, skillreferrors.ErrValidationFailed))
	assert.Contains(t, buf.String(), "missing opening frontmatter delimiter")
}

func TestRunValidate_JSONOutput(t *testing.T) {
	validateJSON = true
	defer func() { validateJSON = false }()

	path := writeSkillDir(t, "my-skill", validSkillDoc)
	cmd, buf := newTestCmd("")

	err := runValidate(cmd, []string{path})
	require.NoError(t, err)

	var result report.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.Equal(t, path, result.Path)
	assert.Nil(t, result.Problems)
}

func TestRunValidate_FileInputSkipsDirectoryChecks(t *testing.T) {
	// The file name does not match the declared skill name; without
	// directory context that must not be a problem.
	path := filepath.Join(t.TempDir(), "anything.md")
	require.NoError(t, os.WriteFile(path, []byte(validSkillDoc), 0644))
	cmd, buf := newTestCmd("")

	err := runValidate(cmd, []string{path})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Skill is valid")
}

func TestRunValidate_MissingPath(t *testing.T) {
	cmd, _ := newTestCmd("")

	err := runValidate(cmd, []string{filepath.Join(t.TempDir(), "absent.md")})
	require.Error(t, err)
	assert.False(t, errors.Is(err, skillreferrors.ErrValidationFailed))
}
