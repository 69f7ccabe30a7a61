package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillref/internal/config"
	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
)

func TestReadInput_Stdin(t *testing.T) {
	in, err := readInput("-", strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", in.content)
	assert.Nil(t, in.dir)
	assert.Empty(t, in.path)
}

func TestReadInput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skill.md")
	require.NoError(t, os.WriteFile(path, []byte(validSkillDoc), 0644))

	in, err := readInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, validSkillDoc, in.content)
	assert.Nil(t, in.dir)
	assert.Equal(t, path, in.path)
}

func TestReadInput_Directory(t *testing.T) {
	path := writeSkillDir(t, "my-skill", validSkillDoc)

	in, err := readInput(path, nil)
	require.NoError(t, err)
	require.NotNil(t, in.dir)
	assert.Equal(t, "my-skill", in.dir.Name())
	assert.Equal(t, validSkillDoc, in.content)
}

func TestReadInput_DirectoryWithoutSkillFile(t *testing.T) {
	path := t.TempDir()

	_, err := readInput(path, nil)
	require.Error(t, err)

	var exitErr *skillreferrors.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Contains(t, exitErr.Suggestion, "SKILL.md")
}

func TestReadInput_SizeLimit(t *testing.T) {
	prev := cfg
	cfg = &config.Config{MaxContentSize: 16, OutputFormat: "text", LogFormat: "text"}
	t.Cleanup(func() { cfg = prev })

	t.Run("stdin over limit", func(t *testing.T) {
		_, err := readInput("-", strings.NewReader(strings.Repeat("x", 17)))
		require.Error(t, err)
		assert.True(t, errors.Is(err, skillreferrors.ErrContentTooLarge))
	})

	t.Run("file over limit", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.md")
		require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 17)), 0644))

		_, err := readInput(path, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, skillreferrors.ErrContentTooLarge))
	})

	t.Run("at limit is accepted", func(t *testing.T) {
		in, err := readInput("-", strings.NewReader(strings.Repeat("x", 16)))
		require.NoError(t, err)
		assert.Len(t, in.content, 16)
	})
}

func TestReadInput_MissingPath(t *testing.T) {
	_, err := readInput(filepath.Join(t.TempDir(), "absent"), nil)
	require.Error(t, err)
}
