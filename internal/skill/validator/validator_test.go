package validator

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/thoreinstein/skillref/internal/frontmatter"
	"github.com/thoreinstein/skillref/internal/skill"
)

func parseMeta(t *testing.T, doc string) *frontmatter.Metadata {
	t.Helper()
	meta, _, err := frontmatter.Parse(doc)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return meta
}

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want []string
	}{
		{
			name: "valid metadata",
			doc:  "---\nname: x\ndescription: y\n---\n",
			want: []string{},
		},
		{
			name: "empty metadata",
			doc:  "---\n---\n",
			want: []string{
				"missing required field: name",
				"missing required field: description",
			},
		},
		{
			name: "whitespace-only name",
			doc:  "---\nname: \"  \"\ndescription: x\n---\n",
			want: []string{"field 'name' must be a non-empty string"},
		},
		{
			name: "empty name value",
			doc:  "---\nname:\ndescription: x\n---\n",
			want: []string{"field 'name' must be a non-empty string"},
		},
		{
			name: "boolean name",
			doc:  "---\nname: true\ndescription: x\n---\n",
			want: []string{"field 'name' must be a non-empty string"},
		},
		{
			name: "numeric description",
			doc:  "---\nname: x\ndescription: 42\n---\n",
			want: []string{"field 'description' must be a non-empty string"},
		},
		{
			name: "missing description only",
			doc:  "---\nname: x\n---\n",
			want: []string{"missing required field: description"},
		},
		{
			name: "unknown keys are tolerated",
			doc:  "---\nname: x\ndescription: y\nlicense: MIT\nextra: stuff\n---\n",
			want: []string{},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := parseMeta(t, tt.doc)

			problems, err := v.Validate(meta, nil)
			if err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(problems, tt.want) {
				t.Errorf("Validate() = %v, want %v", problems, tt.want)
			}

			// Problem ordering must be stable across repeated calls.
			again, err := v.Validate(meta, nil)
			if err != nil {
				t.Fatalf("Validate() second call error: %v", err)
			}
			if !reflect.DeepEqual(problems, again) {
				t.Errorf("Validate() not deterministic: %v vs %v", problems, again)
			}
		})
	}
}

func TestValidator_NilMetadata(t *testing.T) {
	_, err := New().Validate(nil, nil)
	if err == nil {
		t.Fatal("Validate(nil, nil) expected structural error, got nil")
	}
}

func TestValidator_DirContext(t *testing.T) {
	newSkillDir := func(t *testing.T, name string) *skill.Dir {
		t.Helper()
		path := filepath.Join(t.TempDir(), name)
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatal(err)
		}
		content := "---\nname: " + name + "\ndescription: a skill\n---\nInstructions.\n"
		if err := os.WriteFile(filepath.Join(path, skill.FileName), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return skill.DirAt(path)
	}

	v := New()

	t.Run("matching directory", func(t *testing.T) {
		dir := newSkillDir(t, "my-skill")
		meta := parseMeta(t, "---\nname: my-skill\ndescription: a skill\n---\n")

		problems, err := v.Validate(meta, dir)
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if len(problems) != 0 {
			t.Errorf("Validate() = %v, want no problems", problems)
		}
	})

	t.Run("name does not match directory", func(t *testing.T) {
		dir := newSkillDir(t, "my-skill")
		meta := parseMeta(t, "---\nname: other-skill\ndescription: a skill\n---\n")

		problems, err := v.Validate(meta, dir)
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if len(problems) != 1 {
			t.Fatalf("Validate() = %v, want exactly one problem", problems)
		}
		if !strings.Contains(problems[0], "does not match directory name") {
			t.Errorf("unexpected problem: %q", problems[0])
		}
	})

	t.Run("missing SKILL.md", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "my-skill")
		if err := os.MkdirAll(path, 0755); err != nil {
			t.Fatal(err)
		}
		meta := parseMeta(t, "---\nname: my-skill\ndescription: a skill\n---\n")

		problems, err := v.Validate(meta, skill.DirAt(path))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if len(problems) != 1 || !strings.Contains(problems[0], skill.FileName) {
			t.Errorf("Validate() = %v, want one missing-SKILL.md problem", problems)
		}
	})

	t.Run("nonexistent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing")
		meta := parseMeta(t, "---\nname: missing\ndescription: a skill\n---\n")

		problems, err := v.Validate(meta, skill.DirAt(path))
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		// Both the existence and the SKILL.md checks fail independently.
		if len(problems) != 2 {
			t.Errorf("Validate() = %v, want two problems", problems)
		}
	})

	t.Run("nil dir skips directory checks", func(t *testing.T) {
		meta := parseMeta(t, "---\nname: anything\ndescription: a skill\n---\n")

		problems, err := v.Validate(meta, nil)
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		if len(problems) != 0 {
			t.Errorf("Validate() = %v, want no problems without context", problems)
		}
	})

	t.Run("schema problems combine with directory problems", func(t *testing.T) {
		dir := newSkillDir(t, "my-skill")
		meta := parseMeta(t, "---\nname: other-skill\n---\n")

		problems, err := v.Validate(meta, dir)
		if err != nil {
			t.Fatalf("Validate() error: %v", err)
		}
		want := []string{
			"missing required field: description",
			"skill name 'other-skill' does not match directory name 'my-skill'",
		}
		if !reflect.DeepEqual(problems, want) {
			t.Errorf("Validate() = %v, want %v", problems, want)
		}
	})
}
