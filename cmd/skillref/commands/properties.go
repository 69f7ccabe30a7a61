package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/frontmatter"
	"github.com/thoreinstein/skillref/internal/skill"
)

var propertiesOutput string

func init() {
	propertiesCmd.Flags().StringVarP(&propertiesOutput, "output", "o", "text",
		"output format: text, json, yaml, toml")
	rootCmd.AddCommand(propertiesCmd)
}

var propertiesCmd = &cobra.Command{
	Use:   "properties <path>",
	Short: "Read the declared properties of a skill",
	Long: `Read the name and description a skill document declares in its
frontmatter.

The path may be a skill directory containing SKILL.md, a markdown file, or
"-" to read from stdin. Unlike validate, this command is strict: a document
whose frontmatter cannot be parsed, or whose required fields are missing or
empty, is an error.`,
	Args: cobra.ExactArgs(1),
	RunE: runProperties,
}

func runProperties(cmd *cobra.Command, args []string) error {
	in, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	meta, _, err := frontmatter.Parse(in.content)
	if err != nil {
		return skillreferrors.NewUserError(err, "")
	}

	props, err := skill.Properties(meta)
	if err != nil {
		return skillreferrors.NewUserError(err, "")
	}

	out := cmd.OutOrStdout()
	switch propertiesOutput {
	case "text":
		fmt.Fprintf(out, "Name:        %s\n", props.Name)
		fmt.Fprintf(out, "Description: %s\n", props.Description)
		return nil
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(props); err != nil {
			return skillreferrors.NewSystemError(errors.Wrap(err, "encoding JSON"), "")
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(props); err != nil {
			return skillreferrors.NewSystemError(errors.Wrap(err, "encoding YAML"), "")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case "toml":
		if err := toml.NewEncoder(out).Encode(props); err != nil {
			return skillreferrors.NewSystemError(errors.Wrap(err, "encoding TOML"), "")
		}
		return nil
	default:
		return skillreferrors.NewUserError(
			errors.Newf("unknown output format %q", propertiesOutput),
			"Valid formats: text, json, yaml, toml")
	}
}
