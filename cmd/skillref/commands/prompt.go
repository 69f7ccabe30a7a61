package commands

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/frontmatter"
	"github.com/thoreinstein/skillref/internal/prompt"
	"github.com/thoreinstein/skillref/internal/skill"
)

var promptJSON bool

func init() {
	promptCmd.Flags().BoolVar(&promptJSON, "json", false,
		"wrap the prompt in a JSON object")
	rootCmd.AddCommand(promptCmd)
}

var promptCmd = &cobra.Command{
	Use:   "prompt <path>",
	Short: "Build the agent prompt block for a skill",
	Long: `Build the <available_skills> XML block that advertises a skill to
an agent.

The path may be a skill directory containing SKILL.md, a markdown file, or
"-" to read from stdin. The skill's location in the block is the absolute
directory path for directory input, and "memory" for file or stdin input.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrompt,
}

// promptResponse is the JSON output structure for --json.
type promptResponse struct {
	Prompt string `json:"prompt"`
}

func runPrompt(cmd *cobra.Command, args []string) error {
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

	location := prompt.LocationMemory
	if in.dir != nil {
		location = in.dir.Path()
	}
	block := prompt.Build(props.Name, props.Description, location)

	out := cmd.OutOrStdout()
	if promptJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(promptResponse{Prompt: block}); err != nil {
			return skillreferrors.NewSystemError(errors.Wrap(err, "encoding JSON"), "")
		}
		return nil
	}

	fmt.Fprintln(out, block)
	return nil
}
