package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	skillreferrors "github.com/thoreinstein/skillref/internal/errors"
	"github.com/thoreinstein/skillref/internal/frontmatter"
	"github.com/thoreinstein/skillref/internal/report"
	"github.com/thoreinstein/skillref/internal/skill/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false,
		"output results as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a skill document",
	Long: `Validate a skill document against the skill schema.

The path may be a skill directory containing SKILL.md, a markdown file, or
"-" to read from stdin. When a directory is given, directory-dependent checks
run as well: the directory must exist, contain SKILL.md, and its name must
match the declared skill name. For file and stdin input those checks are
skipped.

A document that fails frontmatter parsing is reported as invalid with the
parse error as its single problem.

Exit codes:
  0 - Skill is valid
  1 - Skill is invalid or the input could not be read
  2 - System error`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	in, err := readInput(args[0], cmd.InOrStdin())
	if err != nil {
		return err
	}

	format := report.Format(outputFormatDefault())
	if validateJSON {
		format = report.FormatJSON
	}
	reporter := report.NewReporter(cmd.OutOrStdout(), format)

	meta, _, err := frontmatter.Parse(in.content)
	if err != nil {
		// A structurally malformed document is invalid, not a crash: the
		// parse error becomes the single reported problem.
		return finishValidate(reporter, report.NewResult(in.path, []string{err.Error()}))
	}

	problems, err := validator.New().Validate(meta, in.dir)
	if err != nil {
		return skillreferrors.NewSystemError(err, "")
	}

	slog.Debug("validated skill document",
		"path", in.path,
		"problems", len(problems))

	return finishValidate(reporter, report.NewResult(in.path, problems))
}

func finishValidate(reporter *report.Reporter, result *report.Result) error {
	if err := reporter.Report(result); err != nil {
		return skillreferrors.NewSystemError(err, "")
	}
	if !result.Valid {
		return skillreferrors.NewUserError(skillreferrors.ErrValidationFailed, "")
	}
	return nil
}
