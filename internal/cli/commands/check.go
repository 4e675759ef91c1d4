package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leapstack-labs/vocabclean/internal/cli/output"
	"github.com/leapstack-labs/vocabclean/internal/dataset"
	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/spf13/cobra"
)

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "check <row>",
		Short: "Classify a single row",
		Long: `Classify one pipe-delimited row and show which rule, if any, drops it.

The row is normalized to --width fields before the rules run, the same way
filter normalizes rows to the header width. A width of 0 leaves the row as is.`,
		Example: `  # An example sentence is kept
  vocabclean check '1|She is happy.|彼女は幸せです。'

  # A row whose translation is a grammar note is dropped
  vocabclean check '5|It expresses ability.|助動詞の用法です。'

  # Check against a four-column header
  vocabclean check '7|Run!|走れ！' --width 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(NewCommandContext(cmd), args[0], width)
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 0, "Header width to normalize the row to")

	return cmd
}

// CheckOutput is the JSON output structure for the check command.
type CheckOutput struct {
	Row      classify.Row      `json:"row"`
	Width    int               `json:"width"`
	Decision classify.Decision `json:"decision"`
}

func runCheck(c *CommandContext, line string, width int) error {
	row, err := parseRow(line)
	if err != nil {
		return err
	}

	d := classify.New(classify.DefaultConfig()).Classify(row, width)
	c.Logger.Debug("classified row",
		"fields", len(row),
		"verdict", d.Verdict.String(),
		"rule", d.RuleID)

	r := c.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(CheckOutput{Row: row, Width: width, Decision: d})
	case output.ModeMarkdown:
		r.Println("- " + output.FormatKeyValue("Verdict", d.Verdict))
		if d.Dropped() {
			r.Println("- " + output.FormatKeyValue("Rule", d.RuleID))
			r.Println("- " + output.FormatKeyValue("Reason", d.Reason))
		}
	default:
		if d.Dropped() {
			r.StatusLine("drop", "failed", d.RuleID+": "+d.Reason)
		} else {
			r.StatusLine("keep", "success", "no rule matched")
		}
	}
	return nil
}

// parseRow splits a single pipe-delimited line into fields.
func parseRow(line string) (classify.Row, error) {
	line = strings.TrimRight(line, "\r\n")
	row, err := dataset.NewReader(strings.NewReader(line)).ReadHeader()
	if errors.Is(err, dataset.ErrEmptyInput) {
		return nil, errors.New("row is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("invalid row: %w", err)
	}
	return row, nil
}
