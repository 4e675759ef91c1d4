package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/leapstack-labs/vocabclean/internal/cli/config"
	"github.com/leapstack-labs/vocabclean/internal/cli/output"
	"github.com/leapstack-labs/vocabclean/internal/dataset"
	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/spf13/cobra"
)

// NewFilterCommand creates the filter command.
func NewFilterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filter [input]",
		Short: "Remove grammar-explanation rows from a dataset",
		Long: `Remove grammar-explanation rows from a pipe-delimited vocabulary dataset.

The header row is copied verbatim. Every other row is run through the ordered
rule set (see 'vocabclean rules'); rows no rule fires on are written to the
output, padded or truncated to the header width.

By default the input is read from vocabulary_data_all.csv and the result is
written to vocabulary_data.csv. With --in-place the input is rewritten after
a copy is saved to <input>.bak.`,
		Example: `  # Filter the default dataset
  vocabclean filter

  # Filter a specific file to a chosen output
  vocabclean filter words.csv --out clean.csv

  # Rewrite the file in place without a backup
  vocabclean filter words.csv --in-place --no-backup

  # List every dropped row and the rule that matched
  vocabclean filter --show-dropped`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if len(args) > 0 {
				cmdCtx.Cfg.Input = args[0]
			}
			if err := cmdCtx.Cfg.ValidateInput(); err != nil {
				return err
			}
			input := cmdCtx.Cfg.Input
			return runFilter(cmdCtx, input)
		},
	}

	cmd.Flags().StringP("out", "O", "", "Output file (default: vocabulary_data.csv)")
	cmd.Flags().Bool("in-place", false, "Rewrite the input file instead of writing a separate output")
	cmd.Flags().Bool("no-backup", false, "Do not save <input>.bak before an in-place rewrite")
	cmd.Flags().Bool("show-dropped", false, "List every dropped row")

	return cmd
}

// FilterOutput is the JSON output structure for a filter run.
type FilterOutput struct {
	RunID string `json:"run_id"`
	*dataset.Summary
}

func runFilter(c *CommandContext, input string) error {
	runID := uuid.NewString()
	logger := c.Logger.With(slog.String("run_id", runID))

	opts := dataset.FileOptions{
		Input:  input,
		Output: c.Cfg.OutputFile,
		Backup: c.Cfg.Backup,
	}
	if c.Cfg.InPlace {
		opts.Output = input
	}

	logger.Debug("starting filter",
		slog.String("input", opts.Input),
		slog.String("output", opts.Output),
		slog.Bool("in_place", opts.InPlace()),
		slog.Bool("backup", opts.Backup))

	sum, err := c.NewPipeline(logger).FilterFile(opts)
	switch {
	case errors.Is(err, dataset.ErrInputNotFound):
		return fmt.Errorf("%w\nHint: pass the dataset path as an argument or set input in %s", err, config.DefaultConfigName)
	case errors.Is(err, dataset.ErrEmptyInput):
		return fmt.Errorf("%s: %w", input, err)
	case err != nil:
		return fmt.Errorf("filter failed: %w", err)
	}

	r := c.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(FilterOutput{RunID: runID, Summary: sum})
	case output.ModeMarkdown:
		renderFilterMarkdown(r, sum)
	default:
		renderFilterText(r, sum)
	}

	if c.Cfg.ShowDropped && len(sum.DroppedRows) > 0 {
		r.Println("")
		r.Table([]string{"Line", "Rule", "ID", "Source", "Target"}, droppedRowsTable(sum.DroppedRows))
	}
	return nil
}

func renderFilterText(r *output.Renderer, sum *dataset.Summary) {
	r.Println("")
	r.Header(1, "Filtered "+sum.Input)
	r.Println("")
	r.KeyValue("Read", sum.Read)
	r.KeyValue("Dropped", sum.Dropped)
	r.KeyValue("Kept", sum.Kept)
	r.KeyValue("Output", sum.Output)
	if sum.Backup != "" {
		r.KeyValue("Backup", sum.Backup)
	}

	if sum.Dropped > 0 {
		r.Println("")
		r.Header(2, "Dropped by rule")
		for _, rc := range ruleCounts(sum.ByRule) {
			r.StatusLine(rc.id, "skipped", fmt.Sprintf("%s (%d)", rc.name, rc.count))
		}
	}

	r.Println("")
	r.Success(fmt.Sprintf("Wrote %d rows to %s", sum.Kept, sum.Output))
}

func renderFilterMarkdown(r *output.Renderer, sum *dataset.Summary) {
	r.Println(output.FormatHeader(1, "Filtered "+sum.Input))
	r.Println("")
	r.Println("- " + output.FormatKeyValue("Read", sum.Read))
	r.Println("- " + output.FormatKeyValue("Dropped", sum.Dropped))
	r.Println("- " + output.FormatKeyValue("Kept", sum.Kept))
	r.Println("- " + output.FormatKeyValue("Output", sum.Output))
	if sum.Backup != "" {
		r.Println("- " + output.FormatKeyValue("Backup", sum.Backup))
	}

	if sum.Dropped > 0 {
		r.Println("")
		r.Println(output.FormatHeader(2, "Dropped by rule"))
		r.Println("")
		for _, rc := range ruleCounts(sum.ByRule) {
			r.Printf("- **%s** %s: %d\n", rc.id, rc.name, rc.count)
		}
	}
}

type ruleCount struct {
	id    string
	name  string
	count int
}

// ruleCounts orders per-rule drop counts by rule evaluation order.
func ruleCounts(byRule map[string]int) []ruleCount {
	order := make(map[string]int)
	names := make(map[string]string)
	for _, info := range classify.Rules() {
		order[info.ID] = info.Order
		names[info.ID] = info.Name
	}

	counts := make([]ruleCount, 0, len(byRule))
	for id, n := range byRule {
		counts = append(counts, ruleCount{id: id, name: names[id], count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		return order[counts[i].id] < order[counts[j].id]
	})
	return counts
}

func droppedRowsTable(rows []dataset.DroppedRow) [][]string {
	out := make([][]string, 0, len(rows))
	for _, d := range rows {
		out = append(out, []string{
			strconv.Itoa(d.Line),
			d.RuleID,
			d.Row.Field(classify.FieldID),
			truncate(d.Row.Field(classify.FieldSource), 40),
			truncate(d.Row.Field(classify.FieldTarget), 40),
		})
	}
	return out
}

// truncate shortens s to at most maxRunes runes, marking the cut with "...".
func truncate(s string, maxRunes int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	return string(runes[:maxRunes-3]) + "..."
}
