package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/vocabclean/internal/cli/output"
	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group  string // Filter by group
	Format string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List the classification rules",
		Long: `List the classification rules in evaluation order.

A row is dropped by the first rule that matches it; later rules are not
consulted. Rows with fewer than three fields are always kept.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  vocabclean rules

  # Show details for a specific rule
  vocabclean rules TG03

  # List the target-text rules only
  vocabclean rules --group target

  # Output as JSON
  vocabclean rules --format json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := NewCommandContext(cmd).Renderer
			if opts.Format != "" {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
			}
			if len(args) > 0 {
				return showRule(r, args[0])
			}
			return listRules(r, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Filter by group: exclusion, keyword, sentence, target")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, json, markdown")

	return cmd
}

// RulesJSONOutput is the JSON output structure for rules listing.
type RulesJSONOutput struct {
	Rules []classify.RuleInfo `json:"rules"`
	Count int                 `json:"count"`
}

func listRules(r *output.Renderer, opts *RulesOptions) error {
	rules := filterRulesByGroup(classify.Rules(), opts.Group)

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(RulesJSONOutput{Rules: rules, Count: len(rules)})
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Classification Rules"))
		r.Println("")
	default:
		r.Println("")
		r.Header(1, fmt.Sprintf("Classification Rules (%d)", len(rules)))
		r.Println("")
	}

	rows := make([][]string, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, []string{
			strconv.Itoa(rule.Order),
			rule.ID,
			rule.Name,
			groupTitle(rule.Group),
			rule.Description,
		})
	}
	r.Table([]string{"#", "ID", "Name", "Group", "Description"}, rows)

	if r.EffectiveMode() == output.ModeText {
		r.Println("")
		r.Muted("Use 'vocabclean rules <rule-id>' for a single rule")
	}
	return nil
}

func showRule(r *output.Renderer, ruleID string) error {
	rule, ok := classify.GetRuleByID(ruleID)
	if !ok {
		return fmt.Errorf("rule %q not found", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(rule)
	case output.ModeMarkdown:
		r.Printf("# %s - %s\n\n", rule.ID, rule.Name)
		r.Printf("**Order:** %d | **Group:** %s\n\n", rule.Order, groupTitle(rule.Group))
		r.Println(rule.Description)
	default:
		styles := r.Styles()
		r.Println("")
		r.Header(1, fmt.Sprintf("%s - %s", rule.ID, rule.Name))
		r.Println("")
		r.Printf("  %s: %d\n", styles.Bold.Render("Order"), rule.Order)
		r.Printf("  %s: %s\n", styles.Bold.Render("Group"), groupTitle(rule.Group))
		r.Println("")
		r.Println(styles.Bold.Render("Description"))
		r.Println("  " + rule.Description)
	}
	return nil
}

func filterRulesByGroup(rules []classify.RuleInfo, group string) []classify.RuleInfo {
	if group == "" {
		return rules
	}

	var filtered []classify.RuleInfo
	for _, r := range rules {
		if r.Group == group {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func groupTitle(group string) string {
	return cases.Title(language.English).String(group)
}
