package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/vocabclean/internal/cli"
	"github.com/leapstack-labs/vocabclean/internal/cli/config"
	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// workflow is the suggested order of commands for a fresh export.
const workflow = `# Drop empty trailing columns left by the spreadsheet export
vocabclean fix-pipes vocabulary_data_all.csv

# Write the rows that survive every rule to vocabulary_data.csv
vocabclean filter vocabulary_data_all.csv --show-dropped

# Ask why a single row would be dropped
vocabclean check '5|It expresses ability.|助動詞の用法です。'`

// generateCLIDocs writes index.md plus one page per documented command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	cmds := documentedCommands(root)

	if err := writeDoc(outDir, "index.md", cliIndex(root, cmds)); err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	for _, cmd := range cmds {
		if err := writeDoc(outDir, cmd.Name()+".md", commandPage(cmd)); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", cmd.Name(), err)
		}
	}
	return nil
}

// documentedCommands returns the user-facing subcommands of root.
func documentedCommands(root *cobra.Command) []*cobra.Command {
	var cmds []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" || cmd.Name() == "__complete" {
			continue
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

func writeDoc(outDir, name string, w *MarkdownWriter) error {
	if err := os.WriteFile(filepath.Join(outDir, name), w.Bytes(), 0600); err != nil {
		return err
	}
	log.Printf("  Generated %s", name)
	return nil
}

// cliIndex builds the CLI overview page.
func cliIndex(root *cobra.Command, cmds []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for vocabclean")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph("vocabclean removes grammar-explanation rows from pipe-delimited vocabulary datasets. " +
		"Each line of a dataset is one row; the first line is the header and fixes the row width.")

	w.Header(2, "Installation")
	w.CodeBlock("bash", "go install github.com/leapstack-labs/vocabclean/cmd/vocabclean@latest")

	w.Header(2, "Workflow")
	w.CodeBlock("bash", workflow)

	w.Header(2, "Commands")
	var rows [][]string
	for _, cmd := range cmds {
		rows = append(rows, []string{
			fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name()),
			cleanDescription(cmd.Short),
		})
	}
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global Options")
	w.Table(flagHeaders, flagRows(root.PersistentFlags()))

	w.Header(2, "Rules")
	w.Paragraph(fmt.Sprintf("%s drops a row on the first of these rules that matches. "+
		"See the [rule reference](/rules) for details.", InlineCode("filter")))
	var ruleRows [][]string
	for _, r := range classify.Rules() {
		ruleRows = append(ruleRows, []string{
			fmt.Sprintf("[%s](/rules#%s)", r.ID, r.ID),
			r.Group,
			cleanDescription(r.Description),
		})
	}
	w.Table([]string{"ID", "Group", "Matches"}, ruleRows)

	w.Header(2, "Environment Variables")
	w.Paragraph(fmt.Sprintf("Every configuration key can be set with a %s variable, either in the environment or in a %s file next to %s. "+
		"Flags override environment variables, which override the config file.",
		InlineCode(config.EnvPrefix+"<KEY>"), InlineCode(".env"), InlineCode(config.DefaultConfigName)))
	var envRows [][]string
	for _, f := range getConfigSchema() {
		envRows = append(envRows, []string{envName(f), f.Flag, f.Description})
	}
	w.Table([]string{"Variable", "Flag", "Description"}, envRows)

	w.Header(2, "Exit Codes")
	w.Paragraph("Every failure exits with status 1 and prints a single `Error:` line to stderr.")
	w.Table([]string{"Code", "Cause"}, [][]string{
		{InlineCode("0"), "The command completed; dropped rows are not an error"},
		{InlineCode("1"), "The input file does not exist"},
		{InlineCode("1"), "The input file has no header line"},
		{InlineCode("1"), fmt.Sprintf("No input is configured, or %s holds an invalid value", InlineCode(config.DefaultConfigName))},
	})

	return w
}

// commandPage builds the reference page for one command.
func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter(cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}

	w.Header(2, "Usage")
	use := cmd.UseLine()
	if !strings.HasPrefix(use, "vocabclean") {
		use = "vocabclean " + use
	}
	w.CodeBlock("bash", use)

	if cmd.HasLocalFlags() {
		w.Header(2, "Options")
		w.Table(flagHeaders, flagRows(cmd.LocalFlags()))

		if keys := configKeysFor(cmd.LocalFlags()); len(keys) > 0 {
			w.Header(2, "Configuration")
			w.Paragraph(fmt.Sprintf("These options can also be set in %s:", InlineCode(config.DefaultConfigName)))
			w.BulletList(keys)
		}
	}

	if cmd.HasInheritedFlags() {
		w.Header(2, "Global Options")
		w.Table(flagHeaders, flagRows(cmd.InheritedFlags()))
	}

	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", cleanExample(cmd.Example))
	}

	return w
}

var flagHeaders = []string{"Option", "Short", "Default", "Description"}

// flagRows renders the visible flags of fs, one row per flag.
func flagRows(fs *pflag.FlagSet) [][]string {
	var rows [][]string
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		short := ""
		if f.Shorthand != "" {
			short = "-" + f.Shorthand
		}
		def := f.DefValue
		if def != "" && f.Value.Type() != "bool" {
			def = InlineCode(def)
		}
		rows = append(rows, []string{InlineCode("--" + f.Name), short, def, cleanDescription(f.Usage)})
	})
	return rows
}

// configKeysFor lists the config keys the flags in fs override.
func configKeysFor(fs *pflag.FlagSet) []string {
	var keys []string
	for _, f := range getConfigSchema() {
		if !strings.HasPrefix(f.Flag, "--") || fs.Lookup(strings.TrimPrefix(f.Flag, "--")) == nil {
			continue
		}
		keys = append(keys, fmt.Sprintf("%s sets %s (%s)", InlineCode(f.Flag), InlineCode(f.Name), envName(f)))
	}
	return keys
}

func envName(f ConfigField) string {
	return InlineCode(config.EnvPrefix + strings.ToUpper(f.Name))
}

// cleanExample strips the indentation shared by every non-blank line.
func cleanExample(example string) string {
	lines := strings.Split(example, "\n")

	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if n := len(line) - len(trimmed); indent < 0 || n < indent {
			indent = n
		}
	}

	for i, line := range lines {
		if len(line) >= indent && indent > 0 {
			lines[i] = line[indent:]
		} else {
			lines[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
