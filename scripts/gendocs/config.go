package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/vocabclean/internal/cli/config"
)

// ConfigField represents a configuration field definition.
type ConfigField struct {
	Name        string
	Type        string
	Default     string
	Flag        string
	Description string
}

// getConfigSchema returns the configuration keys.
// Based on internal/cli/config/types.go.
func getConfigSchema() []ConfigField {
	return []ConfigField{
		{Name: "input", Type: "string", Default: config.DefaultInput, Flag: "[input] argument", Description: "Dataset to read"},
		{Name: "output_file", Type: "string", Default: config.DefaultOutputFile, Flag: "--out", Description: "File the filtered dataset is written to"},
		{Name: "in_place", Type: "bool", Default: "false", Flag: "--in-place", Description: "Rewrite the input instead of writing output_file"},
		{Name: "backup", Type: "bool", Default: "true", Flag: "--no-backup", Description: "Save <input>.bak before rewriting the input"},
		{Name: "show_dropped", Type: "bool", Default: "false", Flag: "--show-dropped", Description: "List every dropped row"},
		{Name: "output", Type: "string", Default: config.DefaultOutput, Flag: "--output", Description: "Output format: auto, text, markdown, json"},
		{Name: "verbose", Type: "bool", Default: "false", Flag: "--verbose", Description: "Enable debug logging"},
		{Name: "log_level", Type: "string", Default: config.DefaultLogLevel, Flag: "--log-level", Description: "Log level: debug, info, warn, error"},
	}
}

// generateConfigDocs generates the configuration reference page.
func generateConfigDocs(outDir string) error {
	log.Printf("Generating config docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()

	w.Frontmatter("Configuration", "vocabclean configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph(fmt.Sprintf("vocabclean reads %s from the working directory, or the file given with %s. "+
		"Relative paths in the file are resolved against its directory.",
		InlineCode(config.DefaultConfigName), InlineCode("--config")))

	w.Header(2, "Precedence")
	w.BulletList([]string{
		"Command-line flags",
		fmt.Sprintf("%s environment variables", InlineCode(config.EnvPrefix+"*")),
		fmt.Sprintf("%s file next to the config file", InlineCode(".env")),
		InlineCode(config.DefaultConfigName),
		"Built-in defaults",
	})

	w.Header(2, "Keys")
	headers := []string{"Key", "Type", "Default", "Flag", "Description"}
	var rows [][]string
	for _, f := range getConfigSchema() {
		rows = append(rows, []string{
			InlineCode(f.Name),
			f.Type,
			InlineCode(f.Default),
			f.Flag,
			f.Description,
		})
	}
	w.Table(headers, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `input: data/vocabulary_data_all.csv
output_file: data/vocabulary_data.csv
backup: true
output: markdown
log_level: info`)

	w.Paragraph("The classification lookup lists are built in; see the rule reference.")

	log.Printf("  Generated configuration.md")
	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
