package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/vocabclean/internal/cli/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const configHeader = `# vocabclean configuration
#
# Relative paths are resolved against the directory of this file.
# Every key can be overridden with a VOCABCLEAN_<KEY> environment variable
# (also read from a .env file next to this one) or a command-line flag.

`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a default vocabclean.yaml",
		Long: `Write a vocabclean.yaml configuration file with the default settings.

The file lists the input and output paths, backup behaviour and output
options. Edit it to point at your dataset.`,
		Example: `  # Initialize in current directory
  vocabclean init

  # Initialize in another directory
  vocabclean init data/

  # Force overwrite existing config
  vocabclean init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			path, err := writeDefaultConfig(dir, force)
			if err != nil {
				return err
			}

			r := NewCommandContext(cmd).Renderer
			r.StatusLine(path, "success", "")
			r.Println("")
			r.Success("vocabclean initialized!")
			r.Println("")
			r.Println("Next steps:")
			r.Println("  1. Set input to your exported dataset")
			r.Println("  2. Run 'vocabclean fix-pipes' if rows end in stray delimiters")
			r.Println("  3. Run 'vocabclean filter' to write the cleaned dataset")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

// writeDefaultConfig writes the default configuration to dir and returns its path.
func writeDefaultConfig(dir string, force bool) (string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, config.DefaultConfigName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists. Use --force to overwrite", config.DefaultConfigName)
	}

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(config.Default()); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
