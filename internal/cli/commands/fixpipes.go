package commands

import (
	"fmt"

	"github.com/leapstack-labs/vocabclean/internal/cli/output"
	"github.com/leapstack-labs/vocabclean/internal/dataset"
	"github.com/spf13/cobra"
)

// NewFixPipesCommand creates the fix-pipes command.
func NewFixPipesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix-pipes [file]",
		Short: "Strip trailing delimiters from every line of a file",
		Long: `Strip trailing '|' characters from every line of a file, in place.

Spreadsheet exports often pad rows with empty trailing columns. This removes
them before filtering. The original file is copied to <file>.bak first unless
--no-backup is given. Line endings are preserved.`,
		Example: `  # Clean the default dataset
  vocabclean fix-pipes

  # Clean a specific file without keeping a backup
  vocabclean fix-pipes words.csv --no-backup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmdCtx := NewCommandContext(cmd)
			if len(args) > 0 {
				cmdCtx.Cfg.Input = args[0]
			}
			if err := cmdCtx.Cfg.ValidateInput(); err != nil {
				return err
			}
			path := cmdCtx.Cfg.Input
			return runFixPipes(cmdCtx, path)
		},
	}

	cmd.Flags().Bool("no-backup", false, "Do not save <file>.bak before rewriting")

	return cmd
}

func runFixPipes(c *CommandContext, path string) error {
	res, err := dataset.FixFile(path, c.Cfg.Backup)
	if err != nil {
		return err
	}
	c.Logger.Info("stripped trailing delimiters",
		"path", res.Path,
		"lines", res.Lines,
		"changed", res.Changed)

	r := c.Renderer
	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(res)
	case output.ModeMarkdown:
		r.Println(output.FormatHeader(1, "Fixed "+res.Path))
		r.Println("")
		r.Println("- " + output.FormatKeyValue("Lines", res.Lines))
		r.Println("- " + output.FormatKeyValue("Changed", res.Changed))
		if res.Backup != "" {
			r.Println("- " + output.FormatKeyValue("Backup", res.Backup))
		}
	default:
		r.Success(fmt.Sprintf("Stripped trailing delimiters from %d of %d lines in %s", res.Changed, res.Lines, res.Path))
		if res.Backup != "" {
			r.Muted("Backup: " + res.Backup)
		}
	}
	return nil
}
