package commands

import (
	"log/slog"

	"github.com/leapstack-labs/vocabclean/internal/cli/config"
	"github.com/leapstack-labs/vocabclean/internal/cli/output"
	"github.com/leapstack-labs/vocabclean/internal/dataset"
	"github.com/leapstack-labs/vocabclean/pkg/classify"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext from the loaded configuration
// and the logger stored on the command.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	mode := output.Mode(cfg.OutputFormat)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   config.GetLogger(cmd.Context()),
		Renderer: output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode),
	}
}

// NewPipeline creates a dataset pipeline using the default lookup tables.
func (c *CommandContext) NewPipeline(logger *slog.Logger) *dataset.Pipeline {
	return dataset.NewPipeline(
		classify.New(classify.DefaultConfig()),
		dataset.WithLogger(logger),
		dataset.WithDroppedRows(c.Cfg.ShowDropped),
	)
}

// getConfig returns the current configuration.
// Commands run outside the root command (tests) get the defaults.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}
