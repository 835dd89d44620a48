package commands

import (
	"log/slog"

	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/gridironlabs/keeper/internal/config"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Source   *league.Source
	Renderer *output.Renderer
}

// NewCommandContext creates a CommandContext with the league source and
// renderer. Sources are read lazily, so no cleanup is needed.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := config.GetConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())

	src := league.NewSource(cfg.DraftPath(), cfg.RankingsPath(), logger)

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Source:   src,
		Renderer: r,
	}
}
