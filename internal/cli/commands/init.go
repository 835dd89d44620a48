package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gridironlabs/keeper/internal/config"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new keeper league project",
		Long: `Initialize a new keeper league project with a starter configuration.

This creates:
  - league.yaml configuration file
  - data/ directory with an empty draft results file and a rankings
    CSV header ready to be filled in`,
		Example: `  # Initialize in current directory
  keeper init

  # Initialize in a new directory
  keeper init my-league

  # Force overwrite existing config
  keeper init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			ctx := NewCommandContext(cmd)
			return runInit(ctx, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(ctx *CommandContext, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "league.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("league.yaml already exists. Use --force to overwrite")
	}

	starter := map[string]any{
		"data_dir":      config.DefaultDataDir,
		"draft_file":    config.DefaultDraftFile,
		"rankings_file": config.DefaultRankingsFile,
		"port":          config.DefaultPort,
		"watch":         true,
	}
	raw, err := yaml.Marshal(starter)
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}
	if err := os.WriteFile(configPath, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	dataDir := filepath.Join(dir, config.DefaultDataDir)
	if err := os.MkdirAll(dataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	draftPath := filepath.Join(dataDir, config.DefaultDraftFile)
	if err := writeStarterDraft(draftPath, force); err != nil {
		return err
	}

	rankingsPath := filepath.Join(dataDir, config.DefaultRankingsFile)
	if err := writeStarterRankings(rankingsPath, force); err != nil {
		return err
	}

	r := ctx.Renderer
	r.Println("Created league.yaml")
	r.Println("Created " + filepath.Join(config.DefaultDataDir, config.DefaultDraftFile))
	r.Println("Created " + filepath.Join(config.DefaultDataDir, config.DefaultRankingsFile))
	r.Println("")
	r.Println("Keeper league initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  1. Fill in last season's draft results in " + config.DefaultDraftFile)
	r.Println("  2. Drop this season's expert rankings into " + config.DefaultRankingsFile)
	r.Println("  3. Run 'keeper analysis' or 'keeper serve'")

	return nil
}

func writeStarterDraft(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return nil
	}
	draft := league.Draft{
		Info: league.DraftInfo{
			TotalTeams:  league.LeagueSize,
			TotalRounds: 15,
			DraftType:   "snake",
		},
		Teams: []league.Team{},
		Picks: []league.DraftPick{},
	}
	raw, err := json.MarshalIndent(&draft, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to render draft skeleton: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func writeStarterRankings(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return nil
	}
	header := "RK,PLAYER NAME,TEAM,POS,BYE WEEK\n"
	if err := os.WriteFile(path, []byte(header), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
