package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gridironlabs/keeper/internal/cli/output"
	"github.com/gridironlabs/keeper/internal/league"
	"github.com/spf13/cobra"
)

// NewRosterCommand creates the roster command.
func NewRosterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roster [team]",
		Short: "Show a team's drafted roster",
		Long: `Show the drafted roster for one team.

The team is matched by case-insensitive substring against team names.
Without an argument, an interactive prompt with team-name completion
is started.`,
		Example: `  # Show a roster by (partial) team name
  keeper roster "Waffle"

  # Browse rosters interactively
  keeper roster`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			if len(args) > 0 {
				return runRoster(ctx, args[0])
			}
			return runRosterPrompt(cmd, ctx)
		},
	}
}

func runRoster(ctx *CommandContext, query string) error {
	draft, err := ctx.Source.LoadDraft()
	if err != nil {
		return err
	}
	renderRoster(ctx.Renderer, draft, query)
	return nil
}

// runRosterPrompt loops on team queries until EOF or an empty exit.
func runRosterPrompt(cmd *cobra.Command, ctx *CommandContext) error {
	draft, err := ctx.Source.LoadDraft()
	if err != nil {
		return err
	}

	items := make([]readline.PrefixCompleterInterface, 0, len(draft.Teams))
	for _, t := range draft.Teams {
		items = append(items, readline.PcItem(t.Name))
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "team> ",
		AutoComplete:    readline.NewPrefixCompleter(items...),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to start prompt: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Enter a team name (tab completes), 'quit' to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}

		renderRoster(ctx.Renderer, draft, line)
	}
}

func renderRoster(r *output.Renderer, draft *league.Draft, query string) {
	teams := draft.FindTeams(query)
	switch {
	case len(teams) == 0:
		r.Printf("No team matching %q\n", query)
		return
	case len(teams) > 1:
		r.Printf("Multiple teams match %q:\n", query)
		for _, t := range teams {
			r.Detail(fmt.Sprintf("%s (%s)", t.Name, t.Manager))
		}
		return
	}

	team := teams[0]
	r.Header(1, fmt.Sprintf("%s (%s)", team.Name, team.Manager))

	picks := draft.PicksForTeam(team.ID)
	rows := make([][]string, 0, len(picks))
	for _, p := range picks {
		rows = append(rows, []string{
			output.FormatOptionalInt(p.Round),
			output.FormatOptionalInt(p.OverallPick),
			p.PlayerName,
			output.FormatBool(p.KeeperStatus),
		})
	}
	r.Table([]string{"Round", "Pick", "Player", "Keeper"}, rows)
}
