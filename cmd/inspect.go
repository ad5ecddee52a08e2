package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/models"
	"github.com/desertthunder/strafe/internal/shared"
	"github.com/urfave/cli/v3"
)

// parseFailure is printed instead of command lines when the replay cannot be decoded.
type parseFailure struct {
	Error string `json:"error"`
}

var parseFailed = parseFailure{Error: "Parsing failed!"}

// Inspect decodes a replay, asks for a player and command types, and prints the matching commands.
//
// An unreadable file is an error. A file that reads but does not decode prints a JSON error line and succeeds.
func (r *Runner) Inspect(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("replay")
	if path == "" {
		return fmt.Errorf("%w: path to a replay file", shared.ErrMissingArgument)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read replay: %w", err)
	}

	decoded, err := r.decoder.Decode(data)
	if err != nil {
		if errors.Is(err, shared.ErrParseFailed) {
			r.logger.Debug("replay did not decode", "path", path, "err", err)
			return r.writeJSON(parseFailed, false)
		}
		return fmt.Errorf("failed to decode replay: %w", err)
	}

	r.logger.Debug("decoded replay", "map", decoded.MapName, "players", len(decoded.Players))

	player, err := r.selectPlayer(ctx, decoded.Players, cmd.String("player"))
	if err != nil {
		return err
	}

	selection, err := r.selectCategories(ctx, cmd.StringSlice("type"))
	if err != nil {
		return err
	}

	filtered := commands.Filter(player.Commands, selection)
	r.logger.Debug("filtered commands", "player", player.Name, "types", selection.Categories(), "kept", len(filtered), "total", len(player.Commands))

	if _, err := r.renderer(cmd.Bool("no-color")).Write(r.output, filtered); err != nil {
		return err
	}

	return nil
}

// selectPlayer prompts for a player unless name is set, in which case it is matched exactly and then ignoring case.
func (r *Runner) selectPlayer(ctx context.Context, players []models.Player, name string) (models.Player, error) {
	if name == "" {
		return r.prompter.SelectPlayer(ctx, players)
	}

	for _, p := range players {
		if p.Name == name {
			return p, nil
		}
	}
	for _, p := range players {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}

	return models.Player{}, fmt.Errorf("%w: %q", shared.ErrPlayerNotFound, name)
}

// selectCategories prompts for command types unless names are given on the command line.
func (r *Runner) selectCategories(ctx context.Context, names []string) (commands.Selection, error) {
	if len(names) == 0 {
		chosen, err := r.prompter.SelectCategories(ctx, commands.Categories())
		if err != nil {
			return nil, err
		}
		return commands.NewSelection(chosen...), nil
	}

	chosen := make([]commands.Category, 0, len(names))
	for _, name := range names {
		c, ok := commands.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q (see `strafe types`)", shared.ErrUnknownCategory, name)
		}
		chosen = append(chosen, c)
	}
	return commands.NewSelection(chosen...), nil
}
