// submodule cmd contains command definitions
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/strafe/internal/shared"
	"github.com/urfave/cli/v3"
)

const defaultConfigPath = "strafe.toml"

// app builds the root command. Running it with a replay path inspects that replay.
func (r *Runner) app() *cli.Command {
	return &cli.Command{
		Name:      "strafe",
		Usage:     "Inspect the raw commands of a CoH3 replay",
		Version:   "0.2.0",
		ArgsUsage: "<replay>",
		Writer:    r.output,
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "replay",
				UsageText: "Path to a CoH3 replay file",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file (defaults to ./" + defaultConfigPath + " when present)",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "Print plain text without colours",
			},
			&cli.StringFlag{
				Name:    "player",
				Aliases: []string{"p"},
				Usage:   "Player whose commands to show, skipping the player prompt",
			},
			&cli.StringSliceFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "Command type to show (repeatable), skipping the type prompt",
			},
		},
		Before:   r.before,
		Action:   r.Inspect,
		Commands: r.register(),
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){typesCommand, initCommand} {
		commands = append(commands, fn(r))
	}

	return commands
}

// before loads configuration and sets up logging for every command.
func (r *Runner) before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}

	if path != "" {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, fmt.Errorf("failed to load %s: %w", path, err)
		}
		r.config = config
	}

	level, err := r.config.Log.ParseLevel()
	if err != nil {
		return ctx, err
	}
	if cmd.Bool("verbose") {
		level = log.DebugLevel
	}
	shared.SetLogLevel(r.logger, level)
	r.logger = shared.WithLogger(r.logger, "run", shared.RunID())
	r.logger.Debug("configuration loaded", "path", path)

	return ctx, nil
}

// typesCommand lists the known command types
func typesCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "types",
		Usage: "List known command types and their action codes",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output JSON",
			},
		},
		Action: r.Types,
	}
}

// initCommand writes the example configuration
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Write an example configuration file",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:  "path",
				Value: defaultConfigPath,
			},
		},
		Action: r.Init,
	}
}
