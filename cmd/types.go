package main

import (
	"context"

	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/shared"
	"github.com/urfave/cli/v3"
)

type categoryInfo struct {
	Code uint8  `json:"code"`
	Name string `json:"name"`
}

// Types prints every known command type with its action code, in prompt order.
func (r *Runner) Types(ctx context.Context, cmd *cli.Command) error {
	categories := commands.Categories()

	if cmd.Bool("json") {
		infos := make([]categoryInfo, len(categories))
		for i, c := range categories {
			infos[i] = categoryInfo{Code: c.Code(), Name: c.Name()}
		}
		return r.writeJSON(infos, true)
	}

	for _, c := range categories {
		if err := r.writePlain("0x%02X  %s\n", c.Code(), c.Name()); err != nil {
			return err
		}
	}
	return nil
}

// Init writes the example configuration to the given path.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		path = defaultConfigPath
	}

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("wrote configuration", "path", path)
	return r.writePlain("✓ Configuration written to %s\n", path)
}
