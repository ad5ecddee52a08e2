package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/formatter"
	"github.com/desertthunder/strafe/internal/models"
	"github.com/desertthunder/strafe/internal/replay"
	"github.com/desertthunder/strafe/internal/shared"
	"github.com/desertthunder/strafe/internal/ui"
)

// Prompter asks the operator which player and which command types to show.
type Prompter interface {
	SelectPlayer(ctx context.Context, players []models.Player) (models.Player, error)
	SelectCategories(ctx context.Context, categories []commands.Category) ([]commands.Category, error)
}

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config   *shared.Config
	decoder  replay.Decoder
	prompter Prompter
	logger   *log.Logger
	output   io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config   *shared.Config
	Decoder  replay.Decoder
	Prompter Prompter
	Logger   *log.Logger
	Output   io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Decoder == nil {
		opts.Decoder = replay.NewJSONDecoder()
	}
	if opts.Prompter == nil {
		opts.Prompter = ui.NewPrompter(ui.PrompterOpts{})
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:   opts.Config,
		decoder:  opts.Decoder,
		prompter: opts.Prompter,
		logger:   opts.Logger,
		output:   opts.Output,
	}
}

// renderer builds a [formatter.Renderer] from the display config. noColor forces plain output.
func (r *Runner) renderer(noColor bool) *formatter.Renderer {
	display := r.config.Display
	if noColor {
		display.Color = false
	}
	return formatter.NewRenderer(formatter.RendererOpts{Output: r.output, Display: &display})
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
