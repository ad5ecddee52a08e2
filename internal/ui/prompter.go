package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/models"
	"github.com/desertthunder/strafe/internal/shared"
)

// Prompter runs the interactive prompts on a terminal.
type Prompter struct {
	input  io.Reader
	output io.Writer
}

// PrompterOpts contains configuration options for creating a Prompter.
type PrompterOpts struct {
	Input  io.Reader // defaults to [os.Stdin]
	Output io.Writer // defaults to [os.Stderr]
}

// NewPrompter creates a new Prompter.
func NewPrompter(opts PrompterOpts) *Prompter {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Prompter{input: opts.Input, output: opts.Output}
}

// SelectPlayer asks for exactly one player.
func (p *Prompter) SelectPlayer(ctx context.Context, players []models.Player) (models.Player, error) {
	if len(players) == 0 {
		return models.Player{}, shared.ErrNoPlayers
	}

	final, err := p.run(ctx, newPickerModel(players))
	if err != nil {
		return models.Player{}, err
	}

	m, ok := final.(*pickerModel)
	if !ok || m.cancelled || m.chosen < 0 {
		return models.Player{}, fmt.Errorf("%w: no player selected", shared.ErrPromptCancelled)
	}
	return players[m.chosen], nil
}

// SelectCategories asks for zero or more command types, offered in the given order.
func (p *Prompter) SelectCategories(ctx context.Context, categories []commands.Category) ([]commands.Category, error) {
	final, err := p.run(ctx, newChecklistModel(categories))
	if err != nil {
		return nil, err
	}

	m, ok := final.(*checklistModel)
	if !ok || m.cancelled || !m.confirmed {
		return nil, fmt.Errorf("%w: no command types confirmed", shared.ErrPromptCancelled)
	}
	return m.selected(), nil
}

func (p *Prompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(model, tea.WithContext(ctx), tea.WithInput(p.input), tea.WithOutput(p.output))
	final, err := prog.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrPromptCancelled, err)
	}
	return final, nil
}
