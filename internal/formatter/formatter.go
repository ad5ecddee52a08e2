package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/models"
	"github.com/desertthunder/strafe/internal/shared"
	"github.com/muesli/termenv"
)

const (
	// NameColumnWidth is the width of the command type column, padding included.
	NameColumnWidth = 35
	// TickColumnWidth is the minimum width of the tick column. Longer ticks are never truncated.
	TickColumnWidth = 5
)

// Renderer turns commands into display lines.
type Renderer struct {
	palette Palette
}

// RendererOpts contains configuration options for creating a Renderer.
type RendererOpts struct {
	// Output is the writer lines are destined for. Defaults to [os.Stdout].
	Output io.Writer
	// Display holds the colours. Defaults to the embedded configuration.
	Display *shared.DisplayConfig
	// Profile overrides the colour profile. Without it, colour output uses [termenv.ANSI256] whether or not Output is a
	// terminal, unless NO_COLOR is set.
	Profile *termenv.Profile
}

// NewRenderer creates a Renderer. Colours are dropped entirely when the display config disables them or the environment
// asks for no colour.
func NewRenderer(opts RendererOpts) *Renderer {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Display == nil {
		opts.Display = &shared.DefaultConfig().Display
	}

	lr := lipgloss.NewRenderer(opts.Output)
	switch {
	case !opts.Display.Color:
		lr.SetColorProfile(termenv.Ascii)
	case opts.Profile != nil:
		lr.SetColorProfile(*opts.Profile)
	case termenv.EnvNoColor():
		lr.SetColorProfile(termenv.Ascii)
	default:
		lr.SetColorProfile(termenv.ANSI256)
	}

	return &Renderer{palette: NewPalette(lr, *opts.Display)}
}

// Render formats a single command as one line, without a trailing newline.
//
// It fails with [shared.ErrInvalidFormat] when the command type name does not fit the name column.
func (r *Renderer) Render(cmd models.Command) (string, error) {
	name := commands.Classify(cmd.ActionType).Name()
	padding, err := namePadding(name)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(r.palette.name.Render(name))
	b.WriteString(strings.Repeat(" ", padding))
	fmt.Fprintf(&b, " %*d: ", TickColumnWidth, cmd.Tick)

	for i, v := range cmd.Bytes {
		b.WriteString(r.palette.Style(EmphasisAt(i)).Render(fmt.Sprintf("%02X", v)))
		b.WriteByte(' ')
	}

	return b.String(), nil
}

// Write renders every command and writes one line per command to w, in order.
//
// It stops at the first rendering or write failure and returns the number of lines written.
func (r *Renderer) Write(w io.Writer, cmds []models.Command) (int, error) {
	for i, cmd := range cmds {
		line, err := r.Render(cmd)
		if err != nil {
			return i, fmt.Errorf("failed to render command at tick %d: %w", cmd.Tick, err)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return i, fmt.Errorf("failed to write output: %w", err)
		}
	}
	return len(cmds), nil
}

func namePadding(name string) (int, error) {
	n := utf8.RuneCountInString(name)
	if n >= NameColumnWidth {
		return 0, fmt.Errorf("%w: command type %q is %d characters, the column holds fewer than %d", shared.ErrInvalidFormat, name, n, NameColumnWidth)
	}
	return NameColumnWidth - n, nil
}
