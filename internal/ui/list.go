package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/models"
)

var (
	_ list.Item = playerItem{}
	_ list.Item = categoryItem{}
)

// playerItem wraps [models.Player] to implement [list.Item].
type playerItem struct {
	index  int
	player models.Player
}

func (i playerItem) FilterValue() string { return i.player.Name }
func (i playerItem) Title() string       { return i.player.String() }
func (i playerItem) Description() string {
	desc := fmt.Sprintf("%d commands", len(i.player.Commands))
	if i.player.Faction != "" {
		desc = fmt.Sprintf("%s • team %d • %s", i.player.Faction, i.player.Team, desc)
	}
	return desc
}

// categoryItem wraps [commands.Category] with its checked state to implement [list.Item].
type categoryItem struct {
	category commands.Category
	checked  bool
}

func (i categoryItem) FilterValue() string { return i.category.Name() }
func (i categoryItem) Title() string {
	if i.checked {
		return styles.checked.Render("[x] " + i.category.Name())
	}
	return "[ ] " + i.category.Name()
}
func (i categoryItem) Description() string { return fmt.Sprintf("0x%02X", i.category.Code()) }
