// package testing contains shared testing utilities
package testing

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertthunder/strafe/internal/commands"
	"github.com/desertthunder/strafe/internal/models"
)

// MockPrompter is a test double for the interactive prompts that returns canned answers.
type MockPrompter struct {
	Player     int // index into the players passed to SelectPlayer
	Categories []commands.Category
	PlayerErr  error
	TypesErr   error

	PlayerCalls int
	TypesCalls  int
	Offered     []commands.Category
}

func (m *MockPrompter) SelectPlayer(ctx context.Context, players []models.Player) (models.Player, error) {
	m.PlayerCalls++
	if m.PlayerErr != nil {
		return models.Player{}, m.PlayerErr
	}
	return players[m.Player], nil
}

func (m *MockPrompter) SelectCategories(ctx context.Context, categories []commands.Category) ([]commands.Category, error) {
	m.TypesCalls++
	m.Offered = categories
	if m.TypesErr != nil {
		return nil, m.TypesErr
	}
	return m.Categories, nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// SampleReplay returns a two player replay. The first player issues a Move at tick 1 and an unmapped 0xFE command at tick 2.
func SampleReplay(t *testing.T) *models.Replay {
	t.Helper()
	move, ok := commands.Lookup("Move")
	if !ok {
		t.Fatal("Move category missing")
	}
	attack, ok := commands.Lookup("Attack")
	if !ok {
		t.Fatal("Attack category missing")
	}

	return &models.Replay{
		Version: 10612,
		MapName: "desert_village_2p",
		Length:  24000,
		Players: []models.Player{
			{
				Name:    "Alice",
				Faction: "americans",
				Team:    0,
				Commands: []models.Command{
					{Tick: 1, ActionType: move.Code(), Bytes: []byte{0x00, 0x01}},
					{Tick: 2, ActionType: 0xFE, Bytes: []byte{}},
				},
			},
			{
				Name:    "Bob",
				Faction: "germans",
				Team:    1,
				Commands: []models.Command{
					{Tick: 5, ActionType: attack.Code(), Bytes: []byte{0x0A}},
				},
			},
		},
	}
}

// WriteReplayFile encodes replay as JSON into a temporary directory and returns the path.
func WriteReplayFile(t *testing.T, replay *models.Replay) string {
	t.Helper()
	data, err := json.Marshal(replay)
	if err != nil {
		t.Fatalf("Failed to marshal replay: %v", err)
	}
	return WriteFile(t, "match.json", data)
}

// WriteFile writes data to name inside a temporary directory and returns the path.
func WriteFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
	return path
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
