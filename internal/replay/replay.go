// package replay is the boundary between replay files and the rest of the program
//
// Decoding the game's binary container belongs to an external decoder. This package accepts the replay that decoder
// materialises as JSON and hands back [models.Replay]. Any failure is reported as [shared.ErrParseFailed] so callers can
// tell a bad replay apart from an unreadable file.
package replay

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/desertthunder/strafe/internal/models"
	"github.com/desertthunder/strafe/internal/shared"
)

// Decoder turns raw replay bytes into a [models.Replay].
type Decoder interface {
	Decode(data []byte) (*models.Replay, error)
}

// JSONDecoder decodes replays exported as JSON. Payload bytes are base64 encoded.
type JSONDecoder struct{}

var _ Decoder = JSONDecoder{}

// NewJSONDecoder returns a [JSONDecoder].
func NewJSONDecoder() JSONDecoder {
	return JSONDecoder{}
}

// Decode parses data. The document must be a single JSON object describing at least one player.
func (JSONDecoder) Decode(data []byte) (*models.Replay, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	var replay models.Replay
	if err := dec.Decode(&replay); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrParseFailed, err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after replay", shared.ErrParseFailed)
	}

	if len(replay.Players) == 0 {
		return nil, fmt.Errorf("%w: %w", shared.ErrParseFailed, shared.ErrNoPlayers)
	}

	for i, p := range replay.Players {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: player %d has no name", shared.ErrParseFailed, i)
		}
	}

	return &replay, nil
}
