package shared

import "fmt"

var (
	// Replay errors
	ErrParseFailed = fmt.Errorf("parsing failed")
	ErrNoPlayers   = fmt.Errorf("replay has no players")

	// Selection errors
	ErrPromptCancelled = fmt.Errorf("prompt cancelled")
	ErrPlayerNotFound  = fmt.Errorf("player not found")
	ErrUnknownCategory = fmt.Errorf("unknown command type")

	// Rendering errors
	ErrInvalidFormat = fmt.Errorf("invalid format")

	// Configuration errors
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
)
