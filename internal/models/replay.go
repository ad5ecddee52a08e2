package models

// Replay is a decoded match.
type Replay struct {
	Version uint16   `json:"version"`
	MapName string   `json:"map"`
	Length  uint32   `json:"length"` // Length in ticks
	Players []Player `json:"players"`
}

// Player is a participant and the commands it issued, in issue order.
type Player struct {
	Name     string    `json:"name"`
	Faction  string    `json:"faction"`
	Team     int       `json:"team"`
	Commands []Command `json:"commands"`
}

// String returns the display name, which is what the player picker shows.
func (p Player) String() string {
	return p.Name
}

// Command is a single raw command record.
//
// Bytes is the undecoded payload; its layout is owned by the game and only a few fixed offsets are meaningful here.
type Command struct {
	Tick       uint32 `json:"tick"`
	ActionType uint8  `json:"action_type"`
	Bytes      []byte `json:"bytes"`
}
