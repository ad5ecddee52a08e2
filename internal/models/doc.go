// Package models defines the replay data materialised by the decoder.
//
// The types are read-only from the point of view of the rest of the program:
//   - [Replay] : Match metadata and the list of participants
//   - [Player] : One participant with its ordered command stream
//   - [Command] : One timestamped action with its raw payload
//
// Nothing in this package knows how a replay file is laid out on disk; see the replay package for that boundary.
package models
