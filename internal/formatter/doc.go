// Package formatter renders raw replay commands as fixed-column, colourised text lines.
//
// A line has three parts:
//
//	<command type, padded to 35> <tick, right-aligned to 5>: <payload as hex>
//
// Payload bytes are coloured by position. Byte 2 and byte 3 each get their own accent, bytes 35 through 38 share a third
// accent, and every other byte uses the base colour. Those offsets line up with fixed fields of the game's command layout, so
// they are constants and not derived from the payload.
package formatter
