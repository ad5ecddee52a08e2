package formatter

// Emphasis is the highlight class of a payload byte.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisA
	EmphasisB
	EmphasisC
)

// Payload offsets with a fixed meaning in the command layout.
const (
	EmphasisAOffset     = 2
	EmphasisBOffset     = 3
	EmphasisCFirstIndex = 35
	EmphasisCLastIndex  = 38
)

// EmphasisAt returns the emphasis class for the payload byte at the zero-based index idx.
func EmphasisAt(idx int) Emphasis {
	switch {
	case idx == EmphasisAOffset:
		return EmphasisA
	case idx == EmphasisBOffset:
		return EmphasisB
	case idx >= EmphasisCFirstIndex && idx <= EmphasisCLastIndex:
		return EmphasisC
	default:
		return EmphasisNone
	}
}

func (e Emphasis) String() string {
	switch e {
	case EmphasisA:
		return "A"
	case EmphasisB:
		return "B"
	case EmphasisC:
		return "C"
	default:
		return "none"
	}
}
