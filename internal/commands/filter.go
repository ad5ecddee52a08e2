package commands

import "github.com/desertthunder/strafe/internal/models"

// Selection is a set of categories chosen by the operator. An empty selection means no filtering.
type Selection map[Category]struct{}

// NewSelection builds a selection from the given categories. Duplicates collapse.
func NewSelection(categories ...Category) Selection {
	s := make(Selection, len(categories))
	for _, c := range categories {
		s[c] = struct{}{}
	}
	return s
}

// Contains reports whether c is part of the selection.
func (s Selection) Contains(c Category) bool {
	_, ok := s[c]
	return ok
}

// Categories returns the selected categories in presentation order, followed by any fallback categories ordered by code.
func (s Selection) Categories() []Category {
	out := make([]Category, 0, len(s))
	for _, c := range Categories() {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	for code := 0; code <= 0xFF && len(out) < len(s); code++ {
		if c := Classify(uint8(code)); !c.Known() && s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

// Filter returns the commands whose action code classifies into the selection, in their original order.
//
// With an empty selection the input slice is returned as is. The input is never modified.
func Filter(cmds []models.Command, selected Selection) []models.Command {
	if len(selected) == 0 {
		return cmds
	}

	kept := make([]models.Command, 0, len(cmds))
	for _, cmd := range cmds {
		if selected.Contains(Classify(cmd.ActionType)) {
			kept = append(kept, cmd)
		}
	}
	return kept
}
