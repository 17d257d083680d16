package game

// SelectionState represents where the player is in building a trio
type SelectionState int

const (
	Empty SelectionState = iota
	Partial
	// Matched and Mismatched are reached as soon as a third card is
	// selected. The selection is cleared on the next valid tap.
	Matched
	Mismatched
)

var selectionStateNames = []string{"Empty", "Partial", "Matched", "Mismatched"}

func (s SelectionState) String() string {
	if s < Empty || s > Mismatched {
		return "Unknown"
	}
	return selectionStateNames[s]
}

// Evaluated reports whether a full trio has been scored
func (s SelectionState) Evaluated() bool {
	return s == Matched || s == Mismatched
}
