package game

import "github.com/minaorangina/setgame/deck"

// Slot is a position on the table. A slot whose card has been matched
// and removed stays in place as an empty slot.
type Slot struct {
	card    deck.Card
	present bool
}

// CardSlot returns a slot holding c
func CardSlot(c deck.Card) Slot {
	return Slot{card: c, present: true}
}

// Card returns the slot's card and whether there is one
func (s Slot) Card() (deck.Card, bool) {
	return s.card, s.present
}

// Empty reports whether the slot is a hole
func (s Slot) Empty() bool {
	return !s.present
}

func (s Slot) String() string {
	if !s.present {
		return "<empty>"
	}
	return s.card.String()
}
