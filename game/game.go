package game

import (
	"math/rand"

	"github.com/minaorangina/setgame/deck"
)

const (
	// DefaultDealAmount is the number of cards dealt when no amount is given
	DefaultDealAmount = 3
	// MatchReward is added to the score for every set found
	MatchReward = 3
	// MismatchPenalty is taken off the score for every wrong trio.
	// The score is not clamped and can go below zero.
	MismatchPenalty = 1
)

// SetGameOpts configures a new SetGame
type SetGameOpts struct {
	// Deck fixes the order of the first deck. Reset always builds a fresh one.
	Deck deck.Deck
	// Rand is used for every shuffle. Defaults to the math/rand global source.
	Rand *rand.Rand
}

// SetGame is a single-player game of Set.
// It is not safe for concurrent use.
type SetGame struct {
	deck        deck.Deck
	table       []Slot
	selected    []deck.Card
	matched     []deck.Card
	matchedDeck []deck.Card
	score       int
	state       SelectionState
	rand        *rand.Rand
}

// NewSetGame constructs a game with a shuffled deck and an empty table
func NewSetGame(opts SetGameOpts) *SetGame {
	g := &SetGame{rand: opts.Rand}
	g.Reset()

	if opts.Deck != nil {
		g.deck = append(deck.Deck{}, opts.Deck...)
	}

	return g
}

// Reset starts the game over with a freshly shuffled deck
func (g *SetGame) Reset() {
	d := deck.New()
	if g.rand != nil {
		d.ShuffleWith(g.rand)
	} else {
		d.Shuffle()
	}

	g.deck = d
	g.table = []Slot{}
	g.selected = []deck.Card{}
	g.matched = []deck.Card{}
	g.matchedDeck = []deck.Card{}
	g.score = 0
	g.state = Empty
}

// DealDefault deals DefaultDealAmount cards
func (g *SetGame) DealDefault() []deck.Card {
	return g.DealCards(DefaultDealAmount)
}

// DealCards moves up to amount cards from the deck to the table and
// returns them. Empty slots are filled first; the table only grows
// once there are no holes left.
func (g *SetGame) DealCards(amount int) []deck.Card {
	dealt := g.deck.Deal(amount)

	next := 0
	for _, c := range dealt {
		for next < len(g.table) && !g.table[next].Empty() {
			next++
		}
		if next < len(g.table) {
			g.table[next] = CardSlot(c)
		} else {
			g.table = append(g.table, CardSlot(c))
		}
		next++
	}

	return dealt
}

// SelectCard handles the player tapping the card at index.
// Taps on a missing or empty slot are ignored.
func (g *SetGame) SelectCard(index int) {
	if index < 0 || index >= len(g.table) {
		return
	}
	card, ok := g.table[index].Card()
	if !ok {
		return
	}

	if g.state.Evaluated() {
		// the trio just matched is on its way out
		if g.IsMatched(card) {
			return
		}
		g.clearEvaluated()
	}

	if i := indexOf(g.selected, card); i >= 0 {
		g.selected = append(g.selected[:i], g.selected[i+1:]...)
		g.state = selectionSize(len(g.selected))
		return
	}

	g.selected = append(g.selected, card)
	if len(g.selected) < setSize {
		g.state = Partial
		return
	}

	g.evaluate()
}

func (g *SetGame) evaluate() {
	if isSet(g.selected) {
		g.score += MatchReward
		g.matched = append([]deck.Card{}, g.selected...)
		g.matchedDeck = append(g.matchedDeck, g.selected...)
		g.state = Matched
		return
	}

	g.score -= MismatchPenalty
	g.matched = []deck.Card{}
	g.state = Mismatched
}

// clearEvaluated drops the scored trio. A matched trio also leaves the table.
func (g *SetGame) clearEvaluated() {
	if g.state == Matched {
		g.vacate(g.matched)
	}
	g.clearSelection()
}

// RemoveMatchedCardsFromTable turns the slots of the matched trio into
// holes and clears the selection.
func (g *SetGame) RemoveMatchedCardsFromTable() {
	g.vacate(g.matched)
	g.clearSelection()
}

func (g *SetGame) clearSelection() {
	g.selected = []deck.Card{}
	g.matched = []deck.Card{}
	g.state = Empty
}

func (g *SetGame) vacate(cards []deck.Card) {
	for _, c := range cards {
		for i, s := range g.table {
			if tc, ok := s.Card(); ok && tc == c {
				g.table[i] = Slot{}
				break
			}
		}
	}
}

// TableCards returns a copy of the table, holes included
func (g *SetGame) TableCards() []Slot {
	table := make([]Slot, len(g.table))
	copy(table, g.table)
	return table
}

// SelectedCards returns the selected cards in the order they were chosen
func (g *SetGame) SelectedCards() []deck.Card {
	return append([]deck.Card{}, g.selected...)
}

// MatchedCards returns the trio that has just been matched, if any
func (g *SetGame) MatchedCards() []deck.Card {
	return append([]deck.Card{}, g.matched...)
}

// MatchedDeck returns every card matched so far this game
func (g *SetGame) MatchedDeck() []deck.Card {
	return append([]deck.Card{}, g.matchedDeck...)
}

func (g *SetGame) IsSelected(c deck.Card) bool {
	return indexOf(g.selected, c) >= 0
}

func (g *SetGame) IsMatched(c deck.Card) bool {
	return indexOf(g.matched, c) >= 0
}

// AwaitingRemoval reports whether a matched trio is still on the table
func (g *SetGame) AwaitingRemoval() bool {
	return len(g.matched) > 0
}

func (g *SetGame) MatchedDeckCount() int {
	return len(g.matchedDeck)
}

// Matches returns the number of sets found
func (g *SetGame) Matches() int {
	return len(g.matchedDeck) / setSize
}

func (g *SetGame) DeckCount() int {
	return len(g.deck)
}

func (g *SetGame) Score() int {
	return g.score
}

func (g *SetGame) State() SelectionState {
	return g.state
}

func selectionSize(n int) SelectionState {
	if n == 0 {
		return Empty
	}
	return Partial
}

func indexOf(cards []deck.Card, target deck.Card) int {
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	return -1
}
