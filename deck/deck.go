package deck

import (
	"math/rand"
	"time"
)

// NumCards is the size of a complete deck
const NumCards = numFeatureValues * numFeatureValues * numFeatureValues * numFeatureValues

func init() {
	rand.Seed(time.Now().UnixNano())
}

// Deck represents a deck of cards
type Deck []Card

// New creates an ordered deck holding one card per feature combination
func New() Deck {
	cards := make(Deck, 0, NumCards)
	for n := range numberNames {
		for sym := range symbolNames {
			for c := range colorNames {
				for sh := range shadingNames {
					cards = append(cards, NewCard(Number(n), Symbol(sym), Color(c), Shading(sh)))
				}
			}
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), d.swap)
}

// ShuffleWith shuffles the deck of cards using r as the source of randomness
func (d Deck) ShuffleWith(r *rand.Rand) {
	r.Shuffle(len(d), d.swap)
}

func (d Deck) swap(i, j int) {
	d[i], d[j] = d[j], d[i]
}

// Deal takes up to n cards from the top of the deck.
// If fewer than n remain, all of them are dealt.
func (d *Deck) Deal(n int) []Card {
	if n <= 0 || len(*d) == 0 {
		return []Card{}
	}
	if n > len(*d) {
		n = len(*d)
	}

	dealt := make([]Card, n)
	copy(dealt, (*d)[:n])
	*d = (*d)[n:]
	return dealt
}

// Contains reports whether the card is still in the deck
func (d Deck) Contains(card Card) bool {
	for _, c := range d {
		if c == card {
			return true
		}
	}
	return false
}
