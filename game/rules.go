package game

import "github.com/minaorangina/setgame/deck"

const setSize = 3

// IsSet reports whether three cards form a set: for every feature the
// cards are either all the same or all different.
func IsSet(a, b, c deck.Card) bool {
	return sameOrDistinct(int(a.Number), int(b.Number), int(c.Number)) &&
		sameOrDistinct(int(a.Symbol), int(b.Symbol), int(c.Symbol)) &&
		sameOrDistinct(int(a.Color), int(b.Color), int(c.Color)) &&
		sameOrDistinct(int(a.Shading), int(b.Shading), int(c.Shading))
}

func sameOrDistinct(a, b, c int) bool {
	if a == b {
		return b == c
	}
	return a != c && b != c
}

func isSet(cards []deck.Card) bool {
	if len(cards) != setSize {
		return false
	}
	return IsSet(cards[0], cards[1], cards[2])
}

// FindSet returns the table indices of the first set available on the
// table, or nil if there is none. Cards awaiting removal are ignored.
func (g *SetGame) FindSet() []int {
	var found []int
	g.eachSet(func(i, j, k int) bool {
		found = []int{i, j, k}
		return false
	})
	return found
}

// SetsOnTable counts the sets available on the table
func (g *SetGame) SetsOnTable() int {
	count := 0
	g.eachSet(func(i, j, k int) bool {
		count++
		return true
	})
	return count
}

// eachSet calls fn with the indices of every set on the table, in
// ascending order, until fn returns false.
func (g *SetGame) eachSet(fn func(i, j, k int) bool) {
	available := []int{}
	for i, s := range g.table {
		if c, ok := s.Card(); ok && !g.IsMatched(c) {
			available = append(available, i)
		}
	}

	for x := 0; x < len(available); x++ {
		for y := x + 1; y < len(available); y++ {
			for z := y + 1; z < len(available); z++ {
				i, j, k := available[x], available[y], available[z]
				if IsSet(g.table[i].card, g.table[j].card, g.table[k].card) {
					if !fn(i, j, k) {
						return
					}
				}
			}
		}
	}
}
