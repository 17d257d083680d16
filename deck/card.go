package deck

import (
	"fmt"
	"strings"
)

// Number represents how many symbols are printed on a card
type Number int

const (
	One Number = iota
	Two
	Three
)

var numberNames = []string{"one", "two", "three"}

// Symbol represents the shape printed on a card
type Symbol int

const (
	Diamond Symbol = iota
	Squiggle
	Oval
)

var symbolNames = []string{"diamond", "squiggle", "oval"}

// Color represents the ink colour of a card
type Color int

const (
	Red Color = iota
	Green
	Purple
)

var colorNames = []string{"red", "green", "purple"}

// Shading represents how a card's symbols are filled in
type Shading int

const (
	Solid Shading = iota
	Striped
	Outlined
)

var shadingNames = []string{"solid", "striped", "outlined"}

// numFeatureValues is the number of values each feature can take
const numFeatureValues = 3

// Count returns the number of symbols the Number stands for
func (n Number) Count() int {
	return int(n) + 1
}

func (n Number) Valid() bool  { return n >= One && n <= Three }
func (s Symbol) Valid() bool  { return s >= Diamond && s <= Oval }
func (c Color) Valid() bool   { return c >= Red && c <= Purple }
func (s Shading) Valid() bool { return s >= Solid && s <= Outlined }

func (n Number) String() string  { return featureName(numberNames, int(n)) }
func (s Symbol) String() string  { return featureName(symbolNames, int(s)) }
func (c Color) String() string   { return featureName(colorNames, int(c)) }
func (s Shading) String() string { return featureName(shadingNames, int(s)) }

func featureName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("invalid(%d)", v)
	}
	return names[v]
}

// Card represents a single card in a Set deck.
// Cards are comparable and can be used as map keys.
type Card struct {
	Number  Number  `json:"number"`
	Symbol  Symbol  `json:"symbol"`
	Color   Color   `json:"color"`
	Shading Shading `json:"shading"`
}

// NewCard constructs a card
func NewCard(n Number, sym Symbol, c Color, sh Shading) Card {
	if !n.Valid() || !sym.Valid() || !c.Valid() || !sh.Valid() {
		panic(fmt.Sprintf("card features out of range: %d %d %d %d", n, sym, c, sh))
	}
	return Card{Number: n, Symbol: sym, Color: c, Shading: sh}
}

// Valid reports whether every feature holds one of its three values
func (c Card) Valid() bool {
	return c.Number.Valid() && c.Symbol.Valid() && c.Color.Valid() && c.Shading.Valid()
}

func (c Card) String() string {
	symbol := c.Symbol.String()
	if c.Number != One {
		symbol += "s"
	}
	return strings.Join([]string{c.Number.String(), c.Color.String(), c.Shading.String(), symbol}, " ")
}
