package protocol

import "github.com/minaorangina/setgame/deck"

// InboundMessage is a message from the player to the GameEngine
type InboundMessage struct {
	Command Cmd `json:"command"`
	// Index is the table slot for Select
	Index int `json:"index"`
	// Amount is the number of cards for Deal. Zero means the default.
	Amount int `json:"amount,omitempty"`
}

// OutboundMessage is everything a front end needs to draw the game
type OutboundMessage struct {
	GameID       string       `json:"gameID"`
	Command      Cmd          `json:"command"`
	Table        []*TableCard `json:"table"` // nil entries are empty slots
	Dealt        []CardInfo   `json:"dealt,omitempty"`
	DeckCount    int          `json:"deckCount"`
	MatchedCount int          `json:"matchedCount"`
	Matches      int          `json:"matches"`
	Score        int          `json:"score"`
	State        string       `json:"state"`
	CanDealMore  bool         `json:"canDealMore"`
	Hint         []int        `json:"hint,omitempty"`
	Error        string       `json:"error,omitempty"`
}

// CardInfo is the wire form of a card
type CardInfo struct {
	Count   int    `json:"count"`
	Symbol  string `json:"symbol"`
	Color   string `json:"color"`
	Shading string `json:"shading"`
}

// TableCard is a card on the table along with its highlighting
type TableCard struct {
	CardInfo
	Selected bool `json:"selected"`
	Matched  bool `json:"matched"`
}

func NewCardInfo(c deck.Card) CardInfo {
	return CardInfo{
		Count:   c.Number.Count(),
		Symbol:  c.Symbol.String(),
		Color:   c.Color.String(),
		Shading: c.Shading.String(),
	}
}

func NewCardInfos(cards []deck.Card) []CardInfo {
	infos := []CardInfo{}
	for _, c := range cards {
		infos = append(infos, NewCardInfo(c))
	}
	return infos
}
