package engine

import (
	"fmt"
	"io"
	"strings"

	"github.com/minaorangina/setgame/game"
	"github.com/minaorangina/setgame/protocol"
)

const (
	welcomeText  = "Let's play Set! Type ? for help.\n"
	promptText   = "\n> "
	helpText     = `Commands:
  s 1 5 9   select (or deselect) the cards in slots 1, 5 and 9
  d [n]     deal n more cards (3 if n is left out)
  m         clear away a matched set and deal 3 more
  r         clear away a matched set
  h         show a hint
  n         start a new game
  q         quit
`
	matchText    = "That's a set!\n"
	mismatchText = "Not a set.\n"
	emptySlot    = "-"
	goodbyeText  = "\nThanks for playing. Final score: %d\n"
)

const (
	ansiReset = "\x1b[0m"
	ansiFaint = "\x1b[2m"
)

var (
	filledGlyphs = map[string]string{"squiggle": "■", "diamond": "▲", "oval": "●"}
	hollowGlyphs = map[string]string{"squiggle": "□", "diamond": "△", "oval": "○"}
	ansiColors   = map[string]string{"red": "\x1b[31m", "green": "\x1b[32m", "purple": "\x1b[35m"}
)

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// buildGlyphs draws one glyph per symbol,
// hollow when outlined and faded when striped.
func buildGlyphs(c protocol.CardInfo, colour bool) string {
	glyphs := filledGlyphs
	if c.Shading == "outlined" {
		glyphs = hollowGlyphs
	}
	text := strings.Repeat(glyphs[c.Symbol], c.Count)

	if !colour {
		return text
	}
	prefix := ansiColors[c.Color]
	if c.Shading == "striped" {
		prefix += ansiFaint
	}
	return prefix + text + ansiReset
}

func buildCardName(c protocol.CardInfo) string {
	symbol := c.Symbol
	if c.Count > 1 {
		symbol += "s"
	}
	return fmt.Sprintf("%d %s %s %s", c.Count, c.Color, c.Shading, symbol)
}

func buildTableText(msg protocol.OutboundMessage, colour bool) string {
	var b strings.Builder
	for i, tc := range msg.Table {
		if tc == nil {
			fmt.Fprintf(&b, "%2d  %s\n", i+1, emptySlot)
			continue
		}

		marker := ""
		switch {
		case tc.Matched:
			marker = "  <- set"
		case tc.Selected:
			marker = "  <-"
		}
		// pad the glyphs by hand so colour codes do not skew the columns
		pad := strings.Repeat(" ", 3-tc.Count)
		fmt.Fprintf(&b, "%2d  %s%s  %s%s\n", i+1, buildGlyphs(tc.CardInfo, colour), pad, buildCardName(tc.CardInfo), marker)
	}
	return b.String()
}

func buildStatusText(msg protocol.OutboundMessage) string {
	return fmt.Sprintf("Score: %d   Matches: %d   Deck: %d\n", msg.Score, msg.Matches, msg.DeckCount)
}

func buildOutcomeText(msg protocol.OutboundMessage) string {
	switch {
	case msg.Error != "":
		return fmt.Sprintf("Sorry: %s\n", msg.Error)
	case msg.Command == protocol.Select && msg.State == game.Matched.String():
		return matchText
	case msg.Command == protocol.Select && msg.State == game.Mismatched.String():
		return mismatchText
	case msg.Command == protocol.Hint && len(msg.Hint) == 0:
		return "There is no set on the table. Try dealing more cards.\n"
	case msg.Command == protocol.Hint:
		return fmt.Sprintf("Try slot %d.\n", msg.Hint[0]+1)
	}
	return ""
}

func buildDisplayText(msg protocol.OutboundMessage, colour bool) string {
	return "\n" + buildTableText(msg, colour) + "\n" + buildOutcomeText(msg) + buildStatusText(msg)
}
