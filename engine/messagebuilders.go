package engine

import (
	"github.com/minaorangina/setgame/game"
	"github.com/minaorangina/setgame/protocol"
)

func buildSnapshot(gameID string, cmd protocol.Cmd, g *game.SetGame, tableSlots int) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		GameID:       gameID,
		Command:      cmd,
		Table:        buildTable(g),
		DeckCount:    g.DeckCount(),
		MatchedCount: g.MatchedDeckCount(),
		Matches:      g.Matches(),
		Score:        g.Score(),
		State:        g.State().String(),
		CanDealMore:  CanDealMore(g, tableSlots),
	}
}

func buildTable(g *game.SetGame) []*protocol.TableCard {
	table := []*protocol.TableCard{}
	for _, s := range g.TableCards() {
		c, ok := s.Card()
		if !ok {
			table = append(table, nil)
			continue
		}
		table = append(table, &protocol.TableCard{
			CardInfo: protocol.NewCardInfo(c),
			Selected: g.IsSelected(c),
			Matched:  g.IsMatched(c),
		})
	}
	return table
}

func buildErrorMessage(msg protocol.OutboundMessage, err error) protocol.OutboundMessage {
	msg.Command = protocol.Error
	msg.Error = err.Error()
	return msg
}
