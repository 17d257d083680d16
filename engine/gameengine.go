package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/setgame/deck"
	"github.com/minaorangina/setgame/game"
	"github.com/minaorangina/setgame/protocol"
)

const (
	// DefaultInitialDeal is the size of a fresh table
	DefaultInitialDeal = 12
	// DefaultTableSlots is how many cards a front end can show at once
	DefaultTableSlots = 24
	// dealMoreReserve is the deck size at or below which DealMore is refused
	dealMoreReserve = 3
)

var (
	ErrInvalidOpts    = errors.New("invalid game engine options")
	ErrCannotDealMore = errors.New("cannot deal more cards")
)

// GameEngine runs one game of Set on behalf of one front end.
// It is safe for concurrent use.
type GameEngine interface {
	ID() string
	Receive(msg protocol.InboundMessage) protocol.OutboundMessage
	Snapshot() protocol.OutboundMessage
}

type GameEngineOpts struct {
	GameID string
	// Game is an existing game. If nil, a new game is created and dealt.
	Game        *game.SetGame
	InitialDeal int
	TableSlots  int
}

type gameEngine struct {
	id          string
	initialDeal int
	tableSlots  int

	mu   sync.Mutex
	game *game.SetGame
}

// NewGameEngine constructs a GameEngine
func NewGameEngine(opts GameEngineOpts) (GameEngine, error) {
	if opts.InitialDeal < 0 || opts.TableSlots < 0 {
		return nil, fmt.Errorf("%w: initial deal %d, table slots %d", ErrInvalidOpts, opts.InitialDeal, opts.TableSlots)
	}
	if opts.GameID == "" {
		opts.GameID = NewID()
	}
	if opts.InitialDeal == 0 {
		opts.InitialDeal = DefaultInitialDeal
	}
	if opts.TableSlots == 0 {
		opts.TableSlots = DefaultTableSlots
	}

	ge := &gameEngine{
		id:          opts.GameID,
		initialDeal: opts.InitialDeal,
		tableSlots:  opts.TableSlots,
		game:        opts.Game,
	}

	if ge.game == nil {
		ge.game = game.NewSetGame(game.SetGameOpts{})
		ge.game.DealCards(ge.initialDeal)
	}

	return ge, nil
}

func (ge *gameEngine) ID() string {
	return ge.id
}

// Snapshot returns the current state of the game
func (ge *gameEngine) Snapshot() protocol.OutboundMessage {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	return ge.snapshot(protocol.State)
}

// Receive applies a player's command and returns the resulting state
func (ge *gameEngine) Receive(msg protocol.InboundMessage) protocol.OutboundMessage {
	ge.mu.Lock()
	defer ge.mu.Unlock()

	var (
		g     = ge.game
		dealt []deck.Card
		hint  []int
	)

	switch msg.Command {
	case protocol.Null, protocol.State:

	case protocol.Deal:
		amount := msg.Amount
		if amount <= 0 {
			amount = game.DefaultDealAmount
		}
		dealt = g.DealCards(amount)

	case protocol.Select:
		g.SelectCard(msg.Index)

	case protocol.RemoveMatched:
		g.RemoveMatchedCardsFromTable()

	case protocol.Reset:
		g.Reset()

	case protocol.NewGame:
		g.Reset()
		dealt = g.DealCards(ge.initialDeal)

	case protocol.DealMore:
		if !CanDealMore(g, ge.tableSlots) {
			return buildErrorMessage(ge.snapshot(msg.Command), ErrCannotDealMore)
		}
		if g.AwaitingRemoval() {
			g.RemoveMatchedCardsFromTable()
		}
		dealt = g.DealDefault()

	case protocol.Hint:
		hint = g.FindSet()

	default:
		err := fmt.Errorf("%w %s", protocol.ErrUnknownCommand, msg.Command)
		return buildErrorMessage(ge.snapshot(msg.Command), err)
	}

	out := ge.snapshot(msg.Command)
	if dealt != nil {
		out.Dealt = protocol.NewCardInfos(dealt)
	}
	out.Hint = hint

	return out
}

func (ge *gameEngine) snapshot(cmd protocol.Cmd) protocol.OutboundMessage {
	return buildSnapshot(ge.id, cmd, ge.game, ge.tableSlots)
}

// CanDealMore reports whether a front end showing at most maxSlots cards
// should offer to deal more: the deck must hold more than a spare trio,
// and there must be room on the table or a matched trio to clear away.
func CanDealMore(g *game.SetGame, maxSlots int) bool {
	if g.DeckCount() <= dealMoreReserve {
		return false
	}
	return len(g.TableCards()) < maxSlots || g.AwaitingRemoval()
}
