package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/setgame/protocol"
)

var (
	ErrUnknownInput = errors.New("unknown input")
	ErrInvalidSlot  = errors.New("invalid slot")
	errQuit         = errors.New("quit")
	errHelp         = errors.New("help")
)

// CLIPlayer plays a game in the terminal
type CLIPlayer struct {
	ge     GameEngine
	in     *bufio.Scanner
	out    io.Writer
	colour bool
}

// NewCLIPlayer constructs a CLIPlayer. colour turns on ANSI colours.
func NewCLIPlayer(ge GameEngine, in io.Reader, out io.Writer, colour bool) *CLIPlayer {
	return &CLIPlayer{
		ge:     ge,
		in:     bufio.NewScanner(in),
		out:    out,
		colour: colour,
	}
}

// Play reads commands until the player quits or the input ends
func (p *CLIPlayer) Play() error {
	SendText(p.out, welcomeText)
	last := p.ge.Snapshot()
	SendText(p.out, buildDisplayText(last, p.colour))

	for {
		SendText(p.out, promptText)
		if !p.in.Scan() {
			break
		}

		msgs, err := parseInput(p.in.Text())
		switch {
		case err == errQuit:
			SendText(p.out, goodbyeText, last.Score)
			return nil
		case err == errHelp:
			SendText(p.out, helpText)
			continue
		case err != nil:
			SendText(p.out, "%s\n", err.Error())
			continue
		}

		for _, m := range msgs {
			last = p.ge.Receive(m)
		}
		SendText(p.out, buildDisplayText(last, p.colour))
	}

	if err := p.in.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	SendText(p.out, goodbyeText, last.Score)
	return nil
}

// parseInput turns a line typed by the player into commands.
// Slots are numbered from 1 on screen.
func parseInput(line string) ([]protocol.InboundMessage, error) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return []protocol.InboundMessage{{Command: protocol.State}}, nil
	}

	args := fields[1:]
	switch fields[0] {
	case "q", "quit":
		return nil, errQuit
	case "?", "help":
		return nil, errHelp

	case "s", "select":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: choose at least one slot", ErrInvalidSlot)
		}
		msgs := []protocol.InboundMessage{}
		for _, a := range args {
			slot, err := strconv.Atoi(a)
			if err != nil || slot < 1 {
				return nil, fmt.Errorf("%w %q", ErrInvalidSlot, a)
			}
			msgs = append(msgs, protocol.InboundMessage{Command: protocol.Select, Index: slot - 1})
		}
		return msgs, nil

	case "d", "deal":
		msg := protocol.InboundMessage{Command: protocol.Deal}
		if len(args) > 0 {
			amount, err := strconv.Atoi(args[0])
			if err != nil || amount < 1 {
				return nil, fmt.Errorf("%w: cannot deal %q cards", ErrUnknownInput, args[0])
			}
			msg.Amount = amount
		}
		return []protocol.InboundMessage{msg}, nil

	case "m", "more":
		return []protocol.InboundMessage{{Command: protocol.DealMore}}, nil
	case "r", "remove":
		return []protocol.InboundMessage{{Command: protocol.RemoveMatched}}, nil
	case "h", "hint":
		return []protocol.InboundMessage{{Command: protocol.Hint}}, nil
	case "n", "new":
		return []protocol.InboundMessage{{Command: protocol.NewGame}}, nil
	}

	return nil, fmt.Errorf("%w %q, type ? for help", ErrUnknownInput, fields[0])
}
