package protocol

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownCommand = errors.New("unknown command")

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	State
	Deal
	Select
	RemoveMatched
	Reset
	NewGame  // reset and deal a fresh table
	DealMore // clear away a matched trio, then deal
	Hint
	Error
)

var CmdNames = map[Cmd]string{
	Null:          "Null",
	State:         "State",
	Deal:          "Deal",
	Select:        "Select",
	RemoveMatched: "RemoveMatched",
	Reset:         "Reset",
	NewGame:       "NewGame",
	DealMore:      "DealMore",
	Hint:          "Hint",
	Error:         "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":          Null,
	"State":         State,
	"Deal":          Deal,
	"Select":        Select,
	"RemoveMatched": RemoveMatched,
	"Reset":         Reset,
	"NewGame":       NewGame,
	"DealMore":      DealMore,
	"Hint":          Hint,
	"Error":         Error,
}

func (c Cmd) String() string {
	if name, ok := CmdNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cmd(%d)", int(c))
}

// ParseCmd looks up a command by name
func ParseCmd(name string) (Cmd, error) {
	cmd, ok := NameToCmd[name]
	if !ok {
		return Null, fmt.Errorf("%w %q", ErrUnknownCommand, name)
	}
	return cmd, nil
}

func (c Cmd) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Cmd) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}

	cmd, err := ParseCmd(name)
	if err != nil {
		return err
	}
	*c = cmd
	return nil
}
