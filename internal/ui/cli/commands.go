package cli

import (
	"regexp"
	"strings"

	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
)

// CommandType enumerates the commands accepted by the UI.
type CommandType uint8

const (
	CommandNext CommandType = iota
	CommandDeploy
	CommandRemove
	CommandHelp
	CommandQuit
)

// Command read from the user.
type Command struct {
	Type CommandType

	// Ant type, for CommandDeploy.
	Ant string

	// Location "tunnel,step", for CommandDeploy and CommandRemove.
	Location string
}

var (
	locationPattern = `(-?\d+)\s*[\s,]\s*(-?\d+)`
	removeParser    = regexp.MustCompile(`^(?i:remove|rm)\s+` + locationPattern + `$`)
	deployParser    = regexp.MustCompile(`^([A-Za-z]+)\s+` + locationPattern + `$`)
)

// ParseCommand parses one line of input:
//
//   - "" or "next": take a turn.
//   - "<ant> <tunnel>,<step>": deploy an ant, e.g. "Thrower 0,3".
//   - "remove <tunnel>,<step>": remove the ant at the location.
//   - "help" and "quit".
func ParseCommand(text string) (Command, error) {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "", "n", "next":
		return Command{Type: CommandNext}, nil
	case "h", "?", "help":
		return Command{Type: CommandHelp}, nil
	case "q", "quit", "exit":
		return Command{Type: CommandQuit}, nil
	}
	if matches := removeParser.FindStringSubmatch(text); len(matches) == 3 {
		return Command{Type: CommandRemove, Location: matches[1] + "," + matches[2]}, nil
	}
	if matches := deployParser.FindStringSubmatch(text); len(matches) == 4 {
		if _, err := state.ParseKind(matches[1]); err != nil {
			return Command{}, err
		}
		return Command{Type: CommandDeploy, Ant: matches[1], Location: matches[2] + "," + matches[3]}, nil
	}
	return Command{}, errors.Errorf("failed to parse %q, type \"help\" for the list of commands", text)
}
