// Package cli implements a command-line UI for the game.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	. "github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/term"
	"k8s.io/klog/v2"
)

// MaxParsingErrors in a row before ReadCommand gives up.
const MaxParsingErrors = 3

var errTooManyParsingErrors = errors.Errorf("failed to read command %d times", MaxParsingErrors)

// UI reads commands and prints the field of a game.
type UI struct {
	color, clearScreen bool
	reader             *bufio.Reader
	out                io.Writer

	// width of the terminal, used to center the field. If it returns <= 0, nothing is centered.
	width func() int
}

// New creates a UI that reads from the standard input and prints to the standard output.
func New(color, clearScreen bool) *UI {
	ui := NewWithIO(os.Stdin, os.Stdout, color)
	ui.clearScreen = clearScreen
	ui.width = func() int {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			return 0
		}
		return width
	}
	return ui
}

// NewWithIO creates a UI that reads commands from in and prints to out.
func NewWithIO(in io.Reader, out io.Writer, color bool) *UI {
	return &UI{
		color:  color,
		reader: bufio.NewReader(in),
		out:    out,
		width:  func() int { return 0 },
	}
}

func (ui *UI) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(ui.out, format, args...)
}

// Run the game until it is finished or the user quits. It returns the outcome of the game
// at that point. Reaching the end of the input is the same as quitting.
func (ui *UI) Run(game *Game) (Outcome, error) {
	for !game.IsFinished() {
		ui.Print(game)
		cmd, err := ui.ReadCommand()
		if errors.Is(err, errTooManyParsingErrors) {
			continue
		}
		if err == io.EOF {
			ui.printf("\n")
			return game.Outcome(), nil
		}
		if err != nil {
			return game.Outcome(), errors.WithMessage(err, "reading command")
		}
		if cmd.Type == CommandQuit {
			return game.Outcome(), nil
		}
		ui.Execute(game, cmd)
	}
	ui.Print(game)
	ui.PrintOutcome(game)
	return game.Outcome(), nil
}

// Execute one command on the game. Failures are reported to the user.
func (ui *UI) Execute(game *Game, cmd Command) {
	switch cmd.Type {
	case CommandNext:
		game.TakeTurn()
	case CommandDeploy:
		if err := game.Deploy(cmd.Ant, cmd.Location); err != nil {
			ui.printf("    * Can't deploy %s at %s: %v\n", cmd.Ant, cmd.Location, err)
		}
	case CommandRemove:
		if err := game.Remove(cmd.Location); err != nil {
			ui.printf("    * Can't remove ant at %s: %v\n", cmd.Location, err)
		}
	case CommandHelp:
		ui.PrintHelp()
	default:
		klog.Warningf("Command type %d not handled", cmd.Type)
	}
}

// ReadCommand reads the next command, asking again if it fails to parse it.
func (ui *UI) ReadCommand() (cmd Command, err error) {
	for range MaxParsingErrors {
		ui.printf("    command > ")
		var text string
		text, err = ui.reader.ReadString('\n')
		if err != nil && (err != io.EOF || text == "") {
			return
		}
		cmd, err = ParseCommand(text)
		if err == nil {
			return
		}
		ui.printf("    * %v\n", err)
	}
	err = errTooManyParsingErrors
	return
}

// PrintHelp lists the commands and the ants available.
func (ui *UI) PrintHelp() {
	var ants []string
	for _, kind := range Ants {
		ants = append(ants, kind.String())
	}
	ui.printf(`
  Commands:
    <ant> <tunnel>,<step>     Deploy an ant, e.g.: "Thrower 0,3"
    remove <tunnel>,<step>    Remove the ant at the location (the Queen can't be removed)
    <empty line> or next      Take a turn
    help                      This message
    quit                      Leave the game

  Ants: %s

`, strings.Join(ants, ", "))
}

// PrintOutcome prints a banner with the final outcome.
func (ui *UI) PrintOutcome(game *Game) {
	var msg string
	style := lipgloss.NewStyle().Padding(1, 2)
	switch game.Outcome() {
	case OutcomeWon:
		msg = "*** All bees are vanquished. You win! ***"
		if ui.color {
			style = style.Background(lipgloss.Color("10")).Foreground(lipgloss.Color("0"))
		}
	case OutcomeLost:
		msg = "*** The bees reached the Queen. You lose :( ***"
		if ui.color {
			style = style.Background(lipgloss.Color("9")).Foreground(lipgloss.Color("0"))
		}
	default:
		msg = fmt.Sprintf("Game interrupted at turn %d", game.Turn())
	}
	ui.printf("\n")
	ui.printCentered(style.Render(msg))
	ui.printf("\n")
}
