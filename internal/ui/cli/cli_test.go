package cli

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/janpfeifer/antsGo/internal/state"
	. "github.com/janpfeifer/antsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	for _, tc := range []struct {
		text string
		want Command
	}{
		{"", Command{Type: CommandNext}},
		{"  next ", Command{Type: CommandNext}},
		{"HELP", Command{Type: CommandHelp}},
		{"q", Command{Type: CommandQuit}},
		{"Thrower 0,3", Command{Type: CommandDeploy, Ant: "Thrower", Location: "0,3"}},
		{"wall 1, 2", Command{Type: CommandDeploy, Ant: "wall", Location: "1,2"}},
		{"Escort 0 5", Command{Type: CommandDeploy, Ant: "Escort", Location: "0,5"}},
		{"remove 0,4", Command{Type: CommandRemove, Location: "0,4"}},
		{"RM 2,7", Command{Type: CommandRemove, Location: "2,7"}},
	} {
		got, err := ParseCommand(tc.text)
		require.NoErrorf(t, err, "parsing %q", tc.text)
		assert.Equalf(t, tc.want, got, "parsing %q", tc.text)
	}

	for _, text := range []string{"Dragon 0,1", "Thrower", "Thrower 0,", "remove", "jump 3", "1,2"} {
		_, err := ParseCommand(text)
		assert.Errorf(t, err, "parsing %q", text)
	}
	_, err := ParseCommand("Dragon 0,1")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestRun(t *testing.T) {
	input := strings.Join([]string{
		"Thrower 0,3",
		"Dragon 0,1",
		"Wall 0,3",
		"remove 0,5",
		"",
		"next",
		"n",
		"help",
		"quit",
	}, "\n") + "\n"
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader(input), &out, false)
	game := NewTestGame()
	outcome, err := ui.Run(game)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOngoing, outcome)
	assert.Equal(t, 3, game.Turn())
	assert.Equal(t, 6, game.Colony().Food())

	text := out.String()
	assert.Contains(t, text, "Turn #3")
	assert.Contains(t, text, "Food: 6")
	assert.Contains(t, text, `"Dragon": unknown`)
	assert.Contains(t, text, "Can't deploy Wall at 0,3")
	assert.Contains(t, text, "Can't remove ant at 0,5")
	assert.Contains(t, text, "Commands:")
}

func TestRunToTheEnd(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader("Thrower 0,4\n\n\n\n"), &out, false)
	game := NewGame(NewTestColony(), NewHive(1).AddWave(0, 1))
	outcome, err := ui.Run(game)
	require.NoError(t, err)
	assert.Equal(t, OutcomeWon, outcome)
	assert.Equal(t, 2, game.Turn())
	assert.Contains(t, out.String(), "You win!")
}

func TestRunEndOfInput(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader("next"), &out, false)
	game := NewTestGame()
	outcome, err := ui.Run(game)
	require.NoError(t, err)
	assert.Equal(t, OutcomeOngoing, outcome)
	assert.Equal(t, 1, game.Turn())
}

func TestRenderField(t *testing.T) {
	c := NewColony(ColonyConfig{StartingFood: 10, TunnelCount: 2, TunnelLength: 8, MoatInterval: 3}, NewRand())
	PlaceAnt(t, c, Bodyguard, "0,1")
	PlaceAnt(t, c, Wall, "0,1")
	PlaceAnt(t, c, Scuba, "1,2")
	PlaceBee(t, c, "1,6", 3, 1)
	PlaceBee(t, c, "1,6", 3, 1)
	PlaceBee(t, c, "0,7", 3, 1)

	ui := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, false)
	field := ui.RenderField(c)
	assert.Contains(t, field, "Ant Queen")
	assert.Contains(t, field, "D(W)")
	assert.Contains(t, field, "~1,2~")
	assert.Contains(t, field, "~0,5~")
	assert.Contains(t, field, "Bx2")
	assert.Contains(t, field, "0,7")

	// One row of cells per tunnel, plus the origin line.
	lines := strings.Split(field, "\n")
	assert.Len(t, lines, 1+2*5)
}

func TestRenderStatus(t *testing.T) {
	ui := NewWithIO(strings.NewReader(""), &bytes.Buffer{}, false)
	game := NewTestGame()
	assert.Equal(t, "Food: 10    Bees on the field: 0    In the hive: 2    Next wave: 1 bees after turn 2",
		ui.RenderStatus(game))
	assert.Contains(t, ui.RenderAnts(game.Colony()), "Thrower[T]=4")
	assert.Contains(t, ui.RenderAnts(game.Colony()), "Queen[Q]=6")
}

func TestPrintCentered(t *testing.T) {
	var out bytes.Buffer
	ui := NewWithIO(strings.NewReader(""), &out, false)
	ui.width = func() int { return 10 }
	ui.printCentered("ab\ncdef")
	assert.Equal(t, "   ab\n   cdef\n", out.String())
}
