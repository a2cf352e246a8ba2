package players

import (
	"testing"

	"github.com/janpfeifer/antsGo/internal/presets"
	. "github.com/janpfeifer/antsGo/internal/state"
	. "github.com/janpfeifer/antsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assert.Equal(t, []string{"greedy", "idle"}, Modules())

	player, err := New("greedy:ant=Wall,max_per_turn=2")
	require.NoError(t, err)
	assert.Equal(t, &Greedy{ant: Wall, waterAnt: Scuba, maxPerTurn: 2}, player)

	player, err = New("greedy")
	require.NoError(t, err)
	assert.Equal(t, &Greedy{ant: Thrower, waterAnt: Scuba, maxPerTurn: 1}, player)

	for _, config := range []string{"nope", "greedy:ant=Dragon", "greedy:water_ant=Thrower", "greedy:foo=1",
		"greedy:max_per_turn=many", "idle:x=1"} {
		_, err := New(config)
		assert.Errorf(t, err, "config %q", config)
	}
}

func TestGreedy(t *testing.T) {
	c := NewColony(ColonyConfig{StartingFood: 20, TunnelCount: 3, TunnelLength: 8, MoatInterval: 3}, NewRand())
	game := NewGame(c, NewTestHive())
	player, err := New("greedy:max_per_turn=3")
	require.NoError(t, err)

	assert.Empty(t, player.Play(game))
	kinds := func() []Kind {
		var kinds []Kind
		for _, ant := range c.AllDefenders() {
			kinds = append(kinds, ant.Kind())
		}
		return kinds
	}
	assert.Equal(t, []Kind{Thrower, Thrower, Scuba}, kinds())
	assert.Equal(t, 7, c.Food())
	assert.Equal(t, Scuba, c.Site(MustSite(t, c, "0,2")).Ant().Kind())

	// Only what the food allows.
	assert.Empty(t, player.Play(game))
	assert.Equal(t, []Kind{Thrower, Thrower, Scuba, Thrower}, kinds())
	assert.Equal(t, 3, c.Food())
	assert.Empty(t, player.Play(game))
	assert.Len(t, c.AllDefenders(), 4)
}

func TestIdle(t *testing.T) {
	game := NewTestGame()
	player, err := New("idle")
	require.NoError(t, err)
	assert.Empty(t, player.Play(game))
	assert.Empty(t, game.Colony().AllDefenders())
}

func TestPlanPlayer(t *testing.T) {
	game := NewTestGame()
	plan := presets.Plan{
		{Turn: 1, Ant: "Wall", At: "0,2"},
		{Turn: 0, Ant: "Thrower", At: "0,1"},
		{Turn: 1, Ant: "Thrower", At: "0,2"},
		{Turn: 3, Ant: "Dragon", At: "0,3"},
	}
	player := NewPlanPlayer(plan)
	assert.Equal(t, 4, player.Pending())

	assert.Empty(t, player.Play(game))
	assert.Equal(t, 3, player.Pending())
	assert.Empty(t, player.Play(game), "nothing new on the same turn")

	game.TakeTurn()
	failed := player.Play(game)
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0], ErrInsufficientFood)
	assert.Equal(t, Wall, game.Colony().Site(MustSite(t, game.Colony(), "0,2")).Ant().Kind())

	// Turns skipped are caught up.
	game.TakeTurn()
	game.TakeTurn()
	game.TakeTurn()
	failed = player.Play(game)
	require.Len(t, failed, 1)
	assert.ErrorIs(t, failed[0], ErrUnknownKind)
	assert.Equal(t, 0, player.Pending())
	assert.Equal(t, "Thrower", plan[1].Ant, "the plan given should not change")
}
