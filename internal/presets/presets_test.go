package presets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltIn(t *testing.T) {
	p := New()
	assert.Equal(t, []string{"default", "full", "test", "wet"}, p.ColonyNames())
	assert.Equal(t, []string{"full", "insane", "test"}, p.HiveNames())

	wet, err := p.Colony("wet")
	require.NoError(t, err)
	assert.Equal(t, state.ColonyConfig{StartingFood: 2, TunnelCount: 3, TunnelLength: 8, MoatInterval: 3}, wet)
	for _, name := range p.ColonyNames() {
		cfg, _ := p.Colony(name)
		assert.NoErrorf(t, cfg.Validate(), "colony %q", name)
	}

	full, err := p.Hive("full")
	require.NoError(t, err)
	h := state.NewHiveFromConfig(full)
	assert.Len(t, h.Bees(), 1+6+8)
	assert.Equal(t, state.Wave{Turn: 13, Count: 1}, h.Waves()[6])
	assert.Equal(t, state.Wave{Turn: 15, Count: 8}, h.Waves()[7])

	insane, err := p.Hive("insane")
	require.NoError(t, err)
	assert.Equal(t, 4, insane.Armor)
	assert.Len(t, state.NewHiveFromConfig(insane).Bees(), 2+6+20)

	_, err = p.Colony("nope")
	assert.Error(t, err)
	_, err = p.Hive("nope")
	assert.Error(t, err)
	_, err = p.Plan("nope")
	assert.Error(t, err)
}

func TestPlanSorted(t *testing.T) {
	plan := Plan{
		{Turn: 3, Ant: "Wall", At: "0,1"},
		{Turn: 0, Ant: "Thrower", At: "0,2"},
		{Turn: 3, Ant: "Fire", At: "0,3"},
	}
	assert.Equal(t, Plan{plan[1], plan[0], plan[2]}, plan.Sorted())
	assert.Equal(t, 3, plan[0].Turn, "Sorted should not change the original plan")
	assert.NoError(t, plan.Validate())
	assert.Error(t, Plan{{Turn: 0, Ant: "Dragon", At: "0,1"}}.Validate())
	assert.Error(t, Plan{{Turn: -1, Ant: "Wall", At: "0,1"}}.Validate())
}

const scenarioYAML = `
colonies:
  narrow: {food: 8, tunnels: 1, length: 5}
  test: {food: 20, tunnels: 2, length: 8}
hives:
  swarm:
    armor: 2
    damage: 2
    waves: [{turn: 1, bees: 3}, {turn: 4, bees: 6}]
plans:
  throwers:
    - {turn: 2, ant: Wall, at: "0,4"}
    - {turn: 0, ant: Thrower, at: "0,2"}
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(scenarioYAML), 0o644))
	p := New()
	require.NoError(t, p.Load(path))

	narrow, err := p.Colony("narrow")
	require.NoError(t, err)
	assert.Equal(t, state.ColonyConfig{StartingFood: 8, TunnelCount: 1, TunnelLength: 5}, narrow)
	test, _ := p.Colony("test")
	assert.Equal(t, 20, test.StartingFood, "scenario should replace the built-in preset")

	swarm, err := p.Hive("swarm")
	require.NoError(t, err)
	assert.Equal(t, state.HiveConfig{Armor: 2, Damage: 2, Waves: []state.Wave{{Turn: 1, Count: 3}, {Turn: 4, Count: 6}}}, swarm)

	plan, err := p.Plan("throwers")
	require.NoError(t, err)
	assert.Equal(t, Plan{{Turn: 0, Ant: "Thrower", At: "0,2"}, {Turn: 2, Ant: "Wall", At: "0,4"}}, plan)

	assert.Error(t, p.Load(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestParseInvalid(t *testing.T) {
	for _, data := range []string{
		"colonies: [1, 2]",
		"colonies:\n  bad: {food: 1, tunnels: 0, length: 8}",
		"hives:\n  bad: {armor: 0}",
		"plans:\n  bad: [{turn: 0, ant: Dragon, at: \"0,1\"}]",
	} {
		p := New()
		assert.Errorf(t, p.Parse([]byte(data)), "scenario %q", data)
		assert.Equal(t, New(), p, "presets should be unchanged on error")
	}
}

func TestWithParams(t *testing.T) {
	p := New()
	colony, err := p.ColonyWithParams("full", "food=12, moat=2")
	require.NoError(t, err)
	assert.Equal(t, state.ColonyConfig{StartingFood: 12, TunnelCount: 3, TunnelLength: 8, MoatInterval: 2}, colony)
	original, _ := p.Colony("full")
	assert.Equal(t, 2, original.StartingFood, "preset should not change")

	_, err = p.ColonyWithParams("full", "length=9")
	assert.Error(t, err)
	_, err = p.ColonyWithParams("full", "color=blue")
	assert.Error(t, err)

	hive, err := p.HiveWithParams("test", "armor=5,waves=1:4")
	require.NoError(t, err)
	assert.Equal(t, state.HiveConfig{Armor: 5, Waves: []state.Wave{{Turn: 1, Count: 4}}}, hive)
	_, err = p.HiveWithParams("test", "armor=0")
	assert.Error(t, err)
	_, err = p.HiveWithParams("nope", "")
	assert.Error(t, err)
}
