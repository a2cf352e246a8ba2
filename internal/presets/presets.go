// Package presets holds the named colonies and hives the game can be played with, and
// loads more of them, along with deployment plans, from YAML scenario files.
package presets

import (
	"slices"

	"github.com/janpfeifer/antsGo/internal/generics"
	"github.com/janpfeifer/antsGo/internal/parameters"
	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
)

// Deployment of an ant at the start of a turn.
type Deployment struct {
	Turn int    `yaml:"turn"`
	Ant  string `yaml:"ant"`
	At   string `yaml:"at"`
}

// Plan is a list of deployments, played in order of turns.
type Plan []Deployment

// Sorted returns a copy of the plan sorted by turn, keeping the order of deployments
// within the same turn.
func (p Plan) Sorted() Plan {
	sorted := slices.Clone(p)
	slices.SortStableFunc(sorted, func(a, b Deployment) int { return a.Turn - b.Turn })
	return sorted
}

// Validate checks that the plan only uses known ants and non-negative turns.
// Locations are only checked when the plan is played, since they depend on the colony.
func (p Plan) Validate() error {
	for ii, d := range p {
		if d.Turn < 0 {
			return errors.Errorf("deployment #%d: invalid turn %d", ii, d.Turn)
		}
		if _, err := state.ParseKind(d.Ant); err != nil {
			return errors.WithMessagef(err, "deployment #%d", ii)
		}
	}
	return nil
}

// Presets is a collection of named colonies, hives and plans.
type Presets struct {
	Colonies map[string]state.ColonyConfig `yaml:"colonies"`
	Hives    map[string]state.HiveConfig   `yaml:"hives"`
	Plans    map[string]Plan               `yaml:"plans"`
}

// oddTurnWaves returns one bee on each odd turn in [from, to).
func oddTurnWaves(from, to int) []state.Wave {
	var waves []state.Wave
	for turn := from; turn < to; turn += 2 {
		waves = append(waves, state.Wave{Turn: turn, Count: 1})
	}
	return waves
}

// New returns the built-in presets.
func New() *Presets {
	return &Presets{
		Colonies: map[string]state.ColonyConfig{
			"default": {StartingFood: 2, TunnelCount: 1, TunnelLength: 8},
			"test":    {StartingFood: 10, TunnelCount: 1, TunnelLength: 8},
			"full":    {StartingFood: 2, TunnelCount: 3, TunnelLength: 8},
			"wet":     {StartingFood: 2, TunnelCount: 3, TunnelLength: 8, MoatInterval: 3},
		},
		Hives: map[string]state.HiveConfig{
			"test": {Armor: 3, Waves: []state.Wave{{Turn: 2, Count: 1}, {Turn: 3, Count: 1}}},
			"full": {Armor: 3, Waves: slices.Concat(
				[]state.Wave{{Turn: 2, Count: 1}}, oddTurnWaves(3, 15), []state.Wave{{Turn: 15, Count: 8}})},
			"insane": {Armor: 4, Waves: slices.Concat(
				[]state.Wave{{Turn: 1, Count: 2}}, oddTurnWaves(3, 15), []state.Wave{{Turn: 15, Count: 20}})},
		},
		Plans: map[string]Plan{
			// Scripted scenario used for debugging: a bodyguard holds the line, then a
			// fire ant is placed right behind it.
			"debug": {
				{Turn: 0, Ant: "Bodyguard", At: "0,5"},
				{Turn: 5, Ant: "Fire", At: "0,4"},
			},
		},
	}
}

// ColonyNames returns the sorted names of the colonies available.
func (p *Presets) ColonyNames() []string { return slices.Collect(generics.SortedKeys(p.Colonies)) }

// HiveNames returns the sorted names of the hives available.
func (p *Presets) HiveNames() []string { return slices.Collect(generics.SortedKeys(p.Hives)) }

// PlanNames returns the sorted names of the plans available.
func (p *Presets) PlanNames() []string { return slices.Collect(generics.SortedKeys(p.Plans)) }

// Colony returns the configuration of the named colony.
func (p *Presets) Colony(name string) (state.ColonyConfig, error) {
	cfg, found := p.Colonies[name]
	if !found {
		return cfg, errors.Errorf("unknown colony %q, valid values are %q", name, p.ColonyNames())
	}
	return cfg, nil
}

// Hive returns the configuration of the named hive.
func (p *Presets) Hive(name string) (state.HiveConfig, error) {
	cfg, found := p.Hives[name]
	if !found {
		return cfg, errors.Errorf("unknown hive %q, valid values are %q", name, p.HiveNames())
	}
	return cfg, nil
}

// Plan returns the named deployment plan, sorted by turn.
func (p *Presets) Plan(name string) (Plan, error) {
	plan, found := p.Plans[name]
	if !found {
		return nil, errors.Errorf("unknown plan %q, valid values are %q", name, p.PlanNames())
	}
	return plan.Sorted(), nil
}

// ColonyWithParams returns the named colony with the overrides given in params, a
// "key=value,..." string (see parameters.ApplyToColony). The result is validated.
func (p *Presets) ColonyWithParams(name, params string) (state.ColonyConfig, error) {
	cfg, err := p.Colony(name)
	if err != nil {
		return cfg, err
	}
	if err = parameters.ApplyToColony(params, &cfg); err != nil {
		return cfg, err
	}
	return cfg, errors.WithMessagef(cfg.Validate(), "colony %q with params %q", name, params)
}

// HiveWithParams returns the named hive with the overrides given in params, a
// "key=value,..." string (see parameters.ApplyToHive). The result is validated.
func (p *Presets) HiveWithParams(name, params string) (state.HiveConfig, error) {
	cfg, err := p.Hive(name)
	if err != nil {
		return cfg, err
	}
	if err = parameters.ApplyToHive(params, &cfg); err != nil {
		return cfg, err
	}
	return cfg, errors.WithMessagef(cfg.Validate(), "hive %q with params %q", name, params)
}
