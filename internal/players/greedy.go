package players

import (
	"github.com/janpfeifer/antsGo/internal/parameters"
	. "github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
)

func init() {
	RegisterModule("greedy", GreedyModule{})
	RegisterModule("idle", IdleModule{})
}

// GreedyModule creates Greedy players. Parameters:
//
//   - ant: kind deployed on dry sites, default "Thrower".
//   - water_ant: kind deployed on water sites, default "Scuba". It must be water safe.
//   - max_per_turn: max number of ants deployed per turn, default 1.
type GreedyModule struct{}

// Greedy deploys ants as soon as there is food, on the empty sites closest to the origin,
// visiting the tunnels in order.
type Greedy struct {
	ant, waterAnt Kind
	maxPerTurn    int
}

// NewPlayer implements Module.
func (GreedyModule) NewPlayer(params parameters.Params) (Player, error) {
	antName, err := parameters.PopParamOr(params, "ant", Thrower.String())
	if err != nil {
		return nil, err
	}
	waterName, err := parameters.PopParamOr(params, "water_ant", Scuba.String())
	if err != nil {
		return nil, err
	}
	g := &Greedy{}
	if g.maxPerTurn, err = parameters.PopParamOr(params, "max_per_turn", 1); err != nil {
		return nil, err
	}
	if g.ant, err = ParseKind(antName); err != nil {
		return nil, err
	}
	if g.waterAnt, err = ParseKind(waterName); err != nil {
		return nil, err
	}
	if !g.waterAnt.Stats().WaterSafe {
		return nil, errors.Errorf("water_ant=%s can't be placed on water", g.waterAnt)
	}
	if len(params) > 0 {
		return nil, errors.Errorf("unknown parameters for greedy player: %v", params)
	}
	return g, nil
}

// Play implements Player.
func (g *Greedy) Play(game *Game) (failed []error) {
	c := game.Colony()
	deployed := 0
	for tunnel := range c.NumTunnels() {
		for _, id := range c.Tunnel(tunnel) {
			if deployed >= g.maxPerTurn {
				return
			}
			site := c.Site(id)
			if site.Ant() != nil {
				continue
			}
			kind := g.ant
			if site.Water {
				kind = g.waterAnt
			}
			if kind.Stats().FoodCost > c.Food() {
				continue
			}
			if err := c.Deploy(id, c.NewDefender(kind)); err != nil {
				failed = append(failed, err)
				continue
			}
			deployed++
		}
	}
	return
}

// IdleModule creates players that never deploy anything.
type IdleModule struct{}

type idle struct{}

// NewPlayer implements Module.
func (IdleModule) NewPlayer(params parameters.Params) (Player, error) {
	if len(params) > 0 {
		return nil, errors.Errorf("idle player takes no parameters, got %v", params)
	}
	return idle{}, nil
}

func (idle) Play(*Game) []error { return nil }
