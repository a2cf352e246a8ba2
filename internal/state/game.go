package state

import (
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Outcome of the game so far.
type Outcome uint8

const (
	OutcomeOngoing Outcome = iota
	OutcomeWon
	OutcomeLost
)

//go:generate go tool enumer -type=Outcome -trimprefix=Outcome -values -text -json -yaml game.go

// Game drives a match between a Colony and a Hive, one turn at a time.
type Game struct {
	colony *Colony
	hive   *Hive
	turn   int
}

// NewGame creates a game at turn 0.
func NewGame(colony *Colony, hive *Hive) *Game {
	return &Game{colony: colony, hive: hive}
}

// Colony of the game.
func (g *Game) Colony() *Colony { return g.colony }

// Hive of the game.
func (g *Game) Hive() *Hive { return g.hive }

// Turn number, starting at 0.
func (g *Game) Turn() int { return g.turn }

// TakeTurn executes one turn: all ants act, then all bees act, then the wave scheduled for
// the current turn invades the colony, and finally the turn counter is incremented.
//
// Units that leave the field during the turn, before their own action, don't act.
func (g *Game) TakeTurn() {
	c := g.colony
	for _, ant := range c.AllDefenders() {
		if site := c.Site(ant.site); site == nil || site.ant != ant {
			continue
		}
		ant.Act(c)
	}
	for _, bee := range c.AllAttackers() {
		if !bee.OnField() {
			continue
		}
		bee.Act(c)
	}
	g.hive.Invade(c, g.turn)
	g.turn++
	klog.V(2).Infof("Turn %d finished: food=%d, %d bees on the field, %d in the hive",
		g.turn, c.Food(), len(c.AllAttackers()), len(g.hive.Bees()))
}

// Outcome returns OutcomeLost if there are bees where the Queen is (or at the origin),
// OutcomeWon if there are no bees left, neither on the field nor waiting in the hive, and
// otherwise OutcomeOngoing.
//
// The Queen's place is where she currently stands, even if she hasn't acted yet (e.g.
// while held by a Bodyguard), or otherwise the last place she reported.
func (g *Game) Outcome() Outcome {
	c := g.colony
	if c.LeaderIsUnderAttack() {
		return OutcomeLost
	}
	leaderSite := c.LeaderSite()
	if leader := c.Leader(); leader != nil && leader.OnField() {
		leaderSite = leader.Site()
	}
	if site := c.Site(leaderSite); site != nil && site.NumBees() > 0 {
		return OutcomeLost
	}
	if len(c.AllAttackers())+len(g.hive.Bees()) == 0 {
		return OutcomeWon
	}
	return OutcomeOngoing
}

// IsFinished returns whether the game was won or lost.
func (g *Game) IsFinished() bool {
	return g.Outcome() != OutcomeOngoing
}

// Deploy an ant of the given type (e.g.: "Thrower") at the given location ("tunnel,step").
// The error tells why the ant could not be deployed.
func (g *Game) Deploy(antType, location string) error {
	kind, err := ParseKind(antType)
	if err != nil {
		return err
	}
	site, err := g.colony.ParseLocation(location)
	if err != nil {
		return err
	}
	// Checked before creating the ant, so a Queen is not wasted for lack of food. If the
	// placement itself fails the Queen is still created, and she remains the colony's
	// leader, off the field: any later Queen is destroyed.
	if cost := kind.Stats().FoodCost; g.colony.Food() < cost {
		return errors.Wrapf(ErrInsufficientFood, "%s costs %d, colony has %d", kind, cost, g.colony.Food())
	}
	return g.colony.Deploy(site, g.colony.NewDefender(kind))
}

// DeployAnt is like Deploy, but simply reports whether the ant was deployed. Any failure,
// including malformed input, is reported as false.
func (g *Game) DeployAnt(antType, location string) bool {
	var err error
	if panicked := exceptions.TryCatch[error](func() { err = g.Deploy(antType, location) }); panicked != nil {
		err = panicked
	}
	if err != nil {
		klog.V(1).Infof("Failed to deploy %q at %q: %v", antType, location, err)
		return false
	}
	return true
}

// Remove the ant at the given location ("tunnel,step").
func (g *Game) Remove(location string) error {
	site, err := g.colony.ParseLocation(location)
	if err != nil {
		return err
	}
	return g.colony.Remove(site)
}

// RemoveAnt is like Remove, but simply reports whether an ant was removed.
func (g *Game) RemoveAnt(location string) bool {
	var err error
	if panicked := exceptions.TryCatch[error](func() { err = g.Remove(location) }); panicked != nil {
		err = panicked
	}
	if err != nil {
		klog.V(1).Infof("Failed to remove ant at %q: %v", location, err)
		return false
	}
	return true
}
