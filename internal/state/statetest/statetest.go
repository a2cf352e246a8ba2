// Package statetest provides helper functions to create tests using the game state.
package statetest

import (
	"math/rand/v2"
	"testing"

	. "github.com/janpfeifer/antsGo/internal/state"
)

// TestSeed used for the random number generator of test colonies.
const TestSeed = 42

// NewRand returns a deterministic random number generator.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(TestSeed, TestSeed))
}

// NewTestColony creates a colony with 10 food, one tunnel of length 8 and no water.
func NewTestColony() *Colony {
	return NewColony(ColonyConfig{StartingFood: 10, TunnelCount: 1, TunnelLength: 8}, NewRand())
}

// NewTestHive creates a hive of bees with armor 3, one bee arriving at turn 2 and another at turn 3.
func NewTestHive() *Hive {
	return NewHive(3).AddWave(2, 1).AddWave(3, 1)
}

// NewTestGame creates a game with NewTestColony and NewTestHive.
func NewTestGame() *Game {
	return NewGame(NewTestColony(), NewTestHive())
}

// MustSite returns the site at the given location ("tunnel,step"), failing the test if it doesn't exist.
func MustSite(t testing.TB, c *Colony, location string) SiteID {
	t.Helper()
	site, err := c.ParseLocation(location)
	if err != nil {
		t.Fatalf("invalid location %q: %+v", location, err)
	}
	return site
}

// PlaceBee creates a bee with the given armor and damage and places it at the given location.
func PlaceBee(t testing.TB, c *Colony, location string, armor, damage int) *Unit {
	t.Helper()
	bee := NewBee(armor, damage)
	if !bee.SetSite(c, MustSite(t, c, location)) {
		t.Fatalf("failed to place bee at %q", location)
	}
	return bee
}

// PlaceAnt creates an ant of the given kind and places it at the given location, without
// paying for it.
func PlaceAnt(t testing.TB, c *Colony, kind Kind, location string) *Unit {
	t.Helper()
	ant := c.NewDefender(kind)
	if !ant.SetSite(c, MustSite(t, c, location)) {
		t.Fatalf("failed to place %s at %q", kind, location)
	}
	return ant
}
