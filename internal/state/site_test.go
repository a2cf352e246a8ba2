package state_test

import (
	"math/rand/v2"
	"testing"

	. "github.com/janpfeifer/antsGo/internal/state"
	. "github.com/janpfeifer/antsGo/internal/state/statetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteInsertion(t *testing.T) {
	c := NewTestColony()
	siteID := MustSite(t, c, "0,1")
	site := c.Site(siteID)

	// Bees are always accepted, in any number.
	PlaceBee(t, c, "0,1", 3, 1)
	PlaceBee(t, c, "0,1", 3, 1)
	assert.Equal(t, 2, site.NumBees())

	// First ant takes the empty slot.
	thrower := PlaceAnt(t, c, Thrower, "0,1")
	assert.Same(t, thrower, site.Ant())

	// Two non-container ants can't share a site.
	wall := c.NewDefender(Wall)
	assert.False(t, wall.SetSite(c, siteID))
	assert.Equal(t, NoSite, wall.Site())
	assert.Same(t, thrower, site.Ant())

	// A container arriving takes the slot and holds the previous ant.
	bodyguard := c.NewDefender(Bodyguard)
	require.True(t, bodyguard.SetSite(c, siteID))
	assert.Same(t, bodyguard, site.Ant())
	assert.Same(t, thrower, bodyguard.Contained())
	assert.True(t, thrower.Nested())
	assert.Equal(t, siteID, thrower.Site())
	assert.Equal(t, siteID, bodyguard.Site())

	// A full container can't hold a second ant.
	assert.False(t, wall.SetSite(c, siteID))
	assert.Nil(t, wall.Contained())

	// Containers don't nest.
	bodyguard2 := c.NewDefender(Bodyguard)
	assert.False(t, bodyguard2.SetSite(c, siteID))
}

func TestSiteNestingIntoContainer(t *testing.T) {
	c := NewTestColony()
	site := c.Site(MustSite(t, c, "0,4"))
	bodyguard := PlaceAnt(t, c, Bodyguard, "0,4")
	wall := PlaceAnt(t, c, Wall, "0,4")
	assert.Same(t, bodyguard, site.Ant())
	assert.Same(t, wall, bodyguard.Contained())
	assert.True(t, wall.Nested())

	// An empty bodyguard can't be held by another bodyguard either.
	c2 := NewTestColony()
	PlaceAnt(t, c2, Bodyguard, "0,4")
	assert.False(t, c2.NewDefender(Bodyguard).SetSite(c2, MustSite(t, c2, "0,4")))
}

func TestSiteWater(t *testing.T) {
	c := NewColony(ColonyConfig{StartingFood: 10, TunnelCount: 1, TunnelLength: 8, MoatInterval: 3}, NewRand())
	waterID := MustSite(t, c, "0,2")
	water := c.Site(waterID)
	require.True(t, water.Water)
	assert.Equal(t, "water[0,2]", water.Name)

	for _, kind := range []Kind{Thrower, Wall, Bodyguard, Ninja, Fire, Hungry, Grower} {
		ant := c.NewDefender(kind)
		assert.Falsef(t, ant.SetSite(c, waterID), "%s should not be placed on water", kind)
	}
	scuba := c.NewDefender(Scuba)
	require.True(t, scuba.SetSite(c, waterID))
	assert.Same(t, scuba, water.Ant())

	// Water safe ants still can't share the site.
	queen := c.NewDefender(Queen)
	assert.False(t, queen.SetSite(c, waterID))

	// Bees fly over water.
	PlaceBee(t, c, "0,2", 3, 1)
	assert.Equal(t, 1, water.NumBees())
}

func TestSiteRemoval(t *testing.T) {
	c := NewTestColony()
	siteID := MustSite(t, c, "0,2")
	site := c.Site(siteID)

	// Removing the container promotes the ant it holds.
	thrower := PlaceAnt(t, c, Thrower, "0,2")
	bodyguard := PlaceAnt(t, c, Bodyguard, "0,2")
	require.True(t, bodyguard.SetSite(c, NoSite))
	assert.Same(t, thrower, site.Ant())
	assert.False(t, thrower.Nested())
	assert.Equal(t, NoSite, bodyguard.Site())
	assert.Nil(t, bodyguard.Contained())

	// Removing the ant being held leaves the container empty.
	bodyguard = PlaceAnt(t, c, Bodyguard, "0,2")
	require.Same(t, thrower, bodyguard.Contained())
	require.True(t, thrower.SetSite(c, NoSite))
	assert.Same(t, bodyguard, site.Ant())
	assert.Nil(t, bodyguard.Contained())
	assert.False(t, thrower.Nested())

	// Removing a single ant empties the slot.
	require.True(t, bodyguard.SetSite(c, NoSite))
	assert.Nil(t, site.Ant())

	// Removing bees, twice is a no-op.
	bee := PlaceBee(t, c, "0,2", 3, 1)
	other := PlaceBee(t, c, "0,2", 3, 1)
	require.True(t, bee.SetSite(c, NoSite))
	require.True(t, bee.SetSite(c, NoSite))
	assert.Equal(t, []*Unit{other}, site.Bees())
}

func TestSiteMove(t *testing.T) {
	c := NewTestColony()
	bee := PlaceBee(t, c, "0,5", 3, 1)
	require.True(t, bee.SetSite(c, MustSite(t, c, "0,4")))
	assert.Equal(t, 0, c.Site(MustSite(t, c, "0,5")).NumBees())
	assert.Equal(t, 1, c.Site(MustSite(t, c, "0,4")).NumBees())

	// Failed placement leaves the unit where it was.
	PlaceAnt(t, c, Wall, "0,1")
	thrower := PlaceAnt(t, c, Thrower, "0,2")
	assert.False(t, thrower.SetSite(c, MustSite(t, c, "0,1")))
	assert.Equal(t, MustSite(t, c, "0,2"), thrower.Site())
	assert.Same(t, thrower, c.Site(MustSite(t, c, "0,2")).Ant())
}

func TestClosestBee(t *testing.T) {
	c := NewTestColony()
	from := MustSite(t, c, "0,2")
	bee4 := PlaceBee(t, c, "0,4", 3, 1)
	bee6 := PlaceBee(t, c, "0,6", 3, 1)

	assert.Same(t, bee4, c.ClosestBee(from, 0, 3))
	assert.Nil(t, c.ClosestBee(from, 0, 1))
	assert.Same(t, bee6, c.ClosestBee(from, 3, 5))
	assert.Same(t, bee4, c.ClosestBee(MustSite(t, c, "0,4"), 0, 0))
	assert.Nil(t, c.ClosestBee(from, 3, 2))
	assert.Nil(t, c.ClosestBee(MustSite(t, c, "0,7"), 0, 5))
	assert.Nil(t, c.ClosestBee(NoSite, 0, 5))

	// Random choice among the bees of the closest site.
	others := []*Unit{bee4, PlaceBee(t, c, "0,4", 3, 1), PlaceBee(t, c, "0,4", 3, 1)}
	for range 20 {
		assert.Contains(t, others, c.ClosestBee(from, 0, 3))
	}
}

// TestClosestBeeInRange checks on random fields that the bee found is always within the
// requested distance, and that none is found only if there are no bees in range.
func TestClosestBeeInRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for range 200 {
		c := NewTestColony()
		occupied := make(map[int]bool)
		for range rng.IntN(4) {
			step := rng.IntN(8)
			occupied[step] = true
			bee := NewBee(1, 1)
			require.True(t, bee.SetSite(c, c.Tunnel(0)[step]))
		}
		fromStep := rng.IntN(8)
		minDist, maxDist := rng.IntN(4), rng.IntN(6)
		found := c.ClosestBee(c.Tunnel(0)[fromStep], minDist, maxDist)

		var wantAny bool
		for step := range occupied {
			if dist := step - fromStep; dist >= minDist && dist <= maxDist {
				wantAny = true
			}
		}
		if !wantAny {
			assert.Nil(t, found)
			continue
		}
		require.NotNil(t, found)
		dist := c.Site(found.Site()).Step - fromStep
		assert.GreaterOrEqual(t, dist, minDist)
		assert.LessOrEqual(t, dist, maxDist)
	}
}
