package state

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// MaxTunnelLength is the maximum number of sites in a tunnel.
const MaxTunnelLength = 8

// ColonyConfig holds the parameters used to build a Colony.
type ColonyConfig struct {
	StartingFood int `yaml:"food"`
	TunnelCount  int `yaml:"tunnels"`
	TunnelLength int `yaml:"length"`

	// MoatInterval: if > 0, every MoatInterval-th site of each tunnel (counting from 1) is water.
	MoatInterval int `yaml:"moat"`
}

// Validate returns an error if the configuration can't build a playable colony.
func (cfg ColonyConfig) Validate() error {
	switch {
	case cfg.StartingFood < 0:
		return errors.Errorf("invalid colony starting food %d", cfg.StartingFood)
	case cfg.TunnelCount <= 0:
		return errors.Errorf("invalid colony tunnel count %d, it must be > 0", cfg.TunnelCount)
	case cfg.TunnelLength <= 0 || cfg.TunnelLength > MaxTunnelLength:
		return errors.Errorf("invalid colony tunnel length %d, it must be between 1 and %d",
			cfg.TunnelLength, MaxTunnelLength)
	case cfg.MoatInterval < 0:
		return errors.Errorf("invalid colony moat interval %d", cfg.MoatInterval)
	}
	return nil
}

// Colony holds the field -- the tunnels of sites converging on the Queen's place (the origin) --
// the food available and the units placed on it.
//
// The Colony owns all the sites, and units refer to them by their SiteID.
type Colony struct {
	food    int
	sites   []*Site
	tunnels [][]SiteID
	entries []SiteID
	origin  SiteID

	// leader is the one authoritative Queen, and leaderSite is the last place she reported.
	leader     *Unit
	leaderSite SiteID

	rng *rand.Rand
}

// NewColony creates the tunnels of the colony. The tunnel length is capped at MaxTunnelLength.
//
// rng is the source of randomness for the game (choice of targets and bees' entrances), and
// it can be seeded for reproducible games. If nil, a randomly seeded one is created.
func NewColony(cfg ColonyConfig, rng *rand.Rand) *Colony {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	length := max(min(cfg.TunnelLength, MaxTunnelLength), 0)
	c := &Colony{
		food:       cfg.StartingFood,
		leaderSite: NoSite,
		rng:        rng,
	}
	c.origin = c.newSite("Ant Queen", -1, -1, false).ID
	c.tunnels = make([][]SiteID, max(cfg.TunnelCount, 0))
	for tunnel := range c.tunnels {
		c.tunnels[tunnel] = make([]SiteID, 0, length)
		prev := c.origin
		for step := range length {
			water := cfg.MoatInterval > 0 && (step+1)%cfg.MoatInterval == 0
			typeName := "tunnel"
			if water {
				typeName = "water"
			}
			site := c.newSite(fmt.Sprintf("%s[%d,%d]", typeName, tunnel, step), tunnel, step, water)
			site.Exit = prev
			if prev != c.origin {
				// The origin has one entrance per tunnel, so it doesn't keep track of them.
				c.sites[prev].Entrance = site.ID
			}
			c.tunnels[tunnel] = append(c.tunnels[tunnel], site.ID)
			prev = site.ID
		}
		if prev != c.origin {
			c.entries = append(c.entries, prev)
		}
	}
	klog.V(2).Infof("Created colony with %d tunnels of length %d (moat=%d), food=%d",
		len(c.tunnels), length, cfg.MoatInterval, c.food)
	return c
}

func (c *Colony) newSite(name string, tunnel, step int, water bool) *Site {
	site := &Site{
		ID:       SiteID(len(c.sites)),
		Name:     name,
		Water:    water,
		Tunnel:   tunnel,
		Step:     step,
		Exit:     NoSite,
		Entrance: NoSite,
	}
	c.sites = append(c.sites, site)
	return site
}

// Food available to deploy ants.
func (c *Colony) Food() int { return c.food }

// IncreaseFood by the given amount.
func (c *Colony) IncreaseFood(amount int) { c.food += amount }

// Site returns the site for the given handle, or nil if it is not a site of the colony
// (NoSite, HiveSite).
func (c *Colony) Site(id SiteID) *Site {
	if id < 0 || int(id) >= len(c.sites) {
		return nil
	}
	return c.sites[id]
}

// SiteName returns the name of the site, including the special "Hive" and "" (off the field).
func (c *Colony) SiteName(id SiteID) string {
	switch id {
	case NoSite:
		return ""
	case HiveSite:
		return "Hive"
	}
	if site := c.Site(id); site != nil {
		return site.Name
	}
	return fmt.Sprintf("invalid site #%d", id)
}

// Describe returns the unit and the name of its site, e.g.: "Thrower(tunnel[0,3])".
func (c *Colony) Describe(u *Unit) string {
	return fmt.Sprintf("%s(%s)", u.kind, c.SiteName(u.site))
}

// Origin is the Queen's place, where all the tunnels converge.
func (c *Colony) Origin() SiteID { return c.origin }

// Entries returns the outermost site of each tunnel, where bees invade from.
func (c *Colony) Entries() []SiteID { return c.entries }

// NumTunnels in the colony.
func (c *Colony) NumTunnels() int { return len(c.tunnels) }

// TunnelLength returns the number of sites in each tunnel.
func (c *Colony) TunnelLength() int {
	if len(c.tunnels) == 0 {
		return 0
	}
	return len(c.tunnels[0])
}

// Tunnel returns the sites of the given tunnel, starting from the one next to the origin.
func (c *Colony) Tunnel(tunnel int) []SiteID { return c.tunnels[tunnel] }

// SiteAt returns the site at the given tunnel and step.
func (c *Colony) SiteAt(tunnel, step int) (SiteID, error) {
	if tunnel < 0 || tunnel >= len(c.tunnels) {
		return NoSite, errors.Wrapf(ErrInvalidLocation, "tunnel %d out of range [0, %d)", tunnel, len(c.tunnels))
	}
	if step < 0 || step >= len(c.tunnels[tunnel]) {
		return NoSite, errors.Wrapf(ErrInvalidLocation, "step %d out of range [0, %d)", step, len(c.tunnels[tunnel]))
	}
	return c.tunnels[tunnel][step], nil
}

// ParseLocation parses a location in the form "tunnel,step" (e.g. "0,3") and returns its site.
func (c *Colony) ParseLocation(location string) (SiteID, error) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return NoSite, errors.Wrapf(ErrInvalidLocation, "%q is not in the form \"tunnel,step\"", location)
	}
	var coords [2]int
	for ii, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return NoSite, errors.Wrapf(ErrInvalidLocation, "failed to parse %q in %q", part, location)
		}
		coords[ii] = value
	}
	return c.SiteAt(coords[0], coords[1])
}

// NewDefender creates an ant of the given kind, off the field.
//
// There can only be one Queen: any Queen created after the first one is destroyed immediately.
func (c *Colony) NewDefender(kind Kind) *Unit {
	if !kind.IsAnt() {
		exceptions.Panicf("NewDefender(%s): not an ant", kind)
	}
	stats := kind.Stats()
	ant := newUnit(kind, stats.Armor, stats.Damage)
	if kind == Queen {
		if c.leader == nil {
			c.leader = ant
		} else {
			klog.V(1).Info("There can only be one Queen.")
			ant.ReduceArmor(c, ant.armor)
		}
	}
	return ant
}

// IsLeader returns whether u is the colony's Queen.
func (c *Colony) IsLeader(u *Unit) bool {
	return u != nil && u == c.leader
}

// Leader returns the colony's Queen, or nil if none was created yet.
func (c *Colony) Leader() *Unit { return c.leader }

// LeaderSite returns the last site reported by the Queen, or NoSite.
func (c *Colony) LeaderSite() SiteID { return c.leaderSite }

// SetLeaderSite records where the Queen is.
func (c *Colony) SetLeaderSite(site SiteID) { c.leaderSite = site }

// LeaderIsUnderAttack returns whether there are bees at the origin.
func (c *Colony) LeaderIsUnderAttack() bool {
	return c.sites[c.origin].NumBees() > 0
}

// Deploy the ant at the given site, paying its food cost.
//
// Food is only debited if the ant is actually placed.
func (c *Colony) Deploy(site SiteID, ant *Unit) error {
	if ant.armor <= 0 {
		return errors.Wrapf(ErrInvalidPlacement, "%s has no armor left", ant)
	}
	cost := ant.FoodCost()
	if c.food < cost {
		klog.V(1).Infof("Not enough food to place %s", ant.kind)
		return errors.Wrapf(ErrInsufficientFood, "%s costs %d, colony has %d", ant.kind, cost, c.food)
	}
	if !ant.SetSite(c, site) {
		return errors.Wrapf(ErrInvalidPlacement, "%s can't be placed at %s", ant.kind, c.SiteName(site))
	}
	c.food -= cost
	return nil
}

// DeployDefender is like Deploy, but simply returns whether the ant was deployed.
func (c *Colony) DeployDefender(site SiteID, ant *Unit) bool {
	return c.Deploy(site, ant) == nil
}

// Remove the ant at the given site from the field. If it is holding another ant, the one held
// takes its place.
func (c *Colony) Remove(site SiteID) error {
	s := c.Site(site)
	if s == nil {
		return errors.Wrapf(ErrInvalidLocation, "no site #%d", site)
	}
	if s.ant == nil {
		return errors.Wrapf(ErrNoAnt, "%s", s.Name)
	}
	if !s.ant.SetSite(c, NoSite) {
		return errors.Wrapf(ErrProtectedLeader, "%s", s.Name)
	}
	return nil
}

// RemoveDefender is like Remove, but simply returns whether an ant was removed.
func (c *Colony) RemoveDefender(site SiteID) bool {
	return c.Remove(site) == nil
}

// AllDefenders returns the ants occupying the sites of the tunnels, in tunnel order and then
// step order. Ants held by containers are not included.
func (c *Colony) AllDefenders() []*Unit {
	var ants []*Unit
	for _, tunnel := range c.tunnels {
		for _, id := range tunnel {
			if ant := c.sites[id].ant; ant != nil {
				ants = append(ants, ant)
			}
		}
	}
	return ants
}

// AllAttackers returns the bees in the sites of the tunnels, in tunnel order and then step order.
// Bees that reached the origin are not included.
func (c *Colony) AllAttackers() []*Unit {
	var bees []*Unit
	for _, tunnel := range c.tunnels {
		for _, id := range tunnel {
			bees = append(bees, c.sites[id].bees...)
		}
	}
	return bees
}

// ClosestBee walks from the given site through the entrances, and returns a random bee of the
// first site holding bees whose distance (in number of hops) is within [minDistance, maxDistance].
// It returns nil if there are no bees in range.
func (c *Colony) ClosestBee(from SiteID, minDistance, maxDistance int) *Unit {
	site := c.Site(from)
	for dist := 0; site != nil && dist <= maxDistance; dist++ {
		if dist >= minDistance && len(site.bees) > 0 {
			return site.bees[c.rng.IntN(len(site.bees))]
		}
		site = c.Site(site.Entrance)
	}
	return nil
}
