package state

import (
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/antsGo/internal/generics"
	"k8s.io/klog/v2"
)

// Behavior implements what a kind of unit does in its turn.
type Behavior interface {
	Act(c *Colony, u *Unit)
}

// Expirer is implemented by behaviors that replace the default expiration (removal from
// the field) when the unit runs out of armor.
type Expirer interface {
	Expire(c *Colony, u *Unit)
}

func newBehavior(kind Kind) Behavior {
	switch kind {
	case Bee:
		return beeBehavior{}
	case Grower:
		return growerBehavior{}
	case Thrower, Scuba:
		return throwerBehavior{maxRange: ThrowerMaxRange}
	case Wall:
		return idleBehavior{}
	case Hungry:
		return &hungryBehavior{digestTime: HungryDigestTime}
	case Fire:
		return fireBehavior{}
	case Ninja:
		return ninjaBehavior{}
	case Bodyguard:
		return bodyguardBehavior{}
	case Queen:
		return &queenBehavior{doubled: generics.MakeSet[*Unit]()}
	}
	exceptions.Panicf("no behavior defined for unit kind %s", kind)
	return nil
}

type idleBehavior struct{}

func (idleBehavior) Act(*Colony, *Unit) {}

// beeBehavior stings the ant blocking its way, or otherwise advances towards the Queen.
type beeBehavior struct{}

func (beeBehavior) Act(c *Colony, u *Unit) {
	site := c.Site(u.site)
	if site == nil {
		return
	}
	if ant := site.ant; ant != nil && ant.Blocks() {
		klog.V(1).Infof("%s stings %s!", c.Describe(u), c.Describe(ant))
		ant.ReduceArmor(c, u.damage)
		return
	}
	if u.armor > 0 {
		// Leaving through an undefined exit takes the bee off the field.
		u.SetSite(c, site.Exit)
	}
}

type growerBehavior struct{}

func (growerBehavior) Act(c *Colony, _ *Unit) {
	c.IncreaseFood(GrowerFoodPerTurn)
}

// throwerBehavior throws a leaf at the closest bee within range.
type throwerBehavior struct {
	maxRange int
}

func (b throwerBehavior) Act(c *Colony, u *Unit) {
	target := c.ClosestBee(u.site, 0, b.maxRange)
	if target == nil {
		return
	}
	klog.V(1).Infof("%s throws a leaf at %s", c.Describe(u), c.Describe(target))
	target.ReduceArmor(c, u.damage)
}

// hungryBehavior eats a bee at its own site, and then needs digestTime turns to digest it.
type hungryBehavior struct {
	digestTime, digesting int
}

func (b *hungryBehavior) Act(c *Colony, u *Unit) {
	if b.digesting > 0 {
		b.digesting--
		return
	}
	target := c.ClosestBee(u.site, 0, 0)
	if target == nil {
		return
	}
	b.digesting = b.digestTime
	klog.V(1).Infof("%s ate %s and must take %d turns to digest", c.Describe(u), c.Describe(target), b.digestTime)
	target.ReduceArmor(c, target.armor)
}

// fireBehavior does nothing in its turn, but when it expires it burns every bee at its site.
type fireBehavior struct{}

func (fireBehavior) Act(*Colony, *Unit) {}

// Expire damages the bees at the site until none is left, and only then leaves the field.
// Bees expiring have no side effects, so it never chains into other explosions, and the
// loop terminates because every iteration lowers the armor of one bee.
func (fireBehavior) Expire(c *Colony, u *Unit) {
	klog.V(1).Infof("%s explodes, dealing damage to nearby bees", c.Describe(u))
	if u.damage > 0 {
		for target := c.ClosestBee(u.site, 0, 0); target != nil; target = c.ClosestBee(u.site, 0, 0) {
			target.ReduceArmor(c, u.damage)
		}
	}
	u.SetSite(c, NoSite)
}

// ninjaBehavior damages every bee passing through its site. It doesn't block them.
type ninjaBehavior struct{}

func (ninjaBehavior) Act(c *Colony, u *Unit) {
	site := c.Site(u.site)
	if site == nil {
		return
	}
	// Reverse order: a bee that expires is removed from the slice.
	for ii := len(site.bees) - 1; ii >= 0; ii-- {
		if ii >= len(site.bees) {
			continue
		}
		bee := site.bees[ii]
		klog.V(1).Infof("%s attacks %s from the shadows", c.Describe(u), c.Describe(bee))
		bee.ReduceArmor(c, u.damage)
	}
}

// bodyguardBehavior protects the ant it holds: bees sting the bodyguard first.
type bodyguardBehavior struct{}

func (bodyguardBehavior) Act(*Colony, *Unit) {}

// Expire releases the ant being held back to the site.
func (bodyguardBehavior) Expire(c *Colony, u *Unit) {
	klog.V(1).Infof("%s ran out of armor and expired", c.Describe(u))
	if held := u.contained; held != nil {
		klog.V(1).Infof("%s is released by the bodyguard", c.Describe(held))
	}
	u.SetSite(c, NoSite)
}

// queenBehavior marks her place as the one to be protected, and doubles the damage of the
// ants immediately in front of and behind her -- only once per ant.
type queenBehavior struct {
	doubled generics.Set[*Unit]
}

func (b *queenBehavior) Act(c *Colony, u *Unit) {
	if !c.IsLeader(u) {
		return
	}
	c.SetLeaderSite(u.site)
	site := c.Site(u.site)
	if site == nil {
		return
	}
	for _, neighbour := range []SiteID{site.Entrance, site.Exit} {
		ns := c.Site(neighbour)
		if ns == nil || ns.ant == nil || b.doubled.Has(ns.ant) {
			continue
		}
		ns.ant.MultiplyDamage(QueenDamageFactor)
		b.doubled.Insert(ns.ant)
		klog.V(1).Infof("The queen increases the damage of %s", c.Describe(ns.ant))
	}
}
