package state

import (
	"fmt"

	"k8s.io/klog/v2"
)

// Unit is an insect in the game: either a Bee (attacker) or one of the ants (defenders).
//
// A Unit refers to its place by a SiteID handle: all the operations that change the field
// go through the Colony that owns the sites.
type Unit struct {
	kind     Kind
	armor    int
	damage   int
	site     SiteID
	behavior Behavior

	// contained is the ant held by a container ant, and nested is set for the ant being held.
	contained *Unit
	nested    bool
}

func newUnit(kind Kind, armor, damage int) *Unit {
	return &Unit{
		kind:     kind,
		armor:    armor,
		damage:   damage,
		site:     NoSite,
		behavior: newBehavior(kind),
	}
}

// NewBee creates a bee off the field.
func NewBee(armor, damage int) *Unit {
	return newUnit(Bee, armor, damage)
}

// Kind of the unit.
func (u *Unit) Kind() Kind { return u.kind }

// Armor left. The unit expires when it reaches 0 or less.
func (u *Unit) Armor() int { return u.armor }

// Damage the unit deals when it attacks.
func (u *Unit) Damage() int { return u.damage }

// Site where the unit is: NoSite if it's not on the field, HiveSite if it's waiting in the Hive.
func (u *Unit) Site() SiteID { return u.site }

// OnField returns whether the unit is placed on one of the colony's sites.
func (u *Unit) OnField() bool { return u.site >= 0 }

// FoodCost to deploy the unit.
func (u *Unit) FoodCost() int { return u.kind.Stats().FoodCost }

// Blocks returns whether the unit prevents bees from advancing past its site.
func (u *Unit) Blocks() bool { return u.kind.Stats().Blocks }

// WaterSafe returns whether the unit can be placed on water.
func (u *Unit) WaterSafe() bool { return u.kind.Stats().WaterSafe }

// IsBee returns whether the unit is an attacker.
func (u *Unit) IsBee() bool { return u.kind == Bee }

// IsContainer returns whether the unit can hold another ant.
func (u *Unit) IsContainer() bool { return u.kind.Stats().Container }

// Contained returns the ant held by this one, or nil.
func (u *Unit) Contained() *Unit { return u.contained }

// Nested returns whether the ant is being held by a container ant.
func (u *Unit) Nested() bool { return u.nested }

// CanContain returns whether u can hold the other ant: u must be an empty container and
// other must be an ant that is not a container itself.
func (u *Unit) CanContain(other *Unit) bool {
	return u.IsContainer() && u.contained == nil &&
		!other.IsBee() && !other.IsContainer()
}

func (u *Unit) contain(other *Unit) {
	u.contained = other
	other.nested = true
}

// release the contained ant, if any, and return it.
func (u *Unit) release() *Unit {
	held := u.contained
	if held != nil {
		held.nested = false
		u.contained = nil
	}
	return held
}

// MultiplyDamage multiplies the damage dealt by the unit.
func (u *Unit) MultiplyDamage(factor int) {
	u.damage *= factor
}

// String returns the kind and armor of the unit. Use Colony.Describe to include its place.
func (u *Unit) String() string {
	return fmt.Sprintf("%s(armor=%d)", u.kind, u.armor)
}

// SetSite moves the unit to the given site, or removes it from the field if site is NoSite.
// It returns whether the unit ended up at the site (or off the field).
//
// Placement fails, leaving the unit where it was, if the site doesn't accept the unit.
// Removal fails for the colony's Queen, who can never leave her place.
func (u *Unit) SetSite(c *Colony, site SiteID) bool {
	if site == NoSite {
		if c.IsLeader(u) {
			klog.V(1).Infof("%s cannot be removed", c.Describe(u))
			return false
		}
		if old := c.Site(u.site); old != nil {
			old.remove(u)
		}
		u.site = NoSite
		return true
	}
	if site == u.site {
		return true
	}
	target := c.Site(site)
	if target == nil || !target.add(u) {
		klog.V(2).Infof("%s cannot be placed at %s", c.Describe(u), c.SiteName(site))
		return false
	}
	if old := c.Site(u.site); old != nil {
		old.remove(u)
	}
	u.site = site
	klog.V(2).Infof("%s placed", c.Describe(u))
	return true
}

// ReduceArmor of the unit by the given amount. If the armor drops to 0 or below the unit
// expires: by default it's removed from the field, but some ants react differently.
func (u *Unit) ReduceArmor(c *Colony, amount int) {
	u.armor -= amount
	if u.armor > 0 {
		return
	}
	if expirer, ok := u.behavior.(Expirer); ok {
		expirer.Expire(c, u)
		return
	}
	klog.V(1).Infof("%s ran out of armor and expired", c.Describe(u))
	u.SetSite(c, NoSite)
}

// Act executes the unit's action for the turn.
func (u *Unit) Act(c *Colony) {
	u.behavior.Act(c, u)
}
