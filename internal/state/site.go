package state

import (
	"fmt"
	"slices"
)

// SiteID is the handle of a Site in its Colony.
type SiteID int32

const (
	// NoSite means the unit is not on the field (or there is no site in that direction).
	NoSite SiteID = -1

	// HiveSite is where bees wait before they invade the field.
	HiveSite SiteID = -2
)

// Site is a place on the field: it holds at most one ant (which may be a container holding
// another ant) and any number of bees.
//
// Sites are linked in tunnels: Exit points towards the colony's origin (the Queen's place),
// Entrance points away from it. The outermost site of a tunnel has no Entrance: it's where
// the bees come in.
//
// A water Site only accepts units that are water safe.
type Site struct {
	ID    SiteID
	Name  string
	Water bool

	// Tunnel and Step index the site in the colony, both are -1 for the origin.
	Tunnel, Step int

	Exit, Entrance SiteID

	ant  *Unit
	bees []*Unit
}

// Ant returns the ant occupying the site. If it's a container, the ant it holds is given by
// Ant().Contained().
func (s *Site) Ant() *Unit {
	return s.ant
}

// Bees returns the bees at the site. The returned slice is owned by the Site and must not be changed.
func (s *Site) Bees() []*Unit {
	return s.bees
}

// NumBees at the site.
func (s *Site) NumBees() int {
	return len(s.bees)
}

// String implements fmt.Stringer.
func (s *Site) String() string {
	return fmt.Sprintf("Site[%s]", s.Name)
}

// add tries to insert the unit into the site and returns whether it was accepted.
func (s *Site) add(u *Unit) bool {
	if s.Water && !u.WaterSafe() {
		return false
	}
	if u.IsBee() {
		s.bees = append(s.bees, u)
		return true
	}
	switch {
	case s.ant == nil:
		s.ant = u
		return true
	case s.ant.CanContain(u):
		s.ant.contain(u)
		return true
	case u.CanContain(s.ant):
		u.contain(s.ant)
		s.ant = u
		return true
	}
	return false
}

// remove the unit from the site. If the ant removed is holding another ant, the one held
// takes its place.
func (s *Site) remove(u *Unit) {
	if u.IsBee() {
		if idx := slices.Index(s.bees, u); idx >= 0 {
			s.bees = slices.Delete(s.bees, idx, idx+1)
		}
		return
	}
	switch {
	case s.ant == u:
		s.ant = u.release()
	case s.ant != nil && s.ant.contained == u:
		s.ant.release()
	}
}
