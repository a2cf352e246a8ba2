package state

import (
	"fmt"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
)

// Kind enumerates the closed set of units in the game: the Bee (attacker) and the ants (defenders).
type Kind uint8

const (
	NoKind Kind = iota
	Bee
	Grower
	Thrower
	Wall
	Hungry
	Fire
	Scuba
	Ninja
	Bodyguard
	Queen
	LastKind
)

const (
	// DefaultBeeDamage is the damage of a bee sting, if not configured otherwise.
	DefaultBeeDamage = 1

	// HungryDigestTime is the number of turns a Hungry ant skips after eating a bee.
	HungryDigestTime = 3

	// QueenDamageFactor is how much the Queen multiplies the damage of her neighbours.
	QueenDamageFactor = 2

	// ThrowerMaxRange is how far (in entrance hops) Thrower and Scuba ants reach.
	ThrowerMaxRange = 3

	// GrowerFoodPerTurn is the food produced by a Grower each turn.
	GrowerFoodPerTurn = 1
)

// KindStats holds the fixed characteristics of a kind of unit.
type KindStats struct {
	Name      string
	Letter    string
	Armor     int
	FoodCost  int
	Damage    int
	Blocks    bool
	Container bool
	WaterSafe bool
}

var kindStats = [LastKind]KindStats{
	NoKind:    {Name: "None", Letter: "-"},
	Bee:       {Name: "Bee", Letter: "B", Damage: DefaultBeeDamage, WaterSafe: true},
	Grower:    {Name: "Grower", Letter: "G", Armor: 1, FoodCost: 2, Blocks: true},
	Thrower:   {Name: "Thrower", Letter: "T", Armor: 1, FoodCost: 4, Damage: 1, Blocks: true},
	Wall:      {Name: "Wall", Letter: "W", Armor: 4, FoodCost: 4, Blocks: true},
	Hungry:    {Name: "Hungry", Letter: "H", Armor: 1, FoodCost: 4, Blocks: true},
	Fire:      {Name: "Fire", Letter: "F", Armor: 1, FoodCost: 4, Damage: 3, Blocks: true},
	Scuba:     {Name: "Scuba", Letter: "S", Armor: 1, FoodCost: 5, Damage: 1, Blocks: true, WaterSafe: true},
	Ninja:     {Name: "Ninja", Letter: "N", Armor: 1, FoodCost: 6, Damage: 1},
	Bodyguard: {Name: "Bodyguard", Letter: "D", Armor: 2, FoodCost: 4, Blocks: true, Container: true},
	Queen:     {Name: "Queen", Letter: "Q", Armor: 3, FoodCost: 6, Blocks: true, WaterSafe: true},
}

// Ants enumerates the kinds that can be deployed by the player, in display order.
var Ants = []Kind{Grower, Thrower, Wall, Hungry, Fire, Scuba, Ninja, Bodyguard, Queen}

// kindAliases maps the role names of the ants to their kind.
var kindAliases = map[string]Kind{
	"rangedattacker":            Thrower,
	"devourer":                  Hungry,
	"immolator":                 Fire,
	"submersiblerangedattacker": Scuba,
	"ambusher":                  Ninja,
	"escort":                    Bodyguard,
	"leader":                    Queen,
}

// Stats returns the fixed characteristics of the kind.
func (k Kind) Stats() KindStats {
	if k >= LastKind {
		exceptions.Panicf("invalid unit kind %d", k)
	}
	return kindStats[k]
}

// String returns the kind name.
func (k Kind) String() string {
	if k >= LastKind {
		return fmt.Sprintf("Kind(%d)", k)
	}
	return kindStats[k].Name
}

// Letter used to display the kind in a compact form.
func (k Kind) Letter() string {
	return k.Stats().Letter
}

// IsAnt returns whether the kind is a defender that can be deployed.
func (k Kind) IsAnt() bool {
	return k > Bee && k < LastKind
}

// ParseKind parses the type tag of an ant, case-insensitive. Both the ant names ("Thrower")
// and their role names ("RangedAttacker") are accepted.
func ParseKind(tag string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(tag))
	for _, k := range Ants {
		if strings.ToLower(k.String()) == key {
			return k, nil
		}
	}
	if k, found := kindAliases[key]; found {
		return k, nil
	}
	return NoKind, errors.Wrapf(ErrUnknownKind, "%q", tag)
}
