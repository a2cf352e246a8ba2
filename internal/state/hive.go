package state

import (
	"slices"

	"github.com/janpfeifer/antsGo/internal/generics"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// Wave of bees scheduled to invade the colony at the given turn.
type Wave struct {
	Turn  int `yaml:"turn"`
	Count int `yaml:"bees"`
}

// HiveConfig holds the parameters used to build a Hive.
type HiveConfig struct {
	Armor int `yaml:"armor"`

	// Damage of each bee sting. If 0, DefaultBeeDamage is used.
	Damage int    `yaml:"damage,omitempty"`
	Waves  []Wave `yaml:"waves"`
}

// Validate returns an error if the configuration is invalid.
func (cfg HiveConfig) Validate() error {
	if cfg.Armor <= 0 {
		return errors.Errorf("invalid hive bee armor %d, it must be > 0", cfg.Armor)
	}
	if cfg.Damage < 0 {
		return errors.Errorf("invalid hive bee damage %d", cfg.Damage)
	}
	for _, wave := range cfg.Waves {
		if wave.Turn < 0 || wave.Count < 0 {
			return errors.Errorf("invalid hive wave of %d bees at turn %d", wave.Count, wave.Turn)
		}
	}
	return nil
}

// Hive holds the bees waiting to invade the colony, organized in waves by turn.
type Hive struct {
	armor, damage int
	waves         map[int][]*Unit
	staged        []*Unit
}

// NewHive creates an empty Hive whose bees will have the given armor.
func NewHive(armor int) *Hive {
	return &Hive{
		armor:  armor,
		damage: DefaultBeeDamage,
		waves:  make(map[int][]*Unit),
	}
}

// NewHiveFromConfig creates a Hive with all the configured waves scheduled.
func NewHiveFromConfig(cfg HiveConfig) *Hive {
	h := NewHive(cfg.Armor)
	if cfg.Damage > 0 {
		h.damage = cfg.Damage
	}
	for _, wave := range cfg.Waves {
		h.AddWave(wave.Turn, wave.Count)
	}
	return h
}

// Armor of the bees created by the hive.
func (h *Hive) Armor() int { return h.armor }

// AddWave schedules numBees to invade the colony at the given turn. The bees are created
// immediately and wait in the hive. Scheduling the same turn twice adds to the wave.
//
// It returns the Hive itself, so calls can be chained.
func (h *Hive) AddWave(turn, numBees int) *Hive {
	for range numBees {
		bee := NewBee(h.armor, h.damage)
		bee.site = HiveSite
		h.waves[turn] = append(h.waves[turn], bee)
		h.staged = append(h.staged, bee)
	}
	return h
}

// Bees returns the bees still waiting in the hive. The returned slice must not be changed.
func (h *Hive) Bees() []*Unit { return h.staged }

// Waves returns the waves not yet launched, sorted by turn.
func (h *Hive) Waves() []Wave {
	waves := make([]Wave, 0, len(h.waves))
	for turn, bees := range generics.SortedKeysAndValues(h.waves) {
		waves = append(waves, Wave{Turn: turn, Count: len(bees)})
	}
	return waves
}

// Invade moves the wave scheduled for the given turn, if any, to random entrances of the
// colony and returns the bees that entered the field. A wave only invades once.
func (h *Hive) Invade(c *Colony, turn int) []*Unit {
	wave, found := h.waves[turn]
	if !found {
		return []*Unit{}
	}
	entries := c.Entries()
	if len(entries) == 0 {
		klog.Warningf("Hive: colony has no entrances, wave of turn %d stays in the hive", turn)
		return []*Unit{}
	}
	delete(h.waves, turn)
	invaded := make([]*Unit, 0, len(wave))
	for _, bee := range wave {
		entry := entries[c.rng.IntN(len(entries))]
		if !bee.SetSite(c, entry) {
			continue
		}
		h.staged = slices.DeleteFunc(h.staged, func(b *Unit) bool { return b == bee })
		invaded = append(invaded, bee)
	}
	klog.V(2).Infof("Turn %d: %d bees invaded the colony", turn, len(invaded))
	return invaded
}
