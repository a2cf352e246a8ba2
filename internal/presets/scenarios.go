package presets

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Load reads a YAML scenario file, and adds its colonies, hives and plans to the presets.
// Entries with the name of an existing preset replace it.
//
// Example of a scenario file:
//
//	colonies:
//	  narrow: {food: 8, tunnels: 1, length: 5}
//	hives:
//	  swarm:
//	    armor: 2
//	    waves: [{turn: 1, bees: 3}, {turn: 4, bees: 6}]
//	plans:
//	  throwers:
//	    - {turn: 0, ant: Thrower, at: "0,2"}
func (p *Presets) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading scenario file %q", path)
	}
	return errors.WithMessagef(p.Parse(data), "scenario file %q", path)
}

// Parse is like Load, but takes the contents of the YAML scenario directly.
//
// All entries are validated before any of them is added, so on error the presets are unchanged.
func (p *Presets) Parse(data []byte) error {
	var scenario Presets
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return errors.Wrap(err, "parsing scenario")
	}
	for name, cfg := range scenario.Colonies {
		if err := cfg.Validate(); err != nil {
			return errors.WithMessagef(err, "colony %q", name)
		}
	}
	for name, cfg := range scenario.Hives {
		if err := cfg.Validate(); err != nil {
			return errors.WithMessagef(err, "hive %q", name)
		}
	}
	for name, plan := range scenario.Plans {
		if err := plan.Validate(); err != nil {
			return errors.WithMessagef(err, "plan %q", name)
		}
	}
	for name, cfg := range scenario.Colonies {
		p.Colonies[name] = cfg
	}
	for name, cfg := range scenario.Hives {
		p.Hives[name] = cfg
	}
	for name, plan := range scenario.Plans {
		p.Plans[name] = plan
	}
	klog.V(1).Infof("Loaded scenario: %d colonies, %d hives and %d plans",
		len(scenario.Colonies), len(scenario.Hives), len(scenario.Plans))
	return nil
}
