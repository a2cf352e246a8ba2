// Package players provides automated colony players, created from a configuration string.
// It also allows player modules to register themselves.
package players

import (
	"slices"
	"strings"

	"github.com/janpfeifer/antsGo/internal/generics"
	"github.com/janpfeifer/antsGo/internal/parameters"
	. "github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
)

// Player deploys (or removes) ants on behalf of the colony.
type Player interface {
	// Play issues the commands of the player for the current turn of the game, before the
	// turn is taken. It returns the commands that failed.
	Play(game *Game) (failed []error)
}

// Module creates players of one type. NewPlayer is called once per game.
type Module interface {
	NewPlayer(params parameters.Params) (Player, error)
}

var (
	// Registered modules.
	keywordToModules = make(map[string]Module)
)

// RegisterModule so it can be used by any of the front-ends.
func RegisterModule(name string, module Module) {
	keywordToModules[name] = module
}

// Modules returns the sorted names of the registered modules.
func Modules() []string {
	return slices.Collect(generics.SortedKeys(keywordToModules))
}

// New creates a player given the configuration string: the module name optionally followed
// by a colon (":") and a comma-separated list of parameters, e.g.: "greedy:ant=Wall,max_per_turn=2".
func New(config string) (Player, error) {
	moduleName := config
	if moduleSplit := strings.Index(config, ":"); moduleSplit != -1 {
		moduleName = config[:moduleSplit]
		config = config[moduleSplit+1:]
	} else {
		config = ""
	}
	module, ok := keywordToModules[moduleName]
	if !ok {
		return nil, errors.Errorf("unknown player %q", moduleName)
	}
	player, err := module.NewPlayer(parameters.NewFromConfigString(config))
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to create player %q", moduleName)
	}
	return player, nil
}
