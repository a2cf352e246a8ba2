// ants is an interactive text version of the ants vs bees game.
package main

import (
	"flag"
	"fmt"
	"math/rand/v2"

	"github.com/janpfeifer/antsGo/internal/players"
	"github.com/janpfeifer/antsGo/internal/presets"
	. "github.com/janpfeifer/antsGo/internal/state"
	"github.com/janpfeifer/antsGo/internal/ui/cli"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	_ = fmt.Printf

	flagColony       = flag.String("colony", "test", "Colony preset to play with.")
	flagHive         = flag.String("hive", "test", "Hive preset to play against.")
	flagColonyParams = flag.String("colony_params", "", "Overrides to the colony preset, e.g.: \"food=10,tunnels=3,length=8,moat=3\".")
	flagHiveParams   = flag.String("hive_params", "", "Overrides to the hive preset, e.g.: \"armor=4,damage=1,waves=2:1/5:3\".")
	flagScenarios    = flag.String("scenarios", "", "YAML file with extra colonies, hives and plans.")
	flagPlan         = flag.String("plan", "", "Deployment plan played before handing over the game.")
	flagPlanTurns    = flag.Int("plan_turns", 0, "Number of turns played following --plan. If 0, the turns needed by the plan.")
	flagSeed         = flag.Uint64("seed", 0, "Seed for the game's randomness. If 0, a random seed is used.")
	flagDebug        = flag.Bool("debug", false, "Play the debug scenario (--colony=default --plan=debug --plan_turns=8), print the field and exit.")
	flagColor        = flag.Bool("color", true, "Use colors when printing the field.")
	flagClear        = flag.Bool("clear", false, "Clear the screen before printing the field.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagDebug {
		*flagColony, *flagPlan, *flagPlanTurns = "default", "debug", 8
	}

	p := presets.New()
	if *flagScenarios != "" {
		must.M(p.Load(*flagScenarios))
	}
	colonyCfg, err := p.ColonyWithParams(*flagColony, *flagColonyParams)
	if err != nil {
		klog.Exitf("Invalid colony: %+v", err)
	}
	hiveCfg, err := p.HiveWithParams(*flagHive, *flagHiveParams)
	if err != nil {
		klog.Exitf("Invalid hive: %+v", err)
	}

	seed := *flagSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	klog.V(1).Infof("Colony %q, hive %q, seed %d", *flagColony, *flagHive, seed)
	game := NewGame(NewColony(colonyCfg, rand.New(rand.NewPCG(seed, seed))), NewHiveFromConfig(hiveCfg))
	ui := cli.New(*flagColor, *flagClear)

	if *flagPlan != "" {
		playPlan(game, must.M1(p.Plan(*flagPlan)), *flagPlanTurns)
	}
	if *flagDebug {
		ui.Print(game)
		return
	}
	if _, err := ui.Run(game); err != nil {
		klog.Exitf("Failed to run game: %+v", err)
	}
}

// playPlan deploys the ants of the plan at their turns, printing what failed, until the
// game is finished or the given number of turns is played.
func playPlan(game *Game, plan presets.Plan, numTurns int) {
	if numTurns <= 0 && len(plan) > 0 {
		numTurns = plan[len(plan)-1].Turn + 1
	}
	player := players.NewPlanPlayer(plan)
	for game.Turn() < numTurns && !game.IsFinished() {
		for _, err := range player.Play(game) {
			fmt.Printf("Turn %d: %v\n", game.Turn(), err)
		}
		game.TakeTurn()
	}
}
