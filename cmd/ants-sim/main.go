// ants-sim plays a deployment plan against many seeded games, in parallel, and reports
// how often the colony survives.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/janpfeifer/antsGo/internal/presets"
	"github.com/janpfeifer/antsGo/internal/profilers"
	"github.com/janpfeifer/antsGo/internal/simulate"
	"github.com/janpfeifer/antsGo/internal/ui/spinning"
	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

var (
	flagColony       = flag.String("colony", "full", "Colony preset to play with.")
	flagHive         = flag.String("hive", "full", "Hive preset to play against.")
	flagColonyParams = flag.String("colony_params", "", "Overrides to the colony preset, e.g.: \"food=10,tunnels=3,length=8,moat=3\".")
	flagHiveParams   = flag.String("hive_params", "", "Overrides to the hive preset, e.g.: \"armor=4,damage=1,waves=2:1/5:3\".")
	flagScenarios    = flag.String("scenarios", "", "YAML file with extra colonies, hives and plans.")
	flagPlan         = flag.String("plan", "", "Deployment plan to play, if --player is not set.")
	flagPlayer       = flag.String("player", "", "Automated player, e.g.: \"greedy:ant=Thrower,max_per_turn=1\". If empty, --plan is played.")
	flagNumGames     = flag.Int("num_games", 100, "Number of games to play, each with a different seed.")
	flagSeed         = flag.Uint64("seed", 1, "Seed of the first game, the following games use the next seeds.")
	flagMaxTurns     = flag.Int("max_turns", simulate.DefaultMaxTurns, "Max turns before a game is stopped as unfinished.")
	flagParallelism  = flag.Int("parallelism", 0, "Number of games played in parallel. If 0, the number of cores.")
	flagVerbose      = flag.Bool("verbose", false, "Print the result of each game.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNumGames <= 0 {
		klog.Fatalf("Invalid --num_games=%d", *flagNumGames)
	}

	p := presets.New()
	if *flagScenarios != "" {
		must.M(p.Load(*flagScenarios))
	}
	opts := simulate.Options{
		Colony:      must.M1(p.ColonyWithParams(*flagColony, *flagColonyParams)),
		Hive:        must.M1(p.HiveWithParams(*flagHive, *flagHiveParams)),
		Player:      *flagPlayer,
		MaxTurns:    *flagMaxTurns,
		Parallelism: *flagParallelism,
	}
	if *flagPlan != "" {
		opts.Plan = must.M1(p.Plan(*flagPlan))
	}

	// Capture Control+C
	ctx, cancel := context.WithCancel(context.Background())
	spinning.SafeInterrupt(cancel, 3*time.Second)
	defer cancel()

	stopProfilers := must.M1(profilers.Setup())
	defer func() { must.M(stopProfilers()) }()

	start := time.Now()
	s := spinning.New(ctx, os.Stdout)
	opts.OnProgress = func(done, total int, summary simulate.Summary) {
		s.SetMessage("Playing %q vs %q: %d of %d games (%d won, %d lost) in %s",
			*flagColony, *flagHive, done, total, summary.Won, summary.Lost, time.Since(start).Round(time.Millisecond))
	}
	results, err := simulate.Run(ctx, opts, simulate.Seeds(*flagSeed, *flagNumGames))
	s.Done()
	if err != nil {
		klog.Exitf("Simulation failed: %+v", err)
	}

	if *flagVerbose {
		for _, r := range results {
			fmt.Printf("\tseed=%d: %s after %d turns, food=%d, %d failed deployments\n",
				r.Seed, r.Outcome, r.Turns, r.FoodLeft, r.FailedDeployments)
		}
	}
	fmt.Printf("Colony %q vs hive %q: %s\n", *flagColony, *flagHive, simulate.Summarize(results))
}
