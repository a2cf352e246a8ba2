// Package simulate plays a fixed deployment plan against a colony and hive over many random
// seeds, in parallel, and collects the outcomes.
package simulate

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"

	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/antsGo/internal/players"
	"github.com/janpfeifer/antsGo/internal/presets"
	"github.com/janpfeifer/antsGo/internal/state"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"
)

// DefaultMaxTurns after which an unfinished game is stopped.
const DefaultMaxTurns = 100

// Options of a simulation.
type Options struct {
	Colony state.ColonyConfig
	Hive   state.HiveConfig

	// Player configuration (see players.New) deploying the ants. If empty, the ants of Plan
	// are deployed instead.
	Player string
	Plan   presets.Plan

	// MaxTurns to play: games still ongoing at this point are reported as OutcomeOngoing.
	// If 0, DefaultMaxTurns is used.
	MaxTurns int

	// Parallelism is the number of games played at the same time. If 0, runtime.GOMAXPROCS(0) is used.
	Parallelism int

	// OnProgress, if set, is called after each game finishes with the results so far.
	// Calls are serialized.
	OnProgress func(done, total int, summary Summary)
}

// Result of one game.
type Result struct {
	Seed    uint64
	Outcome state.Outcome
	Turns   int

	// FoodLeft in the colony at the end of the game.
	FoodLeft int

	// FailedDeployments is the number of commands of the player that were refused:
	// lack of food or invalid placement.
	FailedDeployments int
}

// Validate the options, filling in defaults.
func (opts *Options) Validate() error {
	if err := opts.Colony.Validate(); err != nil {
		return err
	}
	if err := opts.Hive.Validate(); err != nil {
		return err
	}
	if err := opts.Plan.Validate(); err != nil {
		return err
	}
	if _, err := opts.newPlayer(); err != nil {
		return err
	}
	if opts.MaxTurns < 0 || opts.Parallelism < 0 {
		return errors.Errorf("invalid MaxTurns=%d or Parallelism=%d", opts.MaxTurns, opts.Parallelism)
	}
	if opts.MaxTurns == 0 {
		opts.MaxTurns = DefaultMaxTurns
	}
	if opts.Parallelism == 0 {
		opts.Parallelism = runtime.GOMAXPROCS(0)
	}
	return nil
}

// RunOne plays one game with the given seed. Panics in the engine are returned as errors.
func RunOne(opts Options, seed uint64) (result Result, err error) {
	if err = opts.Validate(); err != nil {
		return
	}
	return playSafe(opts, seed)
}

func (opts *Options) newPlayer() (players.Player, error) {
	if opts.Player == "" {
		return players.NewPlanPlayer(opts.Plan), nil
	}
	return players.New(opts.Player)
}

// playSafe is like play, but converts panics in the engine to errors.
func playSafe(opts Options, seed uint64) (result Result, err error) {
	if panicked := exceptions.TryCatch[error](func() { result, err = play(opts, seed) }); panicked != nil {
		err = panicked
	}
	if err != nil {
		err = errors.WithMessagef(err, "game with seed %d", seed)
	}
	return
}

func play(opts Options, seed uint64) (Result, error) {
	player, err := opts.newPlayer()
	if err != nil {
		return Result{}, err
	}
	colony := state.NewColony(opts.Colony, rand.New(rand.NewPCG(seed, seed)))
	game := state.NewGame(colony, state.NewHiveFromConfig(opts.Hive))
	result := Result{Seed: seed}
	for game.Turn() < opts.MaxTurns && !game.IsFinished() {
		failed := player.Play(game)
		for _, err := range failed {
			klog.V(2).Infof("Seed %d, turn %d: %v", seed, game.Turn(), err)
		}
		result.FailedDeployments += len(failed)
		game.TakeTurn()
	}
	result.Outcome = game.Outcome()
	result.Turns = game.Turn()
	result.FoodLeft = colony.Food()
	klog.V(1).Infof("Seed %d: %s after %d turns", seed, result.Outcome, result.Turns)
	return result, nil
}

// Run plays one game per seed, in parallel, and returns the results in the order of the seeds.
//
// If ctx is cancelled, games not yet started are skipped and ctx.Err() is returned
// instead of the results.
func Run(ctx context.Context, opts Options, seeds []uint64) ([]Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(seeds))
	var (
		mu      sync.Mutex
		done    int
		summary Summary
	)
	var wg errgroup.Group
	wg.SetLimit(opts.Parallelism)
	for ii, seed := range seeds {
		if ctx.Err() != nil {
			break
		}
		wg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			result, err := playSafe(opts, seed)
			if err != nil {
				return err
			}
			results[ii] = result
			m.record(ctx, result)

			mu.Lock()
			defer mu.Unlock()
			done++
			summary.Add(result)
			if opts.OnProgress != nil {
				opts.OnProgress(done, len(seeds), summary)
			}
			return nil
		})
	}
	if err := wg.Wait(); err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	return results, nil
}

// Seeds returns n consecutive seeds starting at first.
func Seeds(first uint64, n int) []uint64 {
	seeds := make([]uint64, n)
	for ii := range seeds {
		seeds[ii] = first + uint64(ii)
	}
	return seeds
}
