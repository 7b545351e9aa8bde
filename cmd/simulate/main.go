// Command simulate runs N independent games across a worker pool, logs the
// home/away win totals, and with -persist saves each game's event-tag feed,
// grounded on
// main.go's Config bootstrap and simulation/engine.go's
// SimulationEngine.RunSimulation worker distribution.
package main

import (
	"context"
	"flag"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	charmlog "github.com/charmbracelet/log"

	"github.com/baseball-sim/sim-core/config"
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/rng"
	"github.com/baseball-sim/sim-core/internal/sim"
	"github.com/baseball-sim/sim-core/store"
)

// gameResult is one worker's outcome for a single simulated game.
type gameResult struct {
	gameID    uuid.UUID
	simNumber int
	homeScore float64
	awayScore float64
	eventTags []string
}

func main() {
	runs := flag.Int("runs", 0, "number of games to simulate (0 = config default)")
	persist := flag.Bool("persist", false, "persist each game's event feed to Postgres")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		charmlog.Fatal("failed to load config", "err", err)
	}
	if *runs > 0 {
		cfg.SimulationRuns = *runs
	}

	var st *store.Store
	if *persist {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		st, err = store.Open(ctx, cfg.DSN())
		cancel()
		if err != nil {
			charmlog.Fatal("failed to open store", "err", err)
		}
		defer st.Close()

		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
		err = st.EnsureSchema(ctx)
		cancel()
		if err != nil {
			charmlog.Fatal("failed to ensure schema", "err", err)
		}
	}

	charmlog.Info("starting simulation run", "games", cfg.SimulationRuns, "workers", cfg.Workers)

	results := runWorkerPool(cfg)

	var homeWins, awayWins int
	for _, r := range results {
		switch {
		case r.homeScore > r.awayScore:
			homeWins++
		case r.awayScore > r.homeScore:
			awayWins++
		}

		if st == nil {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := st.AppendGameEvents(ctx, r.gameID, r.eventTags); err != nil {
			charmlog.Warn("failed to persist game events", "game_id", r.gameID, "err", err)
		}
		cancel()
	}

	charmlog.Info("simulation run complete",
		"total", len(results), "home_wins", homeWins, "away_wins", awayWins)

	if len(results) == 0 {
		os.Exit(1)
	}
}

// runWorkerPool distributes cfg.SimulationRuns games evenly across
// cfg.Workers goroutines; every game gets its own PRNG and freshly generated World (per
// spec.md §5: "each holds its own PRNG, game, and a private world").
func runWorkerPool(cfg *config.Config) []gameResult {
	resultsChan := make(chan gameResult, cfg.SimulationRuns)
	var wg sync.WaitGroup

	perWorker := cfg.SimulationRuns / cfg.Workers
	remainder := cfg.SimulationRuns % cfg.Workers

	for worker := 0; worker < cfg.Workers; worker++ {
		workerRuns := perWorker
		if worker < remainder {
			workerRuns++
		}

		wg.Add(1)
		go func(workerID, count int) {
			defer wg.Done()
			for j := 0; j < count; j++ {
				simNumber := workerID*perWorker + j + 1
				resultsChan <- simulateOneGame(cfg, simNumber)
			}
		}(worker, workerRuns)
	}

	go func() {
		wg.Wait()
		close(resultsChan)
	}()

	var results []gameResult
	for r := range resultsChan {
		results = append(results, r)
	}
	return results
}

// simulateOneGame builds a private World and PRNG, seeded from simNumber so
// every game in the run is independently reproducible, and ticks it to
// completion.
func simulateOneGame(cfg *config.Config, simNumber int) gameResult {
	source := rng.New(uint64(simNumber)*2654435761+1, uint64(simNumber)*40503+7)
	world := entities.New(cfg.SeasonRuleset)

	homeID := world.GenTeam(source, "Home", "H")
	awayID := world.GenTeam(source, "Away", "A")

	game := sim.NewGame(homeID, awayID, 1, nil, world, source)
	events := sim.RunGame(game, world, source)

	tags := make([]string, len(events))
	for i, e := range events {
		tags[i] = string(e.Kind)
	}

	return gameResult{
		gameID:    game.ID,
		simNumber: simNumber,
		homeScore: game.HomeTeam.Score,
		awayScore: game.AwayTeam.Score,
		eventTags: tags,
	}
}
