package sim

import (
	"github.com/baseball-sim/sim-core/internal/entities"
	"github.com/baseball-sim/sim-core/internal/rng"
)

// RunGame ticks game to completion, applying each event as it is produced,
// and returns the full ordered event log — the host loop contract fixed by
// spec.md §6: construct Game, repeatedly tick+apply, stop at GameOver.
func RunGame(game *Game, world *entities.World, r *rng.Source) []Event {
	var events []Event
	for {
		event := Tick(game, world, r)
		event.Apply(game, world)
		events = append(events, event)
		if event.Kind == KindGameOver {
			return events
		}
	}
}
