// verify_waves runs the simulation headless and prints wave transitions,
// spawn counts and the final tally. The player stands still at the world
// center unless -move is set.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/game"
	"github.com/gonewx/survivor/pkg/types"
)

var (
	seconds    = flag.Float64("seconds", 420, "game seconds to simulate")
	seed       = flag.Int64("seed", 1, "random seed")
	dt         = flag.Float64("dt", 1.0/60, "seconds per tick")
	configPath = flag.String("config", "", "balance file (default: built-in tuning)")
	move       = flag.Bool("move", false, "walk the player in a circle")
	verbose    = flag.Bool("verbose", false, "keep system logs")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultBalanceConfig()
	if *configPath != "" {
		loaded, err := config.LoadBalanceConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *dt <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -dt must be positive")
		os.Exit(1)
	}

	sim, err := game.NewSimulation(cfg, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seed %d, %.0fs at dt %.4f, max population %d\n", *seed, *seconds, *dt, cfg.Spawn.MaxPopulation)
	fmt.Printf("%8s  %-6s  %6s  %6s  %s\n", "time", "wave", "active", "cap", "spawned by type")

	spawnedByType := make(map[types.EnemyType]int)
	wave := -1
	nextReport := 0.0
	ticks := int(math.Ceil(*seconds / *dt))

	for i := 0; i < ticks; i++ {
		if *move {
			angle := float64(i) * *dt / 2
			sim.SetPlayerDirection(math.Cos(angle), math.Sin(angle))
		}
		report := sim.Update(*dt)
		for _, id := range report.Spawned {
			if t, ok := enemyType(sim, id); ok {
				spawnedByType[t]++
			}
		}

		stats := sim.SpawnerStats()
		if stats.WaveIndex != wave {
			wave = stats.WaveIndex
			fmt.Printf("%7.1fs  -> wave %s (cap %d)\n", stats.Elapsed, stats.WaveName, stats.PopulationCap)
		}
		if stats.Elapsed >= nextReport {
			nextReport += 30
			fmt.Printf("%7.1fs  %-6s  %6d  %6d  %s\n", stats.Elapsed, stats.WaveName, stats.ActiveEnemies, stats.PopulationCap, formatCounts(spawnedByType))
		}
		if sim.State().GameOver {
			fmt.Printf("%7.1fs  player died\n", stats.Elapsed)
			break
		}
	}

	state := sim.State()
	stats := sim.SpawnerStats()
	fmt.Println()
	fmt.Printf("elapsed %.1fs, frames %d\n", state.Elapsed, state.Frames)
	fmt.Printf("spawned %d (%s), bosses %d\n", stats.TotalSpawned, formatCounts(spawnedByType), state.BossesSpawned)
	fmt.Printf("kills %d, experience %d, level-ups %d\n", state.Kills, state.ExperienceCollected, state.LevelUps)
}

func enemyType(sim *game.Simulation, id ecs.EntityID) (types.EnemyType, bool) {
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](sim.EntityManager(), id)
	if !ok {
		return types.EnemyUnknown, false
	}
	return enemy.Type, true
}

func formatCounts(counts map[types.EnemyType]int) string {
	keys := make([]types.EnemyType, 0, len(counts))
	for t := range counts {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	s := ""
	for i, t := range keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%v=%d", t, counts[t])
	}
	if s == "" {
		return "-"
	}
	return s
}
