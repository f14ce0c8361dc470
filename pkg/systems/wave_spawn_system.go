package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
	"github.com/gonewx/survivor/pkg/utils"
)

// EnemyCreator builds an enemy entity. entities.EnemyFactory is the production
// implementation.
type EnemyCreator interface {
	CreateEnemy(t types.EnemyType, x, y float64) (ecs.EntityID, error)
}

// SpawnerStats is a read-only snapshot of the spawner.
type SpawnerStats struct {
	WaveName      string
	WaveIndex     int
	ActiveEnemies int
	TotalSpawned  int
	NextSpawnIn   float64
	Elapsed       float64
	PopulationCap int
	ActiveByType  map[types.EnemyType]int
}

// WaveSpawner spawns enemies over time following the wave schedule.
//
// Time is game time accumulated from Update's dt. Each Update:
//  1. advances the wave (never backwards), drawing a fresh interval on change
//  2. forgets tracked enemies that were destroyed or died
//  3. spawns at most one enemy when the interval elapsed and the live count is
//     below the wave's population cap
type WaveSpawner struct {
	entityManager *ecs.EntityManager
	spawnConfig   *config.SpawnConfig
	difficulty    *DifficultyEngine
	rng           RandomSource
	creator       EnemyCreator
	pool          *SpawnPositionPool

	waveIndex    int
	elapsed      float64
	lastSpawn    float64
	nextInterval float64
	tracked      []ecs.EntityID
	totalSpawned int
}

// NewWaveSpawner creates a spawner starting in the first wave.
// The position pool is generated here from rng.
func NewWaveSpawner(em *ecs.EntityManager, spawn *config.SpawnConfig, world config.WorldConfig, rng RandomSource, creator EnemyCreator) *WaveSpawner {
	s := &WaveSpawner{
		entityManager: em,
		spawnConfig:   spawn,
		difficulty:    NewDifficultyEngine(spawn),
		rng:           rng,
		creator:       creator,
		pool:          NewSpawnPositionPool(rng, spawn.PositionPoolSize, world.Width, world.Height, spawn.SpawnMargin),
		nextInterval:  spawn.InitialSpawnInterval,
		tracked:       make([]ecs.EntityID, 0, spawn.MaxPopulation),
	}
	log.Printf("[WaveSpawner] Started in wave %s, %d spawn positions", s.currentWave().Name, s.pool.Len())
	return s
}

func (s *WaveSpawner) currentWave() *config.WaveConfig {
	return &s.spawnConfig.Waves[s.waveIndex]
}

// Update advances the spawner by dt seconds and returns the enemies created.
func (s *WaveSpawner) Update(deltaTime float64) []ecs.EntityID {
	if deltaTime < 0 {
		utils.Invariant(false, "[WaveSpawner] negative dt %v", deltaTime)
		deltaTime = 0
	}
	s.elapsed += deltaTime

	s.updateWave()
	s.purgeTracked()

	if !s.shouldSpawn() {
		return nil
	}

	enemyType := SelectEnemyType(s.rng, s.currentWave(), s.spawnConfig.DefaultType())
	id, err := s.spawn(enemyType)
	if err != nil {
		// timers untouched: retried on the next tick
		log.Printf("[WaveSpawner] WARNING: failed to spawn %v: %v", enemyType, err)
		return nil
	}

	s.lastSpawn = s.elapsed
	s.nextInterval = s.drawInterval()
	return []ecs.EntityID{id}
}

func (s *WaveSpawner) updateWave() {
	idx := s.difficulty.WaveIndexAt(s.elapsed)
	if idx <= s.waveIndex {
		return
	}
	old := s.currentWave().Name
	s.waveIndex = idx
	s.nextInterval = s.drawInterval()
	log.Printf("[WaveSpawner] Wave %s -> %s at %.1fs (spawned so far: %d)",
		old, s.currentWave().Name, s.elapsed, s.totalSpawned)
}

func (s *WaveSpawner) purgeTracked() {
	kept := s.tracked[:0]
	for _, id := range s.tracked {
		if !s.entityManager.Exists(id) {
			continue
		}
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok && health.IsDead() {
			continue
		}
		kept = append(kept, id)
	}
	s.tracked = kept
}

func (s *WaveSpawner) shouldSpawn() bool {
	if s.elapsed-s.lastSpawn < s.nextInterval {
		return false
	}
	return len(s.tracked) < s.difficulty.CalculatePopulationCap(s.waveIndex)
}

func (s *WaveSpawner) drawInterval() float64 {
	min, max := s.difficulty.SpawnIntervalRange(s.waveIndex)
	return Uniform(s.rng, min, max)
}

// spawn creates and tracks one enemy at the next pool position.
// A panicking creator is reported as an error.
func (s *WaveSpawner) spawn(enemyType types.EnemyType) (id ecs.EntityID, err error) {
	pos := s.pool.Next()

	defer func() {
		if r := recover(); r != nil {
			id, err = 0, fmt.Errorf("enemy factory panic: %v", r)
		}
	}()

	id, err = s.creator.CreateEnemy(enemyType, pos.X, pos.Y)
	if err != nil {
		return 0, err
	}
	s.tracked = append(s.tracked, id)
	s.totalSpawned++
	return id, nil
}

// ForceSpawnBoss spawns a principal immediately, ignoring interval and cap.
// Spawn timers are not changed.
func (s *WaveSpawner) ForceSpawnBoss() (ecs.EntityID, error) {
	id, err := s.spawn(types.EnemyPrincipal)
	if err != nil {
		log.Printf("[WaveSpawner] WARNING: forced boss spawn failed: %v", err)
		return 0, err
	}
	log.Printf("[WaveSpawner] Forced boss spawn: entity %d", id)
	return id, nil
}

// ClearAll destroys every tracked enemy and returns how many were removed.
func (s *WaveSpawner) ClearAll() int {
	removed := 0
	for _, id := range s.tracked {
		if s.entityManager.Exists(id) && s.entityManager.DestroyEntity(id) {
			removed++
		}
	}
	s.tracked = s.tracked[:0]
	log.Printf("[WaveSpawner] Cleared %d enemies", removed)
	return removed
}

// ApplyConfig swaps the wave schedule. Elapsed time, spawn timers, the current
// wave index and the position pool are kept.
func (s *WaveSpawner) ApplyConfig(spawn *config.SpawnConfig) {
	s.spawnConfig = spawn
	s.difficulty.SetSpawnConfig(spawn)
	if s.waveIndex >= len(spawn.Waves) {
		s.waveIndex = len(spawn.Waves) - 1
	}
	log.Printf("[WaveSpawner] Applied new spawn config (%d waves)", len(spawn.Waves))
}

// Stats returns a snapshot; it does not change spawner state.
func (s *WaveSpawner) Stats() SpawnerStats {
	byType := make(map[types.EnemyType]int)
	active := 0
	for _, id := range s.tracked {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		if !ok {
			continue
		}
		if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok && health.IsDead() {
			continue
		}
		byType[enemy.Type]++
		active++
	}

	nextIn := s.nextInterval - (s.elapsed - s.lastSpawn)
	if nextIn < 0 {
		nextIn = 0
	}

	return SpawnerStats{
		WaveName:      s.currentWave().Name,
		WaveIndex:     s.waveIndex,
		ActiveEnemies: active,
		TotalSpawned:  s.totalSpawned,
		NextSpawnIn:   nextIn,
		Elapsed:       s.elapsed,
		PopulationCap: s.difficulty.CalculatePopulationCap(s.waveIndex),
		ActiveByType:  byType,
	}
}

// Elapsed returns game time since the spawner was created.
func (s *WaveSpawner) Elapsed() float64 {
	return s.elapsed
}

// Tracked returns a copy of the live enemy ids known to the spawner.
func (s *WaveSpawner) Tracked() []ecs.EntityID {
	out := make([]ecs.EntityID, len(s.tracked))
	copy(out, s.tracked)
	return out
}

// Track adds an externally created enemy (boss minions) to the population.
func (s *WaveSpawner) Track(id ecs.EntityID) {
	s.tracked = append(s.tracked, id)
	s.totalSpawned++
}

// Remaining returns how many more enemies fit under the current wave's
// population cap. Dead or destroyed enemies are forgotten first.
func (s *WaveSpawner) Remaining() int {
	s.purgeTracked()
	room := s.difficulty.CalculatePopulationCap(s.waveIndex) - len(s.tracked)
	if room < 0 {
		return 0
	}
	return room
}
