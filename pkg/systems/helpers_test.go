package systems

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/entities"
	"github.com/gonewx/survivor/pkg/types"
)

// sequenceRandom replays values in a loop.
type sequenceRandom struct {
	values []float64
	i      int
}

func (r *sequenceRandom) Float64() float64 {
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func newSeeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// failingCreator fails (or panics) a number of times, then delegates.
type failingCreator struct {
	inner    EnemyCreator
	failures int
	panics   bool
	calls    int
}

func (c *failingCreator) CreateEnemy(t types.EnemyType, x, y float64) (ecs.EntityID, error) {
	c.calls++
	if c.failures > 0 {
		c.failures--
		if c.panics {
			panic("factory exploded")
		}
		return 0, errors.New("factory unavailable")
	}
	return c.inner.CreateEnemy(t, x, y)
}

func newTestWorld(t *testing.T) (*ecs.EntityManager, *config.BalanceConfig) {
	t.Helper()
	return ecs.NewEntityManager(), config.DefaultBalanceConfig()
}

func spawnEnemy(t *testing.T, em *ecs.EntityManager, cfg *config.BalanceConfig, et types.EnemyType, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewEnemy(em, cfg, et, x, y)
	if err != nil {
		t.Fatalf("NewEnemy failed: %v", err)
	}
	return id
}

func spawnPlayer(t *testing.T, em *ecs.EntityManager, cfg *config.BalanceConfig, x, y float64) ecs.EntityID {
	t.Helper()
	id, err := entities.NewPlayer(em, &cfg.Player, x, y)
	if err != nil {
		t.Fatalf("NewPlayer failed: %v", err)
	}
	return id
}

func healthOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	h, ok := ecs.GetComponent[*components.HealthComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no health", id)
	}
	return h
}
