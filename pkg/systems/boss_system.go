package systems

import (
	"log"
	"math"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/config"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/entities"
	"github.com/gonewx/survivor/pkg/types"
)

// BossAttackEvent reports a boss attack to the presentation layer.
// Telegraph events announce an attack that executes TelegraphTime later.
type BossAttackEvent struct {
	Boss      ecs.EntityID
	Pattern   types.BossPattern
	Phase     types.BossPhase
	X, Y      float64
	Magnitude float64
	Telegraph bool
	Spawned   []ecs.EntityID // minions created by SummonMinions
	Hitbox    ecs.EntityID   // strike area of TeleportStrike, 0 otherwise
}

// MinionTracker owns the population cap that summoned minions count toward.
type MinionTracker interface {
	Track(id ecs.EntityID)
	// Remaining is how many more enemies fit under the current cap.
	Remaining() int
}

// BossSystem runs every live boss through the pattern selector each frame:
// clock, phase, regen, due attacks, then choice of the next attack.
type BossSystem struct {
	entityManager *ecs.EntityManager
	selector      *BossPatternSelector
	bossConfig    *config.BossConfig
	creator       EnemyCreator
	tracker       MinionTracker
}

// NewBossSystem creates the system. tracker may be nil.
func NewBossSystem(em *ecs.EntityManager, boss *config.BossConfig, rng RandomSource, creator EnemyCreator, tracker MinionTracker) *BossSystem {
	return &BossSystem{
		entityManager: em,
		selector:      NewBossPatternSelector(em, boss, rng),
		bossConfig:    boss,
		creator:       creator,
		tracker:       tracker,
	}
}

// Selector exposes the pattern selector.
func (s *BossSystem) Selector() *BossPatternSelector {
	return s.selector
}

// SetConfig swaps the boss tuning.
func (s *BossSystem) SetConfig(boss *config.BossConfig) {
	s.bossConfig = boss
	s.selector.SetConfig(boss)
}

// Update advances every boss by dt and returns the attacks telegraphed or executed.
func (s *BossSystem) Update(deltaTime float64) []BossAttackEvent {
	var events []BossAttackEvent

	bosses := ecs.GetEntitiesWith3[*components.BossComponent, *components.HealthComponent, *components.PositionComponent](s.entityManager)
	for _, id := range bosses {
		boss, _ := ecs.GetComponent[*components.BossComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		if health.IsDead() {
			continue
		}

		boss.Clock += deltaTime
		s.selector.UpdatePhase(id)
		s.selector.UpdateRegen(id, boss.Clock)

		// execute attacks whose telegraph has run out
		remaining := boss.Pending[:0]
		var due []components.PendingBossAttack
		for _, p := range boss.Pending {
			if p.ExecuteAt <= boss.Clock {
				due = append(due, p)
			} else {
				remaining = append(remaining, p)
			}
		}
		boss.Pending = remaining
		for _, p := range due {
			events = append(events, s.execute(id, boss, pos, p.Pattern))
		}

		if len(boss.Pending) > 0 {
			continue
		}
		pattern, ok := s.selector.NextPattern(id, boss.Clock)
		if !ok {
			continue
		}
		boss.Pending = append(boss.Pending, components.PendingBossAttack{
			Pattern:   pattern,
			ExecuteAt: boss.Clock + s.bossConfig.TelegraphTime,
		})
		events = append(events, BossAttackEvent{
			Boss:      id,
			Pattern:   pattern,
			Phase:     boss.Phase,
			X:         pos.X,
			Y:         pos.Y,
			Magnitude: s.magnitude(pattern),
			Telegraph: true,
		})
	}

	return events
}

func (s *BossSystem) magnitude(p types.BossPattern) float64 {
	if pc, ok := s.bossConfig.PatternConfig(p); ok {
		return pc.Magnitude
	}
	return 0
}

func (s *BossSystem) execute(id ecs.EntityID, boss *components.BossComponent, pos *components.PositionComponent, p types.BossPattern) BossAttackEvent {
	event := BossAttackEvent{
		Boss:      id,
		Pattern:   p,
		Phase:     boss.Phase,
		X:         pos.X,
		Y:         pos.Y,
		Magnitude: s.magnitude(p),
	}
	switch p {
	case types.PatternSummonMinions:
		event.Spawned = s.summon(id, pos, int(event.Magnitude))
	case types.PatternTeleportStrike:
		event.Hitbox = s.teleportStrike(id, pos, int(event.Magnitude))
		event.X, event.Y = pos.X, pos.Y
	}
	return event
}

// teleportStrike moves the boss toward the player and leaves a circular
// hostile hitbox at the landing point.
func (s *BossSystem) teleportStrike(bossID ecs.EntityID, pos *components.PositionComponent, damage int) ecs.EntityID {
	body := components.NewPrincipalBossBehavior()
	if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, bossID); ok {
		if b, ok := enemy.Behavior.(*components.PrincipalBossBehavior); ok {
			body = b
		}
	}

	if playerID, ok := findPlayer(s.entityManager); ok {
		target, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		dx, dy := target.X-pos.X, target.Y-pos.Y
		if dist := math.Hypot(dx, dy); dist > 0 {
			jump := math.Min(body.TeleportRange, math.Max(0, dist-body.StrikeOffset))
			pos.X += dx / dist * jump
			pos.Y += dy / dist * jump
		}
	}

	hitbox, err := entities.NewEnemyAttackHitbox(s.entityManager, bossID, pos.X, pos.Y,
		0, 2*math.Pi, body.StrikeRadius, damage, body.StrikeDuration)
	if err != nil {
		log.Printf("[BossSystem] WARNING: boss %d teleport strike failed: %v", bossID, err)
		return 0
	}
	log.Printf("[BossSystem] Boss %d teleported to (%.0f, %.0f)", bossID, pos.X, pos.Y)
	return hitbox
}

// summon places up to count korean teachers evenly on a circle around the
// boss. The tracker's population cap limits the count.
func (s *BossSystem) summon(bossID ecs.EntityID, pos *components.PositionComponent, count int) []ecs.EntityID {
	if s.tracker != nil {
		if room := s.tracker.Remaining(); room < count {
			log.Printf("[BossSystem] Boss %d summon capped at %d of %d minions", bossID, room, count)
			count = room
		}
	}
	if s.creator == nil || count <= 0 {
		return nil
	}
	spawned := make([]ecs.EntityID, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		x := pos.X + math.Cos(angle)*s.bossConfig.SummonRadius
		y := pos.Y + math.Sin(angle)*s.bossConfig.SummonRadius
		id, err := s.creator.CreateEnemy(types.EnemyKoreanTeacher, x, y)
		if err != nil {
			log.Printf("[BossSystem] WARNING: boss %d failed to summon minion: %v", bossID, err)
			continue
		}
		if s.tracker != nil {
			s.tracker.Track(id)
		}
		spawned = append(spawned, id)
	}
	log.Printf("[BossSystem] Boss %d summoned %d minions", bossID, len(spawned))
	return spawned
}
