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

// DamageEvent records one application of damage.
type DamageEvent struct {
	Source  ecs.EntityID
	Target  ecs.EntityID
	Amount  int
	Channel types.DamageChannel
	Killed  bool
}

// CombatReport is everything a CollisionSystem.Update changed.
type CombatReport struct {
	Damage              []DamageEvent
	Destroyed           []ecs.EntityID
	Killed              []ecs.EntityID // enemies that died this tick (also in Destroyed)
	Pickups             []ecs.EntityID // experience pickups dropped this tick
	ExperienceCollected int
	PlayerDied          bool
}

// CollisionSystem turns overlaps into damage, deaths, loot and experience.
//
// Update runs in a fixed order:
//  1. invulnerability windows advance
//  2. player vs enemy contact
//  3. projectile vs enemy
//  4. melee arc vs enemy, hostile arc vs player
//  5. player vs experience pickup
//  6. enemies that died in 2-4 are destroyed and drop a pickup
//  7. projectiles leaving the world bounce or are destroyed
type CollisionSystem struct {
	entityManager *ecs.EntityManager
	combat        *config.CombatConfig
	world         *config.WorldConfig

	// per-tick scratch state
	report      CombatReport
	dead        []ecs.EntityID
	hitThisTick map[ecs.EntityID]bool
}

// NewCollisionSystem creates the system.
func NewCollisionSystem(em *ecs.EntityManager, combat *config.CombatConfig, world *config.WorldConfig) *CollisionSystem {
	return &CollisionSystem{
		entityManager: em,
		combat:        combat,
		world:         world,
		hitThisTick:   make(map[ecs.EntityID]bool),
	}
}

// SetConfig swaps combat and world tuning.
func (s *CollisionSystem) SetConfig(combat *config.CombatConfig, world *config.WorldConfig) {
	s.combat = combat
	s.world = world
}

// Update resolves one tick of combat.
func (s *CollisionSystem) Update(deltaTime float64) CombatReport {
	s.report = CombatReport{}
	s.dead = s.dead[:0]
	for k := range s.hitThisTick {
		delete(s.hitThisTick, k)
	}

	s.advanceInvulnerability(deltaTime)
	s.resolveContact()
	s.resolveProjectiles()
	s.resolveMelee(deltaTime)
	s.collectPickups()
	s.sweepDeadEnemies()
	s.resolveBounds()

	return s.report
}

func (s *CollisionSystem) advanceInvulnerability(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.InvulnerabilityComponent](s.entityManager) {
		inv, _ := ecs.GetComponent[*components.InvulnerabilityComponent](s.entityManager, id)
		if inv.Advance(dt) {
			if health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, id); ok {
				health.SetInvulnerable(false)
			}
		}
	}
}

func (s *CollisionSystem) enemies() []ecs.EntityID {
	return ecs.GetEntitiesWith4[*components.EnemyComponent, *components.HealthComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
}

func (s *CollisionSystem) players() []ecs.EntityID {
	return ecs.GetEntitiesWith4[*components.PlayerComponent, *components.HealthComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
}

// damage applies amount to target unless an open window covers channel, then
// opens the target's regular window. Returns false when the hit was absorbed.
func (s *CollisionSystem) damage(source, target ecs.EntityID, amount int, channel types.DamageChannel) bool {
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, target)
	if !ok || health.IsDead() {
		return false
	}
	inv, hasWindow := ecs.GetComponent[*components.InvulnerabilityComponent](s.entityManager, target)
	if hasWindow && inv.Blocks(channel) {
		return false
	}

	applied, died := health.ApplyDamage(amount)
	if hasWindow && !died {
		inv.Open()
		health.SetInvulnerable(true)
	}
	s.report.Damage = append(s.report.Damage, DamageEvent{
		Source:  source,
		Target:  target,
		Amount:  applied,
		Channel: channel,
		Killed:  died,
	})
	return true
}

func (s *CollisionSystem) resolveContact() {
	players := s.players()
	enemies := s.enemies()

	for _, playerID := range players {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
		if health.IsDead() {
			continue
		}
		pPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		pCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)

		for _, enemyID := range enemies {
			eHealth, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
			if eHealth.IsDead() {
				continue
			}
			ePos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
			eCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemyID)
			if !checkAABBCollision(pPos, pCol, ePos, eCol) {
				continue
			}

			if !s.damage(enemyID, playerID, s.combat.ContactDamage, types.ChannelContact) {
				break // player window open: no contact damage this tick
			}
			if health.IsDead() {
				s.report.PlayerDied = true
				log.Printf("[CollisionSystem] Player %d died (contact with %d)", playerID, enemyID)
			}

			// knock-back grace for the enemy too, unless it is already protected
			if inv, ok := ecs.GetComponent[*components.InvulnerabilityComponent](s.entityManager, enemyID); ok && !inv.Active {
				inv.Open()
				eHealth.SetInvulnerable(true)
			}
			break // one contact hit per player per tick
		}
	}
}

func (s *CollisionSystem) resolveProjectiles() {
	projectiles := ecs.GetEntitiesWith3[*components.ProjectileComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)
	enemies := s.enemies()

	for _, projID := range projectiles {
		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projID)
		pPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, projID)
		pCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, projID)

		for _, enemyID := range enemies {
			if s.hitThisTick[enemyID] {
				continue
			}
			eHealth, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
			if eHealth.IsDead() {
				continue
			}
			ePos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
			eCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, enemyID)
			if !checkAABBCollision(pPos, pCol, ePos, eCol) {
				continue
			}

			if !s.damage(projID, enemyID, proj.Damage, types.ChannelPlayerAttack) {
				continue // invulnerable enemies do not consume pierce or bounce
			}
			s.hitThisTick[enemyID] = true
			if eHealth.IsDead() {
				s.dead = append(s.dead, enemyID)
			}

			if proj.PierceRemaining > 0 {
				proj.PierceRemaining--
				continue
			}
			if proj.BounceRemaining > 0 {
				proj.BounceRemaining--
				if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, projID); ok {
					vel.VX, vel.VY = -vel.VX, -vel.VY
				}
				continue
			}
			s.destroy(projID)
			break
		}
	}
}

func (s *CollisionSystem) resolveMelee(dt float64) {
	hitboxes := ecs.GetEntitiesWith2[*components.MeleeHitboxComponent, *components.PositionComponent](s.entityManager)
	enemies := s.enemies()
	players := s.players()

	for _, hbID := range hitboxes {
		hb, _ := ecs.GetComponent[*components.MeleeHitboxComponent](s.entityManager, hbID)
		hPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, hbID)

		// the swing follows its owner
		if ownerPos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, hb.Owner); ok {
			hPos.X, hPos.Y = ownerPos.X, ownerPos.Y
		}
		origin := vectorOf(hPos)

		targets, channel := enemies, types.ChannelPlayerAttack
		if hb.Hostile {
			targets, channel = players, types.ChannelEnemyAttack
		}

		for _, targetID := range targets {
			if hb.HitTargets[targetID] {
				continue
			}
			health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, targetID)
			if health.IsDead() {
				continue
			}
			tPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, targetID)
			if !inArc(origin, vectorOf(tPos), hb.Radius, hb.Facing, hb.ArcAngle) {
				continue
			}
			if !s.damage(hbID, targetID, hb.Damage, channel) {
				continue
			}
			hb.HitTargets[targetID] = true
			if !health.IsDead() {
				continue
			}
			if hb.Hostile {
				s.report.PlayerDied = true
				log.Printf("[CollisionSystem] Player %d died (attack from %d)", targetID, hb.Owner)
			} else {
				s.dead = append(s.dead, targetID)
			}
		}

		hb.Timer += dt
		if hb.Timer >= hb.Duration {
			s.destroy(hbID)
		}
	}
}

func (s *CollisionSystem) collectPickups() {
	players := s.players()
	pickups := ecs.GetEntitiesWith3[*components.ExperiencePickupComponent,
		*components.PositionComponent, *components.CollisionComponent](s.entityManager)

	for _, playerID := range players {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, playerID)
		if health.IsDead() {
			continue
		}
		player, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, playerID)
		pPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, playerID)
		pCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, playerID)

		for _, pickupID := range pickups {
			if !s.entityManager.Exists(pickupID) {
				continue // taken by an earlier player
			}
			pickup, _ := ecs.GetComponent[*components.ExperiencePickupComponent](s.entityManager, pickupID)
			kPos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, pickupID)
			kCol, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, pickupID)
			if !checkAABBCollision(pPos, pCol, kPos, kCol) {
				continue
			}
			player.Experience += pickup.Amount
			s.report.ExperienceCollected += pickup.Amount
			s.destroy(pickupID)
		}
	}
}

func (s *CollisionSystem) sweepDeadEnemies() {
	for _, enemyID := range s.dead {
		if !s.entityManager.Exists(enemyID) {
			continue
		}
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, enemyID)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, enemyID)
		x, y := pos.X, pos.Y
		amount, source := enemy.ExperienceYield, enemy.Type.String()

		s.destroy(enemyID)
		s.report.Killed = append(s.report.Killed, enemyID)

		pickupID, err := entities.NewExperiencePickup(s.entityManager, s.combat, x, y, amount, source)
		if err != nil {
			log.Printf("[CollisionSystem] WARNING: no pickup for enemy %d: %v", enemyID, err)
			continue
		}
		s.report.Pickups = append(s.report.Pickups, pickupID)
	}
}

func (s *CollisionSystem) resolveBounds() {
	projectiles := ecs.GetEntitiesWith2[*components.ProjectileComponent, *components.PositionComponent](s.entityManager)
	w, h := s.world.Width, s.world.Height

	for _, projID := range projectiles {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, projID)
		outX := pos.X < 0 || pos.X > w
		outY := pos.Y < 0 || pos.Y > h
		if !outX && !outY {
			continue
		}

		proj, _ := ecs.GetComponent[*components.ProjectileComponent](s.entityManager, projID)
		if proj.BounceRemaining <= 0 {
			s.destroy(projID)
			continue
		}
		proj.BounceRemaining--

		vel, ok := ecs.GetComponent[*components.VelocityComponent](s.entityManager, projID)
		if !ok {
			vel = &components.VelocityComponent{}
		}
		switch {
		case pos.X < 0:
			pos.X, vel.VX = 0, math.Abs(vel.VX)
		case pos.X > w:
			pos.X, vel.VX = w, -math.Abs(vel.VX)
		}
		switch {
		case pos.Y < 0:
			pos.Y, vel.VY = 0, math.Abs(vel.VY)
		case pos.Y > h:
			pos.Y, vel.VY = h, -math.Abs(vel.VY)
		}
	}
}

func (s *CollisionSystem) destroy(id ecs.EntityID) {
	if s.entityManager.DestroyEntity(id) {
		s.report.Destroyed = append(s.report.Destroyed, id)
	}
}
