package systems

import (
	"math"
	"testing"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

func TestPlayerAttackSystemTargetsNearestEnemy(t *testing.T) {
	em, cfg := newTestWorld(t)
	player := spawnPlayer(t, em, cfg, 400, 300)
	spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 550, 300) // 150 px
	spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 400, 200) // 100 px, nearest
	spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 0, 0)     // out of range

	system := NewPlayerAttackSystem(em, &cfg.Player, &cfg.Combat)
	fired := system.Update(0.016)
	if len(fired) != 1 {
		t.Fatalf("fired %d projectiles, want 1", len(fired))
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, fired[0])
	if math.Abs(vel.VX) > 1e-9 || math.Abs(vel.VY+cfg.Combat.ProjectileSpeed) > 1e-9 {
		t.Errorf("projectile velocity = (%v, %v), want straight up", vel.VX, vel.VY)
	}
	pc, _ := ecs.GetComponent[*components.PlayerComponent](em, player)
	if math.Abs(pc.Facing+math.Pi/2) > 1e-9 {
		t.Errorf("facing = %v, want -Pi/2", pc.Facing)
	}
}

func TestPlayerAttackSystemCooldown(t *testing.T) {
	em, cfg := newTestWorld(t)
	spawnPlayer(t, em, cfg, 400, 300)
	spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 450, 300)
	system := NewPlayerAttackSystem(em, &cfg.Player, &cfg.Combat)

	// 4 attacks per second: one shot every 0.25s
	total := 0
	for i := 0; i < 10; i++ {
		total += len(system.Update(0.1))
	}
	if total != 4 {
		t.Errorf("fired %d shots in 1s, want 4", total)
	}
}

func TestPlayerAttackSystemHoldsFireWithoutTarget(t *testing.T) {
	em, cfg := newTestWorld(t)
	player := spawnPlayer(t, em, cfg, 400, 300)
	system := NewPlayerAttackSystem(em, &cfg.Player, &cfg.Combat)

	if fired := system.Update(1.0); len(fired) != 0 {
		t.Fatalf("fired %v with no enemy", fired)
	}
	pc, _ := ecs.GetComponent[*components.PlayerComponent](em, player)
	if pc.AttackCooldown > 0 {
		t.Errorf("weapon should stay ready, cooldown %v", pc.AttackCooldown)
	}

	spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 450, 300)
	if fired := system.Update(0.016); len(fired) != 1 {
		t.Errorf("ready weapon should fire at once, fired %d", len(fired))
	}
}

func TestPlayerAttackSystemSwing(t *testing.T) {
	em, cfg := newTestWorld(t)
	player := spawnPlayer(t, em, cfg, 400, 300)
	system := NewPlayerAttackSystem(em, &cfg.Player, &cfg.Combat)

	id, err := system.Swing(player, math.Pi)
	if err != nil {
		t.Fatalf("Swing failed: %v", err)
	}
	hb, ok := ecs.GetComponent[*components.MeleeHitboxComponent](em, id)
	if !ok || hb.Owner != player || hb.Facing != math.Pi || hb.Damage != cfg.Combat.MeleeDamage {
		t.Errorf("hitbox = %+v", hb)
	}

	if _, err := system.Swing(ecs.EntityID(999), 0); err == nil {
		t.Error("swing for a missing player should fail")
	}
}

func TestPlayerAttackSystemUsesItemStats(t *testing.T) {
	em, cfg := newTestWorld(t)
	player := spawnPlayer(t, em, cfg, 400, 300)
	spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 500, 300)
	stats, _ := ecs.GetComponent[*components.PlayerStatsComponent](em, player)
	stats.DamageMultiplier = 1.2
	stats.ProjectileSpeedMultiplier = 1.1
	stats.ProjectileSizeMultiplier = 1.5
	system := NewPlayerAttackSystem(em, &cfg.Player, &cfg.Combat)

	fired := system.Update(0.016)
	if len(fired) != 1 {
		t.Fatalf("fired %d projectiles, want 1", len(fired))
	}
	proj, _ := ecs.GetComponent[*components.ProjectileComponent](em, fired[0])
	if proj.Damage != 30 {
		t.Errorf("projectile damage = %d, want 30", proj.Damage)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, fired[0])
	if math.Abs(vel.VX-550) > 1e-9 {
		t.Errorf("projectile VX = %v, want 550", vel.VX)
	}
	col, _ := ecs.GetComponent[*components.CollisionComponent](em, fired[0])
	if col.Width != 12 || col.Height != 12 {
		t.Errorf("projectile size = %vx%v, want 12x12", col.Width, col.Height)
	}

	hitbox, err := system.Swing(player, 0)
	if err != nil {
		t.Fatalf("Swing failed: %v", err)
	}
	hb, _ := ecs.GetComponent[*components.MeleeHitboxComponent](em, hitbox)
	if hb.Damage != 36 {
		t.Errorf("swing damage = %d, want 36", hb.Damage)
	}
}
