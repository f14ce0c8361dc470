package systems

import (
	"math"
	"testing"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

func TestEnemyChaseSystemSteersAtPlayer(t *testing.T) {
	em, cfg := newTestWorld(t)
	spawnPlayer(t, em, cfg, 400, 300)
	enemy := spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 100, 300)

	NewEnemyChaseSystem(em, &cfg.Combat).Update(0.016)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	want := 2.0 * cfg.Combat.EnemySpeedScale // korean teacher speed 2.0
	if math.Abs(vel.VX-want) > 1e-9 || vel.VY != 0 {
		t.Errorf("velocity = (%v, %v), want (%v, 0)", vel.VX, vel.VY, want)
	}
}

func TestEnemyChaseSystemMathTeacherDash(t *testing.T) {
	em, cfg := newTestWorld(t)
	spawnPlayer(t, em, cfg, 400, 300)
	enemy := spawnEnemy(t, em, cfg, types.EnemyMathTeacher, 280, 300) // 120 px, inside dash range

	NewEnemyChaseSystem(em, &cfg.Combat).Update(0.016)

	e, _ := ecs.GetComponent[*components.EnemyComponent](em, enemy)
	dash, ok := e.Behavior.(*components.MathTeacherBehavior)
	if !ok || !dash.Dashing {
		t.Fatalf("math teacher at 120 px should dash, behavior = %+v", e.Behavior)
	}
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	want := 4.0 * cfg.Combat.EnemySpeedScale * dash.DashSpeedMultiplier
	if math.Abs(vel.VX-want) > 1e-9 {
		t.Errorf("dash VX = %v, want %v", vel.VX, want)
	}
}

func TestEnemyChaseSystemStopsDeadEnemies(t *testing.T) {
	em, cfg := newTestWorld(t)
	spawnPlayer(t, em, cfg, 400, 300)
	enemy := spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 100, 300)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	vel.VX = 50
	healthOf(t, em, enemy).ApplyDamage(1000)

	NewEnemyChaseSystem(em, &cfg.Combat).Update(0.016)
	if vel.VX != 0 || vel.VY != 0 {
		t.Errorf("dead enemy still moving: (%v, %v)", vel.VX, vel.VY)
	}
}

func TestEnemyChaseSystemWithoutPlayer(t *testing.T) {
	em, cfg := newTestWorld(t)
	enemy := spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 100, 300)

	NewEnemyChaseSystem(em, &cfg.Combat).Update(0.016)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	if vel.VX != 0 || vel.VY != 0 {
		t.Errorf("enemy moved without a player: (%v, %v)", vel.VX, vel.VY)
	}
}

func TestEnemyChaseSystemHoldsChargingKoreanTeacher(t *testing.T) {
	em, cfg := newTestWorld(t)
	spawnPlayer(t, em, cfg, 400, 300)
	enemy := spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 340, 300)
	e, _ := ecs.GetComponent[*components.EnemyComponent](em, enemy)
	fan := e.Behavior.(*components.KoreanTeacherBehavior)
	fan.Charging = true

	NewEnemyChaseSystem(em, &cfg.Combat).Update(0.016)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	if vel.VX != 0 || vel.VY != 0 {
		t.Errorf("charging teacher moved: (%v, %v)", vel.VX, vel.VY)
	}
}
