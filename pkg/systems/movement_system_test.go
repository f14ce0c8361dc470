package systems

import (
	"testing"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/ecs"
	"github.com/gonewx/survivor/pkg/types"
)

func TestMovementSystemIntegratesVelocity(t *testing.T) {
	em, cfg := newTestWorld(t)
	enemy := spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 100, 100)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	vel.VX, vel.VY = 100, -50

	NewMovementSystem(em, &cfg.World).Update(0.5)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, enemy)
	if pos.X != 150 || pos.Y != 75 {
		t.Errorf("position = (%v, %v), want (150, 75)", pos.X, pos.Y)
	}
}

func TestMovementSystemClampsPlayer(t *testing.T) {
	em, cfg := newTestWorld(t)
	player := spawnPlayer(t, em, cfg, 790, 10)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, player)
	vel.VX, vel.VY = 200, -200

	enemy := spawnEnemy(t, em, cfg, types.EnemyKoreanTeacher, 790, 10)
	eVel, _ := ecs.GetComponent[*components.VelocityComponent](em, enemy)
	eVel.VX, eVel.VY = 200, -200

	NewMovementSystem(em, &cfg.World).Update(1.0)

	pos, _ := ecs.GetComponent[*components.PositionComponent](em, player)
	if pos.X != 800 || pos.Y != 0 {
		t.Errorf("player at (%v, %v), want clamped to (800, 0)", pos.X, pos.Y)
	}
	ePos, _ := ecs.GetComponent[*components.PositionComponent](em, enemy)
	if ePos.X != 990 || ePos.Y != -190 {
		t.Errorf("enemy at (%v, %v), enemies are not clamped", ePos.X, ePos.Y)
	}
}
