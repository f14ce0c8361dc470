package components

import (
	"testing"

	"github.com/gonewx/survivor/pkg/types"
)

func TestEnemyBehaviorTypes(t *testing.T) {
	tests := []struct {
		behavior EnemyBehavior
		want     types.EnemyType
	}{
		{NewKoreanTeacherBehavior(), types.EnemyKoreanTeacher},
		{NewMathTeacherBehavior(), types.EnemyMathTeacher},
		{NewPrincipalBossBehavior(), types.EnemyPrincipal},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := tt.behavior.EnemyType(); got != tt.want {
				t.Errorf("EnemyType() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMathTeacherDashCycle(t *testing.T) {
	b := NewMathTeacherBehavior()

	if b.Step(0.1, 500) {
		t.Fatal("dash must not start out of range")
	}
	if !b.Step(0.1, 120) {
		t.Fatal("dash should start inside [min, max] distance")
	}
	if b.SpeedMultiplier() != 3.0 {
		t.Errorf("dashing multiplier = %v, want 3", b.SpeedMultiplier())
	}

	// run out the dash
	for i := 0; i < 12; i++ {
		b.Step(0.1, 120)
	}
	if b.Dashing {
		t.Fatal("dash should end after DashDuration")
	}
	if b.SpeedMultiplier() != 1 {
		t.Errorf("multiplier after dash = %v, want 1", b.SpeedMultiplier())
	}
	if b.Step(0.1, 120) {
		t.Error("dash must not restart during cooldown")
	}
}

func TestKoreanTeacherFanCycle(t *testing.T) {
	b := NewKoreanTeacherBehavior()

	if b.Step(0.5, 200, 0) || b.Charging {
		t.Fatal("charge must not start out of range")
	}
	if b.Step(0.5, 60, 1.0) {
		t.Fatal("the fan must not fire on the tick the charge starts")
	}
	if !b.Charging || b.Facing != 1.0 {
		t.Fatalf("charge should lock bearing 1.0, got %+v", b)
	}
	if b.SpeedMultiplier() != 0 {
		t.Errorf("charging multiplier = %v, want 0", b.SpeedMultiplier())
	}

	// the target moving away does not cancel a charge in progress
	fired := false
	for i := 0; i < 3; i++ {
		fired = b.Step(0.5, 500, 3.0)
	}
	if !fired {
		t.Fatal("fan should fire once ChargeTime has passed")
	}
	if b.Charging || b.Facing != 1.0 {
		t.Errorf("after firing: %+v", b)
	}
	if b.SpeedMultiplier() != 1 {
		t.Errorf("multiplier after firing = %v, want 1", b.SpeedMultiplier())
	}
	if b.Step(0.5, 60, 0) || b.Charging {
		t.Error("charge must not restart during cooldown")
	}
}
