package systems

import (
	"testing"

	"github.com/gonewx/survivor/pkg/components"
	"github.com/gonewx/survivor/pkg/ecs"
)

func TestPlayerLevelSystem(t *testing.T) {
	tests := []struct {
		name       string
		experience int
		wantLevel  int
		wantLeft   int
		wantNext   int
		wantLevels int
	}{
		{"below threshold", 99, 1, 99, 100, 0},
		{"exact threshold", 100, 2, 0, 150, 1},
		{"carry over", 130, 2, 30, 150, 1},
		{"two levels at once", 260, 3, 10, 225, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em, cfg := newTestWorld(t)
			player := spawnPlayer(t, em, cfg, 0, 0)
			pc, _ := ecs.GetComponent[*components.PlayerComponent](em, player)
			pc.Experience = tt.experience

			levels := NewPlayerLevelSystem(em, &cfg.Player).Update(0.016)

			if levels != tt.wantLevels || pc.Level != tt.wantLevel || pc.Experience != tt.wantLeft || pc.NextLevelExperience != tt.wantNext {
				t.Errorf("got levels=%d level=%d left=%d next=%d, want %d/%d/%d/%d",
					levels, pc.Level, pc.Experience, pc.NextLevelExperience,
					tt.wantLevels, tt.wantLevel, tt.wantLeft, tt.wantNext)
			}
		})
	}
}
