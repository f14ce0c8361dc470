package components

import (
	"testing"

	"github.com/gonewx/survivor/pkg/types"
)

func TestInvulnerabilityWindow(t *testing.T) {
	c := NewInvulnerabilityComponent(1.0, types.ChannelContact)
	if c.Active {
		t.Fatal("new window should be closed")
	}
	if c.Advance(0.5) {
		t.Error("closed window must not report closing")
	}

	c.Open()
	steps := []struct {
		dt         float64
		wantClosed bool
		wantActive bool
	}{
		{0.4, false, true},
		{0.4, false, true},
		{0.2, true, false},
		{0.2, false, false},
	}
	for i, s := range steps {
		closed := c.Advance(s.dt)
		if closed != s.wantClosed || c.Active != s.wantActive {
			t.Errorf("step %d: closed=%v active=%v, want %v/%v", i, closed, c.Active, s.wantClosed, s.wantActive)
		}
		if !c.Active && c.Timer != 0 {
			t.Errorf("step %d: timer %v left non-zero on a closed window", i, c.Timer)
		}
	}
}

func TestInvulnerabilityReopenResetsTimer(t *testing.T) {
	c := NewInvulnerabilityComponent(1.0, types.ChannelContact)
	c.Open()
	c.Advance(0.9)
	c.Open()
	if c.Timer != 0 || !c.Active {
		t.Fatalf("Open should restart the window, got %+v", c)
	}
	if got := c.Remaining(); got != 1.0 {
		t.Errorf("Remaining() = %v, want 1.0", got)
	}
}

func TestInvulnerabilityOpenForRestoresBase(t *testing.T) {
	c := NewInvulnerabilityComponent(0.1, types.ChannelPlayerAttack)
	c.OpenFor(2.0, types.ChannelPhaseTransition)

	if c.Advance(1.0) {
		t.Fatal("2s window closed after 1s")
	}
	if c.Channel != types.ChannelPhaseTransition {
		t.Errorf("Channel = %v during transition", c.Channel)
	}
	if !c.Advance(1.0) {
		t.Fatal("window should close after 2s")
	}
	if c.Duration != 0.1 || c.Channel != types.ChannelPlayerAttack {
		t.Errorf("base settings not restored: %+v", c)
	}
}

func TestInvulnerabilityBlocksByChannel(t *testing.T) {
	tests := []struct {
		name   string
		window types.DamageChannel
		open   bool
		hit    types.DamageChannel
		want   bool
	}{
		{"closed window", types.ChannelPlayerAttack, false, types.ChannelPlayerAttack, false},
		{"same channel", types.ChannelPlayerAttack, true, types.ChannelPlayerAttack, true},
		{"enemy window vs contact", types.ChannelPlayerAttack, true, types.ChannelContact, false},
		{"player window vs player attack", types.ChannelContact, true, types.ChannelPlayerAttack, false},
		{"player window vs enemy attack", types.ChannelContact, true, types.ChannelEnemyAttack, true},
		{"enemy attack window vs contact", types.ChannelEnemyAttack, true, types.ChannelContact, true},
		{"phase transition vs player attack", types.ChannelPhaseTransition, true, types.ChannelPlayerAttack, true},
		{"phase transition vs contact", types.ChannelPhaseTransition, true, types.ChannelContact, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewInvulnerabilityComponent(1.0, tt.window)
			if tt.open {
				c.Open()
			}
			if got := c.Blocks(tt.hit); got != tt.want {
				t.Errorf("Blocks(%v) = %v, want %v", tt.hit, got, tt.want)
			}
		})
	}
}
