package components

import "github.com/gonewx/survivor/pkg/types"

// InvulnerabilityComponent is a timed damage-immunity window.
// Active and Timer always change together: Open sets Active and zeroes Timer,
// Advance closes the window and zeroes Timer once Timer reaches Duration.
type InvulnerabilityComponent struct {
	Active   bool
	Timer    float64 // seconds since the window opened
	Duration float64
	Channel  types.DamageChannel

	baseDuration float64
	baseChannel  types.DamageChannel
}

// NewInvulnerabilityComponent returns a closed window of the given length.
func NewInvulnerabilityComponent(duration float64, channel types.DamageChannel) *InvulnerabilityComponent {
	return &InvulnerabilityComponent{
		Duration:     duration,
		Channel:      channel,
		baseDuration: duration,
		baseChannel:  channel,
	}
}

// Open starts (or restarts) the regular window.
func (c *InvulnerabilityComponent) Open() {
	c.OpenFor(c.baseDuration, c.baseChannel)
}

// OpenFor starts a one-off window with its own length and channel, such as a
// boss phase transition. The regular settings return when it closes.
func (c *InvulnerabilityComponent) OpenFor(duration float64, channel types.DamageChannel) {
	c.Active = true
	c.Timer = 0
	c.Duration = duration
	c.Channel = channel
}

// Advance moves the timer forward by dt and reports whether the window closed
// during this call.
func (c *InvulnerabilityComponent) Advance(dt float64) bool {
	if !c.Active {
		return false
	}
	c.Timer += dt
	if c.Timer >= c.Duration {
		c.Active = false
		c.Timer = 0
		c.Duration = c.baseDuration
		c.Channel = c.baseChannel
		return true
	}
	return false
}

// Blocks reports whether the window is open and absorbs a hit on channel hit.
func (c *InvulnerabilityComponent) Blocks(hit types.DamageChannel) bool {
	return c.Active && c.Channel.Covers(hit)
}

// Remaining returns seconds left in the window, or 0 when closed.
func (c *InvulnerabilityComponent) Remaining() float64 {
	if !c.Active {
		return 0
	}
	if r := c.Duration - c.Timer; r > 0 {
		return r
	}
	return 0
}
