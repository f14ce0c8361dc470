package types

// EntityStatus is the lifecycle tag carried by HealthComponent.
type EntityStatus int

const (
	StatusAlive EntityStatus = iota
	StatusInvulnerable
	StatusDead
)

func (s EntityStatus) String() string {
	switch s {
	case StatusAlive:
		return "alive"
	case StatusInvulnerable:
		return "invulnerable"
	case StatusDead:
		return "dead"
	default:
		return "unknown"
	}
}

// DamageChannel names the kind of hit an invulnerability window protects against.
type DamageChannel int

const (
	// ChannelContact is enemy body contact against the player.
	ChannelContact DamageChannel = iota
	// ChannelPlayerAttack covers projectiles and melee arcs against enemies.
	ChannelPlayerAttack
	// ChannelPhaseTransition masks a boss phase change.
	ChannelPhaseTransition
	// ChannelEnemyAttack covers enemy fan attacks and boss strikes against the player.
	ChannelEnemyAttack
)

func (c DamageChannel) String() string {
	switch c {
	case ChannelContact:
		return "contact"
	case ChannelPlayerAttack:
		return "player_attack"
	case ChannelPhaseTransition:
		return "phase_transition"
	case ChannelEnemyAttack:
		return "enemy_attack"
	default:
		return "unknown"
	}
}

// Covers reports whether a window opened on c absorbs a hit arriving on hit.
// A phase transition absorbs everything. Contact and enemy attacks both
// target the player and share its window.
func (c DamageChannel) Covers(hit DamageChannel) bool {
	switch c {
	case ChannelPhaseTransition:
		return true
	case ChannelContact, ChannelEnemyAttack:
		return hit == ChannelContact || hit == ChannelEnemyAttack
	default:
		return c == hit
	}
}
