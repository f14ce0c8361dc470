package types

import "fmt"

// BossPhase is the health-ratio driven stage of a boss fight.
type BossPhase int

const (
	BossPhase1 BossPhase = iota + 1 // health > 70%
	BossPhase2                      // 30% < health <= 70%
	BossPhase3                      // health <= 30%
)

func (p BossPhase) String() string {
	return fmt.Sprintf("phase_%d", int(p))
}

// BossPattern is one of the boss attack patterns.
type BossPattern int

const (
	PatternCircularBullets BossPattern = iota
	PatternHomingMissiles
	PatternTeleportStrike
	PatternLaserBeam
	PatternSummonMinions

	bossPatternEnd
)

// BossPatternCount is the size of tables indexed by BossPattern.
const BossPatternCount = int(bossPatternEnd)

var bossPatternNames = [...]string{
	PatternCircularBullets: "circular_bullets",
	PatternHomingMissiles:  "homing_missiles",
	PatternTeleportStrike:  "teleport_strike",
	PatternLaserBeam:       "laser_beam",
	PatternSummonMinions:   "summon_minions",
}

func (p BossPattern) String() string {
	if p < 0 || p >= bossPatternEnd {
		return "unknown"
	}
	return bossPatternNames[p]
}

// ParseBossPattern maps a config key back to its BossPattern.
func ParseBossPattern(name string) (BossPattern, bool) {
	for p := BossPattern(0); p < bossPatternEnd; p++ {
		if bossPatternNames[p] == name {
			return p, true
		}
	}
	return 0, false
}

// AllBossPatterns returns every pattern in declaration order.
func AllBossPatterns() []BossPattern {
	return []BossPattern{
		PatternCircularBullets,
		PatternHomingMissiles,
		PatternTeleportStrike,
		PatternLaserBeam,
		PatternSummonMinions,
	}
}
