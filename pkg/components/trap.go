package components

// TrapComponent marks a floor trap. Stepping on it slows the player and
// consumes the trap.
type TrapComponent struct {
	Duration       float64
	SpeedReduction float64
}
