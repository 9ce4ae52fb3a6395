package twin

import (
	"fmt"
	"math"
)

// Simulation constants. The simulated RPM accumulates a fixed base
// increment with a sinusoidal variation over the tick counter (radians).
const (
	simBaseIncrement = 10.5
	simWaveFrequency = 0.3
	simWaveAmplitude = 5.0
)

// Advance performs one simulation step: the tick counter is incremented,
// then the RPM accumulator advances by 10.5 + sin(tick*0.3)*5.0 using the
// post-increment tick value. The result is a pure function of the prior
// state; repeated runs from the same state reproduce identical output.
func (t *Twin) Advance() string {
	t.tickCount++
	t.rpmSim += simBaseIncrement + math.Sin(float64(t.tickCount)*simWaveFrequency)*simWaveAmplitude

	return fmt.Sprintf("Live RPM: %.2f (tick: %d)", t.rpmSim, t.tickCount)
}

// Reset unconditionally returns the simulation to its initial state
// (0.0 RPM, tick 0). It never fails and is idempotent.
func (t *Twin) Reset() {
	t.rpmSim = 0.0
	t.tickCount = 0
}

// RPM returns the current simulated RPM accumulator.
func (t *Twin) RPM() float64 {
	return t.rpmSim
}

// TickCount returns the current tick counter.
func (t *Twin) TickCount() uint32 {
	return t.tickCount
}
