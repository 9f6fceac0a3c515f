package physics

import "github.com/lixenwraith/tof-flappy/constant"

// Params holds per-tick motion constants calibrated at a given tick rate
type Params struct {
	Gravity     float64 // velocity added per tick
	FlapSpeed   float64 // upward velocity magnitude set by a flap
	ScrollSpeed float64 // leftward displacement per tick
}

// DefaultParams returns the constants calibrated at constant.TickRate
func DefaultParams() Params {
	return Params{
		Gravity:     constant.Gravity,
		FlapSpeed:   constant.FlapSpeed,
		ScrollSpeed: constant.ScrollSpeed,
	}
}

// Scaled converts params calibrated at fromHz to a tick rate of toHz so that
// trajectories in real time are preserved: velocities scale by from/to and
// per-tick acceleration by (from/to)^2
func (p Params) Scaled(fromHz, toHz int) Params {
	if fromHz <= 0 || toHz <= 0 || fromHz == toHz {
		return p
	}
	r := float64(fromHz) / float64(toHz)
	return Params{
		Gravity:     p.Gravity * r * r,
		FlapSpeed:   p.FlapSpeed * r,
		ScrollSpeed: p.ScrollSpeed * r,
	}
}

// Kinetic is vertical motion state under discrete Euler integration
type Kinetic struct {
	Y    float64
	VelY float64
}

// Integrate advances one tick: v += a; y += v
func Integrate(k *Kinetic, accel float64) float64 {
	k.VelY += accel
	k.Y += k.VelY
	return k.Y
}

// SetImpulse overrides vertical velocity, discarding accumulated motion
func SetImpulse(k *Kinetic, vy float64) {
	k.VelY = vy
}

// Scroll moves a horizontal coordinate left by speed, carrying the fractional
// remainder so non-integer speeds from Scaled do not drift
func Scroll(x *int, carry *float64, speed float64) {
	total := *carry + speed
	step := int(total)
	*carry = total - float64(step)
	*x -= step
}
