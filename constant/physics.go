package constant

// Per-tick physics at TickRate, in screen pixels
const (
	// Gravity is added to bird velocity every tick
	Gravity = 3.0

	// FlapSpeed is the upward velocity magnitude a flap sets, overriding any fall
	FlapSpeed = 15.0

	// ScrollSpeed is the leftward displacement of pipes and ground every tick
	ScrollSpeed = 15
)
