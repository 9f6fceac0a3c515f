package constant

import "time"

// Game Loop Timing
const (
	// TickRate is the fixed simulation rate all per-tick constants are calibrated against
	TickRate = 15

	// TickInterval is the game logic update interval (clock tick)
	TickInterval = time.Second / TickRate

	// TickMaxBehind is how far the scheduler may fall behind before it resyncs instead of catching up
	TickMaxBehind = 2 * TickInterval

	// EventQueueSize is the capacity of the frontend event channel drained once per tick
	EventQueueSize = 64

	// GameOverHold is the time the game stays on the collision frame before exit or restart
	GameOverHold = time.Second
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "flappy.log"
	MaxLogSize  = 10 * 1024 * 1024
)
