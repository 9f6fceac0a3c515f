package constant

// Screen geometry (logical pixels)
const (
	ScreenWidth  = 400
	ScreenHeight = 600
)

// Bird
const (
	// BirdWidth and BirdHeight match the stock bluebird sprite
	BirdWidth  = 34
	BirdHeight = 24

	// BirdFrames is the number of wing animation frames
	BirdFrames = 3
)

// Pipes
const (
	PipeWidth  = 80
	PipeHeight = 500

	// PipeGap is the fixed vertical opening between the two pipes of a pair
	PipeGap = 200

	// PipeSpacing is the horizontal distance between consecutive pairs
	PipeSpacing = 320

	// PipeMinHeight and PipeMaxHeight bound the randomized top pipe exposure
	PipeMinHeight = 100
	PipeMaxHeight = 300

	// FirstPipeX places the leading pair off-screen at game start
	FirstPipeX = 800

	// PipePairs is the number of pairs alive at once
	PipePairs = 2
)

// Ground
const (
	GroundWidth    = 2 * ScreenWidth
	GroundHeight   = 100
	GroundSegments = 2
)

// Begin screen message placement
const (
	MessageX      = 120
	MessageY      = 150
	MessageWidth  = 184
	MessageHeight = 267
)

// Ranging gesture thresholds
const (
	// RangeFar is the sentinel distance for failed or absent readings
	RangeFar = 9999

	// RangeNearMM is the distance below which a hand counts as near
	RangeNearMM = 220

	// RangeDebounceMM is the minimum approach between samples to fire
	RangeDebounceMM = 20

	// RangeCooldownMS is the minimum time between accepted flaps
	RangeCooldownMS = 250
)
