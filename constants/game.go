package constants

// Play field in pixels. All spawn and bounds logic is relative to these
const (
	FieldWidth  = 480
	FieldHeight = 640
)

// Game Loop Timing Constants
const (
	// MaxDeltaSeconds caps a single simulation step (~30 FPS floor)
	MaxDeltaSeconds = 0.033

	// StarStepSeconds is the fixed per-frame scroll step of the background star field
	StarStepSeconds = 0.016
)
