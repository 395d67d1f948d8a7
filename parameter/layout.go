package parameter

// Sprite sheet geometry: frame size in source pixels and draw scale
const (
	GooseFrame = 32
	GooseScale = 2.0

	GoslingFrame = 16
	GoslingScale = 2.2

	EggFrame = 16
	EggScale = 2.0

	HonkFrame = 16
	HonkScale = 2.0

	BubbleFrameW = 64
	BubbleFrameH = 32
	BubbleScale  = 2.0

	HatFrame = 20
	HatScale = 1.8

	DiscoFrameW = 16
	DiscoFrameH = 20
	DiscoScale  = 3.0

	PropFrame = 32
	PropScale = 2.0
)

// Companion anchor offsets relative to the agent position
const (
	ShadowOffsetX     = -5.0
	ShadowOffsetXWide = -10.0
	ShadowOffsetY     = 29.0

	MarkerOffsetY    = 28.0
	FootprintOffsetY = 32.0

	HonkHighX = 32.0
	HonkHighY = -10.0
	HonkLowX  = 40.0
	HonkLowY  = 2.0

	BubbleOffsetX = 50.0
	BubbleOffsetY = -64.0

	AngryOffsetX = 20.0
	AngryOffsetY = -20.0

	BatOffsetY   = -20.0
	DiscoOffsetY = -100.0
	EggOffsetY   = 20.0

	HatOffsetX    = 10.0
	HatOffsetY    = -26.0
	HatOffsetLowY = -8.0
)

// Draw layers
const (
	LayerBackground = 0
	LayerMidground  = 1
	LayerForeground = 2
)
